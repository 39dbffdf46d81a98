// Package rank classifies a keyword's search-ranking history.
//
// A [KeywordRow] holds a keyword and its ranking cells, oldest first and
// most recent last. [Classify] turns one row into an [Outcome]: the keyword
// reached position 1, kept position 1, progressed to a better position, or
// did not change. Classification is a pure function of the row and the
// [Rules]; rows never influence each other.
//
// Cells that are blank, a dash, or not a number carry no position. They are
// never read as zero.
//
//	out, ok := rank.Classify(rank.KeywordRow{
//		Keyword: "running shoes",
//		Cells:   []string{"15", "-", "9"},
//	}, rank.DefaultRules())
//	if ok && out.Kind == rank.Progressed {
//		fmt.Println(out.Label)
//	}
package rank
