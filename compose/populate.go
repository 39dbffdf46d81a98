package compose

import (
	"strings"

	"github.com/tsawler/reportkit/docx"
	"github.com/tsawler/reportkit/locate"
	"github.com/tsawler/reportkit/policy"
	"github.com/tsawler/reportkit/rank"
)

// Columns of the source keyword table.
const (
	keywordColumn      = 0
	firstRankingColumn = 2
)

// Classified is the outcome of one source row.
type Classified struct {
	Keyword string
	Outcome rank.Outcome
}

// Summary describes a Populate run.
type Summary struct {
	// Applied is false when a destination is missing. A missing source
	// table leaves every destination empty, so all of them are pruned.
	Applied bool
	// Rows is the number of data rows read from the source table.
	Rows int
	// Skipped counts rows that could not be classified.
	Skipped int
	// Outcomes lists classified rows in source order, NoChange included.
	Outcomes []Classified
	// Pruned counts removed blocks: empty tables, their headlines and the
	// group headline.
	Pruned int
}

// Count returns the number of outcomes of kind k.
func (s Summary) Count(k rank.Kind) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Outcome.Kind == k {
			n++
		}
	}
	return n
}

type destination struct {
	headline docx.Block
	table    docx.Block
}

// Populate classifies every row of the keyword table and renders the
// outcomes into the three destination tables. Reached and progressed
// keywords get a [label, keyword] row; kept keywords fill the two cells of
// the last row, right first, before a new row is started. Destinations left
// without content are removed with their headline, and when all three go
// the group headline goes too. Pruning runs even when the keyword table is
// missing.
func Populate(doc *docx.Document, c *policy.Compiled) Summary {
	dests := make(map[rank.Destination]destination, 3)
	for d, pred := range map[rank.Destination]locate.Predicate{
		rank.ReachedTable:    c.Reached,
		rank.KeptTable:       c.Kept,
		rank.ProgressedTable: c.Progressed,
	} {
		h, ok := locate.First(doc, docx.KindParagraph, pred)
		if !ok {
			return Summary{}
		}
		t, ok := locate.FirstAfter(doc, h, docx.KindTable)
		if !ok {
			return Summary{}
		}
		dests[d] = destination{headline: h, table: t}
	}

	sum := Summary{Applied: true}
	_, source, ok := locate.TableAfter(doc, c.Keywords)
	if !ok {
		sum.Pruned = prune(doc, c, dests)
		return sum
	}

	w := newWriter(doc, c, c.Policy.Cells.Size)
	rows := source.Rows()
	if len(rows) > 0 {
		rows = rows[1:]
	}
	for _, row := range rows {
		sum.Rows++
		kr, ok := keywordRow(row)
		if !ok {
			sum.Skipped++
			continue
		}
		out, ok := rank.Classify(kr, c.Rules)
		if !ok {
			sum.Skipped++
			continue
		}
		sum.Outcomes = append(sum.Outcomes, Classified{Keyword: kr.Keyword, Outcome: out})

		switch out.Kind {
		case rank.ReachedTop, rank.Progressed:
			w.appendLabeled(dests[out.Destination()].table, out.Label, kr.Keyword)
		case rank.KeptTop:
			w.fillAlternating(dests[out.Destination()].table, kr.Keyword)
		}
	}

	sum.Pruned = prune(doc, c, dests)
	return sum
}

func keywordRow(row docx.Row) (rank.KeywordRow, bool) {
	cells := row.Cells()
	if len(cells) <= firstRankingColumn {
		return rank.KeywordRow{}, false
	}
	kr := rank.KeywordRow{Keyword: strings.TrimSpace(cells[keywordColumn].Text())}
	for _, cell := range cells[firstRankingColumn:] {
		kr.Cells = append(kr.Cells, cell.Text())
	}
	return kr, true
}

// appendLabeled adds a [label, keyword] row.
func (w writer) appendLabeled(tbl docx.Block, label, keyword string) {
	tbl.AppendRow(w.b.Row(
		w.b.Cell(w.cellParagraph(label)),
		w.b.Cell(w.cellParagraph(keyword)),
	))
}

// fillAlternating puts keyword into the first empty cell of the last row,
// scanning right to left, or starts a new row with only the right cell
// filled.
func (w writer) fillAlternating(tbl docx.Block, keyword string) {
	if last, ok := tbl.LastRow(); ok {
		if cells := last.Cells(); len(cells) >= 2 {
			for i := 1; i >= 0; i-- {
				if cells[i].IsBlank() {
					cells[i].SetContent(w.cellParagraph(keyword))
					return
				}
			}
		}
	}
	tbl.AppendRow(w.b.Row(
		w.b.Cell(),
		w.b.Cell(w.cellParagraph(keyword)),
	))
}

// prune removes destinations without a non-blank cell, and the group
// headline once no destination headline remains. It returns the number of
// removed blocks.
func prune(doc *docx.Document, c *policy.Compiled, dests map[rank.Destination]destination) int {
	removed := 0
	for _, d := range []rank.Destination{rank.ReachedTable, rank.KeptTable, rank.ProgressedTable} {
		dest := dests[d]
		if hasContent(dest.table) {
			continue
		}
		if doc.Remove(dest.table) {
			removed++
		}
		if doc.Remove(dest.headline) {
			removed++
		}
	}

	remaining := locate.Any(c.Reached, c.Kept, c.Progressed)
	if _, ok := locate.First(doc, docx.KindParagraph, remaining); ok {
		return removed
	}
	if group, ok := locate.First(doc, docx.KindParagraph, c.Group); ok {
		doc.Remove(group)
		removed++
	}
	return removed
}

func hasContent(tbl docx.Block) bool {
	for _, row := range tbl.Rows() {
		for _, cell := range row.Cells() {
			if !cell.IsBlank() {
				return true
			}
		}
	}
	return false
}
