// Package edit implements the section transforms applied to a report body:
// merging duplicated headline regions, removing bracketed or matching
// sections, promoting the logo, relocating sections to the top and cleaning
// up the blank space left behind.
//
// Transforms locate their markers with package locate. A missing marker is
// not an error; the transform does nothing and reports Applied == false.
package edit

import (
	"github.com/tsawler/reportkit/docx"
	"github.com/tsawler/reportkit/locate"
)

// Result summarizes the effect of a transform.
type Result struct {
	Applied  bool
	Removed  int
	Inserted int
}

// Add merges r and other.
func (r Result) Add(other Result) Result {
	return Result{
		Applied:  r.Applied || other.Applied,
		Removed:  r.Removed + other.Removed,
		Inserted: r.Inserted + other.Inserted,
	}
}

// MergeDuplicateHeadlines collapses the two regions introduced by the first
// two paragraphs equal to marker into one. The blocks between the two
// markers stay, in order, directly after the first marker; those whose text
// is blank are dropped, image-only paragraphs included, and the second
// marker is removed.
// With fewer than two markers the document is left unchanged.
func MergeDuplicateHeadlines(doc *docx.Document, marker locate.Predicate) Result {
	found := locate.All(doc, docx.KindParagraph, marker)
	if len(found) < 2 {
		return Result{}
	}
	first, second := found[0], found[1]

	res := Result{Applied: true}
	for _, b := range doc.Blocks()[first.Index+1 : second.Index] {
		if b.IsBlank() {
			doc.Remove(b)
			res.Removed++
		}
	}
	doc.Remove(second.Block)
	res.Removed++
	return res
}

// RemoveBracketedSection removes the section that starts at the first
// paragraph matching starts and ends at the next paragraph matching
// trailing, together with every table directly following the trailing
// paragraph. When trailing never matches, everything after the start is
// removed except the section properties. Cleanup runs whenever a section
// was found.
func RemoveBracketedSection(doc *docx.Document, starts, trailing locate.Predicate) Result {
	blocks := doc.Blocks()
	res := Result{}
	inside := false

scan:
	for i := 0; i < len(blocks); i++ {
		b := blocks[i]
		if !inside {
			if b.Is(docx.KindParagraph) && locate.Match(b, starts) {
				doc.Remove(b)
				res.Removed++
				inside = true
			}
			continue
		}
		switch {
		case b.Is(docx.KindParagraph) && locate.Match(b, trailing):
			doc.Remove(b)
			res.Removed++
			for j := i + 1; j < len(blocks) && blocks[j].Is(docx.KindTable); j++ {
				doc.Remove(blocks[j])
				res.Removed++
			}
			break scan
		case b.Is(docx.KindSectionProperties):
			// page layout outlives a section with no end marker
		default:
			doc.Remove(b)
			res.Removed++
		}
	}

	if !inside {
		return Result{}
	}
	res.Applied = true
	return res.Add(Cleanup(doc))
}

// RemoveMatching removes every paragraph whose text satisfies pred and then
// runs Cleanup.
func RemoveMatching(doc *docx.Document, pred locate.Predicate) Result {
	res := Result{}
	for _, m := range locate.All(doc, docx.KindParagraph, pred) {
		if doc.Remove(m.Block) {
			res.Removed++
		}
	}
	res.Applied = res.Removed > 0
	return res.Add(Cleanup(doc))
}

// RemoveFirst removes the first paragraph whose text satisfies pred.
func RemoveFirst(doc *docx.Document, pred locate.Predicate) Result {
	b, ok := locate.First(doc, docx.KindParagraph, pred)
	if !ok {
		return Result{}
	}
	doc.Remove(b)
	return Result{Applied: true, Removed: 1}
}

// Cleanup deletes paragraphs that are blank and hold no image, and section
// properties without children. Running it twice has the same effect as
// running it once.
func Cleanup(doc *docx.Document) Result {
	res := Result{}
	for _, b := range doc.Blocks() {
		switch b.Kind() {
		case docx.KindParagraph:
			if b.IsBlank() && !b.HasImage() {
				doc.Remove(b)
				res.Removed++
			}
		case docx.KindSectionProperties:
			if !b.HasChildren() {
				doc.Remove(b)
				res.Removed++
			}
		}
	}
	res.Applied = res.Removed > 0
	return res
}
