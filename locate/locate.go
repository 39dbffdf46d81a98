// Package locate finds body blocks by the text they show.
//
// Markers are matched against [text.Normalize]d block text, so the same
// predicate works whatever run boundaries or directional marks Word put into
// the paragraph. Lookups never fail: a missing marker is reported through the
// boolean result and callers skip the transform that needed it.
package locate

import (
	"regexp"
	"strings"

	"github.com/tsawler/reportkit/docx"
	"github.com/tsawler/reportkit/text"
)

// Predicate reports whether normalized block text matches a marker.
type Predicate func(s string) bool

// Exact matches text equal to marker.
func Exact(marker string) Predicate {
	want := text.Normalize(marker)
	return func(s string) bool { return s == want }
}

// Prefix matches text starting with marker.
func Prefix(marker string) Predicate {
	want := text.Normalize(marker)
	return func(s string) bool { return strings.HasPrefix(s, want) }
}

// Contains matches text containing marker.
func Contains(marker string) Predicate {
	want := text.Normalize(marker)
	return func(s string) bool { return strings.Contains(s, want) }
}

// Regex matches text in which re finds a match.
func Regex(re *regexp.Regexp) Predicate {
	return re.MatchString
}

// Any matches text accepted by at least one of preds.
func Any(preds ...Predicate) Predicate {
	return func(s string) bool {
		for _, p := range preds {
			if p != nil && p(s) {
				return true
			}
		}
		return false
	}
}

// Match reports whether b's normalized text satisfies pred.
func Match(b docx.Block, pred Predicate) bool {
	return pred != nil && pred(text.Normalize(b.Text()))
}

// Indexed pairs a block with its position in the body at lookup time.
type Indexed struct {
	Block docx.Block
	Index int
}

// AnyKind makes a lookup consider every block kind.
const AnyKind docx.Kind = -1

func kindMatches(b docx.Block, kind docx.Kind) bool {
	return kind == AnyKind || b.Kind() == kind
}

// First returns the first block of the given kind whose text satisfies pred.
func First(doc *docx.Document, kind docx.Kind, pred Predicate) (docx.Block, bool) {
	for _, b := range doc.Blocks() {
		if kindMatches(b, kind) && Match(b, pred) {
			return b, true
		}
	}
	return docx.Block{}, false
}

// All returns every block of the given kind whose text satisfies pred,
// with its index.
func All(doc *docx.Document, kind docx.Kind, pred Predicate) []Indexed {
	var out []Indexed
	for i, b := range doc.Blocks() {
		if kindMatches(b, kind) && Match(b, pred) {
			out = append(out, Indexed{Block: b, Index: i})
		}
	}
	return out
}

// Nth returns the n-th (zero-based) block of the given kind whose text
// satisfies pred.
func Nth(doc *docx.Document, kind docx.Kind, pred Predicate, n int) (Indexed, bool) {
	if n < 0 {
		return Indexed{}, false
	}
	seen := 0
	for i, b := range doc.Blocks() {
		if !kindMatches(b, kind) || !Match(b, pred) {
			continue
		}
		if seen == n {
			return Indexed{Block: b, Index: i}, true
		}
		seen++
	}
	return Indexed{}, false
}

// FirstAfter returns the first block of the given kind following ref,
// skipping blocks of other kinds.
func FirstAfter(doc *docx.Document, ref docx.Block, kind docx.Kind) (docx.Block, bool) {
	for _, b := range doc.After(ref) {
		if kindMatches(b, kind) {
			return b, true
		}
	}
	return docx.Block{}, false
}

// TableAfter returns the headline matching pred together with the first
// table that follows it.
func TableAfter(doc *docx.Document, pred Predicate) (headline, table docx.Block, ok bool) {
	headline, ok = First(doc, docx.KindParagraph, pred)
	if !ok {
		return docx.Block{}, docx.Block{}, false
	}
	table, ok = FirstAfter(doc, headline, docx.KindTable)
	if !ok {
		return headline, docx.Block{}, false
	}
	return headline, table, true
}

// FirstTableWithHeader returns the first table whose first row satisfies
// pred. A nil pred matches nothing.
func FirstTableWithHeader(doc *docx.Document, pred Predicate) (docx.Block, bool) {
	if pred == nil {
		return docx.Block{}, false
	}
	for _, b := range doc.Blocks() {
		if b.Kind() != docx.KindTable {
			continue
		}
		rows := b.Rows()
		if len(rows) == 0 {
			continue
		}
		if pred(text.Normalize(rows[0].Text())) {
			return b, true
		}
	}
	return docx.Block{}, false
}

// FirstImageParagraph returns the first paragraph holding a drawing.
func FirstImageParagraph(doc *docx.Document) (docx.Block, bool) {
	for _, b := range doc.Blocks() {
		if b.Kind() == docx.KindParagraph && b.HasImage() {
			return b, true
		}
	}
	return docx.Block{}, false
}

// Anchor returns the insertion point for content moved to the top of the
// report: the first image-bearing paragraph (the logo), else the first
// paragraph.
func Anchor(doc *docx.Document) (docx.Block, bool) {
	if b, ok := FirstImageParagraph(doc); ok {
		return b, true
	}
	for _, b := range doc.Blocks() {
		if b.Kind() == docx.KindParagraph {
			return b, true
		}
	}
	return docx.Block{}, false
}
