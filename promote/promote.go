// Package promote moves the report title into the running header.
package promote

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/tsawler/reportkit/docx"
	"github.com/tsawler/reportkit/locate"
)

// Style is the presentation forced onto the promoted title. Sizes are in
// half-points; colors are six hex digits.
type Style struct {
	Size         int
	Color        string
	BorderColor  string
	SpacingAfter int
}

// Result describes a promotion.
type Result struct {
	Applied bool
	// Title is the text moved into the header.
	Title string
	// Part is the header part that received it.
	Part string
}

// Header moves the first paragraph whose text starts with the title marker
// into the running header. The header's previous content is replaced, a
// header part is created when the document has none, and the effective
// section properties are pointed at it. Without a title paragraph the
// document, header included, is left untouched.
func Header(doc *docx.Document, title locate.Predicate, style Style) (Result, error) {
	src, ok := locate.First(doc, docx.KindParagraph, title)
	if !ok {
		return Result{}, nil
	}

	b := doc.Builder()
	para := b.Paragraph(paragraphProperties(b, style))
	for _, run := range src.Runs() {
		r := run.Copy()
		styleRun(b, r, style)
		para.AddChild(r)
	}
	doc.Remove(src)

	h, err := doc.ReplaceHeader(docx.NewBlock(para))
	if err != nil {
		return Result{}, fmt.Errorf("promoting title to header: %w", err)
	}
	doc.LinkHeader(h)

	return Result{Applied: true, Title: src.Text(), Part: h.Part}, nil
}

func paragraphProperties(b docx.Builder, s Style) *etree.Element {
	return b.Wrap("pPr",
		b.Wrap("pBdr", b.Border("bottom", "single", "4", "1", s.BorderColor)),
		b.El("bidi"),
		b.El("spacing", "after", strconv.Itoa(s.SpacingAfter)),
		b.El("jc", "val", "left"),
	)
}

func styleRun(b docx.Builder, run *etree.Element, s Style) {
	rPr := docx.RunProperties(run)
	size := strconv.Itoa(s.Size)
	docx.SetRunProperty(rPr, b.El("color", "val", s.Color))
	docx.SetRunProperty(rPr, b.El("sz", "val", size))
	docx.SetRunProperty(rPr, b.El("szCs", "val", size))
	docx.SetRunProperty(rPr, b.El("rtl"))
}
