// Package compose builds the generated parts of the report: the keyword
// performance section with its three destination tables, the rows rendered
// from ranking outcomes, the details table, and the low search volume
// substitution in the keyword table.
package compose

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/tsawler/reportkit/docx"
	"github.com/tsawler/reportkit/policy"
	"github.com/tsawler/reportkit/text"
)

// writer builds cell content in the policy's presentation.
type writer struct {
	b    docx.Builder
	font string
	size int
}

func newWriter(doc *docx.Document, c *policy.Compiled, size int) writer {
	return writer{b: doc.Builder(), font: c.Policy.Cells.Font, size: size}
}

// run returns a run of s in the writer's font and size. Right-to-left text
// is flagged so Word applies bidi ordering to it.
func (w writer) run(s string, bold bool) *etree.Element {
	size := strconv.Itoa(w.size)
	rPr := w.b.Wrap("rPr",
		w.b.El("rFonts", "ascii", w.font, "hAnsi", w.font, "cs", w.font),
	)
	if bold {
		docx.SetRunProperty(rPr, w.b.El("b"))
	}
	docx.SetRunProperty(rPr, w.b.El("sz", "val", size))
	docx.SetRunProperty(rPr, w.b.El("szCs", "val", size))
	if text.IsRTL(s) {
		docx.SetRunProperty(rPr, w.b.El("rtl"))
	}
	return w.b.Run(rPr, s)
}

// cellParagraph returns a paragraph with no spacing or indentation holding
// s.
func (w writer) cellParagraph(s string) *etree.Element {
	pPr := w.b.Wrap("pPr",
		w.b.El("spacing", "before", "0", "after", "0"),
		w.b.El("ind", "left", "0", "right", "0"),
	)
	return w.b.Paragraph(pPr, w.run(s, false))
}

// borders returns a <w:tblBorders> with every edge a thin single line of
// color.
func borders(b docx.Builder, color string) *etree.Element {
	var edges []*etree.Element
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		edges = append(edges, b.Border(side, "single", "4", "", color))
	}
	return b.Wrap("tblBorders", edges...)
}

// fullWidth returns a <w:tblW> spanning the text column.
func fullWidth(b docx.Builder) *etree.Element {
	return b.El("tblW", "w", "5000", "type", "pct")
}

