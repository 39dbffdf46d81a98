package compose

import (
	"github.com/beevik/etree"

	"github.com/tsawler/reportkit/docx"
	"github.com/tsawler/reportkit/locate"
	"github.com/tsawler/reportkit/policy"
)

// DetailsTable builds a details table for reports that have none: a shaded
// header row and a row holding message.
func DetailsTable(doc *docx.Document, c *policy.Compiled, message string) docx.Block {
	d := c.Policy.Details
	w := newWriter(doc, c, c.Policy.Cells.Size)
	b := w.b

	tblPr := b.Wrap("tblPr", fullWidth(b), borders(b, d.BorderColor))
	header := detailsRow(w, b.El("shd", "val", "clear", "color", "auto", "fill", d.HeaderFill), d.Header)
	data := detailsRow(w, nil, message)
	return docx.NewBlock(b.Table(tblPr, b.Wrap("tblGrid", b.El("gridCol", "w", "9638")), header, data))
}

func detailsRow(w writer, shd *etree.Element, s string) *etree.Element {
	b := w.b
	trPr := b.Wrap("trPr", b.El("trHeight", "val", "400", "hRule", "atLeast"))
	tcPr := b.Wrap("tcPr", shd, b.El("vAlign", "val", "center"))
	pPr := b.Wrap("pPr",
		b.El("spacing", "before", "0", "after", "0"),
		b.El("jc", "val", "left"),
	)
	return b.Wrap("tr", trPr, b.Wrap("tc", tcPr, b.Paragraph(pPr, w.run(s, true))))
}

// DetailsHeadline returns a detached headline for the details section,
// styled after the total traffic headline when the report has one.
func DetailsHeadline(doc *docx.Document, c *policy.Compiled) docx.Block {
	text := c.Policy.Details.Headline
	if tmpl, ok := locate.First(doc, docx.KindParagraph, c.TotalTraffic); ok {
		h := tmpl.Clone()
		h.SetText(text)
		return h
	}
	b := doc.Builder()
	return docx.NewBlock(b.Paragraph(nil, b.Run(nil, text)))
}
