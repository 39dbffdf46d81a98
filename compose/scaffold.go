package compose

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/tsawler/reportkit/docx"
	"github.com/tsawler/reportkit/edit"
	"github.com/tsawler/reportkit/locate"
	"github.com/tsawler/reportkit/policy"
)

// Scaffold inserts the keyword performance section under the logo: an intro
// headline with its bullet paragraph, the group headline, and a headline
// with an empty table for each destination. Headlines are styled after the
// total traffic headline. Without that headline or a logo nothing is
// inserted.
func Scaffold(doc *docx.Document, c *policy.Compiled) edit.Result {
	tmpl, ok := locate.First(doc, docx.KindParagraph, c.TotalTraffic)
	if !ok {
		return edit.Result{}
	}
	logo, ok := locate.FirstImageParagraph(doc)
	if !ok {
		return edit.Result{}
	}

	s := c.Policy.Scaffold
	b := doc.Builder()

	intro := tmpl.Clone()
	intro.RemoveRuns()
	intro.AppendChildren(b.Run(nil, s.IntroTitle), b.Break(), b.Run(nil, s.IntroSubtitle))

	headline := func(text string) docx.Block {
		h := tmpl.Clone()
		h.SetText(text)
		return h
	}

	blocks := []docx.Block{
		intro,
		docx.NewBlock(bulletParagraph(b, s.Bullets, s.BulletSize)),
		headline(s.Group),
		headline(s.Reached),
		docx.NewBlock(destinationTable(b, s.BorderColor)),
		headline(s.Kept),
		docx.NewBlock(destinationTable(b, s.BorderColor)),
		headline(s.Progressed),
		docx.NewBlock(destinationTable(b, s.BorderColor)),
	}
	doc.InsertAfter(logo, blocks...)
	return edit.Result{Applied: true, Inserted: len(blocks)}
}

// bulletParagraph returns one right-to-left paragraph with a line per
// bullet.
func bulletParagraph(b docx.Builder, bullets []string, size int) *etree.Element {
	sz := strconv.Itoa(size)
	p := b.Paragraph(b.Wrap("pPr", b.El("bidi")))
	for _, line := range bullets {
		rPr := b.Wrap("rPr", b.El("sz", "val", sz), b.El("szCs", "val", sz))
		p.AddChild(b.Run(rPr, strings.TrimSpace(line)))
		p.AddChild(b.Break())
	}
	return p
}

// destinationTable returns an empty full-width, fixed-layout, two-column
// table whose borders are drawn in color.
func destinationTable(b docx.Builder, color string) *etree.Element {
	tblPr := b.Wrap("tblPr",
		fullWidth(b),
		borders(b, color),
		b.El("tblLayout", "type", "fixed"),
	)
	grid := b.Wrap("tblGrid", b.El("gridCol", "w", "4819"), b.El("gridCol", "w", "4819"))
	return b.Table(tblPr, grid)
}
