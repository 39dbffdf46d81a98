package edit

import (
	"github.com/tsawler/reportkit/docx"
	"github.com/tsawler/reportkit/locate"
)

// Section is a headline and the table that follows it, cut from the body.
type Section struct {
	Headline docx.Block
	Table    docx.Block
}

// Blocks returns the section's blocks in order, skipping missing ones.
func (s Section) Blocks() []docx.Block {
	var out []docx.Block
	for _, b := range []docx.Block{s.Headline, s.Table} {
		if !b.IsZero() {
			out = append(out, b)
		}
	}
	return out
}

// CutSection detaches the first paragraph matching headline together with
// the first table after it. Nothing is cut unless both exist.
func CutSection(doc *docx.Document, headline locate.Predicate) (Section, bool) {
	head, tbl, ok := locate.TableAfter(doc, headline)
	if !ok {
		return Section{}, false
	}
	doc.Remove(tbl)
	doc.Remove(head)
	return Section{Headline: head, Table: tbl}, true
}

// CutTableByHeader detaches the first table whose first row matches header.
// A paragraph directly above it that matches duplicate is removed as well.
func CutTableByHeader(doc *docx.Document, header, duplicate locate.Predicate) (docx.Block, bool) {
	tbl, ok := locate.FirstTableWithHeader(doc, header)
	if !ok {
		return docx.Block{}, false
	}
	if prev, ok := doc.Prev(tbl); ok && prev.Is(docx.KindParagraph) && locate.Match(prev, duplicate) {
		doc.Remove(prev)
	}
	doc.Remove(tbl)
	return tbl, true
}

// AppendMessageRow adds a single-cell row holding text to tbl.
func AppendMessageRow(doc *docx.Document, tbl docx.Block, text string) docx.Row {
	b := doc.Builder()
	return tbl.AppendRow(b.Row(b.Cell(b.Paragraph(nil, b.Run(nil, text)))))
}

// InsertAfterAnchor inserts blocks, in order, after the first image-bearing
// paragraph, or after the first paragraph when the body has no image.
func InsertAfterAnchor(doc *docx.Document, blocks ...docx.Block) Result {
	if len(blocks) == 0 {
		return Result{}
	}
	anchor, ok := locate.Anchor(doc)
	if !ok {
		return Result{}
	}
	doc.InsertAfter(anchor, blocks...)
	return Result{Applied: true, Inserted: len(blocks)}
}
