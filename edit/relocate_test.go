package edit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/reportkit/docx"
	"github.com/tsawler/reportkit/edit"
	"github.com/tsawler/reportkit/internal/docxtest"
	"github.com/tsawler/reportkit/locate"
)

func TestCutSectionAndInsertAfterAnchor(t *testing.T) {
	doc := docxtest.Open(t, docxtest.P("title")+docxtest.Image("rId1", 5, 5)+docxtest.P("body")+
		docxtest.P("links")+docxtest.P("note")+docxtest.Table([]string{"url"})+docxtest.P("end"))

	sec, ok := edit.CutSection(doc, locate.Exact("links"))
	require.True(t, ok)
	assert.Equal(t, []string{"title", "", "body", "note", "end"}, docxtest.Texts(doc))

	res := edit.InsertAfterAnchor(doc, sec.Blocks()...)
	assert.True(t, res.Applied)
	assert.Equal(t, 2, res.Inserted)
	assert.Equal(t, []string{"title", "", "links", "url", "body", "note", "end"}, docxtest.Texts(doc))
}

func TestCutSection_NoTable(t *testing.T) {
	doc := docxtest.Open(t, docxtest.P("links")+docxtest.P("x"))

	_, ok := edit.CutSection(doc, locate.Exact("links"))
	assert.False(t, ok)
	assert.Equal(t, 2, doc.Len(), "headline stays when it has no table")
}

func TestCutTableByHeader(t *testing.T) {
	doc := docxtest.Open(t, docxtest.P("first")+docxtest.P("done this month:")+
		docxtest.Table([]string{"פירוט"}, []string{"fixed titles"})+docxtest.P("end"))

	tbl, ok := edit.CutTableByHeader(doc, locate.Contains("פירוט"), locate.Exact("done this month:"))
	require.True(t, ok)
	assert.Equal(t, []string{"first", "end"}, docxtest.Texts(doc))

	row := edit.AppendMessageRow(doc, tbl, "no data")
	assert.Len(t, row.Cells(), 1)
	rows := tbl.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "no data", rows[2].Text())

	edit.InsertAfterAnchor(doc, tbl)
	assert.Equal(t, []string{"first", "פירוטfixed titlesno data", "end"}, docxtest.Texts(doc))
}

func TestCutTableByHeader_KeepsUnrelatedParagraph(t *testing.T) {
	doc := docxtest.Open(t, docxtest.P("other")+docxtest.Table([]string{"פירוט"}))

	_, ok := edit.CutTableByHeader(doc, locate.Contains("פירוט"), locate.Exact("done this month:"))
	require.True(t, ok)
	assert.Equal(t, []string{"other"}, docxtest.Texts(doc))
}

func TestInsertAfterAnchor_NoParagraph(t *testing.T) {
	doc := docxtest.Open(t, docxtest.Table([]string{"only"}))
	b := doc.Builder()
	p := b.Paragraph(nil, b.Run(nil, "x"))

	res := edit.InsertAfterAnchor(doc, docx.NewBlock(p))
	assert.False(t, res.Applied)
	assert.Equal(t, 1, doc.Len())
}
