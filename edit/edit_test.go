package edit_test

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/reportkit/docx"
	"github.com/tsawler/reportkit/edit"
	"github.com/tsawler/reportkit/internal/docxtest"
	"github.com/tsawler/reportkit/locate"
)

type block struct {
	Kind string
	Text string
}

func snapshot(doc *docx.Document) []block {
	var out []block
	for _, b := range doc.Blocks() {
		out = append(out, block{Kind: b.Kind().String(), Text: b.Text()})
	}
	return out
}

const marker = "השוואה חודשית"

func TestMergeDuplicateHeadlines(t *testing.T) {
	doc := docxtest.Open(t, docxtest.P("intro")+
		docxtest.P(marker)+docxtest.P("first")+docxtest.P("  ")+
		docxtest.P(marker)+docxtest.Table([]string{"chart"})+docxtest.P("")+docxtest.P("second")+
		docxtest.P(marker)+docxtest.P("tail")+docxtest.SectPr())

	res := edit.MergeDuplicateHeadlines(doc, locate.Exact(marker))

	assert.True(t, res.Applied)
	assert.Equal(t, 2, res.Removed)
	assert.Equal(t, []string{"intro", marker, "first", "chart", "", "second", marker, "tail", ""}, docxtest.Texts(doc))
}

func TestMergeDuplicateHeadlines_LeavesOneMarker(t *testing.T) {
	doc := docxtest.Open(t, docxtest.P(marker)+docxtest.P("a")+docxtest.P(marker)+docxtest.P("b"))

	edit.MergeDuplicateHeadlines(doc, locate.Exact(marker))

	assert.Len(t, locate.All(doc, docx.KindParagraph, locate.Exact(marker)), 1)
	assert.Equal(t, []string{marker, "a", "b"}, docxtest.Texts(doc))
}

func TestMergeDuplicateHeadlines_DropsBlankTextImages(t *testing.T) {
	doc := docxtest.Open(t, docxtest.P(marker)+docxtest.P("a")+docxtest.Image("rId1", 10, 10)+
		docxtest.P(marker)+docxtest.P("b"))

	res := edit.MergeDuplicateHeadlines(doc, locate.Exact(marker))

	assert.Equal(t, 2, res.Removed)
	require.Equal(t, []string{marker, "a", "b"}, docxtest.Texts(doc))
	for _, b := range doc.Blocks() {
		assert.False(t, b.HasImage(), "block %q", b.Text())
	}
}

func TestMergeDuplicateHeadlines_NoOp(t *testing.T) {
	for name, body := range map[string]string{
		"none": docxtest.P("a") + docxtest.P(""),
		"one":  docxtest.P(marker) + docxtest.P("") + docxtest.P("a"),
	} {
		t.Run(name, func(t *testing.T) {
			doc := docxtest.Open(t, body)
			before := snapshot(doc)

			res := edit.MergeDuplicateHeadlines(doc, locate.Exact(marker))

			assert.False(t, res.Applied)
			if diff := cmp.Diff(before, snapshot(doc)); diff != "" {
				t.Errorf("document changed (-before +after):\n%s", diff)
			}
		})
	}
}

func TestRemoveBracketedSection(t *testing.T) {
	starts := locate.Any(locate.Exact("start a"), locate.Exact("start b"))
	trailing := locate.Exact("top words")

	doc := docxtest.Open(t, docxtest.P("keep")+
		docxtest.P("start b")+docxtest.P("inside")+docxtest.Table([]string{"x"})+
		docxtest.P("top words")+docxtest.Table([]string{"t1"})+docxtest.Table([]string{"t2"})+
		docxtest.P("after")+docxtest.Table([]string{"kept table"})+docxtest.P("")+docxtest.SectPr())

	res := edit.RemoveBracketedSection(doc, starts, trailing)

	assert.True(t, res.Applied)
	assert.Equal(t, []string{"keep", "after", "kept table", ""}, docxtest.Texts(doc))
}

func TestRemoveBracketedSection_FailOpen(t *testing.T) {
	doc := docxtest.Open(t, docxtest.P("keep")+docxtest.P("start a")+docxtest.P("x")+
		docxtest.Table([]string{"y"})+docxtest.SectPr())

	res := edit.RemoveBracketedSection(doc, locate.Exact("start a"), locate.Exact("top words"))

	assert.True(t, res.Applied)
	require.Equal(t, 2, doc.Len())
	assert.Equal(t, "keep", doc.Blocks()[0].Text())
	assert.Equal(t, docx.KindSectionProperties, doc.Blocks()[1].Kind())
}

func TestRemoveBracketedSection_Absent(t *testing.T) {
	doc := docxtest.Open(t, docxtest.P("keep")+docxtest.P("")+docxtest.P("top words"))
	before := snapshot(doc)

	res := edit.RemoveBracketedSection(doc, locate.Exact("start a"), locate.Exact("top words"))

	assert.False(t, res.Applied)
	assert.Empty(t, cmp.Diff(before, snapshot(doc)))
}

func TestRemoveMatching(t *testing.T) {
	dates := locate.Regex(regexp.MustCompile(`\b\d{1,2}\s+\S+\s+\d{4}\s+עד\s+\d{1,2}\s+\S+\s+\d{4}\b`))
	doc := docxtest.Open(t, docxtest.P("title")+docxtest.P("01 יולי 2025 עד 31 יולי 2025")+
		docxtest.P("")+docxtest.P("report for 1 יוני 2025 עד 30 יוני 2025 period")+docxtest.P("body"))

	res := edit.RemoveMatching(doc, dates)

	assert.True(t, res.Applied)
	assert.Equal(t, 3, res.Removed)
	assert.Equal(t, []string{"title", "body"}, docxtest.Texts(doc))
}

func TestRemoveFirst(t *testing.T) {
	doc := docxtest.Open(t, docxtest.P("links")+docxtest.P("x")+docxtest.P("links"))

	res := edit.RemoveFirst(doc, locate.Exact("links"))

	assert.True(t, res.Applied)
	assert.Equal(t, []string{"x", "links"}, docxtest.Texts(doc))
	assert.False(t, edit.RemoveFirst(doc, locate.Exact("missing")).Applied)
}

func TestCleanup(t *testing.T) {
	doc := docxtest.Open(t, docxtest.P("a")+docxtest.P(" ")+docxtest.Image("rId1", 5, 5)+
		`<w:p><w:r><w:br/></w:r></w:p>`+docxtest.Table([]string{""})+`<w:sectPr/>`+docxtest.SectPr())

	res := edit.Cleanup(doc)
	assert.True(t, res.Applied)
	assert.Equal(t, 3, res.Removed)

	once := snapshot(doc)
	again := edit.Cleanup(doc)
	assert.False(t, again.Applied)
	if diff := cmp.Diff(once, snapshot(doc)); diff != "" {
		t.Errorf("second cleanup changed the document:\n%s", diff)
	}
	assert.Equal(t, []block{
		{"paragraph", "a"},
		{"paragraph", ""},
		{"table", ""},
		{"sectPr", ""},
	}, once)
}

func TestResult_Add(t *testing.T) {
	got := edit.Result{Applied: false, Removed: 1}.Add(edit.Result{Applied: true, Inserted: 2})
	assert.Equal(t, edit.Result{Applied: true, Removed: 1, Inserted: 2}, got)
}
