package locate_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/reportkit/docx"
	"github.com/tsawler/reportkit/internal/docxtest"
	"github.com/tsawler/reportkit/locate"
)

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		pred locate.Predicate
		in   string
		want bool
	}{
		{"exact", locate.Exact("תנועה כוללת"), "תנועה כוללת", true},
		{"exact normalizes marker", locate.Exact("  תנועה   כוללת "), "תנועה כוללת", true},
		{"exact rejects longer", locate.Exact("תנועה"), "תנועה כוללת", false},
		{"prefix", locate.Prefix(`דו"ח תקופתי`), `דו"ח תקופתי - מרץ`, true},
		{"prefix miss", locate.Prefix("פעולות שוטפות"), "אין פעולות שוטפות", false},
		{"contains", locate.Contains("שמרנו על מקום מעולה"), "שמרנו על מקום מעולה (עמוד 1 שורה 1)", true},
		{"regex", locate.Regex(regexp.MustCompile(`\d{4}\s+עד`)), "1 מרץ 2024 עד 31 מרץ 2024", true},
		{"any", locate.Any(locate.Exact("a"), nil, locate.Exact("b")), "b", true},
		{"any empty", locate.Any(), "b", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pred(tt.in))
		})
	}
}

func TestFirstMatchesAcrossRuns(t *testing.T) {
	doc := docxtest.Open(t, docxtest.P("intro")+docxtest.P("תנועה ", " כוללת")+docxtest.P("תנועה כוללת"))

	b, ok := locate.First(doc, docx.KindParagraph, locate.Exact("תנועה כוללת"))
	require.True(t, ok)
	assert.Equal(t, 1, doc.Index(b))

	_, ok = locate.First(doc, docx.KindTable, locate.Exact("תנועה כוללת"))
	assert.False(t, ok)
}

func TestAllAndNth(t *testing.T) {
	doc := docxtest.Open(t, docxtest.P("m")+docxtest.P("x")+docxtest.Table([]string{"m"})+docxtest.P("m"))

	got := locate.All(doc, docx.KindParagraph, locate.Exact("m"))
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, 3, got[1].Index)

	assert.Len(t, locate.All(doc, locate.AnyKind, locate.Exact("m")), 3)

	second, ok := locate.Nth(doc, docx.KindParagraph, locate.Exact("m"), 1)
	require.True(t, ok)
	assert.Equal(t, 3, second.Index)

	_, ok = locate.Nth(doc, docx.KindParagraph, locate.Exact("m"), 2)
	assert.False(t, ok)
	_, ok = locate.Nth(doc, docx.KindParagraph, locate.Exact("m"), -1)
	assert.False(t, ok)
}

func TestTableAfter(t *testing.T) {
	doc := docxtest.Open(t, docxtest.Table([]string{"before"})+docxtest.P("ביטויים בקידום")+
		docxtest.P("note")+docxtest.Table([]string{"kw"}, []string{"shoes"}))

	head, tbl, ok := locate.TableAfter(doc, locate.Exact("ביטויים בקידום"))
	require.True(t, ok)
	assert.Equal(t, 1, doc.Index(head))
	assert.Equal(t, 3, doc.Index(tbl))

	doc = docxtest.Open(t, docxtest.P("ביטויים בקידום"))
	head, _, ok = locate.TableAfter(doc, locate.Exact("ביטויים בקידום"))
	assert.False(t, ok)
	assert.False(t, head.IsZero(), "headline is still reported")
}

func TestFirstTableWithHeader(t *testing.T) {
	doc := docxtest.Open(t, docxtest.Table()+docxtest.Table([]string{"other"})+
		docxtest.Table([]string{"פירוט הפעולות"}, []string{"x"}))

	tbl, ok := locate.FirstTableWithHeader(doc, locate.Contains("פירוט"))
	require.True(t, ok)
	assert.Equal(t, 2, doc.Index(tbl))

	_, ok = locate.FirstTableWithHeader(doc, locate.Contains("missing"))
	assert.False(t, ok)

	_, ok = locate.FirstTableWithHeader(doc, nil)
	assert.False(t, ok)
}

func TestAnchor(t *testing.T) {
	doc := docxtest.Open(t, docxtest.Table([]string{"t"})+docxtest.P("first")+docxtest.Image("rId1", 10, 10))

	img, ok := locate.FirstImageParagraph(doc)
	require.True(t, ok)
	assert.Equal(t, 2, doc.Index(img))

	anchor, ok := locate.Anchor(doc)
	require.True(t, ok)
	assert.Equal(t, 2, doc.Index(anchor))

	doc = docxtest.Open(t, docxtest.Table([]string{"t"})+docxtest.P("first"))
	anchor, ok = locate.Anchor(doc)
	require.True(t, ok)
	assert.Equal(t, "first", anchor.Text())

	doc = docxtest.Open(t, docxtest.Table([]string{"t"}))
	_, ok = locate.Anchor(doc)
	assert.False(t, ok)
}
