package policy

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/reportkit/rank"
)

func TestDefault_Compiles(t *testing.T) {
	c, err := Default().Compile()
	require.NoError(t, err)

	assert.True(t, c.MonthlyComparison("השוואה חודשית"))
	assert.True(t, c.CollapsibleStarts("ביטויים המובילים לאתר מעמוד ראשון ושני בגוגל"))
	assert.True(t, c.Title(`דו"ח תקופתי - יולי 2025`))
	assert.True(t, c.MonthlyReport("בעקבות פעולות הקידום: הגענו"))
	assert.True(t, c.Reached("הגענו למקום מעולה (עמוד 1 שורה 1)"))
	assert.True(t, c.DateRange("01 יולי 2025 עד 31 יולי 2025"))
	assert.False(t, c.DateRange("יולי 2025"))
	assert.Equal(t, rank.DefaultRules(), c.Rules)
}

func TestCompile_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Policy)
	}{
		{"bad regex", func(p *Policy) { p.Markers.DateRange = Matcher{Kind: Regex, Value: "("} }},
		{"unknown kind", func(p *Policy) { p.Markers.Links.Kind = "fuzzy" }},
		{"empty marker", func(p *Policy) { p.Markers.Title.Value = "" }},
		{"no start markers", func(p *Policy) { p.Markers.CollapsibleStarts = nil }},
		{"bad variant", func(p *Policy) { p.Variant = "both" }},
		{"bad color", func(p *Policy) { p.Header.Color = "#17365D" }},
		{"zero size", func(p *Policy) { p.Cells.Size = 0 }},
		{"missing headline", func(p *Policy) { p.Scaffold.Kept = " " }},
		{"zero image width", func(p *Policy) { p.Image.MaxWidthPx = 0 }},
		{"bad ranking rule", func(p *Policy) { p.Ranking.Improvement = "never" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(&p)
			_, err := p.Compile()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPolicy), "got %v", err)
		})
	}
}

func TestParse_OverlaysDefault(t *testing.T) {
	p, err := Parse([]byte(`
variant: links-first
ranking:
  improvement: previous
  from_label: all-priors
markers:
  keywords:
    kind: contains
    value: keywords in promotion
`))
	require.NoError(t, err)

	assert.Equal(t, LinksFirst, p.Variant)
	assert.Equal(t, rank.ImproveOverPrevious, p.Ranking.Improvement)
	assert.Equal(t, rank.FromAnyPrior, p.Ranking.FromLabel)
	assert.Equal(t, Matcher{Kind: Contains, Value: "keywords in promotion"}, p.Markers.Keywords)
	// untouched fields keep their defaults
	assert.Equal(t, Default().Markers.TotalTraffic, p.Markers.TotalTraffic)
	assert.Equal(t, 400, p.Image.MaxWidthPx)

	_, err = p.Compile()
	assert.NoError(t, err)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("colour: red\n"))
	assert.True(t, errors.Is(err, ErrInvalidPolicy), "got %v", err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)

	p, err := Parse(data)
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), p); diff != "" {
		t.Errorf("policy changed after round trip (-want +got):\n%s", diff)
	}
}

func TestDetailsText(t *testing.T) {
	c := MustCompile(Default())
	assert.Equal(t, "אין נתונים זמינים", c.DetailsText(""))
	assert.Equal(t, "custom", c.DetailsText("custom"))
}

func TestParse_Empty(t *testing.T) {
	p, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default().Variant, p.Variant)
}
