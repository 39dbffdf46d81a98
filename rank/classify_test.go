package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func row(cells ...string) KeywordRow {
	return KeywordRow{Keyword: "kw", Cells: cells}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		row       KeywordRow
		wantOK    bool
		wantKind  Kind
		wantPage  bool
		wantLabel string
	}{
		{"reached top", row("5", "3", "1"), true, ReachedTop, false, "\u200b"},
		{"reached top without history", row("-", "", "1"), true, ReachedTop, false, "\u200b"},
		{"kept top", row("1", "8", "1"), true, KeptTop, false, "\u200b"},
		{"no history enters page one", row("-", "", "7"), true, Progressed, true, "!כניסה למקום 7 וכניסה לעמוד הראשון"},
		{"all priors beyond page one", row("15", "12", "9"), true, Progressed, true, "!ממקום 12 למקום 9 וכניסה לעמוד הראשון"},
		{"not improved", row("5", "4", "6"), true, NoChange, false, ""},
		{"equal to prior is not improved", row("6", "6"), true, NoChange, false, ""},
		{"plain progress", row("8", "5"), true, Progressed, false, "ממקום 8 למקום 5"},
		{"progress off page one", row("40", "25"), true, Progressed, false, "ממקום 40 למקום 25"},
		{"no history off page one", row("-", "14"), true, Progressed, false, "כניסה למקום 14"},
		{"gap before latest omits from", row("30", "-", "9"), true, Progressed, true, "!כניסה למקום 9 וכניסה לעמוד הראשון"},
		{"gap before latest with earlier page one", row("8", "-", "5"), true, Progressed, false, "כניסה למקום 5"},
		{"fractional positions", row("12.5", "7.5"), true, Progressed, true, "!ממקום 12.5 למקום 7.5 וכניסה לעמוד הראשון"},
		{"unparsable latest", row("5", "n/a"), false, NoChange, false, ""},
		{"dash latest", row("5", "-"), false, NoChange, false, ""},
		{"single column", row("3"), false, NoChange, false, ""},
		{"no columns", row(), false, NoChange, false, ""},
		{"blank keyword", KeywordRow{Keyword: "  ", Cells: []string{"5", "3"}}, false, NoChange, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.row, DefaultRules())
			assert.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantPage, got.PageOne)
			assert.Equal(t, tt.wantLabel, got.Label)
		})
	}
}

func TestClassify_Rules(t *testing.T) {
	previous := DefaultRules()
	previous.Improvement = ImproveOverPrevious

	allPriors := DefaultRules()
	allPriors.FromLabel = FromAnyPrior

	tests := []struct {
		name      string
		rules     Rules
		row       KeywordRow
		wantKind  Kind
		wantLabel string
	}{
		{"previous only compares preceding cell", previous, row("3", "9", "6"), Progressed, "ממקום 9 למקום 6"},
		{"history rejects same row", DefaultRules(), row("3", "9", "6"), NoChange, ""},
		{"previous treats unknown preceding as improved", previous, row("3", "-", "6"), Progressed, "כניסה למקום 6"},
		{"all priors cites last known prior", allPriors, row("30", "-", "9"), Progressed, "!ממקום 30 למקום 9 וכניסה לעמוד הראשון"},
		{"all priors omits from without history", allPriors, row("-", "-", "9"), Progressed, "!כניסה למקום 9 וכניסה לעמוד הראשון"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.row, tt.rules)
			assert.True(t, ok)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantLabel, got.Label)
		})
	}
}

func TestClassify_MinRankingColumns(t *testing.T) {
	rules := DefaultRules()
	rules.MinRankingColumns = 1

	got, ok := Classify(row("4"), rules)
	assert.True(t, ok)
	assert.Equal(t, Progressed, got.Kind)
	assert.Equal(t, "!כניסה למקום 4 וכניסה לעמוד הראשון", got.Label)
}

func TestClassify_Pure(t *testing.T) {
	r := row("15", "12", "9")
	before := append([]string(nil), r.Cells...)

	first, _ := Classify(r, DefaultRules())
	second, _ := Classify(r, DefaultRules())

	assert.Equal(t, first, second)
	assert.Equal(t, before, r.Cells)
}

func TestOutcome_Destination(t *testing.T) {
	assert.Equal(t, ReachedTable, Outcome{Kind: ReachedTop}.Destination())
	assert.Equal(t, KeptTable, Outcome{Kind: KeptTop}.Destination())
	assert.Equal(t, ProgressedTable, Outcome{Kind: Progressed}.Destination())
	assert.Equal(t, Nowhere, Outcome{Kind: NoChange}.Destination())
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in   string
		want Position
	}{
		{"7", At(7)},
		{" 12 ", At(12)},
		{"3.5", At(3.5)},
		{"-", Unknown},
		{"", Unknown},
		{"NaN", Unknown},
		{"Inf", Unknown},
		{"מעט", Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePosition(tt.in), "ParsePosition(%q)", tt.in)
	}
}

func TestRender(t *testing.T) {
	assert.Equal(t, "from 12 to 9", Render("from {from} to {to}", At(12), 9))
	assert.Equal(t, "to 9", Render("to {to}", Unknown, 9))
}

func TestRules_Validate(t *testing.T) {
	assert.NoError(t, DefaultRules().Validate())

	bad := DefaultRules()
	bad.Improvement = "sometimes"
	assert.Error(t, bad.Validate())

	bad = DefaultRules()
	bad.FromLabel = ""
	assert.Error(t, bad.Validate())

	bad = DefaultRules()
	bad.MinRankingColumns = 0
	assert.Error(t, bad.Validate())

	bad = DefaultRules()
	bad.Labels.PlainFrom = "to {to}"
	assert.Error(t, bad.Validate())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "reached_top", ReachedTop.String())
	assert.Equal(t, "kept_top", KeptTop.String())
	assert.Equal(t, "progressed", Progressed.String())
	assert.Equal(t, "no_change", NoChange.String())
}
