package rank

import (
	"fmt"
	"strings"
)

// Improvement selects how an improvement is detected.
type Improvement string

const (
	// ImproveOverHistory requires the latest position to beat every known
	// prior position.
	ImproveOverHistory Improvement = "history"
	// ImproveOverPrevious compares only with the immediately preceding
	// cell; an unknown preceding cell counts as improved.
	ImproveOverPrevious Improvement = "previous"
)

// FromLabel selects when a label cites a prior position.
type FromLabel string

const (
	// FromPreviousCell cites a prior only when the immediately preceding
	// cell holds a position.
	FromPreviousCell FromLabel = "previous-cell"
	// FromAnyPrior cites the most recent known prior and omits it only
	// when every prior is unknown.
	FromAnyPrior FromLabel = "all-priors"
)

// Labels are the label templates. {from} and {to} are replaced with the
// prior and latest positions.
type Labels struct {
	Reached     string `yaml:"reached"`
	Kept        string `yaml:"kept"`
	PageOne     string `yaml:"page_one"`
	PageOneFrom string `yaml:"page_one_from"`
	Plain       string `yaml:"plain"`
	PlainFrom   string `yaml:"plain_from"`
}

// Rules configure Classify.
type Rules struct {
	Improvement Improvement
	FromLabel   FromLabel
	// MinRankingColumns is the least number of ranking cells a row needs.
	MinRankingColumns int
	// PageOneMax is the worst position still on the first results page.
	PageOneMax float64
	Labels     Labels
}

// DefaultLabels returns the Hebrew report labels.
func DefaultLabels() Labels {
	return Labels{
		Reached:     "\u200b",
		Kept:        "\u200b",
		PageOne:     "!כניסה למקום {to} וכניסה לעמוד הראשון",
		PageOneFrom: "!ממקום {from} למקום {to} וכניסה לעמוד הראשון",
		Plain:       "כניסה למקום {to}",
		PlainFrom:   "ממקום {from} למקום {to}",
	}
}

// DefaultRules returns the rules used when nothing is configured.
func DefaultRules() Rules {
	return Rules{
		Improvement:       ImproveOverHistory,
		FromLabel:         FromPreviousCell,
		MinRankingColumns: 2,
		PageOneMax:        10,
		Labels:            DefaultLabels(),
	}
}

// Validate reports the first invalid rule.
func (r Rules) Validate() error {
	switch r.Improvement {
	case ImproveOverHistory, ImproveOverPrevious:
	default:
		return fmt.Errorf("unknown improvement rule %q", r.Improvement)
	}
	switch r.FromLabel {
	case FromPreviousCell, FromAnyPrior:
	default:
		return fmt.Errorf("unknown from-label rule %q", r.FromLabel)
	}
	if r.MinRankingColumns < 1 {
		return fmt.Errorf("min ranking columns must be at least 1, got %d", r.MinRankingColumns)
	}
	if r.PageOneMax < 1 {
		return fmt.Errorf("page one max must be at least 1, got %v", r.PageOneMax)
	}
	for name, tmpl := range map[string]string{
		"page_one_from": r.Labels.PageOneFrom,
		"plain_from":    r.Labels.PlainFrom,
	} {
		if !strings.Contains(tmpl, "{from}") {
			return fmt.Errorf("label %s must contain {from}", name)
		}
	}
	for name, tmpl := range map[string]string{
		"page_one":      r.Labels.PageOne,
		"page_one_from": r.Labels.PageOneFrom,
		"plain":         r.Labels.Plain,
		"plain_from":    r.Labels.PlainFrom,
	} {
		if !strings.Contains(tmpl, "{to}") {
			return fmt.Errorf("label %s must contain {to}", name)
		}
	}
	return nil
}

// Render fills a label template.
func Render(tmpl string, from Position, to float64) string {
	return strings.NewReplacer("{from}", from.String(), "{to}", FormatNumber(to)).Replace(tmpl)
}
