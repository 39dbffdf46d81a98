package policy

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tsawler/reportkit/locate"
	"github.com/tsawler/reportkit/rank"
)

// ErrInvalidPolicy is returned when a policy cannot be parsed or compiled.
var ErrInvalidPolicy = errors.New("invalid policy")

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Compiled is a validated policy with its markers turned into predicates.
type Compiled struct {
	Policy Policy
	Rules  rank.Rules

	MonthlyComparison   locate.Predicate
	CollapsibleStarts   locate.Predicate
	CollapsibleTrailing locate.Predicate
	DateRange           locate.Predicate
	Links               locate.Predicate
	Title               locate.Predicate
	MonthlyReport       locate.Predicate
	TotalTraffic        locate.Predicate
	Keywords            locate.Predicate
	Reached             locate.Predicate
	Kept                locate.Predicate
	Progressed          locate.Predicate
	Group               locate.Predicate
	DetailsTable        locate.Predicate
	DetailsHeadline     locate.Predicate
	LocalSearches       locate.Predicate
	FewSearches         locate.Predicate
}

// MustCompile compiles p and panics on error. It is meant for Default.
func MustCompile(p Policy) *Compiled {
	c, err := p.Compile()
	if err != nil {
		panic(err)
	}
	return c
}

// Compile validates p and compiles its markers.
func (p Policy) Compile() (*Compiled, error) {
	c := &Compiled{Policy: p, Rules: p.Ranking.Rules()}

	var errs []error
	one := func(name string, m Matcher) locate.Predicate {
		pred, err := m.Predicate()
		if err != nil {
			errs = append(errs, fmt.Errorf("markers.%s: %w", name, err))
		}
		return pred
	}
	many := func(name string, ms []Matcher) locate.Predicate {
		if len(ms) == 0 {
			errs = append(errs, fmt.Errorf("markers.%s: at least one matcher is required", name))
			return nil
		}
		preds := make([]locate.Predicate, 0, len(ms))
		for i, m := range ms {
			preds = append(preds, one(fmt.Sprintf("%s[%d]", name, i), m))
		}
		return locate.Any(preds...)
	}

	m := p.Markers
	c.MonthlyComparison = one("monthly_comparison", m.MonthlyComparison)
	c.CollapsibleStarts = many("collapsible_starts", m.CollapsibleStarts)
	c.CollapsibleTrailing = one("collapsible_trailing", m.CollapsibleTrailing)
	c.DateRange = one("date_range", m.DateRange)
	c.Links = one("links", m.Links)
	c.Title = one("title", m.Title)
	c.MonthlyReport = many("monthly_report", m.MonthlyReport)
	c.TotalTraffic = one("total_traffic", m.TotalTraffic)
	c.Keywords = one("keywords", m.Keywords)
	c.Reached = one("reached", m.Reached)
	c.Kept = one("kept", m.Kept)
	c.Progressed = one("progressed", m.Progressed)
	c.Group = one("group", m.Group)
	c.DetailsTable = one("details_table", m.DetailsTable)
	c.DetailsHeadline = one("details_headline", m.DetailsHeadline)
	c.LocalSearches = one("local_searches", m.LocalSearches)
	c.FewSearches = one("few_searches", m.FewSearches)

	errs = append(errs, p.validate()...)
	if err := c.Rules.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("ranking: %w", err))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPolicy, errors.Join(errs...))
	}
	return c, nil
}

func (p Policy) validate() []error {
	var errs []error
	switch p.Variant {
	case DetailsFirst, LinksFirst:
	default:
		errs = append(errs, fmt.Errorf("variant must be %q or %q, got %q", DetailsFirst, LinksFirst, p.Variant))
	}

	for name, size := range map[string]int{
		"header.size":           p.Header.Size,
		"cells.size":            p.Cells.Size,
		"cells.low_volume_size": p.Cells.LowVolumeSize,
		"scaffold.bullet_size":  p.Scaffold.BulletSize,
	} {
		if size <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, size))
		}
	}

	for name, color := range map[string]string{
		"header.color":          p.Header.Color,
		"header.border_color":   p.Header.BorderColor,
		"scaffold.border_color": p.Scaffold.BorderColor,
		"details.border_color":  p.Details.BorderColor,
		"details.header_fill":   p.Details.HeaderFill,
	} {
		if !hexColor.MatchString(color) {
			errs = append(errs, fmt.Errorf("%s must be a six digit hex color, got %q", name, color))
		}
	}

	for name, s := range map[string]string{
		"scaffold.group":      p.Scaffold.Group,
		"scaffold.reached":    p.Scaffold.Reached,
		"scaffold.kept":       p.Scaffold.Kept,
		"scaffold.progressed": p.Scaffold.Progressed,
		"details.headline":    p.Details.Headline,
		"details.header":      p.Details.Header,
		"cells.font":          p.Cells.Font,
	} {
		if strings.TrimSpace(s) == "" {
			errs = append(errs, fmt.Errorf("%s is required", name))
		}
	}

	if p.Image.MaxWidthPx <= 0 {
		errs = append(errs, fmt.Errorf("image.max_width_px must be positive, got %d", p.Image.MaxWidthPx))
	}
	if p.Header.SpacingAfter < 0 {
		errs = append(errs, fmt.Errorf("header.spacing_after must not be negative, got %d", p.Header.SpacingAfter))
	}
	return errs
}

// DetailsText returns text, or the default details message when text is
// empty.
func (c *Compiled) DetailsText(text string) string {
	if text == "" {
		return c.Policy.Details.DefaultText
	}
	return text
}
