// Package policy holds the report template: the markers that identify each
// section, the texts and presentation constants of generated content, and
// the ranking rules.
//
// A Policy is plain data and round-trips through YAML. [Policy.Compile]
// validates it once and turns every marker into a [locate.Predicate]; the
// pipeline only ever sees the compiled form.
package policy

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/reportkit/rank"
)

// Variant selects which relocated section ends up first at the top of the
// report.
type Variant string

const (
	// DetailsFirst places the details section above the links section.
	DetailsFirst Variant = "details-first"
	// LinksFirst places the links section above the details section.
	LinksFirst Variant = "links-first"
)

// Policy is the full template configuration.
type Policy struct {
	Variant  Variant  `yaml:"variant"`
	Markers  Markers  `yaml:"markers"`
	Scaffold Scaffold `yaml:"scaffold"`
	Header   Header   `yaml:"header"`
	Cells    Cells    `yaml:"cells"`
	Details  Details  `yaml:"details"`
	Image    Image    `yaml:"image"`
	Ranking  Ranking  `yaml:"ranking"`
}

// Markers locate existing sections of the report.
type Markers struct {
	MonthlyComparison   Matcher   `yaml:"monthly_comparison"`
	CollapsibleStarts   []Matcher `yaml:"collapsible_starts"`
	CollapsibleTrailing Matcher   `yaml:"collapsible_trailing"`
	DateRange           Matcher   `yaml:"date_range"`
	Links               Matcher   `yaml:"links"`
	Title               Matcher   `yaml:"title"`
	MonthlyReport       []Matcher `yaml:"monthly_report"`
	TotalTraffic        Matcher   `yaml:"total_traffic"`
	Keywords            Matcher   `yaml:"keywords"`
	Reached             Matcher   `yaml:"reached"`
	Kept                Matcher   `yaml:"kept"`
	Progressed          Matcher   `yaml:"progressed"`
	Group               Matcher   `yaml:"group"`
	DetailsTable        Matcher   `yaml:"details_table"`
	DetailsHeadline     Matcher   `yaml:"details_headline"`
	LocalSearches       Matcher   `yaml:"local_searches"`
	FewSearches         Matcher   `yaml:"few_searches"`
}

// Scaffold holds the texts of the generated keyword section.
type Scaffold struct {
	IntroTitle    string   `yaml:"intro_title"`
	IntroSubtitle string   `yaml:"intro_subtitle"`
	Bullets       []string `yaml:"bullets"`
	BulletSize    int      `yaml:"bullet_size"`
	Group         string   `yaml:"group"`
	Reached       string   `yaml:"reached"`
	Kept          string   `yaml:"kept"`
	Progressed    string   `yaml:"progressed"`
	BorderColor   string   `yaml:"border_color"`
}

// Header styles the promoted title. Sizes are in half-points.
type Header struct {
	Size         int    `yaml:"size"`
	Color        string `yaml:"color"`
	BorderColor  string `yaml:"border_color"`
	SpacingAfter int    `yaml:"spacing_after"`
}

// Cells styles generated table cells. Sizes are in half-points.
type Cells struct {
	Font          string `yaml:"font"`
	Size          int    `yaml:"size"`
	LowVolumeText string `yaml:"low_volume_text"`
	LowVolumeSize int    `yaml:"low_volume_size"`
}

// Details configures the relocated details section.
type Details struct {
	Headline    string `yaml:"headline"`
	Header      string `yaml:"header"`
	DefaultText string `yaml:"default_text"`
	BorderColor string `yaml:"border_color"`
	HeaderFill  string `yaml:"header_fill"`
}

// Image configures logo promotion.
type Image struct {
	MaxWidthPx int `yaml:"max_width_px"`
}

// Ranking configures keyword classification.
type Ranking struct {
	Improvement       rank.Improvement `yaml:"improvement"`
	FromLabel         rank.FromLabel   `yaml:"from_label"`
	MinRankingColumns int              `yaml:"min_ranking_columns"`
	PageOneMax        float64          `yaml:"page_one_max"`
	Labels            rank.Labels      `yaml:"labels"`
}

// Rules returns the classifier rules.
func (r Ranking) Rules() rank.Rules {
	return rank.Rules{
		Improvement:       r.Improvement,
		FromLabel:         r.FromLabel,
		MinRankingColumns: r.MinRankingColumns,
		PageOneMax:        r.PageOneMax,
		Labels:            r.Labels,
	}
}

// Parse reads a YAML policy. Fields the document leaves out keep their
// Default values.
func Parse(data []byte) (Policy, error) {
	return ParseOver(Default(), data)
}

// ParseOver reads a YAML policy on top of base.
func ParseOver(base Policy, data []byte) (Policy, error) {
	p := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Policy{}, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}
	return p, nil
}

// Marshal renders p as YAML.
func (p Policy) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("failed to encode policy: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode policy: %w", err)
	}
	return buf.Bytes(), nil
}
