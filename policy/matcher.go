package policy

import (
	"fmt"
	"regexp"

	"github.com/tsawler/reportkit/locate"
)

// MatchKind names a matching mechanism.
type MatchKind string

// Matcher kinds.
const (
	Exact    MatchKind = "exact"
	Prefix   MatchKind = "prefix"
	Contains MatchKind = "contains"
	Regex    MatchKind = "regex"
)

// Matcher maps a section role to the text that identifies it.
type Matcher struct {
	Kind  MatchKind `yaml:"kind"`
	Value string    `yaml:"value"`
}

// Predicate compiles the matcher.
func (m Matcher) Predicate() (locate.Predicate, error) {
	if m.Value == "" {
		return nil, fmt.Errorf("empty %s matcher", m.Kind)
	}
	switch m.Kind {
	case Exact:
		return locate.Exact(m.Value), nil
	case Prefix:
		return locate.Prefix(m.Value), nil
	case Contains:
		return locate.Contains(m.Value), nil
	case Regex:
		re, err := regexp.Compile(m.Value)
		if err != nil {
			return nil, fmt.Errorf("bad regex %q: %w", m.Value, err)
		}
		return locate.Regex(re), nil
	default:
		return nil, fmt.Errorf("unknown matcher kind %q", m.Kind)
	}
}

func exact(s string) Matcher    { return Matcher{Kind: Exact, Value: s} }
func prefix(s string) Matcher   { return Matcher{Kind: Prefix, Value: s} }
func contains(s string) Matcher { return Matcher{Kind: Contains, Value: s} }
