package rank

import (
	"math"
	"strconv"
	"strings"
)

// Position is one parsed ranking cell.
type Position struct {
	Value float64
	Known bool
}

// Unknown is the position of a blank, dash or unparsable cell.
var Unknown = Position{}

// At returns a known position.
func At(v float64) Position {
	return Position{Value: v, Known: true}
}

// ParsePosition parses a ranking cell. Surrounding blanks are ignored; a
// blank cell, a dash, or text that is not a finite number yields Unknown.
func ParsePosition(s string) Position {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return Unknown
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Unknown
	}
	return At(v)
}

// String renders a known position in its shortest exact decimal form.
func (p Position) String() string {
	if !p.Known {
		return "-"
	}
	return FormatNumber(p.Value)
}

// FormatNumber renders v without trailing zeros: 7 as "7", 7.5 as "7.5".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// KeywordRow is a keyword and its ranking cells, oldest first.
type KeywordRow struct {
	Keyword string
	Cells   []string
}

// Positions parses every ranking cell.
func (r KeywordRow) Positions() []Position {
	out := make([]Position, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = ParsePosition(c)
	}
	return out
}
