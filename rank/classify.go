package rank

import "strings"

// Classify classifies one row. It reports false when the row is skipped
// before classification: the keyword is blank, there are fewer ranking
// cells than rules.MinRankingColumns, or the latest cell holds no position.
// A row whose latest position did not improve yields NoChange.
func Classify(row KeywordRow, rules Rules) (Outcome, bool) {
	if strings.TrimSpace(row.Keyword) == "" {
		return Outcome{}, false
	}
	cells := row.Positions()
	if len(cells) == 0 || len(cells) < rules.MinRankingColumns {
		return Outcome{}, false
	}
	last := cells[len(cells)-1]
	if !last.Known {
		return Outcome{}, false
	}
	prior := cells[:len(cells)-1]
	to := last.Value

	if to == 1 {
		for _, p := range prior {
			if p.Known && p.Value == 1 {
				return Outcome{Kind: KeptTop, To: to, Label: rules.Labels.Kept}, true
			}
		}
		return Outcome{Kind: ReachedTop, To: to, Label: rules.Labels.Reached}, true
	}

	if !improved(prior, to, rules.Improvement) {
		return Outcome{Kind: NoChange, To: to}, true
	}

	out := Outcome{
		Kind:    Progressed,
		To:      to,
		From:    citedPrior(prior, rules.FromLabel),
		PageOne: to <= rules.PageOneMax && neverOnPageOne(prior, rules.PageOneMax),
	}
	out.Label = Render(labelFor(out, rules.Labels), out.From, to)
	return out, true
}

func improved(prior []Position, to float64, rule Improvement) bool {
	if rule == ImproveOverPrevious {
		if len(prior) == 0 {
			return true
		}
		prev := prior[len(prior)-1]
		return !prev.Known || prev.Value > to
	}
	for _, p := range prior {
		if p.Known && p.Value <= to {
			return false
		}
	}
	return true
}

// neverOnPageOne reports whether every known prior is worse than max.
func neverOnPageOne(prior []Position, max float64) bool {
	for _, p := range prior {
		if p.Known && p.Value <= max {
			return false
		}
	}
	return true
}

func citedPrior(prior []Position, rule FromLabel) Position {
	if len(prior) == 0 {
		return Unknown
	}
	if rule == FromPreviousCell {
		return prior[len(prior)-1]
	}
	for i := len(prior) - 1; i >= 0; i-- {
		if prior[i].Known {
			return prior[i]
		}
	}
	return Unknown
}

func labelFor(o Outcome, l Labels) string {
	switch {
	case o.PageOne && o.From.Known:
		return l.PageOneFrom
	case o.PageOne:
		return l.PageOne
	case o.From.Known:
		return l.PlainFrom
	default:
		return l.Plain
	}
}
