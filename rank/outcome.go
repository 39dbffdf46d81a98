package rank

// Kind is the classification of a keyword row.
type Kind int

const (
	// NoChange means the latest position did not improve on the history.
	NoChange Kind = iota
	// ReachedTop means the keyword is at position 1 for the first time.
	ReachedTop
	// KeptTop means the keyword is at position 1 and has been before.
	KeptTop
	// Progressed means the latest position is better than the history.
	Progressed
)

// String returns the metric-friendly name of the kind.
func (k Kind) String() string {
	switch k {
	case ReachedTop:
		return "reached_top"
	case KeptTop:
		return "kept_top"
	case Progressed:
		return "progressed"
	default:
		return "no_change"
	}
}

// Destination identifies the table an outcome is rendered into.
type Destination int

const (
	// Nowhere is the destination of NoChange outcomes.
	Nowhere Destination = iota
	// ReachedTable holds keywords that reached position 1.
	ReachedTable
	// KeptTable holds keywords that kept position 1.
	KeptTable
	// ProgressedTable holds keywords that improved.
	ProgressedTable
)

// Outcome is the result of classifying one row.
type Outcome struct {
	Kind Kind
	// From is the prior position cited in the label, if any.
	From Position
	// To is the latest position.
	To float64
	// PageOne is set when a progressed keyword entered the first results
	// page.
	PageOne bool
	// Label is the rendered text of the outcome's label cell.
	Label string
}

// Destination returns the table the outcome belongs in.
func (o Outcome) Destination() Destination {
	switch o.Kind {
	case ReachedTop:
		return ReachedTable
	case KeptTop:
		return KeptTable
	case Progressed:
		return ProgressedTable
	default:
		return Nowhere
	}
}
