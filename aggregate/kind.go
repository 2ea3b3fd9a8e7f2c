package aggregate

import "strings"

// Kind classifies an exported symbol by its naming convention
type Kind int

const (
	// Declarations is an exported array merged into a component declaration list
	Declarations Kind = iota
	// States is an exported array flattened into a state list
	States
)

// Kinds lists every kind in emission order
var Kinds = []Kind{Declarations, States}

// String returns the name of the generated export for the kind
func (k Kind) String() string {
	switch k {
	case Declarations:
		return "declarations"
	case States:
		return "states"
	}
	return "unknown"
}

// Suffix returns the identifier suffix recognized for the kind
func (k Kind) Suffix() string {
	switch k {
	case Declarations:
		return "DECLARATIONS"
	case States:
		return "STATES"
	}
	return ""
}

// Spread reports whether elements are flattened into the parent array
func (k Kind) Spread() bool {
	return k == States
}

// KindOf classifies an identifier; ok is false for identifiers of no kind
func KindOf(name string) (kind Kind, ok bool) {
	for _, candidate := range Kinds {
		if strings.HasSuffix(name, candidate.Suffix()) {
			return candidate, true
		}
	}
	return 0, false
}
