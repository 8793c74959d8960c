package filter

import (
	"fmt"
	"strings"

	"github.com/Veraticus/amazing-numbers/internal/numbers"
)

// Kind tells which exclusivity check produced a conflict.
type Kind int

// Conflict kinds.
const (
	// KindIncluded is two exclusive properties that are both required.
	KindIncluded Kind = iota
	// KindExcluded is a complete pair that is entirely forbidden.
	KindExcluded
	// KindContradiction is a property that is both required and forbidden.
	KindContradiction
)

func (k Kind) String() string {
	switch k {
	case KindIncluded:
		return "included"
	case KindExcluded:
		return "excluded"
	case KindContradiction:
		return "contradiction"
	default:
		return "unknown"
	}
}

// Conflict is one impossible combination in a filter.
type Conflict struct {
	Kind Kind
	A    numbers.Property
	B    numbers.Property
}

// String renders the conflicting pair the way it was requested, e.g.
// [EVEN, ODD], [-EVEN, -ODD] or [-EVEN, EVEN].
func (c Conflict) String() string {
	switch c.Kind {
	case KindExcluded:
		return fmt.Sprintf("[%s%s, %s%s]", ExcludePrefix, c.A, ExcludePrefix, c.B)
	case KindContradiction:
		return fmt.Sprintf("[%s%s, %s]", ExcludePrefix, c.A, c.B)
	default:
		return fmt.Sprintf("[%s, %s]", c.A, c.B)
	}
}

// UnknownPropertyError lists requested property tokens that match no catalog
// entry.
type UnknownPropertyError struct {
	Names []string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("unknown properties: %s", strings.Join(e.Names, ", "))
}

// ConflictError lists every mutually exclusive combination in a filter.
type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	pairs := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		pairs[i] = c.String()
	}
	return fmt.Sprintf("mutually exclusive properties: %s", strings.Join(pairs, " "))
}
