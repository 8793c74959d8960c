// Package filter validates include/exclude property sets and applies them to
// classified numbers.
package filter

import (
	"slices"
	"strings"

	"github.com/Veraticus/amazing-numbers/internal/numbers"
)

// ExcludePrefix marks a property token that must not hold.
const ExcludePrefix = "-"

// Filter is a validated pair of required and forbidden properties, each kept
// in catalog order without duplicates.
type Filter struct {
	Included []numbers.Property
	Excluded []numbers.Property
}

// Parse resolves property tokens and validates the resulting filter. Unknown
// tokens are reported together as an *UnknownPropertyError and suppress the
// conflict checks; otherwise conflicts come back as a *ConflictError.
func Parse(tokens []string) (Filter, error) {
	var (
		included []numbers.Property
		excluded []numbers.Property
		unknown  []string
	)

	for _, token := range tokens {
		name, exclude := strings.CutPrefix(token, ExcludePrefix)
		p, ok := numbers.Lookup(name)
		switch {
		case !ok:
			upper := strings.ToUpper(token)
			if !slices.Contains(unknown, upper) {
				unknown = append(unknown, upper)
			}
		case exclude:
			excluded = append(excluded, p)
		default:
			included = append(included, p)
		}
	}

	if len(unknown) > 0 {
		return Filter{}, &UnknownPropertyError{Names: unknown}
	}

	return Validate(included, excluded)
}

// Validate checks included and excluded properties against the catalog's
// exclusivity rules. Every check runs so that all conflicts are reported at
// once.
func Validate(included, excluded []numbers.Property) (Filter, error) {
	f := Filter{
		Included: normalize(included),
		Excluded: normalize(excluded),
	}

	var conflicts []Conflict
	conflicts = append(conflicts, pairConflicts(f.Included, KindIncluded, false)...)
	conflicts = append(conflicts, pairConflicts(f.Excluded, KindExcluded, true)...)
	for _, p := range f.Included {
		if slices.Contains(f.Excluded, p) {
			conflicts = append(conflicts, Conflict{Kind: KindContradiction, A: p, B: p})
		}
	}

	if len(conflicts) > 0 {
		return Filter{}, &ConflictError{Conflicts: conflicts}
	}
	return f, nil
}

// pairConflicts reports each exclusive pair found inside set once, with the
// earlier catalog entry first.
func pairConflicts(set []numbers.Property, kind Kind, completeOnly bool) []Conflict {
	var conflicts []Conflict
	for _, p := range set {
		partner, ok := p.Exclusive()
		if !ok || partner < p || !slices.Contains(set, partner) {
			continue
		}
		if completeOnly && !p.Complete() {
			continue
		}
		conflicts = append(conflicts, Conflict{Kind: kind, A: p, B: partner})
	}
	return conflicts
}

func normalize(props []numbers.Property) []numbers.Property {
	out := slices.Clone(props)
	slices.Sort(out)
	return slices.Compact(out)
}

// Empty reports whether the filter places no constraint on numbers.
func (f Filter) Empty() bool {
	return len(f.Included) == 0 && len(f.Excluded) == 0
}

// Matches reports whether every included property holds for c and no
// excluded property does. Evaluation stops at the first failure.
func (f Filter) Matches(c *numbers.Classifier) bool {
	for _, p := range f.Included {
		if !c.Is(p) {
			return false
		}
	}
	for _, p := range f.Excluded {
		if c.Is(p) {
			return false
		}
	}
	return true
}
