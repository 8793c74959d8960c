// Package numbers classifies non-negative integers by a fixed catalog of
// numeric properties.
package numbers

import "strings"

// Property identifies one entry of the property catalog.
type Property int

// Catalog entries in declaration order. The order is used both for
// evaluation and for display.
const (
	Even Property = iota
	Odd
	Buzz
	Duck
	Palindromic
	Gapful
	Spy
	Square
	Sunny
	Jumping
	Happy
	Sad

	propertyCount
)

const noPartner Property = -1

type definition struct {
	test      func(*Classifier) bool
	name      string
	exclusive Property
	// complete is set when the property and its exclusive partner
	// between them hold for every integer.
	complete bool
}

var catalog = [propertyCount]definition{
	Even:        {name: "EVEN", complete: true, exclusive: Odd, test: isEven},
	Odd:         {name: "ODD", complete: true, exclusive: Even, test: isOdd},
	Buzz:        {name: "BUZZ", exclusive: noPartner, test: isBuzz},
	Duck:        {name: "DUCK", exclusive: Spy, test: isDuck},
	Palindromic: {name: "PALINDROMIC", exclusive: noPartner, test: isPalindromic},
	Gapful:      {name: "GAPFUL", exclusive: noPartner, test: isGapful},
	Spy:         {name: "SPY", exclusive: Duck, test: isSpy},
	Square:      {name: "SQUARE", exclusive: Sunny, test: isSquare},
	Sunny:       {name: "SUNNY", exclusive: Square, test: isSunny},
	Jumping:     {name: "JUMPING", exclusive: noPartner, test: isJumping},
	Happy:       {name: "HAPPY", complete: true, exclusive: Sad, test: isHappy},
	Sad:         {name: "SAD", complete: true, exclusive: Happy, test: isSad},
}

// All returns every property in catalog order.
func All() []Property {
	all := make([]Property, propertyCount)
	for i := range all {
		all[i] = Property(i)
	}
	return all
}

// Names returns the upper-case names of every property in catalog order.
func Names() []string {
	names := make([]string, propertyCount)
	for i := range catalog {
		names[i] = catalog[i].name
	}
	return names
}

// Lookup finds a property by name, ignoring case.
func Lookup(name string) (Property, bool) {
	upper := strings.ToUpper(name)
	for i := range catalog {
		if catalog[i].name == upper {
			return Property(i), true
		}
	}
	return noPartner, false
}

// Valid reports whether p is a catalog entry.
func (p Property) Valid() bool {
	return p >= 0 && p < propertyCount
}

// String returns the upper-case property name.
func (p Property) String() string {
	if !p.Valid() {
		return "UNKNOWN"
	}
	return catalog[p].name
}

// Label returns the lower-case property name used in listings.
func (p Property) Label() string {
	return strings.ToLower(p.String())
}

// Complete reports whether p and its exclusive partner cover every integer.
func (p Property) Complete() bool {
	return p.Valid() && catalog[p].complete
}

// Exclusive returns the property that can never hold together with p.
func (p Property) Exclusive() (Property, bool) {
	if !p.Valid() || catalog[p].exclusive == noPartner {
		return noPartner, false
	}
	return catalog[p].exclusive, true
}

// MarshalText lets properties serialize by label.
func (p Property) MarshalText() ([]byte, error) {
	return []byte(p.Label()), nil
}
