package numbers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classify(value int64) *Classifier {
	return NewClassifier(value, NewEstimator())
}

func TestClassifier_SingleNumberReport(t *testing.T) {
	report := classify(1).Report()
	require.Len(t, report, len(All()))

	got := make(map[string]bool, len(report))
	for _, r := range report {
		got[r.Property.Label()] = r.Holds
	}

	assert.Equal(t, map[string]bool{
		"buzz":        false,
		"duck":        false,
		"palindromic": true,
		"gapful":      false,
		"spy":         true,
		"square":      true,
		"sunny":       false,
		"jumping":     true,
		"happy":       true,
		"even":        false,
		"odd":         true,
		"sad":         false,
	}, got)
}

func TestClassifier_Predicates(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		property Property
		want     bool
	}{
		{name: "zero is even", value: 0, property: Even, want: true},
		{name: "seven is odd", value: 7, property: Odd, want: true},
		{name: "ends in seven is buzz", value: 17, property: Buzz, want: true},
		{name: "multiple of seven is buzz", value: 14, property: Buzz, want: true},
		{name: "eleven is not buzz", value: 11, property: Buzz, want: false},
		{name: "internal zero is duck", value: 102, property: Duck, want: true},
		{name: "trailing zero is duck", value: 1000, property: Duck, want: true},
		{name: "no zero is not duck", value: 123, property: Duck, want: false},
		{name: "single digit is palindromic", value: 5, property: Palindromic, want: true},
		{name: "12321 is palindromic", value: 12321, property: Palindromic, want: true},
		{name: "1231 is not palindromic", value: 1231, property: Palindromic, want: false},
		{name: "two digits are never gapful", value: 11, property: Gapful, want: false},
		{name: "100 is gapful", value: 100, property: Gapful, want: true},
		{name: "1001 is gapful", value: 1001, property: Gapful, want: true},
		{name: "101 is not gapful", value: 101, property: Gapful, want: false},
		{name: "1124 is spy", value: 1124, property: Spy, want: true},
		{name: "123 is spy", value: 123, property: Spy, want: true},
		{name: "124 is not spy", value: 124, property: Spy, want: false},
		{name: "zero is not spy", value: 0, property: Spy, want: false},
		{name: "zero is square", value: 0, property: Square, want: true},
		{name: "144 is square", value: 144, property: Square, want: true},
		{name: "145 is not square", value: 145, property: Square, want: false},
		{name: "8 is sunny", value: 8, property: Sunny, want: true},
		{name: "3 is sunny", value: 3, property: Sunny, want: true},
		{name: "4 is not sunny", value: 4, property: Sunny, want: false},
		{name: "max int is not sunny", value: math.MaxInt64, property: Sunny, want: false},
		{name: "single digit is jumping", value: 9, property: Jumping, want: true},
		{name: "98789 is jumping", value: 98789, property: Jumping, want: true},
		{name: "135 is not jumping", value: 135, property: Jumping, want: false},
		{name: "7 is happy", value: 7, property: Happy, want: true},
		{name: "10 is happy", value: 10, property: Happy, want: true},
		{name: "4 is sad", value: 4, property: Sad, want: true},
		{name: "zero is sad", value: 0, property: Sad, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.value).Is(tt.property))
		})
	}
}

func TestClassifier_ComplementaryPairs(t *testing.T) {
	est := NewEstimator()
	for v := int64(0); v < 2000; v++ {
		c := NewClassifier(v, est)
		assert.NotEqual(t, c.Is(Even), c.Is(Odd), "even/odd for %d", v)
		assert.NotEqual(t, c.Is(Happy), c.Is(Sad), "happy/sad for %d", v)
		assert.False(t, c.Is(Square) && c.Is(Sunny), "square and sunny for %d", v)
		est = c.Estimator()
	}

	neither := classify(2)
	assert.False(t, neither.Is(Square))
	assert.False(t, neither.Is(Sunny))
}

func TestClassifier_DuckShortcutAgreesWithSpy(t *testing.T) {
	for v := int64(0); v < 5000; v++ {
		shortcut := classify(v)
		if !shortcut.Is(Duck) {
			continue
		}
		cached := shortcut.Is(Spy)
		direct := classify(v).Is(Spy)
		assert.Equal(t, direct, cached, "spy for duck number %d", v)
		assert.False(t, cached)
	}
}

func TestClassifier_Memoization(t *testing.T) {
	c := classify(12321)

	first := c.Is(Palindromic)
	require.Equal(t, 1, c.evaluations)

	second := c.Is(Palindromic)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.evaluations)
}

func TestClassifier_PartnerCachedWithoutTest(t *testing.T) {
	c := classify(10)

	require.True(t, c.Is(Even))
	assert.False(t, c.Is(Odd))
	assert.Equal(t, 1, c.evaluations, "odd should come from the cache")

	c = classify(9)
	require.True(t, c.Is(Square))
	assert.False(t, c.Is(Sunny))
	assert.Equal(t, 1, c.evaluations)
}

func TestClassifier_FalseResultLeavesPartnerUnset(t *testing.T) {
	c := classify(11)

	require.False(t, c.Is(Even))
	_, cached := c.results[Odd]
	assert.False(t, cached)
	assert.True(t, c.Is(Odd))
}

func TestClassifier_SunnyCarriesEstimatorBack(t *testing.T) {
	c := NewClassifier(99, NewEstimator())

	require.True(t, c.Is(Sunny))
	assert.Equal(t, Estimator{Root: 10, Square: 100}, c.Estimator())
}

func TestClassifier_Holding(t *testing.T) {
	holding := classify(1000).Holding()
	assert.Equal(t, []Property{Even, Duck, Gapful, Happy}, holding)
}

func TestClassifier_String(t *testing.T) {
	c := classify(997)
	assert.Equal(t, "997", c.String())
	assert.Equal(t, int64(997), c.Value())
}
