package numbers

import (
	"math"
	"strconv"
	"strings"
)

// Classifier evaluates catalog properties for a single value. Results are
// cached per instance, and the square estimate moves as SQUARE and SUNNY
// are tested.
type Classifier struct {
	results   map[Property]bool
	digits    string
	value     int64
	estimator Estimator
	// evaluations counts test function runs.
	evaluations int
}

// Result pairs a property with whether it holds.
type Result struct {
	Property Property
	Holds    bool
}

// NewClassifier creates a classifier for value seeded with the estimate left
// by the previously classified value.
func NewClassifier(value int64, estimator Estimator) *Classifier {
	return &Classifier{
		value:     value,
		digits:    strconv.FormatInt(value, 10),
		estimator: estimator,
		results:   make(map[Property]bool, propertyCount),
	}
}

// Value returns the classified integer.
func (c *Classifier) Value() int64 {
	return c.value
}

// String returns the canonical decimal form of the value.
func (c *Classifier) String() string {
	return c.digits
}

// Estimator returns the square estimate after every test run so far. Seed
// the next classifier in a sequence with it.
func (c *Classifier) Estimator() Estimator {
	return c.estimator
}

// Is reports whether p holds for the value. A property that holds settles its
// exclusive partner as false without running the partner's test.
func (c *Classifier) Is(p Property) bool {
	if !p.Valid() {
		return false
	}
	if holds, ok := c.results[p]; ok {
		return holds
	}

	c.evaluations++
	holds := catalog[p].test(c)
	c.results[p] = holds
	if partner, ok := p.Exclusive(); ok && holds {
		c.results[partner] = false
	}
	return holds
}

// Holding evaluates every property and returns those that hold, in catalog
// order.
func (c *Classifier) Holding() []Property {
	var holding []Property
	for p := range propertyCount {
		if c.Is(p) {
			holding = append(holding, p)
		}
	}
	return holding
}

// Report evaluates every property in catalog order.
func (c *Classifier) Report() []Result {
	report := make([]Result, 0, propertyCount)
	for p := range propertyCount {
		report = append(report, Result{Property: p, Holds: c.Is(p)})
	}
	return report
}

func isEven(c *Classifier) bool {
	return c.value%2 == 0
}

func isOdd(c *Classifier) bool {
	return !isEven(c)
}

func isBuzz(c *Classifier) bool {
	return strings.HasSuffix(c.digits, "7") || c.value%7 == 0
}

func isDuck(c *Classifier) bool {
	return strings.ContainsRune(c.digits, '0')
}

func isPalindromic(c *Classifier) bool {
	s := c.digits
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

func isGapful(c *Classifier) bool {
	s := c.digits
	if len(s) < 3 {
		return false
	}
	divisor := int64(s[0]-'0')*10 + int64(s[len(s)-1]-'0')
	return c.value%divisor == 0
}

func isSpy(c *Classifier) bool {
	var sum int64
	product := int64(1)
	for v := c.value; v > 0; v /= 10 {
		digit := v % 10
		sum += digit
		product *= digit
	}
	return sum == product
}

func isSquare(c *Classifier) bool {
	holds, next := c.estimator.Test(c.value)
	c.estimator = next
	return holds
}

func isSunny(c *Classifier) bool {
	if c.value == math.MaxInt64 {
		return false
	}
	neighbor := NewClassifier(c.value+1, c.estimator)
	holds := isSquare(neighbor)
	c.estimator = neighbor.estimator
	return holds
}

func isJumping(c *Classifier) bool {
	s := c.digits
	for i := 1; i < len(s); i++ {
		if diff := int(s[i]) - int(s[i-1]); diff != 1 && diff != -1 {
			return false
		}
	}
	return true
}

func isHappy(c *Classifier) bool {
	seen := make(map[int64]struct{})
	for v := c.value; ; {
		if v == 1 {
			return true
		}
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
		v = digitSquareSum(v)
	}
}

func isSad(c *Classifier) bool {
	return !isHappy(c)
}

func digitSquareSum(v int64) int64 {
	var sum int64
	for ; v > 0; v /= 10 {
		digit := v % 10
		sum += digit * digit
	}
	return sum
}
