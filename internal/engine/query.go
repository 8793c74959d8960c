package engine

import (
	"iter"
	"math"

	"github.com/Veraticus/amazing-numbers/internal/filter"
	"github.com/Veraticus/amazing-numbers/internal/numbers"
)

// Visit is one integer touched by a range query.
type Visit struct {
	Number *numbers.Classifier
	// Estimator is the square estimate left by Number, already handed to the
	// next integer.
	Estimator numbers.Estimator
	Matched   bool
}

// Run lazily walks integers upward from start, seeding each classifier with
// the estimate left by the previous one.
//
// With an empty filter it yields exactly count consecutive integers, all
// matched. Otherwise it yields every integer it visits, matched or not, and
// stops once count of them have matched; the scan has no upper bound. Both
// modes stop at math.MaxInt64.
//
// Matched numbers have every property evaluated before they are yielded, so
// their estimate is final.
func Run(start, count int64, f filter.Filter, seed numbers.Estimator) iter.Seq[Visit] {
	return func(yield func(Visit) bool) {
		if count <= 0 || start < 0 {
			return
		}

		est := seed
		var matched int64
		for value := start; ; value++ {
			c := numbers.NewClassifier(value, est)

			ok := f.Matches(c)
			if ok {
				c.Holding()
				matched++
			} else {
				// Keep the estimate moving through numbers that fail early.
				c.Is(numbers.Square)
			}
			est = c.Estimator()

			if !yield(Visit{Number: c, Estimator: est, Matched: ok}) {
				return
			}

			// An empty filter matches everything, so this also bounds
			// listing mode to count integers.
			if matched == count || value == math.MaxInt64 {
				return
			}
		}
	}
}
