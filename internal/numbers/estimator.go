package numbers

import "math"

const (
	// maxRoot is the largest root whose square fits in an int64.
	maxRoot int64 = 3037000499

	// leapRoots is how many roots away the estimate may be before it is
	// recomputed instead of walked.
	leapRoots int64 = 64
)

// Estimator is the running guess of the perfect square nearest to the most
// recently tested value. It is passed by value from one classifier to the
// next so that testing consecutive values only walks the few roots between
// them.
type Estimator struct {
	Root   int64
	Square int64
}

// NewEstimator returns the starting estimate 1².
func NewEstimator() Estimator {
	return Estimator{Root: 1, Square: 1}
}

// Test reports whether value is a perfect square and returns the moved
// estimate, which the caller should keep for the next value.
func (e Estimator) Test(value int64) (bool, Estimator) {
	if value == 0 {
		return true, NewEstimator()
	}

	// Re-anchor when the guess is at least value away, e.g. after a jump
	// backward. The threshold is a heuristic, not a proven bound.
	if e.Root < 1 || e.Root > maxRoot || e.Square != e.Root*e.Root || distance(e.Square, value) >= value {
		e = NewEstimator()
	}

	// Jump straight to the floor root instead of walking many roots. The
	// answer is the same either way.
	if distance(e.Square, value) > 2*leapRoots*e.Root+leapRoots*leapRoots {
		root := floorRoot(value)
		e = Estimator{Root: root, Square: root * root}
	}

	if e.Square > value {
		for e.Square > value {
			e.Root--
			e.Square = e.Root * e.Root
		}
		return e.Square == value, e
	}

	for e.Square < value {
		if e.Root >= maxRoot {
			return false, e
		}
		e.Root++
		e.Square = e.Root * e.Root
	}
	return e.Square == value, e
}

func floorRoot(value int64) int64 {
	root := min(int64(math.Sqrt(float64(value))), maxRoot)
	for root*root > value {
		root--
	}
	for root < maxRoot && (root+1)*(root+1) <= value {
		root++
	}
	return root
}

func distance(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
