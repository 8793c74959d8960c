package numbers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func directSquare(v int64) bool {
	root := int64(math.Sqrt(float64(v)))
	for root*root > v {
		root--
	}
	for (root+1)*(root+1) <= v {
		root++
	}
	return root*root == v
}

func TestEstimator_MatchesDirectSquareOnIncreasingRun(t *testing.T) {
	est := NewEstimator()
	for v := int64(0); v <= 20000; v++ {
		var hit bool
		hit, est = est.Test(v)
		assert.Equal(t, directSquare(v), hit, "square(%d)", v)
	}
}

func TestEstimator_MatchesDirectSquareWithGaps(t *testing.T) {
	est := NewEstimator()
	for v := int64(3); v < 5_000_000; v = v*3/2 + 7 {
		var hit bool
		hit, est = est.Test(v)
		assert.Equal(t, directSquare(v), hit, "square(%d)", v)
	}
}

func TestEstimator_JumpBackward(t *testing.T) {
	_, est := NewEstimator().Test(1_000_000)
	assert.Equal(t, Estimator{Root: 1000, Square: 1_000_000}, est)

	hit, est := est.Test(49)
	assert.True(t, hit)
	assert.Equal(t, Estimator{Root: 7, Square: 49}, est)
}

func TestEstimator_StaysNearConsecutiveValues(t *testing.T) {
	est := Estimator{Root: 31, Square: 961}

	hit, est := est.Test(997)
	assert.False(t, hit)
	assert.Equal(t, Estimator{Root: 32, Square: 1024}, est)

	hit, est = est.Test(1024)
	assert.True(t, hit)
	assert.Equal(t, int64(32), est.Root)
}

func TestEstimator_Zero(t *testing.T) {
	hit, est := Estimator{Root: 40, Square: 1600}.Test(0)
	assert.True(t, hit)
	assert.Equal(t, NewEstimator(), est)
}

func TestEstimator_LargeValues(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		want  bool
	}{
		{name: "largest int64 square", value: maxRoot * maxRoot, want: true},
		{name: "one past largest square", value: maxRoot*maxRoot + 1, want: false},
		{name: "max int", value: math.MaxInt64, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := Estimator{Root: maxRoot - 2, Square: (maxRoot - 2) * (maxRoot - 2)}
			hit, est := seed.Test(tt.value)
			assert.Equal(t, tt.want, hit)
			assert.LessOrEqual(t, est.Root, maxRoot)
		})
	}
}

func TestEstimator_LeapsOverLongWalks(t *testing.T) {
	hit, est := NewEstimator().Test(999_999_999_999)
	assert.False(t, hit)
	assert.Equal(t, int64(1_000_000), est.Root)

	hit, est = est.Test(4_000_000_000_000)
	assert.True(t, hit)
	assert.Equal(t, Estimator{Root: 2_000_000, Square: 4_000_000_000_000}, est)
}

func TestEstimator_RepairsInconsistentState(t *testing.T) {
	hit, est := Estimator{Root: 5, Square: 7}.Test(36)
	assert.True(t, hit)
	assert.Equal(t, Estimator{Root: 6, Square: 36}, est)
}
