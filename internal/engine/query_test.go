package engine

import (
	"math"
	"testing"

	"github.com/Veraticus/amazing-numbers/internal/filter"
	"github.com/Veraticus/amazing-numbers/internal/numbers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFilter(t *testing.T, tokens ...string) filter.Filter {
	t.Helper()
	f, err := filter.Parse(tokens)
	require.NoError(t, err)
	return f
}

func TestRun_ListingMode(t *testing.T) {
	var values []int64
	holding := map[int64][]numbers.Property{}
	for visit := range Run(997, 5, filter.Filter{}, numbers.NewEstimator()) {
		require.True(t, visit.Matched)
		values = append(values, visit.Number.Value())
		holding[visit.Number.Value()] = visit.Number.Holding()
	}

	assert.Equal(t, []int64{997, 998, 999, 1000, 1001}, values)
	assert.Contains(t, holding[1000], numbers.Duck)
	assert.Contains(t, holding[1000], numbers.Gapful)
	for v, props := range holding {
		assert.NotContains(t, props, numbers.Square, "%d", v)
	}
}

func TestRun_FilteredMode(t *testing.T) {
	var matched []int64
	visited := 0
	for visit := range Run(1, 2, mustFilter(t, "even", "-odd"), numbers.NewEstimator()) {
		visited++
		if visit.Matched {
			matched = append(matched, visit.Number.Value())
		}
	}

	assert.Equal(t, []int64{2, 4}, matched)
	assert.Equal(t, 4, visited)
}

func TestRun_EstimatorAdvancesThroughNonMatches(t *testing.T) {
	f := mustFilter(t, "buzz")
	var last Visit
	for visit := range Run(1, 3, f, numbers.NewEstimator()) {
		root := math.Sqrt(float64(visit.Number.Value()))
		assert.InDelta(t, root, float64(visit.Estimator.Root), 1, "estimate for %d", visit.Number.Value())
		last = visit
	}

	require.True(t, last.Matched)
	assert.Equal(t, int64(17), last.Number.Value())
	// Sunny runs after square, so the estimate ends at the root below 18.
	assert.Equal(t, numbers.Estimator{Root: 4, Square: 16}, last.Estimator)
}

func TestRun_SquaresMatchDirectComputation(t *testing.T) {
	found := 0
	for visit := range Run(0, 10, mustFilter(t, "square"), numbers.NewEstimator()) {
		if !visit.Matched {
			continue
		}
		assert.Equal(t, int64(found*found), visit.Number.Value())
		found++
	}
	assert.Equal(t, 10, found)
}

func TestRun_StopsWhenConsumerBreaks(t *testing.T) {
	count := 0
	for range Run(0, 100, filter.Filter{}, numbers.NewEstimator()) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestRun_StopsAtMaxInt(t *testing.T) {
	var values []int64
	for visit := range Run(math.MaxInt64-1, 5, filter.Filter{}, numbers.NewEstimator()) {
		values = append(values, visit.Number.Value())
	}
	assert.Equal(t, []int64{math.MaxInt64 - 1, math.MaxInt64}, values)
}

func TestRun_NothingToDo(t *testing.T) {
	for range Run(5, 0, filter.Filter{}, numbers.NewEstimator()) {
		t.Fatal("expected no visits")
	}
}
