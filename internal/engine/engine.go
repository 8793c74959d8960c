// Package engine drives property classification across single numbers and
// ranges.
package engine

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/Veraticus/amazing-numbers/internal/filter"
	"github.com/Veraticus/amazing-numbers/internal/numbers"
)

// cancelCheckInterval is how many scanned integers pass between context
// checks in a search.
const cancelCheckInterval = 4096

// Engine answers queries for one interactive process. It carries the square
// estimate from each query to the next, so a user stepping through nearby
// numbers keeps the benefit of earlier work.
type Engine struct {
	estimator       numbers.Estimator
	searchWarnAfter int64
}

// Config holds configuration options for the engine.
type Config struct {
	// SearchWarnAfter is the number of integers a filtered search may scan
	// before a warning is logged. Zero disables the warning.
	SearchWarnAfter int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SearchWarnAfter: 10_000_000,
	}
}

// New creates an engine with the default configuration.
func New() *Engine {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(config Config) *Engine {
	return &Engine{
		estimator:       numbers.NewEstimator(),
		searchWarnAfter: config.SearchWarnAfter,
	}
}

// Estimator returns the estimate that the next query will start from.
func (e *Engine) Estimator() numbers.Estimator {
	return e.estimator
}

// Single classifies one number and evaluates every property.
func (e *Engine) Single(value int64) *numbers.Classifier {
	c := numbers.NewClassifier(value, e.estimator)
	c.Holding()
	e.estimator = c.Estimator()
	return c
}

// List yields count consecutive numbers starting at start. It ends early
// once ctx is done.
func (e *Engine) List(ctx context.Context, start, count int64) iter.Seq[*numbers.Classifier] {
	return func(yield func(*numbers.Classifier) bool) {
		for visit := range Run(start, count, filter.Filter{}, e.estimator) {
			e.estimator = visit.Estimator
			if ctx.Err() != nil || !yield(visit.Number) {
				return
			}
		}
	}
}

// Search yields the first count numbers at or above start that satisfy f.
// It scans without an upper bound, so a filter with few or no matches runs
// until ctx is done or the caller stops iterating.
func (e *Engine) Search(ctx context.Context, start, count int64, f filter.Filter) iter.Seq[*numbers.Classifier] {
	return func(yield func(*numbers.Classifier) bool) {
		var scanned, found int64
		warned := false
		defer func() {
			slog.Debug("Search finished", "start", start, "scanned", scanned, "found", found)
		}()

		for visit := range Run(start, count, f, e.estimator) {
			e.estimator = visit.Estimator
			scanned++

			if scanned%cancelCheckInterval == 0 && ctx.Err() != nil {
				return
			}

			if !warned && e.searchWarnAfter > 0 && scanned >= e.searchWarnAfter {
				warned = true
				slog.Warn("Search is scanning a sparse filter",
					"start", start,
					"scanned", scanned,
					"found", found,
					"wanted", count)
			}

			if !visit.Matched {
				continue
			}
			found++
			if !yield(visit.Number) {
				return
			}
		}
	}
}

// PropertyCount is how many numbers in a tally hold a property.
type PropertyCount struct {
	Property numbers.Property `json:"property" yaml:"property"`
	Count    int64            `json:"count" yaml:"count"`
}

// Tally summarizes a range by property.
type Tally struct {
	Counts []PropertyCount `json:"counts" yaml:"counts"`
	Start  int64           `json:"start" yaml:"start"`
	Total  int64           `json:"total" yaml:"total"`
}

// Tally classifies count numbers from start and counts how many hold each
// property. onStep, if set, is called once per number.
func (e *Engine) Tally(ctx context.Context, start, count int64, onStep func()) (Tally, error) {
	t := Tally{Start: start}
	counts := make([]int64, len(numbers.All()))

	for c := range e.List(ctx, start, count) {
		for _, p := range c.Holding() {
			counts[p]++
		}
		t.Total++

		if onStep != nil {
			onStep()
		}
	}

	if err := ctx.Err(); err != nil {
		return Tally{}, fmt.Errorf("tally interrupted after %d numbers: %w", t.Total, err)
	}

	for _, p := range numbers.All() {
		t.Counts = append(t.Counts, PropertyCount{Property: p, Count: counts[p]})
	}
	return t, nil
}
