// Package optimizer builds the best-scoring conflict-free weekly schedule
// for a set of required subjects under a student's constraints.
package optimizer

import (
	"context"

	"github.com/schedulewise/schedulewise-api/internal/models"
)

// Result carries the best schedule found together with its quality score
// and the amount of search work performed.
type Result struct {
	Schedule     *models.Schedule
	Score        float64
	Combinations int
}

// Optimizer is the search-strategy contract. Implementations return a nil
// Result when no combination yields a feasible schedule; a non-nil error
// signals an internal defect, never a normal no-solution outcome.
type Optimizer interface {
	Optimize(ctx context.Context, subjects []models.Subject, constraint models.StudentConstraint, requiredCodes map[string]struct{}) (*Result, error)
}

// Options tunes the search.
type Options struct {
	// MaxCombinationSize caps the subset size during enumeration. Defaults
	// to 7, bounding the combinatorial explosion for large catalogs.
	MaxCombinationSize int

	// RequireFullCoverage makes placing every required subject a hard
	// contract: only the full required set is attempted, and a combination
	// that cannot place one of its subjects is discarded. When false the
	// search keeps the historical best-effort behavior and may return a
	// schedule omitting required subjects that could not be placed.
	RequireFullCoverage bool

	// Parallelism is the number of workers evaluating combinations. Each
	// combination is an independent unit of work; results are identical to
	// sequential evaluation regardless of worker count.
	Parallelism int
}

func (o Options) withDefaults() Options {
	if o.MaxCombinationSize <= 0 {
		o.MaxCombinationSize = 7
	}
	if o.Parallelism <= 0 {
		o.Parallelism = 1
	}
	return o
}
