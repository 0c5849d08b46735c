package optimizer

import (
	"context"
	"fmt"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/schedulewise/schedulewise-api/internal/models"
)

// Greedy is the default search strategy: it enumerates subject combinations
// scarcest-first, greedily assigns the best slot per subject, scores each
// feasible assembly and keeps the first maximum.
type Greedy struct {
	opts   Options
	logger *zap.Logger
}

// NewGreedy builds the greedy optimizer.
func NewGreedy(opts Options, logger *zap.Logger) *Greedy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Greedy{opts: opts.withDefaults(), logger: logger}
}

// candidate is the outcome of evaluating one combination. ok is false when
// the combination produced no schedule at all.
type candidate struct {
	schedule *models.Schedule
	score    float64
	ok       bool
}

// Optimize implements the Optimizer contract. The caller validates that
// every required code resolves to a subject; the empty-pool guard here is
// defensive only.
func (g *Greedy) Optimize(ctx context.Context, subjects []models.Subject, constraint models.StudentConstraint, requiredCodes map[string]struct{}) (*Result, error) {
	pool := lo.Filter(subjects, func(subject models.Subject, _ int) bool {
		_, ok := requiredCodes[subject.Code]
		return ok
	})
	if len(pool) == 0 {
		return nil, nil
	}

	combos := enumerate(pool, g.opts.MaxCombinationSize, g.opts.RequireFullCoverage)

	candidates, err := g.evaluateAll(ctx, combos, constraint)
	if err != nil {
		return nil, err
	}

	// First maximum wins: strict greater-than in enumeration order.
	best := -1
	for i, cand := range candidates {
		if !cand.ok {
			continue
		}
		if best < 0 || cand.score > candidates[best].score {
			best = i
		}
	}
	if best < 0 {
		g.logger.Debug("no feasible schedule",
			zap.Int("subjects", len(pool)),
			zap.Int("combinations", len(combos)),
		)
		return nil, nil
	}

	return &Result{
		Schedule:     candidates[best].schedule,
		Score:        candidates[best].score,
		Combinations: len(combos),
	}, nil
}

// evaluateAll scores every combination. With Parallelism > 1 the work fans
// out over a bounded worker pool; results land in a slice indexed by
// combination so the reduction order stays deterministic.
func (g *Greedy) evaluateAll(ctx context.Context, combos [][]models.Subject, constraint models.StudentConstraint) ([]candidate, error) {
	results := make([]candidate, len(combos))

	if g.opts.Parallelism <= 1 {
		for i, combo := range combos {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			cand, err := g.evaluate(combo, constraint)
			if err != nil {
				return nil, err
			}
			results[i] = cand
		}
		return results, nil
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for w := 0; w < g.opts.Parallelism; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				cand, err := g.evaluate(combos[i], constraint)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				results[i] = cand
			}
		}()
	}

feed:
	for i := range combos {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// evaluate greedily assigns a slot per subject and scores the assembly.
func (g *Greedy) evaluate(combo []models.Subject, constraint models.StudentConstraint) (candidate, error) {
	slots := make([]models.ScheduleSlot, 0, len(combo))
	for _, subject := range combo {
		slot, ok := pickSlot(subject, slots, constraint)
		if !ok {
			if g.opts.RequireFullCoverage {
				return candidate{}, nil
			}
			continue
		}
		slots = append(slots, models.ScheduleSlot{Subject: subject, TimeSlot: slot})
	}
	if len(slots) == 0 {
		return candidate{}, nil
	}

	schedule, err := models.NewSchedule(slots)
	if err != nil {
		// Selector-chosen slots can never overlap; reaching this is a
		// programming error, not a solvable runtime condition.
		return candidate{}, fmt.Errorf("slot selector produced a conflicting assembly: %w", err)
	}

	return candidate{
		schedule: schedule,
		score:    scoreSchedule(schedule, constraint),
		ok:       true,
	}, nil
}
