package sudoku

import (
	"context"
	"sync"

	"github.com/an0ndev/z3-math-sudoku/internal/parallel"
)

// BatchResult pairs one ruleset's outcome with its position in the input.
type BatchResult struct {
	Index  int
	Result Result
	Err    error
}

// SolveBatch solves independent rulesets concurrently on a worker pool.
// Every task constructs its own oracle session, so no solver state is
// shared between instances; the only coordination is the pool itself.
// workers <= 0 selects one worker per CPU. Results are returned in input
// order.
func SolveBatch(ctx context.Context, rulesets []Ruleset, workers int) []BatchResult {
	results := make([]BatchResult, len(rulesets))
	if len(rulesets) == 0 {
		return results
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Shutdown()

	var wg sync.WaitGroup
	for i, rs := range rulesets {
		i, rs := i, rs
		wg.Add(1)
		task := func() {
			defer wg.Done()
			res, err := SolveAndVerify(ctx, NewOracle(), rs)
			results[i] = BatchResult{Index: i, Result: res, Err: err}
		}
		if err := pool.Submit(ctx, task); err != nil {
			wg.Done()
			results[i] = BatchResult{Index: i, Err: err}
		}
	}
	wg.Wait()
	return results
}
