// Command mathsudoku solves a math sudoku ruleset and reports whether the
// solution is unique. Without -rules it solves the built-in sample puzzle.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/an0ndev/z3-math-sudoku/pkg/sudoku"
)

func main() {
	rulesPath := flag.String("rules", "", "YAML ruleset file (default: built-in sample puzzle)")
	timeout := flag.Duration("timeout", 0, "abort the solve after this long (0 = no limit)")
	flag.Parse()

	rs := sudoku.SamplePuzzle()
	if *rulesPath != "" {
		var err error
		rs, err = sudoku.LoadRuleset(*rulesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mathsudoku: %v\n", err)
			os.Exit(1)
		}
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	started := time.Now()
	result, err := sudoku.SolveAndVerify(ctx, sudoku.NewOracle(), rs)
	elapsed := time.Since(started)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mathsudoku: %v\n", err)
		os.Exit(1)
	}

	switch result.Status {
	case sudoku.StatusUnsatisfiable:
		fmt.Printf("No solution exists (%.2fs)\n", elapsed.Seconds())
	case sudoku.StatusVerifiedUnique:
		fmt.Printf("Unique solution (%.2fs):\n\n%s", elapsed.Seconds(), result.First)
	case sudoku.StatusMultipleSolutions:
		fmt.Printf("Multiple solutions (%.2fs). First:\n\n%s\nSecond:\n\n%s",
			elapsed.Seconds(), result.First, result.Second)
	default:
		fmt.Printf("Indeterminate (%.2fs)\n", elapsed.Seconds())
	}
}
