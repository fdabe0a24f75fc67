// Package batch solves many independent problems concurrently.
//
// Every problem gets its own stepgraph.PathGraph; instances share nothing,
// so the only coordination is the errgroup that bounds parallelism and
// stops scheduling new work after the first failure or cancellation.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stepsum/problem"
	"github.com/katalvlaran/stepsum/stepgraph"
)

// Result is the solved outcome of one problem.
type Result struct {
	Name       string  `json:"name"`
	MaxSum     int64   `json:"max_sum"`
	Paths      [][]int `json:"paths"`
	Discovered int     `json:"discovered"`
}

// Solve runs one PathGraph per problem using at most workers goroutines
// (runtime.NumCPU() when workers <= 0). Results keep the input order.
// opts are applied to every PathGraph, so hooks passed here must be safe
// for concurrent use.
func Solve(ctx context.Context, problems []problem.Problem, workers int, opts ...stepgraph.Option) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(problems))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range problems {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := SolveOne(problems[i], opts...)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// gctx is always cancelled once Wait returns; only the caller's
	// context tells whether the batch was cut short.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// SolveOne solves a single problem synchronously.
func SolveOne(p problem.Problem, opts ...stepgraph.Option) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	g, err := stepgraph.New(p.Values, p.Rules(), opts...)
	if err != nil {
		return Result{}, fmt.Errorf("batch: %q: %w", p.Name, err)
	}
	best, err := g.MaxSum()
	if err != nil {
		return Result{}, fmt.Errorf("batch: %q: %w", p.Name, err)
	}
	paths, err := g.LongestPaths()
	if err != nil {
		return Result{}, fmt.Errorf("batch: %q: %w", p.Name, err)
	}
	n, err := g.DistanceCount()
	if err != nil {
		return Result{}, fmt.Errorf("batch: %q: %w", p.Name, err)
	}

	return Result{Name: p.Name, MaxSum: best, Paths: paths, Discovered: n}, nil
}
