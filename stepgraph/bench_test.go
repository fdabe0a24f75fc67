package stepgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/stepsum/stepgraph"
)

// benchValues returns n pseudo-random values in [-100, 100].
func benchValues(n int) []int64 {
	rnd := rand.New(rand.NewSource(42))
	values := make([]int64, n)
	for i := range values {
		values[i] = int64(rnd.Intn(201) - 100)
	}

	return values
}

// BenchmarkMaxSum compares both strategies on a 10k-element array with {+3, +4}.
func BenchmarkMaxSum(b *testing.B) {
	values := benchValues(10000)
	for _, st := range []stepgraph.Strategy{stepgraph.StrategyBellmanFord, stepgraph.StrategyTopological} {
		b.Run(st.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				g, _ := stepgraph.New(values, stepgraph.Offsets(3, 4), stepgraph.WithStrategy(st))
				_, _ = g.MaxSum()
			}
		})
	}
}

// BenchmarkBuildGraph measures discovery plus the acyclicity check alone.
func BenchmarkBuildGraph(b *testing.B) {
	values := benchValues(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ := stepgraph.New(values, stepgraph.Offsets(3, 4))
		_ = g.BuildGraph()
	}
}
