// SPDX-License-Identifier: MIT

package johnson_test

import (
	"testing"

	"github.com/katalvlaran/negpath/builder"
	"github.com/katalvlaran/negpath/johnson"
)

// benchmarkAllPairs measures a 300-vertex sparse graph with negative edges.
func benchmarkAllPairs(b *testing.B, workers int) {
	g, err := builder.Build(builder.RandomSparse(300, 0.02), builder.WithSeed(42), builder.WithSpread(20))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer() // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = johnson.AllPairs(g, johnson.WithWorkers(workers))
	}
}

func BenchmarkAllPairs_Sequential(b *testing.B) { benchmarkAllPairs(b, 1) }

func BenchmarkAllPairs_Workers4(b *testing.B) { benchmarkAllPairs(b, 4) }
