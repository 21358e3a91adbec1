// SPDX-License-Identifier: MIT

package optimized_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densebench/matrix"
	"github.com/katalvlaran/densebench/matrix/matrixtest"
	"github.com/katalvlaran/densebench/matrix/optimized"
)

// benchSizes are the square sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sink to defeat dead-code elimination
var sinkM matrix.Matrix

func benchBinary(b *testing.B, op func(x, y matrix.Matrix) (matrix.Matrix, error)) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1337))
			x := matrixtest.Random(b, optimized.Impl, rng, n, n)
			y := matrixtest.Random(b, optimized.Impl, rng, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := op(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	benchBinary(b, func(x, y matrix.Matrix) (matrix.Matrix, error) { return x.Add(y) })
}

func BenchmarkSub(b *testing.B) {
	benchBinary(b, func(x, y matrix.Matrix) (matrix.Matrix, error) { return x.Sub(y) })
}

func BenchmarkMatMul(b *testing.B) {
	benchBinary(b, func(x, y matrix.Matrix) (matrix.Matrix, error) { return x.MatMul(y) })
}
