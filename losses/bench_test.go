// SPDX-License-Identifier: MIT

package losses_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvloss/losses"
	"github.com/katalvlaran/lvloss/ndarray"
)

// benchArray fills shape with deterministic pseudo-random values.
func benchArray(b *testing.B, seed int64, shape ...int) *ndarray.Array {
	b.Helper()
	n := 1
	for _, d := range shape {
		n *= d
	}
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.NormFloat64()*10 + 50
	}
	a, err := ndarray.New(shape, data)
	if err != nil {
		b.Fatal(err)
	}

	return a
}

func BenchmarkMAE_PerSeries(b *testing.B) {
	y := benchArray(b, 1, 512, 48)
	yHat := benchArray(b, 2, 512, 48)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := losses.MAE(y, yHat, losses.WithAxis(1)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMQLoss(b *testing.B) {
	qs := []float64{0.1, 0.25, 0.5, 0.75, 0.9}
	y := benchArray(b, 1, 512, 48)
	yHat := benchArray(b, 2, 512, 48, len(qs))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := losses.MQLoss(y, yHat, qs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMASE(b *testing.B) {
	// time × series
	y := benchArray(b, 1, 48, 512)
	yHat := benchArray(b, 2, 48, 512)
	train := benchArray(b, 3, 336, 512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := losses.MASE(y, yHat, train, 24, losses.WithAxis(0)); err != nil {
			b.Fatal(err)
		}
	}
}
