// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/lvloss/ndarray"
)

// benchPanel builds a deterministic (series, horizon, quantiles) array.
func benchPanel(b *testing.B, s, h, q int) *ndarray.Array {
	data := make([]float64, s*h*q)
	for i := range data {
		data[i] = float64(i % 97)
	}
	a, err := ndarray.New([]int{s, h, q}, data)
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	return a
}

// BenchmarkMap2_SameShape measures the flat fast path.
func BenchmarkMap2_SameShape(b *testing.B) {
	x := benchPanel(b, 1000, 24, 1)
	y := benchPanel(b, 1000, 24, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ndarray.Sub(x, y); err != nil {
			b.Fatalf("Sub: %v", err)
		}
	}
}

// BenchmarkMap2_Broadcast measures the odometer path (trailing axis stretch).
func BenchmarkMap2_Broadcast(b *testing.B) {
	x := benchPanel(b, 1000, 24, 1)
	y := benchPanel(b, 1000, 24, 9)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ndarray.Sub(x, y); err != nil {
			b.Fatalf("Sub: %v", err)
		}
	}
}

func BenchmarkRepeat_Trailing(b *testing.B) {
	x := benchPanel(b, 1000, 24, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Repeat(9, -1); err != nil {
			b.Fatalf("Repeat: %v", err)
		}
	}
}
