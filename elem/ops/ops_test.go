// Copyright 2026 elemwise Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ops

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/go-highway/elemwise/elem/engine"
	"github.com/go-highway/elemwise/elem/workerpool"
)

// testSizes sweeps past every tier boundary: empty, sub-width, exact
// widths, off-by-one around them, and large enough to parallelize.
var testSizes = []int{0, 1, 3, 4, 7, 8, 15, 16, 17, 31, 32, 33, 100, 1000, 4097}

func sizeStr(n int) string {
	return fmt.Sprintf("n=%d", n)
}

// newOpsEngine returns an engine over a private 4-worker pool with the
// inline threshold disabled and diagnostics captured.
func newOpsEngine(t *testing.T) (*engine.Engine, *bytes.Buffer) {
	t.Helper()
	pool := workerpool.New(4)
	t.Cleanup(pool.Close)
	var diag bytes.Buffer
	return engine.New(pool, engine.WithMinParallel(0), engine.WithDiagnostics(&diag)), &diag
}

func fillFloat64(a, b []float64) {
	for i := range a {
		a[i] = float64(i) + 0.5
		b[i] = float64(i%7) - 3.0
	}
}

func TestAddFloat64(t *testing.T) {
	e, _ := newOpsEngine(t)
	for _, n := range testSizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := make([]float64, n)
			b := make([]float64, n)
			dst := make([]float64, n)
			fillFloat64(a, b)

			if err := AddWith(e, dst, a, b); err != nil {
				t.Fatalf("AddWith() error = %v", err)
			}
			for i := range dst {
				if dst[i] != a[i]+b[i] {
					t.Fatalf("dst[%d] = %v, want %v", i, dst[i], a[i]+b[i])
				}
			}
		})
	}
}

func TestAddInt32(t *testing.T) {
	e, _ := newOpsEngine(t)
	for _, n := range testSizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := make([]int32, n)
			b := make([]int32, n)
			dst := make([]int32, n)
			for i := range a {
				a[i] = int32(i)
				b[i] = int32(i * 3)
			}

			if err := AddWith(e, dst, a, b); err != nil {
				t.Fatalf("AddWith() error = %v", err)
			}
			for i := range dst {
				if dst[i] != a[i]+b[i] {
					t.Fatalf("dst[%d] = %d, want %d", i, dst[i], a[i]+b[i])
				}
			}
		})
	}
}

func TestSubMulDiv(t *testing.T) {
	e, _ := newOpsEngine(t)
	const n = 1000
	a := make([]float64, n)
	b := make([]float64, n)
	dst := make([]float64, n)
	for i := range a {
		a[i] = float64(i) + 1
		b[i] = float64(i%13) + 1 // avoid zero divisors
	}

	if err := SubWith(e, dst, a, b); err != nil {
		t.Fatalf("SubWith() error = %v", err)
	}
	for i := range dst {
		if dst[i] != a[i]-b[i] {
			t.Fatalf("Sub: dst[%d] = %v, want %v", i, dst[i], a[i]-b[i])
		}
	}

	if err := MulWith(e, dst, a, b); err != nil {
		t.Fatalf("MulWith() error = %v", err)
	}
	for i := range dst {
		if dst[i] != a[i]*b[i] {
			t.Fatalf("Mul: dst[%d] = %v, want %v", i, dst[i], a[i]*b[i])
		}
	}

	if err := DivWith(e, dst, a, b); err != nil {
		t.Fatalf("DivWith() error = %v", err)
	}
	for i := range dst {
		if dst[i] != a[i]/b[i] {
			t.Fatalf("Div: dst[%d] = %v, want %v", i, dst[i], a[i]/b[i])
		}
	}
}

func TestMinMax(t *testing.T) {
	e, _ := newOpsEngine(t)
	const n = 257
	a := make([]float32, n)
	b := make([]float32, n)
	lo := make([]float32, n)
	hi := make([]float32, n)
	for i := range a {
		a[i] = float32(i % 11)
		b[i] = float32(i % 7)
	}

	if err := MinWith(e, lo, a, b); err != nil {
		t.Fatalf("MinWith() error = %v", err)
	}
	if err := MaxWith(e, hi, a, b); err != nil {
		t.Fatalf("MaxWith() error = %v", err)
	}
	for i := range a {
		wantLo, wantHi := a[i], b[i]
		if wantLo > wantHi {
			wantLo, wantHi = wantHi, wantLo
		}
		if lo[i] != wantLo || hi[i] != wantHi {
			t.Fatalf("index %d: min/max = %v/%v, want %v/%v", i, lo[i], hi[i], wantLo, wantHi)
		}
	}
}

func TestScalarForms(t *testing.T) {
	e, _ := newOpsEngine(t)
	const n = 100
	a := make([]float64, n)
	dst := make([]float64, n)
	for i := range a {
		a[i] = float64(i)
	}

	if err := AddScalarWith(e, dst, a, 2.5); err != nil {
		t.Fatalf("AddScalarWith() error = %v", err)
	}
	for i := range dst {
		if dst[i] != a[i]+2.5 {
			t.Fatalf("AddScalar: dst[%d] = %v", i, dst[i])
		}
	}

	if err := ScaleWith(e, dst, a, -3.0); err != nil {
		t.Fatalf("ScaleWith() error = %v", err)
	}
	for i := range dst {
		if dst[i] != a[i]*-3.0 {
			t.Fatalf("Scale: dst[%d] = %v", i, dst[i])
		}
	}

	if err := SubScalarWith(e, dst, a, 1.0); err != nil {
		t.Fatalf("SubScalarWith() error = %v", err)
	}
	for i := range dst {
		if dst[i] != a[i]-1.0 {
			t.Fatalf("SubScalar: dst[%d] = %v", i, dst[i])
		}
	}

	if err := DivScalarWith(e, dst, a, 4.0); err != nil {
		t.Fatalf("DivScalarWith() error = %v", err)
	}
	for i := range dst {
		if dst[i] != a[i]/4.0 {
			t.Fatalf("DivScalar: dst[%d] = %v", i, dst[i])
		}
	}
}

func TestMulAdd(t *testing.T) {
	e, _ := newOpsEngine(t)
	for _, n := range testSizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := make([]float64, n)
			b := make([]float64, n)
			c := make([]float64, n)
			dst := make([]float64, n)
			for i := range a {
				a[i] = float64(i) * 0.25
				b[i] = float64(i%5) + 1
				c[i] = -float64(i)
			}

			if err := MulAddWith(e, dst, a, b, c); err != nil {
				t.Fatalf("MulAddWith() error = %v", err)
			}
			for i := range dst {
				want := a[i]*b[i] + c[i]
				if dst[i] != want {
					t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want)
				}
			}
		})
	}
}

func TestMulAddScalar(t *testing.T) {
	e, _ := newOpsEngine(t)
	const n, s = 1000, 2.0
	a := make([]float32, n)
	c := make([]float32, n)
	dst := make([]float32, n)
	for i := range a {
		a[i] = float32(i)
		c[i] = 1.0
	}

	if err := MulAddScalarWith(e, dst, a, s, c); err != nil {
		t.Fatalf("MulAddScalarWith() error = %v", err)
	}
	for i := range dst {
		want := a[i]*s + c[i]
		if dst[i] != want {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestCompare(t *testing.T) {
	e, _ := newOpsEngine(t)
	const n = 100
	a := make([]int64, n)
	b := make([]int64, n)
	for i := range a {
		a[i] = int64(i % 5)
		b[i] = int64(i % 3)
	}

	tests := []struct {
		name string
		call func(dst []int64) error
		pred func(x, y int64) bool
	}{
		{"Equal", func(d []int64) error { return EqualWith(e, d, a, b) },
			func(x, y int64) bool { return x == y }},
		{"NotEqual", func(d []int64) error { return NotEqualWith(e, d, a, b) },
			func(x, y int64) bool { return x != y }},
		{"Less", func(d []int64) error { return LessWith(e, d, a, b) },
			func(x, y int64) bool { return x < y }},
		{"LessEqual", func(d []int64) error { return LessEqualWith(e, d, a, b) },
			func(x, y int64) bool { return x <= y }},
		{"Greater", func(d []int64) error { return GreaterWith(e, d, a, b) },
			func(x, y int64) bool { return x > y }},
		{"GreaterEqual", func(d []int64) error { return GreaterEqualWith(e, d, a, b) },
			func(x, y int64) bool { return x >= y }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]int64, n)
			if err := tt.call(dst); err != nil {
				t.Fatalf("%s error = %v", tt.name, err)
			}
			for i := range dst {
				want := int64(0)
				if tt.pred(a[i], b[i]) {
					want = 1
				}
				if dst[i] != want {
					t.Fatalf("%s: dst[%d] = %d, want %d (a=%d b=%d)",
						tt.name, i, dst[i], want, a[i], b[i])
				}
			}
		})
	}
}

func TestCompareNaN(t *testing.T) {
	e, _ := newOpsEngine(t)
	nan := math.NaN()
	a := []float64{nan, 1, nan}
	b := []float64{1, nan, nan}
	dst := make([]float64, 3)

	for _, tt := range []struct {
		name string
		call func() error
	}{
		{"Equal", func() error { return EqualWith(e, dst, a, b) }},
		{"Less", func() error { return LessWith(e, dst, a, b) }},
		{"GreaterEqual", func() error { return GreaterEqualWith(e, dst, a, b) }},
	} {
		if err := tt.call(); err != nil {
			t.Fatalf("%s error = %v", tt.name, err)
		}
		for i, v := range dst {
			if v != 0 {
				t.Errorf("%s: dst[%d] = %v, want 0 (NaN compares false)", tt.name, i, v)
			}
		}
	}
}

func TestTransforms(t *testing.T) {
	e, _ := newOpsEngine(t)
	const n = 1000
	a := make([]float64, n)
	dst := make([]float64, n)
	for i := range a {
		a[i] = float64(i)*0.01 + 0.001
	}

	type tf struct {
		name string
		call func() error
		ref  func(x float64) float64
	}
	tests := []tf{
		{"Exp", func() error { return ExpWith(e, dst, a) }, math.Exp},
		{"Log", func() error { return LogWith(e, dst, a) }, math.Log},
		{"Sqrt", func() error { return SqrtWith(e, dst, a) }, math.Sqrt},
		{"Tanh", func() error { return TanhWith(e, dst, a) }, math.Tanh},
		{"Sigmoid", func() error { return SigmoidWith(e, dst, a) },
			func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); err != nil {
				t.Fatalf("%s error = %v", tt.name, err)
			}
			for i := range dst {
				if dst[i] != tt.ref(a[i]) {
					t.Fatalf("%s: dst[%d] = %v, want %v", tt.name, i, dst[i], tt.ref(a[i]))
				}
			}
		})
	}
}

func TestAbsNeg(t *testing.T) {
	e, _ := newOpsEngine(t)
	a := []float64{-3, -0.5, 0, 0.5, 3}
	dst := make([]float64, len(a))

	if err := AbsWith(e, dst, a); err != nil {
		t.Fatalf("AbsWith() error = %v", err)
	}
	for i := range dst {
		if dst[i] != math.Abs(a[i]) {
			t.Errorf("Abs: dst[%d] = %v, want %v", i, dst[i], math.Abs(a[i]))
		}
	}

	if err := NegWith(e, dst, a); err != nil {
		t.Fatalf("NegWith() error = %v", err)
	}
	for i := range dst {
		if dst[i] != -a[i] {
			t.Errorf("Neg: dst[%d] = %v, want %v", i, dst[i], -a[i])
		}
	}
}

func TestPow(t *testing.T) {
	e, _ := newOpsEngine(t)
	a := []float64{1, 2, 3, 4, 9}
	b := []float64{0, 2, 3, 0.5, 0.5}
	dst := make([]float64, len(a))

	if err := PowWith(e, dst, a, b); err != nil {
		t.Fatalf("PowWith() error = %v", err)
	}
	for i := range dst {
		want := math.Pow(a[i], b[i])
		if dst[i] != want {
			t.Errorf("Pow: dst[%d] = %v, want %v", i, dst[i], want)
		}
	}

	if err := PowScalarWith(e, dst, a, 2); err != nil {
		t.Fatalf("PowScalarWith() error = %v", err)
	}
	for i := range dst {
		want := math.Pow(a[i], 2)
		if dst[i] != want {
			t.Errorf("PowScalar: dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestSum(t *testing.T) {
	e, _ := newOpsEngine(t)
	for _, n := range testSizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			x := make([]int64, n)
			var want int64
			for i := range x {
				x[i] = int64(i)
				want += int64(i)
			}

			got, err := SumWith(e, x)
			if err != nil {
				t.Fatalf("SumWith() error = %v", err)
			}
			if got != want {
				t.Errorf("SumWith() = %d, want %d", got, want)
			}
		})
	}
}

func TestDot(t *testing.T) {
	e, _ := newOpsEngine(t)
	const n = 1000
	a := make([]float64, n)
	b := make([]float64, n)
	var want float64
	for i := range a {
		a[i] = 1
		b[i] = float64(i)
		want += b[i]
	}

	got, err := DotWith(e, a, b)
	if err != nil {
		t.Fatalf("DotWith() error = %v", err)
	}
	if got != want {
		t.Errorf("DotWith() = %v, want %v", got, want)
	}
}

func TestMismatchedSourceLengths(t *testing.T) {
	e, _ := newOpsEngine(t)
	a := make([]float64, 100)
	b := make([]float64, 80) // shorter source bounds the extent
	dst := make([]float64, 100)
	for i := range dst {
		dst[i] = -1
	}
	fillFloat64(a[:80], b)
	for i := 80; i < 100; i++ {
		a[i] = float64(i)
	}

	if err := AddWith(e, dst, a, b); err != nil {
		t.Fatalf("AddWith() error = %v", err)
	}
	for i := 0; i < 80; i++ {
		if dst[i] != a[i]+b[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], a[i]+b[i])
		}
	}
	for i := 80; i < 100; i++ {
		if dst[i] != -1 {
			t.Fatalf("dst[%d] = %v, want untouched -1", i, dst[i])
		}
	}
}

func TestUndersizedDestination(t *testing.T) {
	e, diag := newOpsEngine(t)
	a := make([]float64, 100)
	b := make([]float64, 100)
	fillFloat64(a, b)
	dst := make([]float64, 60)

	if err := AddWith(e, dst, a, b); err != nil {
		t.Fatalf("AddWith() error = %v, want nil (silent truncation)", err)
	}
	for i := range dst {
		if dst[i] != a[i]+b[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], a[i]+b[i])
		}
	}
	if !strings.Contains(diag.String(), "60 of 100") {
		t.Errorf("diagnostic = %q, want undersized notice", diag.String())
	}
}

func TestDefaultEngine(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() returned nil")
	}
	if Default() != Default() {
		t.Error("Default() is not a singleton")
	}

	// Plain entry points go through the default engine.
	a := []float64{1, 2, 3}
	b := []float64{10, 20, 30}
	dst := make([]float64, 3)
	if err := Add(dst, a, b); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	for i := range dst {
		if dst[i] != a[i]+b[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], a[i]+b[i])
		}
	}
}

func BenchmarkAdd(b *testing.B) {
	sizes := []int{256, 4096, 65536, 1 << 20}
	for _, n := range sizes {
		b.Run(sizeStr(n), func(b *testing.B) {
			x := make([]float64, n)
			y := make([]float64, n)
			dst := make([]float64, n)
			fillFloat64(x, y)

			b.ReportAllocs()
			b.SetBytes(int64(n * 8))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := Add(dst, x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMulAdd(b *testing.B) {
	const n = 65536
	x := make([]float32, n)
	y := make([]float32, n)
	z := make([]float32, n)
	dst := make([]float32, n)
	for i := range x {
		x[i] = float32(i)
		y[i] = 2
		z[i] = 1
	}

	b.ReportAllocs()
	b.SetBytes(int64(n * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := MulAdd(dst, x, y, z); err != nil {
			b.Fatal(err)
		}
	}
}
