// SPDX-License-Identifier: MIT

// Package vector - Dense storage & safe accessors.
//
// Purpose:
//   - Contiguous []float64 storage, either owned (NewDense, Zeros, Clone) or
//     wrapped around caller memory (Wrap), in which case the vector is a view.
//   - Reductions delegate to gonum/floats on the raw slice.
//
// Complexity quicksheet:
//   - NewDense/Zeros: O(n) zero-init; At/Set: O(1); Clone: O(n); Wrap: O(1).
package vector

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linalg/op"
)

// Method tags used in error wrappers.
const (
	ctxDenseAt  = "Dense.At"
	ctxDenseSet = "Dense.Set"
)

// Dense is a vector backed by a contiguous slice.
type Dense struct {
	data []float64 // len(data) == Len()
	view bool      // storage borrowed from a caller or a matrix
}

// NewDense allocates a zero vector of length n.
//
// Errors:
//   - ErrInvalidLength when n < 0.
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, ErrInvalidLength
	}

	return &Dense{data: make([]float64, n)}, nil
}

// Zeros returns an owned zero vector of length n. It panics if n < 0, as
// make does.
func Zeros(n int) *Dense {
	return &Dense{data: make([]float64, n)}
}

// FromSlice returns an owned vector holding a copy of values.
func FromSlice(values []float64) *Dense {
	data := make([]float64, len(values))
	copy(data, values)

	return &Dense{data: data}
}

// Wrap returns a view over data without copying. Writes through the vector
// are visible in data and vice versa.
func Wrap(data []float64) *Dense {
	return &Dense{data: data, view: true}
}

func (v *Dense) Len() int { return len(v.data) }

func (v *Dense) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, IndexError(ctxDenseAt, i, len(v.data))
	}

	return v.data[i], nil
}

func (v *Dense) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return IndexError(ctxDenseSet, i, len(v.data))
	}
	v.data[i] = x

	return nil
}

func (v *Dense) UnsafeAt(i int) float64 { return v.data[i] }

func (v *Dense) UnsafeSet(i int, x float64) { v.data[i] = x }

func (v *Dense) IsView() bool { return v.view }

func (v *Dense) IsFullyMutable() bool { return true }

// Clone returns an owned copy.
func (v *Dense) Clone() Vector { return FromSlice(v.data) }

// RawData exposes the backing slice.
func (v *Dense) RawData() []float64 { return v.data }

func (v *Dense) Fill(x float64) error {
	for i := range v.data {
		v.data[i] = x
	}

	return nil
}

func (v *Dense) AddScalar(x float64) error {
	floats.AddConst(x, v.data)
	return nil
}

func (v *Dense) Sum() float64 { return floats.Sum(v.data) }

func (v *Dense) SquaredSum() float64 { return floats.Dot(v.data, v.data) }

func (v *Dense) NonZeroCount() int64 {
	var n int64
	for _, x := range v.data {
		if x != 0 {
			n++
		}
	}

	return n
}

func (v *Dense) IsZero() bool {
	for _, x := range v.data {
		if x != 0 {
			return false
		}
	}

	return true
}

func (v *Dense) ApplyOp(o op.Operator) error {
	op.ApplySlice(o, v.data)
	return nil
}

func (v *Dense) CopyTo(dst []float64) { copy(dst, v.data) }

// String renders the vector as "[a, b, c]".
func (v *Dense) String() string { return format(v) }

// format renders any vector as "[a, b, c]" using %g-style formatting.
func format(v Vector) string {
	var b strings.Builder
	n := v.Len()
	b.WriteString("[")
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v.UnsafeAt(i), 'g', -1, 64))
	}
	b.WriteString("]")

	return b.String()
}
