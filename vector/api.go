// SPDX-License-Identifier: MIT
// Package vector - default algorithms.
//
// Purpose:
//   - Implement every derived operation once, against the Vector interface.
//   - Dispatch to a capability (Summer, Filler, RawVector, ...) when the
//     concrete type provides one.
//
// Determinism & Policy:
//   - Generic paths walk indices in ascending order.
//   - Generic mutating paths refuse vectors that are not fully mutable before
//     writing anything (no partial application).

package vector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linalg/op"
)

// SameShape reports whether a and b have equal lengths.
func SameShape(a, b Vector) bool { return a.Len() == b.Len() }

// CheckSameLength returns the common length of a and b or a wrapped
// ErrDimensionMismatch.
func CheckSameLength(a, b Vector) (int, error) {
	if a.Len() != b.Len() {
		return 0, LengthError("CheckSameLength", b.Len(), a.Len())
	}

	return a.Len(), nil
}

// Dot returns Σ a[i]·b[i].
//
// Errors:
//   - ErrDimensionMismatch when the lengths differ.
//
// Complexity: O(n). Contiguous operands use floats.Dot.
func Dot(a, b Vector) (float64, error) {
	n, err := CheckSameLength(a, b)
	if err != nil {
		return 0, fmt.Errorf("Dot: %w", err)
	}
	if ra, ok := a.(RawVector); ok {
		if rb, ok := b.(RawVector); ok {
			return floats.Dot(ra.RawData(), rb.RawData()), nil
		}
	}

	acc := 0.0
	for i := 0; i < n; i++ {
		acc += a.UnsafeAt(i) * b.UnsafeAt(i)
	}

	return acc, nil
}

// Sum returns Σ v[i].
func Sum(v Vector) float64 {
	if s, ok := v.(Summer); ok {
		return s.Sum()
	}
	acc := 0.0
	n := v.Len()
	for i := 0; i < n; i++ {
		acc += v.UnsafeAt(i)
	}

	return acc
}

// SquaredSum returns Σ v[i]².
func SquaredSum(v Vector) float64 {
	if s, ok := v.(SquaredSummer); ok {
		return s.SquaredSum()
	}
	acc := 0.0
	n := v.Len()
	for i := 0; i < n; i++ {
		x := v.UnsafeAt(i)
		acc += x * x
	}

	return acc
}

// NonZeroCount returns the number of elements different from 0.
func NonZeroCount(v Vector) int64 {
	if c, ok := v.(NonZeroCounter); ok {
		return c.NonZeroCount()
	}
	var cnt int64
	n := v.Len()
	for i := 0; i < n; i++ {
		if v.UnsafeAt(i) != 0 {
			cnt++
		}
	}

	return cnt
}

// IsZero reports whether every element is 0.
func IsZero(v Vector) bool {
	if z, ok := v.(ZeroTester); ok {
		return z.IsZero()
	}
	n := v.Len()
	for i := 0; i < n; i++ {
		if v.UnsafeAt(i) != 0 {
			return false
		}
	}

	return true
}

// AcceptsUniform reports whether v can take a write applied alike to every
// element. Immutable storage qualifies only when keepsZero (the write maps
// 0 to 0) and it holds zeros; joined vectors are checked part by part.
func AcceptsUniform(v Vector, keepsZero bool) bool {
	if j, ok := v.(*Joined); ok {
		return AcceptsUniform(j.left, keepsZero) && AcceptsUniform(j.right, keepsZero)
	}

	return v.IsFullyMutable() || (keepsZero && IsZero(v))
}

// Fill sets every element to x.
//
// Errors:
//   - ErrImmutable when v is not fully mutable (generic path) or its own
//     Fill rejects x.
func Fill(v Vector, x float64) error {
	if f, ok := v.(Filler); ok {
		return f.Fill(x)
	}
	if !v.IsFullyMutable() {
		return fmt.Errorf("Fill: %w", ErrImmutable)
	}
	n := v.Len()
	for i := 0; i < n; i++ {
		v.UnsafeSet(i, x)
	}

	return nil
}

// AddScalar adds x to every element.
func AddScalar(v Vector, x float64) error {
	if a, ok := v.(ScalarAdder); ok {
		return a.AddScalar(x)
	}
	if !v.IsFullyMutable() {
		return fmt.Errorf("AddScalar: %w", ErrImmutable)
	}
	n := v.Len()
	for i := 0; i < n; i++ {
		v.UnsafeSet(i, v.UnsafeAt(i)+x)
	}

	return nil
}

// ApplyOp replaces every element with o.Apply(element). The result equals
// applying o to each element independently.
func ApplyOp(v Vector, o op.Operator) error {
	if a, ok := v.(OpApplier); ok {
		return a.ApplyOp(o)
	}
	if !v.IsFullyMutable() {
		return fmt.Errorf("ApplyOp(%s): %w", o, ErrImmutable)
	}
	op.ApplyToElements(o, v)

	return nil
}

// CopyTo writes the elements of v into dst[offset : offset+v.Len()].
//
// Errors:
//   - ErrDimensionMismatch when the window does not fit into dst.
func CopyTo(v Vector, dst []float64, offset int) error {
	n := v.Len()
	if offset < 0 || offset > len(dst)-n {
		return fmt.Errorf("CopyTo(offset=%d): need %d elements in buffer of %d: %w",
			offset, n, len(dst), ErrDimensionMismatch)
	}
	copyInto(v, dst[offset:offset+n])

	return nil
}

// copyInto assumes len(dst) == v.Len().
func copyInto(v Vector, dst []float64) {
	if c, ok := v.(ElementCopier); ok {
		c.CopyTo(dst)
		return
	}
	for i := range dst {
		dst[i] = v.UnsafeAt(i)
	}
}

// ToSlice returns a fresh copy of the elements of v.
func ToSlice(v Vector) []float64 {
	out := make([]float64, v.Len())
	copyInto(v, out)

	return out
}

// Equals reports exact element-wise equality of same-length vectors.
func Equals(a, b Vector) bool { return EqualsWithin(a, b, 0) }

// EqualsWithin reports |a[i]-b[i]| <= tol for all i. Differing lengths are
// never equal; NaN is never within tolerance.
func EqualsWithin(a, b Vector, tol float64) bool {
	n, err := CheckSameLength(a, b)
	if err != nil {
		return false
	}
	for i := 0; i < n; i++ {
		if !(math.Abs(a.UnsafeAt(i)-b.UnsafeAt(i)) <= tol) {
			return false
		}
	}

	return true
}
