// SPDX-License-Identifier: MIT

// Package op: capability queries and bulk application.
//
// Purpose:
//   - Give callers one entry point per optional capability (Inverse, Derivative,
//     DerivativeOp, DerivativeForOutput) that returns a sentinel error when the
//     capability is missing, instead of forcing type assertions at call sites.
//   - Apply operators pointwise to slices, slice windows and Elements containers.
//
// Determinism:
//   - Bulk application walks indices in ascending order. Operators are pure, so
//     the order is not observable in the result.
package op

import "fmt"

// conditional is implemented by composite operators whose capabilities depend
// on their parts (e.g. Compose is invertible only if both parts are).
type conditional interface {
	invertible() bool
	differentiable() bool
}

// HasInverse reports whether Inverse(o) succeeds.
func HasInverse(o Operator) bool {
	if _, ok := o.(Invertible); !ok {
		return false
	}
	if c, ok := o.(conditional); ok {
		return c.invertible()
	}

	return true
}

// HasDerivative reports whether Derivative(o, x) and DerivativeOp(o) succeed.
func HasDerivative(o Operator) bool {
	if _, ok := o.(Differentiable); !ok {
		return false
	}
	if c, ok := o.(conditional); ok {
		return c.differentiable()
	}

	return true
}

// Inverse returns the inverse operator of o or ErrNoInverse.
func Inverse(o Operator) (Operator, error) {
	if !HasInverse(o) {
		return nil, fmt.Errorf("Inverse(%s): %w", o, ErrNoInverse)
	}

	return o.(Invertible).Inverse(), nil
}

// ApplyInverse evaluates the inverse of o at y.
func ApplyInverse(o Operator, y float64) (float64, error) {
	inv, err := Inverse(o)
	if err != nil {
		return 0, err
	}

	return inv.Apply(y), nil
}

// Derivative evaluates df/dx of o at x or returns ErrNoDerivative.
func Derivative(o Operator, x float64) (float64, error) {
	if !HasDerivative(o) {
		return 0, fmt.Errorf("Derivative(%s): %w", o, ErrNoDerivative)
	}

	return o.(Differentiable).Derivative(x), nil
}

// DerivativeOp returns the symbolic derivative of o or ErrNoDerivative.
func DerivativeOp(o Operator) (Operator, error) {
	if !HasDerivative(o) {
		return nil, fmt.Errorf("DerivativeOp(%s): %w", o, ErrNoDerivative)
	}

	return o.(Differentiable).DerivativeOp(), nil
}

// DerivativeForOutput evaluates the derivative of o from its output y.
func DerivativeForOutput(o Operator, y float64) (float64, error) {
	od, ok := o.(OutputDifferentiable)
	if !ok {
		return 0, fmt.Errorf("DerivativeForOutput(%s): %w", o, ErrNoOutputDerivative)
	}

	return od.DerivativeForOutput(y), nil
}

// ApplySlice replaces every element of data with o.Apply(element).
// Operators implementing SliceApplier take their specialized path.
// Complexity: O(len(data)).
func ApplySlice(o Operator, data []float64) {
	if sa, ok := o.(SliceApplier); ok {
		sa.ApplySlice(data)
		return
	}
	for i, v := range data {
		data[i] = o.Apply(v)
	}
}

// ApplyTo applies o to the window data[start : start+length].
//
// Errors:
//   - ErrOutOfRange when start < 0, length < 0 or the window exceeds len(data).
//
// Complexity: O(length).
func ApplyTo(o Operator, data []float64, start, length int) error {
	if start < 0 || length < 0 || start > len(data)-length {
		return fmt.Errorf("ApplyTo(start=%d,length=%d) on len %d: %w", start, length, len(data), ErrOutOfRange)
	}
	ApplySlice(o, data[start:start+length])

	return nil
}

// ApplyToElements applies o to every element of e in ascending index order.
// Complexity: O(e.Len()).
func ApplyToElements(o Operator, e Elements) {
	n := e.Len()
	for i := 0; i < n; i++ {
		e.UnsafeSet(i, o.Apply(e.UnsafeAt(i)))
	}
}
