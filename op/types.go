// SPDX-License-Identifier: MIT

// Package op: operator contracts.
// This file defines the Operator interface, its optional capabilities
// (Invertible, Differentiable, OutputDifferentiable, SliceApplier) and the
// Elements contract used to apply an operator to any indexed container
// without importing the container package.
package op

import "math"

// Operator is an immutable scalar function over float64.
//
// Complexity notes: all methods are expected O(1).
type Operator interface {
	// Apply evaluates the operator at x.
	Apply(x float64) float64

	// MinDomain is the smallest input for which Apply is defined.
	// Operators without a restriction report -Inf.
	MinDomain() float64

	// MaxDomain is the largest input for which Apply is defined.
	// Operators without a restriction report +Inf.
	MaxDomain() float64

	// AverageValue is a representative output value (a documented
	// convention per operator, not a statistical estimate).
	AverageValue() float64

	// String names the operator and its parameters, e.g. "Power(3)".
	String() string
}

// Invertible is implemented by operators with a closed-form inverse.
type Invertible interface {
	Operator

	// Inverse returns the paired inverse operator. Implementations must keep
	// the pairing symmetric: o.Inverse().Inverse() describes o again.
	Inverse() Operator
}

// Differentiable is implemented by operators with a closed-form derivative.
type Differentiable interface {
	Operator

	// Derivative evaluates df/dx at x.
	Derivative(x float64) float64

	// DerivativeOp returns the derivative as a new operator, allowing
	// symbolic chaining without numeric evaluation.
	DerivativeOp() Operator
}

// OutputDifferentiable is implemented by operators whose derivative can be
// computed from the forward output y = f(x) alone.
type OutputDifferentiable interface {
	Operator

	// DerivativeForOutput evaluates the derivative given only y = f(x).
	DerivativeForOutput(y float64) float64
}

// SliceApplier is implemented by operators with a specialized bulk path.
// ApplySlice must be observably identical to calling Apply per element.
type SliceApplier interface {
	ApplySlice(data []float64)
}

// Elements is the minimal indexed-container contract an operator needs to
// transform a container in place. vector.Vector satisfies it.
type Elements interface {
	Len() int
	UnsafeAt(i int) float64
	UnsafeSet(i int, v float64)
}

// unbounded provides the default domain and average value shared by most
// operators. Embedded by concrete operators.
type unbounded struct{}

// MinDomain reports -Inf (no lower restriction).
func (unbounded) MinDomain() float64 { return math.Inf(-1) }

// MaxDomain reports +Inf (no upper restriction).
func (unbounded) MaxDomain() float64 { return math.Inf(1) }

// AverageValue reports 0 unless the operator documents otherwise.
func (unbounded) AverageValue() float64 { return 0 }

// Compile-time assertions for the catalog.
var (
	_ Invertible           = (*Power)(nil)
	_ Differentiable       = (*Power)(nil)
	_ OutputDifferentiable = (*Power)(nil)
	_ SliceApplier         = (*Power)(nil)
	_ Invertible           = (*identity)(nil)
	_ Differentiable       = (*identity)(nil)
	_ Differentiable       = (*constant)(nil)
	_ Differentiable       = (*square)(nil)
	_ Differentiable       = (*product)(nil)
	_ Differentiable       = (*sum)(nil)
	_ Differentiable       = (*compose)(nil)
)
