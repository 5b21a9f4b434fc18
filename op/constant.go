// SPDX-License-Identifier: MIT

package op

import (
	"fmt"
	"math"
)

// Interned operators. They are created once and never mutated, so sharing
// them across goroutines needs no synchronization.
var (
	// Zero is the constant-zero operator.
	Zero Operator = &constant{value: 0}

	// One is the constant-one operator, returned by NewPower(0).
	One Operator = &constant{value: 1}

	// Identity is f(x) = x, returned by NewPower(1).
	Identity Operator = &identity{}

	// Square is f(x) = x², returned by NewPower(2).
	Square Operator = &square{}
)

// constant is f(x) = value.
type constant struct {
	unbounded
	value float64
}

// NewConstant returns f(x) = v. The values 0 and 1 return the interned
// Zero and One operators.
func NewConstant(v float64) Operator {
	switch v {
	case 0:
		return Zero
	case 1:
		return One
	}

	return &constant{value: v}
}

func (c *constant) Apply(float64) float64 { return c.value }

func (c *constant) ApplySlice(data []float64) {
	for i := range data {
		data[i] = c.value
	}
}

// AverageValue of a constant is the constant itself.
func (c *constant) AverageValue() float64 { return c.value }

func (c *constant) Derivative(float64) float64 { return 0 }

func (c *constant) DerivativeOp() Operator { return Zero }

func (c *constant) String() string { return fmt.Sprintf("Constant(%g)", c.value) }

// identity is f(x) = x. It is its own inverse.
type identity struct{ unbounded }

func (*identity) Apply(x float64) float64 { return x }

// ApplySlice leaves data untouched.
func (*identity) ApplySlice([]float64) {}

func (i *identity) Inverse() Operator { return i }

func (*identity) Derivative(float64) float64 { return 1 }

func (*identity) DerivativeForOutput(float64) float64 { return 1 }

func (*identity) DerivativeOp() Operator { return One }

func (*identity) String() string { return "Identity" }

// square is f(x) = x². It is not invertible over the reals.
type square struct{ unbounded }

func (*square) Apply(x float64) float64 { return x * x }

func (*square) ApplySlice(data []float64) {
	for i, v := range data {
		data[i] = v * v
	}
}

// AverageValue follows the Power convention (1).
func (*square) AverageValue() float64 { return 1 }

func (*square) Derivative(x float64) float64 { return 2 * x }

// DerivativeForOutput uses dy/dx = 2x = 2·√y, valid for x ≥ 0.
func (*square) DerivativeForOutput(y float64) float64 { return 2 * math.Sqrt(y) }

func (*square) DerivativeOp() Operator { return Product(NewConstant(2), Identity) }

func (*square) String() string { return "Square" }
