// SPDX-License-Identifier: MIT

// Package op - Power operator.
//
// Purpose:
//   - f(x) = x^e with a cross-linked inverse x^(1/e).
//   - Degenerate exponents are interned at the factory boundary.
//
// Complexity quicksheet:
//   - NewPower: O(1), two allocations (operator and its inverse).
//   - Apply/Derivative: one math.Pow call.
package op

import (
	"fmt"
	"math"
)

// Power is f(x) = x^exponent. Construct it with NewPower.
//
// A Power and its inverse reference each other: p.Inverse().Inverse() is p
// itself (same pointer), not an equal copy.
type Power struct {
	unbounded
	exponent float64
	inverse  *Power
}

// NewPower returns the operator x^exponent.
//
// Implementation:
//   - Stage 1: intern degenerate exponents (0 → One, 1 → Identity, 2 → Square).
//   - Stage 2: allocate the pair {x^e, x^(1/e)} and link them to each other.
//
// The pair is built in one step so neither half is ever observable without
// its partner.
func NewPower(exponent float64) Operator {
	switch exponent {
	case 0:
		return One
	case 1:
		return Identity
	case 2:
		return Square
	}

	p := &Power{exponent: exponent}
	p.inverse = &Power{exponent: 1.0 / exponent, inverse: p}

	return p
}

// Exponent returns e.
func (p *Power) Exponent() float64 { return p.exponent }

// Apply returns x^e.
func (p *Power) Apply(x float64) float64 { return math.Pow(x, p.exponent) }

// ApplySlice raises every element to the power e in place.
func (p *Power) ApplySlice(data []float64) {
	e := p.exponent
	for i, v := range data {
		data[i] = math.Pow(v, e)
	}
}

// MinDomain is 0 for non-integral exponents (negative bases have no real
// fractional power) and -Inf otherwise.
func (p *Power) MinDomain() float64 {
	if p.exponent != math.Trunc(p.exponent) {
		return 0
	}

	return p.unbounded.MinDomain()
}

// AverageValue is 1 by convention.
func (p *Power) AverageValue() float64 { return 1 }

// Inverse returns the linked x^(1/e) operator.
func (p *Power) Inverse() Operator { return p.inverse }

// Derivative returns e·x^(e-1).
func (p *Power) Derivative(x float64) float64 {
	return p.exponent * math.Pow(x, p.exponent-1)
}

// DerivativeForOutput expresses the derivative through y = x^e:
// y · y^(1/e) / e.
func (p *Power) DerivativeForOutput(y float64) float64 {
	return y * math.Pow(y, 1.0/p.exponent) / p.exponent
}

// DerivativeOp returns Constant(e) · Power(e-1).
func (p *Power) DerivativeOp() Operator {
	return Product(NewConstant(p.exponent), NewPower(p.exponent-1))
}

func (p *Power) String() string { return fmt.Sprintf("Power(%g)", p.exponent) }
