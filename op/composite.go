// SPDX-License-Identifier: MIT

// Package op - composite operators.
//
// Product, Sum and Compose build new immutable operators from existing ones.
// Their capabilities are derived from the parts: a Sum of differentiable
// operators is differentiable, a Compose of invertible operators is
// invertible, and so on. Query them with HasInverse/HasDerivative.
package op

import (
	"fmt"
	"math"
)

// product is f(x) = a(x)·b(x).
type product struct {
	a, b Operator
}

// Product returns the pointwise product a(x)·b(x).
func Product(a, b Operator) Operator { return &product{a: a, b: b} }

func (p *product) Apply(x float64) float64 { return p.a.Apply(x) * p.b.Apply(x) }

// MinDomain is the intersection of both domains.
func (p *product) MinDomain() float64 { return math.Max(p.a.MinDomain(), p.b.MinDomain()) }

func (p *product) MaxDomain() float64 { return math.Min(p.a.MaxDomain(), p.b.MaxDomain()) }

func (p *product) AverageValue() float64 { return p.a.AverageValue() * p.b.AverageValue() }

func (p *product) invertible() bool { return false }

func (p *product) differentiable() bool { return HasDerivative(p.a) && HasDerivative(p.b) }

// Derivative applies the product rule a'·b + a·b'.
func (p *product) Derivative(x float64) float64 {
	da := p.a.(Differentiable).Derivative(x)
	db := p.b.(Differentiable).Derivative(x)

	return da*p.b.Apply(x) + p.a.Apply(x)*db
}

func (p *product) DerivativeOp() Operator {
	da := p.a.(Differentiable).DerivativeOp()
	db := p.b.(Differentiable).DerivativeOp()

	return Sum(Product(da, p.b), Product(p.a, db))
}

func (p *product) String() string { return fmt.Sprintf("Product(%s, %s)", p.a, p.b) }

// sum is f(x) = a(x) + b(x).
type sum struct {
	a, b Operator
}

// Sum returns the pointwise sum a(x)+b(x).
func Sum(a, b Operator) Operator { return &sum{a: a, b: b} }

func (s *sum) Apply(x float64) float64 { return s.a.Apply(x) + s.b.Apply(x) }

func (s *sum) MinDomain() float64 { return math.Max(s.a.MinDomain(), s.b.MinDomain()) }

func (s *sum) MaxDomain() float64 { return math.Min(s.a.MaxDomain(), s.b.MaxDomain()) }

func (s *sum) AverageValue() float64 { return s.a.AverageValue() + s.b.AverageValue() }

func (s *sum) invertible() bool { return false }

func (s *sum) differentiable() bool { return HasDerivative(s.a) && HasDerivative(s.b) }

func (s *sum) Derivative(x float64) float64 {
	return s.a.(Differentiable).Derivative(x) + s.b.(Differentiable).Derivative(x)
}

func (s *sum) DerivativeOp() Operator {
	return Sum(s.a.(Differentiable).DerivativeOp(), s.b.(Differentiable).DerivativeOp())
}

func (s *sum) String() string { return fmt.Sprintf("Sum(%s, %s)", s.a, s.b) }

// compose is f(x) = outer(inner(x)).
type compose struct {
	outer, inner Operator
}

// Compose returns outer∘inner. Composing with Identity on either side
// returns the other operator unchanged.
func Compose(outer, inner Operator) Operator {
	if outer == Identity {
		return inner
	}
	if inner == Identity {
		return outer
	}

	return &compose{outer: outer, inner: inner}
}

func (c *compose) Apply(x float64) float64 { return c.outer.Apply(c.inner.Apply(x)) }

// MinDomain is the inner domain; the outer restriction is not inverted.
func (c *compose) MinDomain() float64 { return c.inner.MinDomain() }

func (c *compose) MaxDomain() float64 { return c.inner.MaxDomain() }

func (c *compose) AverageValue() float64 { return c.outer.Apply(c.inner.AverageValue()) }

func (c *compose) invertible() bool { return HasInverse(c.outer) && HasInverse(c.inner) }

func (c *compose) differentiable() bool { return HasDerivative(c.outer) && HasDerivative(c.inner) }

// Inverse is inner⁻¹∘outer⁻¹.
func (c *compose) Inverse() Operator {
	return Compose(c.inner.(Invertible).Inverse(), c.outer.(Invertible).Inverse())
}

// Derivative applies the chain rule outer'(inner(x))·inner'(x).
func (c *compose) Derivative(x float64) float64 {
	return c.outer.(Differentiable).Derivative(c.inner.Apply(x)) * c.inner.(Differentiable).Derivative(x)
}

func (c *compose) DerivativeOp() Operator {
	return Product(
		Compose(c.outer.(Differentiable).DerivativeOp(), c.inner),
		c.inner.(Differentiable).DerivativeOp(),
	)
}

func (c *compose) String() string { return fmt.Sprintf("Compose(%s, %s)", c.outer, c.inner) }
