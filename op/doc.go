// Package op defines scalar operators: immutable function objects over float64
// that can be applied pointwise to scalars, slices and any indexed container.
//
// 🚀 What is an Operator?
//
//	An Operator is a pure function f: ℝ → ℝ that also describes itself:
//	  • its domain restriction (MinDomain / MaxDomain)
//	  • a representative "average" output value
//	  • optionally an inverse (Invertible)
//	  • optionally a derivative, both numeric and symbolic (Differentiable)
//
// ✨ Key features:
//   - interned singletons: One, Zero, Identity, Square
//   - NewPower(e) returns the interned variant for e ∈ {0, 1, 2}
//   - Power inverses are cross-linked: p.Inverse().Inverse() == p (same pointer)
//   - closure under differentiation via Product, Sum and Compose
//
// ⚙️ Usage:
//
//	cube := op.NewPower(3)
//	cube.Apply(2)                 // 8
//	d, _ := op.Derivative(cube, 2) // 12
//	root, _ := op.Inverse(cube)    // Power(1/3)
//
// Operators carry no mutable state and are safe for concurrent use.
package op
