// SPDX-License-Identifier: MIT

package op_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/op"
)

func TestConstant_Interned(t *testing.T) {
	t.Parallel()

	require.Same(t, op.Zero, op.NewConstant(0))
	require.Same(t, op.One, op.NewConstant(1))

	c := op.NewConstant(4.5)
	require.Equal(t, 4.5, c.Apply(-100))
	require.Equal(t, 4.5, c.AverageValue())
	require.False(t, op.HasInverse(c))

	dop, err := op.DerivativeOp(c)
	require.NoError(t, err)
	require.Same(t, op.Zero, dop)
}

func TestIdentity_SelfInverse(t *testing.T) {
	t.Parallel()

	inv, err := op.Inverse(op.Identity)
	require.NoError(t, err)
	require.Same(t, op.Identity, inv)

	d, err := op.DerivativeForOutput(op.Identity, 42)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)
}

func TestSquare_NoInverse(t *testing.T) {
	t.Parallel()

	_, err := op.Inverse(op.Square)
	require.ErrorIs(t, err, op.ErrNoInverse)

	d, err := op.Derivative(op.Square, 3)
	require.NoError(t, err)
	require.Equal(t, 6.0, d)

	dop, err := op.DerivativeOp(op.Square)
	require.NoError(t, err)
	require.Equal(t, 6.0, dop.Apply(3))
}

// TestProduct_ProductRule compares the symbolic and numeric product rule
// against a central finite difference.
func TestProduct_ProductRule(t *testing.T) {
	t.Parallel()

	f := op.Product(op.NewPower(3), op.Square) // x^5
	require.True(t, op.HasDerivative(f))
	require.False(t, op.HasInverse(f))

	for _, x := range []float64{0.5, 1, 1.5, 2} {
		d, err := op.Derivative(f, x)
		require.NoError(t, err)
		assert.InDelta(t, centralDiff(f, x), d, 1e-5)

		dop, err := op.DerivativeOp(f)
		require.NoError(t, err)
		assert.InDelta(t, d, dop.Apply(x), 1e-9)
	}
}

// TestCompose_ChainRuleAndInverse checks chain rule and inner⁻¹∘outer⁻¹.
func TestCompose_ChainRuleAndInverse(t *testing.T) {
	t.Parallel()

	f := op.Compose(op.NewPower(3), op.NewPower(0.5)) // (√x)^3
	require.True(t, op.HasInverse(f))
	require.True(t, op.HasDerivative(f))
	require.Equal(t, 0.0, f.MinDomain())

	x := 4.0
	require.InDelta(t, 8.0, f.Apply(x), 1e-12)

	y, err := op.ApplyInverse(f, 8.0)
	require.NoError(t, err)
	require.InDelta(t, x, y, 1e-12)

	d, err := op.Derivative(f, x)
	require.NoError(t, err)
	require.InDelta(t, centralDiff(f, x), d, 1e-5)

	dop, err := op.DerivativeOp(f)
	require.NoError(t, err)
	require.InDelta(t, d, dop.Apply(x), 1e-9)
}

func TestCompose_IdentityElided(t *testing.T) {
	t.Parallel()

	p := op.NewPower(3)
	require.Same(t, p, op.Compose(op.Identity, p))
	require.Same(t, p, op.Compose(p, op.Identity))
}

// TestCompose_CapabilitiesFollowParts: squaring breaks invertibility, a
// custom operator without derivative breaks differentiability.
func TestCompose_CapabilitiesFollowParts(t *testing.T) {
	t.Parallel()

	f := op.Compose(op.Square, op.NewPower(3))
	require.False(t, op.HasInverse(f))
	_, err := op.Inverse(f)
	require.ErrorIs(t, err, op.ErrNoInverse)

	g := op.Sum(op.Identity, clamp{})
	require.False(t, op.HasDerivative(g))
	_, err = op.Derivative(g, 1)
	require.ErrorIs(t, err, op.ErrNoDerivative)
	_, err = op.DerivativeOp(g)
	require.ErrorIs(t, err, op.ErrNoDerivative)
	_, err = op.DerivativeForOutput(g, 1)
	require.ErrorIs(t, err, op.ErrNoOutputDerivative)

	// Bulk application falls back to Apply for operators without a slice path.
	data := []float64{-2, 0.5, 3}
	op.ApplySlice(g, data)
	require.Equal(t, []float64{-2, 1, 4}, data)
}

// clamp is a user operator with no optional capabilities: f(x) = min(max(x,0),1).
type clamp struct{}

func (clamp) Apply(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}
func (clamp) MinDomain() float64    { return -1e308 }
func (clamp) MaxDomain() float64    { return 1e308 }
func (clamp) AverageValue() float64 { return 0.5 }
func (clamp) String() string        { return "Clamp" }

func centralDiff(f op.Operator, x float64) float64 {
	const h = 1e-6
	return (f.Apply(x+h) - f.Apply(x-h)) / (2 * h)
}
