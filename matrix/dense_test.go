// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for Dense and MatrixView.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/op"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(0, 3) // empty shapes are legal
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 3, m.Cols())
}

func TestNewDenseFrom(t *testing.T) {
	t.Parallel()
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.RawData())

	_, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err = matrix.NewDenseFrom([][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(m.UnsafeAt(0, 0), 1))
}

// TestSetGet validates Set followed by At, and the error wording.
func TestSetGet(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	require.EqualError(t, m.Set(2, 0, 1), "Dense.Set(2,0) on 2x3: linalg: index out of range")
}

func TestDense_NaNPolicy(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	require.True(t, matrix.PolicyOf(m))

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Fill(math.Inf(-1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.AddScalar(math.NaN()), matrix.ErrNaNInf)

	// ApplyOp checks every result before writing any.
	require.NoError(t, m.Set(0, 1, -4))
	err = matrix.ApplyOp(m, op.NewPower(0.5))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Equal(t, []float64{0, -4}, m.RawData())

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.False(t, matrix.PolicyOf(loose))
	require.NoError(t, loose.Set(0, 0, math.NaN()))
}

func TestDense_RowAndColAreLive(t *testing.T) {
	t.Parallel()
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.True(t, row.IsView())
	require.NoError(t, row.Set(0, 40))
	require.Equal(t, 40.0, m.UnsafeAt(1, 0))

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, 2, col.Len())
	col.UnsafeSet(0, 30)
	require.Equal(t, 30.0, m.UnsafeAt(0, 2))

	require.False(t, m.IsView())
	c := m.Clone()
	c.UnsafeSet(0, 0, 100)
	require.Equal(t, 1.0, m.UnsafeAt(0, 0))
}

func TestDense_View(t *testing.T) {
	t.Parallel()
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	v, err := m.View(1, 1, 2, 2)
	require.NoError(t, err)
	require.True(t, v.IsView())
	require.Equal(t, "[5, 6]\n[8, 9]\n", v.String())

	require.NoError(t, v.Set(0, 0, 50))
	require.Equal(t, 50.0, m.UnsafeAt(1, 1))
	require.ErrorIs(t, v.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	col, err := v.Col(1)
	require.NoError(t, err)
	require.Equal(t, []float64{6, 9}, []float64{col.UnsafeAt(0), col.UnsafeAt(1)})

	c := v.Clone()
	require.False(t, c.IsView())
	c.UnsafeSet(1, 1, -1)
	require.Equal(t, 9.0, m.UnsafeAt(2, 2))

	_, err = m.View(2, 2, 2, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestMatrixView_BulkWritesHonorBasePolicy(t *testing.T) {
	t.Parallel()
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 0, 6}, {7, 8, 9}})
	v, err := m.View(1, 1, 2, 2)
	require.NoError(t, err)
	before := append([]float64(nil), m.RawData()...)

	require.ErrorIs(t, matrix.Fill(v, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.AddScalar(v, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ApplyOp(v, op.NewPower(-1)), matrix.ErrNaNInf)
	require.Equal(t, before, m.RawData())

	require.NoError(t, matrix.AddScalar(v, 1))
	require.NoError(t, matrix.ApplyOp(v, op.Square))
	require.Equal(t, []float64{1, 2, 3, 4, 1, 49, 7, 81, 100}, m.RawData())
	require.NoError(t, matrix.Fill(v, -1))
	require.Equal(t, []float64{1, 2, 3, 4, -1, -1, 7, -1, -1}, m.RawData())

	loose, err := matrix.NewDense(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	lv, err := loose.View(0, 1, 2, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.Fill(lv, math.Inf(-1)))
	require.True(t, math.IsInf(loose.UnsafeAt(1, 1), -1))
	require.Equal(t, 0.0, loose.UnsafeAt(1, 0))
}

func TestDense_String(t *testing.T) {
	t.Parallel()
	m := mustDense(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}

func TestIdentityAndToDense(t *testing.T) {
	t.Parallel()
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, 3.0, matrix.ElementSum(id))
	require.Equal(t, 1.0, id.UnsafeAt(2, 2))

	q, want := sample4x4(t)
	d, err := matrix.ToDense(q)
	require.NoError(t, err)
	require.Equal(t, want.RawData(), d.RawData())

	z, err := matrix.ZerosLike(q)
	require.NoError(t, err)
	require.True(t, matrix.IsZero(z))
	require.Equal(t, 4, z.Rows())

	_, err = matrix.ToDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
