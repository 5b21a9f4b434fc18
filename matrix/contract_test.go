// SPDX-License-Identifier: MIT

// Package matrix_test: properties every storage strategy must satisfy.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/op"
	"github.com/katalvlaran/linalg/vector"
)

var contractValues = []float64{
	1, -2, 0, 4,
	0, 5, 6, 0,
	7, 0, -8, 9,
}

func TestContract_CheckedMatchesUnsafe(t *testing.T) {
	t.Parallel()
	for name, m := range allTypes(t) {
		m := m
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, 3, m.Rows())
			require.Equal(t, 4, m.Cols())
			for i := 0; i < m.Rows(); i++ {
				for j := 0; j < m.Cols(); j++ {
					v, err := m.At(i, j)
					require.NoError(t, err)
					require.Equal(t, m.UnsafeAt(i, j), v)
					require.Equal(t, contractValues[i*4+j], v)
				}
			}
			for _, ij := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 4}} {
				_, err := m.At(ij[0], ij[1])
				require.ErrorIs(t, err, matrix.ErrOutOfRange)
				require.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange)
			}
			_, err := m.Row(3)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			_, err = m.Col(-1)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
		})
	}
}

func TestContract_TransformIsRowDot(t *testing.T) {
	t.Parallel()
	src := vector.FromSlice([]float64{1, 2, -1, 0.5})
	for name, m := range allTypes(t) {
		m := m
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dst := vector.Zeros(m.Rows())
			require.NoError(t, matrix.Transform(m, src, dst))
			for i := 0; i < m.Rows(); i++ {
				row, err := m.Row(i)
				require.NoError(t, err)
				want, err := vector.Dot(row, src)
				require.NoError(t, err)
				require.InDelta(t, want, dst.UnsafeAt(i), 1e-12)
			}
			require.InDeltaSlice(t, []float64{-1, 4, 19.5}, dst.RawData(), 1e-12)

			// A strided (non-raw) source takes the same result.
			buf := []float64{1, 9, 2, 9, -1, 9, 0.5, 9}
			strided, err := vector.NewStrided(buf, 0, 2, 4)
			require.NoError(t, err)
			dst2 := vector.Zeros(m.Rows())
			require.NoError(t, matrix.Transform(m, strided, dst2))
			require.True(t, vector.EqualsWithin(dst, dst2, 1e-12))
		})
	}
}

func TestContract_TransformRejectsBadShapes(t *testing.T) {
	t.Parallel()
	for name, m := range allTypes(t) {
		m := m
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := matrix.Transform(m, vector.Zeros(4), vector.Zeros(2))
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
			err = matrix.Transform(m, vector.Zeros(3), vector.Zeros(3))
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

			z, err := vector.NewZero(3)
			require.NoError(t, err)
			require.ErrorIs(t, matrix.Transform(m, vector.Zeros(4), z), matrix.ErrImmutable)
		})
	}
}

func TestContract_Reductions(t *testing.T) {
	t.Parallel()
	for name, m := range allTypes(t) {
		m := m
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, 22.0, matrix.ElementSum(m))
			require.Equal(t, 276.0, matrix.ElementSquaredSum(m))
			require.Equal(t, int64(8), matrix.NonZeroCount(m))
			require.InDelta(t, 8.0/12.0, matrix.Density(m), 1e-15)
			require.False(t, matrix.IsZero(m))
			require.True(t, matrix.IsFullyMutable(m))
		})
	}
}

func TestContract_ExportAndFlatten(t *testing.T) {
	t.Parallel()
	for name, m := range allTypes(t) {
		m := m
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, contractValues, matrix.ToSlice(m))

			buf := make([]float64, 14)
			require.NoError(t, matrix.CopyElements(m, buf, 1))
			require.Equal(t, contractValues, buf[1:13])
			require.ErrorIs(t, matrix.CopyElements(m, buf, 3), matrix.ErrDimensionMismatch)

			flat := matrix.AsVector(m)
			require.Equal(t, 12, flat.Len())
			require.Equal(t, contractValues, vector.ToSlice(flat))
		})
	}
}

func TestContract_ApplyOpIsPointwise(t *testing.T) {
	t.Parallel()
	for name, m := range allTypes(t) {
		m := m
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := m.Clone()
			require.NoError(t, matrix.ApplyOp(c, op.Square))
			for i := 0; i < m.Rows(); i++ {
				for j := 0; j < m.Cols(); j++ {
					require.Equal(t, op.Square.Apply(m.UnsafeAt(i, j)), c.UnsafeAt(i, j))
				}
			}
			// Clone is independent of the source.
			require.Equal(t, contractValues, matrix.ToSlice(m))
		})
	}
}

func TestContract_CloneEqualsSource(t *testing.T) {
	t.Parallel()
	base := mustDense(t, [][]float64{{1, -2, 0, 4}, {0, 5, 6, 0}, {7, 0, -8, 9}})
	for name, m := range allTypes(t) {
		m := m
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.True(t, matrix.Equals(base, m))
			require.True(t, matrix.Equals(m, m.Clone()))
		})
	}
}
