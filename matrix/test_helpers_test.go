// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the storage tests.
//   • Keep all data finite so the numeric policy never interferes.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// hide wraps any Matrix so that only the Matrix methods are visible.
// Package functions then take their generic, row-based defaults.
type hide struct{ matrix.Matrix }

// mustDense builds a Dense from literal rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// mustZero builds an r×c ZeroMatrix or fails the test.
func mustZero(t testing.TB, r, c int) *matrix.ZeroMatrix {
	t.Helper()
	z, err := matrix.NewZeroMatrix(r, c)
	require.NoError(t, err)

	return z
}

// mustQuad builds a Quadtree or fails the test.
func mustQuad(t testing.TB, c00, c01, c10, c11 matrix.Matrix) *matrix.Quadtree {
	t.Helper()
	q, err := matrix.NewQuadtree(c00, c01, c10, c11)
	require.NoError(t, err)

	return q
}

// randDense fills an r×c Dense with values in [-1, 1) from a fixed seed.
func randDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	data := m.RawData()
	for k := range data {
		data[k] = rng.Float64()*2 - 1
	}

	return m
}

// sample4x4 returns a 4×4 quadtree split at (1, 2) with a zero lower-left
// quadrant, together with the same values as a Dense:
//
//	[ 1  2 |  3  4 ]
//	[------+-------]
//	[ 0  0 |  5  6 ]
//	[ 0  0 |  7  8 ]
//	[ 0  0 |  9 10 ]
func sample4x4(t testing.TB) (*matrix.Quadtree, *matrix.Dense) {
	t.Helper()
	c00 := mustDense(t, [][]float64{{1, 2}})
	c01 := mustDense(t, [][]float64{{3, 4}})
	c10 := mustZero(t, 3, 2)
	c11 := mustDense(t, [][]float64{{5, 6}, {7, 8}, {9, 10}})
	want := mustDense(t, [][]float64{
		{1, 2, 3, 4},
		{0, 0, 5, 6},
		{0, 0, 7, 8},
		{0, 0, 9, 10},
	})

	return mustQuad(t, c00, c01, c10, c11), want
}

// rowMatrixOf adopts Dense rows built from literals.
func rowMatrixOf(t testing.TB, rows ...[]float64) *matrix.RowMatrix {
	t.Helper()
	vs := make([]vector.Vector, len(rows))
	for i, r := range rows {
		vs[i] = vector.FromSlice(r)
	}
	m, err := matrix.NewRowMatrixOf(vs...)
	require.NoError(t, err)

	return m
}

// allTypes returns one instance of every storage strategy holding the
// values of base (3×4).
func allTypes(t testing.TB) map[string]matrix.Matrix {
	t.Helper()
	vals := [][]float64{{1, -2, 0, 4}, {0, 5, 6, 0}, {7, 0, -8, 9}}
	dense := mustDense(t, vals)

	big := mustDense(t, [][]float64{
		{0, 0, 0, 0, 0},
		{0, 1, -2, 0, 4},
		{0, 0, 5, 6, 0},
		{0, 7, 0, -8, 9},
	})
	view, err := big.View(1, 1, 3, 4)
	require.NoError(t, err)

	quad := mustQuad(t,
		mustDense(t, [][]float64{{1, -2}}),
		mustDense(t, [][]float64{{0, 4}}),
		mustDense(t, [][]float64{{0, 5}, {7, 0}}),
		mustDense(t, [][]float64{{6, 0}, {-8, 9}}),
	)

	return map[string]matrix.Matrix{
		"dense":    dense,
		"view":     view,
		"rows":     rowMatrixOf(t, vals[0], vals[1], vals[2]),
		"quadtree": quad,
		"generic":  hide{mustDense(t, vals)},
	}
}
