// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/op"
	"github.com/katalvlaran/linalg/vector"
)

// A 2x3 row-major buffer; column 1 is data[1], data[4].
func TestStrided_ColumnView(t *testing.T) {
	t.Parallel()
	data := []float64{1, 2, 3, 4, 5, 6}
	col := mustStrided(t, data, 1, 3, 2)

	require.Equal(t, 2, col.Len())
	require.True(t, col.IsView())
	require.Equal(t, []float64{2, 5}, elems(col))

	require.NoError(t, col.Set(1, 50))
	require.Equal(t, 50.0, data[4])

	_, err := col.At(2)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
}

func TestNewStrided_Validation(t *testing.T) {
	t.Parallel()
	data := make([]float64, 6)

	_, err := vector.NewStrided(data, 0, 1, -1)
	require.ErrorIs(t, err, vector.ErrInvalidLength)

	_, err = vector.NewStrided(data, 1, 3, 3)
	require.ErrorIs(t, err, vector.ErrOutOfRange)

	_, err = vector.NewStrided(data, 0, 0, 2)
	require.ErrorIs(t, err, vector.ErrOutOfRange)

	s, err := vector.NewStrided(nil, 0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, s.Len())
}

func TestStrided_CloneAndApplyOp(t *testing.T) {
	t.Parallel()
	data := []float64{1, 2, 3, 4}
	even := mustStrided(t, data, 0, 2, 2)

	c := even.Clone()
	require.False(t, c.IsView())
	require.Equal(t, []float64{1, 3}, elems(c))

	require.NoError(t, vector.ApplyOp(even, op.NewConstant(7)))
	require.Equal(t, []float64{7, 2, 7, 4}, data)
	require.Equal(t, []float64{1, 3}, elems(c))
}
