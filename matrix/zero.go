// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/op"
	"github.com/katalvlaran/linalg/vector"
)

// ZeroMatrix is an immutable all-zero block. It stores no elements and is
// the natural filler for empty quadrants of a Quadtree.
//
// Writing 0 is accepted as a no-op; any other value yields ErrImmutable
// (UnsafeSet panics). Rows and columns are vector.Zero.
type ZeroMatrix struct {
	r, c int
}

// NewZeroMatrix returns an immutable rows×cols zero block.
func NewZeroMatrix(rows, cols int) (*ZeroMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewZeroMatrix(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &ZeroMatrix{r: rows, c: cols}, nil
}

func (z *ZeroMatrix) Rows() int { return z.r }

func (z *ZeroMatrix) Cols() int { return z.c }

func (z *ZeroMatrix) At(i, j int) (float64, error) {
	if !inBounds(z, i, j) {
		return 0, IndexError("ZeroMatrix.At", i, j, z.r, z.c)
	}

	return 0, nil
}

func (z *ZeroMatrix) Set(i, j int, v float64) error {
	if !inBounds(z, i, j) {
		return IndexError("ZeroMatrix.Set", i, j, z.r, z.c)
	}
	if v != 0 {
		return fmt.Errorf("ZeroMatrix.Set(%d,%d): %w", i, j, ErrImmutable)
	}

	return nil
}

func (z *ZeroMatrix) UnsafeAt(int, int) float64 { return 0 }

func (z *ZeroMatrix) UnsafeSet(i, j int, v float64) {
	if v != 0 {
		panic(fmt.Errorf("ZeroMatrix.UnsafeSet(%d,%d): %w", i, j, ErrImmutable))
	}
}

func (z *ZeroMatrix) Row(i int) (vector.Vector, error) {
	if i < 0 || i >= z.r {
		return nil, lineError("ZeroMatrix.Row", i, z.r)
	}
	row, _ := vector.NewZero(z.c) // z.c >= 0

	return row, nil
}

func (z *ZeroMatrix) Col(j int) (vector.Vector, error) {
	if j < 0 || j >= z.c {
		return nil, lineError("ZeroMatrix.Col", j, z.c)
	}
	col, _ := vector.NewZero(z.r)

	return col, nil
}

func (z *ZeroMatrix) IsView() bool { return false }

// Clone returns z itself: there is no state to copy.
func (z *ZeroMatrix) Clone() Matrix { return z }

func (z *ZeroMatrix) empty() bool { return z.r == 0 || z.c == 0 }

// IsFullyMutable is true only for an empty block.
func (z *ZeroMatrix) IsFullyMutable() bool { return z.empty() }

func (z *ZeroMatrix) Fill(x float64) error {
	if x != 0 && !z.empty() {
		return fmt.Errorf("ZeroMatrix.Fill(%g): %w", x, ErrImmutable)
	}

	return nil
}

func (z *ZeroMatrix) AddScalar(x float64) error { return z.Fill(x) }

// ApplyOp succeeds only for operators mapping 0 to 0.
func (z *ZeroMatrix) ApplyOp(o op.Operator) error { return z.Fill(o.Apply(0)) }

func (z *ZeroMatrix) ElementSum() float64 { return 0 }

func (z *ZeroMatrix) ElementSquaredSum() float64 { return 0 }

func (z *ZeroMatrix) NonZeroCount() int64 { return 0 }

func (z *ZeroMatrix) IsZero() bool { return true }

func (z *ZeroMatrix) TransformTo(_, dst vector.Vector) error {
	for i := 0; i < z.r; i++ {
		dst.UnsafeSet(i, 0)
	}

	return nil
}

func (z *ZeroMatrix) CopyElements(dst []float64) {
	for i := range dst {
		dst[i] = 0
	}
}

func (z *ZeroMatrix) String() string { return format(z) }
