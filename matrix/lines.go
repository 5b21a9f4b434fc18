// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/linalg/vector"

// colView is a live column of any Matrix, used where storage offers no
// cheaper column representation.
type colView struct {
	m Matrix
	j int
}

var _ vector.Vector = (*colView)(nil)

func (c *colView) Len() int { return c.m.Rows() }

func (c *colView) At(i int) (float64, error) {
	if i < 0 || i >= c.m.Rows() {
		return 0, vector.IndexError("Col.At", i, c.m.Rows())
	}

	return c.m.UnsafeAt(i, c.j), nil
}

func (c *colView) Set(i int, x float64) error {
	if i < 0 || i >= c.m.Rows() {
		return vector.IndexError("Col.Set", i, c.m.Rows())
	}

	return c.m.Set(i, c.j, x)
}

func (c *colView) UnsafeAt(i int) float64 { return c.m.UnsafeAt(i, c.j) }

func (c *colView) UnsafeSet(i int, x float64) { c.m.UnsafeSet(i, c.j, x) }

func (c *colView) IsView() bool { return true }

// IsFullyMutable is true when every row the column crosses is.
func (c *colView) IsFullyMutable() bool {
	for i := 0; i < c.m.Rows(); i++ {
		if !rowOf(c.m, i).IsFullyMutable() {
			return false
		}
	}

	return true
}

func (c *colView) Clone() vector.Vector { return vector.FromSlice(vector.ToSlice(c)) }

func (c *colView) String() string { return vector.FromSlice(vector.ToSlice(c)).String() }
