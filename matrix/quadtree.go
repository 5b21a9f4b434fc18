// SPDX-License-Identifier: MIT

// Package matrix - Quadtree: a matrix tiled by four child matrices.
//
// Layout:
//
//	| c00 (rowSplit × colSplit)          c01 (rowSplit × (cols-colSplit))        |
//	| c10 ((rows-rowSplit) × colSplit)   c11 ((rows-rowSplit) × (cols-colSplit)) |
//
// Purpose:
//   - Give each region its own storage strategy (dense, zero, nested
//     quadtree), which yields hierarchical sparsity when children recurse.
//
// Behavior highlights:
//   - Element access routes to exactly one child: row < rowSplit selects the
//     top pair, col < colSplit the left pair; coordinates are translated.
//   - Row/Col join the slices of the two children spanning that axis (live).
//   - Bulk operations fold over children in the fixed order c00, c01, c10, c11.
//   - The four child references never change after construction.
//
// Complexity:
//   - Access O(depth); reductions O(total child cost); Clone O(rows*cols).
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linalg/op"
	"github.com/katalvlaran/linalg/vector"
)

// Quadtree composes four matrices into one.
type Quadtree struct {
	c00, c01, c10, c11 Matrix
	rowSplit, colSplit int
	rows, cols         int
}

// NewQuadtree tiles the four children. The shapes are validated before the
// matrix is built; no child is read beyond its dimensions.
//
// Errors:
//   - ErrNilMatrix for a nil child.
//   - ErrDimensionMismatch when c00/c01 or c10/c11 differ in rows, or
//     c00/c10 or c01/c11 differ in columns.
func NewQuadtree(c00, c01, c10, c11 Matrix) (*Quadtree, error) {
	if err := ValidateQuadrants(c00, c01, c10, c11); err != nil {
		return nil, fmt.Errorf("NewQuadtree: %w", err)
	}

	return &Quadtree{
		c00: c00, c01: c01, c10: c10, c11: c11,
		rowSplit: c00.Rows(),
		colSplit: c00.Cols(),
		rows:     c00.Rows() + c10.Rows(),
		cols:     c00.Cols() + c01.Cols(),
	}, nil
}

func (q *Quadtree) Rows() int { return q.rows }

func (q *Quadtree) Cols() int { return q.cols }

// Splits returns the first row and column index of the bottom/right children.
func (q *Quadtree) Splits() (rowSplit, colSplit int) { return q.rowSplit, q.colSplit }

// Quadrants returns the children in the order c00, c01, c10, c11.
func (q *Quadtree) Quadrants() (c00, c01, c10, c11 Matrix) { return q.c00, q.c01, q.c10, q.c11 }

// children lists the quadrants in fold order.
func (q *Quadtree) children() [4]Matrix { return [4]Matrix{q.c00, q.c01, q.c10, q.c11} }

// locate returns the child owning (i, j) and the local coordinates.
func (q *Quadtree) locate(i, j int) (Matrix, int, int) {
	if i < q.rowSplit {
		if j < q.colSplit {
			return q.c00, i, j
		}
		return q.c01, i, j - q.colSplit
	}
	if j < q.colSplit {
		return q.c10, i - q.rowSplit, j
	}

	return q.c11, i - q.rowSplit, j - q.colSplit
}

func (q *Quadtree) At(i, j int) (float64, error) {
	if !inBounds(q, i, j) {
		return 0, IndexError("Quadtree.At", i, j, q.rows, q.cols)
	}

	return q.UnsafeAt(i, j), nil
}

// Set bounds-checks against the whole tree, then lets the owning child apply
// its own write policy (immutability, NaN/Inf).
func (q *Quadtree) Set(i, j int, v float64) error {
	if !inBounds(q, i, j) {
		return IndexError("Quadtree.Set", i, j, q.rows, q.cols)
	}
	c, li, lj := q.locate(i, j)
	if err := c.Set(li, lj, v); err != nil {
		return fmt.Errorf("Quadtree.Set(%d,%d): %w", i, j, err)
	}

	return nil
}

func (q *Quadtree) UnsafeAt(i, j int) float64 {
	c, li, lj := q.locate(i, j)
	return c.UnsafeAt(li, lj)
}

func (q *Quadtree) UnsafeSet(i, j int, v float64) {
	c, li, lj := q.locate(i, j)
	c.UnsafeSet(li, lj, v)
}

// AddAt adds x to (i, j) in the owning child.
func (q *Quadtree) AddAt(i, j int, x float64) error {
	if !inBounds(q, i, j) {
		return IndexError("Quadtree.AddAt", i, j, q.rows, q.cols)
	}
	c, li, lj := q.locate(i, j)
	if err := AddAt(c, li, lj, x); err != nil {
		return fmt.Errorf("Quadtree.AddAt(%d,%d): %w", i, j, err)
	}

	return nil
}

// Row joins the matching rows of the left and right children.
func (q *Quadtree) Row(i int) (vector.Vector, error) {
	if i < 0 || i >= q.rows {
		return nil, lineError("Quadtree.Row", i, q.rows)
	}
	left, right, li := q.c00, q.c01, i
	if i >= q.rowSplit {
		left, right, li = q.c10, q.c11, i-q.rowSplit
	}
	a, err := left.Row(li)
	if err != nil {
		return nil, err
	}
	b, err := right.Row(li)
	if err != nil {
		return nil, err
	}

	return vector.Join(a, b), nil
}

// Col joins the matching columns of the top and bottom children.
func (q *Quadtree) Col(j int) (vector.Vector, error) {
	if j < 0 || j >= q.cols {
		return nil, lineError("Quadtree.Col", j, q.cols)
	}
	top, bottom, lj := q.c00, q.c10, j
	if j >= q.colSplit {
		top, bottom, lj = q.c01, q.c11, j-q.colSplit
	}
	a, err := top.Col(lj)
	if err != nil {
		return nil, err
	}
	b, err := bottom.Col(lj)
	if err != nil {
		return nil, err
	}

	return vector.Join(a, b), nil
}

// IsView is true when any child is a view.
func (q *Quadtree) IsView() bool {
	for _, c := range q.children() {
		if c.IsView() {
			return true
		}
	}

	return false
}

// Clone recursively clones every child into a structurally identical tree.
func (q *Quadtree) Clone() Matrix {
	out := *q
	out.c00, out.c01, out.c10, out.c11 = q.c00.Clone(), q.c01.Clone(), q.c10.Clone(), q.c11.Clone()

	return &out
}

func (q *Quadtree) IsFullyMutable() bool {
	for _, c := range q.children() {
		if !IsFullyMutable(c) {
			return false
		}
	}

	return true
}

// eachChild checks that every child accepts a uniform write, then runs fn on
// each in fold order. Immutable blocks, nested or not, pass only while they
// stay zero.
func (q *Quadtree) eachChild(keepsZero bool, method string, fn func(Matrix) error) error {
	for k, c := range q.children() {
		if !acceptsUniform(c, keepsZero) {
			return fmt.Errorf("Quadtree.%s: quadrant %d: %w", method, k, ErrImmutable)
		}
	}
	for k, c := range q.children() {
		if err := fn(c); err != nil {
			return fmt.Errorf("Quadtree.%s: quadrant %d: %w", method, k, err)
		}
	}

	return nil
}

func (q *Quadtree) Fill(x float64) error {
	return q.eachChild(x == 0, "Fill", func(c Matrix) error { return Fill(c, x) })
}

func (q *Quadtree) AddScalar(x float64) error {
	return q.eachChild(x == 0, "AddScalar", func(c Matrix) error { return AddScalar(c, x) })
}

func (q *Quadtree) ApplyOp(o op.Operator) error {
	return q.eachChild(o.Apply(0) == 0, "ApplyOp", func(c Matrix) error { return ApplyOp(c, o) })
}

func (q *Quadtree) ElementSum() float64 {
	acc := 0.0
	for _, c := range q.children() {
		acc += ElementSum(c)
	}

	return acc
}

func (q *Quadtree) ElementSquaredSum() float64 {
	acc := 0.0
	for _, c := range q.children() {
		acc += ElementSquaredSum(c)
	}

	return acc
}

func (q *Quadtree) NonZeroCount() int64 {
	var n int64
	for _, c := range q.children() {
		n += NonZeroCount(c)
	}

	return n
}

func (q *Quadtree) IsZero() bool {
	for _, c := range q.children() {
		if !IsZero(c) {
			return false
		}
	}

	return true
}

// TransformTo computes each half of dst as the sum of two child transforms:
//
//	top    = c00·src[:colSplit] + c01·src[colSplit:]
//	bottom = c10·src[:colSplit] + c11·src[colSplit:]
//
// Children are checked against the split recorded at construction; a child
// that has since grown (RowMatrix.AppendRow) yields ErrDimensionMismatch and
// dst is left untouched.
func (q *Quadtree) TransformTo(src, dst vector.Vector) error {
	x := vector.ToSlice(src)
	xl, xr := vector.Wrap(x[:q.colSplit]), vector.Wrap(x[q.colSplit:])

	half := func(left, right Matrix, n int) ([]float64, error) {
		acc, tmp := vector.Zeros(n), vector.Zeros(n)
		if err := Transform(left, xl, acc); err != nil {
			return nil, err
		}
		if err := Transform(right, xr, tmp); err != nil {
			return nil, err
		}
		floats.Add(acc.RawData(), tmp.RawData())

		return acc.RawData(), nil
	}
	top, err := half(q.c00, q.c01, q.rowSplit)
	if err != nil {
		return fmt.Errorf("Quadtree.TransformTo: top: %w", err)
	}
	bottom, err := half(q.c10, q.c11, q.rows-q.rowSplit)
	if err != nil {
		return fmt.Errorf("Quadtree.TransformTo: bottom: %w", err)
	}
	for i, v := range top {
		dst.UnsafeSet(i, v)
	}
	for i, v := range bottom {
		dst.UnsafeSet(q.rowSplit+i, v)
	}

	return nil
}

// CopyElements scatters each child's row-major block into place.
func (q *Quadtree) CopyElements(dst []float64) {
	place := func(c Matrix, r0, c0 int) {
		cc := c.Cols()
		buf := ToSlice(c)
		for i := 0; i < c.Rows(); i++ {
			start := (r0+i)*q.cols + c0
			copy(dst[start:start+cc], buf[i*cc:(i+1)*cc])
		}
	}
	place(q.c00, 0, 0)
	place(q.c01, 0, q.colSplit)
	place(q.c10, q.rowSplit, 0)
	place(q.c11, q.rowSplit, q.colSplit)
}

func (q *Quadtree) String() string { return format(q) }
