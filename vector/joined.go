// SPDX-License-Identifier: MIT

// Package vector - Joined: live concatenation of two vectors.
//
// Purpose:
//   - Represent [left | right] without copying either part.
//   - Route every element access to exactly one part by comparing the index
//     with split = left.Len().
//
// Behavior highlights:
//   - Writes through a Joined are visible in the parts (and in anything the
//     parts themselves view, e.g. the quadrants of a matrix).
//   - Reductions fold left then right, delegating to each part's fast path.
//   - Bulk writes check both parts before touching either.
package vector

import (
	"fmt"

	"github.com/katalvlaran/linalg/op"
)

// Joined is the ordered concatenation of two vectors.
type Joined struct {
	left, right Vector
	split       int // left.Len(), cached
}

// Join returns the concatenation [a | b] as a live view over both parts.
// Joining with an empty vector returns the other operand unchanged.
func Join(a, b Vector) Vector {
	if a.Len() == 0 {
		return b
	}
	if b.Len() == 0 {
		return a
	}

	return &Joined{left: a, right: b, split: a.Len()}
}

func (j *Joined) Len() int { return j.split + j.right.Len() }

func (j *Joined) At(i int) (float64, error) {
	if i < 0 || i >= j.Len() {
		return 0, IndexError("Joined.At", i, j.Len())
	}

	return j.UnsafeAt(i), nil
}

func (j *Joined) Set(i int, x float64) error {
	if i < 0 || i >= j.Len() {
		return IndexError("Joined.Set", i, j.Len())
	}
	if i < j.split {
		return j.left.Set(i, x)
	}

	return j.right.Set(i-j.split, x)
}

func (j *Joined) UnsafeAt(i int) float64 {
	if i < j.split {
		return j.left.UnsafeAt(i)
	}

	return j.right.UnsafeAt(i - j.split)
}

func (j *Joined) UnsafeSet(i int, x float64) {
	if i < j.split {
		j.left.UnsafeSet(i, x)
		return
	}
	j.right.UnsafeSet(i-j.split, x)
}

// IsView is always true: Joined owns no storage.
func (j *Joined) IsView() bool { return true }

func (j *Joined) IsFullyMutable() bool {
	return j.left.IsFullyMutable() && j.right.IsFullyMutable()
}

// Clone materializes both parts into one owned Dense.
func (j *Joined) Clone() Vector {
	out := Zeros(j.Len())
	j.CopyTo(out.data)

	return out
}

// Parts returns the two joined vectors.
func (j *Joined) Parts() (left, right Vector) { return j.left, j.right }

func (j *Joined) Fill(x float64) error {
	if !AcceptsUniform(j, x == 0) {
		return fmt.Errorf("Joined.Fill: %w", ErrImmutable)
	}
	if err := Fill(j.left, x); err != nil {
		return err
	}

	return Fill(j.right, x)
}

func (j *Joined) AddScalar(x float64) error {
	if !AcceptsUniform(j, x == 0) {
		return fmt.Errorf("Joined.AddScalar: %w", ErrImmutable)
	}
	if err := AddScalar(j.left, x); err != nil {
		return err
	}

	return AddScalar(j.right, x)
}

func (j *Joined) Sum() float64 { return Sum(j.left) + Sum(j.right) }

func (j *Joined) SquaredSum() float64 { return SquaredSum(j.left) + SquaredSum(j.right) }

func (j *Joined) NonZeroCount() int64 { return NonZeroCount(j.left) + NonZeroCount(j.right) }

func (j *Joined) IsZero() bool { return IsZero(j.left) && IsZero(j.right) }

func (j *Joined) ApplyOp(o op.Operator) error {
	if !AcceptsUniform(j, o.Apply(0) == 0) {
		return fmt.Errorf("Joined.ApplyOp(%s): %w", o, ErrImmutable)
	}
	if err := ApplyOp(j.left, o); err != nil {
		return err
	}

	return ApplyOp(j.right, o)
}

func (j *Joined) CopyTo(dst []float64) {
	copyInto(j.left, dst[:j.split])
	copyInto(j.right, dst[j.split:])
}

func (j *Joined) String() string { return format(j) }
