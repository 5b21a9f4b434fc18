// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/linalg/op"
)

// Zero is an immutable all-zero vector. It allocates no element storage and
// is the row/column type of sparse zero blocks.
//
// Writes of a non-zero value return ErrImmutable; UnsafeSet of a non-zero
// value panics.
type Zero struct {
	n int
}

// NewZero returns an immutable zero vector of length n.
//
// Errors:
//   - ErrInvalidLength when n < 0.
func NewZero(n int) (Zero, error) {
	if n < 0 {
		return Zero{}, ErrInvalidLength
	}

	return Zero{n: n}, nil
}

func (z Zero) Len() int { return z.n }

func (z Zero) At(i int) (float64, error) {
	if i < 0 || i >= z.n {
		return 0, IndexError("Zero.At", i, z.n)
	}

	return 0, nil
}

// Set accepts only 0, which is a no-op.
func (z Zero) Set(i int, x float64) error {
	if i < 0 || i >= z.n {
		return IndexError("Zero.Set", i, z.n)
	}
	if x != 0 {
		return fmt.Errorf("Zero.Set(%d): %w", i, ErrImmutable)
	}

	return nil
}

func (z Zero) UnsafeAt(int) float64 { return 0 }

func (z Zero) UnsafeSet(i int, x float64) {
	if x != 0 {
		panic(fmt.Errorf("Zero.UnsafeSet(%d): %w", i, ErrImmutable))
	}
}

func (z Zero) IsView() bool { return false }

// IsFullyMutable is false unless the vector is empty.
func (z Zero) IsFullyMutable() bool { return z.n == 0 }

// Clone returns z: an immutable value needs no copy.
func (z Zero) Clone() Vector { return z }

func (z Zero) Fill(x float64) error {
	if x != 0 && z.n > 0 {
		return fmt.Errorf("Zero.Fill: %w", ErrImmutable)
	}

	return nil
}

func (z Zero) AddScalar(x float64) error { return z.Fill(x) }

func (z Zero) Sum() float64 { return 0 }

func (z Zero) SquaredSum() float64 { return 0 }

func (z Zero) NonZeroCount() int64 { return 0 }

func (z Zero) IsZero() bool { return true }

// ApplyOp succeeds only for operators that map 0 to 0.
func (z Zero) ApplyOp(o op.Operator) error { return z.Fill(o.Apply(0)) }

func (z Zero) CopyTo(dst []float64) {
	for i := range dst[:z.n] {
		dst[i] = 0
	}
}

func (z Zero) String() string { return format(z) }
