// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// These sentinels are the shared error taxonomy of linalg; the matrix package
// re-exports them so errors.Is works regardless of which layer detected the
// condition.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that an index is outside [0, Len()).
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates incompatible lengths or shapes between
	// operands (Dot of unequal lengths, short destination buffers, ...).
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrImmutable indicates a write into storage that does not accept it.
	ErrImmutable = errors.New("linalg: immutable storage")

	// ErrInvalidLength indicates a negative requested length.
	ErrInvalidLength = errors.New("linalg: length must be >= 0")
)

// IndexError wraps ErrOutOfRange with the method, index and vector length.
//
//	IndexError("Dense.At", 5, 3) → "Dense.At(5) on length 3: linalg: index out of range"
func IndexError(method string, i, length int) error {
	return fmt.Errorf("%s(%d) on length %d: %w", method, i, length, ErrOutOfRange)
}

// LengthError wraps ErrDimensionMismatch with both lengths.
func LengthError(method string, got, want int) error {
	return fmt.Errorf("%s: length %d, want %d: %w", method, got, want, ErrDimensionMismatch)
}
