// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All algorithms return these sentinels (usually wrapped with call-site
// context) and tests match them via errors.Is. Panics are reserved for
// Unsafe* accessors and option constructors given nonsensical values.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// Shared with the vector package so that a single errors.Is check matches
// regardless of whether a matrix or one of its row vectors detected the
// condition.
var (
	// ErrOutOfRange indicates that a row or column index is outside bounds.
	ErrOutOfRange = vector.ErrOutOfRange

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Transform with a wrong-length destination or quadrants that do
	// not tile.
	ErrDimensionMismatch = vector.ErrDimensionMismatch

	// ErrImmutable indicates a write into storage that does not accept it.
	ErrImmutable = vector.ErrImmutable
)

var (
	// ErrBadShape is returned when a requested window does not fit its base.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates negative requested dimensions or ragged
	// input rows.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0 and rectangular")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// IndexError wraps ErrOutOfRange with the method and both coordinates.
//
//	IndexError("Dense.At", 2, 5, 2, 3) → "Dense.At(2,5) on 2x3: linalg: index out of range"
func IndexError(method string, row, col, rows, cols int) error {
	return fmt.Errorf("%s(%d,%d) on %dx%d: %w", method, row, col, rows, cols, ErrOutOfRange)
}

// ShapeError wraps ErrDimensionMismatch with the observed and required shapes.
func ShapeError(method string, gotRows, gotCols, wantRows, wantCols int) error {
	return fmt.Errorf("%s: shape %dx%d, want %dx%d: %w",
		method, gotRows, gotCols, wantRows, wantCols, ErrDimensionMismatch)
}

// lineError reports an out-of-range Row/Col request.
func lineError(method string, k, n int) error {
	return fmt.Errorf("%s(%d) on %d: %w", method, k, n, ErrOutOfRange)
}
