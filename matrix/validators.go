// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape and nil checks.
//  - Keep kernels and facades minimal by delegating guards here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each validator describes what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ShapeError("ValidateSameShape", b.Rows(), b.Cols(), a.Rows(), a.Cols())
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return ShapeError("ValidateSquare", m.Rows(), m.Cols(), m.Rows(), m.Rows())
	}

	return nil
}

// ValidateVecLen ensures v has exactly n elements.
func ValidateVecLen(v vector.Vector, n int) error {
	if v == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if v.Len() != n {
		return vector.LengthError("ValidateVecLen", v.Len(), n)
	}

	return nil
}

// ValidateQuadrants checks that four children tile a rectangle:
// c00/c01 and c10/c11 share row counts, c00/c10 and c01/c11 share column
// counts. Nothing is read beyond Rows and Cols.
//
// Errors:
//   - ErrNilMatrix if any child is nil.
//   - ErrDimensionMismatch naming the first violated pair.
func ValidateQuadrants(c00, c01, c10, c11 Matrix) error {
	for _, c := range [...]Matrix{c00, c01, c10, c11} {
		if err := ValidateNotNil(c); err != nil {
			return err
		}
	}
	switch {
	case c00.Rows() != c01.Rows():
		return fmt.Errorf("ValidateQuadrants: c00 has %d rows, c01 has %d: %w", c00.Rows(), c01.Rows(), ErrDimensionMismatch)
	case c10.Rows() != c11.Rows():
		return fmt.Errorf("ValidateQuadrants: c10 has %d rows, c11 has %d: %w", c10.Rows(), c11.Rows(), ErrDimensionMismatch)
	case c00.Cols() != c10.Cols():
		return fmt.Errorf("ValidateQuadrants: c00 has %d cols, c10 has %d: %w", c00.Cols(), c10.Cols(), ErrDimensionMismatch)
	case c01.Cols() != c11.Cols():
		return fmt.Errorf("ValidateQuadrants: c01 has %d cols, c11 has %d: %w", c01.Cols(), c11.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// inBounds reports 0 <= i < rows && 0 <= j < cols.
func inBounds(m Matrix, i, j int) bool {
	return i >= 0 && i < m.Rows() && j >= 0 && j < m.Cols()
}
