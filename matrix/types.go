// SPDX-License-Identifier: MIT

// Package matrix: the Matrix contract and its capability interfaces.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import (
	"github.com/katalvlaran/linalg/op"
	"github.com/katalvlaran/linalg/vector"
)

// Matrix is a two-dimensional numeric container with fixed shape.
//
// Invariants:
//   - Rows() >= 0 and Cols() >= 0 never change.
//   - Checked accessors (At, Set, Row, Col) return ErrOutOfRange outside
//     bounds; Unsafe* accessors skip checks and agree with them in bounds.
//   - Row and Col return vectors of length Cols() and Rows(). Whether they
//     are live views is type-specific; RowMatrix rows always are.
//
// Complexity notes: accessors are O(1) for flat storage and O(depth) for
// Quadtree; Clone is O(rows*cols).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set assigns v at (i, j). Returns ErrOutOfRange for bad indices and
	// ErrImmutable or ErrNaNInf when the storage rejects v.
	Set(i, j int, v float64) error

	// UnsafeAt returns the element at (i, j) without bounds checks.
	UnsafeAt(i, j int) float64

	// UnsafeSet assigns (i, j) without bounds or policy checks.
	UnsafeSet(i, j int, v float64)

	// Row returns row i as a vector of length Cols().
	Row(i int) (vector.Vector, error)

	// Col returns column j as a vector of length Rows().
	Col(j int) (vector.Vector, error)

	// IsView reports whether element storage is shared with another structure.
	IsView() bool

	// Clone returns an independent deep copy with the same structure.
	Clone() Matrix
}

// Capability interfaces. The package function of the same name detects them
// and skips its generic row-by-row default.
type (
	// Filler overrides Fill.
	Filler interface {
		Fill(x float64) error
	}

	// ScalarAdder overrides AddScalar.
	ScalarAdder interface {
		AddScalar(x float64) error
	}

	// AtAdder overrides AddAt. Implementations perform their own bounds check.
	AtAdder interface {
		AddAt(i, j int, x float64) error
	}

	// OpApplier overrides ApplyOp.
	OpApplier interface {
		ApplyOp(o op.Operator) error
	}

	// ElementSummer overrides ElementSum.
	ElementSummer interface {
		ElementSum() float64
	}

	// ElementSquaredSummer overrides ElementSquaredSum.
	ElementSquaredSummer interface {
		ElementSquaredSum() float64
	}

	// NonZeroCounter overrides NonZeroCount.
	NonZeroCounter interface {
		NonZeroCount() int64
	}

	// ZeroTester overrides IsZero.
	ZeroTester interface {
		IsZero() bool
	}

	// MutabilityReporter overrides IsFullyMutable.
	MutabilityReporter interface {
		IsFullyMutable() bool
	}

	// Transformer overrides Transform. Shapes are validated by the caller:
	// src.Len() == Cols(), dst.Len() == Rows(). An error leaves dst
	// unwritten.
	Transformer interface {
		TransformTo(src, dst vector.Vector) error
	}

	// ElementCopier overrides CopyElements. dst has exactly Rows()*Cols()
	// elements.
	ElementCopier interface {
		CopyElements(dst []float64)
	}
)

// Compile-time assertions.
var (
	_ Matrix = (*Dense)(nil)
	_ Matrix = (*MatrixView)(nil)
	_ Matrix = (*RowMatrix)(nil)
	_ Matrix = (*Quadtree)(nil)
	_ Matrix = (*ZeroMatrix)(nil)

	_ Transformer   = (*Dense)(nil)
	_ ElementCopier = (*Dense)(nil)
	_ AtAdder       = (*Quadtree)(nil)
	_ Filler        = (*MatrixView)(nil)
	_ OpApplier     = (*MatrixView)(nil)
)
