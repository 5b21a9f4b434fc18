// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/linalg/op"

// Vector is a fixed-length one-dimensional numeric container.
//
// Invariants:
//   - Len() >= 0 and never changes.
//   - At/Set accept exactly the indices in [0, Len()) and return
//     ErrOutOfRange otherwise.
//   - UnsafeAt/UnsafeSet skip bounds checks; out-of-range use is undefined
//     (may panic). For in-bounds indices they match At/Set.
//
// Vector satisfies op.Elements, so any operator can be applied to it.
type Vector interface {
	// Len returns the number of elements. Complexity: O(1).
	Len() int

	// At returns element i or ErrOutOfRange.
	At(i int) (float64, error)

	// Set assigns element i. Returns ErrOutOfRange on a bad index and
	// ErrImmutable when the storage rejects writes.
	Set(i int, v float64) error

	// UnsafeAt returns element i without bounds checks.
	UnsafeAt(i int) float64

	// UnsafeSet assigns element i without bounds checks.
	UnsafeSet(i int, v float64)

	// IsView reports whether the element storage is shared with another
	// structure (mutations are observable through both).
	IsView() bool

	// IsFullyMutable reports whether every element may be overwritten.
	IsFullyMutable() bool

	// Clone returns an independent copy that owns its storage.
	Clone() Vector
}

// Capability interfaces. Package functions detect them to replace the
// generic element-by-element defaults with storage-specific code.
type (
	// RawVector exposes contiguous backing storage for fast paths.
	// The returned slice aliases the vector (len == Len()).
	RawVector interface {
		RawData() []float64
	}

	// Filler overrides Fill.
	Filler interface {
		Fill(x float64) error
	}

	// ScalarAdder overrides AddScalar.
	ScalarAdder interface {
		AddScalar(x float64) error
	}

	// Summer overrides Sum.
	Summer interface {
		Sum() float64
	}

	// SquaredSummer overrides SquaredSum.
	SquaredSummer interface {
		SquaredSum() float64
	}

	// NonZeroCounter overrides NonZeroCount.
	NonZeroCounter interface {
		NonZeroCount() int64
	}

	// ZeroTester overrides IsZero.
	ZeroTester interface {
		IsZero() bool
	}

	// OpApplier overrides ApplyOp.
	OpApplier interface {
		ApplyOp(o op.Operator) error
	}

	// ElementCopier overrides CopyTo. Implementations may assume the
	// destination window has already been validated.
	ElementCopier interface {
		CopyTo(dst []float64)
	}
)

// Compile-time assertions.
var (
	_ op.Elements = Vector(nil)
	_ Vector      = (*Dense)(nil)
	_ Vector      = (*Strided)(nil)
	_ Vector      = (*Joined)(nil)
	_ Vector      = Zero{}
	_ RawVector   = (*Dense)(nil)
)
