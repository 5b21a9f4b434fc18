// Package matrix provides two-dimensional numeric containers over several
// storage strategies, all behind one Matrix interface.
//
// 🚀 Storage strategies:
//
//	Dense       — row-major []float64, the fast path for everything
//	MatrixView  — live window into a Dense (shares storage)
//	RowMatrix   — a sequence of row vectors; rows are live handles
//	Quadtree    — four child matrices tiling the index space, recursively
//	ZeroMatrix  — immutable all-zero block, allocates nothing
//
// ✨ Default algorithms:
//
//	Fill, AddScalar, AddAt, ApplyOp, ElementSum, ElementSquaredSum,
//	NonZeroCount, Density, IsZero, IsFullyMutable, Transform, MatVec,
//	CopyElements, AsVector and Equals are package functions written only
//	against the Matrix interface. A concrete type overrides any of them by
//	implementing the matching capability interface (Filler, Transformer, ...).
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
//	z, _ := matrix.NewZeroMatrix(2, 2)
//	q, _ := matrix.NewQuadtree(a, z, z, a) // 4×4 block-diagonal
//	y := vector.Zeros(4)
//	_ = matrix.Transform(q, vector.FromSlice([]float64{1, 1, 1, 1}), y)
//
// Errors are the shared sentinels of the vector package (ErrOutOfRange,
// ErrDimensionMismatch, ErrImmutable) plus matrix-specific ones; match them
// with errors.Is. No locking is performed: views alias storage and callers
// serialize writers.
package matrix
