// Package ops provides dense numerical kernels over row-major buffers and
// matrix.Matrix facades built on them.
//
// The central kernel is Gauss-Jordan reduction to reduced row echelon form
// (RREF) with partial pivoting:
//
//	r := ops.NewReducer(ops.WithTolerance(1e-12))
//	buf := []float64{2, 4, 8, 1, 1, 3} // [A | b], 2×3
//	rank, _ := r.Reduce(buf, 2, 3, 2)   // buf == [1 0 2; 0 1 1], rank == 2
//
// Rank deficiency is not an error: columns whose candidates are all within
// the tolerance are skipped and the returned rank counts the pivots placed.
// Rank, Solve and Inverse reduce augmented copies and leave their inputs
// untouched.
package ops
