// Package linalg is a small toolkit for dense and structured real matrices:
// one element-access contract, several storage strategies behind it, and a
// Gauss-Jordan kernel on top.
//
// 🚀 What is inside?
//
//	• op/      — scalar operators (x^p, constants, composition) with
//	             inverses and derivatives, applied element-wise
//	• vector/  — the Vector contract plus Dense, Strided, Joined and Zero
//	             vectors sharing one set of default algorithms
//	• matrix/  — the Matrix contract plus Dense (row-major), RowMatrix
//	             (one vector per row), ZeroMatrix and Quadtree (four
//	             child blocks), with gonum interop
//	• matrix/ops/ — in-place RREF, Rank, Solve and Inverse
//
// ✨ Design in one line
//
//   - Every derived operation (fill, sums, transform, copy) exists once as a
//     package function; a storage type overrides it only by implementing the
//     matching capability interface.
//
// Quick example, a block-diagonal matrix that stores no zeros:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
//	z, _ := matrix.NewZeroMatrix(2, 2)
//	q, _ := matrix.NewQuadtree(a, z, z, a.Clone())
//	y, _ := matrix.MatVec(q, []float64{1, 1, 1, 1}) // [3 7 3 7]
//
//	go get github.com/katalvlaran/linalg
package linalg
