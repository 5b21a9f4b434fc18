// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

// Reducer performs in-place Gauss-Jordan reduction. It holds only its
// configuration and is safe for concurrent use on distinct buffers.
type Reducer struct {
	tol    float64
	logger *slog.Logger
}

// NewReducer returns a Reducer with DefaultTolerance unless overridden.
func NewReducer(opts ...Option) *Reducer {
	o := gatherOptions(opts...)

	return &Reducer{tol: o.tol, logger: o.logger}
}

// Tolerance returns the pivot threshold.
func (r *Reducer) Tolerance() float64 { return r.tol }

// Reduce brings the rows×cols row-major buffer data to reduced row echelon
// form in place, pivoting only in the first coefficientColumns columns. The
// remaining columns (right-hand sides) are carried along.
//
// Implementation, for each column i < coefficientColumns:
//   - Stage 1: among rows lead..rows-1 pick the largest |a[row][i]| that
//     exceeds the tolerance; if none does, skip the column (lead unchanged).
//   - Stage 2: swap the pivot row into position lead.
//   - Stage 3: eliminate column i from every other row, above and below:
//     alpha = a[row][i]/pivot, a[row][i] = 0, a[row][c] -= alpha*a[lead][c] for c > i.
//   - Stage 4: normalize the pivot row: a[lead][i] = 1, a[lead][c] /= pivot for c > i.
//   - Stage 5: lead++.
//
// Returns:
//   - rank: the number of pivots placed. rank < min(rows, coefficientColumns)
//     signals rank deficiency, which is not an error.
//
// Errors:
//   - matrix.ErrInvalidDimensions for negative rows or cols.
//   - matrix.ErrDimensionMismatch if len(data) != rows*cols or
//     coefficientColumns is outside [0, cols].
//
// Complexity:
//   - Time O(rank * rows * cols), Space O(1).
func (r *Reducer) Reduce(data []float64, rows, cols, coefficientColumns int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, fmt.Errorf("Reduce(%d,%d): %w", rows, cols, matrix.ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return 0, fmt.Errorf("Reduce: buffer has %d elements, want %d: %w", len(data), rows*cols, matrix.ErrDimensionMismatch)
	}
	if coefficientColumns < 0 || coefficientColumns > cols {
		return 0, fmt.Errorf("Reduce: coefficientColumns %d outside [0,%d]: %w", coefficientColumns, cols, matrix.ErrDimensionMismatch)
	}

	lead := 0
	for i := 0; i < coefficientColumns && lead < rows; i++ {
		pivotRow, best := -1, r.tol
		for row := lead; row < rows; row++ {
			if v := math.Abs(data[row*cols+i]); v > best {
				pivotRow, best = row, v
			}
		}
		if pivotRow < 0 {
			r.logger.Debug("rref: column skipped", slog.Int("column", i), slog.Int("lead", lead))
			continue
		}
		if pivotRow != lead {
			swapRows(data, cols, pivotRow, lead)
		}

		pr := data[lead*cols : (lead+1)*cols]
		pivot := pr[i]
		for row := 0; row < rows; row++ {
			if row == lead {
				continue
			}
			tr := data[row*cols : (row+1)*cols]
			alpha := tr[i] / pivot
			tr[i] = 0
			for c := i + 1; c < cols; c++ {
				tr[c] -= alpha * pr[c]
			}
		}
		pr[i] = 1
		for c := i + 1; c < cols; c++ {
			pr[c] /= pivot
		}
		lead++
	}

	r.logger.Debug("rref: reduction complete",
		slog.Int("rows", rows), slog.Int("cols", cols), slog.Int("rank", lead))

	return lead, nil
}

// swapRows exchanges rows a and b of a row-major buffer.
func swapRows(data []float64, cols, a, b int) {
	ra, rb := data[a*cols:(a+1)*cols], data[b*cols:(b+1)*cols]
	for c := range ra {
		ra[c], rb[c] = rb[c], ra[c]
	}
}

// RREF reduces data with a Reducer built from opts. See Reducer.Reduce.
func RREF(data []float64, rows, cols, coefficientColumns int, opts ...Option) (int, error) {
	return NewReducer(opts...).Reduce(data, rows, cols, coefficientColumns)
}
