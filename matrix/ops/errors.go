// SPDX-License-Identifier: MIT

package ops

import "errors"

// ErrSingular is returned by Solve and Inverse when the coefficient matrix
// has rank below its order.
var ErrSingular = errors.New("ops: matrix is singular")
