// SPDX-License-Identifier: MIT

package op

import "errors"

var (
	// ErrNoInverse is returned when an inverse is requested from an operator
	// that does not implement Invertible.
	ErrNoInverse = errors.New("op: operator has no inverse")

	// ErrNoDerivative is returned when a derivative is requested from an
	// operator that does not implement Differentiable.
	ErrNoDerivative = errors.New("op: operator has no derivative")

	// ErrNoOutputDerivative is returned when the derivative cannot be
	// expressed in terms of the operator output alone.
	ErrNoOutputDerivative = errors.New("op: derivative not expressible from output")

	// ErrOutOfRange is returned by ApplyTo when [start, start+length) does
	// not fit into the data slice.
	ErrOutOfRange = errors.New("op: slice range out of bounds")
)
