// SPDX-License-Identifier: MIT

// Package matrix - convenience constructors.
package matrix

import "fmt"

// NewIdentity returns an n×n identity Dense.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewIdentity: %w", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// ZerosLike returns a mutable zero Dense with the shape of m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ZerosLike: %w", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// ToDense copies any matrix into an owned Dense.
func ToDense(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	out, err := NewDense(m.Rows(), m.Cols(), opts...)
	if err != nil {
		return nil, err
	}
	if err = CopyElements(m, out.data, 0); err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}

	return out, nil
}
