// SPDX-License-Identifier: MIT
// Package vector_test: shared fixtures.

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/vector"
)

// hide wraps a Vector so that only the interface methods are visible.
// Package functions then fall back to their generic paths.
type hide struct{ vector.Vector }

// mustStrided builds a Strided view or fails the test.
func mustStrided(t *testing.T, data []float64, offset, stride, n int) *vector.Strided {
	t.Helper()
	s, err := vector.NewStrided(data, offset, stride, n)
	require.NoError(t, err)

	return s
}

// elems returns a fresh copy of v's elements.
func elems(v vector.Vector) []float64 { return vector.ToSlice(v) }
