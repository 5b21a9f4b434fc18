// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/linalg/op"

// Strided is a live view over data[offset], data[offset+stride], ...
// It is how a row-major matrix exposes a column without copying.
type Strided struct {
	data   []float64
	offset int
	stride int
	n      int
}

// NewStrided returns a view of n elements starting at data[offset] with the
// given stride.
//
// Errors:
//   - ErrInvalidLength when n < 0.
//   - ErrOutOfRange when stride < 1 or the last element falls outside data.
func NewStrided(data []float64, offset, stride, n int) (*Strided, error) {
	if n < 0 {
		return nil, ErrInvalidLength
	}
	if n > 0 && (offset < 0 || stride < 1 || offset+(n-1)*stride >= len(data)) {
		return nil, IndexError("NewStrided", offset+(n-1)*stride, len(data))
	}

	return &Strided{data: data, offset: offset, stride: stride, n: n}, nil
}

func (s *Strided) Len() int { return s.n }

func (s *Strided) At(i int) (float64, error) {
	if i < 0 || i >= s.n {
		return 0, IndexError("Strided.At", i, s.n)
	}

	return s.data[s.offset+i*s.stride], nil
}

func (s *Strided) Set(i int, x float64) error {
	if i < 0 || i >= s.n {
		return IndexError("Strided.Set", i, s.n)
	}
	s.data[s.offset+i*s.stride] = x

	return nil
}

func (s *Strided) UnsafeAt(i int) float64 { return s.data[s.offset+i*s.stride] }

func (s *Strided) UnsafeSet(i int, x float64) { s.data[s.offset+i*s.stride] = x }

// IsView is always true: the storage belongs to another structure.
func (s *Strided) IsView() bool { return true }

func (s *Strided) IsFullyMutable() bool { return true }

// Clone materializes the view into an owned Dense.
func (s *Strided) Clone() Vector {
	out := Zeros(s.n)
	s.CopyTo(out.data)

	return out
}

func (s *Strided) CopyTo(dst []float64) {
	for i, k := 0, s.offset; i < s.n; i, k = i+1, k+s.stride {
		dst[i] = s.data[k]
	}
}

func (s *Strided) ApplyOp(o op.Operator) error {
	for i, k := 0, s.offset; i < s.n; i, k = i+1, k+s.stride {
		s.data[k] = o.Apply(s.data[k])
	}

	return nil
}

func (s *Strided) String() string { return format(s) }
