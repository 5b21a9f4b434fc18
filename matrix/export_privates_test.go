// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes the resolved option values to matrix_test without
// widening the production API.

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot resolves opts over the defaults.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}

// PolicyOf reports the numeric policy captured by d.
func PolicyOf(d *Dense) bool { return d.validateNaNInf }
