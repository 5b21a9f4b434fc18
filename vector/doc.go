// Package vector defines the fixed-length vector contract shared by every
// storage strategy in linalg, together with its default algorithms.
//
// What & Why:
//
//	A Vector is an ordered sequence of float64 with a length fixed at
//	construction. Element access is either checked (At/Set return
//	ErrOutOfRange) or unchecked (UnsafeAt/UnsafeSet, caller responsibility).
//	Both agree on every in-bounds index.
//
// Storage strategies:
//
//	Dense   — owned (or wrapped) contiguous []float64
//	Strided — live view over every stride-th element of a buffer (matrix columns)
//	Joined  — live concatenation of two vectors (Join)
//	Zero    — immutable all-zero vector
//
// Default algorithms (Sum, Dot, Fill, ApplyOp, CopyTo, ...) are package
// functions written against the Vector interface. A concrete type overrides
// one by implementing the matching capability interface (Summer, Filler, ...).
//
// Complexity:
//
//	Len/At/Set/UnsafeAt/UnsafeSet are O(1) for every type in this package
//	(Joined adds one branch per nesting level). Reductions are O(n).
package vector
