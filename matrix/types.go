// SPDX-License-Identifier: MIT

// Package matrix: domain value types stored in dense matrices.
// Distance and Hop replace the integer sentinels (max-int, -1) with explicit
// tags so an unreachable entry can never be mistaken for a finite value.
package matrix

import "strconv"

// Rendering tokens for sentinel values.
const (
	InfToken  = "INF" // printed for Unreachable
	NoneToken = "N/A" // printed for NoHop
)

// Distance is the length of a path, or Unreachable.
// The zero value is Unreachable.
type Distance struct {
	w      int64 // weight; meaningful only when finite
	finite bool  // false means "no path"
}

// Unreachable is the "infinity" distance.
var Unreachable = Distance{}

// Finite wraps a path weight.
func Finite(w int64) Distance {
	return Distance{w: w, finite: true}
}

// Value returns the weight and whether the distance is finite.
func (d Distance) Value() (int64, bool) {
	return d.w, d.finite
}

// IsFinite reports whether d denotes an existing path.
func (d Distance) IsFinite() bool {
	return d.finite
}

// Less reports whether d is strictly shorter than o.
// Any finite distance is less than Unreachable; Unreachable is never less.
func (d Distance) Less(o Distance) bool {
	if !d.finite {
		return false
	}
	if !o.finite {
		return true
	}

	return d.w < o.w
}

// Add returns d+o when both are finite and the int64 sum does not wrap.
// Otherwise it returns (Unreachable, false), and callers treat the candidate
// as "not an improvement".
// Complexity: O(1).
func (d Distance) Add(o Distance) (Distance, bool) {
	if !d.finite || !o.finite {
		return Unreachable, false
	}
	s := d.w + o.w
	// Signed overflow flips the result to the wrong side of d.w.
	if (o.w > 0 && s < d.w) || (o.w < 0 && s > d.w) {
		return Unreachable, false
	}

	return Finite(s), true
}

// String implements fmt.Stringer: the decimal weight, or InfToken.
func (d Distance) String() string {
	if !d.finite {
		return InfToken
	}

	return strconv.FormatInt(d.w, 10)
}

// Hop is the vertex that follows the current one on a shortest path, or NoHop.
// The zero value is NoHop.
type Hop struct {
	v  int
	ok bool
}

// NoHop is the "none" hop: i == j, or no path exists.
var NoHop = Hop{}

// HopTo wraps a vertex index.
func HopTo(v int) Hop {
	return Hop{v: v, ok: true}
}

// Vertex returns the vertex index and whether the hop is set.
func (h Hop) Vertex() (int, bool) {
	return h.v, h.ok
}

// IsNone reports whether h is NoHop.
func (h Hop) IsNone() bool {
	return !h.ok
}

// String implements fmt.Stringer: the decimal vertex, or NoneToken.
func (h Hop) String() string {
	if !h.ok {
		return NoneToken
	}

	return strconv.Itoa(h.v)
}
