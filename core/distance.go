// SPDX-License-Identifier: MIT
// File: distance.go
// Role: Tagged shortest-path distance and the per-run distance vector.
// Policy:
//   - Unreached is a tag, never a large sentinel number.
//   - Arithmetic on an unreached value stays unreached.
//   - int64 overflow is reported, never wrapped.

package core

import (
	"math"
	"strconv"
	"strings"
)

// unreachedText is how an unreached distance is printed.
const unreachedText = "inf"

// Distance is a shortest-path length: either a finite int64 or Unreached.
// The zero value is Unreached.
type Distance struct {
	value  int64
	finite bool
}

// Unreached returns the distance of a vertex with no path from the source.
func Unreached() Distance { return Distance{} }

// Finite returns a reached distance with value v.
func Finite(v int64) Distance { return Distance{value: v, finite: true} }

// IsFinite reports whether the vertex was reached.
func (d Distance) IsFinite() bool { return d.finite }

// Value returns the finite value and true, or 0 and false when unreached.
func (d Distance) Value() (int64, bool) { return d.value, d.finite }

// Add returns d + w.
//
// An unreached d yields Unreached with ok == true: there is nothing to add to.
// ok is false only when a finite sum overflows int64.
func (d Distance) Add(w int64) (Distance, bool) {
	if !d.finite {
		return d, true
	}
	sum, ok := AddInt64(d.value, w)
	if !ok {
		return Distance{}, false
	}

	return Finite(sum), true
}

// Less reports whether d is strictly shorter than o.
// Every finite distance is shorter than Unreached; two unreached distances
// are equal.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.finite:
		return false
	case !o.finite:
		return true
	default:
		return d.value < o.value
	}
}

// String renders the value in decimal, or "inf" when unreached.
func (d Distance) String() string {
	if !d.finite {
		return unreachedText
	}

	return strconv.FormatInt(d.value, 10)
}

// AddInt64 returns a+b and whether the sum fits in int64.
func AddInt64(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}

	return a + b, true
}

// Distances is the distance vector of one algorithm run, indexed by vertex.
// Its length is fixed at V for the whole run.
type Distances []Distance

// NewDistances returns a vector of n entries, all Unreached except source,
// which is 0. A source outside [0, n) leaves every entry unreached.
func NewDistances(n, source int) Distances {
	d := make(Distances, n)
	if source >= 0 && source < n {
		d[source] = Finite(0)
	}

	return d
}

// At returns the distance of v, or Unreached when v is out of range.
func (d Distances) At(v int) Distance {
	if v < 0 || v >= len(d) {
		return Unreached()
	}

	return d[v]
}

// Reached counts the vertices with a finite distance.
func (d Distances) Reached() int {
	n := 0
	for _, x := range d {
		if x.finite {
			n++
		}
	}

	return n
}

// String renders the vector as "[0 -1 inf]".
func (d Distances) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range d {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(x.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
