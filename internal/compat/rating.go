package compat

import "math"

// Rating tallies the conversions one candidate signature needs across a
// whole call. Ratings order best-first: fewer unsafe conversions beats fewer
// safe conversions, which beats fewer promotions.
type Rating struct {
	Promote       uint32
	SafeConvert   uint32
	UnsafeConvert uint32
}

// Bad marks the rating impossible. An impossible rating compares worse than
// every reachable real rating; real counters are bounded by signature length
// and never approach saturation.
func (r *Rating) Bad() {
	r.Promote = math.MaxUint32
	r.SafeConvert = math.MaxUint32
	r.UnsafeConvert = math.MaxUint32
}

// Impossible reports whether Bad was called.
func (r Rating) Impossible() bool {
	return r.UnsafeConvert == math.MaxUint32
}

// Less orders ratings lexicographically on (UnsafeConvert, SafeConvert,
// Promote), ascending. Two impossible ratings compare equal.
func (r Rating) Less(other Rating) bool {
	if r.UnsafeConvert != other.UnsafeConvert {
		return r.UnsafeConvert < other.UnsafeConvert
	}
	if r.SafeConvert != other.SafeConvert {
		return r.SafeConvert < other.SafeConvert
	}
	return r.Promote < other.Promote
}
