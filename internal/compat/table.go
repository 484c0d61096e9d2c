package compat

import "overcast/internal/types"

// numBuckets is the fixed size of the bucket array. Chains grow per bucket
// without table-wide rehashing: the key space is bounded by the number of
// known types squared, so chains stay short in practice.
const numBuckets = 512

// pairKey is an ordered (from, to) pair of type handles. The table is
// directional: (a, b) and (b, a) are independent keys.
type pairKey struct {
	from types.TypeID
	to   types.TypeID
}

type record struct {
	key pairKey
	val Code
}

// Table maps ordered pairs of TypeIDs to compatibility codes. Absence of an
// entry means NoMatch; inserting an existing pair overwrites its code. The
// zero value is ready to use.
//
// Table does no internal locking. An insert racing a lookup is a data race;
// callers that share a table across goroutines must serialize registration.
// Lookups alone are safe concurrently once registration is done.
type Table struct {
	buckets [numBuckets][]record
}

// hash combines both halves of the key. Overload resolution holds the
// call-argument type fixed while varying the candidate type, so one half is
// rotated before mixing to keep those probes from clustering.
func (t *Table) hash(key pairKey) uint32 {
	from := uint32(key.from)
	to := uint32(key.to)
	h := (from << 7) | (from >> 25)
	return (h ^ to) & (numBuckets - 1)
}

// Insert records the fact, overwriting any previous code for the pair.
func (t *Table) Insert(from, to types.TypeID, code Code) {
	key := pairKey{from: from, to: to}
	bucket := &t.buckets[t.hash(key)]
	for i := range *bucket {
		if (*bucket)[i].key == key {
			(*bucket)[i].val = code
			return
		}
	}
	*bucket = append(*bucket, record{key: key, val: code})
}

// Find returns the recorded code for the pair, or NoMatch if absent.
func (t *Table) Find(from, to types.TypeID) Code {
	key := pairKey{from: from, to: to}
	for _, rec := range t.buckets[t.hash(key)] {
		if rec.key == key {
			return rec.val
		}
	}
	return NoMatch
}

// Range calls fn for every recorded fact. Iteration order is the internal
// bucket order, not insertion order.
func (t *Table) Range(fn func(from, to types.TypeID, code Code)) {
	for i := range t.buckets {
		for _, rec := range t.buckets[i] {
			fn(rec.key.from, rec.key.to, rec.val)
		}
	}
}

// Len returns the number of recorded facts.
func (t *Table) Len() int {
	n := 0
	for i := range t.buckets {
		n += len(t.buckets[i])
	}
	return n
}
