package types

// TypeID is an opaque integer handle naming a type known to the checker.
// Equality and ordering are defined purely on the integer, so handles can be
// used as map keys and array indices. The compatibility core never allocates
// or frees handles; they are issued by the surrounding type universe.
type TypeID int32

// NoTypeID marks an invalid/unset handle.
const NoTypeID TypeID = -1

// Valid reports whether the handle names a real type. Validity is decided
// from the handle's own bits; no table is consulted.
func (id TypeID) Valid() bool {
	return id >= 0
}

// Less orders handles by their integer value.
func (id TypeID) Less(other TypeID) bool {
	return id < other
}
