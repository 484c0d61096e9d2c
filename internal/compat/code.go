package compat

import "fmt"

// Code classifies how one type converts to another, from "no relation" to
// "exact match". The ordinal values are part of the contract: they are
// serialized and compared elsewhere and must never be renumbered.
type Code uint8

const (
	// NoMatch means no relation between the two types.
	NoMatch Code = 0
	// Exact means the types are identical.
	Exact Code = 1
	// Subtype is reserved; no registration helper produces it.
	Subtype Code = 2
	// Promote is a widening conversion with no precision loss.
	Promote Code = 3
	// SafeConvert crosses type categories without losing precision,
	// e.g. int32 to float64.
	SafeConvert Code = 4
	// UnsafeConvert may lose precision, e.g. int64 to float64
	// (53 bits of mantissa).
	UnsafeConvert Code = 5
)

func (c Code) String() string {
	switch c {
	case NoMatch:
		return "no match"
	case Exact:
		return "exact"
	case Subtype:
		return "subtype"
	case Promote:
		return "promote"
	case SafeConvert:
		return "safe convert"
	case UnsafeConvert:
		return "unsafe convert"
	default:
		return fmt.Sprintf("Code(%d)", uint8(c))
	}
}
