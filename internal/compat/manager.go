package compat

import "overcast/internal/types"

// Manager is the registration and query surface of the compatibility core.
// Facts are directional: registering (a, b) says nothing about (b, a).
// The zero value is ready to use; the locking caveats of Table apply.
type Manager struct {
	table Table
}

// NewManager constructs an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// AddCompatibility records how from converts to to, overwriting any earlier
// fact for the pair. Callers are responsible for not downgrading a relation
// accidentally.
func (m *Manager) AddCompatibility(from, to types.TypeID, code Code) {
	m.table.Insert(from, to, code)
}

// AddPromotion records a widening conversion with no precision loss.
func (m *Manager) AddPromotion(from, to types.TypeID) {
	m.AddCompatibility(from, to, Promote)
}

// AddSafeConversion records a precision-preserving conversion.
func (m *Manager) AddSafeConversion(from, to types.TypeID) {
	m.AddCompatibility(from, to, SafeConvert)
}

// AddUnsafeConversion records a conversion that may lose precision.
func (m *Manager) AddUnsafeConversion(from, to types.TypeID) {
	m.AddCompatibility(from, to, UnsafeConvert)
}

// IsCompatible classifies the conversion between two types. Identical
// handles are always Exact, regardless of any registered fact; otherwise the
// recorded code is returned, or NoMatch when the pair is unknown.
func (m *Manager) IsCompatible(from, to types.TypeID) Code {
	if from == to {
		return Exact
	}
	return m.table.Find(from, to)
}

// CanPromote reports whether from promotes to to. The predicate is exact:
// an identical type or a safe conversion does not count as a promotion.
func (m *Manager) CanPromote(from, to types.TypeID) bool {
	return m.IsCompatible(from, to) == Promote
}

// CanSafeConvert reports whether from safely converts to to.
func (m *Manager) CanSafeConvert(from, to types.TypeID) bool {
	return m.IsCompatible(from, to) == SafeConvert
}

// CanUnsafeConvert reports whether from converts to to with precision loss.
func (m *Manager) CanUnsafeConvert(from, to types.TypeID) bool {
	return m.IsCompatible(from, to) == UnsafeConvert
}

// Table exposes the underlying fact store for iteration.
func (m *Manager) Table() *Table {
	return &m.table
}
