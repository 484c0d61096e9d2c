package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Registry issues stable TypeIDs for type names. It is the minimal stand-in
// for the type universe that owns identifiers; the compatibility core only
// ever sees the handles it hands out.
type Registry struct {
	names []string
	index map[string]TypeID
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]TypeID, 64)}
}

// Intern returns the TypeID for name, issuing a fresh one on first use.
func (r *Registry) Intern(name string) TypeID {
	if id, ok := r.index[name]; ok {
		return id
	}
	n, err := safecast.Conv[int32](len(r.names))
	if err != nil {
		panic(fmt.Errorf("len(names) overflow: %w", err))
	}
	id := TypeID(n)
	r.names = append(r.names, name)
	r.index[name] = id
	return id
}

// Lookup returns the TypeID for name without issuing a new one.
func (r *Registry) Lookup(name string) (TypeID, bool) {
	id, ok := r.index[name]
	return id, ok
}

// Name returns the interned name for id.
func (r *Registry) Name(id TypeID) (string, bool) {
	if !id.Valid() || int(id) >= len(r.names) {
		return "", false
	}
	return r.names[id], true
}

// Len returns the number of issued handles.
func (r *Registry) Len() int {
	return len(r.names)
}
