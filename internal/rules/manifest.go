package rules

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"overcast/internal/compat"
	"overcast/internal/types"
)

// Manifest declares compatibility facts by type name:
//
//	[[promote]]
//	from = "int32"
//	to = "int64"
//
//	[[safe]]
//	from = "int32"
//	to = "float64"
//
//	[[unsafe]]
//	from = "int64"
//	to = "float64"
//
// Every fact is directional; declare both directions explicitly when a
// relation holds both ways.
type Manifest struct {
	Promote []Fact `toml:"promote"`
	Safe    []Fact `toml:"safe"`
	Unsafe  []Fact `toml:"unsafe"`
}

// Fact is one directional (from, to) relation.
type Fact struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Load parses a rules manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules manifest: %w", err)
	}
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return &m, nil
}

// Len returns the number of declared facts.
func (m *Manifest) Len() int {
	return len(m.Promote) + len(m.Safe) + len(m.Unsafe)
}

// Apply interns every named type in reg and registers every fact in mgr.
// Facts are applied in declaration order, so a later fact for the same pair
// overwrites an earlier one.
func (m *Manifest) Apply(reg *types.Registry, mgr *compat.Manager) error {
	apply := func(facts []Fact, code compat.Code) error {
		for _, f := range facts {
			if f.From == "" || f.To == "" {
				return fmt.Errorf("rule %q -> %q: type names must be non-empty", f.From, f.To)
			}
			mgr.AddCompatibility(reg.Intern(f.From), reg.Intern(f.To), code)
		}
		return nil
	}
	if err := apply(m.Promote, compat.Promote); err != nil {
		return err
	}
	if err := apply(m.Safe, compat.SafeConvert); err != nil {
		return err
	}
	return apply(m.Unsafe, compat.UnsafeConvert)
}
