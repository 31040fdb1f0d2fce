package token

import (
	"fmt"
	"sync"
)

// Type is a registered token kind. The zero Type is Invalid.
//
//nolint:revive // token.Type reads naturally at call sites
type Type int32

// Invalid is the zero Type, never returned by Register.
const Invalid Type = 0

type entry struct {
	name         string
	abbreviation string
}

// registry holds every registered Type.
// Grammars register their kinds at init time; lookups happen while lexing.
var registry = struct {
	sync.RWMutex
	entries        []entry // index = Type
	byName         map[string]Type
	byAbbreviation map[string]Type
}{
	entries:        []entry{{name: "INVALID", abbreviation: "?"}},
	byName:         make(map[string]Type),
	byAbbreviation: make(map[string]Type),
}

// Register registers a token kind with the given name and abbreviation.
// Registering an existing name returns the existing Type unchanged.
// It panics if the abbreviation is already used by a different name.
func Register(name, abbreviation string) Type {
	registry.Lock()
	defer registry.Unlock()

	if t, ok := registry.byName[name]; ok {
		return t
	}
	if other, ok := registry.byAbbreviation[abbreviation]; ok {
		panic(fmt.Sprintf("token: abbreviation %q of %q already used by %q",
			abbreviation, name, registry.entries[other].name))
	}

	t := Type(len(registry.entries))
	registry.entries = append(registry.entries, entry{name: name, abbreviation: abbreviation})
	registry.byName[name] = t
	registry.byAbbreviation[abbreviation] = t
	return t
}

// LookupName returns the Type registered under name.
// Returns Invalid and false if the name is not registered.
func LookupName(name string) (Type, bool) {
	registry.RLock()
	defer registry.RUnlock()
	t, ok := registry.byName[name]
	return t, ok
}

// LookupAbbreviation returns the Type registered under abbreviation.
func LookupAbbreviation(abbreviation string) (Type, bool) {
	registry.RLock()
	defer registry.RUnlock()
	t, ok := registry.byAbbreviation[abbreviation]
	return t, ok
}

// Lookup resolves either a name or an abbreviation.
func Lookup(s string) (Type, bool) {
	if t, ok := LookupName(s); ok {
		return t, true
	}
	return LookupAbbreviation(s)
}

// Registered returns a copy of all registered types mapped to their names.
func Registered() map[Type]string {
	registry.RLock()
	defer registry.RUnlock()
	result := make(map[Type]string, len(registry.entries)-1)
	for i, e := range registry.entries[1:] {
		result[Type(i+1)] = e.name
	}
	return result
}

func (t Type) entry() (entry, bool) {
	registry.RLock()
	defer registry.RUnlock()
	if t <= Invalid || int(t) >= len(registry.entries) {
		return entry{}, false
	}
	return registry.entries[t], true
}

// Name returns the registered name of the type.
func (t Type) Name() string {
	if e, ok := t.entry(); ok {
		return e.name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// Abbreviation returns the registered abbreviation of the type.
func (t Type) Abbreviation() string {
	if e, ok := t.entry(); ok {
		return e.abbreviation
	}
	return "?"
}

// IsValid returns true if the type was returned by Register.
func (t Type) IsValid() bool {
	_, ok := t.entry()
	return ok
}

// String returns a human-readable representation of the token type.
func (t Type) String() string {
	return t.Name()
}
