// Package compat holds the declared compatibility table between runtime
// versions and the companion versions each of them supports. The table is
// built once per invocation from configuration and is immutable afterwards.
package compat

import (
	"fmt"

	"qactl/internal/version"
)

// Entry declares the companion versions a single runtime version supports.
// A controller-only runtime has no companion axis; its matrix entries carry
// no companion version.
type Entry struct {
	Runtime        version.Version
	Companions     []version.Version
	ControllerOnly bool
}

// Table is the full declared compatibility table. Runtimes keep their
// declaration order; lookups are by runtime version.
type Table struct {
	entries []Entry
	byKey   map[string]int
}

// UnknownVersionError is returned when a request names a runtime version the
// table does not declare.
type UnknownVersionError struct {
	Version version.Version
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("unknown runtime version %q", e.Version)
}

// New validates the entries and builds a table. Each runtime may appear only
// once, and every entry needs at least one companion version unless it is
// controller-only.
func New(entries []Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		byKey:   make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		if entry.Runtime.IsZero() {
			return nil, fmt.Errorf("compatibility entry without runtime version")
		}
		key := entry.Runtime.String()
		if _, exists := t.byKey[key]; exists {
			return nil, fmt.Errorf("duplicate runtime version %q in compatibility table", key)
		}
		if len(entry.Companions) == 0 && !entry.ControllerOnly {
			return nil, fmt.Errorf("runtime version %q declares no companion versions", key)
		}
		t.byKey[key] = len(t.entries)
		t.entries = append(t.entries, entry)
	}
	return t, nil
}

// Lookup returns the entry for the given runtime version.
func (t *Table) Lookup(runtime version.Version) (Entry, bool) {
	idx, ok := t.byKey[runtime.String()]
	if !ok {
		// The same version may be spelled differently ("3.9" vs "3.9.0").
		for i, entry := range t.entries {
			if entry.Runtime.Equal(runtime) {
				return t.entries[i], true
			}
		}
		return Entry{}, false
	}
	return t.entries[idx], true
}

// Runtimes returns every declared runtime version in declaration order.
func (t *Table) Runtimes() []version.Version {
	runtimes := make([]version.Version, 0, len(t.entries))
	for _, entry := range t.entries {
		runtimes = append(runtimes, entry.Runtime)
	}
	return runtimes
}

// Supports reports whether the table declares the companion version as valid
// for the given runtime version.
func (t *Table) Supports(runtime, companion version.Version) bool {
	entry, ok := t.Lookup(runtime)
	if !ok {
		return false
	}
	return version.Contains(entry.Companions, companion)
}

// Len returns the number of declared runtime versions.
func (t *Table) Len() int {
	return len(t.entries)
}
