// Package matrix computes the concrete set of test combinations a CI
// pipeline has to run. Given the declared compatibility table and a request
// (explicit version pins, "all", or locally available versions), it produces
// an ordered, deduplicated list of matrix entries, one per test kind and
// (runtime, companion) version pair.
//
// Generation is a pure function: identical input yields byte-identical
// output, which downstream CI diffing and caching relies on.
package matrix

import (
	"qactl/internal/compat"
	"qactl/internal/version"
)

// Kind is the kind of test a matrix is generated for.
type Kind string

const (
	KindSanity      Kind = "sanity"
	KindUnits       Kind = "units"
	KindIntegration Kind = "integration"
)

// Kinds lists all test kinds in their canonical output order.
func Kinds() []Kind {
	return []Kind{KindSanity, KindUnits, KindIntegration}
}

// Request describes which version combinations are wanted for one test kind.
//
// AllRuntimes and AllCompanions select everything the table declares on the
// respective axis. LocalCompanions extends coverage with companion versions
// available in the local environment; only combinations the table declares
// as valid are added, so a local run never invents unsupported pairs.
type Request struct {
	Kind            Kind
	AllRuntimes     bool
	Runtimes        []version.Version
	AllCompanions   bool
	Companions      []version.Version
	LocalCompanions []version.Version
}

// Entry is one concrete version-combination test unit, or a skip placeholder
// when a request matches nothing. CI pipelines reject empty matrices, so a
// request that yields no combinations produces exactly one entry with Skip
// set instead of an empty list.
type Entry struct {
	Kind       Kind             `json:"test_kind"`
	Runtime    version.Version  `json:"primary_version"`
	Companion  *version.Version `json:"secondary_version"`
	Skip       bool             `json:"skip"`
	SkipReason string           `json:"skip_reason,omitempty"`
}

// key identifies an entry for deduplication.
func (e Entry) key() string {
	companion := ""
	if e.Companion != nil {
		companion = e.Companion.String()
	}
	return string(e.Kind) + "|" + e.Runtime.String() + "|" + companion
}

const noCombinationsReason = "no compatible versions for requested constraints"

// Generate computes the matrix entries for a single request.
//
// Runtime versions named explicitly but absent from the table fail with
// *compat.UnknownVersionError; they are never silently dropped. The result
// is ordered ascending on both version axes and contains each
// (kind, runtime, companion) triple exactly once.
func Generate(table *compat.Table, req Request) ([]Entry, error) {
	runtimes, err := effectiveRuntimes(table, req)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	seen := make(map[string]int)
	add := func(entry Entry) {
		k := entry.key()
		if idx, dup := seen[k]; dup {
			// Keep one entry per key, preferring the one without a
			// skip reason.
			if entries[idx].SkipReason != "" && entry.SkipReason == "" {
				entries[idx] = entry
			}
			return
		}
		seen[k] = len(entries)
		entries = append(entries, entry)
	}

	for _, runtime := range runtimes {
		entry, _ := table.Lookup(runtime)
		if entry.ControllerOnly && len(entry.Companions) == 0 {
			add(Entry{Kind: req.Kind, Runtime: runtime})
			continue
		}
		for _, companion := range effectiveCompanions(table, entry, req) {
			companion := companion
			add(Entry{Kind: req.Kind, Runtime: runtime, Companion: &companion})
		}
	}

	if len(entries) == 0 {
		entries = append(entries, Entry{
			Kind:       req.Kind,
			Skip:       true,
			SkipReason: noCombinationsReason,
		})
	}
	return entries, nil
}

// effectiveRuntimes resolves the runtime-version axis of a request, sorted
// ascending and deduplicated.
func effectiveRuntimes(table *compat.Table, req Request) ([]version.Version, error) {
	var runtimes []version.Version
	if req.AllRuntimes {
		runtimes = table.Runtimes()
	} else {
		for _, runtime := range req.Runtimes {
			if _, ok := table.Lookup(runtime); !ok {
				return nil, &compat.UnknownVersionError{Version: runtime}
			}
			if !version.Contains(runtimes, runtime) {
				runtimes = append(runtimes, runtime)
			}
		}
	}
	version.Sort(runtimes)
	return runtimes, nil
}

// effectiveCompanions resolves the companion-version axis for one runtime:
// the requested intersection with the table entry, plus any locally
// available companions the table declares as valid for this runtime.
func effectiveCompanions(table *compat.Table, entry compat.Entry, req Request) []version.Version {
	var companions []version.Version
	if req.AllCompanions {
		companions = append(companions, entry.Companions...)
	} else {
		for _, companion := range req.Companions {
			if version.Contains(entry.Companions, companion) && !version.Contains(companions, companion) {
				companions = append(companions, companion)
			}
		}
	}
	for _, local := range req.LocalCompanions {
		if table.Supports(entry.Runtime, local) && !version.Contains(companions, local) {
			companions = append(companions, local)
		}
	}
	version.Sort(companions)
	return companions
}

// Filter restricts entries to a runtime-version window. Either bound may be
// nil. Skip placeholders pass through unchanged, and the non-emptiness
// invariant is re-established when filtering removes everything.
func Filter(entries []Entry, minRuntime, maxRuntime *version.Version) []Entry {
	if minRuntime == nil && maxRuntime == nil {
		return entries
	}
	var kind Kind
	filtered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		kind = entry.Kind
		if !entry.Skip {
			if minRuntime != nil && entry.Runtime.Less(*minRuntime) {
				continue
			}
			if maxRuntime != nil && maxRuntime.Less(entry.Runtime) {
				continue
			}
		}
		filtered = append(filtered, entry)
	}
	if len(filtered) == 0 {
		filtered = append(filtered, Entry{
			Kind:       kind,
			Skip:       true,
			SkipReason: noCombinationsReason,
		})
	}
	return filtered
}
