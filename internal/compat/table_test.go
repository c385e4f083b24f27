package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qactl/internal/version"
)

func mustTable(t *testing.T, entries []Entry) *Table {
	t.Helper()
	table, err := New(entries)
	require.NoError(t, err)
	return table
}

func TestNewValidTable(t *testing.T) {
	table := mustTable(t, []Entry{
		{
			Runtime:    version.MustParse("3.9"),
			Companions: []version.Version{version.MustParse("2.14"), version.MustParse("2.15")},
		},
		{
			Runtime:    version.MustParse("3.10"),
			Companions: []version.Version{version.MustParse("2.15"), version.MustParse("2.16")},
		},
	})

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"3.9", "3.10"}, version.Strings(table.Runtimes()), "declaration order is kept")
}

func TestNewRejectsDuplicateRuntime(t *testing.T) {
	_, err := New([]Entry{
		{Runtime: version.MustParse("3.9"), Companions: []version.Version{version.MustParse("2.14")}},
		{Runtime: version.MustParse("3.9"), Companions: []version.Version{version.MustParse("2.15")}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate runtime version")
}

func TestNewRejectsEmptyCompanions(t *testing.T) {
	_, err := New([]Entry{
		{Runtime: version.MustParse("3.9")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no companion versions")
}

func TestNewAllowsControllerOnlyWithoutCompanions(t *testing.T) {
	table := mustTable(t, []Entry{
		{Runtime: version.MustParse("3.13"), ControllerOnly: true},
	})

	entry, ok := table.Lookup(version.MustParse("3.13"))
	require.True(t, ok)
	assert.True(t, entry.ControllerOnly)
	assert.Empty(t, entry.Companions)
}

func TestLookup(t *testing.T) {
	table := mustTable(t, []Entry{
		{Runtime: version.MustParse("3.9"), Companions: []version.Version{version.MustParse("2.14")}},
	})

	_, ok := table.Lookup(version.MustParse("3.9"))
	assert.True(t, ok)

	_, ok = table.Lookup(version.MustParse("3.9.0"))
	assert.True(t, ok, "a different spelling of a declared runtime must resolve")

	_, ok = table.Lookup(version.MustParse("2.7"))
	assert.False(t, ok)
}

func TestSupports(t *testing.T) {
	table := mustTable(t, []Entry{
		{Runtime: version.MustParse("3.9"), Companions: []version.Version{version.MustParse("2.14"), version.MustParse("2.15")}},
	})

	assert.True(t, table.Supports(version.MustParse("3.9"), version.MustParse("2.14")))
	assert.False(t, table.Supports(version.MustParse("3.9"), version.MustParse("2.16")))
	assert.False(t, table.Supports(version.MustParse("3.10"), version.MustParse("2.14")))
}

func TestUnknownVersionError(t *testing.T) {
	err := &UnknownVersionError{Version: version.MustParse("2.7")}
	assert.Contains(t, err.Error(), `"2.7"`)
}
