package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lintRegistry mirrors the default setup: lint is the only default session
// and pulls in the three check sessions.
func lintRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry([]Session{
		{Name: "formatters", Group: GroupFormatters},
		{Name: "codeqa", Group: GroupCodeQA},
		{Name: "typing", Group: GroupTyping},
		{Name: "lint", Default: true, DependsOn: []string{"formatters", "codeqa", "typing"}, Group: GroupCustom},
		{Name: "docs-check", Group: GroupDocs},
	})
	require.NoError(t, err)
	return r
}

func names(sessions []Session) []string {
	out := make([]string, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.Name)
	}
	return out
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry([]Session{
		{Name: "lint"},
		{Name: "lint"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate session "lint"`)
}

func TestNewRegistryRejectsUndeclaredDependency(t *testing.T) {
	_, err := NewRegistry([]Session{
		{Name: "lint", DependsOn: []string{"formatters"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `undeclared session "formatters"`)
}

func TestResolveDefaults(t *testing.T) {
	resolved, err := lintRegistry(t).Resolve(nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"formatters", "codeqa", "typing", "lint"}, names(resolved),
		"dependencies come before the session, in declared dependency order")
}

func TestResolveExplicitRequest(t *testing.T) {
	resolved, err := lintRegistry(t).Resolve([]string{"docs-check", "lint"})
	require.NoError(t, err)

	assert.Equal(t, []string{"docs-check", "formatters", "codeqa", "typing", "lint"}, names(resolved),
		"first-requested order wins between independent sessions")
}

func TestResolveDeduplicates(t *testing.T) {
	resolved, err := lintRegistry(t).Resolve([]string{"lint", "typing", "lint"})
	require.NoError(t, err)
	assert.Equal(t, []string{"formatters", "codeqa", "typing", "lint"}, names(resolved))
}

func TestResolveIsIdempotent(t *testing.T) {
	registry := lintRegistry(t)
	first, err := registry.Resolve([]string{"lint"})
	require.NoError(t, err)

	second, err := registry.Resolve(names(first))
	require.NoError(t, err)
	assert.Equal(t, names(first), names(second),
		"feeding the resolver its own output back must not change the list")
}

func TestResolveUnknownSession(t *testing.T) {
	_, err := lintRegistry(t).Resolve([]string{"lint", "nonsense"})
	require.Error(t, err)

	var unknown *UnknownSessionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nonsense", unknown.Name)
}

func TestResolveDetectsCycle(t *testing.T) {
	registry, err := NewRegistry([]Session{
		{Name: "a", DependsOn: []string{"b"}},
		{Name: "b", DependsOn: []string{"a"}},
	})
	require.NoError(t, err)

	for _, requested := range []string{"a", "b"} {
		_, err := registry.Resolve([]string{requested})
		require.Error(t, err, "requesting %q must fail", requested)

		var cycle *CycleError
		require.ErrorAs(t, err, &cycle)
		assert.Len(t, cycle.Cycle, 3, "cycle is reported closed, e.g. a -> b -> a")
		assert.Equal(t, cycle.Cycle[0], cycle.Cycle[len(cycle.Cycle)-1])
	}
}

func TestResolveSelfDependency(t *testing.T) {
	registry, err := NewRegistry([]Session{
		{Name: "a", DependsOn: []string{"a"}},
	})
	require.NoError(t, err)

	_, err = registry.Resolve([]string{"a"})
	var cycle *CycleError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, []string{"a", "a"}, cycle.Cycle)
}

func TestResolveDiamondDependency(t *testing.T) {
	registry, err := NewRegistry([]Session{
		{Name: "base"},
		{Name: "left", DependsOn: []string{"base"}},
		{Name: "right", DependsOn: []string{"base"}},
		{Name: "top", DependsOn: []string{"left", "right"}},
	})
	require.NoError(t, err)

	resolved, err := registry.Resolve([]string{"top"})
	require.NoError(t, err)
	assert.Equal(t, []string{"base", "left", "right", "top"}, names(resolved))
}

func TestParseGroupKind(t *testing.T) {
	tests := []struct {
		raw     string
		want    GroupKind
		wantErr bool
	}{
		{"formatters", GroupFormatters, false},
		{"codeqa", GroupCodeQA, false},
		{"build", GroupBuild, false},
		{"", GroupCustom, false},
		{"bogus", "", true},
	}
	for _, tt := range tests {
		got, err := ParseGroupKind(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, "ParseGroupKind(%q)", tt.raw)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestDefaults(t *testing.T) {
	defaults := lintRegistry(t).Defaults()
	assert.Equal(t, []string{"lint"}, names(defaults))
}
