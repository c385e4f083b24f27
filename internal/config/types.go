package config

import (
	"fmt"

	"qactl/internal/actiongroup"
	"qactl/internal/compat"
	"qactl/internal/matrix"
	"qactl/internal/session"
	"qactl/internal/version"
)

// Config is the top-level configuration structure for qactl.
type Config struct {
	Compat       []CompatEntryDefinition   `yaml:"compat,omitempty"`
	Sessions     []SessionDefinition       `yaml:"sessions,omitempty"`
	ActionGroups []ActionGroupDefinition   `yaml:"actionGroups,omitempty"`
	Inventory    []InventoryItemDefinition `yaml:"inventory,omitempty"`
	Matrix       MatrixSettings            `yaml:"matrix,omitempty"`
}

// CompatEntryDefinition declares which companion versions one runtime
// version supports.
type CompatEntryDefinition struct {
	Runtime        string   `yaml:"runtime"`
	Companions     []string `yaml:"companions,omitempty"`
	ControllerOnly bool     `yaml:"controllerOnly,omitempty"`
}

// SessionDefinition declares one named QA session.
type SessionDefinition struct {
	Name      string   `yaml:"name"`
	DependsOn []string `yaml:"dependsOn,omitempty"`
	Default   bool     `yaml:"enabledByDefault"`
	Group     string   `yaml:"group,omitempty"`
}

// ActionGroupDefinition declares one action group over the plugin inventory.
type ActionGroupDefinition struct {
	Name              string   `yaml:"name"`
	Pattern           string   `yaml:"pattern"`
	RequiredAttribute string   `yaml:"requiredAttribute"`
	Exclusions        []string `yaml:"exclusions,omitempty"`
}

// InventoryItemDefinition declares one plugin-style item and the attributes
// it carries.
type InventoryItemDefinition struct {
	Name       string   `yaml:"name"`
	Attributes []string `yaml:"attributes,omitempty"`
}

// MatrixSettings selects the version combinations per test kind. The
// special value "all" on either axis selects everything the compatibility
// table declares; an absent axis defaults to "all".
type MatrixSettings struct {
	Sanity      KindSettings `yaml:"sanity,omitempty"`
	Units       KindSettings `yaml:"units,omitempty"`
	Integration KindSettings `yaml:"integration,omitempty"`
}

// KindSettings is the requested version selection for a single test kind.
type KindSettings struct {
	Runtimes   []string `yaml:"runtimes,omitempty"`
	Companions []string `yaml:"companions,omitempty"`
}

// forKind returns the settings for the given test kind.
func (m MatrixSettings) forKind(kind matrix.Kind) KindSettings {
	switch kind {
	case matrix.KindSanity:
		return m.Sanity
	case matrix.KindUnits:
		return m.Units
	case matrix.KindIntegration:
		return m.Integration
	}
	return KindSettings{}
}

// CompatTable converts the declared compatibility entries into a validated
// table.
func (c Config) CompatTable() (*compat.Table, error) {
	entries := make([]compat.Entry, 0, len(c.Compat))
	for _, def := range c.Compat {
		runtime, err := version.Parse(def.Runtime)
		if err != nil {
			return nil, fmt.Errorf("compat entry: %w", err)
		}
		companions, err := version.ParseAll(def.Companions)
		if err != nil {
			return nil, fmt.Errorf("compat entry for runtime %q: %w", def.Runtime, err)
		}
		entries = append(entries, compat.Entry{
			Runtime:        runtime,
			Companions:     companions,
			ControllerOnly: def.ControllerOnly,
		})
	}
	return compat.New(entries)
}

// SessionRegistry converts the declared sessions into a validated registry.
func (c Config) SessionRegistry() (*session.Registry, error) {
	sessions := make([]session.Session, 0, len(c.Sessions))
	for _, def := range c.Sessions {
		group, err := session.ParseGroupKind(def.Group)
		if err != nil {
			return nil, fmt.Errorf("session %q: %w", def.Name, err)
		}
		sessions = append(sessions, session.Session{
			Name:      def.Name,
			DependsOn: def.DependsOn,
			Default:   def.Default,
			Group:     group,
		})
	}
	return session.NewRegistry(sessions)
}

// Groups converts the declared action groups, compiling their patterns.
func (c Config) Groups() ([]actiongroup.Group, error) {
	groups := make([]actiongroup.Group, 0, len(c.ActionGroups))
	for _, def := range c.ActionGroups {
		group, err := actiongroup.NewGroup(def.Name, def.Pattern, def.RequiredAttribute, def.Exclusions)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// InventoryItems converts the declared inventory.
func (c Config) InventoryItems() []actiongroup.InventoryItem {
	items := make([]actiongroup.InventoryItem, 0, len(c.Inventory))
	for _, def := range c.Inventory {
		items = append(items, actiongroup.InventoryItem{
			Name:       def.Name,
			Attributes: def.Attributes,
		})
	}
	return items
}

// MatrixRequest builds the matrix request for one test kind from the
// configured settings plus the locally available companion versions.
func (c Config) MatrixRequest(kind matrix.Kind, localCompanions []version.Version) (matrix.Request, error) {
	settings := c.Matrix.forKind(kind)
	req := matrix.Request{Kind: kind, LocalCompanions: localCompanions}

	all, versions, err := parseAxis(settings.Runtimes)
	if err != nil {
		return matrix.Request{}, fmt.Errorf("matrix settings for %s runtimes: %w", kind, err)
	}
	req.AllRuntimes = all
	req.Runtimes = versions

	all, versions, err = parseAxis(settings.Companions)
	if err != nil {
		return matrix.Request{}, fmt.Errorf("matrix settings for %s companions: %w", kind, err)
	}
	req.AllCompanions = all
	req.Companions = versions

	return req, nil
}

// parseAxis interprets one requested version axis: absent or "all" selects
// the whole axis, anything else is an explicit version list.
func parseAxis(raws []string) (bool, []version.Version, error) {
	if len(raws) == 0 {
		return true, nil, nil
	}
	if len(raws) == 1 && raws[0] == "all" {
		return true, nil, nil
	}
	versions, err := version.ParseAll(raws)
	if err != nil {
		return false, nil, err
	}
	return false, versions, nil
}
