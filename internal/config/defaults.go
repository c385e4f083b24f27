package config

// GetDefaultConfig returns the built-in configuration: the session registry
// every collection starts from and a compatibility table covering the
// currently supported runtime versions. Projects override both via their
// .qactl/config.yaml.
func GetDefaultConfig() Config {
	return Config{
		Compat: []CompatEntryDefinition{
			{Runtime: "3.9", Companions: []string{"2.14", "2.15"}},
			{Runtime: "3.10", Companions: []string{"2.15", "2.16"}},
			{Runtime: "3.11", Companions: []string{"2.16", "2.17"}},
			{Runtime: "3.12", Companions: []string{"2.17", "2.18"}},
			{Runtime: "3.13", Companions: []string{"2.18", "2.19"}},
		},
		Sessions: []SessionDefinition{
			{Name: "formatters", Group: "formatters"},
			{Name: "codeqa", Group: "codeqa"},
			{Name: "typing", Group: "typing"},
			{Name: "lint", Default: true, DependsOn: []string{"formatters", "codeqa", "typing"}},
			{Name: "docs-check", Default: true, Group: "docs"},
			{Name: "license-check", Default: true, Group: "license"},
			{Name: "extra-checks", Default: true, Group: "extra"},
			{Name: "build-import-check", Default: true, Group: "build"},
			{Name: "sanity"},
			{Name: "units"},
			{Name: "integration"},
		},
	}
}
