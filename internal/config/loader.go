package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/qactl"
	projectConfigDir = ".qactl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the qactl configuration by layering default, user, and
// project settings.
func LoadConfig() (Config, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. Determine user-specific configuration path
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// Log this error but don't fail; user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	// 3. Determine project-specific configuration path
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		// Log this error but don't fail; project config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
//
// The compatibility table, action groups, inventory and matrix settings are
// replaced wholesale when the overlay declares them; partial merging of a
// version table would silently change which combinations CI runs. Sessions
// merge by name so a single session can be overridden, keeping base
// declaration order for deterministic resolution.
func mergeConfigs(base, overlay Config) Config {
	mergedConfig := base

	if len(overlay.Compat) > 0 {
		mergedConfig.Compat = overlay.Compat
	}
	if len(overlay.ActionGroups) > 0 {
		mergedConfig.ActionGroups = overlay.ActionGroups
	}
	if len(overlay.Inventory) > 0 {
		mergedConfig.Inventory = overlay.Inventory
	}

	// Merge Sessions by name, preserving base order first, then new
	// overlay sessions in their declared order.
	if len(overlay.Sessions) > 0 {
		overlayByName := make(map[string]SessionDefinition, len(overlay.Sessions))
		for _, s := range overlay.Sessions {
			overlayByName[s.Name] = s
		}
		merged := make([]SessionDefinition, 0, len(base.Sessions)+len(overlay.Sessions))
		replaced := make(map[string]bool, len(overlay.Sessions))
		for _, s := range base.Sessions {
			if o, ok := overlayByName[s.Name]; ok {
				merged = append(merged, o)
				replaced[s.Name] = true
			} else {
				merged = append(merged, s)
			}
		}
		for _, s := range overlay.Sessions {
			if !replaced[s.Name] {
				merged = append(merged, s)
			}
		}
		mergedConfig.Sessions = merged
	}

	// Merge matrix settings per kind and axis.
	if len(overlay.Matrix.Sanity.Runtimes) > 0 {
		mergedConfig.Matrix.Sanity.Runtimes = overlay.Matrix.Sanity.Runtimes
	}
	if len(overlay.Matrix.Sanity.Companions) > 0 {
		mergedConfig.Matrix.Sanity.Companions = overlay.Matrix.Sanity.Companions
	}
	if len(overlay.Matrix.Units.Runtimes) > 0 {
		mergedConfig.Matrix.Units.Runtimes = overlay.Matrix.Units.Runtimes
	}
	if len(overlay.Matrix.Units.Companions) > 0 {
		mergedConfig.Matrix.Units.Companions = overlay.Matrix.Units.Companions
	}
	if len(overlay.Matrix.Integration.Runtimes) > 0 {
		mergedConfig.Matrix.Integration.Runtimes = overlay.Matrix.Integration.Runtimes
	}
	if len(overlay.Matrix.Integration.Companions) > 0 {
		mergedConfig.Matrix.Integration.Companions = overlay.Matrix.Integration.Companions
	}

	return mergedConfig
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
