// Package config provides configuration management for qactl.
//
// This package implements a layered configuration system that allows
// collection repositories to declare their QA setup through YAML files.
// Configuration is loaded from multiple sources and merged in a specific
// order, with later sources overriding earlier ones.
//
// # Configuration Layers
//
// Configuration is loaded and merged in the following order:
//
//  1. Default Configuration (embedded in binary)
//     - Built-in session registry and compatibility table
//     - Ensures qactl works out-of-the-box
//
//  2. User Configuration (~/.config/qactl/config.yaml)
//     - User-specific settings that apply to all collections
//
//  3. Project Configuration (./.qactl/config.yaml)
//     - Collection-specific settings in the current directory
//     - Allows teams to share configuration via version control
//
// # Configuration Structure
//
// The configuration file uses YAML format with the following main sections:
//
//	compat:
//	  - runtime: "3.9"
//	    companions: ["2.14", "2.15"]
//	  - runtime: "3.10"
//	    companions: ["2.15", "2.16"]
//
//	sessions:
//	  - name: "lint"
//	    enabledByDefault: true
//	    dependsOn: ["formatters", "codeqa", "typing"]
//
//	actionGroups:
//	  - name: "net"
//	    pattern: "^net_.*"
//	    requiredAttribute: "action_group:net"
//	    exclusions: ["net_ping"]
//
//	inventory:
//	  - name: "net_get"
//	    attributes: ["action_group:net"]
//
//	matrix:
//	  units:
//	    runtimes: ["all"]
//	    companions: ["all"]
//
// Declared compat, actionGroups and inventory sections replace the
// corresponding defaults; sessions merge by name so a project can override a
// single session without restating the whole registry.
//
// All declarations are validated when they are converted into the core
// types (compat.Table, session.Registry, actiongroup.Group): malformed
// version strings, duplicate names, unknown dependencies and invalid
// patterns are reported at load time rather than mid-generation.
package config
