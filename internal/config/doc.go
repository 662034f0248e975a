// Package config loads mapstorm settings.
//
// Settings come from three layers, higher overriding lower:
//
//	┌──────────────────────────────┐
//	│  3. Environment (MAPSTORM_*) │  ← Highest priority
//	├──────────────────────────────┤
//	│  2. TOML file                │  ← --config mapstorm.toml
//	├──────────────────────────────┤
//	│  1. Built-in defaults        │  ← Lowest priority
//	└──────────────────────────────┘
//
// The merged map is decoded into a typed Config:
//
//	# mapstorm.toml
//	[history]
//	max_entries = 500
//
//	[logging]
//	level = "debug"
//
//	[tools]
//	default = "select"
//
//	[script]
//	instruction_limit = 100000
//
// Environment variables name the section and key after the prefix, so
// MAPSTORM_HISTORY_MAX_ENTRIES=50 overrides history.max_entries.
//
// Watch reloads the file whenever it changes on disk.
package config
