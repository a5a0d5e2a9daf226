// Package config loads rebind's application settings from a TOML file with
// REBIND_* environment overrides.
//
//	[bindings]
//	path = "bindings.yaml"
//	watch = true
//
//	[window]
//	width = 1024
//	height = 768
//
//	[state]
//	retention = 30.0
//
//	[log]
//	level = "info"
//	format = "text"
//
// A missing file yields the defaults. A relative bindings path is resolved
// against the directory of the configuration file.
package config
