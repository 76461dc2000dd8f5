// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads jtime settings from TOML or YAML files,
//              applies defaults and lets environment variables override
//              any key.
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Trimmed to file loading, discovery and env overrides

/*
Package config provides configuration loading for jtime.

Key Features:
  • TOML and YAML files with detection by extension
  • Dot notation access to nested keys ("output.format")
  • Defaults merged below file values
  • Environment overrides: with prefix JTIME the key output.format is read
    from JTIME_OUTPUT_FORMAT
  • File discovery across a list of directories
  • Errors are *error.Error values with CodeConfigError, CodeInvalidConfig
    or CodeNotFound

Precedence, highest first: environment, file, defaults.

Basic Usage:

	cfg, err := config.Discover(config.DiscoveryOptions{
		Paths:     []string{".", "./config"},
		Filenames: []string{"jtime"},
		EnvPrefix: "JTIME",
		Defaults:  map[string]interface{}{"output.format": "text"},
	})
	if err != nil {
		return err
	}
	format := cfg.GetString("output.format")
*/
package config
