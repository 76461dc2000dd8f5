// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Implements configuration file discovery across a list of
//              directories, base names and extensions.
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Search order includes the user config directory,
//                      defaults pass through to the loaded Config

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jerror "github.com/msto63/jtime/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search for config files
	Filenames  []string               // Base filenames to look for (without extension)
	Extensions []string               // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Default values
	Required   bool                   // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search order used by the jtime CLI
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./config"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "jtime"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"jtime", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "JTIME",
		Required:   false,
	}
}

// Discover finds the first existing configuration file and loads it.
// When nothing is found and Required is false, a Config with only
// defaults and environment overrides is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	loadOptions := LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	}

	configPath, err := FindConfigFile(options)
	if err == nil {
		cfg, err := LoadWithOptions(configPath, loadOptions)
		if err != nil {
			return nil, jerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
				WithOperation("config.Discover").
				WithDetail("configPath", configPath)
		}
		return cfg, nil
	}

	if options.Required {
		searchPaths := ListPossibleConfigFiles(options)
		return nil, jerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searchPaths, ", "))).
			WithCode(jerror.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searchPaths)
	}

	return New(loadOptions), nil
}

// FindConfigFile returns the first existing configuration file path
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", jerror.New("configuration file not found").
		WithCode(jerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string

	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}

	return paths
}
