// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config holds the per-title generation options.
//
// A Config is treated as an immutable value: methods that change it return
// a modified copy, so a single Config can be shared by concurrent
// generation calls.
package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DefaultNamespace is used when neither the file nor the caller sets one.
const DefaultNamespace = "Generated"

// Config contains generator configuration.
type Config struct {
	// Namespace is the C++ namespace for generated structs and handlers.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`

	// APIMacro is the export macro placed before struct names. Defaults to
	// the upper-cased namespace followed by "_API".
	APIMacro string `json:"apiMacro,omitempty" yaml:"apiMacro,omitempty"`

	// Classes maps schema titles to class options.
	Classes map[string]ClassOptions `json:"classes,omitempty" yaml:"classes,omitempty"`

	// Extensions lists extension schemas to generate and register.
	Extensions []Extension `json:"extensions,omitempty" yaml:"extensions,omitempty"`

	// dir is the directory of the loaded file; extension schema paths are
	// relative to it.
	dir string
}

// ClassOptions are the options for one schema title.
type ClassOptions struct {
	// OverrideName replaces the class name derived from the title.
	OverrideName string `json:"overrideName,omitempty" yaml:"overrideName,omitempty"`

	// ToBeInherited marks an abstract shape that only its concrete sibling
	// (the un-suffixed name) may construct.
	ToBeInherited bool `json:"toBeInherited,omitempty" yaml:"toBeInherited,omitempty"`

	// IsBaseClass keeps the class open for further derivation.
	IsBaseClass bool `json:"isBaseClass,omitempty" yaml:"isBaseClass,omitempty"`

	// ExtensionName is set when the class also models a named extension.
	ExtensionName string `json:"extensionName,omitempty" yaml:"extensionName,omitempty"`
}

// Extension describes one extension schema.
type Extension struct {
	// Name is the extension name as it appears under "extensions" in JSON.
	Name string `json:"name" yaml:"name"`

	// Schema is the path of the extension's root schema.
	Schema string `json:"schema" yaml:"schema"`

	// AttachTo lists the titles of the classes the extension may appear on.
	// Empty means any extensible object.
	AttachTo []string `json:"attachTo,omitempty" yaml:"attachTo,omitempty"`
}

// Load reads a config file. Files ending in .yaml or .yml are decoded as
// YAML, everything else as JSON.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes config data. ext selects the format (".yaml", ".yml" or
// anything else for JSON).
func Parse(data []byte, ext string) (Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode json: %w", err)
		}
	}

	for i, ext := range cfg.Extensions {
		if ext.Name == "" {
			return Config{}, fmt.Errorf("extension %d: missing name", i)
		}
		if ext.Schema == "" {
			return Config{}, fmt.Errorf("extension %q: missing schema", ext.Name)
		}
	}
	return cfg, nil
}

// Class returns the options for a schema title. Unknown titles get the zero
// options.
func (c Config) Class(title string) ClassOptions {
	return c.Classes[title]
}

// NamespaceOr returns the configured namespace, or fallback when unset.
func (c Config) NamespaceOr(fallback string) string {
	if c.Namespace != "" {
		return c.Namespace
	}
	if fallback != "" {
		return fallback
	}
	return DefaultNamespace
}

// API returns the export macro for namespace ns.
func (c Config) API(ns string) string {
	if c.APIMacro != "" {
		return c.APIMacro
	}
	return strings.ToUpper(ns) + "_API"
}

// ExtensionPath resolves an extension's schema path against the directory of
// the loaded config file.
func (c Config) ExtensionPath(ext Extension) string {
	if filepath.IsAbs(ext.Schema) || c.dir == "" {
		return ext.Schema
	}
	return filepath.Join(c.dir, ext.Schema)
}

// WithNamespace returns a copy of c using namespace ns.
func (c Config) WithNamespace(ns string) Config {
	c.Namespace = ns
	return c
}

// WithExtensionName returns a copy of c in which the class titled title
// carries the given extension name.
func (c Config) WithExtensionName(title, name string) Config {
	classes := maps.Clone(c.Classes)
	if classes == nil {
		classes = make(map[string]ClassOptions)
	}
	opts := classes[title]
	opts.ExtensionName = name
	classes[title] = opts
	c.Classes = classes
	return c
}

// Titles returns the configured class titles, sorted.
func (c Config) Titles() []string {
	return slices.Sorted(maps.Keys(c.Classes))
}
