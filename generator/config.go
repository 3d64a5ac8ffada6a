// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "github.com/albertocavalcante/classgen/config"

// Config contains target configuration.
type Config struct {
	// Project holds the per-title class options and extensions.
	Project config.Config

	// Namespace is the namespace of generated structs and handlers.
	Namespace string

	// OneHandlerFile appends every handler implementation to one shared
	// source file instead of writing one file per class.
	OneHandlerFile bool

	// Options contains target-specific options.
	Options map[string]string
}

// Option returns a target-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}
