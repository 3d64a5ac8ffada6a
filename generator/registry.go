// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrUnknownTarget is returned by Lookup for names that are not registered.
var ErrUnknownTarget = errors.New("unknown target")

var (
	mu       sync.RWMutex
	registry = make(map[string]Target)
)

// Register adds a target to the registry.
func Register(t Target) {
	mu.Lock()
	defer mu.Unlock()
	meta := t.Metadata()
	if _, exists := registry[meta.Name]; exists {
		panic(fmt.Sprintf("target %q already registered", meta.Name))
	}
	registry[meta.Name] = t
}

// Get returns a target by name.
func Get(name string) (Target, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[name]
	return t, ok
}

// Lookup is Get with an error naming the available targets.
func Lookup(name string) (Target, error) {
	if t, ok := Get(name); ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownTarget, name, List())
}

// List returns all registered target names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns all registered targets, sorted by name.
func All() []Target {
	names := List()
	mu.RLock()
	defer mu.RUnlock()
	targets := make([]Target, 0, len(names))
	for _, name := range names {
		if t, ok := registry[name]; ok {
			targets = append(targets, t)
		}
	}
	return targets
}

// Reset clears the registry (for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Target)
}
