// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package jsonreader

import "sync"

// ExtensionState controls how an extension is read.
type ExtensionState int

const (
	// Enabled parses the extension with its registered handler, if any.
	Enabled ExtensionState = iota

	// JSONOnly keeps the extension as a generic JSON value even when a
	// handler is registered.
	JSONOnly

	// Disabled skips the extension entirely.
	Disabled
)

// ExtensionFactory builds a fresh handler for one extension value.
type ExtensionFactory func() ExtensionHandler

type extensionKey struct {
	owner string
	name  string
}

// ExtensionContext is the registry of extension handlers consulted while
// reading. It is safe for concurrent use. A nil *ExtensionContext has no
// registrations and reads every extension as JSON.
type ExtensionContext struct {
	mu        sync.RWMutex
	factories map[extensionKey]ExtensionFactory
	states    map[string]ExtensionState
}

// NewExtensionContext returns an empty registry.
func NewExtensionContext() *ExtensionContext {
	return &ExtensionContext{
		factories: make(map[extensionKey]ExtensionFactory),
		states:    make(map[string]ExtensionState),
	}
}

// Register associates the extension name on objects titled owner with f.
// An empty owner matches objects of every type.
func (c *ExtensionContext) Register(owner, name string, f ExtensionFactory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.factories[extensionKey{owner, name}] = f
}

// SetState overrides how the named extension is read.
func (c *ExtensionContext) SetState(name string, state ExtensionState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[name] = state
}

// State reports how the named extension is read.
func (c *ExtensionContext) State(name string) ExtensionState {
	if c == nil {
		return Enabled
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.states[name]
}

// create builds the handler registered for name on owner, falling back
// to a registration for every owner.
func (c *ExtensionContext) create(owner, name string) (ExtensionHandler, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	f, ok := c.factories[extensionKey{owner, name}]
	if !ok {
		f, ok = c.factories[extensionKey{"", name}]
	}
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return f(), true
}
