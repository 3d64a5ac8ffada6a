// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package classmodel

import (
	"errors"
	"fmt"

	"github.com/albertocavalcante/classgen/config"
	"github.com/albertocavalcante/classgen/internal/names"
	"github.com/albertocavalcante/classgen/schema"
)

// ErrDuplicateProperty is returned when two properties map to the same
// member identifier.
var ErrDuplicateProperty = errors.New("duplicate property identifier")

const extensionHandlerHeader = "<CesiumJsonReader/IExtensionJsonHandler.h>"

// Build resolves s into a ClassModel.
//
// The schema is pushed onto l's context stack for the duration of the call,
// so references in s resolve relative to its own location. Only the direct
// base is resolved; the base's own ancestors are resolved when the base is
// generated.
func Build(l Loader, r PropertyResolver, cfg config.Config, s *schema.Schema, namespace string) (*ClassModel, error) {
	name := names.ClassName(cfg, s)
	if name == "" {
		return nil, fmt.Errorf("schema %s: missing title", s.Key())
	}
	opts := cfg.Class(s.Title)

	l.PushContext(s)
	defer l.PopContext()

	base := DefaultBase
	var baseSchema *schema.Schema
	if ref := s.BaseRef(); ref != "" {
		var err error
		baseSchema, err = l.Load(ref)
		if err != nil {
			return nil, fmt.Errorf("class %s: resolve base: %w", name, err)
		}
		base = names.ClassName(cfg, baseSchema)
	}

	m := &ClassModel{
		Name:          name,
		Title:         s.Title,
		Namespace:     namespace,
		APIMacro:      cfg.API(namespace),
		Base:          base,
		BaseSchema:    baseSchema,
		Description:   s.Description,
		ToBeInherited: opts.ToBeInherited,
		IsBaseClass:   opts.IsBaseClass,
		ExtensionName: opts.ExtensionName,
		Schema:        s,
	}

	var (
		localTypes           = newStringSet()
		readerLocalTypes     = newStringSet()
		readerLocalTypesImpl = newStringSet()
		headers              = newStringSet(LibraryHeader, IncludeFor(base))
		readerHeaders        = newStringSet(ReaderIncludeFor(base), `"`+namespace+"/"+name+`.h"`)
		readerHeadersImpl    = newStringSet("<cassert>", "<string>")
		deps                 = newOrderedSet[*schema.Schema]()
		identifiers          = make(map[string]string)
	)
	if m.ExtensionName != "" {
		addStrings(readerHeaders, extensionHandlerHeader)
		addStrings(readerHeadersImpl, "<any>")
	}

	for _, ps := range s.Props {
		p, err := r.ResolveProperty(l, cfg, name, ps.Name, ps.Schema, s.Required, namespace)
		if err != nil {
			return nil, fmt.Errorf("class %s: property %q: %w", name, ps.Name, err)
		}
		if p == nil {
			continue
		}

		if p.Materialized() {
			if prev, dup := identifiers[p.Name]; dup {
				return nil, fmt.Errorf("class %s: %w: %q and %q both map to %s",
					name, ErrDuplicateProperty, prev, p.Key, p.Name)
			}
			identifiers[p.Name] = p.Key
			for _, dep := range p.Schemas {
				deps.add(dep.Key(), dep)
			}
		}

		addStrings(localTypes, p.LocalTypes...)
		addStrings(readerLocalTypes, p.ReaderLocalTypes...)
		addStrings(readerLocalTypesImpl, p.ReaderLocalTypesImpl...)
		addStrings(headers, p.Headers...)
		addStrings(readerHeaders, p.ReaderHeaders...)
		addStrings(readerHeadersImpl, p.ReaderHeadersImpl...)

		m.Properties = append(m.Properties, p)
	}

	// A recursive shape such as a tree node references its own type; the
	// struct and handler must not include their own headers.
	headers.remove(`"` + name + `.h"`)
	headers.remove(`"` + m.HeaderName() + `"`)
	readerHeaders.remove(`"` + m.HandlerName() + `.h"`)
	readerHeadersImpl.remove(`"` + m.HandlerName() + `.h"`)
	readerHeadersImpl.remove(`"` + namespace + "/" + name + `.h"`)

	m.LocalTypes = localTypes.values()
	m.ReaderLocalTypes = readerLocalTypes.values()
	m.ReaderLocalTypesImpl = readerLocalTypesImpl.values()
	m.Headers = headers.sortedKeys()
	m.ReaderHeaders = readerHeaders.sortedKeys()
	m.ReaderHeadersImpl = readerHeadersImpl.sortedKeys()
	m.Dependencies = deps.values()

	return m, nil
}
