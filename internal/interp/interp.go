// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package interp reads JSON documents with handlers built directly from
// class models, without generating code. It follows the same dispatch
// rules as the emitted C++ handlers: keys are matched against the most
// derived class first, then each base in turn, and finally against the
// members every extensible object carries.
package interp

import (
	"errors"
	"fmt"
	"slices"

	"github.com/albertocavalcante/classgen/config"
	"github.com/albertocavalcante/classgen/internal/classmodel"
	"github.com/albertocavalcante/classgen/jsonreader"
)

// ErrUnknownClass is returned for class names that are not in the registry.
var ErrUnknownClass = errors.New("unknown class")

// Class is the runtime form of one class model.
type Class struct {
	// Name is the class name.
	Name string

	// Title is the schema title, used as the object type for extension
	// lookup and in warnings.
	Title string

	// Base is the parent class, or nil when the class derives from the
	// default base.
	Base *Class

	bindings []binding
}

type binding struct {
	key   string
	shape *classmodel.Shape
}

// lookup returns the binding for key declared by c itself.
func (c *Class) lookup(key string) (binding, bool) {
	for _, b := range c.bindings {
		if b.key == key {
			return b, true
		}
	}
	return binding{}, false
}

// Keys returns the keys c declares, in declaration order.
func (c *Class) Keys() []string {
	keys := make([]string, len(c.bindings))
	for i, b := range c.bindings {
		keys[i] = b.key
	}
	return keys
}

// Registry holds the classes of one generation closure.
type Registry struct {
	classes map[string]*Class
	context *jsonreader.ExtensionContext
}

// NewRegistry builds classes from models and registers the extension
// classes in context, attached to the titles the project names.
func NewRegistry(models []*classmodel.ClassModel, project config.Config, context *jsonreader.ExtensionContext) (*Registry, error) {
	r := &Registry{
		classes: make(map[string]*Class, len(models)),
		context: context,
	}

	for _, m := range models {
		c := &Class{Name: m.Name, Title: m.Title}
		for _, p := range m.Materialized() {
			if p.Shape == nil {
				continue
			}
			c.bindings = append(c.bindings, binding{key: p.Key, shape: p.Shape})
		}
		r.classes[m.Name] = c
	}

	for _, m := range models {
		if m.Base == classmodel.DefaultBase {
			continue
		}
		base, ok := r.classes[m.Base]
		if !ok {
			return nil, fmt.Errorf("%s: base %s: %w", m.Name, m.Base, ErrUnknownClass)
		}
		r.classes[m.Name].Base = base
	}

	for _, c := range r.classes {
		for _, b := range c.bindings {
			if err := r.check(b.shape); err != nil {
				return nil, fmt.Errorf("%s.%s: %w", c.Name, b.key, err)
			}
		}
	}

	if context != nil {
		for _, m := range models {
			if m.ExtensionName == "" {
				continue
			}
			r.registerExtension(r.classes[m.Name], m.ExtensionName, attachTo(project, m.ExtensionName))
		}
	}
	return r, nil
}

func (r *Registry) check(s *classmodel.Shape) error {
	switch s.Kind {
	case classmodel.ShapeClass:
		if _, ok := r.classes[s.Class]; !ok {
			return fmt.Errorf("class %s: %w", s.Class, ErrUnknownClass)
		}
	case classmodel.ShapeArray, classmodel.ShapeDictionary:
		if s.Elem != nil {
			return r.check(s.Elem)
		}
	}
	return nil
}

func attachTo(project config.Config, name string) []string {
	for _, ext := range project.Extensions {
		if ext.Name == name {
			return ext.AttachTo
		}
	}
	return nil
}

func (r *Registry) registerExtension(c *Class, name string, owners []string) {
	factory := func() jsonreader.ExtensionHandler {
		return r.newHandler(c)
	}
	if len(owners) == 0 {
		r.context.Register("", name, factory)
		return
	}
	for _, owner := range owners {
		r.context.Register(owner, name, factory)
	}
}

// Class returns the named class.
func (r *Registry) Class(name string) (*Class, bool) {
	c, ok := r.classes[name]
	return c, ok
}

// Names returns the class names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Handler returns a fresh handler for the named class.
func (r *Registry) Handler(name string) (*ClassHandler, error) {
	c, ok := r.classes[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownClass)
	}
	return r.newHandler(c), nil
}

// Parse reads data as an instance of the named class.
func (r *Registry) Parse(name string, data []byte) (jsonreader.ReadResult[Object], error) {
	h, err := r.Handler(name)
	if err != nil {
		return jsonreader.ReadResult[Object]{}, err
	}
	return jsonreader.Read[Object](data, h), nil
}
