// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package classmodel resolves one schema into an emission-ready class model.
//
// Building a model is the only place where schemas are interpreted; the
// emitters in generators/cpp only render a finished ClassModel. A model is
// built fresh for every generation call and is never mutated afterwards.
package classmodel

import (
	"github.com/albertocavalcante/classgen/config"
	"github.com/albertocavalcante/classgen/schema"
)

// DefaultBase is the base of every class that does not inherit through
// allOf[0].$ref.
const DefaultBase = "CesiumUtility::ExtensibleObject"

// LibraryHeader is included by every generated struct.
const LibraryHeader = `"Library.h"`

// ClassModel is the resolved form of one schema.
type ClassModel struct {
	// Name is the class identifier (without the "Spec" suffix).
	Name string

	// Title is the schema title, used for the TypeName constant.
	Title string

	Namespace string

	// APIMacro is the export macro placed before the struct name.
	APIMacro string

	// Base is the (possibly namespace-qualified) base class name.
	Base string

	// BaseSchema is the schema Base was resolved from, or nil for
	// DefaultBase.
	BaseSchema *schema.Schema

	Description string

	ToBeInherited bool
	IsBaseClass   bool
	ExtensionName string

	// Properties lists every recorded property in declaration order,
	// including properties that are present but not materialized.
	Properties []*Property

	// LocalTypes are nested declarations emitted inside the struct.
	LocalTypes []string

	// ReaderLocalTypes are nested declarations emitted inside the handler.
	ReaderLocalTypes []string

	// ReaderLocalTypesImpl are definitions appended to the handler body.
	ReaderLocalTypesImpl []string

	// Headers, ReaderHeaders and ReaderHeadersImpl are sorted and
	// deduplicated include targets, spelled with their quotes or brackets.
	Headers           []string
	ReaderHeaders     []string
	ReaderHeadersImpl []string

	// Dependencies are the schemas referenced by materialized properties.
	Dependencies []*schema.Schema

	// Schema is the schema this model was built from.
	Schema *schema.Schema
}

// Property is one resolved field.
type Property struct {
	// Key is the JSON object key.
	Key string

	// Name is the C++ member identifier.
	Name string

	BriefDoc string
	FullDoc  string

	// Type is the struct field type. Empty means the property is present
	// but not materialized.
	Type string

	// ReaderType is the type of the handler field that parses this property.
	ReaderType string

	// DefaultValue is an explicit initializer expression, if any.
	DefaultValue *string

	// NeedsInitialization requests value-initialization when there is no
	// explicit default.
	NeedsInitialization bool

	Headers           []string
	ReaderHeaders     []string
	ReaderHeadersImpl []string

	LocalTypes           []string
	ReaderLocalTypes     []string
	ReaderLocalTypesImpl []string

	// Schemas are the class schemas this property depends on.
	Schemas []*schema.Schema

	// Shape is the structural form of the value, used by the interpreter.
	Shape *Shape
}

// Materialized reports whether the property appears in the struct and the
// handler.
func (p *Property) Materialized() bool {
	return p.Type != ""
}

// ShapeKind enumerates the structural kinds of property values.
type ShapeKind int

const (
	ShapeValue ShapeKind = iota
	ShapeString
	ShapeInteger
	ShapeNumber
	ShapeBoolean
	ShapeClass
	ShapeArray
	ShapeDictionary
)

var shapeNames = [...]string{"value", "string", "integer", "number", "boolean", "class", "array", "dictionary"}

func (k ShapeKind) String() string {
	if int(k) < len(shapeNames) {
		return shapeNames[k]
	}
	return "unknown"
}

// Shape describes a property value structurally.
type Shape struct {
	Kind ShapeKind

	// Class names the referenced class for ShapeClass.
	Class string

	// Elem is the element shape for ShapeArray and ShapeDictionary.
	Elem *Shape
}

// Loader resolves "$ref" pointers against a context stack.
type Loader interface {
	PushContext(s *schema.Schema)
	PopContext()
	Load(ref string) (*schema.Schema, error)
}

// PropertyResolver turns one property schema into a Property. A nil
// Property means the schema declares nothing for this class.
type PropertyResolver interface {
	ResolveProperty(l Loader, cfg config.Config, className, propertyName string,
		prop *schema.Schema, required []string, namespace string) (*Property, error)
}

// HeaderName is the struct header generated for this class.
func (m *ClassModel) HeaderName() string {
	if m.ToBeInherited {
		return m.Name + "Spec.h"
	}
	return m.Name + ".h"
}

// StructName is the name of the emitted struct.
func (m *ClassModel) StructName() string {
	if m.ToBeInherited {
		return m.Name + "Spec"
	}
	return m.Name
}

// HandlerName is the name of the emitted handler class.
func (m *ClassModel) HandlerName() string {
	return m.Name + "JsonHandler"
}

// Materialized returns the properties that appear in the struct.
func (m *ClassModel) Materialized() []*Property {
	var out []*Property
	for _, p := range m.Properties {
		if p.Materialized() {
			out = append(out, p)
		}
	}
	return out
}

// Property returns the property with the given JSON key.
func (m *ClassModel) Property(key string) (*Property, bool) {
	for _, p := range m.Properties {
		if p.Key == key {
			return p, true
		}
	}
	return nil, false
}
