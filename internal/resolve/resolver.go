// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package resolve maps property schemas to C++ field and handler types.
package resolve

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/albertocavalcante/classgen/config"
	"github.com/albertocavalcante/classgen/internal/classmodel"
	"github.com/albertocavalcante/classgen/internal/names"
	"github.com/albertocavalcante/classgen/schema"
)

// Resolver implements classmodel.PropertyResolver for the CesiumJsonReader
// handler library.
type Resolver struct {
	logger *slog.Logger
}

var _ classmodel.PropertyResolver = (*Resolver)(nil)

// New creates a Resolver. A nil logger uses slog.Default().
func New(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{logger: logger}
}

// resolved is a value type before the field policy (defaults, optional
// wrapping, initialization) is applied.
type resolved struct {
	typ        string
	readerType string

	headers           []string
	readerHeaders     []string
	readerHeadersImpl []string

	localTypes           []string
	readerLocalTypes     []string
	readerLocalTypesImpl []string

	schemas []*schema.Schema
	shape   *classmodel.Shape

	// elem is the element or value type of a container.
	elem *resolved

	// fundamental types have no meaningful state until initialized.
	fundamental bool

	// optional types are wrapped in std::optional when not required.
	optional bool

	// constants maps enum values, formatted with fmt.Sprint, to the
	// qualified constant that names them.
	constants map[string]string

	// def, brief and full are inherited from a referenced scalar schema.
	def         any
	brief, full string
}

// ResolveProperty implements classmodel.PropertyResolver.
func (r *Resolver) ResolveProperty(l classmodel.Loader, cfg config.Config, className, propertyName string,
	prop *schema.Schema, required []string, namespace string) (*classmodel.Property, error) {
	if prop.IsEmpty() {
		return nil, nil
	}

	p := &classmodel.Property{
		Key:      propertyName,
		Name:     names.Identifier(propertyName),
		BriefDoc: prop.Description,
		FullDoc:  prop.FullDoc(),
	}

	t, err := r.resolve(l, cfg, className, propertyName, prop)
	if err != nil {
		return nil, err
	}
	if t == nil {
		r.logger.Warn("unsupported property shape",
			"class", className, "property", propertyName, "location", prop.Location)
		return p, nil
	}

	if p.BriefDoc == "" {
		p.BriefDoc = t.brief
	}
	if p.FullDoc == "" {
		p.FullDoc = t.full
	}
	p.Type = t.typ
	p.ReaderType = t.readerType
	p.Headers = slices.Clone(t.headers)
	p.ReaderHeaders = slices.Clone(t.readerHeaders)
	p.ReaderHeadersImpl = slices.Clone(t.readerHeadersImpl)
	p.LocalTypes = slices.Clone(t.localTypes)
	p.ReaderLocalTypes = slices.Clone(t.readerLocalTypes)
	p.ReaderLocalTypesImpl = slices.Clone(t.readerLocalTypesImpl)
	p.Schemas = slices.Clone(t.schemas)
	p.Shape = t.shape

	def := prop.Default
	if def == nil {
		def = t.def
	}
	if v, ok := t.initializer(def); ok {
		p.DefaultValue = &v
	} else if slices.Contains(required, propertyName) {
		p.NeedsInitialization = t.fundamental
	} else if t.optional {
		p.Type = "std::optional<" + t.typ + ">"
		p.Headers = append(p.Headers, "<optional>")
	}
	return p, nil
}

func (r *Resolver) resolve(l classmodel.Loader, cfg config.Config, className, key string, s *schema.Schema) (*resolved, error) {
	if ref := refOf(s); ref != "" {
		target, err := l.Load(ref)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", ref, err)
		}
		if isClass(target) {
			return classRef(cfg, target), nil
		}

		l.PushContext(target)
		defer l.PopContext()
		t, err := r.resolve(l, cfg, className, key, target)
		if err != nil || t == nil {
			return t, err
		}
		if t.def == nil {
			t.def = target.Default
		}
		if t.brief == "" {
			t.brief, t.full = target.Description, target.FullDoc()
		}
		return t, nil
	}

	if isEnum(s) {
		return enumType(key, s), nil
	}

	switch s.Type.Primary() {
	case "integer", "number", "boolean", "string":
		return scalarType(s.Type.Primary()), nil
	case "array":
		return r.array(l, cfg, className, key, s)
	case "object":
		return r.object(l, cfg, className, key, s)
	case "":
		if len(s.Props) > 0 {
			return r.object(l, cfg, className, key, s)
		}
	}
	return nil, nil
}

func (r *Resolver) array(l classmodel.Loader, cfg config.Config, className, key string, s *schema.Schema) (*resolved, error) {
	if s.Items == nil {
		return nil, nil
	}
	elem, err := r.value(l, cfg, className, key, s.Items)
	if err != nil || elem == nil {
		return nil, err
	}
	return &resolved{
		typ:                  "std::vector<" + elem.typ + ">",
		readerType:           "CesiumJsonReader::ArrayJsonHandler<" + elem.typ + ", " + elem.readerType + ">",
		headers:              append([]string{"<vector>"}, elem.headers...),
		readerHeaders:        append([]string{"<CesiumJsonReader/ArrayJsonHandler.h>"}, elem.readerHeaders...),
		readerHeadersImpl:    elem.readerHeadersImpl,
		localTypes:           elem.localTypes,
		readerLocalTypes:     elem.readerLocalTypes,
		readerLocalTypesImpl: elem.readerLocalTypesImpl,
		schemas:              elem.schemas,
		shape:                &classmodel.Shape{Kind: classmodel.ShapeArray, Elem: elem.shape},
		elem:                 elem,
	}, nil
}

func (r *Resolver) object(l classmodel.Loader, cfg config.Config, className, key string, s *schema.Schema) (*resolved, error) {
	if len(s.Props) == 0 {
		if ap := s.AdditionalProperties; ap != nil && !ap.IsFalse() {
			return r.dictionary(l, cfg, className, key, ap)
		}
		return jsonObject(), nil
	}

	// An untitled inline object becomes a class named after its owner.
	inline := s
	if inline.Title == "" {
		cp := *s
		cp.Title = className + names.FromTitle(key)
		inline = &cp
	}
	return classRef(cfg, inline), nil
}

func (r *Resolver) dictionary(l classmodel.Loader, cfg config.Config, className, key string, ap *schema.Schema) (*resolved, error) {
	value, err := r.value(l, cfg, className, key, ap)
	if err != nil || value == nil {
		return nil, err
	}
	return &resolved{
		typ:                  "std::unordered_map<std::string, " + value.typ + ">",
		readerType:           "CesiumJsonReader::DictionaryJsonHandler<" + value.typ + ", " + value.readerType + ">",
		headers:              append([]string{"<string>", "<unordered_map>"}, value.headers...),
		readerHeaders:        append([]string{"<CesiumJsonReader/DictionaryJsonHandler.h>"}, value.readerHeaders...),
		readerHeadersImpl:    value.readerHeadersImpl,
		localTypes:           value.localTypes,
		readerLocalTypes:     value.readerLocalTypes,
		readerLocalTypesImpl: value.readerLocalTypesImpl,
		schemas:              value.schemas,
		shape:                &classmodel.Shape{Kind: classmodel.ShapeDictionary, Elem: value.shape},
		elem:                 value,
	}, nil
}

// value resolves a container element. An unconstrained element holds any
// JSON value.
func (r *Resolver) value(l classmodel.Loader, cfg config.Config, className, key string, s *schema.Schema) (*resolved, error) {
	if s.IsEmpty() {
		return jsonValue(), nil
	}
	return r.resolve(l, cfg, className, key, s)
}

func classRef(cfg config.Config, target *schema.Schema) *resolved {
	name := names.ClassName(cfg, target)
	return &resolved{
		typ:           name,
		readerType:    name + "JsonHandler",
		headers:       []string{`"` + name + `.h"`},
		readerHeaders: []string{`"` + name + `JsonHandler.h"`},
		schemas:       []*schema.Schema{target},
		shape:         &classmodel.Shape{Kind: classmodel.ShapeClass, Class: name},
		optional:      true,
	}
}

type scalar struct {
	typ, readerType, header, readerHeader string
	kind                                  classmodel.ShapeKind
	fundamental                           bool
}

var scalars = map[string]scalar{
	"integer": {"int64_t", "CesiumJsonReader::IntegerJsonHandler<int64_t>", "<cstdint>",
		"<CesiumJsonReader/IntegerJsonHandler.h>", classmodel.ShapeInteger, true},
	"number": {"double", "CesiumJsonReader::DoubleJsonHandler", "",
		"<CesiumJsonReader/DoubleJsonHandler.h>", classmodel.ShapeNumber, true},
	"boolean": {"bool", "CesiumJsonReader::BoolJsonHandler", "",
		"<CesiumJsonReader/BoolJsonHandler.h>", classmodel.ShapeBoolean, true},
	"string": {"std::string", "CesiumJsonReader::StringJsonHandler", "<string>",
		"<CesiumJsonReader/StringJsonHandler.h>", classmodel.ShapeString, false},
}

func scalarType(jsonType string) *resolved {
	sc := scalars[jsonType]
	t := &resolved{
		typ:           sc.typ,
		readerType:    sc.readerType,
		readerHeaders: []string{sc.readerHeader},
		shape:         &classmodel.Shape{Kind: sc.kind},
		fundamental:   sc.fundamental,
		optional:      sc.fundamental,
	}
	if sc.header != "" {
		t.headers = []string{sc.header}
	}
	return t
}

func jsonValue() *resolved {
	return &resolved{
		typ:           "CesiumUtility::JsonValue",
		readerType:    "CesiumJsonReader::JsonObjectJsonHandler",
		headers:       []string{"<CesiumUtility/JsonValue.h>"},
		readerHeaders: []string{"<CesiumJsonReader/JsonObjectJsonHandler.h>"},
		shape:         &classmodel.Shape{Kind: classmodel.ShapeValue},
	}
}

func jsonObject() *resolved {
	t := jsonValue()
	t.typ = "CesiumUtility::JsonValue::Object"
	return t
}

// refOf returns the reference of a "$ref" schema or of a single-entry
// "allOf" wrapping one.
func refOf(s *schema.Schema) string {
	if s.Ref != "" {
		return s.Ref
	}
	if len(s.AllOf) == 1 && s.AllOf[0] != nil && len(s.Type) == 0 {
		return s.AllOf[0].Ref
	}
	return ""
}

// isClass reports whether a referenced schema is generated as its own class
// rather than inlined as a value type.
func isClass(s *schema.Schema) bool {
	if s.Title == "" || !s.IsObject() {
		return false
	}
	dictionary := len(s.Props) == 0 && s.AdditionalProperties != nil && !s.AdditionalProperties.IsFalse()
	return !dictionary
}
