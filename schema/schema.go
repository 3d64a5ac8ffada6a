// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package schema defines the JSON-Schema subset that classgen reads.
//
// Only the keywords that influence class generation are modeled. Property
// declaration order is preserved so that generated fields appear in the same
// order as in the schema file.
package schema

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	"github.com/goccy/go-json"
)

// Schema describes one class shape or one property shape.
type Schema struct {
	// ID is the "$id" keyword (legacy "id" is accepted too).
	ID string `json:"$id,omitempty"`

	// Ref is the "$ref" keyword.
	Ref string `json:"$ref,omitempty"`

	// Title names the class. Config entries are keyed by title.
	Title string `json:"title,omitempty"`

	// Description is used as the brief documentation line.
	Description string `json:"description,omitempty"`

	// DetailedDescription is used as the extended documentation paragraph.
	DetailedDescription string `json:"detailedDescription,omitempty"`

	// GltfDetailedDescription is the glTF spelling of DetailedDescription.
	GltfDetailedDescription string `json:"gltf_detailedDescription,omitempty"`

	Type     TypeList   `json:"type,omitempty"`
	Required []string   `json:"required,omitempty"`
	Default  any        `json:"default,omitempty"`
	Enum     []any      `json:"enum,omitempty"`
	Const    any        `json:"const,omitempty"`
	Minimum  *float64   `json:"minimum,omitempty"`
	Maximum  *float64   `json:"maximum,omitempty"`
	Format   string     `json:"format,omitempty"`
	AllOf    []*Schema  `json:"allOf,omitempty"`
	AnyOf    []*Schema  `json:"anyOf,omitempty"`
	OneOf    []*Schema  `json:"oneOf,omitempty"`
	Not      *Schema    `json:"not,omitempty"`
	Items    *Schema    `json:"items,omitempty"`
	Props    Properties `json:"properties,omitempty"`

	// AdditionalProperties is set for dictionary-like objects. A literal
	// false decodes to a schema whose Not is set; see IsFalse.
	AdditionalProperties *Schema `json:"additionalProperties,omitempty"`

	Definitions map[string]*Schema `json:"definitions,omitempty"`
	Defs        map[string]*Schema `json:"$defs,omitempty"`

	// Location is where the schema was loaded from: a file path, optionally
	// followed by "#" and a JSON pointer. It is assigned by the loader.
	Location string `json:"-"`
}

// NamedSchema is one entry of an object's "properties".
type NamedSchema struct {
	Name   string
	Schema *Schema
}

// Properties is the ordered "properties" map.
type Properties []NamedSchema

// Get returns the schema for the named property.
func (p Properties) Get(name string) (*Schema, bool) {
	for _, ns := range p {
		if ns.Name == name {
			return ns.Schema, true
		}
	}
	return nil, false
}

// Names returns the property names in declaration order.
func (p Properties) Names() []string {
	names := make([]string, len(p))
	for i, ns := range p {
		names[i] = ns.Name
	}
	return names
}

// UnmarshalJSON decodes an object while keeping key order.
func (p *Properties) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("properties: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("properties: expected object, got %v", tok)
	}

	var out Properties
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("properties: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("properties: expected key, got %v", keyTok)
		}
		s := new(Schema)
		if err := dec.Decode(s); err != nil {
			return fmt.Errorf("properties: decode %q: %w", key, err)
		}
		out = append(out, NamedSchema{Name: key, Schema: s})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("properties: %w", err)
	}

	*p = out
	return nil
}

// MarshalJSON encodes properties in declaration order.
func (p Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ns := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ns.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(ns.Schema)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TypeList is the "type" keyword, which may be a string or a list.
type TypeList []string

// UnmarshalJSON accepts both `"string"` and `["string", "null"]`.
func (t *TypeList) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '[' {
		var s []string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("type list: %w", err)
		}
		*t = s
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("type: %w", err)
	}
	if s == "" {
		*t = nil
		return nil
	}
	*t = TypeList{s}
	return nil
}

// Has reports whether name is one of the listed types.
func (t TypeList) Has(name string) bool {
	return slices.Contains(t, name)
}

// Primary returns the first non-null type, or "".
func (t TypeList) Primary() string {
	for _, name := range t {
		if name != "null" {
			return name
		}
	}
	return ""
}

type schemaAlias Schema

// UnmarshalJSON accepts boolean schemas: true is {} and false is {"not": {}}.
func (s *Schema) UnmarshalJSON(raw []byte) error {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		if b {
			*s = Schema{}
		} else {
			*s = Schema{Not: &Schema{}}
		}
		return nil
	}

	var obj schemaAlias
	if err := json.Unmarshal(raw, &obj); err != nil {
		return fmt.Errorf("schema: %w", err)
	}

	if obj.ID == "" {
		var legacy struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &legacy); err == nil {
			obj.ID = legacy.ID
		}
	}

	*s = Schema(obj)
	return nil
}

// Parse decodes a schema document.
func Parse(data []byte) (*Schema, error) {
	s := new(Schema)
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return s, nil
}

// Read decodes a schema document from r.
func Read(r io.Reader) (*Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return Parse(data)
}

// IsFalse reports whether s is the boolean schema false.
func (s *Schema) IsFalse() bool {
	return s != nil && s.Not != nil && s.Not.IsEmpty()
}

// IsEmpty reports whether s carries no shape information at all. Derived
// schemas use empty property entries for properties the base defines.
func (s *Schema) IsEmpty() bool {
	if s == nil {
		return true
	}
	return s.Ref == "" && s.Title == "" && len(s.Type) == 0 &&
		len(s.Props) == 0 && len(s.Enum) == 0 && s.Const == nil &&
		s.Default == nil && len(s.AllOf) == 0 && len(s.AnyOf) == 0 &&
		len(s.OneOf) == 0 && s.Not == nil && s.Items == nil &&
		s.AdditionalProperties == nil
}

// FullDoc returns the extended documentation paragraph.
func (s *Schema) FullDoc() string {
	if s.DetailedDescription != "" {
		return s.DetailedDescription
	}
	return s.GltfDetailedDescription
}

// BaseRef returns the single-parent inheritance reference, allOf[0].$ref.
func (s *Schema) BaseRef() string {
	if len(s.AllOf) > 0 && s.AllOf[0] != nil {
		return s.AllOf[0].Ref
	}
	return ""
}

// IsRequired reports whether name is listed in "required".
func (s *Schema) IsRequired(name string) bool {
	return slices.Contains(s.Required, name)
}

// IsObject reports whether s describes a class-like object.
func (s *Schema) IsObject() bool {
	if s.Type.Primary() == "object" {
		return true
	}
	return len(s.Type) == 0 && (len(s.Props) > 0 || s.BaseRef() != "")
}

// Definition returns a named entry of "$defs" or "definitions".
func (s *Schema) Definition(name string) (*Schema, bool) {
	if d, ok := s.Defs[name]; ok {
		return d, true
	}
	d, ok := s.Definitions[name]
	return d, ok
}

// Key identifies s for deduplication: its Location when known, otherwise
// its address.
func (s *Schema) Key() string {
	if s.Location != "" {
		return s.Location
	}
	return fmt.Sprintf("%p", s)
}
