// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package resolve

import (
	"fmt"
	"strings"

	"github.com/albertocavalcante/classgen/internal/classmodel"
	"github.com/albertocavalcante/classgen/internal/names"
	"github.com/albertocavalcante/classgen/schema"
)

type enumEntry struct {
	value    any
	constant string
	doc      string
}

func isEnum(s *schema.Schema) bool {
	if len(s.Enum) > 0 {
		return true
	}
	for _, alt := range s.AnyOf {
		if alt != nil && alt.Const != nil {
			return true
		}
	}
	return false
}

// enumType emits a nested struct of named constants. String enums keep a
// std::string field, numeric enums an int32_t.
//
//	anyOf: [{const: 5120, description: BYTE}, {type: integer}]
//
// yields `struct ComponentType { static constexpr int32_t BYTE = 5120; };`.
func enumType(key string, s *schema.Schema) *resolved {
	structName := names.Capitalize(names.Identifier(key))
	kind := s.Type.Primary()

	var entries []enumEntry
	seen := make(map[string]bool)
	add := func(v any, doc string) {
		c := enumConstant(v, doc)
		if seen[c] {
			return
		}
		seen[c] = true
		entries = append(entries, enumEntry{value: v, constant: c, doc: doc})
	}
	for _, v := range s.Enum {
		add(v, "")
	}
	for _, alt := range s.AnyOf {
		if alt == nil {
			continue
		}
		if kind == "" {
			kind = alt.Type.Primary()
		}
		if alt.Const != nil {
			add(alt.Const, alt.Description)
		}
	}
	if kind == "" && len(entries) > 0 {
		if _, ok := entries[0].value.(string); ok {
			kind = "string"
		}
	}

	t := &resolved{constants: make(map[string]string)}
	var b strings.Builder
	fmt.Fprintf(&b, "/**\n * @brief Known values for `%s`.\n */\n", key)
	fmt.Fprintf(&b, "struct %s {\n", structName)
	for _, e := range entries {
		t.constants[fmt.Sprint(e.value)] = structName + "::" + e.constant
		if e.doc != "" && e.doc != e.constant {
			fmt.Fprintf(&b, "  /** @brief %s */\n", e.doc)
		}
		if kind == "string" {
			fmt.Fprintf(&b, "  inline static const std::string %s = %s;\n", e.constant, cppString(fmt.Sprint(e.value)))
		} else {
			fmt.Fprintf(&b, "  static constexpr int32_t %s = %s;\n", e.constant, formatInteger(e.value))
		}
	}
	b.WriteString("};\n")
	t.localTypes = []string{b.String()}

	if kind == "string" {
		t.typ = "std::string"
		t.readerType = "CesiumJsonReader::StringJsonHandler"
		t.headers = []string{"<string>"}
		t.readerHeaders = []string{"<CesiumJsonReader/StringJsonHandler.h>"}
		t.shape = &classmodel.Shape{Kind: classmodel.ShapeString}
		return t
	}
	t.typ = "int32_t"
	t.readerType = "CesiumJsonReader::IntegerJsonHandler<int32_t>"
	t.headers = []string{"<cstdint>"}
	t.readerHeaders = []string{"<CesiumJsonReader/IntegerJsonHandler.h>"}
	t.shape = &classmodel.Shape{Kind: classmodel.ShapeInteger}
	t.fundamental = true
	t.optional = true
	return t
}

// enumConstant names one enum value. Numeric values with a one-word
// description ("BYTE") are named by it.
func enumConstant(v any, doc string) string {
	if s, ok := v.(string); ok {
		return names.Constant(s)
	}
	if doc != "" && !strings.ContainsAny(doc, " \t\n") {
		return names.Constant(doc)
	}
	return "VALUE_" + strings.ReplaceAll(formatInteger(v), "-", "MINUS_")
}
