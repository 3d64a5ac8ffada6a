// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package resolve

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/albertocavalcante/classgen/internal/classmodel"
)

// initializer formats a schema default as a C++ initializer expression.
// Defaults that cannot be expressed for t are ignored.
func (t *resolved) initializer(v any) (string, bool) {
	if v == nil || t.shape == nil {
		return "", false
	}

	switch t.shape.Kind {
	case classmodel.ShapeArray:
		items, ok := v.([]any)
		if !ok {
			return "", false
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := t.elem.initializer(item)
			if !ok {
				return "", false
			}
			parts = append(parts, s)
		}
		return "{" + strings.Join(parts, ", ") + "}", true
	case classmodel.ShapeClass, classmodel.ShapeDictionary, classmodel.ShapeValue:
		return "", false
	}

	if c, ok := t.constants[fmt.Sprint(v)]; ok {
		return c, true
	}

	switch t.shape.Kind {
	case classmodel.ShapeString:
		if s, ok := v.(string); ok {
			return cppString(s), true
		}
	case classmodel.ShapeBoolean:
		if b, ok := v.(bool); ok {
			return strconv.FormatBool(b), true
		}
	case classmodel.ShapeInteger:
		if f, ok := number(v); ok && f == math.Trunc(f) {
			return formatInteger(f), true
		}
	case classmodel.ShapeNumber:
		if f, ok := number(v); ok {
			return formatDouble(f), true
		}
	}
	return "", false
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func formatInteger(v any) string {
	if f, ok := number(v); ok {
		return strconv.FormatInt(int64(f), 10)
	}
	return fmt.Sprint(v)
}

// formatDouble always yields a floating-point literal: 1 -> "1.0".
func formatDouble(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}
	return s
}

// cppString quotes s as a C++ string literal.
func cppString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
