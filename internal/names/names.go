// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package names turns schema titles and JSON keys into C++ identifiers.
package names

import (
	"strings"
	"unicode"

	"github.com/albertocavalcante/classgen/config"
	"github.com/albertocavalcante/classgen/schema"
)

// Capitalize returns name with the first letter uppercased.
// Returns empty string for empty input.
func Capitalize(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// FromTitle builds a class identifier from a schema title. Words separated by
// anything other than letters and digits are capitalized and joined, so
// "texture info" becomes "TextureInfo" and "glTF Id" becomes "GlTFId".
func FromTitle(title string) string {
	var b strings.Builder
	for _, word := range strings.FieldsFunc(title, notIdent) {
		b.WriteString(Capitalize(word))
	}
	name := b.String()
	if name != "" && unicode.IsDigit([]rune(name)[0]) {
		name = "_" + name
	}
	return name
}

// ClassName returns the class name for s, honoring a configured override.
func ClassName(cfg config.Config, s *schema.Schema) string {
	return TitleClassName(cfg, s.Title)
}

// TitleClassName returns the class name for a schema title.
func TitleClassName(cfg config.Config, title string) string {
	if opts := cfg.Class(title); opts.OverrideName != "" {
		return opts.OverrideName
	}
	return FromTitle(title)
}

// Identifier turns a JSON key into a valid C++ member name. Invalid
// characters become underscores and reserved words get a "Property" suffix.
func Identifier(key string) string {
	var b strings.Builder
	for i, r := range key {
		switch {
		case r == '_' || unicode.IsLetter(r):
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	id := b.String()
	if id == "" {
		return "_"
	}
	if reserved[id] {
		id += "Property"
	}
	return id
}

// Constant turns an enum value or label into an upper-case constant name,
// e.g. "MASK" -> "MASK", "image/png" -> "image_png", "fooBar" -> "FOO_BAR".
func Constant(label string) string {
	if strings.ContainsAny(label, "/-. ") || !strings.ContainsFunc(label, unicode.IsLower) {
		return Identifier(label)
	}
	return Identifier(CamelToScreamingSnake(label))
}

// CamelToScreamingSnake converts a CamelCase name to SCREAMING_SNAKE_CASE.
// Fully uppercase names (like "URI") are returned as-is.
func CamelToScreamingSnake(name string) string {
	allUpper := true
	for _, r := range name {
		if !unicode.IsUpper(r) && unicode.IsLetter(r) {
			allUpper = false
			break
		}
	}
	if allUpper {
		return strings.ToUpper(name)
	}

	var result strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) && i > 0 {
			result.WriteRune('_')
		}
		result.WriteRune(unicode.ToUpper(r))
	}
	return result.String()
}

func notIdent(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

var reserved = map[string]bool{
	"auto": true, "bool": true, "break": true, "case": true, "catch": true,
	"char": true, "class": true, "const": true, "continue": true,
	"default": true, "delete": true, "do": true, "double": true, "else": true,
	"enum": true, "explicit": true, "export": true, "extern": true,
	"false": true, "float": true, "for": true, "friend": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true, "mutable": true,
	"namespace": true, "new": true, "operator": true, "private": true,
	"protected": true, "public": true, "register": true, "return": true,
	"short": true, "signed": true, "sizeof": true, "static": true,
	"struct": true, "switch": true, "template": true, "this": true,
	"throw": true, "true": true, "try": true, "typedef": true,
	"typename": true, "union": true, "unsigned": true, "using": true,
	"virtual": true, "void": true, "volatile": true, "while": true,
}
