// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package names

import (
	"testing"

	"github.com/albertocavalcante/classgen/config"
	"github.com/albertocavalcante/classgen/schema"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase", input: "buffer", expected: "Buffer"},
		{name: "already capitalized", input: "Buffer", expected: "Buffer"},
		{name: "empty", input: "", expected: ""},
		{name: "single char", input: "a", expected: "A"},
		{name: "all caps", input: "URI", expected: "URI"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Capitalize(tc.input); got != tc.expected {
				t.Errorf("Capitalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestFromTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Buffer", expected: "Buffer"},
		{input: "texture info", expected: "TextureInfo"},
		{input: "glTF Id", expected: "GlTFId"},
		{input: "KHR_materials_unlit glTF extension", expected: "KHRMaterialsUnlitGlTFExtension"},
		{input: "Buffer View", expected: "BufferView"},
		{input: "3D Tiles", expected: "_3DTiles"},
		{input: "", expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := FromTitle(tc.input); got != tc.expected {
				t.Errorf("FromTitle(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestClassName(t *testing.T) {
	cfg := config.Config{Classes: map[string]config.ClassOptions{
		"glTF": {OverrideName: "Model"},
	}}

	tests := []struct {
		title    string
		expected string
	}{
		{title: "glTF", expected: "Model"},
		{title: "accessor sparse", expected: "AccessorSparse"},
	}

	for _, tc := range tests {
		t.Run(tc.title, func(t *testing.T) {
			if got := ClassName(cfg, &schema.Schema{Title: tc.title}); got != tc.expected {
				t.Errorf("ClassName(%q) = %q, want %q", tc.title, got, tc.expected)
			}
		})
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "byteOffset", expected: "byteOffset"},
		{name: "reserved", input: "class", expected: "classProperty"},
		{name: "reserved default", input: "default", expected: "defaultProperty"},
		{name: "leading digit", input: "3d", expected: "_3d"},
		{name: "dash", input: "KHR-lights", expected: "KHR_lights"},
		{name: "dollar", input: "$schema", expected: "_schema"},
		{name: "empty", input: "", expected: "_"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Identifier(tc.input); got != tc.expected {
				t.Errorf("Identifier(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestConstant(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "MASK", expected: "MASK"},
		{input: "image/png", expected: "image_png"},
		{input: "fooBar", expected: "FOO_BAR"},
		{input: "TRIANGLE_STRIP", expected: "TRIANGLE_STRIP"},
		{input: "VEC3", expected: "VEC3"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := Constant(tc.input); got != tc.expected {
				t.Errorf("Constant(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestCamelToScreamingSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "byteStride", expected: "BYTE_STRIDE"},
		{input: "URI", expected: "URI"},
		{input: "Scalar", expected: "SCALAR"},
		{input: "x", expected: "X"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := CamelToScreamingSnake(tc.input); got != tc.expected {
				t.Errorf("CamelToScreamingSnake(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}
