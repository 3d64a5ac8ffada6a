// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const yamlConfig = `
namespace: CesiumGltf
apiMacro: CESIUMGLTF_API
classes:
  glTF:
    overrideName: Model
  Accessor:
    toBeInherited: true
  Texture Info:
    isBaseClass: true
extensions:
  - name: KHR_texture_transform
    schema: extensions/KHR_texture_transform/textureInfo.schema.json
    attachTo: [textureInfo]
  - name: EXT_anywhere
    schema: /abs/anywhere.json
`

const jsonConfig = `{
  "namespace": "CesiumGltf",
  "apiMacro": "CESIUMGLTF_API",
  "classes": {
    "glTF": {"overrideName": "Model"},
    "Accessor": {"toBeInherited": true},
    "Texture Info": {"isBaseClass": true}
  },
  "extensions": [
    {"name": "KHR_texture_transform", "schema": "extensions/KHR_texture_transform/textureInfo.schema.json", "attachTo": ["textureInfo"]},
    {"name": "EXT_anywhere", "schema": "/abs/anywhere.json"}
  ]
}`

var wantConfig = Config{
	Namespace: "CesiumGltf",
	APIMacro:  "CESIUMGLTF_API",
	Classes: map[string]ClassOptions{
		"glTF":         {OverrideName: "Model"},
		"Accessor":     {ToBeInherited: true},
		"Texture Info": {IsBaseClass: true},
	},
	Extensions: []Extension{
		{
			Name:     "KHR_texture_transform",
			Schema:   "extensions/KHR_texture_transform/textureInfo.schema.json",
			AttachTo: []string{"textureInfo"},
		},
		{Name: "EXT_anywhere", Schema: "/abs/anywhere.json"},
	},
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
	}{
		{name: "yaml", data: yamlConfig, ext: ".yaml"},
		{name: "yml upper", data: yamlConfig, ext: ".YML"},
		{name: "json", data: jsonConfig, ext: ".json"},
		{name: "no extension", data: jsonConfig, ext: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse([]byte(tc.data), tc.ext)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if diff := cmp.Diff(wantConfig, got, cmpopts.IgnoreUnexported(Config{})); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
	}{
		{name: "bad json", data: `{`, ext: ".json"},
		{name: "bad yaml", data: "classes: [", ext: ".yaml"},
		{name: "extension without name", data: `{"extensions": [{"schema": "a.json"}]}`, ext: ".json"},
		{name: "extension without schema", data: "extensions:\n  - name: EXT_a\n", ext: ".yml"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data), tc.ext); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "classgen.yaml")
	if err := os.WriteFile(path, []byte(yamlConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := filepath.Join(dir, "extensions", "KHR_texture_transform", "textureInfo.schema.json")
	if got := cfg.ExtensionPath(cfg.Extensions[0]); got != want {
		t.Errorf("ExtensionPath(relative) = %q, want %q", got, want)
	}
	if got := cfg.ExtensionPath(cfg.Extensions[1]); got != "/abs/anywhere.json" {
		t.Errorf("ExtensionPath(absolute) = %q", got)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) succeeded")
	}
}

func TestExtensionPathWithoutFile(t *testing.T) {
	var cfg Config
	ext := Extension{Name: "EXT_a", Schema: "ext/a.json"}
	if got := cfg.ExtensionPath(ext); got != "ext/a.json" {
		t.Errorf("ExtensionPath() = %q, want ext/a.json", got)
	}
}

func TestNamespaceAndAPI(t *testing.T) {
	var empty Config
	if got := empty.NamespaceOr(""); got != DefaultNamespace {
		t.Errorf("NamespaceOr(\"\") = %q, want %q", got, DefaultNamespace)
	}
	if got := empty.NamespaceOr("Tiles"); got != "Tiles" {
		t.Errorf("NamespaceOr(Tiles) = %q", got)
	}
	if got := empty.API("Cesium3DTiles"); got != "CESIUM3DTILES_API" {
		t.Errorf("API() = %q", got)
	}

	ns := empty.WithNamespace("Gltf")
	if empty.Namespace != "" {
		t.Error("WithNamespace modified the receiver")
	}
	if got := ns.NamespaceOr("Tiles"); got != "Gltf" {
		t.Errorf("NamespaceOr after WithNamespace = %q", got)
	}
	if got := wantConfig.API("CesiumGltf"); got != "CESIUMGLTF_API" {
		t.Errorf("API() with macro = %q", got)
	}
}

func TestWithExtensionName(t *testing.T) {
	base := Config{Classes: map[string]ClassOptions{"Mesh": {IsBaseClass: true}}}

	got := base.WithExtensionName("Mesh", "EXT_mesh").WithExtensionName("Node", "EXT_node")

	if base.Class("Mesh").ExtensionName != "" {
		t.Error("WithExtensionName modified the receiver")
	}
	want := map[string]ClassOptions{
		"Mesh": {IsBaseClass: true, ExtensionName: "EXT_mesh"},
		"Node": {ExtensionName: "EXT_node"},
	}
	if diff := cmp.Diff(want, got.Classes); diff != "" {
		t.Errorf("classes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Mesh", "Node"}, got.Titles()); diff != "" {
		t.Errorf("Titles() mismatch (-want +got):\n%s", diff)
	}
	if got := (Config{}).Class("Anything"); got != (ClassOptions{}) {
		t.Errorf("Class(unknown) = %+v", got)
	}
}
