// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package interp_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/classgen/config"
	"github.com/albertocavalcante/classgen/generator"
	"github.com/albertocavalcante/classgen/generators/cpp"
	"github.com/albertocavalcante/classgen/internal/classmodel"
	"github.com/albertocavalcante/classgen/internal/interp"
	"github.com/albertocavalcante/classgen/internal/schemacache"
	"github.com/albertocavalcante/classgen/internal/testutil"
	"github.com/albertocavalcante/classgen/jsonreader"
	"github.com/albertocavalcante/classgen/schema"
)

func TestMain(m *testing.M) {
	generator.Register(cpp.NewGenerator())
	os.Exit(m.Run())
}

var schemas = testutil.MapFS(map[string]string{
	"node.json": `{
		"title": "Node",
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"children": {"type": "array", "items": {"$ref": "node.json"}}
		}
	}`,
	"named.json": `{
		"title": "Named Object",
		"type": "object",
		"properties": {"name": {"type": "string"}}
	}`,
	"mesh.json": `{
		"title": "Mesh",
		"allOf": [{"$ref": "named.json"}],
		"properties": {
			"name": {},
			"count": {"type": "integer"},
			"tags": {"type": "object", "additionalProperties": {"type": "string"}},
			"weights": {"type": "array", "items": {"type": "number"}}
		}
	}`,
	"mesh_ext.json": `{
		"title": "Mesh Ext",
		"type": "object",
		"properties": {"flag": {"type": "boolean"}}
	}`,
})

const project = `
extensions:
  - name: EXT_mesh
    schema: mesh_ext.json
    attachTo: [Mesh]
`

func newRegistry(t *testing.T, roots ...string) *interp.Registry {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	cache, err := schemacache.New(schemacache.Options{FS: schemas, Logger: logger})
	require.NoError(t, err)

	cfg, err := config.Parse([]byte(project), ".yaml")
	require.NoError(t, err)

	var docs []*schema.Schema
	for _, root := range roots {
		doc, err := cache.LoadFile(root)
		require.NoError(t, err)
		docs = append(docs, doc)
	}

	out, err := generator.Run(context.Background(), cache, docs, generator.RunOptions{
		Config: generator.Config{Project: cfg},
		Logger: logger,
	})
	require.NoError(t, err)

	reg, err := interp.NewRegistry(out.Models, cfg, jsonreader.NewExtensionContext())
	require.NoError(t, err)
	return reg
}

func TestParseNode(t *testing.T) {
	reg := newRegistry(t, "node.json")

	r, err := reg.Parse("Node", []byte(`{"name":"root","children":[{"name":"leaf","children":[]}]}`))
	require.NoError(t, err)
	require.Empty(t, r.Errors)
	require.Empty(t, r.Warnings)

	root := r.Value
	assert.Equal(t, "Node", root.Type)
	assert.Equal(t, []string{"name", "children"}, root.Keys())
	assert.Equal(t, "root", root.Fields["name"])

	children, ok := root.Fields["children"].([]any)
	require.True(t, ok)
	require.Len(t, children, 1)

	leaf, ok := children[0].(*interp.Object)
	require.True(t, ok)
	assert.Equal(t, "Node", leaf.Type)
	assert.Equal(t, "leaf", leaf.Fields["name"])
	assert.Equal(t, []any{}, leaf.Fields["children"])
}

func TestParseInheritance(t *testing.T) {
	reg := newRegistry(t, "mesh.json")

	mesh, ok := reg.Class("Mesh")
	require.True(t, ok)
	require.NotNil(t, mesh.Base)
	assert.Equal(t, "NamedObject", mesh.Base.Name)
	assert.Equal(t, []string{"count", "tags", "weights"}, mesh.Keys())

	r, err := reg.Parse("Mesh", []byte(`{"name":"m","count":3,"tags":{"a":"x"},"weights":[1,0.5]}`))
	require.NoError(t, err)
	require.Empty(t, r.Errors)
	require.Empty(t, r.Warnings)

	assert.Equal(t, "Mesh", r.Value.Type)
	assert.Equal(t, "m", r.Value.Fields["name"])
	assert.Equal(t, int64(3), r.Value.Fields["count"])
	assert.Equal(t, map[string]any{"a": "x"}, r.Value.Fields["tags"])
	assert.Equal(t, []any{1.0, 0.5}, r.Value.Fields["weights"])
}

func TestParseExtension(t *testing.T) {
	reg := newRegistry(t, "mesh.json")

	r, err := reg.Parse("Mesh", []byte(`{"count":1,"extensions":{"EXT_mesh":{"flag":true},"EXT_other":{"x":1}}}`))
	require.NoError(t, err)
	require.Empty(t, r.Errors)
	require.Empty(t, r.Warnings)

	ext, ok := r.Value.Extension("EXT_mesh")
	require.True(t, ok)
	obj, ok := ext.(*interp.Object)
	require.True(t, ok)
	assert.Equal(t, "MeshExt", obj.Type)
	assert.Equal(t, true, obj.Fields["flag"])

	other, ok := r.Value.Extension("EXT_other")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"x": int64(1)}, other)
}

func TestParseExtensionOnOtherOwner(t *testing.T) {
	reg := newRegistry(t, "mesh.json")

	r, err := reg.Parse("NamedObject", []byte(`{"extensions":{"EXT_mesh":{"flag":true}}}`))
	require.NoError(t, err)
	require.Empty(t, r.Errors)

	ext, ok := r.Value.Extension("EXT_mesh")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"flag": true}, ext)
}

func TestParseUnknownKey(t *testing.T) {
	reg := newRegistry(t, "node.json")

	r, err := reg.Parse("Node", []byte(`{"name":"root","bogus":1,"children":[{"oops":true}]}`))
	require.NoError(t, err)
	require.Empty(t, r.Errors)

	assert.Equal(t, []string{
		`The property "bogus" is not defined on Node and has been ignored. (at bogus)`,
		`The property "oops" is not defined on Node and has been ignored. (at children[0].oops)`,
	}, r.Warnings)
	assert.NotContains(t, r.Value.Fields, "bogus")
}

func TestParseWrongType(t *testing.T) {
	reg := newRegistry(t, "mesh.json")

	r, err := reg.Parse("Mesh", []byte(`{"count":"three"}`))
	require.NoError(t, err)
	require.Empty(t, r.Errors)
	require.Len(t, r.Warnings, 1)
	assert.Equal(t, "A string value is not allowed and has been ignored. (at count)", r.Warnings[0])
}

func TestParseUnknownClass(t *testing.T) {
	reg := newRegistry(t, "node.json")
	_, err := reg.Parse("Missing", []byte(`{}`))
	assert.ErrorIs(t, err, interp.ErrUnknownClass)
}

func TestObjectMarshalJSON(t *testing.T) {
	reg := newRegistry(t, "node.json")

	input := `{"name":"root","children":[{"name":"leaf","children":[]}],"extras":{"k":"v"}}`
	r, err := reg.Parse("Node", []byte(input))
	require.NoError(t, err)
	require.Empty(t, r.Errors)

	got, err := json.Marshal(r.Value)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewRegistryErrors(t *testing.T) {
	tests := []struct {
		name  string
		model *classmodel.ClassModel
	}{
		{
			name:  "unknown base",
			model: &classmodel.ClassModel{Name: "A", Title: "A", Base: "Missing"},
		},
		{
			name: "unknown field class",
			model: &classmodel.ClassModel{
				Name:  "A",
				Title: "A",
				Base:  classmodel.DefaultBase,
				Properties: []*classmodel.Property{{
					Key:   "b",
					Name:  "b",
					Type:  "B",
					Shape: &classmodel.Shape{Kind: classmodel.ShapeArray, Elem: &classmodel.Shape{Kind: classmodel.ShapeClass, Class: "B"}},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := interp.NewRegistry([]*classmodel.ClassModel{tt.model}, config.Config{}, nil)
			assert.ErrorIs(t, err, interp.ErrUnknownClass)
		})
	}
}
