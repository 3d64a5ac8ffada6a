// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cpp

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/classgen/generator"
	"github.com/albertocavalcante/classgen/internal/classmodel"
	"github.com/albertocavalcante/classgen/internal/testutil"
)

var meshFiles = testutil.MapFS(map[string]string{
	"named.json": `{
		"title": "Named Object",
		"type": "object",
		"properties": {"name": {"type": "string", "description": "The user-defined name."}}
	}`,
	"mesh.json": `{
		"title": "Mesh",
		"description": "A set of primitives.",
		"allOf": [{"$ref": "named.json"}],
		"required": ["count"],
		"properties": {
			"name": {},
			"count": {"type": "integer"},
			"weights": {"type": "array", "items": {"type": "number"}}
		}
	}`,
	"ext/mesh_ext.json": `{
		"title": "Mesh Ext",
		"type": "object",
		"properties": {"flag": {"type": "boolean", "default": false}}
	}`,
})

const meshConfig = `
namespace: Ns
classes:
  Named Object:
    isBaseClass: true
  Mesh:
    toBeInherited: true
extensions:
  - name: EXT_mesh
    schema: ext/mesh_ext.json
    attachTo: [Mesh]
`

func generateMesh(t *testing.T, flags ...string) *generator.Output {
	t.Helper()
	out, err := generate(meshFiles, []byte(meshConfig), []string{"mesh.json"}, flags...)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return out
}

func assertContains(t *testing.T, file string, content []byte, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(string(content), want) {
			t.Errorf("%s missing %q:\n%s", file, want, content)
		}
	}
}

func TestGenerateClosure(t *testing.T) {
	out := generateMesh(t)

	var names []string
	for _, m := range out.Models {
		names = append(names, m.Name)
	}
	// Roots and extensions first, then the base reached through allOf.
	if diff := cmp.Diff([]string{"Mesh", "MeshExt", "NamedObject"}, names); diff != "" {
		t.Errorf("models mismatch (-want +got):\n%s", diff)
	}

	want := []string{
		"include/Ns/MeshSpec.h",
		"include/Ns/MeshExt.h",
		"include/Ns/NamedObject.h",
		"generated/MeshJsonHandler.h",
		"generated/MeshJsonHandler.cpp",
		"generated/MeshExtJsonHandler.h",
		"generated/MeshExtJsonHandler.cpp",
		"generated/NamedObjectJsonHandler.h",
		"generated/NamedObjectJsonHandler.cpp",
		"generated/registerExtensions.cpp",
	}
	files := out.Files()
	for _, name := range want {
		if _, ok := files[name]; !ok {
			t.Errorf("missing %s", name)
		}
	}
	if len(files) != len(want) {
		t.Errorf("got %d files, want %d", len(files), len(want))
	}
}

func TestStructToBeInherited(t *testing.T) {
	out := generateMesh(t)
	assertContains(t, "MeshSpec.h", out.StructFiles["include/Ns/MeshSpec.h"],
		`#include "NamedObject.h"`,
		"struct NS_API MeshSpec : public NamedObject {",
		`static inline constexpr const char* TypeName = "Mesh";`,
		"  int64_t count = int64_t();\n",
		"  std::vector<double> weights;\n",
		"\nprivate:\n",
		"   * @brief This class is not meant to be instantiated directly. Use {@link Mesh} instead.\n",
		"  MeshSpec() = default;\n  friend struct Mesh;\n",
	)
	if strings.Contains(string(out.StructFiles["include/Ns/MeshSpec.h"]), " name;") {
		t.Error("property defined by the base is redeclared")
	}

	assertContains(t, "NamedObject.h", out.StructFiles["include/Ns/NamedObject.h"],
		"struct NS_API NamedObject : public CesiumUtility::ExtensibleObject {",
		`static inline constexpr const char* TypeName = "Named Object";`,
	)
}

func TestHandlerInheritance(t *testing.T) {
	out := generateMesh(t)
	assertContains(t, "MeshJsonHandler.h", out.ReaderFiles["generated/MeshJsonHandler.h"],
		`#include "NamedObjectJsonHandler.h"`,
		`#include "Ns/Mesh.h"`,
		"class MeshJsonHandler : public NamedObjectJsonHandler {",
		"  using ValueType = Mesh;\n",
		"  CesiumJsonReader::IntegerJsonHandler<int64_t> _count;\n",
	)
	assertContains(t, "MeshJsonHandler.cpp", out.ReaderFiles["generated/MeshJsonHandler.cpp"],
		"    : NamedObjectJsonHandler(context) {}\n",
		`  if ("count"s == str) return property("count", this->_count, o.count);`,
		"  return this->readObjectKeyNamedObject(objectType, str, o);\n",
	)
}

func TestHandlerExtension(t *testing.T) {
	out := generateMesh(t)

	decl := out.ReaderFiles["generated/MeshExtJsonHandler.h"]
	assertContains(t, "MeshExtJsonHandler.h", decl,
		"#include <CesiumJsonReader/IExtensionJsonHandler.h>",
		"class MeshExtJsonHandler : public CesiumJsonReader::ExtensibleObjectJsonHandler, public CesiumJsonReader::IExtensionJsonHandler {",
		`  static inline constexpr const char* ExtensionName = "EXT_mesh";`,
		"const std::string_view& extensionName) override;",
		"    return CesiumJsonReader::ExtensibleObjectJsonHandler::readNull();\n",
		"    return CesiumJsonReader::ExtensibleObjectJsonHandler::readString(str);\n",
		"    CesiumJsonReader::ExtensibleObjectJsonHandler::reportWarning(warning, std::move(context));\n",
	)
	if n := strings.Count(string(decl), " override {"); n != len(passThrough)+1 {
		t.Errorf("got %d pass-through overrides, want %d", n, len(passThrough)+1)
	}

	assertContains(t, "MeshExtJsonHandler.cpp", out.ReaderFiles["generated/MeshExtJsonHandler.cpp"],
		"#include <any>",
		"  std::any& value = o.extensions.emplace(extensionName, MeshExt()).first->second;\n",
		"  this->reset(pParentHandler, &std::any_cast<MeshExt&>(value));\n",
	)
	assertContains(t, "MeshExt.h", out.StructFiles["include/Ns/MeshExt.h"],
		`  static inline constexpr const char* ExtensionName = "EXT_mesh";`,
		"  bool flag = false;\n",
	)
}

func TestRegisterExtensions(t *testing.T) {
	out := generateMesh(t)
	assertContains(t, RegisterFile, out.ReaderFiles["generated/"+RegisterFile],
		`#include "MeshExtJsonHandler.h"`,
		`#include "Ns/Mesh.h"`,
		"#include <CesiumJsonReader/ExtensionReaderContext.h>",
		"void registerExtensions(CesiumJsonReader::ExtensionReaderContext& context) {",
		"  context.registerExtension<Mesh, MeshExtJsonHandler>();\n",
	)
}

func TestOneHandlerFile(t *testing.T) {
	out := generateMesh(t, "one-handler-file")

	shared, ok := out.ReaderFiles["generated/"+SharedHandlerFile]
	if !ok {
		t.Fatalf("missing %s", SharedHandlerFile)
	}
	if _, ok := out.ReaderFiles["generated/MeshJsonHandler.cpp"]; ok {
		t.Error("per-class source written alongside the shared file")
	}

	// Appended in merge order.
	text := string(shared)
	mesh := strings.Index(text, "MeshJsonHandler::MeshJsonHandler(")
	ext := strings.Index(text, "MeshExtJsonHandler::MeshExtJsonHandler(")
	base := strings.Index(text, "NamedObjectJsonHandler::NamedObjectJsonHandler(")
	if mesh < 0 || ext < 0 || base < 0 || !(mesh < ext && ext < base) {
		t.Errorf("handler order = %d, %d, %d; want increasing", mesh, ext, base)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first := generateMesh(t, "one-handler-file")
	for range 5 {
		again := generateMesh(t, "one-handler-file")
		if diff := cmp.Diff(first.Files(), again.Files()); diff != "" {
			t.Fatalf("output differs between runs (-first +again):\n%s", diff)
		}
	}
}

func TestStructDocs(t *testing.T) {
	full := "Line one.\n\nLine two."
	m := &classmodel.ClassModel{
		Name:      "Thing",
		Title:     "Thing",
		Namespace: "Ns",
		APIMacro:  "NS_API",
		Base:      classmodel.DefaultBase,
		Properties: []*classmodel.Property{
			{Key: "a", Name: "a", Type: "double", FullDoc: full},
			{Key: "hidden", Name: "hidden"},
		},
	}
	got := string(Struct(m))

	want := "  /**\n   * @brief a\n   *\n   * Line one.\n   *\n   * Line two.\n   */\n  double a;\n"
	if !strings.Contains(got, want) {
		t.Errorf("field block mismatch, got:\n%s", got)
	}
	if strings.Contains(got, "hidden") {
		t.Error("unmaterialized property emitted")
	}
	if !strings.Contains(got, "/**\n * @brief Thing\n */\nstruct NS_API Thing final") {
		t.Errorf("class doc should fall back to the title, got:\n%s", got)
	}
}
