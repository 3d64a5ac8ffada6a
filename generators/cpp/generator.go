// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package cpp renders class models as C++ structs and CesiumJsonReader
// streaming handlers.
//
// The renderers are pure functions of a finished ClassModel: every decision
// about types, headers and dependencies is made when the model is built.
package cpp

import (
	"context"
	"path"

	"github.com/albertocavalcante/classgen/generator"
	"github.com/albertocavalcante/classgen/internal/classmodel"
)

// SharedHandlerFile collects every handler implementation when
// generator.Config.OneHandlerFile is set.
const SharedHandlerFile = "GeneratedJsonHandlers.cpp"

// Generator implements [generator.Target] for C++.
type Generator struct{}

// NewGenerator creates a new C++ target.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this target.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "cpp",
		Version:        "1.0.0",
		Description:    "Generate C++ structs and streaming JSON handlers",
		FileExtensions: []string{".h", ".cpp"},
		URL:            "https://github.com/albertocavalcante/classgen",
	}
}

// Generate renders the struct header, handler header and handler source of m.
func (g *Generator) Generate(_ context.Context, m *classmodel.ClassModel, cfg generator.Config) (*generator.Output, error) {
	out := generator.NewOutput()
	out.AddStruct(StructPath(m), Struct(m))
	out.AddReader(path.Join("generated", m.HandlerName()+".h"), HandlerDecl(m))

	impl := HandlerImpl(m)
	if cfg.OneHandlerFile {
		out.AppendReader(path.Join("generated", cfg.Option("handlerFile", SharedHandlerFile)), impl)
	} else {
		out.AddReader(path.Join("generated", m.HandlerName()+".cpp"), impl)
	}
	return out, nil
}

// StructPath is the output path of m's struct header.
func StructPath(m *classmodel.ClassModel) string {
	return path.Join("include", m.Namespace, m.HeaderName())
}
