// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cpp

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"slices"

	"github.com/albertocavalcante/classgen/config"
	"github.com/albertocavalcante/classgen/generator"
	"github.com/albertocavalcante/classgen/internal/classmodel"
	"github.com/albertocavalcante/classgen/internal/names"
)

// RegisterFile registers every extension handler with the reader context.
const RegisterFile = "registerExtensions.cpp"

type registration struct {
	owner, handler string
}

// Finish renders RegisterFile when the project configures extensions.
func (g *Generator) Finish(_ context.Context, models []*classmodel.ClassModel, cfg generator.Config) (*generator.Output, error) {
	if len(cfg.Project.Extensions) == 0 {
		return nil, nil
	}
	out := generator.NewOutput()
	out.AddReader(path.Join("generated", RegisterFile), RegisterExtensions(models, cfg.Project, cfg.Namespace))
	return out, nil
}

// RegisterExtensions renders the function that registers each extension
// handler for the classes it attaches to. An extension without attachTo
// targets registers for every extensible object.
func RegisterExtensions(models []*classmodel.ClassModel, project config.Config, namespace string) []byte {
	byExtension := make(map[string]*classmodel.ClassModel)
	for _, m := range models {
		if m.ExtensionName != "" {
			byExtension[m.ExtensionName] = m
		}
	}

	var regs []registration
	headers := []string{"<CesiumJsonReader/ExtensionReaderContext.h>"}
	for _, ext := range project.Extensions {
		m, ok := byExtension[ext.Name]
		if !ok {
			continue
		}
		headers = append(headers, `"`+m.HandlerName()+`.h"`)
		owners := ext.AttachTo
		if len(owners) == 0 {
			regs = append(regs, registration{owner: classmodel.DefaultBase, handler: m.HandlerName()})
			headers = append(headers, classmodel.IncludeFor(classmodel.DefaultBase))
			continue
		}
		for _, title := range owners {
			owner := names.TitleClassName(project, title)
			regs = append(regs, registration{owner: owner, handler: m.HandlerName()})
			headers = append(headers, `"`+namespace+"/"+owner+`.h"`)
		}
	}
	slices.Sort(headers)
	headers = slices.Compact(headers)

	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	writeIncludes(&buf, headers)
	fmt.Fprintf(&buf, "\nnamespace %s {\n", namespace)
	buf.WriteString("void registerExtensions(CesiumJsonReader::ExtensionReaderContext& context) {\n")
	buf.WriteString("  (void)context;\n")
	for _, r := range regs {
		fmt.Fprintf(&buf, "  context.registerExtension<%s, %s>();\n", r.owner, r.handler)
	}
	buf.WriteString("}\n")
	fmt.Fprintf(&buf, "} // namespace %s\n", namespace)
	return buf.Bytes()
}
