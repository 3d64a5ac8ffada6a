// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cpp

import (
	"bytes"
	"cmp"
	"fmt"

	"github.com/albertocavalcante/classgen/internal/classmodel"
)

// Struct renders the data structure header of m.
func Struct(m *classmodel.ClassModel) []byte {
	var buf bytes.Buffer

	buf.WriteString(fileHeader)
	buf.WriteString("#pragma once\n\n")
	writeIncludes(&buf, m.Headers)

	fmt.Fprintf(&buf, "\nnamespace %s {\n", m.Namespace)
	writeDoc(&buf, "", cmp.Or(m.Description, m.Title), "")

	final := " final"
	if m.IsBaseClass || m.ToBeInherited {
		final = ""
	}
	fmt.Fprintf(&buf, "struct %s %s%s : public %s {\n", m.APIMacro, m.StructName(), final, m.Base)
	fmt.Fprintf(&buf, "  static inline constexpr const char* TypeName = %q;\n", m.Title)
	if m.ExtensionName != "" {
		fmt.Fprintf(&buf, "  static inline constexpr const char* ExtensionName = %q;\n", m.ExtensionName)
	}

	for _, local := range m.LocalTypes {
		buf.WriteByte('\n')
		writeIndented(&buf, "  ", local)
	}

	for _, p := range m.Materialized() {
		buf.WriteByte('\n')
		writeField(&buf, p)
	}

	if m.ToBeInherited {
		buf.WriteString("\nprivate:\n")
		writeDoc(&buf, "  ", fmt.Sprintf("This class is not meant to be instantiated directly. Use {@link %s} instead.", m.Name), "")
		fmt.Fprintf(&buf, "  %sSpec() = default;\n", m.Name)
		fmt.Fprintf(&buf, "  friend struct %s;\n", m.Name)
	}

	buf.WriteString("};\n")
	fmt.Fprintf(&buf, "} // namespace %s\n", m.Namespace)
	return buf.Bytes()
}

func writeField(buf *bytes.Buffer, p *classmodel.Property) {
	writeDoc(buf, "  ", cmp.Or(p.BriefDoc, p.Key), p.FullDoc)
	fmt.Fprintf(buf, "  %s %s", p.Type, p.Name)
	switch {
	case p.DefaultValue != nil:
		fmt.Fprintf(buf, " = %s", *p.DefaultValue)
	case p.NeedsInitialization:
		fmt.Fprintf(buf, " = %s()", p.Type)
	}
	buf.WriteString(";\n")
}
