// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cpp

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/albertocavalcante/classgen/internal/classmodel"
)

// HandlerImpl renders the handler implementation of m.
func HandlerImpl(m *classmodel.ClassModel) []byte {
	var buf bytes.Buffer
	name := m.Name
	handler := m.HandlerName()
	base := classmodel.ReaderName(m.Base)

	buf.WriteString(fileHeader)
	fmt.Fprintf(&buf, "#include \"%s.h\"\n", handler)
	fmt.Fprintf(&buf, "#include \"%s/%s.h\"\n", m.Namespace, name)
	writeIncludes(&buf, m.ReaderHeadersImpl)

	fmt.Fprintf(&buf, "\nnamespace %s {\n\n", m.Namespace)

	// Only handlers of class-valued fields need the extension context.
	inits := []string{base + "(context)"}
	for _, p := range m.Materialized() {
		if len(p.Schemas) > 0 {
			inits = append(inits, "_"+p.Name+"(context)")
		}
	}
	fmt.Fprintf(&buf, "%s::%s(const %s& context) noexcept\n", handler, handler, contextType)
	fmt.Fprintf(&buf, "    : %s {}\n\n", strings.Join(inits, ", "))

	fmt.Fprintf(&buf, "void %s::reset(CesiumJsonReader::IJsonHandler* pParentHandler, %s* pObject) {\n", handler, name)
	fmt.Fprintf(&buf, "  %s::reset(pParentHandler, pObject);\n", base)
	buf.WriteString("  this->_pObject = pObject;\n}\n\n")

	fmt.Fprintf(&buf, "CesiumJsonReader::IJsonHandler* %s::readObjectKey(const std::string_view& str) {\n", handler)
	buf.WriteString("  assert(this->_pObject);\n")
	fmt.Fprintf(&buf, "  return this->readObjectKey%s(%s::TypeName, str, *this->_pObject);\n}\n\n", name, name)

	if m.ExtensionName != "" {
		fmt.Fprintf(&buf, "void %s::reset(CesiumJsonReader::IJsonHandler* pParentHandler, CesiumUtility::ExtensibleObject& o, const std::string_view& extensionName) {\n", handler)
		fmt.Fprintf(&buf, "  std::any& value = o.extensions.emplace(extensionName, %s()).first->second;\n", name)
		fmt.Fprintf(&buf, "  this->reset(pParentHandler, &std::any_cast<%s&>(value));\n}\n\n", name)
	}

	fmt.Fprintf(&buf, "CesiumJsonReader::IJsonHandler* %s::readObjectKey%s(const std::string& objectType, const std::string_view& str, %s& o) {\n", handler, name, name)
	buf.WriteString("  using namespace std::string_literals;\n\n")
	for _, p := range m.Materialized() {
		fmt.Fprintf(&buf, "  if (%qs == str) return property(%q, this->_%s, o.%s);\n", p.Key, p.Key, p.Name, p.Name)
	}
	if len(m.Materialized()) > 0 {
		buf.WriteByte('\n')
	}
	fmt.Fprintf(&buf, "  return this->readObjectKey%s(objectType, str, o);\n}\n", classmodel.ShortName(m.Base))

	for _, local := range m.ReaderLocalTypesImpl {
		buf.WriteByte('\n')
		writeIndented(&buf, "", local)
	}

	fmt.Fprintf(&buf, "\n} // namespace %s\n", m.Namespace)
	return buf.Bytes()
}
