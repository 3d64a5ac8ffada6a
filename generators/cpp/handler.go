// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cpp

import (
	"bytes"
	"fmt"

	"github.com/albertocavalcante/classgen/internal/classmodel"
)

const (
	contextType      = "CesiumJsonReader::ExtensionReaderContext"
	extensionHandler = "CesiumJsonReader::IExtensionJsonHandler"
)

// passThrough lists the handler events an extension handler forwards to its
// base, as {signature, call} pairs.
var passThrough = [][2]string{
	{"IJsonHandler* readNull()", "readNull()"},
	{"IJsonHandler* readBool(bool b)", "readBool(b)"},
	{"IJsonHandler* readInt32(int32_t i)", "readInt32(i)"},
	{"IJsonHandler* readUint32(uint32_t i)", "readUint32(i)"},
	{"IJsonHandler* readInt64(int64_t i)", "readInt64(i)"},
	{"IJsonHandler* readUint64(uint64_t i)", "readUint64(i)"},
	{"IJsonHandler* readDouble(double d)", "readDouble(d)"},
	{"IJsonHandler* readString(const std::string_view& str)", "readString(str)"},
	{"IJsonHandler* readObjectStart()", "readObjectStart()"},
	{"IJsonHandler* readObjectEnd()", "readObjectEnd()"},
	{"IJsonHandler* readArrayStart()", "readArrayStart()"},
	{"IJsonHandler* readArrayEnd()", "readArrayEnd()"},
}

// HandlerDecl renders the streaming handler declaration of m.
func HandlerDecl(m *classmodel.ClassModel) []byte {
	var buf bytes.Buffer
	name := m.Name
	handler := m.HandlerName()
	base := classmodel.ReaderName(m.Base)

	buf.WriteString(fileHeader)
	buf.WriteString("#pragma once\n\n")
	writeIncludes(&buf, m.ReaderHeaders)

	buf.WriteString("\nnamespace CesiumJsonReader {\nclass ExtensionReaderContext;\n}\n")
	fmt.Fprintf(&buf, "\nnamespace %s {\n", m.Namespace)

	fmt.Fprintf(&buf, "class %s : public %s", handler, base)
	if m.ExtensionName != "" {
		fmt.Fprintf(&buf, ", public %s", extensionHandler)
	}
	buf.WriteString(" {\npublic:\n")
	fmt.Fprintf(&buf, "  using ValueType = %s;\n", name)
	if m.ExtensionName != "" {
		fmt.Fprintf(&buf, "\n  static inline constexpr const char* ExtensionName = %q;\n", m.ExtensionName)
	}

	fmt.Fprintf(&buf, "\n  %s(const %s& context) noexcept;\n", handler, contextType)
	fmt.Fprintf(&buf, "  void reset(IJsonHandler* pParentHandler, %s* pObject);\n", name)
	buf.WriteString("\n  virtual IJsonHandler* readObjectKey(const std::string_view& str) override;\n")

	if m.ExtensionName != "" {
		buf.WriteString("\n  virtual void reset(IJsonHandler* pParentHandler, CesiumUtility::ExtensibleObject& o, const std::string_view& extensionName) override;\n")
		for _, pt := range passThrough {
			fmt.Fprintf(&buf, "\n  virtual %s override {\n", pt[0])
			fmt.Fprintf(&buf, "    return %s::%s;\n  }\n", base, pt[1])
		}
		buf.WriteString("\n  virtual void reportWarning(const std::string& warning, std::vector<std::string>&& context = std::vector<std::string>()) override {\n")
		fmt.Fprintf(&buf, "    %s::reportWarning(warning, std::move(context));\n  }\n", base)
	}

	buf.WriteString("\nprotected:\n")
	fmt.Fprintf(&buf, "  IJsonHandler* readObjectKey%s(const std::string& objectType, const std::string_view& str, %s& o);\n", name, name)

	buf.WriteString("\nprivate:\n")
	for _, local := range m.ReaderLocalTypes {
		writeIndented(&buf, "  ", local)
		buf.WriteByte('\n')
	}
	fmt.Fprintf(&buf, "  %s* _pObject = nullptr;\n", name)
	for _, p := range m.Materialized() {
		fmt.Fprintf(&buf, "  %s _%s;\n", p.ReaderType, p.Name)
	}

	buf.WriteString("};\n")
	fmt.Fprintf(&buf, "} // namespace %s\n", m.Namespace)
	return buf.Bytes()
}
