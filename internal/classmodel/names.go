// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package classmodel

import "strings"

// readerNamespaces maps namespaces of base types to the namespace holding
// their handlers. CesiumUtility types are parsed by CesiumJsonReader.
var readerNamespaces = map[string]string{
	"CesiumUtility": "CesiumJsonReader",
}

// splitQualified splits "Ns::Name" into its namespace and short name.
func splitQualified(name string) (ns, short string) {
	if i := strings.LastIndex(name, "::"); i >= 0 {
		return name[:i], name[i+2:]
	}
	return "", name
}

// IncludeFor returns the struct header for a type name:
// "Ns::Name" -> <Ns/Name.h>, "Name" -> "Name.h".
func IncludeFor(name string) string {
	ns, short := splitQualified(name)
	if ns != "" {
		return "<" + strings.ReplaceAll(ns, "::", "/") + "/" + short + ".h>"
	}
	return `"` + short + `.h"`
}

// ReaderIncludeFor returns the handler header for a type name.
func ReaderIncludeFor(name string) string {
	ns, short := splitQualified(name)
	if ns != "" {
		return "<" + strings.ReplaceAll(readerNamespace(ns), "::", "/") + "/" + short + "JsonHandler.h>"
	}
	return `"` + short + `JsonHandler.h"`
}

// ReaderName returns the handler class name for a type name.
func ReaderName(name string) string {
	ns, short := splitQualified(name)
	if ns != "" {
		return readerNamespace(ns) + "::" + short + "JsonHandler"
	}
	return short + "JsonHandler"
}

// ShortName strips any namespace qualification.
func ShortName(name string) string {
	_, short := splitQualified(name)
	return short
}

func readerNamespace(ns string) string {
	if mapped, ok := readerNamespaces[ns]; ok {
		return mapped
	}
	return ns
}
