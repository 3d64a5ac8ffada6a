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
)

const fileHeader = "// This file was generated by classgen.\n// DO NOT EDIT THIS FILE!\n"

func writeIncludes(buf *bytes.Buffer, headers []string) {
	for _, h := range headers {
		fmt.Fprintf(buf, "#include %s\n", h)
	}
}

// writeDoc writes a Doxygen block with a brief line and an optional
// extended paragraph.
func writeDoc(buf *bytes.Buffer, indent, brief, full string) {
	fmt.Fprintf(buf, "%s/**\n", indent)
	fmt.Fprintf(buf, "%s * @brief %s\n", indent, oneLine(brief))
	if full != "" {
		fmt.Fprintf(buf, "%s *\n", indent)
		for line := range strings.SplitSeq(full, "\n") {
			writeTrimmed(buf, indent+" * "+line)
		}
	}
	fmt.Fprintf(buf, "%s */\n", indent)
}

// writeIndented writes a multi-line block, indenting every non-empty line.
func writeIndented(buf *bytes.Buffer, indent, text string) {
	for line := range strings.SplitSeq(strings.TrimRight(text, "\n"), "\n") {
		if line == "" {
			buf.WriteByte('\n')
			continue
		}
		writeTrimmed(buf, indent+line)
	}
}

func writeTrimmed(buf *bytes.Buffer, line string) {
	buf.WriteString(strings.TrimRight(line, " "))
	buf.WriteByte('\n')
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
