// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/albertocavalcante/classgen/internal/classmodel"
)

// Output contains generated files.
type Output struct {
	// StructFiles maps paths relative to the struct output root to content.
	StructFiles map[string][]byte

	// ReaderFiles maps paths relative to the reader output root to content.
	ReaderFiles map[string][]byte

	// Models lists the class models in generation order.
	Models []*classmodel.ClassModel
}

// NewOutput creates a new Output.
func NewOutput() *Output {
	return &Output{
		StructFiles: make(map[string][]byte),
		ReaderFiles: make(map[string][]byte),
	}
}

// AddStruct adds a struct-side file.
func (o *Output) AddStruct(name string, content []byte) {
	o.StructFiles[name] = content
}

// AddReader adds a reader-side file.
func (o *Output) AddReader(name string, content []byte) {
	o.ReaderFiles[name] = content
}

// AppendReader appends content to a reader-side file.
func (o *Output) AppendReader(name string, content []byte) {
	o.ReaderFiles[name] = append(o.ReaderFiles[name], content...)
}

// Merge adds the files and models of other. Reader files present in both
// are concatenated, which is how the shared handler file accumulates.
func (o *Output) Merge(other *Output) {
	if other == nil {
		return
	}
	maps.Copy(o.StructFiles, other.StructFiles)
	for _, name := range slices.Sorted(maps.Keys(other.ReaderFiles)) {
		o.AppendReader(name, other.ReaderFiles[name])
	}
	o.Models = append(o.Models, other.Models...)
}

// Files returns struct and reader files in one map. Struct paths live under
// "include/" and reader paths under "generated/", so they do not collide.
func (o *Output) Files() map[string][]byte {
	files := make(map[string][]byte, len(o.StructFiles)+len(o.ReaderFiles))
	maps.Copy(files, o.StructFiles)
	maps.Copy(files, o.ReaderFiles)
	return files
}

// Write writes struct files under structDir and reader files under
// readerDir, creating directories as needed.
func (o *Output) Write(structDir, readerDir string) error {
	if err := writeFiles(structDir, o.StructFiles); err != nil {
		return err
	}
	return writeFiles(readerDir, o.ReaderFiles)
}

func writeFiles(dir string, files map[string][]byte) error {
	for _, name := range slices.Sorted(maps.Keys(files)) {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
		if err := os.WriteFile(p, files[name], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", p, err)
		}
	}
	return nil
}
