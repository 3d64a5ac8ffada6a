// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines output targets and drives class generation.
package generator

import (
	"context"

	"github.com/albertocavalcante/classgen/internal/classmodel"
)

// Target is the interface that all output targets must implement.
type Target interface {
	// Metadata returns information about this target.
	Metadata() Metadata

	// Generate renders the files for one class.
	Generate(ctx context.Context, m *classmodel.ClassModel, cfg Config) (*Output, error)
}

// Finisher is implemented by targets that emit run-level files once every
// class has been generated.
type Finisher interface {
	Finish(ctx context.Context, models []*classmodel.ClassModel, cfg Config) (*Output, error)
}

// Metadata describes a target.
type Metadata struct {
	// Name is the short identifier (e.g., "cpp").
	Name string

	// Version is the target version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtensions lists typical output extensions (e.g., [".h", ".cpp"]).
	FileExtensions []string

	// URL is the homepage/documentation URL (optional).
	URL string
}
