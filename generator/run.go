// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/albertocavalcante/classgen/internal/classmodel"
	"github.com/albertocavalcante/classgen/internal/names"
	"github.com/albertocavalcante/classgen/internal/resolve"
	"github.com/albertocavalcante/classgen/internal/schemacache"
	"github.com/albertocavalcante/classgen/schema"
)

// DefaultTarget is the target used when RunOptions.Target is empty.
const DefaultTarget = "cpp"

// RunOptions configures Run.
type RunOptions struct {
	Config Config

	// Target names the registered target. Empty means DefaultTarget.
	Target string

	// Jobs bounds concurrent class generation. Zero means GOMAXPROCS.
	Jobs int

	// Resolver overrides the property resolver.
	Resolver classmodel.PropertyResolver

	Logger *slog.Logger
}

// Run generates every class reachable from roots and from the configured
// extension schemas, following property dependencies and base classes.
//
// Classes are processed in waves: each wave is generated concurrently, then
// merged in class-name order, and the dependencies of its models form the
// next wave. A class name is generated at most once. The result does not
// depend on scheduling.
func Run(ctx context.Context, cache *schemacache.Cache, roots []*schema.Schema, opts RunOptions) (*Output, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	resolver := opts.Resolver
	if resolver == nil {
		resolver = resolve.New(logger)
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	targetName := cmp.Or(opts.Target, DefaultTarget)
	target, err := Lookup(targetName)
	if err != nil {
		return nil, err
	}

	cfg := opts.Config
	cfg.Namespace = cfg.Project.NamespaceOr(cfg.Namespace)

	queue := slices.Clone(roots)
	for _, ext := range cfg.Project.Extensions {
		doc, err := cache.LoadFile(cfg.Project.ExtensionPath(ext))
		if err != nil {
			return nil, fmt.Errorf("extension %s: %w", ext.Name, err)
		}
		cfg.Project = cfg.Project.WithExtensionName(doc.Title, ext.Name)
		queue = append(queue, doc)
	}

	out := NewOutput()
	seen := make(map[string]bool)
	for len(queue) > 0 {
		var wave []*schema.Schema
		for _, s := range queue {
			name := names.ClassName(cfg.Project, s)
			if name == "" {
				return nil, fmt.Errorf("schema %s: missing title", s.Key())
			}
			if seen[name] {
				continue
			}
			seen[name] = true
			wave = append(wave, s)
		}
		queue = nil

		results := make([]*Output, len(wave))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(jobs)
		for i, s := range wave {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				logger.Info("generating class", "class", names.ClassName(cfg.Project, s), "target", targetName)

				m, err := classmodel.Build(cache.NewContext(), resolver, cfg.Project, s, cfg.Namespace)
				if err != nil {
					return err
				}
				o, err := target.Generate(gctx, m, cfg)
				if err != nil {
					return fmt.Errorf("class %s: %w", m.Name, err)
				}
				o.Models = []*classmodel.ClassModel{m}
				results[i] = o
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		slices.SortFunc(results, func(a, b *Output) int {
			return cmp.Compare(a.Models[0].Name, b.Models[0].Name)
		})
		for _, o := range results {
			out.Merge(o)
			m := o.Models[0]
			if m.BaseSchema != nil {
				queue = append(queue, m.BaseSchema)
			}
			queue = append(queue, m.Dependencies...)
		}
	}

	if f, ok := target.(Finisher); ok {
		o, err := f.Finish(ctx, out.Models, cfg)
		if err != nil {
			return nil, err
		}
		if o != nil {
			// Finish only adds run-level files.
			o.Models = nil
			out.Merge(o)
		}
	}

	logger.Debug("generation finished", "classes", len(out.Models), "files", len(out.StructFiles)+len(out.ReaderFiles))
	return out, nil
}
