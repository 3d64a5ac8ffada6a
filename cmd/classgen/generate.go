// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/classgen/config"
	"github.com/albertocavalcante/classgen/generator"
	"github.com/albertocavalcante/classgen/internal/schemacache"
	"github.com/albertocavalcante/classgen/schema"
)

// sourceFlags are shared by every command that reads schemas.
type sourceFlags struct {
	schemas    []string
	configPath string
	namespace  string
	jobs       int
	target     string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.schemas, "schema", "s", nil, "root schema file (repeatable)")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "project config file (.yaml, .yml or .json)")
	cmd.Flags().StringVarP(&f.namespace, "namespace", "n", "", "C++ namespace (overrides the config file)")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", 0, "classes generated concurrently (default: GOMAXPROCS)")
	cmd.Flags().StringVarP(&f.target, "target", "t", generator.DefaultTarget, "output target")
	_ = cmd.MarkFlagRequired("schema")
}

// generation is the result of sourceFlags.run.
type generation struct {
	out     *generator.Output
	project config.Config
	roots   []*schema.Schema
}

// run loads the config and the root schemas and generates every class
// they reach.
func (f *sourceFlags) run(ctx context.Context, cfg generator.Config) (*generation, error) {
	if len(f.schemas) == 0 {
		return nil, errors.New("at least one --schema is required")
	}

	project := config.Config{}
	if f.configPath != "" {
		var err error
		project, err = config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
	}
	if f.namespace != "" {
		project = project.WithNamespace(f.namespace)
	}
	cfg.Project = project

	logger := slog.Default()
	cache, err := schemacache.New(schemacache.Options{Logger: logger})
	if err != nil {
		return nil, err
	}

	var roots []*schema.Schema
	for _, p := range f.schemas {
		doc, err := cache.LoadFile(p)
		if err != nil {
			return nil, err
		}
		roots = append(roots, doc)
	}

	start := time.Now()
	out, err := generator.Run(ctx, cache, roots, generator.RunOptions{
		Config: cfg,
		Target: f.target,
		Jobs:   f.jobs,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("generation finished", "classes", len(out.Models), "documents", cache.Len(), "elapsed", time.Since(start))
	return &generation{out: out, project: project, roots: roots}, nil
}

type generateFlags struct {
	sourceFlags
	output         string
	readerOutput   string
	oneHandlerFile bool
	dryRun         bool
}

var genFlags generateFlags

var generateCmd = &cobra.Command{
	Use:   "generate --schema <root.json>... [flags]",
	Short: "Generate structs and JSON handlers",
	Long: `Generate C++ structs and CesiumJsonReader handlers for every class
reachable from the root schemas and the extensions listed in the config file.

Structs are written to <output>/include/<namespace>/ and handlers to
<reader-output>/generated/.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context(), cmd.OutOrStdout(), &genFlags)
	},
}

func init() {
	genFlags.register(generateCmd)
	generateCmd.Flags().StringVarP(&genFlags.output, "output", "o", ".", "struct output directory")
	generateCmd.Flags().StringVar(&genFlags.readerOutput, "reader-output", "", "handler output directory (default: --output)")
	generateCmd.Flags().BoolVar(&genFlags.oneHandlerFile, "one-handler-file", false, "append all handler implementations to one file")
	generateCmd.Flags().BoolVar(&genFlags.dryRun, "dry-run", false, "print files to stdout without writing")
}

func runGenerate(ctx context.Context, stdout io.Writer, f *generateFlags) error {
	g, err := f.run(ctx, generator.Config{OneHandlerFile: f.oneHandlerFile})
	if err != nil {
		return err
	}
	out := g.out

	if f.dryRun {
		files := out.Files()
		for _, name := range slices.Sorted(maps.Keys(files)) {
			fmt.Fprintf(stdout, "// ---- %s\n%s\n", name, files[name])
		}
		return nil
	}

	readerDir := f.readerOutput
	if readerDir == "" {
		readerDir = f.output
	}
	if err := out.Write(f.output, readerDir); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	slog.Info("wrote files", "classes", len(out.Models), "files", len(out.Files()))
	return nil
}
