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
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/albertocavalcante/classgen/generator"
	"github.com/albertocavalcante/classgen/internal/interp"
	"github.com/albertocavalcante/classgen/internal/names"
	"github.com/albertocavalcante/classgen/jsonreader"
)

type parseFlags struct {
	sourceFlags
	class      string
	jsonOnly   []string
	disabled   []string
	failOnWarn bool
}

var parFlags parseFlags

var parseCmd = &cobra.Command{
	Use:   "parse --schema <root.json> [flags] <document.json>",
	Short: "Parse a document with handlers built from the schemas",
	Long: `Parse a JSON document as an instance of a generated class without
compiling any C++. Handlers follow the same rules as the generated readers:
unknown keys are reported and skipped, extensions are parsed by the class
registered for them or kept as JSON.

Warnings go to stderr and the parsed object to stdout as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), &parFlags, args[0])
	},
}

func init() {
	parFlags.register(parseCmd)
	parseCmd.Flags().StringVar(&parFlags.class, "class", "", "class to parse as (default: the class of the first --schema)")
	parseCmd.Flags().StringSliceVar(&parFlags.jsonOnly, "json-only", nil, "extensions to keep as plain JSON")
	parseCmd.Flags().StringSliceVar(&parFlags.disabled, "disable", nil, "extensions to skip")
	parseCmd.Flags().BoolVar(&parFlags.failOnWarn, "strict", false, "fail when the document produces warnings")
}

func runParse(ctx context.Context, stdout, stderr io.Writer, f *parseFlags, document string) error {
	data, err := os.ReadFile(document)
	if err != nil {
		return err
	}

	g, err := f.run(ctx, generator.Config{})
	if err != nil {
		return err
	}

	extensions := jsonreader.NewExtensionContext()
	for _, name := range f.jsonOnly {
		extensions.SetState(name, jsonreader.JSONOnly)
	}
	for _, name := range f.disabled {
		extensions.SetState(name, jsonreader.Disabled)
	}

	reg, err := interp.NewRegistry(g.out.Models, g.project, extensions)
	if err != nil {
		return err
	}

	class := f.class
	if class == "" {
		class = names.TitleClassName(g.project, g.roots[0].Title)
	}

	result, err := reg.Parse(class, data)
	if err != nil {
		return err
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("%s: %s", document, strings.Join(result.Errors, "; "))
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(stderr, "warning: %s\n", w)
	}

	out, err := json.MarshalIndent(result.Value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s\n", out)

	if f.failOnWarn && len(result.Warnings) > 0 {
		return errors.New("document produced warnings")
	}
	return nil
}
