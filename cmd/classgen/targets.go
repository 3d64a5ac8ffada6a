// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/classgen/generator"
	"github.com/albertocavalcante/classgen/generators/cpp"
)

func init() {
	generator.Register(cpp.NewGenerator())
}

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the available output targets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, t := range generator.All() {
			md := t.Metadata()
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", md.Name, md.Version, strings.Join(md.FileExtensions, ","), md.Description)
		}
		return w.Flush()
	},
}
