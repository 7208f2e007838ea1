/*
 * Nexus
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sunshineinc/NexusLang/diag"
	"github.com/sunshineinc/NexusLang/parser"
	"github.com/sunshineinc/NexusLang/util"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Scan, parse and pretty-print a Nexus source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		logger := newLogger(util.NewStdOutLogger())

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		logger.LogDebug(fmt.Sprintf("tokenizing %v", path))

		sink := diag.NewSink()
		tokens := parser.Scan(string(data), sink)

		resolver := &loggingIncludeResolver{
			IncludeResolver: parser.NewFileIncludeResolver(filepath.Dir(path)),
			logger:          logger,
		}

		logger.LogDebug(fmt.Sprintf("parsing %v", path))
		stmts := parser.NewParser(tokens, sink, resolver).Parse()

		if printDiagnostics(sink, logger) {
			os.Exit(65)
		}

		fmt.Print(parser.PrettyPrint(stmts))
		return nil
	},
}
