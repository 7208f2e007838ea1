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

	"github.com/spf13/cobra"

	"github.com/sunshineinc/NexusLang/diag"
	"github.com/sunshineinc/NexusLang/parser"
	"github.com/sunshineinc/NexusLang/util"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Scan a Nexus source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(util.NewStdOutLogger())

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		logger.LogDebug(fmt.Sprintf("tokenizing %v", args[0]))

		sink := diag.NewSink()
		tokens := parser.Scan(string(data), sink)

		for _, tok := range tokens {
			fmt.Println(tok.String())
		}

		if printDiagnostics(sink, logger) {
			os.Exit(65)
		}

		return nil
	},
}
