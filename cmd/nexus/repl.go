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
	"strings"

	"devt.de/krotik/common/termutil"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sunshineinc/NexusLang/config"
	"github.com/sunshineinc/NexusLang/diag"
	"github.com/sunshineinc/NexusLang/parser"
	"github.com/sunshineinc/NexusLang/util"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive line-at-a-time tokenizer/parser",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl()
	},
}

func isExitLine(s string) bool {
	return s == "exit" || s == "q" || s == "quit" || s == "sai" || s == "\x04"
}

/*
runRepl is the faithful successor to the teacher's interactive console:
each line is scanned and parsed (never evaluated, since the evaluator is
out of scope) and either the parsed statement tree or the line's
diagnostics are echoed back.
*/
func runRepl() error {
	mem := util.NewMemoryLogger(200)
	logger := newLogger(mem)

	term, err := termutil.NewConsoleLineTerminal(os.Stdout)
	if err != nil {
		return err
	}

	term, err = termutil.AddHistoryMixin(term, "", isExitLine)
	if err != nil {
		return err
	}

	wd, _ := os.Getwd()
	resolver := &loggingIncludeResolver{
		IncludeResolver: parser.NewFileIncludeResolver(wd),
		logger:          logger,
	}

	pterm.Info.Println(fmt.Sprintf("Nexus %v", config.ProductVersion))
	logger.LogInfo(fmt.Sprintf("Root directory: %v", wd))

	if err = term.StartTerm(); err != nil {
		return err
	}
	defer term.StopTerm()

	fmt.Println("Type 'q' or 'quit' to exit the shell, ':log' to show recent log messages")

	line, err := term.NextLine()
	for err == nil && !isExitLine(line) {
		trimmed := strings.TrimSpace(line)

		if trimmed == ":log" {
			fmt.Println(mem.String())
		} else if trimmed != "" {
			handleReplLine(trimmed, resolver, logger)
		}

		line, err = term.NextLine()
	}

	return nil
}

func handleReplLine(line string, resolver parser.IncludeResolver, logger util.Logger) {
	logger.LogDebug("tokenizing console input")

	sink := diag.NewSink()
	tokens := parser.Scan(line, sink)

	logger.LogDebug("parsing console input")
	stmts := parser.NewParser(tokens, sink, resolver).Parse()

	if printDiagnostics(sink, logger) {
		return
	}

	fmt.Print(parser.PrettyPrint(stmts))
}
