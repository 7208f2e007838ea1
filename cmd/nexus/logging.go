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

	"github.com/pterm/pterm"

	"github.com/sunshineinc/NexusLang/diag"
	"github.com/sunshineinc/NexusLang/parser"
	"github.com/sunshineinc/NexusLang/util"
)

/*
newLogger wraps base in a LogLevelLogger gated by the --verbose flag:
"debug" shows phase-transition logging, "info" (the default) hides it.
LogError always reaches base regardless of level.
*/
func newLogger(base util.Logger) util.Logger {
	level := "info"
	if verbose {
		level = "debug"
	}

	logger, err := util.NewLogLevelLogger(base, level)
	if err != nil {
		return base
	}
	return logger
}

/*
printDiagnostics reports a run's recorded diagnostics through logger at
Error level and prints each one whole through pterm.Error, then returns
whether any were reported.
*/
func printDiagnostics(sink *diag.Sink, logger util.Logger) bool {
	for _, e := range sink.Errors() {
		logger.LogError(e.Error())
		pterm.Error.Println(e.Error())
	}
	return sink.HadError()
}

/*
loggingIncludeResolver decorates an IncludeResolver with a Debug-level
log line per resolved 'incluir' path, so --verbose surfaces include
resolution the same way it surfaces tokenizing and parsing.
*/
type loggingIncludeResolver struct {
	parser.IncludeResolver
	logger util.Logger
}

func (r *loggingIncludeResolver) ScanFile(path string, sink *diag.Sink) error {
	r.logger.LogDebug(fmt.Sprintf("resolving include %v", path))
	return r.IncludeResolver.ScanFile(path, sink)
}
