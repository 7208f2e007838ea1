/*
 * Nexus
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package main is the Nexus command line driver. It wires the scan/parse
pipeline in config/parser/diag/util together into three read-only
inspection commands. There is no evaluator here; that half of the
pipeline is out of scope.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sunshineinc/NexusLang/config"
)

/*
verbose controls whether phase-transition logging (tokenizing, parsing,
resolving an include) is shown at Debug level. Off by default, like the
teacher's CLI, which only surfaces its own log level through the
explicit -loglevel flag rather than printing debug chatter unasked.
*/
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "nexus",
	Short: fmt.Sprintf("Nexus %v - inspection tools for Nexus source", config.ProductVersion),
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false,
		"log phase transitions (tokenizing, parsing, resolving includes) at debug level")

	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(replCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
