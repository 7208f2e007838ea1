/*
 * Nexus
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sunshineinc/NexusLang/diag"
)

func TestFileIncludeResolverScansWithinRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "lib.nx"), []byte(`var fromLib = 1;`), 0o644); err != nil {
		t.Fatal(err)
	}

	resolver := NewFileIncludeResolver(root)
	sink := diag.NewSink()
	if err := resolver.ScanFile("lib.nx", sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sink.HadError() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}

	tokens := resolver.Tokens()
	if len(tokens) == 0 || tokens[0].Kind != VAR {
		t.Errorf("unexpected tokens: %v", tokens)
	}
}

func TestFileIncludeResolverRejectsEscapingRoot(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "secret.nx"), []byte(`var s = 1;`), 0o644); err != nil {
		t.Fatal(err)
	}

	resolver := NewFileIncludeResolver(sub)
	sink := diag.NewSink()
	if err := resolver.ScanFile("../secret.nx", sink); err == nil {
		t.Fatal("expected an error resolving a path outside the include root")
	}
}

func TestFileIncludeResolverReportsMissingFile(t *testing.T) {
	resolver := NewFileIncludeResolver(t.TempDir())
	sink := diag.NewSink()
	if err := resolver.ScanFile("nope.nx", sink); err == nil {
		t.Fatal("expected an error for a missing include file")
	}
}

func TestMemoryIncludeResolverReportsUnknownPath(t *testing.T) {
	resolver := &MemoryIncludeResolver{Files: map[string]string{}}
	sink := diag.NewSink()
	if err := resolver.ScanFile("missing.nx", sink); err == nil {
		t.Fatal("expected an error for an unknown in-memory path")
	}
}
