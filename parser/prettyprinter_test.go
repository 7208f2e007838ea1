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
	"strings"
	"testing"

	"github.com/sunshineinc/NexusLang/diag"
)

func parseSource(t *testing.T, source string) ([]Stmt, *diag.Sink) {
	t.Helper()
	sink := diag.NewSink()
	tokens := Scan(source, sink)
	stmts := NewParser(tokens, sink, nil).Parse()
	return stmts, sink
}

func TestPrettyPrintVarDecl(t *testing.T) {
	stmts, sink := parseSource(t, `var x = 1 + 2 * 3;`)
	if sink.HadError() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}

	got := PrettyPrint(stmts)
	want := "var x = (1 + (2 * 3));\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyPrintPrintStatement(t *testing.T) {
	stmts, sink := parseSource(t, `saida "oi";`)
	if sink.HadError() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}

	got := PrettyPrint(stmts)
	want := `saida "oi";` + "\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestPrettyPrintBlockNesting(t *testing.T) {
	stmts, sink := parseSource(t, `{ var a = 1; saida a; }`)
	if sink.HadError() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}

	got := PrettyPrint(stmts)
	if !strings.Contains(got, "  var a = 1;\n") || !strings.Contains(got, "  saida a;\n") {
		t.Errorf("expected indented block body, got:\n%s", got)
	}
}

func TestPrettyPrintFunctionDeclaration(t *testing.T) {
	stmts, sink := parseSource(t, `definir soma(a, b) { retorne a + b; }`)
	if sink.HadError() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}

	got := PrettyPrint(stmts)
	want := "definir soma(a, b) {\n  retorne (a + b);\n}\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
