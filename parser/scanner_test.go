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
	"testing"

	"github.com/sunshineinc/NexusLang/diag"
)

func TestScanPunctuationAndOperators(t *testing.T) {
	sink := diag.NewSink()
	tokens := Scan("(){},.;-+*/%&^|~", sink)

	want := []TokenKind{
		PARENTESE_ESQUERDO, PARENTESE_DIREITO, CHAVE_ESQUERDA, CHAVE_DIREITA,
		VIRGULA, PONTO, PONTOEVIRGULA, MENOS, MAIS, ASTERISCO, BARRA,
		PORCENTAGEM, ECOMERCIAL, ACENTOCHAPEU, BARRAV, TIL, NX_EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %v want %v", i, tokens[i].Kind, k)
		}
	}
}

func TestScanLessThanAlwaysMapsEqualsFormToGreaterEqual(t *testing.T) {
	sink := diag.NewSink()
	tokens := Scan("<= >= << >> <", sink)
	want := []TokenKind{MAIOR_IGUAL, MAIOR_IGUAL, MENOR_MENOR, MAIOR_MAIOR, MENOR, NX_EOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %v want %v", i, tokens[i].Kind, k)
		}
	}
}

func TestScanKeywords(t *testing.T) {
	sink := diag.NewSink()
	tokens := Scan("incluir e classe senao falso por definir se nulo ou said saida retorne super isso verdadeiro var enquanto", sink)
	want := []TokenKind{
		INCLUIR, E, CLASSE, SENAO, FALSO, POR, DEFINIR, SE, NULO, OU,
		SAID, SAIDA, RETORNE, SUPER, ISSO, VERDADEIRO, VAR, ENQUANTO, NX_EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %v want %v", i, tokens[i].Kind, k)
		}
	}
}

func TestScanStringAndNumberLiterals(t *testing.T) {
	sink := diag.NewSink()
	tokens := Scan(`"ola" 3.14 42`, sink)

	if tokens[0].Kind != TEXTO || tokens[0].Literal != "ola" {
		t.Errorf("got %+v", tokens[0])
	}
	if tokens[1].Kind != NUMERO || tokens[1].Literal != 3.14 {
		t.Errorf("got %+v", tokens[1])
	}
	if tokens[2].Kind != NUMERO || tokens[2].Literal != float64(42) {
		t.Errorf("got %+v", tokens[2])
	}
}

func TestScanUnterminatedStringReportsDiagnostic(t *testing.T) {
	sink := diag.NewSink()
	Scan(`"abc`, sink)
	if !sink.HadError() {
		t.Fatal("expected a diagnostic for an unterminated string")
	}
	if sink.Errors()[0].Message != "Texto nao terminado." {
		t.Errorf("unexpected message: %v", sink.Errors()[0])
	}
}

func TestScanUnterminatedBlockCommentReportsDiagnostic(t *testing.T) {
	sink := diag.NewSink()
	Scan("/* comentario sem fim", sink)
	if !sink.HadError() {
		t.Fatal("expected a diagnostic for an unterminated block comment")
	}
}

func TestScanLineCommentConsumesToEndOfLine(t *testing.T) {
	sink := diag.NewSink()
	tokens := Scan("var a = 1; // comentario\nvar b = 2;", sink)
	if sink.HadError() {
		t.Fatalf("unexpected diagnostics: %v", sink.Errors())
	}
	if tokens[len(tokens)-1].Kind != NX_EOF || tokens[len(tokens)-1].Line != 2 {
		t.Errorf("expected EOF on line 2, got %+v", tokens[len(tokens)-1])
	}
}

func TestScanUnexpectedCharacterReportsDiagnosticAndContinues(t *testing.T) {
	sink := diag.NewSink()
	tokens := Scan("var a = 1 $ 2;", sink)
	if !sink.HadError() {
		t.Fatal("expected a diagnostic for the unexpected character")
	}
	foundSecondNumber := false
	for _, tok := range tokens {
		if tok.Kind == NUMERO && tok.Literal == float64(2) {
			foundSecondNumber = true
		}
	}
	if !foundSecondNumber {
		t.Error("scanning should continue past the unexpected character")
	}
}

func TestScanIdentifierIsNotAKeyword(t *testing.T) {
	sink := diag.NewSink()
	tokens := Scan("variavelLonga", sink)
	if tokens[0].Kind != IDENTIFICAR || tokens[0].Lexeme != "variavelLonga" {
		t.Errorf("got %+v", tokens[0])
	}
}
