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
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/sunshineinc/NexusLang/config"
	"github.com/sunshineinc/NexusLang/diag"
)

/*
Parser is a recursive-descent parser with explicit precedence climbing. It
consumes a token vector and produces a sequence of top-level Statements,
desugaring 'for' loops and splicing included files' statements into the
current statement list as it goes.
*/
type Parser struct {
	tokens     []Token
	current    int
	sink       *diag.Sink
	resolver   IncludeResolver
	included   *hashset.Set // paths already passed to 'incluir', shared with nested include parses
	statements []Stmt
}

/*
NewParser creates a Parser over tokens. resolver may be nil, in which case
'incluir' directives are reported as diagnostics rather than resolved.
*/
func NewParser(tokens []Token, sink *diag.Sink, resolver IncludeResolver) *Parser {
	return newParser(tokens, sink, resolver, hashset.New())
}

func newParser(tokens []Token, sink *diag.Sink, resolver IncludeResolver, included *hashset.Set) *Parser {
	return &Parser{tokens: tokens, sink: sink, resolver: resolver, included: included}
}

/*
Parse runs the top-level loop, consuming declarations until end-of-input.
On a syntax error it has already reported via the diagnostics sink,
invoked synchronize, and continued, so that later errors in the same pass
are surfaced too.
*/
func (p *Parser) Parse() []Stmt {
	p.statements = nil
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			p.statements = append(p.statements, stmt)
		}
	}
	return p.statements
}

// Declarations
// ============

func (p *Parser) declaration() Stmt {
	var stmt Stmt
	var err error

	switch {
	case p.match(DEFINIR):
		stmt, err = p.function("funcao")
	case p.match(CLASSE):
		stmt, err = p.classDeclaration()
	case p.match(VAR):
		stmt, err = p.varDeclaration()
	default:
		stmt, err = p.statement()
	}

	if err != nil {
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) varDeclaration() (Stmt, error) {
	name, err := p.consume(IDENTIFICAR, "Nome da variavel esperado.")
	if err != nil {
		return nil, err
	}

	var init Expr
	if p.match(IGUAL) {
		if init, err = p.expression(); err != nil {
			return nil, err
		}
	}

	p.matchVoid(PONTOEVIRGULA)
	return &VarStmt{Name: name, Initializer: init}, nil
}

func (p *Parser) function(kind string) (*FunctionStmt, error) {
	name, err := p.consume(IDENTIFICAR, "Esperava-se um nome de "+kind+".")
	if err != nil {
		return nil, err
	}
	if _, err = p.consume(PARENTESE_ESQUERDO, "Esperava-se um '(' apos o nome da "+kind+"."); err != nil {
		return nil, err
	}

	var params []Token
	if !p.check(PARENTESE_DIREITO) {
		for {
			if len(params) >= config.Int(config.MaxParams) {
				p.errorAt(p.peek(), "Nao pode ter mais de 255 argumentos.")
			}
			param, err := p.consume(IDENTIFICAR, "Nome do parametro esperado.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(VIRGULA) {
				break
			}
		}
	}

	if _, err = p.consume(PARENTESE_DIREITO, "Esperava-se um ')' apos os parametros."); err != nil {
		return nil, err
	}
	if _, err = p.consume(CHAVE_ESQUERDA, "Esperava-se um '{' antes do corpo da "+kind+"."); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &FunctionStmt{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) classDeclaration() (Stmt, error) {
	name, err := p.consume(IDENTIFICAR, "Esperava-se um nome de classe")
	if err != nil {
		return nil, err
	}
	if _, err = p.consume(CHAVE_ESQUERDA, "Esperava-se um '{' antes do corpo da classe."); err != nil {
		return nil, err
	}

	var methods []*FunctionStmt
	for !p.check(CHAVE_DIREITA) && !p.isAtEnd() {
		m, err := p.function("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}

	if _, err = p.consume(CHAVE_DIREITA, "Esperava-se um '}' apos o corpo da classe"); err != nil {
		return nil, err
	}

	return &ClassStmt{Name: name, Methods: methods}, nil
}

// Statements
// ==========

func (p *Parser) statement() (Stmt, error) {
	switch {
	case p.match(INCLUIR):
		return p.includeStatement()
	case p.match(SAIDA):
		return p.printStatement()
	case p.match(SAID):
		return p.outStatement()
	case p.match(SE):
		return p.ifStatement()
	case p.match(RETORNE):
		return p.returnStatement()
	case p.match(ENQUANTO):
		return p.whileStatement()
	case p.match(POR):
		return p.forStatement()
	case p.match(CHAVE_ESQUERDA):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &BlockStmt{Stmts: stmts}, nil
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() (Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	p.matchVoid(PONTOEVIRGULA)
	return &PrintStmt{Value: value}, nil
}

func (p *Parser) outStatement() (Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	p.matchVoid(PONTOEVIRGULA)
	return &OutStmt{Value: value}, nil
}

func (p *Parser) expressionStatement() (Stmt, error) {
	// No semicolon is consumed here, mirroring the source: a trailing ';'
	// is left for the next declaration() iteration, which reports it as a
	// diagnostic and absorbs it via synchronize (see DESIGN.md's note on
	// this preserved quirk).
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ExpressionStmt{Expression: expr}, nil
}

func (p *Parser) block() ([]Stmt, error) {
	var stmts []Stmt
	for !p.check(CHAVE_DIREITA) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if _, err := p.consume(CHAVE_DIREITA, "Esperava-se um caractere '}' apos o bloco."); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) ifStatement() (Stmt, error) {
	// Headers use conventional '(' cond ')' parentheses. A '(' after the
	// condition could never be consumed here, because call() takes every
	// '(' that follows an expression as the start of an argument list.
	if _, err := p.consume(PARENTESE_ESQUERDO, "Esperava-se um '(' apos 'se'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(PARENTESE_DIREITO, "Esperava-se um ')' apos 'se'."); err != nil {
		return nil, err
	}

	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}

	var elseBranch Stmt
	if p.match(SENAO) {
		if elseBranch, err = p.statement(); err != nil {
			return nil, err
		}
	}

	return &IfStmt{Cond: cond, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (Stmt, error) {
	if _, err := p.consume(PARENTESE_ESQUERDO, "Esperava-se um '(' apos 'enquanto'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(PARENTESE_DIREITO, "Esperava-se um ')' apos a condicao do 'enquanto'."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body}, nil
}

func (p *Parser) forStatement() (Stmt, error) {
	if _, err := p.consume(PARENTESE_ESQUERDO, "Esperava-se um '(' apos 'por'."); err != nil {
		return nil, err
	}

	var init Stmt
	var err error
	switch {
	case p.match(PONTOEVIRGULA):
		init = nil
	case p.match(VAR):
		if init, err = p.varDeclaration(); err != nil {
			return nil, err
		}
	default:
		if init, err = p.expressionStatement(); err != nil {
			return nil, err
		}
	}

	var cond Expr
	if !p.check(PONTOEVIRGULA) {
		if cond, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err = p.consume(PONTOEVIRGULA, "Esperava-se um ';' apos a condicao do 'por'."); err != nil {
		return nil, err
	}

	var inc Expr
	if !p.check(PARENTESE_DIREITO) {
		if inc, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err = p.consume(PARENTESE_DIREITO, "Esperava-se um ')' apos a condicao do 'por'."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if inc != nil {
		body = &BlockStmt{Stmts: []Stmt{body, &ExpressionStmt{Expression: inc}}}
	}

	if cond == nil {
		cond = &Literal{Value: true}
	}
	body = &WhileStmt{Cond: cond, Body: body}

	if init != nil {
		body = &BlockStmt{Stmts: []Stmt{init, body}}
	}

	return body, nil
}

func (p *Parser) returnStatement() (Stmt, error) {
	keyword := p.previous()
	// The guard that would make the return value optional is dead in the
	// source: an expression is always required here, even though the AST
	// field itself is nilable.
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	p.matchVoid(PONTOEVIRGULA)
	return &ReturnStmt{Keyword: keyword, Value: value}, nil
}

func (p *Parser) includeStatement() (Stmt, error) {
	keyword := p.previous()

	if _, err := p.consume(PARENTESE_ESQUERDO, "Esperava-se um '(' apos a palavra-chave 'incluir'."); err != nil {
		return nil, err
	}
	path, err := p.consume(TEXTO, "Esperava-se um caminho de arquivo como texto na declaracao 'incluir'.")
	if err != nil {
		return nil, err
	}
	if _, err = p.consume(PARENTESE_DIREITO, "Esperava-se um ')' apos o caminho na declaracao 'incluir'."); err != nil {
		return nil, err
	}
	p.matchVoid(PONTOEVIRGULA)

	// path.Lexeme is the raw source slice including the surrounding quote
	// characters (e.g. `"lib.nx"`); path.Literal is the TEXTO scanner's
	// already-unquoted string value, which is what a resolver or a
	// duplicate-path set needs to key on.
	importPath, _ := path.Literal.(string)

	if p.included.Contains(importPath) {
		p.errorAt(path, "Arquivo de cabecalho duplicado.")
		return &IncludeStmt{Keyword: keyword, Path: importPath}, nil
	}
	p.included.Add(importPath)

	if p.resolver == nil {
		p.errorAt(path, "Nenhum resolvedor de 'incluir' foi configurado.")
		return &IncludeStmt{Keyword: keyword, Path: importPath}, nil
	}

	if err := p.resolver.ScanFile(importPath, p.sink); err != nil {
		p.errorAt(path, err.Error())
		return &IncludeStmt{Keyword: keyword, Path: importPath}, nil
	}

	// The included file's statements are parsed with a nested Parser that
	// shares this Parser's sink, resolver and included-path set (so a
	// diamond or cyclic include is caught regardless of nesting depth),
	// and spliced directly into the current statement list alongside the
	// Include marker returned below.
	includedParser := newParser(p.resolver.Tokens(), p.sink, p.resolver, p.included)
	p.statements = append(p.statements, includedParser.Parse()...)

	return &IncludeStmt{Keyword: keyword, Path: importPath}, nil
}

// Expressions
// ===========

func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (Expr, error) {
	expr, err := p.logicalOr()
	if err != nil {
		return nil, err
	}

	if p.match(IGUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		switch e := expr.(type) {
		case *Variable:
			return &Assign{Name: e.Name, Value: value}, nil
		case *Get:
			return &Set{Object: e.Object, Name: e.Name, Value: value}, nil
		case *Callist:
			return &Callist{Target: e.Target, Index: e.Index, ValueOrNone: value, Bracket: e.Bracket}, nil
		}

		p.errorAt(equals, "Destino de atribuicao invalido.")
	}

	return expr, nil
}

func (p *Parser) logicalOr() (Expr, error) {
	expr, err := p.logicalAnd()
	if err != nil {
		return nil, err
	}
	for p.match(OU) {
		op := p.previous()
		right, err := p.logicalAnd()
		if err != nil {
			return nil, err
		}
		expr = &Logical{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) logicalAnd() (Expr, error) {
	expr, err := p.bitwise()
	if err != nil {
		return nil, err
	}
	for p.match(E) {
		op := p.previous()
		right, err := p.bitwise()
		if err != nil {
			return nil, err
		}
		expr = &Logical{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) bitwise() (Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(ECOMERCIAL, ACENTOCHAPEU, BARRAV) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(BANG_IGUAL, IGUAL_IGUAL) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (Expr, error) {
	expr, err := p.shift()
	if err != nil {
		return nil, err
	}
	// MENOR_IGUAL has no scanned token kind (both '<=' and '>=' scan to
	// MAIOR_IGUAL), so it is not a match target here; MENOR itself is
	// unreachable in practice because term() below already consumes it.
	for p.match(MAIOR, MAIOR_IGUAL, MENOR) {
		op := p.previous()
		right, err := p.shift()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) shift() (Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(MAIOR_MAIOR, MENOR_MENOR) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	// Matches MENOR ('<') and MAIS ('+'), not MENOS ('-'), preserved
	// faithfully from the source. Binary subtraction is not reachable
	// through this production; '-' is only available as a unary prefix.
	for p.match(MENOR, MAIS) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	// ECOMERCIAL ('&') is also bitwise-AND at the bitwise() level; its
	// presence here too is preserved faithfully.
	for p.match(ECOMERCIAL, ASTERISCO, PORCENTAGEM) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (Expr, error) {
	if p.match(BANG, MENOS, MAIS_MAIS, MENOS_MENOS, TIL) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}

		if p.previous().Lexeme == "++" || p.previous().Lexeme == "--" {
			p.errorAt(p.previous(), "Operador invalido: incremento/decremento pos-fixado seguido de prefixo.")
		}
		p.matchVoid(PONTOEVIRGULA)

		return &Unary{Op: op, Operand: right, Postfix: false}, nil
	}
	return p.call()
}

func (p *Parser) call() (Expr, error) {
	expr, err := p.callist()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(PARENTESE_ESQUERDO):
			if expr, err = p.finishCall(expr); err != nil {
				return nil, err
			}
		case p.match(PONTO):
			name, err := p.consume(IDENTIFICAR, "Nome da propriedade esperado apos '.'.")
			if err != nil {
				return nil, err
			}
			expr = &Get{Object: expr, Name: name}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee Expr) (Expr, error) {
	var args []Expr
	if !p.check(PARENTESE_DIREITO) {
		for {
			if len(args) >= config.Int(config.MaxArgs) {
				p.errorAt(p.peek(), "Nao pode ter mais de 255 argumentos.")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(VIRGULA) {
				break
			}
		}
	}

	paren, err := p.consume(PARENTESE_DIREITO, "Esperava-se um ')' apos os argumentos.")
	if err != nil {
		return nil, err
	}
	p.matchVoid(PONTOEVIRGULA)

	return &Call{Callee: callee, ClosingParen: paren, Args: args}, nil
}

func (p *Parser) callist() (Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(COLCHETE_ESQUERDO) {
		if expr, err = p.finishCallist(expr); err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) finishCallist(target Expr) (Expr, error) {
	index, err := p.logicalOr()
	if err != nil {
		return nil, err
	}
	bracket, err := p.consume(COLCHETE_DIREITO, "Esperava-se um ']' apos o indice.")
	if err != nil {
		return nil, err
	}
	return &Callist{Target: target, Index: index, Bracket: bracket}, nil
}

func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(CHAVE_ESQUERDA):
		return p.arrayList()
	case p.match(FALSO):
		return &Literal{Value: false}, nil
	case p.match(VERDADEIRO):
		return &Literal{Value: true}, nil
	case p.match(NULO):
		return &Literal{Value: nil}, nil
	case p.match(IDENTIFICAR):
		left := Expr(&Variable{Name: p.previous()})
		if p.match(MAIS_MAIS, MENOS_MENOS) {
			op := p.previous()
			p.matchVoid(PONTOEVIRGULA)
			return &Unary{Op: op, Operand: left, Postfix: true}, nil
		}
		return left, nil
	case p.match(NUMERO, TEXTO):
		return &Literal{Value: p.previous().Literal}, nil
	case p.match(PARENTESE_ESQUERDO):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(PARENTESE_DIREITO, "Esperava-se um ')' apos a expressao."); err != nil {
			return nil, err
		}
		return &Grouping{Inner: expr}, nil
	}

	return nil, p.errorAt(p.peek(), "Expressao esperada.")
}

func (p *Parser) arrayList() (Expr, error) {
	var values []Expr

	if p.match(CHAVE_DIREITA) {
		return &Array{Elements: values}, nil
	}

	for {
		if len(values) >= config.Int(config.MaxArrayElements) {
			p.errorAt(p.peek(), "Nao pode ter mais de 255 elementos em um vetor.")
		}
		value, err := p.logicalOr()
		if err != nil {
			return nil, err
		}
		values = append(values, value)
		if !p.match(VIRGULA) {
			break
		}
	}

	if _, err := p.consume(CHAVE_DIREITA, "Esperava-se um '}' no final do vetor."); err != nil {
		return nil, err
	}
	return &Array{Elements: values}, nil
}

// Parser plumbing
// ===============

func (p *Parser) match(kinds ...TokenKind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) matchVoid(kind TokenKind) {
	if p.check(kind) {
		p.advance()
	}
}

func (p *Parser) consume(kind TokenKind, message string) (Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return Token{}, p.errorAt(p.peek(), message)
}

func (p *Parser) check(kind TokenKind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == NX_EOF
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

/*
errorAt reports a token-anchored diagnostic to the sink and returns a
ParseError for the caller to propagate.
*/
func (p *Parser) errorAt(token Token, message string) error {
	p.sink.ReportParse(token.Line, token.Lexeme, token.Kind == NX_EOF, message)
	return &ParseError{Token: token, Message: message}
}

/*
synchronize discards tokens until a statement/declaration boundary is
found, so that later errors in the same parse are surfaced too. Unlike
the source, whose equivalent keyword switch falls through to an
unconditional default-return on the first iteration (making it dead
code that just skips one token), this one actually scans forward until it
has just consumed a ';' or the next token is a declaration or statement
keyword.
*/
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Kind == PONTOEVIRGULA {
			return
		}

		switch p.peek().Kind {
		case CLASSE, DEFINIR, VAR, POR, SE, ENQUANTO, SAID, SAIDA, RETORNE:
			return
		}

		p.advance()
	}
}
