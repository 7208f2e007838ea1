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
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"devt.de/krotik/common/stringutil"
)

/*
IndentationLevel is the number of spaces PrettyPrint uses per nesting level.
*/
const IndentationLevel = 2

/*
PrettyPrint renders a statement list as a fully parenthesized, indented
tree dump — one line per statement, child expressions parenthesized so
precedence is visible at a glance. Used by the CLI's 'parse' subcommand
and by the parser's own tests, in place of the teacher's
template-driven pretty printer (Nexus's grammar is small enough that a
direct type switch reads more plainly than a template-per-node-kind map).
*/
func PrettyPrint(stmts []Stmt) string {
	var buf bytes.Buffer
	for _, s := range stmts {
		printStmt(&buf, s, 0)
	}
	return buf.String()
}

func indent(buf *bytes.Buffer, level int) {
	buf.WriteString(stringutil.GenerateRollingString(" ", level*IndentationLevel))
}

func printStmt(buf *bytes.Buffer, s Stmt, level int) {
	indent(buf, level)

	switch n := s.(type) {
	case *ExpressionStmt:
		fmt.Fprintf(buf, "%s;\n", printExpr(n.Expression))
	case *PrintStmt:
		fmt.Fprintf(buf, "saida %s;\n", printExpr(n.Value))
	case *OutStmt:
		fmt.Fprintf(buf, "said %s;\n", printExpr(n.Value))
	case *VarStmt:
		if n.Initializer == nil {
			fmt.Fprintf(buf, "var %s;\n", n.Name.Lexeme)
		} else {
			fmt.Fprintf(buf, "var %s = %s;\n", n.Name.Lexeme, printExpr(n.Initializer))
		}
	case *BlockStmt:
		buf.WriteString("{\n")
		for _, c := range n.Stmts {
			printStmt(buf, c, level+1)
		}
		indent(buf, level)
		buf.WriteString("}\n")
	case *IfStmt:
		fmt.Fprintf(buf, "se (%s)\n", printExpr(n.Cond))
		printStmt(buf, n.Then, level+1)
		if n.Else != nil {
			indent(buf, level)
			buf.WriteString("senao\n")
			printStmt(buf, n.Else, level+1)
		}
	case *WhileStmt:
		fmt.Fprintf(buf, "enquanto (%s)\n", printExpr(n.Cond))
		printStmt(buf, n.Body, level+1)
	case *FunctionStmt:
		names := make([]string, len(n.Params))
		for i, p := range n.Params {
			names[i] = p.Lexeme
		}
		fmt.Fprintf(buf, "definir %s(%s) {\n", n.Name.Lexeme, strings.Join(names, ", "))
		for _, c := range n.Body {
			printStmt(buf, c, level+1)
		}
		indent(buf, level)
		buf.WriteString("}\n")
	case *ClassStmt:
		fmt.Fprintf(buf, "classe %s {\n", n.Name.Lexeme)
		for _, m := range n.Methods {
			printStmt(buf, m, level+1)
		}
		indent(buf, level)
		buf.WriteString("}\n")
	case *ReturnStmt:
		if n.Value == nil {
			buf.WriteString("retorne;\n")
		} else {
			fmt.Fprintf(buf, "retorne %s;\n", printExpr(n.Value))
		}
	case *IncludeStmt:
		fmt.Fprintf(buf, "incluir(%q);\n", n.Path)
	default:
		fmt.Fprintf(buf, "<statement desconhecida %T>\n", s)
	}
}

func printExpr(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		return printLiteral(n.Value)
	case *Variable:
		return n.Name.Lexeme
	case *Assign:
		return fmt.Sprintf("(%s = %s)", n.Name.Lexeme, printExpr(n.Value))
	case *Binary:
		return fmt.Sprintf("(%s %s %s)", printExpr(n.Left), n.Op.Lexeme, printExpr(n.Right))
	case *Logical:
		return fmt.Sprintf("(%s %s %s)", printExpr(n.Left), n.Op.Lexeme, printExpr(n.Right))
	case *Unary:
		if n.Postfix {
			return fmt.Sprintf("(%s%s)", printExpr(n.Operand), n.Op.Lexeme)
		}
		return fmt.Sprintf("(%s%s)", n.Op.Lexeme, printExpr(n.Operand))
	case *Grouping:
		return fmt.Sprintf("(group %s)", printExpr(n.Inner))
	case *Call:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = printExpr(a)
		}
		return fmt.Sprintf("%s(%s)", printExpr(n.Callee), strings.Join(args, ", "))
	case *Get:
		return fmt.Sprintf("%s.%s", printExpr(n.Object), n.Name.Lexeme)
	case *Set:
		return fmt.Sprintf("(%s.%s = %s)", printExpr(n.Object), n.Name.Lexeme, printExpr(n.Value))
	case *Array:
		elems := make([]string, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = printExpr(el)
		}
		return fmt.Sprintf("{%s}", strings.Join(elems, ", "))
	case *Callist:
		if n.ValueOrNone == nil {
			return fmt.Sprintf("%s[%s]", printExpr(n.Target), printExpr(n.Index))
		}
		return fmt.Sprintf("(%s[%s] = %s)", printExpr(n.Target), printExpr(n.Index), printExpr(n.ValueOrNone))
	default:
		return fmt.Sprintf("<expr desconhecida %T>", e)
	}
}

func printLiteral(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nulo"
	case bool:
		if val {
			return "verdadeiro"
		}
		return "falso"
	case string:
		return strconv.Quote(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
