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

import "fmt"

/*
ParseError is the sentinel error thrown locally inside the recursive-descent
functions and caught by declaration(), which invokes synchronize.
Modeled on the teacher's util.RuntimeError (a typed error carrying the
offending token), per SPEC_FULL.md's error handling section.
*/
type ParseError struct {
	Token   Token
	Message string
}

/*
Error implements the error interface. The sink-facing diagnostic text
(§6's "no <lexeme>" / "no final" format) is produced separately by
diag.Error.Error; this string is for Go-level error plumbing (wrapping,
logging) only.
*/
func (e *ParseError) Error() string {
	if e.Token.Kind == NX_EOF {
		return fmt.Sprintf("line %d at end: %s", e.Token.Line, e.Message)
	}
	return fmt.Sprintf("line %d at %q: %s", e.Token.Line, e.Token.Lexeme, e.Message)
}
