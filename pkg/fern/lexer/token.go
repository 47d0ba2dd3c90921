// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package lexer

import "github.com/consensys/go-fern/pkg/util/source"

// Kind distinguishes the different forms of token produced by the lexer.
type Kind uint

const (
	// EndOfFile is a sentinel token appended at the end of every token
	// stream.  Its column is that of the first character beyond the input.
	EndOfFile Kind = iota
	// Ident is an identifier beginning with a lower-case letter or an
	// underscore (including the lone wildcard "_").
	Ident
	// ProperName is an identifier beginning with an upper-case letter.  A
	// chain of proper segments joined by dots (e.g. "Data.Maybe.Just") is
	// merged into a single qualified token; a trailing ".lower" segment is
	// never merged.
	ProperName
	// Int is an unsigned decimal integer literal.
	Int
	// Float is a decimal literal with a fractional part and/or an exponent.
	Float
	// String is a double-quoted string literal.  The token text holds the
	// unescaped contents (i.e. without the enclosing quotes).
	String
	// Operator is a maximal run of symbol characters (e.g. "->", "::", ">=").
	Operator
	// LeftParen is "(".
	LeftParen
	// RightParen is ")".
	RightParen
	// LeftBracket is "[".
	LeftBracket
	// RightBracket is "]".
	RightBracket
	// LeftBrace is "{".
	LeftBrace
	// RightBrace is "}".
	RightBrace
	// Comma is ",".
	Comma
	// Semicolon is ";".
	Semicolon
)

// Token associates a piece of lexical information with a given range of
// characters in the string being scanned.  Line and column are 1-based and
// identify the first character of the token; columns drive the layout rule.
type Token struct {
	// Kind of this token.
	Kind Kind
	// Interpreted text of this token.  For string literals this is the
	// unescaped contents; for all other tokens it is the raw text.
	Text string
	// Span of this token within the original text.
	Span source.Span
	// Line on which this token begins, counting from 1.
	Line int
	// Column at which this token begins, counting from 1.
	Column int
}

// Is checks whether this token has a given kind and text.
func (t *Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}
