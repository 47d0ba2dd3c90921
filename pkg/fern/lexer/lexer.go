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

import (
	"strings"
	"unicode"

	"github.com/consensys/go-fern/pkg/util/source"
)

// Symbol characters from which operator tokens are formed.  Any operator not
// reserved by the parser is available as a user-defined infix operator.
const operatorChars = ":!#$%&*+./<=>?@\\^|~-"

// Lex converts the contents of a given source file into a sequence of tokens,
// or fails with a positioned error on the first offending character.  The
// returned sequence always ends with an EndOfFile token.
func Lex(srcfile *source.File) ([]Token, *source.SyntaxError) {
	l := &lexer{
		srcfile: srcfile,
		text:    srcfile.Contents(),
		line:    1,
		column:  1,
	}
	//
	return l.lex()
}

// lexer holds the state required to tokenise a single source file.  Line and
// column track the position of the next unconsumed character.
type lexer struct {
	srcfile *source.File
	text    []rune
	index   int
	line    int
	column  int
	tokens  []Token
}

func (l *lexer) lex() ([]Token, *source.SyntaxError) {
	for {
		if err := l.skipWhitespace(); err != nil {
			return nil, err
		}
		// Check for end of input
		if l.index >= len(l.text) {
			break
		}
		//
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	// Append end-of-file sentinel
	l.tokens = append(l.tokens, Token{
		Kind:   EndOfFile,
		Span:   source.NewSpan(l.index, l.index),
		Line:   l.line,
		Column: l.column,
	})
	// Done
	return l.tokens, nil
}

// Skip over whitespace and comments, stopping at the first significant
// character.  Line comments run from "--" to the end of the line; block
// comments are enclosed in "{-" and "-}".
func (l *lexer) skipWhitespace() *source.SyntaxError {
	for l.index < len(l.text) {
		c := l.text[l.index]
		//
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance()
		case c == '-' && l.lookahead(1) == '-':
			// Line comment
			for l.index < len(l.text) && l.text[l.index] != '\n' {
				l.advance()
			}
		case c == '{' && l.lookahead(1) == '-':
			if err := l.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	//
	return nil
}

func (l *lexer) skipBlockComment() *source.SyntaxError {
	start := l.index
	// Consume opening "{-"
	l.advance()
	l.advance()
	//
	for l.index < len(l.text) {
		if l.text[l.index] == '-' && l.lookahead(1) == '}' {
			l.advance()
			l.advance()
			//
			return nil
		}
		//
		l.advance()
	}
	//
	return l.srcfile.SyntaxError(source.NewSpan(start, l.index), "unterminated block comment")
}

// Scan exactly one token, which is known to begin at the current (significant)
// character.
func (l *lexer) scanToken() *source.SyntaxError {
	c := l.text[l.index]
	//
	switch {
	case isIdentStart(c):
		l.scanName()
		return nil
	case unicode.IsDigit(c):
		l.scanNumber()
		return nil
	case c == '"':
		return l.scanString()
	case strings.ContainsRune(operatorChars, c):
		l.scanOperator()
		return nil
	}
	// Check for punctuation
	if kind, ok := punctuation(c); ok {
		start := l.position()
		l.advance()
		l.emit(kind, string(c), start)
		//
		return nil
	}
	//
	return l.srcfile.SyntaxError(source.NewSpan(l.index, l.index+1), "unexpected character")
}

// Scan an identifier or proper name.  Proper-name segments joined by dots are
// merged into one qualified token, provided every segment begins with an
// upper-case letter.
func (l *lexer) scanName() {
	start := l.position()
	proper := unicode.IsUpper(l.text[l.index])
	l.scanNameSegment()
	// Merge qualified proper-name chains
	for proper && l.current() == '.' && unicode.IsUpper(l.lookahead(1)) {
		l.advance() // consume dot
		l.scanNameSegment()
	}
	//
	if proper {
		l.emit(ProperName, l.textFrom(start), start)
	} else {
		l.emit(Ident, l.textFrom(start), start)
	}
}

func (l *lexer) scanNameSegment() {
	for l.index < len(l.text) && isIdentPart(l.text[l.index]) {
		l.advance()
	}
}

// Scan an integer or floating-point literal.  A dot only begins a fractional
// part when immediately followed by a digit, so that "1.foo" lexes as an
// integer followed by an accessor.
func (l *lexer) scanNumber() {
	var (
		start = l.position()
		kind  = Int
	)
	//
	l.scanDigits()
	// Fractional part
	if l.current() == '.' && unicode.IsDigit(l.lookahead(1)) {
		kind = Float
		l.advance()
		l.scanDigits()
	}
	// Exponent
	if c := l.current(); c == 'e' || c == 'E' {
		if d := l.lookahead(1); unicode.IsDigit(d) ||
			((d == '+' || d == '-') && unicode.IsDigit(l.lookahead(2))) {
			kind = Float
			l.advance()
			//
			if c := l.current(); c == '+' || c == '-' {
				l.advance()
			}
			//
			l.scanDigits()
		}
	}
	//
	l.emit(kind, l.textFrom(start), start)
}

func (l *lexer) scanDigits() {
	for l.index < len(l.text) && unicode.IsDigit(l.text[l.index]) {
		l.advance()
	}
}

// Scan a double-quoted string literal, interpreting escape sequences.  The
// emitted token text holds the unescaped contents.
func (l *lexer) scanString() *source.SyntaxError {
	var (
		start   = l.position()
		builder strings.Builder
	)
	// Consume opening quote
	l.advance()
	//
	for l.index < len(l.text) {
		c := l.text[l.index]
		//
		switch c {
		case '"':
			l.advance()
			l.emit(String, builder.String(), start)
			//
			return nil
		case '\n':
			return l.srcfile.SyntaxError(source.NewSpan(start.index, l.index), "unterminated string literal")
		case '\\':
			escape, err := l.scanEscape()
			if err != nil {
				return err
			}
			//
			builder.WriteRune(escape)
		default:
			builder.WriteRune(c)
			l.advance()
		}
	}
	//
	return l.srcfile.SyntaxError(source.NewSpan(start.index, l.index), "unterminated string literal")
}

func (l *lexer) scanEscape() (rune, *source.SyntaxError) {
	start := l.index
	// Consume backslash
	l.advance()
	//
	if l.index >= len(l.text) {
		return 0, l.srcfile.SyntaxError(source.NewSpan(start, l.index), "unterminated string literal")
	}
	//
	c := l.text[l.index]
	l.advance()
	//
	switch c {
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case '\\':
		return '\\', nil
	case '"':
		return '"', nil
	}
	//
	return 0, l.srcfile.SyntaxError(source.NewSpan(start, l.index), "invalid escape sequence")
}

// Scan a maximal run of symbol characters.  Whether the resulting operator is
// reserved punctuation or a user-defined infix operator is decided by the
// parser.
func (l *lexer) scanOperator() {
	start := l.position()
	//
	for l.index < len(l.text) && strings.ContainsRune(operatorChars, l.text[l.index]) {
		l.advance()
	}
	//
	l.emit(Operator, l.textFrom(start), start)
}

// ============================================================================
// Helpers
// ============================================================================

// position fixes the (index, line, column) of the next character, marking the
// start of a token.
type position struct {
	index  int
	line   int
	column int
}

func (l *lexer) position() position {
	return position{l.index, l.line, l.column}
}

// Advance consumes one character, updating the line and column accordingly.
// Tabs count as a single column.
func (l *lexer) advance() {
	if l.text[l.index] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	//
	l.index++
}

// Current returns the next unconsumed character, or zero at end of input.
func (l *lexer) current() rune {
	return l.lookahead(0)
}

// Lookahead returns the character n positions beyond the next unconsumed
// character, or zero if that lies beyond the input.
func (l *lexer) lookahead(n int) rune {
	if l.index+n >= len(l.text) {
		return 0
	}
	//
	return l.text[l.index+n]
}

func (l *lexer) textFrom(start position) string {
	return string(l.text[start.index:l.index])
}

func (l *lexer) emit(kind Kind, text string, start position) {
	l.tokens = append(l.tokens, Token{
		Kind:   kind,
		Text:   text,
		Span:   source.NewSpan(start.index, l.index),
		Line:   start.line,
		Column: start.column,
	})
}

func punctuation(c rune) (Kind, bool) {
	switch c {
	case '(':
		return LeftParen, true
	case ')':
		return RightParen, true
	case '[':
		return LeftBracket, true
	case ']':
		return RightBracket, true
	case '{':
		return LeftBrace, true
	case '}':
		return RightBrace, true
	case ',':
		return Comma, true
	case ';':
		return Semicolon, true
	}
	//
	return 0, false
}

func isIdentStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isIdentPart(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '\''
}
