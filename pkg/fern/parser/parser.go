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
package parser

import (
	"fmt"

	"github.com/consensys/go-fern/pkg/fern/ast"
	"github.com/consensys/go-fern/pkg/fern/lexer"
	"github.com/consensys/go-fern/pkg/util"
	"github.com/consensys/go-fern/pkg/util/collection/stack"
	"github.com/consensys/go-fern/pkg/util/source"
)

// Words which cannot be used as variable names or binders.
var reservedWords = map[string]bool{
	"case": true, "of": true, "if": true, "then": true, "else": true,
	"let": true, "in": true, "do": true, "true": true, "false": true,
}

// Operators which carry fixed meaning in the grammar, and hence are not
// available as user-defined infix operators.
var reservedOperators = map[string]bool{
	"=": true, "->": true, "<-": true, "::": true, "|": true,
	"\\": true, ".": true, "@": true,
}

// ===================================================================
// Public
// ===================================================================

// ParseValue parses the given source file as exactly one expression,
// producing the resulting tree along with a map from constructed nodes to
// their spans in the original text.
func ParseValue(srcfile *source.File) (ast.Value, *source.Map[ast.Node], *Error) {
	p, err := newParser(srcfile)
	//
	if err != nil {
		return nil, nil, err
	}
	//
	value, err := p.parseValue()
	//
	if err == nil {
		err = p.expectEndOfFile("expression")
	}
	//
	if err != nil {
		return nil, nil, err
	}
	//
	return value, p.nodemap, nil
}

// ParseBinder parses the given source file as exactly one binder, producing
// the resulting tree along with a map from constructed nodes to their spans
// in the original text.
func ParseBinder(srcfile *source.File) (ast.Binder, *source.Map[ast.Node], *Error) {
	p, err := newParser(srcfile)
	//
	if err != nil {
		return nil, nil, err
	}
	//
	binder, err := p.parseBinder()
	//
	if err == nil {
		err = p.expectEndOfFile("binder")
	}
	//
	if err != nil {
		return nil, nil, err
	}
	//
	return binder, p.nodemap, nil
}

// ParseGuard parses the given source file as exactly one guard clause (a "|"
// followed by a condition), as found within case alternatives.
func ParseGuard(srcfile *source.File) (*ast.Guard, *source.Map[ast.Node], *Error) {
	p, err := newParser(srcfile)
	//
	if err != nil {
		return nil, nil, err
	}
	//
	guard, err := p.parseGuard()
	//
	if err == nil {
		err = p.expectEndOfFile("guard")
	}
	//
	if err != nil {
		return nil, nil, err
	}
	//
	return guard, p.nodemap, nil
}

// ParseDoElements parses the given source file as exactly one do-block,
// returning its elements in source order.
func ParseDoElements(srcfile *source.File) ([]ast.DoNotationElement, *source.Map[ast.Node], *Error) {
	p, err := newParser(srcfile)
	//
	if err != nil {
		return nil, nil, err
	}
	//
	value, err := p.parseDo()
	//
	if err == nil {
		err = p.expectEndOfFile("do block")
	}
	//
	if err != nil {
		return nil, nil, err
	}
	// Safe, since parseDo only ever constructs a do-block.
	block := value.(*ast.Do)
	//
	return block.Elements, p.nodemap, nil
}

// ParseValueString is a convenience function which parses a given string as
// exactly one expression.
func ParseValueString(input string) (ast.Value, *source.Map[ast.Node], *Error) {
	return ParseValue(source.NewSourceFile("", []byte(input)))
}

// ParseBinderString is a convenience function which parses a given string as
// exactly one binder.
func ParseBinderString(input string) (ast.Binder, *source.Map[ast.Node], *Error) {
	return ParseBinder(source.NewSourceFile("", []byte(input)))
}

// ===================================================================
// Parser state
// ===================================================================

// parser holds the state threaded through every production: the token
// stream, the current position within it, the stack of layout reference
// columns, and the node map being populated.  Backtracking restores the
// position and the layout stack exactly, so a failed alternative leaves no
// observable trace.
type parser struct {
	// Source file being parsed.
	srcfile *source.File
	// Tokens being parsed, always ending with an end-of-file sentinel.
	tokens []lexer.Token
	// Current position within the token stream.
	index int
	// Stack of layout reference columns.  The bottom entry is zero, so that
	// the layout rule is vacuous outside any block construct.
	layout *stack.Stack[int]
	// Mapping from constructed nodes to their spans in the original text.
	nodemap *source.Map[ast.Node]
}

func newParser(srcfile *source.File) (*parser, *Error) {
	tokens, err := lexer.Lex(srcfile)
	//
	if err != nil {
		return nil, &Error{UnexpectedToken, "token", err}
	}
	//
	layout := stack.NewStack[int]()
	layout.Push(0)
	//
	return &parser{
		srcfile: srcfile,
		tokens:  tokens,
		layout:  layout,
		nodemap: source.NewSourceMap[ast.Node](*srcfile),
	}, nil
}

// ===================================================================
// Backtracking
// ===================================================================

// snapshot captures everything needed to roll the parser back to an earlier
// state: the token position and the depth of the layout stack.
type snapshot struct {
	index  int
	layout uint
}

func (p *parser) save() snapshot {
	return snapshot{p.index, p.layout.Len()}
}

func (p *parser) restore(s snapshot) {
	p.index = s.index
	// Discard any reference columns pushed since the snapshot was taken.
	for p.layout.Len() > s.layout {
		p.layout.Pop()
	}
}

// attempt runs a single alternative, rewinding the token position and layout
// stack exactly when it fails.  The position reached before failing is also
// returned, allowing an enclosing choice to report the most advanced error.
func attempt[T any](p *parser, alternative func() (T, *Error)) (T, int, *Error) {
	snap := p.save()
	//
	value, err := alternative()
	//
	progress := p.index
	//
	if err != nil {
		p.restore(snap)
	}
	//
	return value, progress, err
}

// choice tries each alternative in order, returning the result of the first
// one which succeeds.  When every alternative fails, the error reported is
// that of the alternative which consumed the most input or, when none made
// any progress, a fresh failure at the current token.
func choice[T any](p *parser, kind ErrorKind, production string,
	alternatives ...func() (T, *Error)) (T, *Error) {
	//
	var (
		empty    T
		best     *Error
		furthest = p.index
	)
	//
	for _, alternative := range alternatives {
		value, progress, err := attempt(p, alternative)
		//
		if err == nil {
			return value, nil
		} else if progress > furthest {
			furthest, best = progress, err
		}
	}
	//
	if best != nil {
		return empty, best
	}
	//
	return empty, p.errorHere(kind, production, fmt.Sprintf("expected %s", production))
}

// ===================================================================
// Layout
// ===================================================================

// markReference pushes a new layout reference column, namely the column of
// the next token.  Every mark is balanced by unmarkReference when the
// enclosing block construct is left; backtracking discards unbalanced marks.
func (p *parser) markReference() {
	p.layout.Push(p.peek().Column)
}

func (p *parser) unmarkReference() {
	p.layout.Pop()
}

// atSameColumn checks whether the next token sits exactly at the active
// reference column, indicating a further element of the current block.
func (p *parser) atSameColumn() bool {
	tok := p.peek()
	return tok.Kind != lexer.EndOfFile && tok.Column == p.layout.Peek(0)
}

// moreIndented checks whether the next token is strictly more indented than
// the active reference column.
func (p *parser) moreIndented() bool {
	tok := p.peek()
	return tok.Kind != lexer.EndOfFile && tok.Column > p.layout.Peek(0)
}

// requireMoreIndented fails with a layout violation unless the next token is
// strictly more indented than the active reference column.
func (p *parser) requireMoreIndented(production string) *Error {
	if p.moreIndented() {
		return nil
	}
	//
	return p.errorHere(LayoutViolation, production,
		fmt.Sprintf("insufficient indentation in %s", production))
}

// ===================================================================
// Tokens
// ===================================================================

// peek returns the next token without consuming it.  This is always safe,
// since the token stream ends with an end-of-file sentinel.
func (p *parser) peek() lexer.Token {
	return p.tokens[p.index]
}

// next consumes and returns the next token.  The end-of-file sentinel is
// never consumed.
func (p *parser) next() lexer.Token {
	tok := p.tokens[p.index]
	//
	if tok.Kind != lexer.EndOfFile {
		p.index++
	}
	//
	return tok
}

// matchKind consumes the next token provided it has a given kind.
func (p *parser) matchKind(kind lexer.Kind) util.Option[lexer.Token] {
	if p.peek().Kind == kind {
		return util.Some(p.next())
	}
	//
	return util.None[lexer.Token]()
}

// matchOperator consumes the next token provided it is an operator with the
// given text.
func (p *parser) matchOperator(text string) bool {
	if tok := p.peek(); tok.Is(lexer.Operator, text) {
		p.next()
		return true
	}
	//
	return false
}

// peekOperator checks whether the next token is an operator with the given
// text, without consuming it.
func (p *parser) peekOperator(text string) bool {
	tok := p.peek()
	return tok.Is(lexer.Operator, text)
}

// matchKeyword consumes the next token provided it is a given reserved word.
func (p *parser) matchKeyword(word string) bool {
	if tok := p.peek(); tok.Is(lexer.Ident, word) {
		p.next()
		return true
	}
	//
	return false
}

// peekName checks whether the next token is a plain identifier, i.e. one
// which is neither a reserved word nor the wildcard.
func (p *parser) peekName() bool {
	tok := p.peek()
	return tok.Kind == lexer.Ident && !reservedWords[tok.Text] && tok.Text != "_"
}

// expectKind consumes the next token, failing with a given error kind unless
// it matches.
func (p *parser) expectKind(kind lexer.Kind, errkind ErrorKind, production string,
	msg string) (lexer.Token, *Error) {
	//
	if tok := p.matchKind(kind); tok.HasValue() {
		return tok.Unwrap(), nil
	}
	//
	return lexer.Token{}, p.errorHere(errkind, production, msg)
}

// expectOperator consumes the next token, failing with a given error kind
// unless it is an operator with the given text.
func (p *parser) expectOperator(text string, errkind ErrorKind, production string) *Error {
	if p.matchOperator(text) {
		return nil
	}
	//
	return p.errorHere(errkind, production, fmt.Sprintf("expected '%s'", text))
}

// expectEndOfFile fails unless the whole token stream has been consumed.
func (p *parser) expectEndOfFile(production string) *Error {
	if p.peek().Kind == lexer.EndOfFile {
		return nil
	}
	//
	return p.errorHere(UnexpectedToken, production,
		fmt.Sprintf("unexpected token after %s", production))
}

// ===================================================================
// Errors & node registration
// ===================================================================

// errorHere constructs a failure positioned at the next token.
func (p *parser) errorHere(kind ErrorKind, production string, msg string) *Error {
	return p.errorAt(kind, p.peek().Span, production, msg)
}

// errorAt constructs a failure positioned at a given span.
func (p *parser) errorAt(kind ErrorKind, span source.Span, production string, msg string) *Error {
	return &Error{kind, production, p.srcfile.SyntaxError(span, msg)}
}

// registerNode records the span of a freshly constructed node, running from
// the token at a given starting position up to the last token consumed.
func (p *parser) registerNode(node ast.Node, start int) {
	var (
		first = p.tokens[start].Span
		last  = first
	)
	//
	if p.index > start {
		last = p.tokens[p.index-1].Span
	}
	// Zero-size nodes (the wildcard binder) share a single allocation, so the
	// same pointer can reach here more than once; the first span wins.
	if !p.nodemap.Has(node) {
		p.nodemap.Put(node, source.NewSpan(first.Start(), last.End()))
	}
}
