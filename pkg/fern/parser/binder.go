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
	"math/big"

	"github.com/consensys/go-fern/pkg/fern/ast"
	"github.com/consensys/go-fern/pkg/fern/lexer"
)

// parseBinder parses a pattern as found on the left of a case alternative or
// let binding.  The cons operator is layered over the atoms and associates to
// the right, so "x : y : zs" destructures as "x : (y : zs)".
func (p *parser) parseBinder() (ast.Binder, *Error) {
	start := p.index
	//
	head, err := p.parseBinderAtom(true)
	//
	if err != nil {
		return nil, err
	}
	//
	if !p.peekOperator(":") || !p.moreIndented() {
		return head, nil
	}
	// Consume the cons operator
	p.next()
	//
	tail, err := p.parseBinder()
	//
	if err != nil {
		return nil, err
	}
	//
	binder := &ast.ConsBinder{Head: head, Tail: tail}
	p.registerNode(binder, start)
	//
	return binder, nil
}

// parseBinderNoParens parses a pattern in a position where juxtaposition is
// ambiguous, such as a lambda argument.  Constructors here take no arguments
// and cons is unavailable; either must be parenthesised.
func (p *parser) parseBinderNoParens() (ast.Binder, *Error) {
	return p.parseBinderAtom(false)
}

// parseBinderAtom parses an irreducible pattern form.  When ctorArgs is set,
// a constructor pattern may be applied to argument patterns; otherwise a bare
// constructor reference matches nullary constructors only.
func (p *parser) parseBinderAtom(ctorArgs bool) (ast.Binder, *Error) {
	return choice(p, UnexpectedToken, "binder",
		p.parseNullBinder,
		p.parseStringBinder,
		p.parseBooleanBinder,
		p.parseNumberBinder,
		p.parseNamedBinder,
		p.parseVarBinder,
		func() (ast.Binder, *Error) { return p.parseConstructorBinder(ctorArgs) },
		p.parseObjectBinder,
		p.parseArrayBinder,
		p.parseParensBinder,
	)
}

func (p *parser) parseNullBinder() (ast.Binder, *Error) {
	start := p.index
	//
	if tok := p.peek(); !tok.Is(lexer.Ident, "_") {
		return nil, p.errorHere(UnexpectedToken, "binder", "expected '_'")
	}
	//
	p.next()
	//
	binder := &ast.NullBinder{}
	p.registerNode(binder, start)
	//
	return binder, nil
}

func (p *parser) parseStringBinder() (ast.Binder, *Error) {
	start := p.index
	//
	tok := p.matchKind(lexer.String)
	//
	if tok.IsEmpty() {
		return nil, p.errorHere(UnexpectedToken, "binder", "expected string literal")
	}
	//
	binder := &ast.StringBinder{Value: tok.Unwrap().Text}
	p.registerNode(binder, start)
	//
	return binder, nil
}

func (p *parser) parseBooleanBinder() (ast.Binder, *Error) {
	start := p.index
	//
	var value bool
	//
	if p.matchKeyword("true") {
		value = true
	} else if !p.matchKeyword("false") {
		return nil, p.errorHere(UnexpectedToken, "binder", "expected boolean literal")
	}
	//
	binder := &ast.BooleanBinder{Value: value}
	p.registerNode(binder, start)
	//
	return binder, nil
}

func (p *parser) parseNumberBinder() (ast.Binder, *Error) {
	start := p.index
	//
	num, isFloat, err := p.parseNumber(MalformedBinder, "binder")
	//
	if err != nil {
		return nil, err
	}
	//
	var binder ast.Binder
	//
	if isFloat {
		binder = &ast.NumberBinder{Float: num.(float64), IsFloat: true}
	} else {
		binder = &ast.NumberBinder{Int: num.(*big.Int)}
	}
	//
	p.registerNode(binder, start)
	//
	return binder, nil
}

// Parse an as-pattern, "name @ binder", which binds a name to the whole value
// matched by the inner pattern.
func (p *parser) parseNamedBinder() (ast.Binder, *Error) {
	start := p.index
	//
	if !p.peekName() {
		return nil, p.errorHere(UnexpectedToken, "binder", "expected name")
	}
	//
	name := p.next()
	//
	if !p.matchOperator("@") {
		return nil, p.errorHere(UnexpectedToken, "binder", "expected '@'")
	}
	//
	inner, err := p.parseBinderAtom(true)
	//
	if err != nil {
		return nil, err
	}
	//
	binder := &ast.NamedBinder{Name: name.Text, Binder: inner}
	p.registerNode(binder, start)
	//
	return binder, nil
}

func (p *parser) parseVarBinder() (ast.Binder, *Error) {
	start := p.index
	//
	if !p.peekName() {
		return nil, p.errorHere(UnexpectedToken, "binder", "expected variable")
	}
	//
	binder := &ast.VarBinder{Name: p.next().Text}
	p.registerNode(binder, start)
	//
	return binder, nil
}

func (p *parser) parseConstructorBinder(ctorArgs bool) (ast.Binder, *Error) {
	start := p.index
	//
	tok := p.matchKind(lexer.ProperName)
	//
	if tok.IsEmpty() {
		return nil, p.errorHere(UnexpectedToken, "binder", "expected constructor")
	}
	//
	var args []ast.Binder
	//
	// Argument patterns obey the layout rule: a pattern at or below the active
	// reference column starts something new rather than extending this one.
	for ctorArgs {
		arg, _, err := attempt(p, func() (ast.Binder, *Error) {
			if err := p.requireMoreIndented("binder"); err != nil {
				return nil, err
			}
			//
			return p.parseBinderAtom(false)
		})
		//
		if err != nil {
			break
		}
		//
		args = append(args, arg)
	}
	//
	binder := &ast.ConstructorBinder{Name: ast.NewQualified(tok.Unwrap().Text), Args: args}
	p.registerNode(binder, start)
	//
	return binder, nil
}

func (p *parser) parseObjectBinder() (ast.Binder, *Error) {
	start := p.index
	//
	if _, err := p.expectKind(lexer.LeftBrace, UnexpectedToken, "binder",
		"expected '{'"); err != nil {
		return nil, err
	}
	//
	var fields []ast.FieldBinder
	//
	if p.peek().Kind != lexer.RightBrace {
		for {
			name, err := p.expectKind(lexer.Ident, MalformedBinder, "object binder",
				"expected field name")
			//
			if err != nil {
				return nil, err
			}
			//
			if err := p.expectOperator("=", MalformedBinder, "object binder"); err != nil {
				return nil, err
			}
			//
			value, err := p.parseBinder()
			//
			if err != nil {
				return nil, err
			}
			//
			fields = append(fields, ast.FieldBinder{Name: name.Text, Binder: value})
			//
			if p.matchKind(lexer.Comma).IsEmpty() {
				break
			}
		}
	}
	//
	if _, err := p.expectKind(lexer.RightBrace, MalformedBinder, "object binder",
		"expected '}'"); err != nil {
		return nil, err
	}
	//
	binder := &ast.ObjectBinder{Fields: fields}
	p.registerNode(binder, start)
	//
	return binder, nil
}

func (p *parser) parseArrayBinder() (ast.Binder, *Error) {
	start := p.index
	//
	if _, err := p.expectKind(lexer.LeftBracket, UnexpectedToken, "binder",
		"expected '['"); err != nil {
		return nil, err
	}
	//
	var elements []ast.Binder
	//
	if p.peek().Kind != lexer.RightBracket {
		for {
			element, err := p.parseBinder()
			//
			if err != nil {
				return nil, err
			}
			//
			elements = append(elements, element)
			//
			if p.matchKind(lexer.Comma).IsEmpty() {
				break
			}
		}
	}
	//
	if _, err := p.expectKind(lexer.RightBracket, MalformedBinder, "array binder",
		"expected ']'"); err != nil {
		return nil, err
	}
	//
	binder := &ast.ArrayBinder{Elements: elements}
	p.registerNode(binder, start)
	//
	return binder, nil
}

// Parenthesised binders are transparent: the parentheses contribute nothing
// to the resulting tree.
func (p *parser) parseParensBinder() (ast.Binder, *Error) {
	if _, err := p.expectKind(lexer.LeftParen, UnexpectedToken, "binder",
		"expected '('"); err != nil {
		return nil, err
	}
	//
	binder, err := p.parseBinder()
	//
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expectKind(lexer.RightParen, MalformedBinder, "binder",
		"expected ')'"); err != nil {
		return nil, err
	}
	//
	return binder, nil
}
