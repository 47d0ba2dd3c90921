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
	"github.com/consensys/go-fern/pkg/fern/ast"
	"github.com/consensys/go-fern/pkg/fern/lexer"
)

// parseType parses a type annotation, as found after "::".  The function
// arrow associates to the right and binds less tightly than application.
func (p *parser) parseType() (ast.Type, *Error) {
	start := p.index
	//
	argument, err := p.parseTypeApp()
	//
	if err != nil {
		return nil, err
	}
	//
	// An arrow which is not more indented than the active reference column
	// belongs to an enclosing construct, not to this type.
	if !p.peekOperator("->") || !p.moreIndented() {
		return argument, nil
	}
	//
	p.next()
	//
	result, err := p.parseType()
	//
	if err != nil {
		return nil, err
	}
	//
	typ := &ast.FunctionType{Argument: argument, Result: result}
	p.registerNode(typ, start)
	//
	return typ, nil
}

// Parse a left-leaning chain of type applications.
func (p *parser) parseTypeApp() (ast.Type, *Error) {
	start := p.index
	//
	fn, err := p.parseTypeAtom()
	//
	if err != nil {
		return nil, err
	}
	//
	for {
		arg, _, err := attempt(p, func() (ast.Type, *Error) {
			if err := p.requireMoreIndented("type annotation"); err != nil {
				return nil, err
			}
			//
			return p.parseTypeAtom()
		})
		//
		if err != nil {
			break
		}
		//
		fn = &ast.TypeApp{Fn: fn, Arg: arg}
		p.registerNode(fn, start)
	}
	//
	return fn, nil
}

func (p *parser) parseTypeAtom() (ast.Type, *Error) {
	start := p.index
	//
	if tok := p.matchKind(lexer.ProperName); tok.HasValue() {
		typ := &ast.TypeConstructor{Name: ast.NewQualified(tok.Unwrap().Text)}
		p.registerNode(typ, start)
		//
		return typ, nil
	} else if p.peekName() {
		typ := &ast.TypeVar{Name: p.next().Text}
		p.registerNode(typ, start)
		//
		return typ, nil
	} else if p.peek().Kind == lexer.LeftParen {
		p.next()
		//
		typ, err := p.parseType()
		//
		if err != nil {
			return nil, err
		}
		//
		if _, err := p.expectKind(lexer.RightParen, MalformedValue, "type annotation",
			"expected ')'"); err != nil {
			return nil, err
		}
		//
		return typ, nil
	}
	//
	return nil, p.errorHere(UnexpectedToken, "type annotation", "expected type")
}
