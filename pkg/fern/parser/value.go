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
	"strconv"

	"github.com/consensys/go-fern/pkg/fern/ast"
	"github.com/consensys/go-fern/pkg/fern/lexer"
)

// parseValue parses a single expression by layering postfix and infix syntax
// over an irreducible atom.  Infix chains of user-defined operators are
// collected left-leaning and deliberately left unresolved; real precedence
// and associativity are applied by a later phase, once fixity declarations
// are known.
func (p *parser) parseValue() (ast.Value, *Error) {
	start := p.index
	//
	lhs, err := p.parseTier2()
	//
	if err != nil {
		return nil, err
	}
	// Tier 3: user-defined infix operators.  An operator which is not more
	// indented than the active reference column is not consumed; it ends the
	// enclosing block's expression instead.
	for p.peekUserOperator() {
		op := p.peek()
		//
		rhs, _, err := attempt(p, func() (ast.Value, *Error) {
			if err := p.requireMoreIndented("expression"); err != nil {
				return nil, err
			}
			// Consume the operator.
			p.next()
			//
			if err := p.requireMoreIndented("expression"); err != nil {
				return nil, err
			}
			//
			return p.parseTier2()
		})
		// An invalid accessor target fails the whole production.
		if err != nil && err.Kind == InvalidAccessorTarget {
			return nil, err
		} else if err != nil {
			break
		}
		//
		lhs = &ast.BinaryOp{Op: op.Text, Left: lhs, Right: rhs}
		p.registerNode(lhs, start)
	}
	//
	return lhs, nil
}

// peekUserOperator checks whether the next token is an infix operator
// available to users, i.e. any operator which the grammar does not reserve.
func (p *parser) peekUserOperator() bool {
	tok := p.peek()
	return tok.Kind == lexer.Operator && !reservedOperators[tok.Text]
}

// Tier 2 wraps a value with function applications and type ascriptions.
// Each applied argument must be strictly more indented than the active
// reference column, and is itself passed back through tier 1.
func (p *parser) parseTier2() (ast.Value, *Error) {
	start := p.index
	//
	val, err := p.parseTier1()
	//
	if err != nil {
		return nil, err
	}
	//
	for {
		if p.peekOperator("::") {
			if !p.moreIndented() {
				break
			}
			//
			p.next()
			//
			typ, err := p.parseType()
			//
			if err != nil {
				return nil, err
			}
			//
			val = &ast.TypedValue{Checked: true, Value: val, Type: typ}
			p.registerNode(val, start)
			//
			continue
		}
		// Function application of a further atom.
		arg, _, err := attempt(p, func() (ast.Value, *Error) {
			if err := p.requireMoreIndented("expression"); err != nil {
				return nil, err
			}
			//
			return p.parseTier1()
		})
		// An invalid accessor target fails the whole production, rather
		// than merely ending the application chain.
		if err != nil && err.Kind == InvalidAccessorTarget {
			return nil, err
		} else if err != nil {
			break
		}
		//
		val = &ast.App{Fn: val, Arg: arg}
		p.registerNode(val, start)
	}
	//
	return val, nil
}

// Tier 1 wraps an atom with field accessors and record updates, applied left
// to right.  An accessor applied directly to a bare constructor reference is
// rejected outright: constructors are not record values in this position.
func (p *parser) parseTier1() (ast.Value, *Error) {
	start := p.index
	//
	val, err := p.parseValueAtom()
	//
	if err != nil {
		return nil, err
	}
	//
	for {
		next, _, err := attempt(p, func() (ast.Value, *Error) {
			return p.parsePostfixStep(val)
		})
		// An invalid accessor target fails the whole production, rather
		// than merely ending the postfix chain.
		if err != nil && err.Kind == InvalidAccessorTarget {
			return nil, err
		} else if err != nil {
			break
		}
		//
		val = next
		p.registerNode(val, start)
	}
	//
	return val, nil
}

// Parse a single accessor or record-update step following a given value.
func (p *parser) parsePostfixStep(val ast.Value) (ast.Value, *Error) {
	if p.peekOperator(".") {
		if err := p.requireMoreIndented("accessor"); err != nil {
			return nil, err
		}
		//
		dot := p.next()
		//
		if _, ok := val.(*ast.Constructor); ok {
			return nil, p.errorAt(InvalidAccessorTarget, dot.Span, "accessor",
				"constructor is not a record value")
		}
		//
		field, err := p.expectKind(lexer.Ident, MalformedValue, "accessor",
			"expected field name")
		//
		if err != nil {
			return nil, err
		}
		//
		return &ast.Accessor{Field: field.Text, Target: val}, nil
	} else if p.peek().Kind == lexer.LeftBrace {
		if err := p.requireMoreIndented("record update"); err != nil {
			return nil, err
		}
		//
		fields, err := p.parseFieldValues("record update")
		//
		if err != nil {
			return nil, err
		}
		//
		return &ast.ObjectUpdate{Target: val, Fields: fields}, nil
	}
	//
	return nil, p.errorHere(UnexpectedToken, "expression", "expected postfix operator")
}

// ===================================================================
// Atoms
// ===================================================================

// parseValueAtom parses an irreducible expression form.  Alternatives are
// tried in order with first-match-wins semantics; a failed alternative
// restores the exact position and layout state which held beforehand.
func (p *parser) parseValueAtom() (ast.Value, *Error) {
	return choice(p, UnexpectedToken, "expression",
		p.parseNumberLiteral,
		p.parseStringLiteral,
		p.parseBooleanLiteral,
		p.parseArrayLiteral,
		p.parseObjectLiteral,
		p.parseAbs,
		p.parseConstructorRef,
		p.parseVarRef,
		p.parseCase,
		p.parseIfThenElse,
		p.parseDo,
		p.parseLet,
		p.parseParens,
	)
}

func (p *parser) parseNumberLiteral() (ast.Value, *Error) {
	start := p.index
	//
	num, isFloat, err := p.parseNumber(MalformedValue, "expression")
	//
	if err != nil {
		return nil, err
	}
	//
	var val ast.Value
	//
	if isFloat {
		val = &ast.NumberLiteral{Float: num.(float64), IsFloat: true}
	} else {
		val = &ast.NumberLiteral{Int: num.(*big.Int)}
	}
	//
	p.registerNode(val, start)
	//
	return val, nil
}

// parseNumber recognises an integer or floating-point token, converting it
// exactly from its textual form.
func (p *parser) parseNumber(errkind ErrorKind, production string) (any, bool, *Error) {
	if tok := p.matchKind(lexer.Int); tok.HasValue() {
		num := new(big.Int)
		//
		if _, ok := num.SetString(tok.Unwrap().Text, 10); !ok {
			return nil, false, p.errorAt(errkind, tok.Unwrap().Span, production,
				"malformed integer literal")
		}
		//
		return num, false, nil
	} else if tok := p.matchKind(lexer.Float); tok.HasValue() {
		num, err := strconv.ParseFloat(tok.Unwrap().Text, 64)
		//
		if err != nil {
			return nil, false, p.errorAt(errkind, tok.Unwrap().Span, production,
				"malformed floating-point literal")
		}
		//
		return num, true, nil
	}
	//
	return nil, false, p.errorHere(UnexpectedToken, production, "expected numeric literal")
}

func (p *parser) parseStringLiteral() (ast.Value, *Error) {
	start := p.index
	//
	tok := p.matchKind(lexer.String)
	//
	if tok.IsEmpty() {
		return nil, p.errorHere(UnexpectedToken, "expression", "expected string literal")
	}
	//
	val := &ast.StringLiteral{Value: tok.Unwrap().Text}
	p.registerNode(val, start)
	//
	return val, nil
}

func (p *parser) parseBooleanLiteral() (ast.Value, *Error) {
	start := p.index
	//
	var value bool
	//
	if p.matchKeyword("true") {
		value = true
	} else if !p.matchKeyword("false") {
		return nil, p.errorHere(UnexpectedToken, "expression", "expected boolean literal")
	}
	//
	val := &ast.BooleanLiteral{Value: value}
	p.registerNode(val, start)
	//
	return val, nil
}

func (p *parser) parseArrayLiteral() (ast.Value, *Error) {
	start := p.index
	//
	if _, err := p.expectKind(lexer.LeftBracket, UnexpectedToken, "expression",
		"expected '['"); err != nil {
		return nil, err
	}
	//
	var elements []ast.Value
	//
	if p.peek().Kind != lexer.RightBracket {
		for {
			element, err := p.parseValue()
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
	if _, err := p.expectKind(lexer.RightBracket, MalformedValue, "array literal",
		"expected ']'"); err != nil {
		return nil, err
	}
	//
	val := &ast.ArrayLiteral{Elements: elements}
	p.registerNode(val, start)
	//
	return val, nil
}

func (p *parser) parseObjectLiteral() (ast.Value, *Error) {
	start := p.index
	//
	fields, err := p.parseFieldValues("object literal")
	//
	if err != nil {
		return nil, err
	}
	//
	val := &ast.ObjectLiteral{Fields: fields}
	p.registerNode(val, start)
	//
	return val, nil
}

// Parse a brace-enclosed, comma-separated sequence of "name = value" pairs,
// as found in object literals and record updates.
func (p *parser) parseFieldValues(production string) ([]ast.Field, *Error) {
	if _, err := p.expectKind(lexer.LeftBrace, UnexpectedToken, production,
		"expected '{'"); err != nil {
		return nil, err
	}
	//
	var fields []ast.Field
	//
	if p.peek().Kind != lexer.RightBrace {
		for {
			name, err := p.expectKind(lexer.Ident, MalformedValue, production,
				"expected field name")
			//
			if err != nil {
				return nil, err
			}
			//
			if err := p.expectOperator("=", MalformedValue, production); err != nil {
				return nil, err
			}
			//
			value, err := p.parseValue()
			//
			if err != nil {
				return nil, err
			}
			//
			fields = append(fields, ast.Field{Name: name.Text, Value: value})
			//
			if p.matchKind(lexer.Comma).IsEmpty() {
				break
			}
		}
	}
	//
	if _, err := p.expectKind(lexer.RightBrace, MalformedValue, production,
		"expected '}'"); err != nil {
		return nil, err
	}
	//
	return fields, nil
}

// Lambda argument: either a plain bound name, or a full binder in the
// no-parens position.
type absArg struct {
	name   string
	binder ast.Binder
}

// parseAbs parses a lambda abstraction.  Arguments are collected until the
// arrow is found, each strictly more indented than the active reference
// column; the resulting multi-argument lambda is constructed directly in its
// nested single-argument form, wrapping right-to-left around the body.
func (p *parser) parseAbs() (ast.Value, *Error) {
	start := p.index
	//
	if !p.matchOperator("\\") {
		return nil, p.errorHere(UnexpectedToken, "expression", "expected '\\'")
	}
	//
	var args []absArg
	//
	for !p.peekOperator("->") {
		if err := p.requireMoreIndented("lambda argument"); err != nil {
			return nil, err
		}
		//
		arg, err := p.parseAbsArg()
		//
		if err != nil {
			return nil, err
		}
		//
		args = append(args, arg)
	}
	//
	if len(args) == 0 {
		return nil, p.errorHere(MalformedValue, "lambda", "expected lambda argument")
	} else if err := p.requireMoreIndented("lambda"); err != nil {
		return nil, err
	}
	// Consume the arrow
	p.next()
	//
	body, err := p.parseValue()
	//
	if err != nil {
		return nil, err
	}
	// Wrap right-to-left, so the innermost node is the body.
	for i := len(args) - 1; i >= 0; i-- {
		if args[i].binder != nil {
			body = &ast.Abs{Arg: args[i].binder, Body: body}
		} else {
			body = &ast.Abs{Name: args[i].name, Body: body}
		}
		//
		p.registerNode(body, start)
	}
	//
	return body, nil
}

func (p *parser) parseAbsArg() (absArg, *Error) {
	if p.peekName() {
		return absArg{name: p.next().Text}, nil
	}
	//
	binder, err := p.parseBinderNoParens()
	//
	if err != nil {
		return absArg{}, err
	}
	//
	return absArg{binder: binder}, nil
}

func (p *parser) parseConstructorRef() (ast.Value, *Error) {
	start := p.index
	//
	tok := p.matchKind(lexer.ProperName)
	//
	if tok.IsEmpty() {
		return nil, p.errorHere(UnexpectedToken, "expression", "expected constructor")
	}
	//
	val := &ast.Constructor{Name: ast.NewQualified(tok.Unwrap().Text)}
	p.registerNode(val, start)
	//
	return val, nil
}

func (p *parser) parseVarRef() (ast.Value, *Error) {
	start := p.index
	//
	if !p.peekName() {
		return nil, p.errorHere(UnexpectedToken, "expression", "expected variable")
	}
	//
	val := &ast.Var{Name: ast.NewQualified(p.next().Text)}
	p.registerNode(val, start)
	//
	return val, nil
}

// parseCase parses a case expression with exactly one scrutinee.  The
// alternatives form a layout block anchored at the column of the first
// alternative; each further alternative must begin at exactly that column.
func (p *parser) parseCase() (ast.Value, *Error) {
	start := p.index
	//
	if !p.matchKeyword("case") {
		return nil, p.errorHere(UnexpectedToken, "expression", "expected 'case'")
	}
	//
	scrutinee, err := p.parseValue()
	//
	if err != nil {
		return nil, err
	}
	//
	if err := p.requireMoreIndented("case expression"); err != nil {
		return nil, err
	} else if !p.matchKeyword("of") {
		return nil, p.errorHere(MalformedValue, "case expression", "expected 'of'")
	}
	//
	if err := p.requireMoreIndented("case alternative"); err != nil {
		return nil, err
	}
	//
	p.markReference()
	defer p.unmarkReference()
	//
	var alternatives []ast.CaseAlternative
	//
	for {
		alternative, err := p.parseCaseAlternative()
		//
		if err != nil {
			return nil, err
		}
		//
		alternatives = append(alternatives, alternative)
		//
		if !p.atSameColumn() {
			break
		}
	}
	//
	val := &ast.Case{Scrutinee: scrutinee, Alternatives: alternatives}
	p.registerNode(val, start)
	//
	return val, nil
}

// Parse a single case alternative: a binder, an optional guard, an arrow and
// the resulting value.
func (p *parser) parseCaseAlternative() (ast.CaseAlternative, *Error) {
	var empty ast.CaseAlternative
	//
	binder, err := p.parseBinder()
	//
	if err != nil {
		return empty, err
	}
	//
	var guard *ast.Guard
	//
	if p.peekOperator("|") {
		if guard, err = p.parseGuard(); err != nil {
			return empty, err
		}
	}
	//
	if err := p.requireMoreIndented("case alternative"); err != nil {
		return empty, err
	} else if !p.matchOperator("->") {
		return empty, p.errorHere(MalformedValue, "case alternative", "expected '->'")
	}
	//
	if err := p.requireMoreIndented("case alternative"); err != nil {
		return empty, err
	}
	//
	result, err := p.parseValue()
	//
	if err != nil {
		return empty, err
	}
	//
	return ast.CaseAlternative{Binder: binder, Guard: guard, Result: result}, nil
}

// parseGuard parses a guard clause: a "|" followed by a condition, strictly
// more indented than the active reference column.
func (p *parser) parseGuard() (*ast.Guard, *Error) {
	start := p.index
	//
	if err := p.requireMoreIndented("guard"); err != nil {
		return nil, err
	} else if !p.matchOperator("|") {
		return nil, p.errorHere(UnexpectedToken, "guard", "expected '|'")
	}
	//
	if err := p.requireMoreIndented("guard"); err != nil {
		return nil, err
	}
	//
	condition, err := p.parseValue()
	//
	if err != nil {
		return nil, err
	}
	//
	guard := &ast.Guard{Condition: condition}
	p.registerNode(guard, start)
	//
	return guard, nil
}

func (p *parser) parseIfThenElse() (ast.Value, *Error) {
	start := p.index
	//
	if !p.matchKeyword("if") {
		return nil, p.errorHere(UnexpectedToken, "expression", "expected 'if'")
	}
	//
	condition, err := p.parseValue()
	//
	if err != nil {
		return nil, err
	}
	//
	if err := p.requireMoreIndented("conditional"); err != nil {
		return nil, err
	} else if !p.matchKeyword("then") {
		return nil, p.errorHere(MalformedValue, "conditional", "expected 'then'")
	}
	//
	thenValue, err := p.parseValue()
	//
	if err != nil {
		return nil, err
	}
	//
	if err := p.requireMoreIndented("conditional"); err != nil {
		return nil, err
	} else if !p.matchKeyword("else") {
		return nil, p.errorHere(MalformedValue, "conditional", "expected 'else'")
	}
	//
	elseValue, err := p.parseValue()
	//
	if err != nil {
		return nil, err
	}
	//
	val := &ast.IfThenElse{Condition: condition, Then: thenValue, Else: elseValue}
	p.registerNode(val, start)
	//
	return val, nil
}

// parseDo parses a do-block.  The usual form is a layout block anchored at
// the column of the first element; the explicit form encloses
// semicolon-separated elements in braces and is insensitive to layout.
func (p *parser) parseDo() (ast.Value, *Error) {
	var (
		start    = p.index
		elements []ast.DoNotationElement
		err      *Error
	)
	//
	if !p.matchKeyword("do") {
		return nil, p.errorHere(UnexpectedToken, "expression", "expected 'do'")
	}
	//
	if p.peek().Kind == lexer.LeftBrace {
		elements, err = p.parseBracedDoElements()
	} else {
		elements, err = p.parseLayoutDoElements()
	}
	//
	if err != nil {
		return nil, err
	}
	//
	val := &ast.Do{Elements: elements}
	p.registerNode(val, start)
	//
	return val, nil
}

func (p *parser) parseLayoutDoElements() ([]ast.DoNotationElement, *Error) {
	if err := p.requireMoreIndented("do block"); err != nil {
		return nil, err
	}
	//
	p.markReference()
	defer p.unmarkReference()
	//
	var elements []ast.DoNotationElement
	//
	for {
		element, err := p.parseDoElement()
		//
		if err != nil {
			return nil, err
		}
		//
		elements = append(elements, element)
		//
		if !p.atSameColumn() {
			break
		}
	}
	//
	return elements, nil
}

func (p *parser) parseBracedDoElements() ([]ast.DoNotationElement, *Error) {
	// Consume the opening brace
	p.next()
	//
	var elements []ast.DoNotationElement
	//
	for {
		element, err := p.parseDoElement()
		//
		if err != nil {
			return nil, err
		}
		//
		elements = append(elements, element)
		//
		if p.matchKind(lexer.Semicolon).IsEmpty() {
			break
		}
	}
	//
	if _, err := p.expectKind(lexer.RightBrace, MalformedValue, "do block",
		"expected '}'"); err != nil {
		return nil, err
	}
	//
	return elements, nil
}

// Parse a single do-notation element.  A bind is tried first, then a let,
// and lastly a bare value.
func (p *parser) parseDoElement() (ast.DoNotationElement, *Error) {
	return choice(p, UnexpectedToken, "do element",
		p.parseDoBind,
		p.parseDoLet,
		p.parseDoValue,
	)
}

func (p *parser) parseDoBind() (ast.DoNotationElement, *Error) {
	start := p.index
	//
	binder, err := p.parseBinder()
	//
	if err != nil {
		return nil, err
	}
	//
	if err := p.requireMoreIndented("do bind"); err != nil {
		return nil, err
	} else if !p.matchOperator("<-") {
		return nil, p.errorHere(UnexpectedToken, "do bind", "expected '<-'")
	}
	//
	if err := p.requireMoreIndented("do bind"); err != nil {
		return nil, err
	}
	//
	value, err := p.parseValue()
	//
	if err != nil {
		return nil, err
	}
	//
	element := &ast.DoBind{Binder: binder, Value: value}
	p.registerNode(element, start)
	//
	return element, nil
}

func (p *parser) parseDoLet() (ast.DoNotationElement, *Error) {
	start := p.index
	//
	if !p.matchKeyword("let") {
		return nil, p.errorHere(UnexpectedToken, "do let", "expected 'let'")
	}
	//
	binder, err := p.parseBinder()
	//
	if err != nil {
		return nil, err
	}
	//
	if err := p.requireMoreIndented("do let"); err != nil {
		return nil, err
	} else if !p.matchOperator("=") {
		return nil, p.errorHere(UnexpectedToken, "do let", "expected '='")
	}
	//
	if err := p.requireMoreIndented("do let"); err != nil {
		return nil, err
	}
	//
	value, err := p.parseValue()
	//
	if err != nil {
		return nil, err
	}
	//
	element := &ast.DoLet{Binder: binder, Value: value}
	p.registerNode(element, start)
	//
	return element, nil
}

func (p *parser) parseDoValue() (ast.DoNotationElement, *Error) {
	start := p.index
	//
	value, err := p.parseValue()
	//
	if err != nil {
		return nil, err
	}
	//
	element := &ast.DoValue{Value: value}
	p.registerNode(element, start)
	//
	return element, nil
}

// The left-hand side of a let binding: either a named function binding with
// argument patterns, or a single destructuring binder.
type letHead struct {
	name   string
	args   []ast.Binder
	binder ast.Binder
}

// parseLet parses a let/in expression.  The left-hand side is tried first as
// a named function binding, falling back to a destructuring binder.
func (p *parser) parseLet() (ast.Value, *Error) {
	start := p.index
	//
	if !p.matchKeyword("let") {
		return nil, p.errorHere(UnexpectedToken, "expression", "expected 'let'")
	}
	//
	head, _, err := attempt(p, p.parseNamedLetHead)
	//
	if err != nil {
		binder, err := p.parseBinder()
		//
		if err != nil {
			return nil, err
		}
		//
		head = letHead{binder: binder}
	}
	//
	if err := p.requireMoreIndented("let binding"); err != nil {
		return nil, err
	} else if !p.matchOperator("=") {
		return nil, p.errorHere(MalformedValue, "let binding", "expected '='")
	}
	//
	bound, err := p.parseValue()
	//
	if err != nil {
		return nil, err
	}
	//
	if err := p.requireMoreIndented("let binding"); err != nil {
		return nil, err
	} else if !p.matchKeyword("in") {
		return nil, p.errorHere(MalformedValue, "let binding", "expected 'in'")
	}
	//
	body, err := p.parseValue()
	//
	if err != nil {
		return nil, err
	}
	//
	val := &ast.Let{
		Name:   head.name,
		Args:   head.args,
		Binder: head.binder,
		Bound:  bound,
		Body:   body,
	}
	p.registerNode(val, start)
	//
	return val, nil
}

// Parse the named-function form of a let left-hand side: an identifier
// followed by zero or more argument patterns in the no-parens position, up
// to the "=".
func (p *parser) parseNamedLetHead() (letHead, *Error) {
	if !p.peekName() {
		return letHead{}, p.errorHere(UnexpectedToken, "let binding", "expected name")
	}
	//
	head := letHead{name: p.next().Text}
	//
	for !p.peekOperator("=") {
		arg, _, err := attempt(p, func() (ast.Binder, *Error) {
			if err := p.requireMoreIndented("let binding"); err != nil {
				return nil, err
			}
			//
			return p.parseBinderNoParens()
		})
		//
		if err != nil {
			return letHead{}, err
		}
		//
		head.args = append(head.args, arg)
	}
	//
	return head, nil
}

func (p *parser) parseParens() (ast.Value, *Error) {
	start := p.index
	//
	if _, err := p.expectKind(lexer.LeftParen, UnexpectedToken, "expression",
		"expected '('"); err != nil {
		return nil, err
	}
	//
	value, err := p.parseValue()
	//
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expectKind(lexer.RightParen, MalformedValue, "expression",
		"expected ')'"); err != nil {
		return nil, err
	}
	//
	val := &ast.Parens{Value: value}
	p.registerNode(val, start)
	//
	return val, nil
}
