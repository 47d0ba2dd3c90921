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
package ast

import (
	"math/big"
	"strconv"
)

// Field pairs a field name with a value, as found in object literals and
// record updates.  Duplicate names are permitted by the parser and left to a
// later phase.
type Field struct {
	Name  string
	Value Value
}

// ============================================================================
// Literals
// ============================================================================

// NumberLiteral is a numeric literal.  Integers are held exactly; floating
// literals are converted from their textual form without precision loss.
type NumberLiteral struct {
	// Exact integral value, when the literal had no fractional part or
	// exponent.
	Int *big.Int
	// Floating value otherwise.
	Float float64
	// Indicates which of the two fields holds the value.
	IsFloat bool
}

// StringLiteral is a string literal holding its (unescaped) contents.
type StringLiteral struct{ Value string }

// BooleanLiteral is "true" or "false".
type BooleanLiteral struct{ Value bool }

// ArrayLiteral is an ordered sequence of element values.
type ArrayLiteral struct{ Elements []Value }

// ObjectLiteral is an ordered sequence of named field values.
type ObjectLiteral struct{ Fields []Field }

// ============================================================================
// Names
// ============================================================================

// Var is a reference to a (qualified) variable.
type Var struct{ Name Qualified }

// Constructor is a reference to a (qualified) data constructor.
type Constructor struct{ Name Qualified }

// ============================================================================
// Abstraction & application
// ============================================================================

// Abs is a single-argument lambda abstraction.  The argument is either a
// plain bound name or a full binder; exactly one of the two fields is set.  A
// multi-argument lambda in the source is represented as nested abstractions,
// constructed right-to-left by the parser.
type Abs struct {
	// Name of the bound variable, when the argument is a plain identifier.
	Name string
	// Pattern for the argument, otherwise.
	Arg Binder
	// Body of the abstraction.
	Body Value
}

// App applies a function value to a single argument value.
type App struct {
	Fn  Value
	Arg Value
}

// ============================================================================
// Control constructs
// ============================================================================

// Case scrutinises exactly one value against an ordered sequence of
// alternatives.
type Case struct {
	Scrutinee    Value
	Alternatives []CaseAlternative
}

// CaseAlternative is one alternative of a case expression: a binder, an
// optional guard, and the resulting value.
type CaseAlternative struct {
	Binder Binder
	// Guard condition, or nil when the alternative is unguarded.
	Guard  *Guard
	Result Value
}

// Guard wraps a value interpreted as a boolean condition on a case
// alternative.
type Guard struct{ Condition Value }

// IfThenElse is a conditional expression.
type IfThenElse struct {
	Condition Value
	Then      Value
	Else      Value
}

// Let binds a value within a body expression.  The left-hand side is either a
// named function binding (Name plus zero or more argument patterns) or a
// single binder destructuring the bound value; Name is empty in the latter
// case.
type Let struct {
	// Name of the bound function, for the named form.
	Name string
	// Argument patterns of the bound function, for the named form.
	Args []Binder
	// Destructuring pattern, for the binder form.
	Binder Binder
	// The bound value.
	Bound Value
	// The body in which the binding is visible.
	Body Value
}

// Do is a do-block: an ordered sequence of do-notation elements.
type Do struct{ Elements []DoNotationElement }

// ============================================================================
// Postfix forms
// ============================================================================

// Accessor projects a named field out of a target value.  The parser rejects
// a target which is a bare constructor reference.
type Accessor struct {
	Field  string
	Target Value
}

// ObjectUpdate produces a copy of the target record with the named fields
// replaced.
type ObjectUpdate struct {
	Target Value
	Fields []Field
}

// BinaryOp is an unresolved binary application of a user-defined infix
// operator.  Chains are left-leaning by construction; precedence and
// associativity are resolved by a later phase once fixity declarations are
// known.
type BinaryOp struct {
	Op    string
	Left  Value
	Right Value
}

// TypedValue ascribes a type to a value.
type TypedValue struct {
	// Indicates whether the ascription should be checked at runtime.
	Checked bool
	Value   Value
	Type    Type
}

// Parens wraps a parenthesised value.  It is purely syntactic.
type Parens struct{ Value Value }

// ============================================================================
// Do-notation elements
// ============================================================================

// DoBind binds the result of a computation to a pattern ("b <- v").
type DoBind struct {
	Binder Binder
	Value  Value
}

// DoLet binds a pure value to a pattern within a do-block ("let b = v").
type DoLet struct {
	Binder Binder
	Value  Value
}

// DoValue is a bare computation within a do-block.
type DoValue struct{ Value Value }

// ============================================================================
// Printing
// ============================================================================

func (e *NumberLiteral) print(p *printer) {
	if e.IsFloat {
		p.write(strconv.FormatFloat(e.Float, 'g', -1, 64))
	} else {
		p.write(e.Int.String())
	}
}

func (e *StringLiteral) print(p *printer) {
	p.write(escapeString(e.Value))
}

func (e *BooleanLiteral) print(p *printer) {
	p.write(strconv.FormatBool(e.Value))
}

func (e *ArrayLiteral) print(p *printer) {
	p.write("[")
	//
	for i, element := range e.Elements {
		if i != 0 {
			p.write(", ")
		}
		//
		element.print(p)
	}
	//
	p.write("]")
}

func (e *ObjectLiteral) print(p *printer) {
	printFields(p, e.Fields)
}

func (e *Var) print(p *printer) {
	p.write(e.Name.String())
}

func (e *Constructor) print(p *printer) {
	p.write(e.Name.String())
}

func (e *Abs) print(p *printer) {
	p.write("\\")
	//
	if e.Arg != nil {
		printBinderAtom(p, e.Arg)
	} else {
		p.write(e.Name)
	}
	//
	p.write(" -> ")
	e.Body.print(p)
}

func (e *App) print(p *printer) {
	e.Fn.print(p)
	p.write(" ")
	e.Arg.print(p)
}

func (e *Case) print(p *printer) {
	// Alternatives align two columns beyond the case keyword itself.
	column := p.column() + 2
	//
	p.write("case ")
	e.Scrutinee.print(p)
	p.write(" of")
	//
	for i := range e.Alternatives {
		p.newline(column)
		e.Alternatives[i].print(p)
	}
}

func (a *CaseAlternative) print(p *printer) {
	a.Binder.print(p)
	//
	if a.Guard != nil {
		p.write(" | ")
		a.Guard.Condition.print(p)
	}
	//
	p.write(" -> ")
	a.Result.print(p)
}

func (g *Guard) print(p *printer) {
	p.write("| ")
	g.Condition.print(p)
}

func (e *IfThenElse) print(p *printer) {
	p.write("if ")
	e.Condition.print(p)
	p.write(" then ")
	e.Then.print(p)
	p.write(" else ")
	e.Else.print(p)
}

func (e *Let) print(p *printer) {
	p.write("let ")
	//
	if e.Name != "" {
		p.write(e.Name)
		//
		for _, arg := range e.Args {
			p.write(" ")
			printBinderAtom(p, arg)
		}
	} else {
		e.Binder.print(p)
	}
	//
	p.write(" = ")
	e.Bound.print(p)
	p.write(" in ")
	e.Body.print(p)
}

func (e *Do) print(p *printer) {
	// The braced form is used so that printed do-blocks are insensitive to
	// the column at which they are embedded.
	p.write("do { ")
	//
	for i, element := range e.Elements {
		if i != 0 {
			p.write(" ; ")
		}
		//
		element.print(p)
	}
	//
	p.write(" }")
}

func (e *Accessor) print(p *printer) {
	e.Target.print(p)
	p.write(".")
	p.write(e.Field)
}

func (e *ObjectUpdate) print(p *printer) {
	e.Target.print(p)
	p.write(" ")
	printFields(p, e.Fields)
}

func (e *BinaryOp) print(p *printer) {
	e.Left.print(p)
	p.write(" ")
	p.write(e.Op)
	p.write(" ")
	e.Right.print(p)
}

func (e *TypedValue) print(p *printer) {
	e.Value.print(p)
	p.write(" :: ")
	e.Type.print(p)
}

func (e *Parens) print(p *printer) {
	p.write("(")
	e.Value.print(p)
	p.write(")")
}

func (e *DoBind) print(p *printer) {
	e.Binder.print(p)
	p.write(" <- ")
	e.Value.print(p)
}

func (e *DoLet) print(p *printer) {
	p.write("let ")
	e.Binder.print(p)
	p.write(" = ")
	e.Value.print(p)
}

func (e *DoValue) print(p *printer) {
	e.Value.print(p)
}

func printFields(p *printer, fields []Field) {
	if len(fields) == 0 {
		p.write("{}")
		return
	}
	//
	p.write("{ ")
	//
	for i, field := range fields {
		if i != 0 {
			p.write(", ")
		}
		//
		p.write(field.Name)
		p.write(" = ")
		field.Value.print(p)
	}
	//
	p.write(" }")
}

// ============================================================================
// Boilerplate
// ============================================================================

func (e *NumberLiteral) String() string  { return render(e) }
func (e *StringLiteral) String() string  { return render(e) }
func (e *BooleanLiteral) String() string { return render(e) }
func (e *ArrayLiteral) String() string   { return render(e) }
func (e *ObjectLiteral) String() string  { return render(e) }
func (e *Var) String() string            { return render(e) }
func (e *Constructor) String() string    { return render(e) }
func (e *Abs) String() string            { return render(e) }
func (e *App) String() string            { return render(e) }
func (e *Case) String() string           { return render(e) }
func (a *CaseAlternative) String() string { return render(a) }
func (g *Guard) String() string          { return render(g) }
func (e *IfThenElse) String() string     { return render(e) }
func (e *Let) String() string            { return render(e) }
func (e *Do) String() string             { return render(e) }
func (e *Accessor) String() string       { return render(e) }
func (e *ObjectUpdate) String() string   { return render(e) }
func (e *BinaryOp) String() string       { return render(e) }
func (e *TypedValue) String() string     { return render(e) }
func (e *Parens) String() string         { return render(e) }
func (e *DoBind) String() string         { return render(e) }
func (e *DoLet) String() string          { return render(e) }
func (e *DoValue) String() string        { return render(e) }

func (e *NumberLiteral) isValue()  {}
func (e *StringLiteral) isValue()  {}
func (e *BooleanLiteral) isValue() {}
func (e *ArrayLiteral) isValue()   {}
func (e *ObjectLiteral) isValue()  {}
func (e *Var) isValue()            {}
func (e *Constructor) isValue()    {}
func (e *Abs) isValue()            {}
func (e *App) isValue()            {}
func (e *Case) isValue()           {}
func (e *IfThenElse) isValue()     {}
func (e *Let) isValue()            {}
func (e *Do) isValue()             {}
func (e *Accessor) isValue()       {}
func (e *ObjectUpdate) isValue()   {}
func (e *BinaryOp) isValue()       {}
func (e *TypedValue) isValue()     {}
func (e *Parens) isValue()         {}

func (e *DoBind) isDoNotationElement()  {}
func (e *DoLet) isDoNotationElement()   {}
func (e *DoValue) isDoNotationElement() {}
