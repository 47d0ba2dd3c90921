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

// TypeVar is a type variable.
type TypeVar struct{ Name string }

// TypeConstructor is a reference to a (qualified) named type.
type TypeConstructor struct{ Name Qualified }

// TypeApp applies a type to a single type argument.
type TypeApp struct {
	Fn  Type
	Arg Type
}

// FunctionType is the type of functions from Argument to Result.  The arrow
// is right-associative.
type FunctionType struct {
	Argument Type
	Result   Type
}

// ============================================================================
// Printing
// ============================================================================

func (t *TypeVar) print(p *printer) {
	p.write(t.Name)
}

func (t *TypeConstructor) print(p *printer) {
	p.write(t.Name.String())
}

func (t *TypeApp) print(p *printer) {
	t.Fn.print(p)
	p.write(" ")
	printTypeAtom(p, t.Arg)
}

func (t *FunctionType) print(p *printer) {
	// A function on the left of an arrow requires parentheses, as the arrow
	// is right-associative.
	if _, ok := t.Argument.(*FunctionType); ok {
		p.write("(")
		t.Argument.print(p)
		p.write(")")
	} else {
		t.Argument.print(p)
	}
	//
	p.write(" -> ")
	t.Result.print(p)
}

// Print a type in an argument position, parenthesising those forms which
// would otherwise not parse there.
func printTypeAtom(p *printer, t Type) {
	switch t.(type) {
	case *TypeApp, *FunctionType:
		p.write("(")
		t.print(p)
		p.write(")")
	default:
		t.print(p)
	}
}

// ============================================================================
// Boilerplate
// ============================================================================

func (t *TypeVar) String() string         { return render(t) }
func (t *TypeConstructor) String() string { return render(t) }
func (t *TypeApp) String() string         { return render(t) }
func (t *FunctionType) String() string    { return render(t) }

func (t *TypeVar) isType()         {}
func (t *TypeConstructor) isType() {}
func (t *TypeApp) isType()         {}
func (t *FunctionType) isType()    {}
