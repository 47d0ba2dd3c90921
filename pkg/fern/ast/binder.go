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

// FieldBinder pairs a field name with the binder matching its value, as found
// in object binders.
type FieldBinder struct {
	Name   string
	Binder Binder
}

// NullBinder is the wildcard pattern "_", matching anything without binding.
type NullBinder struct{}

// StringBinder matches a string literal exactly.
type StringBinder struct{ Value string }

// BooleanBinder matches "true" or "false".
type BooleanBinder struct{ Value bool }

// NumberBinder matches a numeric literal exactly.
type NumberBinder struct {
	// Exact integral value, when the literal had no fractional part or
	// exponent.
	Int *big.Int
	// Floating value otherwise.
	Float float64
	// Indicates which of the two fields holds the value.
	IsFloat bool
}

// VarBinder binds the matched value to a name.
type VarBinder struct{ Name string }

// NamedBinder is an "as"-pattern, binding a name to the value matched by an
// inner binder.
type NamedBinder struct {
	Name   string
	Binder Binder
}

// ConstructorBinder matches a data constructor applied to argument patterns.
// The argument sequence is empty for a nullary use.
type ConstructorBinder struct {
	Name Qualified
	Args []Binder
}

// ObjectBinder matches an object, destructuring the named fields.
type ObjectBinder struct{ Fields []FieldBinder }

// ArrayBinder matches an array of exactly the given element patterns.
type ArrayBinder struct{ Elements []Binder }

// ConsBinder matches a non-empty sequence, destructuring its head and tail.
// It is produced only through the binder precedence tier, where ":" is
// right-associative with the lowest precedence.
type ConsBinder struct {
	Head Binder
	Tail Binder
}

// ============================================================================
// Printing
// ============================================================================

func (b *NullBinder) print(p *printer) {
	p.write("_")
}

func (b *StringBinder) print(p *printer) {
	p.write(escapeString(b.Value))
}

func (b *BooleanBinder) print(p *printer) {
	p.write(strconv.FormatBool(b.Value))
}

func (b *NumberBinder) print(p *printer) {
	if b.IsFloat {
		p.write(strconv.FormatFloat(b.Float, 'g', -1, 64))
	} else {
		p.write(b.Int.String())
	}
}

func (b *VarBinder) print(p *printer) {
	p.write(b.Name)
}

func (b *NamedBinder) print(p *printer) {
	p.write(b.Name)
	p.write("@")
	printBinderAtom(p, b.Binder)
}

func (b *ConstructorBinder) print(p *printer) {
	p.write(b.Name.String())
	//
	for _, arg := range b.Args {
		p.write(" ")
		printBinderAtom(p, arg)
	}
}

func (b *ObjectBinder) print(p *printer) {
	if len(b.Fields) == 0 {
		p.write("{}")
		return
	}
	//
	p.write("{ ")
	//
	for i, field := range b.Fields {
		if i != 0 {
			p.write(", ")
		}
		//
		p.write(field.Name)
		p.write(" = ")
		field.Binder.print(p)
	}
	//
	p.write(" }")
}

func (b *ArrayBinder) print(p *printer) {
	p.write("[")
	//
	for i, element := range b.Elements {
		if i != 0 {
			p.write(", ")
		}
		//
		element.print(p)
	}
	//
	p.write("]")
}

func (b *ConsBinder) print(p *printer) {
	printBinderAtom(p, b.Head)
	p.write(" : ")
	b.Tail.print(p)
}

// Print a binder in an atom position, parenthesising those forms which would
// otherwise not parse there (cons binders, applied constructor binders).
func printBinderAtom(p *printer, b Binder) {
	parens := false
	//
	switch b := b.(type) {
	case *ConsBinder:
		parens = true
	case *ConstructorBinder:
		parens = len(b.Args) > 0
	}
	//
	if parens {
		p.write("(")
		b.print(p)
		p.write(")")
	} else {
		b.print(p)
	}
}

// ============================================================================
// Boilerplate
// ============================================================================

func (b *NullBinder) String() string        { return render(b) }
func (b *StringBinder) String() string      { return render(b) }
func (b *BooleanBinder) String() string     { return render(b) }
func (b *NumberBinder) String() string      { return render(b) }
func (b *VarBinder) String() string         { return render(b) }
func (b *NamedBinder) String() string       { return render(b) }
func (b *ConstructorBinder) String() string { return render(b) }
func (b *ObjectBinder) String() string      { return render(b) }
func (b *ArrayBinder) String() string       { return render(b) }
func (b *ConsBinder) String() string        { return render(b) }

func (b *NullBinder) isBinder()        {}
func (b *StringBinder) isBinder()      {}
func (b *BooleanBinder) isBinder()     {}
func (b *NumberBinder) isBinder()      {}
func (b *VarBinder) isBinder()         {}
func (b *NamedBinder) isBinder()       {}
func (b *ConstructorBinder) isBinder() {}
func (b *ObjectBinder) isBinder()      {}
func (b *ArrayBinder) isBinder()       {}
func (b *ConsBinder) isBinder()        {}
