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
	"testing"

	"github.com/consensys/go-fern/pkg/fern/ast"
	"github.com/google/go-cmp/cmp"
)

func TestValue_00(t *testing.T) {
	checkValue(t, "42", intLit(42))
}

func TestValue_01(t *testing.T) {
	checkValue(t, "3.14", &ast.NumberLiteral{Float: 3.14, IsFloat: true})
}

func TestValue_02(t *testing.T) {
	checkValue(t, "\"hello\"", &ast.StringLiteral{Value: "hello"})
}

func TestValue_03(t *testing.T) {
	checkValue(t, "true", &ast.BooleanLiteral{Value: true})
	checkValue(t, "false", &ast.BooleanLiteral{Value: false})
}

func TestValue_04(t *testing.T) {
	checkValue(t, "x", varRef("x"))
}

func TestValue_05(t *testing.T) {
	checkValue(t, "Just", ctorRef("Just"))
}

func TestValue_06(t *testing.T) {
	checkValue(t, "Data.Maybe.Just", &ast.Constructor{
		Name: ast.Qualified{Module: []string{"Data", "Maybe"}, Name: "Just"},
	})
}

func TestValue_07(t *testing.T) {
	checkValue(t, "[1, 2, 3]", &ast.ArrayLiteral{
		Elements: []ast.Value{intLit(1), intLit(2), intLit(3)},
	})
}

func TestValue_08(t *testing.T) {
	checkValue(t, "[]", &ast.ArrayLiteral{})
}

func TestValue_09(t *testing.T) {
	checkValue(t, "{ a = 1, b = x }", &ast.ObjectLiteral{
		Fields: []ast.Field{
			{Name: "a", Value: intLit(1)},
			{Name: "b", Value: varRef("x")},
		},
	})
}

func TestValue_10(t *testing.T) {
	checkValue(t, "{}", &ast.ObjectLiteral{})
}

// Parentheses are retained in the tree.
func TestValue_11(t *testing.T) {
	checkValue(t, "(x)", &ast.Parens{Value: varRef("x")})
}

func TestValue_12(t *testing.T) {
	checkValue(t, "f x", &ast.App{Fn: varRef("f"), Arg: varRef("x")})
}

// Application is left-associative.
func TestValue_13(t *testing.T) {
	checkValue(t, "f x y", &ast.App{
		Fn:  &ast.App{Fn: varRef("f"), Arg: varRef("x")},
		Arg: varRef("y"),
	})
}

func TestValue_14(t *testing.T) {
	checkValue(t, "\\x -> x", &ast.Abs{Name: "x", Body: varRef("x")})
}

// A multi-argument lambda nests right-to-left.
func TestValue_15(t *testing.T) {
	checkValue(t, "\\x y -> x", &ast.Abs{
		Name: "x",
		Body: &ast.Abs{Name: "y", Body: varRef("x")},
	})
}

func TestValue_16(t *testing.T) {
	checkValue(t, "\\(Just x) -> x", &ast.Abs{
		Arg: &ast.ConstructorBinder{
			Name: ast.NewQualified("Just"),
			Args: []ast.Binder{&ast.VarBinder{Name: "x"}},
		},
		Body: varRef("x"),
	})
}

func TestValue_17(t *testing.T) {
	checkValue(t, "if b then 1 else 2", &ast.IfThenElse{
		Condition: varRef("b"),
		Then:      intLit(1),
		Else:      intLit(2),
	})
}

func TestValue_18(t *testing.T) {
	checkValue(t, "let x = 1 in x", &ast.Let{
		Name:  "x",
		Bound: intLit(1),
		Body:  varRef("x"),
	})
}

// A let binding a name with argument patterns.
func TestValue_19(t *testing.T) {
	checkValue(t, "let f x = x in f", &ast.Let{
		Name:  "f",
		Args:  []ast.Binder{&ast.VarBinder{Name: "x"}},
		Bound: varRef("x"),
		Body:  varRef("f"),
	})
}

// A let destructuring the bound value.
func TestValue_20(t *testing.T) {
	checkValue(t, "let Just x = m in x", &ast.Let{
		Binder: &ast.ConstructorBinder{
			Name: ast.NewQualified("Just"),
			Args: []ast.Binder{&ast.VarBinder{Name: "x"}},
		},
		Bound: varRef("m"),
		Body:  varRef("x"),
	})
}

func TestValue_21(t *testing.T) {
	checkValue(t, "x + y", &ast.BinaryOp{Op: "+", Left: varRef("x"), Right: varRef("y")})
}

// Operator chains are collected left-leaning, irrespective of the operators
// involved; fixity resolution happens later.
func TestValue_22(t *testing.T) {
	checkValue(t, "x + y * z", &ast.BinaryOp{
		Op:    "*",
		Left:  &ast.BinaryOp{Op: "+", Left: varRef("x"), Right: varRef("y")},
		Right: varRef("z"),
	})
}

// In expressions, ":" is an ordinary user-defined operator.
func TestValue_23(t *testing.T) {
	checkValue(t, "x : xs", &ast.BinaryOp{Op: ":", Left: varRef("x"), Right: varRef("xs")})
}

func TestValue_24(t *testing.T) {
	checkValue(t, "x.foo", &ast.Accessor{Field: "foo", Target: varRef("x")})
}

func TestValue_25(t *testing.T) {
	checkValue(t, "x.foo.bar", &ast.Accessor{
		Field:  "bar",
		Target: &ast.Accessor{Field: "foo", Target: varRef("x")},
	})
}

// An accessor applied to a bare constructor is rejected.
func TestValue_26(t *testing.T) {
	checkValueErrKind(t, "Just.foo", InvalidAccessorTarget)
}

// An accessor applied to a parenthesised constructor is fine, however.
func TestValue_27(t *testing.T) {
	checkValue(t, "(Just).foo", &ast.Accessor{
		Field:  "foo",
		Target: &ast.Parens{Value: ctorRef("Just")},
	})
}

func TestValue_28(t *testing.T) {
	checkValue(t, "r { a = 1 }", &ast.ObjectUpdate{
		Target: varRef("r"),
		Fields: []ast.Field{{Name: "a", Value: intLit(1)}},
	})
}

func TestValue_29(t *testing.T) {
	checkValue(t, "x :: Int", &ast.TypedValue{
		Checked: true,
		Value:   varRef("x"),
		Type:    &ast.TypeConstructor{Name: ast.NewQualified("Int")},
	})
}

func TestValue_30(t *testing.T) {
	checkValue(t, "x :: Maybe a", &ast.TypedValue{
		Checked: true,
		Value:   varRef("x"),
		Type: &ast.TypeApp{
			Fn:  &ast.TypeConstructor{Name: ast.NewQualified("Maybe")},
			Arg: &ast.TypeVar{Name: "a"},
		},
	})
}

func TestValue_31(t *testing.T) {
	checkValue(t, "f :: Int -> Int", &ast.TypedValue{
		Checked: true,
		Value:   varRef("f"),
		Type: &ast.FunctionType{
			Argument: &ast.TypeConstructor{Name: ast.NewQualified("Int")},
			Result:   &ast.TypeConstructor{Name: ast.NewQualified("Int")},
		},
	})
}

// Application binds more tightly than infix operators.
func TestValue_32(t *testing.T) {
	checkValue(t, "f x + g y", &ast.BinaryOp{
		Op:    "+",
		Left:  &ast.App{Fn: varRef("f"), Arg: varRef("x")},
		Right: &ast.App{Fn: varRef("g"), Arg: varRef("y")},
	})
}

// Accessors bind more tightly than application.
func TestValue_33(t *testing.T) {
	checkValue(t, "f x.foo", &ast.App{
		Fn:  varRef("f"),
		Arg: &ast.Accessor{Field: "foo", Target: varRef("x")},
	})
}

func TestValue_34(t *testing.T) {
	checkValueErr(t, "")
}

func TestValue_35(t *testing.T) {
	checkValueErrKind(t, ")", UnexpectedToken)
}

// Trailing tokens after a complete expression are rejected.
func TestValue_36(t *testing.T) {
	checkValueErrKind(t, "x )", UnexpectedToken)
}

// A lambda requires at least one argument.
func TestValue_37(t *testing.T) {
	checkValueErrKind(t, "\\ -> x", MalformedValue)
}

func TestValue_38(t *testing.T) {
	checkValueErr(t, "if x then y")
}

func TestValue_39(t *testing.T) {
	checkValueErr(t, "let x = 1")
}

func TestValue_40(t *testing.T) {
	checkValueErr(t, "{ a = }")
}

func TestValue_41(t *testing.T) {
	checkValueErr(t, "[1, 2")
}

// The two lambda spellings construct identical trees.
func TestValue_42(t *testing.T) {
	sugared, _, err1 := ParseValueString("\\x y -> x")
	nested, _, err2 := ParseValueString("\\x -> \\y -> x")
	//
	if err1 != nil || err2 != nil {
		t.Fatal("unexpected parsing error")
	}
	//
	if diff := cmp.Diff(nested, sugared, cmpOpts); diff != "" {
		t.Errorf("(-nested +sugared):\n%s", diff)
	}
}

// An invalid accessor target is reported as such even when it occurs within
// an applied argument.
func TestValue_43(t *testing.T) {
	checkValueErrKind(t, "f Just.foo", InvalidAccessorTarget)
}

// Likewise when it occurs on the right of an infix operator.
func TestValue_44(t *testing.T) {
	checkValueErrKind(t, "x + Just.foo", InvalidAccessorTarget)
}

// ===================================================================
// Test Helpers
// ===================================================================

// Comparison options used throughout: big integers compare by value.
var cmpOpts = cmp.Options{
	cmp.Comparer(func(x, y *big.Int) bool {
		if x == nil || y == nil {
			return x == y
		}
		//
		return x.Cmp(y) == 0
	}),
}

func intLit(value int64) ast.Value {
	return &ast.NumberLiteral{Int: big.NewInt(value)}
}

func varRef(name string) ast.Value {
	return &ast.Var{Name: ast.NewQualified(name)}
}

func ctorRef(name string) ast.Value {
	return &ast.Constructor{Name: ast.NewQualified(name)}
}

func checkValue(t *testing.T, input string, expected ast.Value) {
	t.Helper()
	//
	actual, srcmap, err := ParseValueString(input)
	//
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %s", input, err.Error())
	} else if diff := cmp.Diff(expected, actual, cmpOpts); diff != "" {
		t.Errorf("parsing %q (-expected +actual):\n%s", input, diff)
	} else if !srcmap.Has(actual) {
		t.Errorf("parsing %q: root node has no registered span", input)
	}
}

func checkValueErr(t *testing.T, input string) *Error {
	t.Helper()
	//
	if _, _, err := ParseValueString(input); err != nil {
		return err
	}
	//
	t.Fatalf("expected error parsing %q", input)
	// unreachable
	return nil
}

func checkValueErrKind(t *testing.T, input string, kind ErrorKind) {
	t.Helper()
	//
	if err := checkValueErr(t, input); err.Kind != kind {
		t.Errorf("parsing %q: expected %s error, got %s", input, kind, err.Kind)
	}
}
