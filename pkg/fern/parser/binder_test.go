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

func TestBinder_00(t *testing.T) {
	checkBinder(t, "_", &ast.NullBinder{})
}

func TestBinder_01(t *testing.T) {
	checkBinder(t, "x", &ast.VarBinder{Name: "x"})
}

func TestBinder_02(t *testing.T) {
	checkBinder(t, "42", &ast.NumberBinder{Int: big.NewInt(42)})
}

func TestBinder_03(t *testing.T) {
	checkBinder(t, "2.5", &ast.NumberBinder{Float: 2.5, IsFloat: true})
}

func TestBinder_04(t *testing.T) {
	checkBinder(t, "\"s\"", &ast.StringBinder{Value: "s"})
}

func TestBinder_05(t *testing.T) {
	checkBinder(t, "true", &ast.BooleanBinder{Value: true})
}

func TestBinder_06(t *testing.T) {
	checkBinder(t, "Nothing", &ast.ConstructorBinder{Name: ast.NewQualified("Nothing")})
}

func TestBinder_07(t *testing.T) {
	checkBinder(t, "Just x", &ast.ConstructorBinder{
		Name: ast.NewQualified("Just"),
		Args: []ast.Binder{&ast.VarBinder{Name: "x"}},
	})
}

// Constructor arguments are atoms, so a nested constructor use is nullary
// unless parenthesised.
func TestBinder_08(t *testing.T) {
	checkBinder(t, "Pair Just x", &ast.ConstructorBinder{
		Name: ast.NewQualified("Pair"),
		Args: []ast.Binder{
			&ast.ConstructorBinder{Name: ast.NewQualified("Just")},
			&ast.VarBinder{Name: "x"},
		},
	})
}

func TestBinder_09(t *testing.T) {
	checkBinder(t, "Just (Just x)", &ast.ConstructorBinder{
		Name: ast.NewQualified("Just"),
		Args: []ast.Binder{
			&ast.ConstructorBinder{
				Name: ast.NewQualified("Just"),
				Args: []ast.Binder{&ast.VarBinder{Name: "x"}},
			},
		},
	})
}

func TestBinder_10(t *testing.T) {
	checkBinder(t, "Data.Maybe.Just x", &ast.ConstructorBinder{
		Name: ast.Qualified{Module: []string{"Data", "Maybe"}, Name: "Just"},
		Args: []ast.Binder{&ast.VarBinder{Name: "x"}},
	})
}

func TestBinder_11(t *testing.T) {
	checkBinder(t, "x : xs", &ast.ConsBinder{
		Head: &ast.VarBinder{Name: "x"},
		Tail: &ast.VarBinder{Name: "xs"},
	})
}

// Cons is right-associative.
func TestBinder_12(t *testing.T) {
	checkBinder(t, "x : y : zs", &ast.ConsBinder{
		Head: &ast.VarBinder{Name: "x"},
		Tail: &ast.ConsBinder{
			Head: &ast.VarBinder{Name: "y"},
			Tail: &ast.VarBinder{Name: "zs"},
		},
	})
}

// An applied constructor can head a cons chain.
func TestBinder_13(t *testing.T) {
	checkBinder(t, "Just x : xs", &ast.ConsBinder{
		Head: &ast.ConstructorBinder{
			Name: ast.NewQualified("Just"),
			Args: []ast.Binder{&ast.VarBinder{Name: "x"}},
		},
		Tail: &ast.VarBinder{Name: "xs"},
	})
}

func TestBinder_14(t *testing.T) {
	checkBinder(t, "all@(Just x)", &ast.NamedBinder{
		Name: "all",
		Binder: &ast.ConstructorBinder{
			Name: ast.NewQualified("Just"),
			Args: []ast.Binder{&ast.VarBinder{Name: "x"}},
		},
	})
}

func TestBinder_15(t *testing.T) {
	checkBinder(t, "{ a = x, b = _ }", &ast.ObjectBinder{
		Fields: []ast.FieldBinder{
			{Name: "a", Binder: &ast.VarBinder{Name: "x"}},
			{Name: "b", Binder: &ast.NullBinder{}},
		},
	})
}

func TestBinder_16(t *testing.T) {
	checkBinder(t, "[x, _, 1]", &ast.ArrayBinder{
		Elements: []ast.Binder{
			&ast.VarBinder{Name: "x"},
			&ast.NullBinder{},
			&ast.NumberBinder{Int: big.NewInt(1)},
		},
	})
}

func TestBinder_17(t *testing.T) {
	checkBinder(t, "[]", &ast.ArrayBinder{})
}

// Parentheses around a binder are transparent.
func TestBinder_18(t *testing.T) {
	checkBinder(t, "(x : xs)", &ast.ConsBinder{
		Head: &ast.VarBinder{Name: "x"},
		Tail: &ast.VarBinder{Name: "xs"},
	})
}

func TestBinder_19(t *testing.T) {
	checkBinderErr(t, "")
}

// Reserved words cannot be bound.
func TestBinder_20(t *testing.T) {
	checkBinderErr(t, "case")
}

func TestBinder_21(t *testing.T) {
	checkBinderErr(t, "x :")
}

func TestBinder_22(t *testing.T) {
	checkBinderErr(t, "{ a = x")
}

// The wildcard may occur several times within one pattern.
func TestBinder_23(t *testing.T) {
	checkBinder(t, "[_, _]", &ast.ArrayBinder{
		Elements: []ast.Binder{&ast.NullBinder{}, &ast.NullBinder{}},
	})
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkBinder(t *testing.T, input string, expected ast.Binder) {
	t.Helper()
	//
	actual, _, err := ParseBinderString(input)
	//
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %s", input, err.Error())
	} else if diff := cmp.Diff(expected, actual, cmpOpts); diff != "" {
		t.Errorf("parsing %q (-expected +actual):\n%s", input, diff)
	}
}

func checkBinderErr(t *testing.T, input string) {
	t.Helper()
	//
	if _, _, err := ParseBinderString(input); err == nil {
		t.Fatalf("expected error parsing %q", input)
	}
}
