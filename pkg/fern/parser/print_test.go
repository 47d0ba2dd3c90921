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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Printing a tree and parsing the result must reproduce the tree exactly.

func TestPrint_00(t *testing.T) {
	checkValueRoundTrip(t, "42")
	checkValueRoundTrip(t, "3.14")
	checkValueRoundTrip(t, "\"a\\nb\\\"c\"")
	checkValueRoundTrip(t, "true")
}

func TestPrint_01(t *testing.T) {
	checkValueRoundTrip(t, "f x y")
	checkValueRoundTrip(t, "\\x y -> x")
	checkValueRoundTrip(t, "\\(Just x) -> x")
}

func TestPrint_02(t *testing.T) {
	checkValueRoundTrip(t, "x + y * z")
	checkValueRoundTrip(t, "x : y : zs")
	checkValueRoundTrip(t, "(x + y) * z")
}

func TestPrint_03(t *testing.T) {
	checkValueRoundTrip(t, "x.foo.bar")
	checkValueRoundTrip(t, "r { a = 1, b = x.foo }")
	checkValueRoundTrip(t, "{ a = [1, 2], b = {} }")
}

func TestPrint_04(t *testing.T) {
	checkValueRoundTrip(t, "if b then 1 else 2")
	checkValueRoundTrip(t, "let f x = x + 1 in f 2")
	checkValueRoundTrip(t, "let Just x = m in x")
	checkValueRoundTrip(t, "x :: Maybe Int -> Maybe Int")
}

func TestPrint_05(t *testing.T) {
	checkValueRoundTrip(t, "case x of\n  Just y -> y\n  Nothing -> 0")
	checkValueRoundTrip(t, "case n of\n  x | x > 0 -> 1\n  _ -> 0")
	checkValueRoundTrip(t, "case xs of\n  x : rest -> x\n  _ -> y")
}

func TestPrint_06(t *testing.T) {
	checkValueRoundTrip(t, "do\n  x <- m\n  let y = f x\n  pure y")
	checkValueRoundTrip(t, "do { x <- m ; pure x }")
}

func TestPrint_07(t *testing.T) {
	checkBinderRoundTrip(t, "Just (x : xs)")
	checkBinderRoundTrip(t, "all@(Just x)")
	checkBinderRoundTrip(t, "{ a = x, b = _ }")
	checkBinderRoundTrip(t, "[x, _, 1]")
}

// Multi-argument lambdas print in their nested form.
func TestPrint_08(t *testing.T) {
	checkString(t, "\\x y -> x", "\\x -> \\y -> x")
}

// Do-blocks print in their braced form.
func TestPrint_09(t *testing.T) {
	checkString(t, "do\n  x <- m\n  pure x", "do { x <- m ; pure x }")
}

// Case alternatives print aligned beneath the case keyword.
func TestPrint_10(t *testing.T) {
	checkString(t, "case b of\n  true -> 1", "case b of\n  true -> 1")
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkValueRoundTrip(t *testing.T, input string) {
	t.Helper()
	//
	first, _, err := ParseValueString(input)
	//
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %s", input, err.Error())
	}
	//
	printed := first.String()
	//
	second, _, err := ParseValueString(printed)
	//
	if err != nil {
		t.Fatalf("unexpected error reparsing %q (printed from %q): %s",
			printed, input, err.Error())
	}
	//
	if diff := cmp.Diff(first, second, cmpOpts); diff != "" {
		t.Errorf("round trip of %q via %q (-first +second):\n%s", input, printed, diff)
	}
}

func checkBinderRoundTrip(t *testing.T, input string) {
	t.Helper()
	//
	first, _, err := ParseBinderString(input)
	//
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %s", input, err.Error())
	}
	//
	printed := first.String()
	//
	second, _, err := ParseBinderString(printed)
	//
	if err != nil {
		t.Fatalf("unexpected error reparsing %q (printed from %q): %s",
			printed, input, err.Error())
	}
	//
	if diff := cmp.Diff(first, second, cmpOpts); diff != "" {
		t.Errorf("round trip of %q via %q (-first +second):\n%s", input, printed, diff)
	}
}

func checkString(t *testing.T, input string, expected string) {
	t.Helper()
	//
	value, _, err := ParseValueString(input)
	//
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %s", input, err.Error())
	}
	//
	if actual := value.String(); actual != expected {
		t.Errorf("printing %q: expected %q, got %q", input, expected, actual)
	}
}
