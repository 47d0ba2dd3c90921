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
	"slices"
	"testing"
)

func TestQualified_00(t *testing.T) {
	q := NewQualified("foo")
	//
	if len(q.Module) != 0 || q.Name != "foo" {
		t.Errorf("unexpected qualified name: %v", q)
	}
	//
	if q.String() != "foo" {
		t.Errorf("unexpected rendering: %s", q.String())
	}
}

func TestQualified_01(t *testing.T) {
	q := NewQualified("Data.Maybe.Just")
	//
	if !slices.Equal(q.Module, []string{"Data", "Maybe"}) || q.Name != "Just" {
		t.Errorf("unexpected qualified name: %v", q)
	}
	//
	if q.String() != "Data.Maybe.Just" {
		t.Errorf("unexpected rendering: %s", q.String())
	}
}

func TestEscapeString_00(t *testing.T) {
	if s := escapeString("plain"); s != "\"plain\"" {
		t.Errorf("unexpected escape: %s", s)
	}
}

func TestEscapeString_01(t *testing.T) {
	if s := escapeString("a\nb\t\"c\\"); s != "\"a\\nb\\t\\\"c\\\\\"" {
		t.Errorf("unexpected escape: %s", s)
	}
}

func TestPrinter_00(t *testing.T) {
	var p printer
	//
	p.write("xy")
	//
	if p.column() != 3 {
		t.Errorf("expected column 3, got %d", p.column())
	}
	//
	p.newline(3)
	//
	if p.column() != 3 {
		t.Errorf("expected column 3 after newline, got %d", p.column())
	}
	//
	if p.builder.String() != "xy\n  " {
		t.Errorf("unexpected text: %q", p.builder.String())
	}
}
