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

import "strings"

// Node is implemented by every syntax tree node.  Nodes are constructed
// bottom-up by the parser and never mutated afterwards; each node is owned
// exclusively by its parent.
type Node interface {
	// String returns source text which, when parsed again, yields a node
	// structurally equal to this one.
	String() string
	// Print this node into a given printer, respecting the layout rule for
	// any block constructs contained within.
	print(p *printer)
}

// Value represents an expression tree node.
type Value interface {
	Node
	isValue()
}

// Binder represents a pattern tree node, used to destructure a value in
// lambda arguments, case alternatives, let-bindings and do-binds.
type Binder interface {
	Node
	isBinder()
}

// Type represents a type tree node, as used by type ascriptions.
type Type interface {
	Node
	isType()
}

// DoNotationElement represents a single element of a do-block, in source
// order.
type DoNotationElement interface {
	Node
	isDoNotationElement()
}

// Qualified is an identifier optionally prefixed by a module path.  The
// parser only produces module prefixes for constructor and type-constructor
// names; variable names are qualified later, during name resolution.
type Qualified struct {
	// Module segments qualifying the name, outermost first.  Empty for an
	// unqualified name.
	Module []string
	// The name itself.
	Name string
}

// NewQualified splits a dotted token (e.g. "Data.Maybe.Just") into its module
// segments and final name.
func NewQualified(dotted string) Qualified {
	segments := strings.Split(dotted, ".")
	n := len(segments) - 1
	//
	if n == 0 {
		return Qualified{nil, segments[0]}
	}
	//
	return Qualified{segments[:n], segments[n]}
}

// String returns the fully dotted form of this name.
func (q Qualified) String() string {
	if len(q.Module) == 0 {
		return q.Name
	}
	//
	return strings.Join(q.Module, ".") + "." + q.Name
}

// render is the shared implementation behind every node's String method.
func render(n Node) string {
	var p printer
	//
	n.print(&p)
	//
	return p.builder.String()
}
