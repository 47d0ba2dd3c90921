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
	"strings"
	"unicode/utf8"
)

// printer accumulates source text whilst tracking the column at which the
// next character will land.  Block constructs (case alternatives) use this to
// emit layout-aligned continuation lines.
type printer struct {
	builder strings.Builder
}

// Write a piece of text which is known not to contain newlines.
func (p *printer) write(text string) {
	p.builder.WriteString(text)
}

// Column at which the next character will land, counting from 1.
func (p *printer) column() int {
	var (
		text  = p.builder.String()
		index = strings.LastIndexByte(text, '\n')
	)
	//
	return utf8.RuneCountInString(text[index+1:]) + 1
}

// Begin a fresh line indented to the given column.
func (p *printer) newline(column int) {
	p.builder.WriteString("\n")
	p.builder.WriteString(strings.Repeat(" ", column-1))
}

// Escape a string literal back into its quoted source form.
func escapeString(value string) string {
	var builder strings.Builder
	//
	builder.WriteString("\"")
	//
	for _, c := range value {
		switch c {
		case '\n':
			builder.WriteString("\\n")
		case '\t':
			builder.WriteString("\\t")
		case '\r':
			builder.WriteString("\\r")
		case '\\':
			builder.WriteString("\\\\")
		case '"':
			builder.WriteString("\\\"")
		default:
			builder.WriteRune(c)
		}
	}
	//
	builder.WriteString("\"")
	//
	return builder.String()
}
