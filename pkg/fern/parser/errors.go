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
	"fmt"

	"github.com/consensys/go-fern/pkg/util/source"
)

// ErrorKind classifies the ways in which parsing can fail.
type ErrorKind uint

const (
	// UnexpectedToken indicates that no alternative of an ordered choice
	// matched at a given position.
	UnexpectedToken ErrorKind = iota
	// LayoutViolation indicates that a continuation token failed the active
	// column requirement.
	LayoutViolation
	// InvalidAccessorTarget indicates a field accessor applied directly to a
	// bare constructor reference.
	InvalidAccessorTarget
	// MalformedBinder indicates a structurally incomplete binder production.
	MalformedBinder
	// MalformedValue indicates a structurally incomplete value production.
	MalformedValue
)

// String returns a human-readable name for this error kind.
func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case LayoutViolation:
		return "layout violation"
	case InvalidAccessorTarget:
		return "invalid accessor target"
	case MalformedBinder:
		return "malformed binder"
	case MalformedValue:
		return "malformed value"
	}
	//
	panic("unknown error kind")
}

// Error is a positioned parse failure.  Every failure names the production
// being attempted when it arose, and carries a span into the original source
// file.
type Error struct {
	// Kind of this failure.
	Kind ErrorKind
	// Production being attempted (e.g. "expression", "binder", "case
	// alternative").
	Production string
	// Underlying positioned error.
	Err *source.SyntaxError
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s (in %s)", e.Err.Error(), e.Production)
}

// SyntaxError returns the underlying positioned error, for reporting.
func (e *Error) SyntaxError() *source.SyntaxError {
	return e.Err
}

// Span returns the span of the original text on which this error is reported.
func (e *Error) Span() source.Span {
	return e.Err.Span()
}
