// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jmdict

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrResource indicates that the dictionary could not be opened or read,
	// or that its contents could not be resolved to UTF-8 text.
	ErrResource = errors.New("resource error")

	// ErrStructural indicates that the document is not well-formed XML or
	// that a required element is missing.
	ErrStructural = errors.New("structural error")

	// ErrTypeCoercion indicates that an attribute value could not be
	// interpreted as its declared type.
	ErrTypeCoercion = errors.New("type coercion error")
)

var (
	errNoRoot         = errors.New("no root element")
	errMissingSeq     = errors.New("missing ent_seq")
	errMissingReading = errors.New("missing r_ele")
	errMissingSense   = errors.New("missing sense")
	errMissingKeb     = errors.New("k_ele: missing keb")
	errMissingReb     = errors.New("r_ele: missing reb")
	errMissingExSrce  = errors.New("example: missing ex_srce")
	errMissingExText  = errors.New("example: missing ex_text")
	errMissingExSent  = errors.New("example: missing ex_sent")
	errInvalidWasei   = errors.New("lsource: invalid ls_wasei")
	errInvalidUTF8    = errors.New("invalid UTF-8")
)

// DecodeError is returned when a document could not be decoded. It matches
// either ErrStructural or ErrTypeCoercion with [errors.Is].
type DecodeError struct {
	// Kind is either ErrStructural or ErrTypeCoercion.
	Kind error

	// Entry is the zero-based position of the failing entry in the document.
	// It is -1 if the error is not associated with an entry.
	Entry int

	// Seq is the sequence number of the failing entry, if known.
	Seq string

	// Line is the line number where the failing entry starts. It is zero if
	// unknown.
	Line int

	// Err is the underlying error.
	Err error
}

// Error implements error.
func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Entry >= 0 {
		fmt.Fprintf(&b, ": entry %d", e.Entry)
		if e.Seq != "" {
			fmt.Fprintf(&b, " (ent_seq %s)", e.Seq)
		}
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

// Unwrap returns the error kind and the underlying error.
func (e *DecodeError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func structuralErr(err error) *DecodeError {
	return &DecodeError{
		Kind:  ErrStructural,
		Entry: -1,
		Err:   err,
	}
}
