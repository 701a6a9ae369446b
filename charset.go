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
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var errUnsupportedCharset = errors.New("unsupported charset")

var encodingDeclRegex = regexp.MustCompile(`^\s*<\?xml[^>]*?\sencoding\s*=\s*["']([A-Za-z0-9._:-]+)["']`)

// bomReader returns a reader that strips a UTF-8 byte order mark and
// transcodes UTF-16 to UTF-8 if the input starts with a UTF-16 byte order
// mark. Other input is returned unchanged.
func bomReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(transform.Nop))
}

// declaredEncoding returns the encoding declared in the document's XML
// declaration or the empty string.
func declaredEncoding(data []byte) string {
	// The declaration must be at the very start of the document.
	head := data
	if len(head) > 256 {
		head = head[:256]
	}
	m := encodingDeclRegex.FindSubmatch(head)
	if m == nil {
		return ""
	}
	return string(m[1])
}

// isUnicodeLabel returns true if the document's bytes are already UTF-8
// when it declares the given encoding. UTF-16 documents are transcoded by
// bomReader before decoding.
func isUnicodeLabel(label string) bool {
	label = strings.ToLower(label)
	return label == "" || label == "utf-8" || label == "utf8" || strings.HasPrefix(label, "utf-16")
}

// checkEncoding verifies that a document that declares no encoding, or a
// Unicode one, is valid UTF-8.
func checkEncoding(data []byte) error {
	if !isUnicodeLabel(declaredEncoding(data)) {
		return nil
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("%w: %w", ErrResource, errInvalidUTF8)
	}
	return nil
}

// charsetReader implements xml.Decoder.CharsetReader using the IANA charset
// registry.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	if isUnicodeLabel(label) {
		return input, nil
	}
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", errUnsupportedCharset, label, err)
	}
	if enc == nil {
		// The name is registered but x/text has no implementation.
		return nil, fmt.Errorf("%w: %q", errUnsupportedCharset, label)
	}
	return enc.NewDecoder().Reader(input), nil
}
