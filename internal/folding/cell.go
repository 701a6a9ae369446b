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

// Package folding implements text transformers for terminal output.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Ellipsis is appended to truncated output.
const Ellipsis = '…'

// CellFolder folds text so that it fits in a single table cell. Leading and
// trailing whitespace is removed and internal whitespace spans, including
// newlines, are replaced with a single ASCII space. If MaxWidth is greater
// than zero, output is truncated after MaxWidth runes and Ellipsis is
// appended.
type CellFolder struct {
	// MaxWidth is the maximum number of runes to emit before truncating.
	MaxWidth int

	// width is the number of runes emitted so far.
	width int

	// wsSpan is true if the transformer is currently handling a whitespace span.
	wsSpan bool

	// done is true after the output was truncated.
	done bool
}

// Transform implements [transform.Transformer.Transform].
func (f *CellFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if f.done {
			// Discard everything after truncation.
			return nDst, len(src), nil
		}

		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(c) {
			nSrc += size
			// Leading whitespace is dropped.
			f.wsSpan = f.width > 0
			continue
		}

		// The number of runes needed to emit c.
		need := 1
		if f.wsSpan {
			need++
		}

		if f.MaxWidth > 0 && f.width+need > f.MaxWidth {
			if nDst+utf8.RuneLen(Ellipsis) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += utf8.EncodeRune(dst[nDst:], Ellipsis)
			f.done = true
			continue
		}

		// NOTE: c may be utf8.RuneError in which case size is 1 but the
		// encoded rune is 3 bytes.
		if nDst+need-1+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if f.wsSpan {
			dst[nDst] = ' '
			nDst++
			f.wsSpan = false
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
		nSrc += size
		f.width += need
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *CellFolder) Reset() {
	*f = CellFolder{MaxWidth: f.MaxWidth}
}

// Cell folds s with a CellFolder with the given maximum width.
func Cell(s string, maxWidth int) string {
	out, _, err := transform.String(&CellFolder{MaxWidth: maxWidth}, s)
	if err != nil {
		return s
	}
	return out
}
