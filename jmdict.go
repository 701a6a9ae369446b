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
	"bytes"
	"compress/gzip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

var errMultipleRoots = errors.New("multiple root elements")

var createdRegex = regexp.MustCompile(`JMdict created: (\d{4}-\d{2}-\d{2})`)

// Options are options for decoding a JMdict document.
type Options struct {
	// ExpandEntities causes entity references such as &n; to be replaced by
	// the text declared in the document's DTD ("noun (common) (futsuumeishi)")
	// rather than the entity name ("n").
	ExpandEntities bool
}

// DefaultOptions is the default options for decoding.
var DefaultOptions = &Options{}

// Dictionary is a JMdict dictionary.
type Dictionary struct {
	// Created is the creation date of the dictionary in YYYY-MM-DD format
	// if the document includes one.
	Created string `json:"created,omitempty"`

	// Entries are the dictionary entries in document order.
	Entries []*Entry `json:"entries"`
}

// Load reads the JMdict document at the given path. Files with a .gz
// extension are decompressed with gzip and files with a .dz extension are
// read as dictzip files.
func Load(path string, opts *Options) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %w", ErrResource, path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: opening %q: %w", ErrResource, path, err)
		}
		defer z.Close()
		r = z
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: opening %q: %w", ErrResource, path, err)
		}
		r = io.NewSectionReader(z, 0, math.MaxInt64)
	}

	d, err := Decode(r, opts)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return d, nil
}

// Decode reads a JMdict document from r. The full document is read into
// memory before decoding.
func Decode(r io.Reader, opts *Options) (*Dictionary, error) {
	if opts == nil {
		opts = DefaultOptions
	}

	data, err := io.ReadAll(bomReader(r))
	if err != nil {
		return nil, fmt.Errorf("%w: reading document: %w", ErrResource, err)
	}

	return decode(data, opts)
}

func decode(data []byte, opts *Options) (*Dictionary, error) {
	if err := checkEncoding(data); err != nil {
		return nil, err
	}

	// Entities are filled in when the DOCTYPE directive is read. The map is
	// consulted lazily so it can be populated mid-parse.
	entities := map[string]string{}
	var charsetErr error

	d := xml.NewDecoder(bytes.NewReader(data))
	d.Entity = entities
	d.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		r, err := charsetReader(label, input)
		if err != nil {
			charsetErr = err
		}
		return r, err
	}

	// fail reports charset failures, which surface as xml syntax errors, as
	// resource errors.
	fail := func(err error) error {
		if charsetErr != nil {
			return fmt.Errorf("%w: %w", ErrResource, charsetErr)
		}
		return err
	}

	dict := &Dictionary{
		Entries: []*Entry{},
	}
	depth := 0
	seenRoot := false
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fail(structuralErr(err))
		}

		switch t := tok.(type) {
		case xml.Directive:
			if !seenRoot {
				parseEntities(t, opts.ExpandEntities, entities)
			}
		case xml.Comment:
			// JMdict puts the comment just inside the root element.
			if depth <= 1 && dict.Created == "" {
				if m := createdRegex.FindSubmatch(t); m != nil {
					dict.Created = string(m[1])
				}
			}
		case xml.StartElement:
			if depth == 0 {
				if seenRoot {
					return nil, structuralErr(errMultipleRoots)
				}
				seenRoot = true
				depth++
				continue
			}

			// Children of the root are consumed whole so depth stays at 1.
			if t.Name.Local != "entry" {
				if err := d.Skip(); err != nil {
					return nil, fail(structuralErr(err))
				}
				continue
			}

			e, err := decodeEntry(d, &t, len(dict.Entries))
			if err != nil {
				return nil, fail(err)
			}
			dict.Entries = append(dict.Entries, e)
		case xml.EndElement:
			depth--
		}
	}

	if !seenRoot {
		return nil, structuralErr(errNoRoot)
	}

	return dict, nil
}

// decodeEntry decodes the entry element started by start. n is the entry's
// position in the document.
func decodeEntry(d *xml.Decoder, start *xml.StartElement, n int) (*Entry, error) {
	line, _ := d.InputPos()

	var x xmlEntry
	if err := d.DecodeElement(&x, start); err != nil {
		return nil, &DecodeError{
			Kind:  ErrStructural,
			Entry: n,
			Line:  line,
			Err:   err,
		}
	}

	e, err := x.entry()
	if err != nil {
		kind := ErrStructural
		if errors.Is(err, errInvalidWasei) {
			kind = ErrTypeCoercion
		}
		var seq string
		if x.Seq != nil {
			seq = *x.Seq
		}
		return nil, &DecodeError{
			Kind:  kind,
			Entry: n,
			Seq:   seq,
			Line:  line,
			Err:   err,
		}
	}
	return e, nil
}
