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

// Package testutil contains helpers for tests that need JMdict files on disk.
package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// Compression is a compression format for a test dictionary file.
type Compression int

const (
	// None writes the document uncompressed.
	None Compression = iota

	// Gzip compresses the document with gzip.
	Gzip

	// DictZip compresses the document with dictzip.
	DictZip
)

// MakeFileOptions are options for MakeTempFile.
type MakeFileOptions struct {
	// Ext is an optional file extension for the file. Defaults to '.xml.gz'
	// for Gzip, '.xml.dz' for DictZip, and '.xml' otherwise.
	Ext string

	// Compression is the compression format to use.
	Compression Compression
}

// GetExt returns the file extension to use.
func (o *MakeFileOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		switch o.Compression {
		case Gzip:
			return ".xml.gz"
		case DictZip:
			return ".xml.dz"
		case None:
		}
	}
	return ".xml"
}

// MakeTempFile writes doc to a new file in a temporary directory that is
// removed when the test finishes. It returns the path to the file.
func MakeTempFile(t *testing.T, doc []byte, opts *MakeFileOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeFileOptions{}
	}

	path := filepath.Join(t.TempDir(), "JMdict"+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch opts.Compression {
	case Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(doc); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(doc); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case None:
		if _, err := f.Write(doc); err != nil {
			t.Fatal(err)
		}
	}

	return path
}

// ReadTestData reads a file from the module's testdata directory.
func ReadTestData(t *testing.T, name string) []byte {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to determine testdata directory")
	}
	// This file is at internal/testutil.
	root := filepath.Join(filepath.Dir(file), "..", "..")

	b, err := os.ReadFile(filepath.Join(root, "testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return b
}
