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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseEntities(t *testing.T) {
	t.Parallel()

	const doctype = `DOCTYPE JMdict [
<!ELEMENT JMdict (entry*)>
<!ENTITY % local "ignored">
<!ENTITY n "noun (common) (futsuumeishi)">
<!ENTITY   adj-no   'nouns which may take the genitive case particle "no"' >
<!ENTITY n "redeclared">
]`

	tests := []struct {
		name      string
		directive string
		expand    bool
		expected  map[string]string
	}{
		{
			name:      "names",
			directive: doctype,
			expected: map[string]string{
				"n":      "n",
				"adj-no": "adj-no",
			},
		},
		{
			name:      "expand",
			directive: doctype,
			expand:    true,
			expected: map[string]string{
				"n":      "noun (common) (futsuumeishi)",
				"adj-no": `nouns which may take the genitive case particle "no"`,
			},
		},
		{
			name:      "not doctype",
			directive: `ENTITY n "noun"`,
			expected:  map[string]string{},
		},
		{
			name:      "no internal subset",
			directive: `DOCTYPE JMdict SYSTEM "JMdict.dtd"`,
			expected:  map[string]string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := map[string]string{}
			parseEntities([]byte(test.directive), test.expand, got)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("parseEntities (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestDeclaredEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		doc      string
		expected string
	}{
		{doc: `<?xml version="1.0" encoding="UTF-8"?><JMdict/>`, expected: "UTF-8"},
		{doc: `<?xml version='1.0' encoding='EUC-JP'?>`, expected: "EUC-JP"},
		{doc: `<?xml version="1.0"?><JMdict/>`, expected: ""},
		{doc: `<JMdict encoding="EUC-JP"/>`, expected: ""},
		{doc: ``, expected: ""},
	}

	for _, test := range tests {
		t.Run(test.doc, func(t *testing.T) {
			t.Parallel()

			if want, got := test.expected, declaredEncoding([]byte(test.doc)); want != got {
				t.Fatalf("declaredEncoding; want: %q, got: %q", want, got)
			}
		})
	}
}
