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

package jmdict_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-jmdict"
	"github.com/ianlewis/go-jmdict/internal/testutil"
)

// TestDictionary_WriteXML tests that a written dictionary decodes to the same
// dictionary.
func TestDictionary_WriteXML(t *testing.T) {
	t.Parallel()

	expected, err := jmdict.Decode(bytes.NewReader(testutil.ReadTestData(t, "jmdict.xml")), nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	var buf bytes.Buffer
	if err := expected.WriteXML(&buf); err != nil {
		t.Fatalf("WriteXML: %v", err)
	}

	got, err := jmdict.Decode(&buf, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("Decode (-want, +got):\n%s", diff)
	}
}

// TestDictionary_WriteXML_attrs tests that attributes with default values are
// omitted.
func TestDictionary_WriteXML_attrs(t *testing.T) {
	t.Parallel()

	d := &jmdict.Dictionary{
		Entries: []*jmdict.Entry{
			{
				Sequence: "1",
				Readings: []jmdict.ReadingForm{{Text: "パン"}},
				Senses: []jmdict.Sense{
					{
						Sources: []jmdict.LexicalSource{
							{Text: "pão", Lang: "por", Wasei: true},
						},
						Glosses: []jmdict.Gloss{
							{Text: "bread", Lang: jmdict.DefaultLang},
						},
					},
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := d.WriteXML(&buf); err != nil {
		t.Fatalf("WriteXML: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`<lsource xml:lang="por" ls_wasei="y">pão</lsource>`,
		`<gloss>bread</gloss>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteXML: missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "JMdict created") {
		t.Errorf("WriteXML: unexpected creation comment in:\n%s", out)
	}
}
