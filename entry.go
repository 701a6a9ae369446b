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
	"strings"
)

// DefaultLang is the language of glosses, lexical sources and example
// sentences that do not specify an xml:lang attribute.
const DefaultLang = "eng"

// Entry is a dictionary entry. An entry groups the written and phonetic forms
// of a word with its senses.
type Entry struct {
	// Sequence is the entry's unique sequence number (ent_seq).
	Sequence string `json:"seq"`

	// Kanji are the entry's written forms (k_ele). Kana-only words have no
	// kanji forms.
	Kanji []KanjiForm `json:"kanji"`

	// Readings are the entry's phonetic forms (r_ele). There is always at
	// least one.
	Readings []ReadingForm `json:"readings"`

	// Senses are the entry's meanings (sense). There is always at least one.
	Senses []Sense `json:"senses"`
}

// KanjiForm is a written representation of an entry's word.
type KanjiForm struct {
	// Text is the written form (keb).
	Text string `json:"text"`

	// Info are notes about the form such as irregular kanji usage (ke_inf).
	Info []string `json:"info"`

	// Priority are frequency and usage codes such as "news1" (ke_pri).
	Priority []string `json:"priority"`
}

// ReadingForm is a phonetic representation of an entry's word.
type ReadingForm struct {
	// Text is the reading in kana (reb).
	Text string `json:"text"`

	// NoKanji marks readings that cannot be regarded as a true reading of
	// the entry's kanji forms (re_nokanji).
	NoKanji bool `json:"nokanji"`

	// Restrictions lists the kanji forms this reading applies to
	// (re_restr). An empty list means it applies to all of them.
	Restrictions []string `json:"restrictions"`

	// Info are notes about the reading (re_inf).
	Info []string `json:"info"`

	// Priority are frequency and usage codes (re_pri).
	Priority []string `json:"priority"`
}

// Sense is a single meaning of an entry.
type Sense struct {
	// KanjiRestrictions restricts the sense to the listed kanji forms (stagk).
	KanjiRestrictions []string `json:"stagk"`

	// ReadingRestrictions restricts the sense to the listed readings (stagr).
	ReadingRestrictions []string `json:"stagr"`

	// PartsOfSpeech are part of speech tags (pos).
	PartsOfSpeech []string `json:"pos"`

	// CrossRefs are references to related entries (xref). They are plain
	// labels and are not resolved.
	CrossRefs []string `json:"xref"`

	// Antonyms are references to entries with opposite meaning (ant).
	Antonyms []string `json:"ant"`

	// Fields are field of application tags (field).
	Fields []string `json:"field"`

	// Misc are other information tags (misc).
	Misc []string `json:"misc"`

	// Notes are free text notes (s_inf).
	Notes []string `json:"notes"`

	// Sources are the foreign origins of loanwords (lsource).
	Sources []LexicalSource `json:"sources"`

	// Dialects are regional dialect tags (dial).
	Dialects []string `json:"dial"`

	// Glosses are the translations of the sense (gloss).
	Glosses []Gloss `json:"glosses"`

	// Examples are example sentences (example).
	Examples []Example `json:"examples"`
}

// LexicalSource records the source language word of a loanword.
type LexicalSource struct {
	// Text is the source word. It may be empty.
	Text string `json:"text"`

	// Lang is the ISO 639-2 code of the source language (xml:lang).
	Lang string `json:"lang"`

	// Type is "part" if the source only describes part of the word, or
	// empty (ls_type).
	Type string `json:"type"`

	// Wasei is true if the word was constructed from the source language's
	// vocabulary but is not used that way in the source language (ls_wasei).
	Wasei bool `json:"wasei"`
}

// Gloss is a translation or explanation of a sense.
type Gloss struct {
	// Text is the gloss text. It may be empty.
	Text string `json:"text"`

	// Lang is the ISO 639-2 code of the gloss language (xml:lang).
	Lang string `json:"lang"`

	// Gender is the grammatical gender of the gloss (g_gend).
	Gender string `json:"gender"`

	// Type is the gloss type such as "lit", "fig" or "expl" (g_type).
	Type string `json:"type"`
}

// Example is an example sentence for a sense.
type Example struct {
	// Source is the identifier of the example in its corpus (ex_srce).
	Source string `json:"source"`

	// SourceType is the corpus type such as "tat" (exsrc_type).
	SourceType string `json:"source_type"`

	// Text is the form of the word used in the example (ex_text).
	Text string `json:"text"`

	// Sentences are the example sentence and its translations (ex_sent).
	Sentences []ExampleSentence `json:"sentences"`
}

// ExampleSentence is an example sentence in a single language.
type ExampleSentence struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// Headword returns the entry's first kanji form, or its first reading if the
// entry has no kanji forms.
func (e *Entry) Headword() string {
	if len(e.Kanji) > 0 {
		return e.Kanji[0].Text
	}
	if len(e.Readings) > 0 {
		return e.Readings[0].Text
	}
	return ""
}

// String returns a string representation of the Entry.
func (e *Entry) String() string {
	var b strings.Builder
	b.WriteString(e.Headword())
	if len(e.Kanji) > 0 {
		readings := make([]string, 0, len(e.Readings))
		for _, r := range e.Readings {
			readings = append(readings, r.Text)
		}
		b.WriteString(" [" + strings.Join(readings, ", ") + "]")
	}
	b.WriteString("\n")
	for _, s := range e.Senses {
		glosses := make([]string, 0, len(s.Glosses))
		for _, g := range s.Glosses {
			glosses = append(glosses, g.Text)
		}
		b.WriteString(strings.Join(glosses, "; ") + "\n")
	}
	return b.String()
}
