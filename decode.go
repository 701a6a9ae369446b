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
	"encoding/xml"
	"fmt"
	"unicode/utf8"
)

// xmlNamespace is the namespace bound to the reserved "xml" prefix.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// The xml* types mirror the JMdict DTD. Each element has its own type so that
// child elements are only matched under their declared parent.

// <!ELEMENT JMdict (entry*)>
type xmlJMdict struct {
	XMLName xml.Name   `xml:"JMdict"`
	Entries []xmlEntry `xml:"entry"`
}

// <!ELEMENT entry (ent_seq, k_ele*, r_ele+, sense+)>
type xmlEntry struct {
	Seq   *string    `xml:"ent_seq"`
	Kanji []xmlKEle  `xml:"k_ele"`
	Kana  []xmlREle  `xml:"r_ele"`
	Sense []xmlSense `xml:"sense"`
}

// <!ELEMENT k_ele (keb, ke_inf*, ke_pri*)>
type xmlKEle struct {
	Keb *string  `xml:"keb"`
	Inf []string `xml:"ke_inf"`
	Pri []string `xml:"ke_pri"`
}

// <!ELEMENT r_ele (reb, re_nokanji?, re_restr*, re_inf*, re_pri*)>
type xmlREle struct {
	Reb     *string   `xml:"reb"`
	NoKanji *struct{} `xml:"re_nokanji"`
	Restr   []string  `xml:"re_restr"`
	Inf     []string  `xml:"re_inf"`
	Pri     []string  `xml:"re_pri"`
}

// <!ELEMENT sense (stagk*, stagr*, pos*, xref*, ant*, field*, misc*, s_inf*,
// lsource*, dial*, gloss*, example*)>
type xmlSense struct {
	Stagk   []string     `xml:"stagk"`
	Stagr   []string     `xml:"stagr"`
	Pos     []string     `xml:"pos"`
	Xref    []string     `xml:"xref"`
	Ant     []string     `xml:"ant"`
	Field   []string     `xml:"field"`
	Misc    []string     `xml:"misc"`
	SInf    []string     `xml:"s_inf"`
	LSource []xmlLSource `xml:"lsource"`
	Dial    []string     `xml:"dial"`
	Gloss   []xmlGloss   `xml:"gloss"`
	Example []xmlExample `xml:"example"`
}

// <!ELEMENT lsource (#PCDATA)>
// <!ATTLIST lsource xml:lang CDATA "eng">
// <!ATTLIST lsource ls_type CDATA #IMPLIED>
// <!ATTLIST lsource ls_wasei CDATA #IMPLIED>
type xmlLSource struct {
	Text  string     `xml:",chardata"`
	Attrs []xml.Attr `xml:",any,attr"`
}

// <!ELEMENT gloss (#PCDATA | pri)*>
// <!ATTLIST gloss xml:lang CDATA "eng">
// <!ATTLIST gloss g_gend CDATA #IMPLIED>
// <!ATTLIST gloss g_type CDATA #IMPLIED>
type xmlGloss struct {
	Text  string     `xml:",chardata"`
	Attrs []xml.Attr `xml:",any,attr"`
}

// <!ELEMENT example (ex_srce,ex_text,ex_sent+)>
type xmlExample struct {
	Srce *xmlExSrce  `xml:"ex_srce"`
	Text *string     `xml:"ex_text"`
	Sent []xmlExSent `xml:"ex_sent"`
}

// <!ATTLIST ex_srce exsrc_type CDATA #IMPLIED>
type xmlExSrce struct {
	Text  string     `xml:",chardata"`
	Attrs []xml.Attr `xml:",any,attr"`
}

// <!ATTLIST ex_sent xml:lang CDATA "eng">
type xmlExSent struct {
	Text  string     `xml:",chardata"`
	Attrs []xml.Attr `xml:",any,attr"`
}

// attrValue returns the value of the named attribute and whether it was
// present. Unprefixed and xml: prefixed names match.
func attrValue(attrs []xml.Attr, local string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Local != local {
			continue
		}
		switch a.Name.Space {
		case "", xmlNamespace, "xml":
			return a.Value, true
		}
	}
	return "", false
}

// attrDefault returns the value of the attribute or def if it is absent.
func attrDefault(attrs []xml.Attr, local, def string) string {
	if v, ok := attrValue(attrs, local); ok {
		return v
	}
	return def
}

// nonNil returns s or an empty slice if s is nil.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// convertSlice converts each element of s with f, stopping at the first
// error.
func convertSlice[S, T any](s []S, f func(*S) (T, error)) ([]T, error) {
	out := make([]T, 0, len(s))
	for i := range s {
		v, err := f(&s[i])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (x *xmlEntry) entry() (*Entry, error) {
	if x.Seq == nil || *x.Seq == "" {
		return nil, errMissingSeq
	}
	if len(x.Kana) == 0 {
		return nil, errMissingReading
	}
	if len(x.Sense) == 0 {
		return nil, errMissingSense
	}

	kanji, err := convertSlice(x.Kanji, (*xmlKEle).kanjiForm)
	if err != nil {
		return nil, err
	}
	readings, err := convertSlice(x.Kana, (*xmlREle).readingForm)
	if err != nil {
		return nil, err
	}
	senses, err := convertSlice(x.Sense, (*xmlSense).sense)
	if err != nil {
		return nil, err
	}

	return &Entry{
		Sequence: *x.Seq,
		Kanji:    kanji,
		Readings: readings,
		Senses:   senses,
	}, nil
}

func (x *xmlKEle) kanjiForm() (KanjiForm, error) {
	if x.Keb == nil || *x.Keb == "" {
		return KanjiForm{}, errMissingKeb
	}
	return KanjiForm{
		Text:     *x.Keb,
		Info:     nonNil(x.Inf),
		Priority: nonNil(x.Pri),
	}, nil
}

func (x *xmlREle) readingForm() (ReadingForm, error) {
	if x.Reb == nil || *x.Reb == "" {
		return ReadingForm{}, errMissingReb
	}
	return ReadingForm{
		Text:         *x.Reb,
		NoKanji:      x.NoKanji != nil,
		Restrictions: nonNil(x.Restr),
		Info:         nonNil(x.Inf),
		Priority:     nonNil(x.Pri),
	}, nil
}

func (x *xmlSense) sense() (Sense, error) {
	sources, err := convertSlice(x.LSource, (*xmlLSource).lexicalSource)
	if err != nil {
		return Sense{}, err
	}
	glosses, err := convertSlice(x.Gloss, (*xmlGloss).gloss)
	if err != nil {
		return Sense{}, err
	}
	examples, err := convertSlice(x.Example, (*xmlExample).example)
	if err != nil {
		return Sense{}, err
	}

	return Sense{
		KanjiRestrictions:   nonNil(x.Stagk),
		ReadingRestrictions: nonNil(x.Stagr),
		PartsOfSpeech:       nonNil(x.Pos),
		CrossRefs:           nonNil(x.Xref),
		Antonyms:            nonNil(x.Ant),
		Fields:              nonNil(x.Field),
		Misc:                nonNil(x.Misc),
		Notes:               nonNil(x.SInf),
		Sources:             sources,
		Dialects:            nonNil(x.Dial),
		Glosses:             glosses,
		Examples:            examples,
	}, nil
}

func (x *xmlLSource) lexicalSource() (LexicalSource, error) {
	// ls_wasei is declared as a single character flag. In practice the
	// value is always "y".
	wasei := attrDefault(x.Attrs, "ls_wasei", "")
	if utf8.RuneCountInString(wasei) > 1 {
		return LexicalSource{}, fmt.Errorf("%w: want at most one character, got %q", errInvalidWasei, wasei)
	}
	return LexicalSource{
		Text:  x.Text,
		Lang:  attrDefault(x.Attrs, "lang", DefaultLang),
		Type:  attrDefault(x.Attrs, "ls_type", ""),
		Wasei: wasei != "",
	}, nil
}

func (x *xmlGloss) gloss() (Gloss, error) {
	return Gloss{
		Text:   x.Text,
		Lang:   attrDefault(x.Attrs, "lang", DefaultLang),
		Gender: attrDefault(x.Attrs, "g_gend", ""),
		Type:   attrDefault(x.Attrs, "g_type", ""),
	}, nil
}

func (x *xmlExample) example() (Example, error) {
	if x.Srce == nil {
		return Example{}, errMissingExSrce
	}
	if x.Text == nil {
		return Example{}, errMissingExText
	}
	if len(x.Sent) == 0 {
		return Example{}, errMissingExSent
	}

	sentences := make([]ExampleSentence, 0, len(x.Sent))
	for _, s := range x.Sent {
		sentences = append(sentences, ExampleSentence{
			Text: s.Text,
			Lang: attrDefault(s.Attrs, "lang", DefaultLang),
		})
	}

	return Example{
		Source:     x.Srce.Text,
		SourceType: attrDefault(x.Srce.Attrs, "exsrc_type", ""),
		Text:       *x.Text,
		Sentences:  sentences,
	}, nil
}
