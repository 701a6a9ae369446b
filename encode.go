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
	"io"
)

// WriteXML writes the dictionary as a JMdict XML document. Tag values are
// written as plain text rather than entity references and no DTD is
// included.
func (d *Dictionary) WriteXML(w io.Writer) error {
	doc := xmlJMdict{
		Entries: make([]xmlEntry, 0, len(d.Entries)),
	}
	for _, e := range d.Entries {
		doc.Entries = append(doc.Entries, e.xmlEntry())
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing xml header: %w", err)
	}
	if d.Created != "" {
		if _, err := fmt.Fprintf(w, "<!-- JMdict created: %s -->\n", d.Created); err != nil {
			return fmt.Errorf("writing xml comment: %w", err)
		}
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encoding dictionary: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("writing dictionary: %w", err)
	}
	return nil
}

func attr(local, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: local}, Value: value}
}

// optAttr appends the attribute to attrs if value differs from def.
func optAttr(attrs []xml.Attr, name xml.Name, value, def string) []xml.Attr {
	if value == def {
		return attrs
	}
	return append(attrs, xml.Attr{Name: name, Value: value})
}

var langName = xml.Name{Space: xmlNamespace, Local: "lang"}

func (e *Entry) xmlEntry() xmlEntry {
	seq := e.Sequence
	x := xmlEntry{Seq: &seq}
	for _, k := range e.Kanji {
		x.Kanji = append(x.Kanji, xmlKEle{
			Keb: &k.Text,
			Inf: k.Info,
			Pri: k.Priority,
		})
	}
	for _, r := range e.Readings {
		xr := xmlREle{
			Reb:   &r.Text,
			Restr: r.Restrictions,
			Inf:   r.Info,
			Pri:   r.Priority,
		}
		if r.NoKanji {
			xr.NoKanji = &struct{}{}
		}
		x.Kana = append(x.Kana, xr)
	}
	for i := range e.Senses {
		x.Sense = append(x.Sense, e.Senses[i].xmlSense())
	}
	return x
}

func (s *Sense) xmlSense() xmlSense {
	x := xmlSense{
		Stagk: s.KanjiRestrictions,
		Stagr: s.ReadingRestrictions,
		Pos:   s.PartsOfSpeech,
		Xref:  s.CrossRefs,
		Ant:   s.Antonyms,
		Field: s.Fields,
		Misc:  s.Misc,
		SInf:  s.Notes,
		Dial:  s.Dialects,
	}
	for _, ls := range s.Sources {
		var attrs []xml.Attr
		attrs = optAttr(attrs, langName, ls.Lang, DefaultLang)
		attrs = optAttr(attrs, xml.Name{Local: "ls_type"}, ls.Type, "")
		if ls.Wasei {
			attrs = append(attrs, attr("ls_wasei", "y"))
		}
		x.LSource = append(x.LSource, xmlLSource{Text: ls.Text, Attrs: attrs})
	}
	for _, g := range s.Glosses {
		var attrs []xml.Attr
		attrs = optAttr(attrs, langName, g.Lang, DefaultLang)
		attrs = optAttr(attrs, xml.Name{Local: "g_gend"}, g.Gender, "")
		attrs = optAttr(attrs, xml.Name{Local: "g_type"}, g.Type, "")
		x.Gloss = append(x.Gloss, xmlGloss{Text: g.Text, Attrs: attrs})
	}
	for _, ex := range s.Examples {
		text := ex.Text
		xe := xmlExample{
			Srce: &xmlExSrce{
				Text:  ex.Source,
				Attrs: optAttr(nil, xml.Name{Local: "exsrc_type"}, ex.SourceType, ""),
			},
			Text: &text,
		}
		for _, sent := range ex.Sentences {
			xe.Sent = append(xe.Sent, xmlExSent{
				Text:  sent.Text,
				Attrs: optAttr(nil, langName, sent.Lang, DefaultLang),
			})
		}
		x.Example = append(x.Example, xe)
	}
	return x
}
