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

// Package jmdict implements a library for reading JMdict dictionaries in
// pure Go.
//
// JMdict is a Japanese-multilingual dictionary distributed as a single XML
// document (usually JMdict_e.gz). The document contains a list of entries and
// each entry has:
//  1. A sequence number (ent_seq) that identifies the entry.
//  2. Zero or more kanji elements (k_ele) with the written forms of the word.
//  3. One or more reading elements (r_ele) with the kana forms of the word.
//  4. One or more sense elements (sense) with part of speech information,
//     cross references and glosses in one or more languages.
//
// Tag values such as parts of speech are encoded as XML entities declared in
// the document's DTD. By default the entity name (e.g. "n" for &n;) is used
// as the value. See [Options.ExpandEntities].
//
// The whole document is read into memory. More info on the dictionary format
// can be found at this URL:
// https://www.edrdg.org/jmdict/jmdict_dtd_h.html
package jmdict
