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

// Package sqlitedb exports JMdict dictionaries to SQLite databases.
//
// Each entry is stored as a row in the entries table. Kanji forms, readings
// and senses are stored in their own tables keyed by the entry's sequence
// number and their position in the entry. Glosses and lexical sources are
// additionally keyed by the position of their sense. List-valued fields are
// stored as comma separated text.
package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	// Registers the sqlite3 driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/ianlewis/go-jmdict"
)

// DriverName is the database/sql driver used by Create.
const DriverName = "sqlite3"

var schema = []string{
	`CREATE TABLE entries (
		seq TEXT PRIMARY KEY,
		pos INTEGER NOT NULL
	)`,
	`CREATE TABLE kanji (
		seq TEXT NOT NULL,
		pos INTEGER NOT NULL,
		text TEXT NOT NULL,
		info TEXT NOT NULL,
		priority TEXT NOT NULL
	)`,
	`CREATE TABLE readings (
		seq TEXT NOT NULL,
		pos INTEGER NOT NULL,
		text TEXT NOT NULL,
		nokanji INTEGER NOT NULL,
		restrictions TEXT NOT NULL,
		info TEXT NOT NULL,
		priority TEXT NOT NULL
	)`,
	`CREATE TABLE senses (
		seq TEXT NOT NULL,
		pos INTEGER NOT NULL,
		stagk TEXT NOT NULL,
		stagr TEXT NOT NULL,
		part_of_speech TEXT NOT NULL,
		xref TEXT NOT NULL,
		ant TEXT NOT NULL,
		field TEXT NOT NULL,
		misc TEXT NOT NULL,
		notes TEXT NOT NULL,
		dial TEXT NOT NULL
	)`,
	`CREATE TABLE glosses (
		seq TEXT NOT NULL,
		sense INTEGER NOT NULL,
		pos INTEGER NOT NULL,
		text TEXT NOT NULL,
		lang TEXT NOT NULL,
		gender TEXT NOT NULL,
		type TEXT NOT NULL
	)`,
	`CREATE TABLE sources (
		seq TEXT NOT NULL,
		sense INTEGER NOT NULL,
		pos INTEGER NOT NULL,
		text TEXT NOT NULL,
		lang TEXT NOT NULL,
		type TEXT NOT NULL,
		wasei INTEGER NOT NULL
	)`,
}

const (
	insertEntry   = `INSERT INTO entries (seq, pos) VALUES (:SEQ, :POS)`
	insertKanji   = `INSERT INTO kanji (seq, pos, text, info, priority) VALUES (:SEQ, :POS, :TEXT, :INFO, :PRI)`
	insertReading = `INSERT INTO readings (seq, pos, text, nokanji, restrictions, info, priority) VALUES (:SEQ, :POS, :TEXT, :NOKANJI, :RESTR, :INFO, :PRI)`
	insertSense   = `INSERT INTO senses (seq, pos, stagk, stagr, part_of_speech, xref, ant, field, misc, notes, dial) VALUES (:SEQ, :POS, :STAGK, :STAGR, :PARTOFSPEECH, :XREF, :ANT, :FIELD, :MISC, :NOTES, :DIAL)`
	insertGloss   = `INSERT INTO glosses (seq, sense, pos, text, lang, gender, type) VALUES (:SEQ, :SENSE, :POS, :TEXT, :LANG, :GEND, :TYPE)`
	insertSource  = `INSERT INTO sources (seq, sense, pos, text, lang, type, wasei) VALUES (:SEQ, :SENSE, :POS, :TEXT, :LANG, :TYPE, :WASEI)`
)

// Create creates a new SQLite database file at path, replacing any existing
// file.
func Create(path string) (*sql.DB, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("removing %q: %w", path, err)
	}
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	return db, nil
}

type statements struct {
	entry, kanji, reading, sense, gloss, source *sql.Stmt
}

func prepare(ctx context.Context, tx *sql.Tx) (*statements, error) {
	var s statements
	for _, p := range []struct {
		stmt  **sql.Stmt
		query string
	}{
		{&s.entry, insertEntry},
		{&s.kanji, insertKanji},
		{&s.reading, insertReading},
		{&s.sense, insertSense},
		{&s.gloss, insertGloss},
		{&s.source, insertSource},
	} {
		stmt, err := tx.PrepareContext(ctx, p.query)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("preparing statement: %w", err)
		}
		*p.stmt = stmt
	}
	return &s, nil
}

func (s *statements) Close() {
	for _, stmt := range []*sql.Stmt{s.entry, s.kanji, s.reading, s.sense, s.gloss, s.source} {
		if stmt != nil {
			stmt.Close()
		}
	}
}

// Write creates the dictionary tables in db and inserts all of the
// dictionary's entries. The database is left unchanged if an error occurs.
func Write(ctx context.Context, db *sql.DB, d *jmdict.Dictionary) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op.
	defer tx.Rollback()

	for _, q := range schema {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	stmts, err := prepare(ctx, tx)
	if err != nil {
		return err
	}
	defer stmts.Close()

	for i, e := range d.Entries {
		if err := stmts.writeEntry(ctx, i, e); err != nil {
			return fmt.Errorf("entry %d (ent_seq %s): %w", i, e.Sequence, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (s *statements) writeEntry(ctx context.Context, n int, e *jmdict.Entry) error {
	seq := sql.Named("SEQ", e.Sequence)
	if _, err := s.entry.ExecContext(ctx, seq, sql.Named("POS", n)); err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}

	for i, k := range e.Kanji {
		_, err := s.kanji.ExecContext(ctx, seq,
			sql.Named("POS", i),
			sql.Named("TEXT", k.Text),
			sql.Named("INFO", join(k.Info)),
			sql.Named("PRI", join(k.Priority)),
		)
		if err != nil {
			return fmt.Errorf("inserting kanji: %w", err)
		}
	}

	for i, r := range e.Readings {
		_, err := s.reading.ExecContext(ctx, seq,
			sql.Named("POS", i),
			sql.Named("TEXT", r.Text),
			sql.Named("NOKANJI", r.NoKanji),
			sql.Named("RESTR", join(r.Restrictions)),
			sql.Named("INFO", join(r.Info)),
			sql.Named("PRI", join(r.Priority)),
		)
		if err != nil {
			return fmt.Errorf("inserting reading: %w", err)
		}
	}

	for i := range e.Senses {
		if err := s.writeSense(ctx, seq, i, &e.Senses[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *statements) writeSense(ctx context.Context, seq sql.NamedArg, n int, sense *jmdict.Sense) error {
	_, err := s.sense.ExecContext(ctx, seq,
		sql.Named("POS", n),
		sql.Named("STAGK", join(sense.KanjiRestrictions)),
		sql.Named("STAGR", join(sense.ReadingRestrictions)),
		sql.Named("PARTOFSPEECH", join(sense.PartsOfSpeech)),
		sql.Named("XREF", join(sense.CrossRefs)),
		sql.Named("ANT", join(sense.Antonyms)),
		sql.Named("FIELD", join(sense.Fields)),
		sql.Named("MISC", join(sense.Misc)),
		sql.Named("NOTES", join(sense.Notes)),
		sql.Named("DIAL", join(sense.Dialects)),
	)
	if err != nil {
		return fmt.Errorf("inserting sense: %w", err)
	}

	senseArg := sql.Named("SENSE", n)
	for i, g := range sense.Glosses {
		_, err := s.gloss.ExecContext(ctx, seq, senseArg,
			sql.Named("POS", i),
			sql.Named("TEXT", g.Text),
			sql.Named("LANG", g.Lang),
			sql.Named("GEND", g.Gender),
			sql.Named("TYPE", g.Type),
		)
		if err != nil {
			return fmt.Errorf("inserting gloss: %w", err)
		}
	}

	for i, ls := range sense.Sources {
		_, err := s.source.ExecContext(ctx, seq, senseArg,
			sql.Named("POS", i),
			sql.Named("TEXT", ls.Text),
			sql.Named("LANG", ls.Lang),
			sql.Named("TYPE", ls.Type),
			sql.Named("WASEI", ls.Wasei),
		)
		if err != nil {
			return fmt.Errorf("inserting source: %w", err)
		}
	}
	return nil
}

func join(s []string) string {
	return strings.Join(s, ",")
}
