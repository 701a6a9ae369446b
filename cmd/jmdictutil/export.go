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

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-jmdict/internal/sqlitedb"
)

var exportCommand = &cli.Command{
	Name:         "export",
	Usage:        "export the dictionary to a SQLite database",
	OnUsageError: usageError,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "db",
			Usage: "write the database to `PATH`",
		},
	},
	Action: func(c *cli.Context) error {
		path := c.String("db")
		if path == "" {
			return fmt.Errorf("%w: --db is required", ErrFlagParse)
		}

		d, l, err := loadDictionary(c)
		if err != nil {
			return err
		}

		db, err := sqlitedb.Create(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrJMdictutil, err)
		}
		defer db.Close()

		log := l.WithField("db", path)
		log.Info("exporting dictionary")
		if err := sqlitedb.Write(c.Context, db, d); err != nil {
			return fmt.Errorf("%w: exporting to %q: %w", ErrJMdictutil, path, err)
		}
		log.WithField("entries", len(d.Entries)).Info("exported dictionary")

		return nil
	},
}
