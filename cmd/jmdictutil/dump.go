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
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-jmdict"
)

var dumpCommand = &cli.Command{
	Name:         "dump",
	Usage:        "write dictionary entries as JSON or XML",
	OnUsageError: usageError,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Usage: "output `FORMAT` (json or xml)",
			Value: "json",
		},
		limitFlag,
	},
	Action: func(c *cli.Context) error {
		format := c.String("format")
		if format != "json" && format != "xml" {
			return fmt.Errorf("%w: unknown format %q", ErrFlagParse, format)
		}

		d, l, err := loadDictionary(c)
		if err != nil {
			return err
		}

		entries, err := limitEntries(c, d.Entries)
		if err != nil {
			return err
		}
		out := &jmdict.Dictionary{
			Created: d.Created,
			Entries: entries,
		}
		l.WithField("entries", len(entries)).Debugf("writing %s", format)

		if format == "xml" {
			return out.WriteXML(c.App.Writer)
		}

		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	},
}
