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
	"strings"

	"github.com/rodaine/table"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-jmdict"
	"github.com/ianlewis/go-jmdict/internal/folding"
)

// cellWidth is the maximum number of runes printed in a table cell.
const cellWidth = 40

var listCommand = &cli.Command{
	Name:         "list",
	Usage:        "list dictionary entries",
	OnUsageError: usageError,
	Flags: []cli.Flag{
		limitFlag,
	},
	Action: func(c *cli.Context) error {
		d, _, err := loadDictionary(c)
		if err != nil {
			return err
		}

		entries, err := limitEntries(c, d.Entries)
		if err != nil {
			return err
		}

		tbl := table.New("Seq", "Headword", "Readings", "Gloss").WithWriter(c.App.Writer)
		for _, e := range entries {
			readings := lo.Map(e.Readings, func(r jmdict.ReadingForm, _ int) string {
				return r.Text
			})
			tbl.AddRow(
				e.Sequence,
				e.Headword(),
				folding.Cell(strings.Join(readings, ", "), cellWidth),
				folding.Cell(firstGloss(e), cellWidth),
			)
		}
		tbl.Print()

		return nil
	},
}

// firstGloss returns the entry's first gloss text.
func firstGloss(e *jmdict.Entry) string {
	for _, s := range e.Senses {
		if len(s.Glosses) > 0 {
			return s.Glosses[0].Text
		}
	}
	return ""
}
