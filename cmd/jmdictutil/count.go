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
)

var countCommand = &cli.Command{
	Name:         "count",
	Usage:        "print the number of entries in the dictionary",
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		d, _, err := loadDictionary(c)
		if err != nil {
			return err
		}

		fmt.Fprintf(c.App.Writer, "Entries:  %d\n", len(d.Entries))
		if d.Created != "" {
			fmt.Fprintf(c.App.Writer, "Created:  %s\n", d.Created)
		}
		return nil
	},
}
