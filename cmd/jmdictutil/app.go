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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-jmdict"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrJMdictutil is a parent error for all command errors.
var ErrJMdictutil = errors.New("jmdictutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrJMdictutil)

// ErrNoDictionary indicates that no dictionary file could be found.
var ErrNoDictionary = fmt.Errorf("%w: no dictionary found", ErrJMdictutil)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

// dictNames are the file names searched for in the data directories, in
// order.
var dictNames = []string{
	"JMdict_e.gz",
	"JMdict_e",
	"JMdict.gz",
	"JMdict",
	"JMdict_e.xml",
	"JMdict.xml",
}

//nolint:gochecknoinits // init needed for global variables.
func init() {
	// The default version flag uses -v.
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print version information and exit",
		Aliases:            []string{"V"},
		DisableDefaultText: true,
	}
	cli.VersionPrinter = printVersion
}

// usageError wraps flag parsing errors so that they map to
// ExitCodeFlagParseError.
func usageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

func newJMdictApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Inspect and convert JMdict dictionaries.",
		Description: strings.Join([]string{
			"JMdict utility written in Go.",
			"http://github.com/ianlewis/go-jmdict",
		}, "\n"),
		Version: version.GetVersionInfo().GitVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Usage:   "read the dictionary from `FILE`",
				Aliases: []string{"f"},
				EnvVars: []string{"JMDICT_FILE"},
			},
			&cli.StringSliceFlag{
				Name:    "data-dir",
				Usage:   "search for dictionaries in `DIR`",
				Aliases: []string{"d"},
				Value:   cli.NewStringSlice(dictLocations()...),
			},
			&cli.BoolFlag{
				Name:  "expand-entities",
				Usage: "expand entity references to their description text",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log messages at `LEVEL` and above",
				Value: logrus.WarnLevel.String(),
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		OnUsageError:    usageError,
		Commands: []*cli.Command{
			countCommand,
			listCommand,
			dumpCommand,
			exportCommand,
		},
	}
}

// newLogger returns a logger that writes to the app's error writer at the
// level given by the --log-level flag.
func newLogger(c *cli.Context) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.String("log-level"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}

	l := logrus.New()
	l.SetOutput(c.App.ErrWriter)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	l.SetLevel(level)
	return l, nil
}

// findDictionary returns the path given by --file or the first known
// dictionary file in the data directories.
func findDictionary(c *cli.Context, l *logrus.Logger) (string, error) {
	if path := c.String("file"); path != "" {
		return path, nil
	}

	dirs := c.StringSlice("data-dir")
	for _, dir := range dirs {
		for _, name := range dictNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
			l.WithField("path", path).Trace("dictionary not found")
		}
	}

	return "", fmt.Errorf("%w in %s", ErrNoDictionary, strings.Join(dirs, ", "))
}

// loadDictionary loads the dictionary selected by the global flags.
func loadDictionary(c *cli.Context) (*jmdict.Dictionary, *logrus.Logger, error) {
	l, err := newLogger(c)
	if err != nil {
		return nil, nil, err
	}

	path, err := findDictionary(c, l)
	if err != nil {
		return nil, nil, err
	}

	log := l.WithField("path", path)
	log.Info("loading dictionary")

	d, err := jmdict.Load(path, &jmdict.Options{
		ExpandEntities: c.Bool("expand-entities"),
	})
	if err != nil {
		return nil, nil, err
	}

	log.WithFields(logrus.Fields{
		"entries": len(d.Entries),
		"created": d.Created,
	}).Debug("loaded dictionary")

	return d, l, nil
}

// limitFlag is the --limit flag shared by commands that print entries.
var limitFlag = &cli.IntFlag{
	Name:  "limit",
	Usage: "print at most `N` entries (0 for all)",
	Value: 0,
}

// limitEntries returns the entries selected by --limit.
func limitEntries(c *cli.Context, entries []*jmdict.Entry) ([]*jmdict.Entry, error) {
	n := c.Int("limit")
	if n < 0 {
		return nil, fmt.Errorf("%w: invalid limit %d", ErrFlagParse, n)
	}
	if n == 0 || n > len(entries) {
		return entries, nil
	}
	return entries[:n], nil
}
