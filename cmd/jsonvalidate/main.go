// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Jsonvalidate validates JSON and YAML documents
// against JSON Schema draft 2020-12 schemas.
//
// Usage:
//
//	jsonvalidate [global flags] validate --schema schema.json instance.json...
//	jsonvalidate [global flags] check-schema schema.json...
//
// The exit status is 0 when every input is valid, 1 when some
// input is invalid, and 2 when a schema or input could not be used.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitFatal   = 2
)

// errInvalid is returned by a command when some input is invalid.
var errInvalid = errors.New("invalid")

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run runs the command line args and returns the exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newCommand(stdin, stdout, stderr)
	err := cmd.Run(ctx, args)
	switch {
	case err == nil:
		return exitValid
	case errors.Is(err, errInvalid):
		return exitInvalid
	default:
		fmt.Fprintf(stderr, "jsonvalidate: %v\n", err)
		return exitFatal
	}
}

func newCommand(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	return &cli.Command{
		Name:      "jsonvalidate",
		Usage:     "Validate documents against JSON Schema draft 2020-12",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		// Exit statuses are chosen by run.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Load settings from a JSON or YAML `FILE`",
			},
			&cli.StringFlag{
				Name:  "default-base-uri",
				Usage: "Base `URI` of a schema without $id (default: the schema file's URI)",
			},
			&cli.BoolFlag{
				Name:  "format-assertion",
				Usage: "Treat the format keyword as an assertion",
			},
			&cli.StringSliceFlag{
				Name:  "preload",
				Usage: "Make the schema in a file available under a URI, as `URI=PATH`",
			},
			&cli.StringFlag{
				Name:  "schema-dir",
				Usage: "Preload every schema in `DIR` under its $id",
			},
			&cli.IntFlag{
				Name:  "cache-size",
				Usage: "Number of compiled schemas and fetched documents to keep",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log at debug level",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Validate instance documents against a schema",
				ArgsUsage: "[instance files, or - for standard input]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "schema",
						Aliases:  []string{"s"},
						Usage:    "The schema `FILE`",
						Required: true,
					},
				},
				Action: a.validate,
			},
			{
				Name:      "check-schema",
				Usage:     "Check schemas against the draft 2020-12 meta-schema",
				ArgsUsage: "[schema files]",
				Action:    a.checkSchema,
			},
		},
	}
}
