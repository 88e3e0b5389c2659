// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/altshiftab/jsonvalidate/pkg/jsonschema"
	"github.com/altshiftab/jsonvalidate/pkg/jsonvalue"
	"github.com/urfave/cli/v3"
)

// app holds the streams the commands use.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer
}

// setup loads the configuration and the logger for cmd.
func (a *app) setup(cmd *cli.Command) (*Config, *slog.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(a.stderr, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// validate implements the validate command.
func (a *app) validate(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := a.setup(cmd)
	if err != nil {
		return err
	}
	if cmd.NArg() == 0 {
		return fmt.Errorf("no instance files")
	}

	schemaPath := cmd.String("schema")
	schema, err := a.readDocument(schemaPath)
	if err != nil {
		return err
	}
	opts, err := a.options(ctx, cfg, logger, schemaPath)
	if err != nil {
		return err
	}

	v := jsonschema.NewValidator(&jsonschema.ValidatorOptions{
		Options:   *opts,
		CacheSize: int64(cfg.CacheSize),
	})
	defer v.Close()

	compiled, err := v.Compile(schema)
	if err != nil {
		return err
	}
	logger.Debug("compiled schema", slog.String("schema", schemaPath), slog.String("uri", compiled.String()))

	allValid := true
	for _, path := range cmd.Args().Slice() {
		instance, err := a.readDocument(path)
		if err != nil {
			return err
		}
		ok, err := compiled.Validate(instance)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		a.report(path, ok)
		allValid = allValid && ok
	}
	if !allValid {
		return errInvalid
	}
	return nil
}

// checkSchema implements the check-schema command.
// A schema that fails the meta-schema is invalid.
// A schema that passes it but cannot be compiled, for example
// because of an unresolvable reference, is a fatal error.
func (a *app) checkSchema(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := a.setup(cmd)
	if err != nil {
		return err
	}
	if cmd.NArg() == 0 {
		return fmt.Errorf("no schema files")
	}

	allValid := true
	for _, path := range cmd.Args().Slice() {
		schema, err := a.readDocument(path)
		if err != nil {
			return err
		}
		ok, err := jsonschema.CheckSchema(schema)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if ok {
			opts, err := a.options(ctx, cfg, logger, path)
			if err != nil {
				return err
			}
			compiled, err := jsonschema.Compile(schema, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := compiled.ResolveAll(); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		a.report(path, ok)
		allValid = allValid && ok
	}
	if !allValid {
		return errInvalid
	}
	return nil
}

func (a *app) report(path string, ok bool) {
	if ok {
		fmt.Fprintf(a.stdout, "%s: valid\n", path)
	} else {
		fmt.Fprintf(a.stdout, "%s: invalid\n", path)
	}
}

// options returns the compile options for the schema in schemaPath.
func (a *app) options(ctx context.Context, cfg *Config, logger *slog.Logger, schemaPath string) (*jsonschema.Options, error) {
	opts := &jsonschema.Options{
		DefaultBaseURI:  cfg.DefaultBaseURI,
		Preloaded:       make(map[string]jsonvalue.Value),
		Fetch:           fetchFile,
		Context:         ctx,
		FormatAssertion: cfg.FormatAssertion,
		Logger:          logger,
	}
	if opts.DefaultBaseURI == "" && schemaPath != "-" {
		base, err := fileURI(schemaPath)
		if err != nil {
			return nil, err
		}
		opts.DefaultBaseURI = base
	}

	if cfg.SchemaDir != "" {
		if err := a.preloadDir(opts.Preloaded, cfg.SchemaDir, logger); err != nil {
			return nil, err
		}
	}
	preloads, err := cfg.preloads()
	if err != nil {
		return nil, err
	}
	for uri, path := range preloads {
		doc, err := a.readDocument(path)
		if err != nil {
			return nil, err
		}
		opts.Preloaded[uri] = doc
	}
	return opts, nil
}

// preloadDir adds every JSON or YAML document under dir to m,
// keyed by its "$id" if it has an absolute one
// and otherwise by its file URI.
func (a *app) preloadDir(m map[string]jsonvalue.Value, dir string, logger *slog.Logger) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isDocument(path) {
			return nil
		}
		doc, err := a.readDocument(path)
		if err != nil {
			return err
		}
		key, err := fileURI(path)
		if err != nil {
			return err
		}
		if id, ok := doc.Get("$id"); ok {
			if s, ok := id.AsString(); ok {
				if u, err := url.Parse(s); err == nil && u.IsAbs() {
					key = s
				}
			}
		}
		logger.Debug("preloading schema", slog.String("path", path), slog.String("uri", key))
		m[key] = doc
		return nil
	})
}

// readDocument reads a JSON or YAML document.
// The path "-" is standard input, which is read as JSON.
func (a *app) readDocument(path string) (jsonvalue.Value, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return jsonvalue.Value{}, err
	}
	return parseDocument(path, data)
}

func parseDocument(path string, data []byte) (jsonvalue.Value, error) {
	var (
		v   jsonvalue.Value
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		v, err = jsonvalue.FromYAML(data)
	default:
		v, err = jsonvalue.Parse(data)
	}
	if err != nil {
		return jsonvalue.Value{}, &jsonschema.InvalidJSON{Source: path, Err: err}
	}
	return v, nil
}

func isDocument(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// fetchFile retrieves schema documents with file URIs.
// No other scheme is fetched.
func fetchFile(_ context.Context, uri string) (jsonvalue.Value, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return jsonvalue.Value{}, err
	}
	if u.Scheme != "file" {
		return jsonvalue.Value{}, fmt.Errorf("cannot fetch %s: only file URIs are fetched", uri)
	}
	path := filepath.FromSlash(u.Path)
	data, err := os.ReadFile(path)
	if err != nil {
		return jsonvalue.Value{}, err
	}
	return parseDocument(path, data)
}

// fileURI returns the file URI of path.
func fileURI(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}
