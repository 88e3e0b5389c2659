// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// writeFiles writes name/contents pairs into a new directory.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	}
	return dir
}

func runArgs(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"jsonvalidate"}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestValidateCommand(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"schema.json": `{
			"type": "object",
			"properties": {"name": {"$ref": "defs.json#/$defs/name"}},
			"required": ["name"]
		}`,
		"defs.json":   `{"$defs": {"name": {"type": "string", "minLength": 1}}}`,
		"good.json":   `{"name": "x"}`,
		"good.yaml":   "name: y\n",
		"bad.json":    `{"name": ""}`,
		"broken.json": `{"name": `,
	})
	schema := filepath.Join(dir, "schema.json")

	tests := []struct {
		name   string
		args   []string
		stdin  string
		code   int
		stdout []string
	}{
		{
			name:   "valid",
			args:   []string{"validate", "--schema", schema, filepath.Join(dir, "good.json"), filepath.Join(dir, "good.yaml")},
			code:   exitValid,
			stdout: []string{"good.json: valid", "good.yaml: valid"},
		},
		{
			name:   "invalid",
			args:   []string{"validate", "--schema", schema, filepath.Join(dir, "good.json"), filepath.Join(dir, "bad.json")},
			code:   exitInvalid,
			stdout: []string{"good.json: valid", "bad.json: invalid"},
		},
		{
			name:   "stdin",
			args:   []string{"validate", "-s", schema, "-"},
			stdin:  `{"name": "z"}`,
			code:   exitValid,
			stdout: []string{"-: valid"},
		},
		{
			name: "broken instance",
			args: []string{"validate", "--schema", schema, filepath.Join(dir, "broken.json")},
			code: exitFatal,
		},
		{
			name: "no instances",
			args: []string{"validate", "--schema", schema},
			code: exitFatal,
		},
		{
			name: "no schema",
			args: []string{"validate", filepath.Join(dir, "good.json")},
			code: exitFatal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runArgs(t, tt.stdin, tt.args...)
			assert.Equal(t, tt.code, code, "stderr: %s", stderr)
			for _, s := range tt.stdout {
				assert.Contains(t, stdout, s)
			}
			if tt.code == exitFatal {
				assert.Contains(t, stderr, "jsonvalidate:")
			}
		})
	}
}

func TestValidateUnresolvedReference(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"schema.json":   `{"$ref": "missing.json"}`,
		"instance.json": `{}`,
	})
	code, _, stderr := runArgs(t, "", "validate", "--schema", filepath.Join(dir, "schema.json"), filepath.Join(dir, "instance.json"))
	assert.Equal(t, exitFatal, code)
	assert.Contains(t, stderr, "missing.json")

	dir = writeFiles(t, map[string]string{
		"schema.json":   `{"properties":{"a":{"$ref":"missing.json"}}}`,
		"instance.json": `{"b":1}`,
	})
	code, _, stderr = runArgs(t, "", "validate", "--schema", filepath.Join(dir, "schema.json"), filepath.Join(dir, "instance.json"))
	assert.Equal(t, exitValid, code, stderr)

	code, _, stderr = runArgs(t, "", "check-schema", filepath.Join(dir, "schema.json"))
	assert.Equal(t, exitFatal, code)
	assert.Contains(t, stderr, "missing.json")
}

func TestValidatePreload(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"schema.json":     `{"$ref": "https://example.com/positive"}`,
		"positive.json":   `{"type": "integer", "exclusiveMinimum": 0}`,
		"lib/even.yaml":   "$id: https://example.com/even\nmultipleOf: 2\n",
		"evenschema.json": `{"$ref": "https://example.com/even"}`,
		"one.json":        `1`,
		"minus.json":      `-1`,
	})

	code, _, stderr := runArgs(t, "",
		"--preload", "https://example.com/positive="+filepath.Join(dir, "positive.json"),
		"validate", "--schema", filepath.Join(dir, "schema.json"), filepath.Join(dir, "one.json"))
	assert.Equal(t, exitValid, code, stderr)

	code, _, stderr = runArgs(t, "",
		"--preload", "https://example.com/positive="+filepath.Join(dir, "positive.json"),
		"validate", "--schema", filepath.Join(dir, "schema.json"), filepath.Join(dir, "minus.json"))
	assert.Equal(t, exitInvalid, code, stderr)

	code, _, stderr = runArgs(t, "",
		"--schema-dir", filepath.Join(dir, "lib"),
		"validate", "--schema", filepath.Join(dir, "evenschema.json"), filepath.Join(dir, "one.json"))
	assert.Equal(t, exitInvalid, code, stderr)

	code, _, _ = runArgs(t, "",
		"--preload", "no-equals-sign",
		"validate", "--schema", filepath.Join(dir, "schema.json"), filepath.Join(dir, "one.json"))
	assert.Equal(t, exitFatal, code)
}

func TestValidateFormatAssertion(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"schema.json":   `{"format": "date"}`,
		"instance.json": `"2025-02-30"`,
	})
	args := []string{"validate", "--schema", filepath.Join(dir, "schema.json"), filepath.Join(dir, "instance.json")}

	code, _, _ := runArgs(t, "", args...)
	assert.Equal(t, exitValid, code)

	code, _, _ = runArgs(t, "", append([]string{"--format-assertion"}, args...)...)
	assert.Equal(t, exitInvalid, code)

	t.Setenv("JSONVALIDATE_FORMAT_ASSERTION", "true")
	code, _, _ = runArgs(t, "", args...)
	assert.Equal(t, exitInvalid, code)
}

func TestCheckSchemaCommand(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"good.json":       `{"type": "string"}`,
		"bad.json":        `{"type": "strings"}`,
		"unresolved.json": `{"$ref": "nowhere.json"}`,
	})

	code, stdout, _ := runArgs(t, "", "check-schema", filepath.Join(dir, "good.json"))
	assert.Equal(t, exitValid, code)
	assert.Contains(t, stdout, "good.json: valid")

	code, stdout, _ = runArgs(t, "", "check-schema", filepath.Join(dir, "good.json"), filepath.Join(dir, "bad.json"))
	assert.Equal(t, exitInvalid, code)
	assert.Contains(t, stdout, "bad.json: invalid")

	code, _, _ = runArgs(t, "", "check-schema", filepath.Join(dir, "unresolved.json"))
	assert.Equal(t, exitFatal, code)
}

// configCommand returns a command that loads its configuration into *cfg.
func configCommand(cfg **Config) *cli.Command {
	cmd := newCommand(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	cmd.Commands[0].Action = func(_ context.Context, cmd *cli.Command) error {
		var err error
		*cfg, err = loadConfig(cmd)
		return err
	}
	return cmd
}

func TestLoadConfig(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"config.yaml": "default-base-uri: https://example.com/root\ncache-size: 10\npreload:\n  - https://example.com/a=a.json\nlog-level: warn\n",
		"config.json": `{"format-assertion": true, "schema-dir": "schemas"}`,
		"config.toml": ``,
	})

	var cfg *Config
	load := func(args ...string) error {
		cfg = nil
		return configCommand(&cfg).Run(context.Background(), append([]string{"jsonvalidate"}, args...))
	}

	require.NoError(t, load("validate", "-s", "x"))
	assert.Equal(t, &Config{LogLevel: "info"}, cfg)

	require.NoError(t, load("--config", filepath.Join(dir, "config.yaml"), "validate", "-s", "x"))
	assert.Equal(t, "https://example.com/root", cfg.DefaultBaseURI)
	assert.Equal(t, 10, cfg.CacheSize)
	assert.Equal(t, []string{"https://example.com/a=a.json"}, cfg.Preload)
	assert.Equal(t, "warn", cfg.LogLevel)

	require.NoError(t, load("--config", filepath.Join(dir, "config.json"), "validate", "-s", "x"))
	assert.True(t, cfg.FormatAssertion)
	assert.Equal(t, "schemas", cfg.SchemaDir)

	assert.Error(t, load("--config", filepath.Join(dir, "config.toml"), "validate", "-s", "x"))

	// The environment overrides the file; flags override both.
	t.Setenv("JSONVALIDATE_LOG_LEVEL", "error")
	t.Setenv("JSONVALIDATE_PRELOAD", "u1=p1,u2=p2")
	require.NoError(t, load("--config", filepath.Join(dir, "config.yaml"), "validate", "-s", "x"))
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, []string{"u1=p1", "u2=p2"}, cfg.Preload)

	require.NoError(t, load("--config", filepath.Join(dir, "config.yaml"), "--log-level", "debug", "--cache-size", "3", "validate", "-s", "x"))
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.CacheSize)
}

func TestPreloads(t *testing.T) {
	cfg := &Config{Preload: []string{"https://example.com/a=a.json", "urn:x=b.json"}}
	m, err := cfg.preloads()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"https://example.com/a": "a.json", "urn:x": "b.json"}, m)

	for _, bad := range []string{"nothing", "=path", "uri="} {
		_, err := (&Config{Preload: []string{bad}}).preloads()
		assert.Error(t, err, bad)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, &Config{LogLevel: "warn"})
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	logger, err = newLogger(&buf, &Config{LogLevel: "warn", Verbose: true})
	require.NoError(t, err)
	logger.Debug("detail")
	assert.Contains(t, buf.String(), "detail")

	_, err = newLogger(&buf, &Config{LogLevel: "loud"})
	assert.Error(t, err)
}
