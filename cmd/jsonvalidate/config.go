// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v3"
)

// envPrefix is the prefix of configuration environment variables.
const envPrefix = "JSONVALIDATE_"

// Config is the configuration of the command.
// It is loaded from a config file, then the environment,
// then command line flags, each overriding the one before.
type Config struct {
	DefaultBaseURI  string   `koanf:"default-base-uri"`
	FormatAssertion bool     `koanf:"format-assertion"`
	Preload         []string `koanf:"preload"`
	SchemaDir       string   `koanf:"schema-dir"`
	CacheSize       int      `koanf:"cache-size"`
	LogLevel        string   `koanf:"log-level"`
	Verbose         bool     `koanf:"verbose"`
}

// listKeys are the keys whose environment values are comma separated.
var listKeys = map[string]bool{"preload": true}

// loadConfig loads the configuration for cmd.
func loadConfig(cmd *cli.Command) (*Config, error) {
	k := koanf.New(".")

	if path := cmd.String("config"); path != "" {
		if err := loadConfigFile(k, path); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	err := k.Load(env.ProviderWithValue(envPrefix, "", func(key, value string) (string, any) {
		name := strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(key, envPrefix), "_", "-"))
		if listKeys[name] {
			return name, strings.Split(value, ",")
		}
		return name, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	for _, name := range []string{"default-base-uri", "schema-dir", "log-level"} {
		if cmd.IsSet(name) {
			k.Set(name, cmd.String(name))
		}
	}
	for _, name := range []string{"format-assertion", "verbose"} {
		if cmd.IsSet(name) {
			k.Set(name, cmd.Bool(name))
		}
	}
	if cmd.IsSet("preload") {
		k.Set("preload", cmd.StringSlice("preload"))
	}
	if cmd.IsSet("cache-size") {
		k.Set("cache-size", cmd.Int("cache-size"))
	}

	cfg := &Config{LogLevel: "info"}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return cfg, nil
}

// loadConfigFile loads a JSON or YAML config file into k.
func loadConfigFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch filepath.Ext(path) {
	case ".json":
		parser = json.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return fmt.Errorf("config file must have a .json, .yaml or .yml extension")
	}
	return k.Load(file.Provider(path), parser)
}

// preloads parses the "uri=path" entries of the preload setting.
func (c *Config) preloads() (map[string]string, error) {
	m := make(map[string]string, len(c.Preload))
	for _, p := range c.Preload {
		uri, path, ok := strings.Cut(p, "=")
		if !ok || uri == "" || path == "" {
			return nil, fmt.Errorf("bad preload %q: want uri=path", p)
		}
		m[uri] = path
	}
	return m, nil
}
