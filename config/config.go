/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package config loads the YAML configuration consumed by the adapter
surfaces (cmd/tgserver, server): listen address, runner
defaults and the on-disk schema version. Unlike the core, which never
reads configuration, these are thin entrypoint concerns.
*/
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"
)

/*
SchemaVersion is the configuration schema this binary understands.
Config files declaring an incompatible major version are rejected.
*/
const SchemaVersion = "1.0.0"

/*
Config is the root configuration document.
*/
type Config struct {
	SchemaVersion string `yaml:"schema_version"`

	Server  ServerConfig  `yaml:"server"`
	Runner  RunnerConfig  `yaml:"runner"`
	Logging LoggingConfig `yaml:"logging"`
}

/*
ServerConfig controls the read-only HTTP/WebSocket query surface.
*/
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	ReadOnly   bool   `yaml:"read_only"`
}

/*
RunnerConfig sets the task runner's defaults when none are supplied by
a caller.
*/
type RunnerConfig struct {
	Threads       int `yaml:"threads"`
	MaxIterations int `yaml:"max_iterations"`
}

/*
LoggingConfig controls the structured logger.
*/
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "text"
}

/*
Default returns the built-in configuration used when no file is
supplied.
*/
func Default() *Config {
	return &Config{
		SchemaVersion: SchemaVersion,
		Server: ServerConfig{
			ListenAddr: ":8080",
			ReadOnly:   true,
		},
		Runner: RunnerConfig{
			Threads:       0,
			MaxIterations: 100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

/*
Load reads and parses a YAML configuration file, filling in defaults
for anything left unset and rejecting a schema_version whose major
component does not match SchemaVersion.
*/
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: could not read %s: %w", path, err)
	}

	cfg := Default()
	cfg.SchemaVersion = ""

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: could not parse %s: %w", path, err)
	}

	if cfg.SchemaVersion == "" {
		cfg.SchemaVersion = SchemaVersion
	}
	if err := checkSchemaCompatible(cfg.SchemaVersion); err != nil {
		return nil, err
	}

	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = Default().Server.ListenAddr
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = Default().Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = Default().Logging.Format
	}
	if cfg.Runner.MaxIterations == 0 {
		cfg.Runner.MaxIterations = Default().Runner.MaxIterations
	}

	return cfg, nil
}

func checkSchemaCompatible(declared string) error {
	want, err := version.NewVersion(SchemaVersion)
	if err != nil {
		return fmt.Errorf("config: invalid built-in schema version: %w", err)
	}
	got, err := version.NewVersion(declared)
	if err != nil {
		return fmt.Errorf("config: invalid schema_version %q: %w", declared, err)
	}
	if got.Segments()[0] != want.Segments()[0] {
		return fmt.Errorf("config: schema_version %s is incompatible with %s", declared, SchemaVersion)
	}
	return nil
}
