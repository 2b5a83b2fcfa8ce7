/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tempograph.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Server.ListenAddr != ":8080" {
		t.Error("Unexpected default listen address:", cfg.Server.ListenAddr)
	}
	if !cfg.Server.ReadOnly {
		t.Error("Expected the server to default to read-only")
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeTempConfig(t, "server:\n  listen_addr: \":9090\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.ListenAddr != ":9090" {
		t.Error("Unexpected listen address:", cfg.Server.ListenAddr)
	}
	if cfg.Runner.MaxIterations != Default().Runner.MaxIterations {
		t.Error("Expected default max_iterations to be filled in")
	}
	if cfg.SchemaVersion != SchemaVersion {
		t.Error("Unexpected schema version:", cfg.SchemaVersion)
	}
}

func TestLoadRejectsIncompatibleSchema(t *testing.T) {
	path := writeTempConfig(t, "schema_version: \"2.0.0\"\n")

	if _, err := Load(path); err == nil {
		t.Error("Expected an error for an incompatible schema_version")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing config file")
	}
}
