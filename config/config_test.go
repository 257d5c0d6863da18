package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/freekieb7/pebble/test"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	test.AssertNoError(t, err)

	test.AssertEqual(t, "pebble", cfg.Server.Name)
	test.AssertEqual(t, "0.0.0.0:8080", cfg.Server.Address)
	test.AssertEqual(t, "aws", cfg.Manifest.Provider)
	test.AssertEqual(t, "go1.x", cfg.Manifest.Runtime)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pebble.toml")
	content := `
[server]
name = "tutorial"
address = "127.0.0.1:9090"

[telemetry]
enabled = true
endpoint = "http://127.0.0.1:4317"

[manifest]
runtime = "python3.9"
plugins = ["serverless-offline"]
`
	test.AssertNoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	test.AssertNoError(t, err)

	test.AssertEqual(t, "tutorial", cfg.Server.Name)
	test.AssertEqual(t, "127.0.0.1:9090", cfg.Server.Address)
	test.AssertTrue(t, cfg.Telemetry.Enabled)
	test.AssertEqual(t, "python3.9", cfg.Manifest.Runtime)
	test.AssertEqual(t, 1, len(cfg.Manifest.Plugins))

	// Manifest service falls back to the server name.
	test.AssertEqual(t, "tutorial", cfg.Manifest.Service)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv(EnvServerAddress, "127.0.0.1:3000")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	test.AssertNoError(t, err)
	test.AssertEqual(t, "127.0.0.1:3000", cfg.Server.Address)
}

func TestLoadInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pebble.toml")
	test.AssertNoError(t, os.WriteFile(path, []byte("server = not toml"), 0o644))

	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}
