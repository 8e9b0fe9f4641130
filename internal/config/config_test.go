package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv("RECONNECT_DATA_PATH", "")
	t.Setenv("RECONNECT_BACKEND", "")
	t.Setenv("RECONNECT_LOG_LEVEL", "")
	t.Setenv("RECONNECT_LOG_FILE", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := DefaultConfig()
	if cfg.Data != def.Data || cfg.Log != def.Log {
		t.Fatalf("got %+v, want defaults %+v", cfg, def)
	}
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
data:
  path: ` + filepath.Join(dir, "book.yaml") + `
  seed_sample: false
log:
  level: info
shell:
  prompt: "> "
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RECONNECT_DATA_PATH", "")
	t.Setenv("RECONNECT_BACKEND", "sqlcipher")
	t.Setenv("RECONNECT_LOG_LEVEL", "debug")
	t.Setenv("RECONNECT_LOG_FILE", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Data.Path != filepath.Join(dir, "book.yaml") || cfg.Data.SeedSample {
		t.Errorf("data section not read: %+v", cfg.Data)
	}
	if cfg.Data.Backend != BackendSQLCipher || cfg.Log.Level != "debug" {
		t.Errorf("env overrides not applied: %+v %+v", cfg.Data, cfg.Log)
	}
	if cfg.Shell.Prompt != "> " || cfg.Log.Mode != "dev" {
		t.Errorf("unexpected shell/log: %+v %+v", cfg.Shell, cfg.Log)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Data.Backend = "postgres"
	if err := cfg.Validate(); err == nil {
		t.Errorf("unknown backend should fail")
	}

	cfg = DefaultConfig()
	cfg.Log.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Errorf("unknown level should fail")
	}

	cfg = DefaultConfig()
	cfg.Data.Path = " "
	if err := cfg.Validate(); err == nil {
		t.Errorf("blank path should fail")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Setenv("RECONNECT_BACKEND", "")
	t.Setenv("RECONNECT_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := DefaultConfig()
	cfg.Log.Level = "error"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Log.Level != "error" {
		t.Fatalf("level = %q", loaded.Log.Level)
	}
}

func TestDefaultConfigPath_Env(t *testing.T) {
	t.Setenv("RECONNECT_CONFIG", "/tmp/custom.yaml")
	if got := DefaultConfigPath(); got != "/tmp/custom.yaml" {
		t.Fatalf("got %q", got)
	}
}
