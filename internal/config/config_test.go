package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/glint-dev/glint/internal/errors"
)

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var gerr *errors.GlintError
	if !stderrors.As(err, &gerr) {
		t.Fatalf("error = %v, want GlintError", err)
	}
	if gerr.Code != code {
		t.Fatalf("error code = %q, want %q", gerr.Code, code)
	}
}

func TestDefaults(t *testing.T) {
	cfg := New()

	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.Host != DefaultHost {
		t.Errorf("Host = %q, want %q", cfg.Host, DefaultHost)
	}
	if cfg.Static.Dir != "static" {
		t.Errorf("Static.Dir = %q, want %q", cfg.Static.Dir, "static")
	}
	if cfg.Static.Prefix != "/static/" {
		t.Errorf("Static.Prefix = %q, want %q", cfg.Static.Prefix, "/static/")
	}
	if cfg.Export.Output != DefaultExportDir {
		t.Errorf("Export.Output = %q, want %q", cfg.Export.Output, DefaultExportDir)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := `{
  "name": "demo",
  "port": 8080,
  "title": "Demo Site",
  "static": {"dir": "assets"}
}`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Name != "demo" {
		t.Errorf("Name = %q, want %q", cfg.Name, "demo")
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Title != "Demo Site" {
		t.Errorf("Title = %q, want %q", cfg.Title, "Demo Site")
	}
	if cfg.Static.Dir != "assets" {
		t.Errorf("Static.Dir = %q, want %q", cfg.Static.Dir, "assets")
	}
	// Unset fields fall back to defaults.
	if cfg.Host != DefaultHost {
		t.Errorf("Host = %q, want default %q", cfg.Host, DefaultHost)
	}
	if cfg.Static.Prefix != "/static/" {
		t.Errorf("Static.Prefix = %q, want default", cfg.Static.Prefix)
	}
	if cfg.Addr() != "localhost:8080" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), "localhost:8080")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing glint.json")
	}
	assertCode(t, err, "E040")
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	assertCode(t, err, "E041")
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"port out of range", `{"port": 99999}`},
		{"bad static prefix", `{"static": {"prefix": "assets/"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}

			_, err := Load(dir)
			if err == nil {
				t.Fatal("expected validation error")
			}
			assertCode(t, err, "E042")
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	cfg := New()
	cfg.Name = "roundtrip"
	cfg.Port = 4000
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Name != "roundtrip" || loaded.Port != 4000 {
		t.Errorf("loaded = %+v, want name/port preserved", loaded)
	}
	if loaded.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", loaded.Dir(), dir)
	}
}
