package deploy

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func exportHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("<html><body>home</body></html>"))
	})
	mux.HandleFunc("/about", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>about</body></html>"))
	})
	return mux
}

func TestExport(t *testing.T) {
	outDir := t.TempDir()

	err := Export(context.Background(), exportHandler(), ExportConfig{
		OutDir: outDir,
		Paths:  []string{"/", "/about"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		file string
		want string
	}{
		{"index.html", "home"},
		{filepath.Join("about", "index.html"), "about"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(outDir, tt.file))
			if err != nil {
				t.Fatalf("read %s: %v", tt.file, err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("content = %q, want substring %q", data, tt.want)
			}
		})
	}
}

func TestExportNon200Fails(t *testing.T) {
	err := Export(context.Background(), exportHandler(), ExportConfig{
		OutDir: t.TempDir(),
		Paths:  []string{"/missing"},
	})
	if err == nil {
		t.Fatal("expected error for 404 page")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error = %v, want status in message", err)
	}
}

func TestExportInvalidPath(t *testing.T) {
	err := Export(context.Background(), exportHandler(), ExportConfig{
		OutDir: t.TempDir(),
		Paths:  []string{"about"},
	})
	if err == nil {
		t.Fatal("expected error for path without leading slash")
	}
}

func TestExportCopiesStaticDir(t *testing.T) {
	staticDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(staticDir, "css"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(staticDir, "css", "app.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	outDir := t.TempDir()
	err := Export(context.Background(), exportHandler(), ExportConfig{
		OutDir:    outDir,
		Paths:     []string{"/"},
		StaticDir: staticDir,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "css", "app.css"))
	if err != nil {
		t.Fatalf("read copied asset: %v", err)
	}
	if string(data) != "body{}" {
		t.Errorf("asset content = %q, want %q", data, "body{}")
	}
}

func TestOutputFile(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", filepath.Join("out", "index.html")},
		{"/about", filepath.Join("out", "about", "index.html")},
		{"/docs/intro", filepath.Join("out", "docs", "intro", "index.html")},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := outputFile("out", tt.path); got != tt.want {
				t.Errorf("outputFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
