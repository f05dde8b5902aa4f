package deploy

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ExportConfig configures a static export.
type ExportConfig struct {
	// OutDir is the output directory. Created if it does not exist.
	OutDir string

	// Paths are the URL paths to export. Each must start with "/".
	Paths []string

	// StaticDir, when set, is copied into OutDir after the pages are
	// written, preserving relative paths.
	StaticDir string

	// Logger logs per-page progress. Defaults to slog.Default().
	Logger *slog.Logger
}

// Export renders each configured path through the handler and writes the
// responses to the output directory. A non-200 response fails the export.
func Export(ctx context.Context, handler http.Handler, config ExportConfig) error {
	if config.OutDir == "" {
		return fmt.Errorf("export: output directory not set")
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(config.OutDir, 0o755); err != nil {
		return fmt.Errorf("export: create output dir: %w", err)
	}

	for _, p := range config.Paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("export: path %q must start with '/'", p)
		}

		body, err := renderPath(ctx, handler, p)
		if err != nil {
			return err
		}

		target := outputFile(config.OutDir, p)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := os.WriteFile(target, body, 0o644); err != nil {
			return fmt.Errorf("export: write %s: %w", target, err)
		}
		logger.Info("exported page", "path", p, "file", target, "bytes", len(body))
	}

	if config.StaticDir != "" {
		if err := copyDir(config.StaticDir, config.OutDir); err != nil {
			return fmt.Errorf("export: copy static dir: %w", err)
		}
		logger.Info("copied static assets", "dir", config.StaticDir)
	}

	return nil
}

// renderPath issues an in-process GET request and returns the body.
func renderPath(ctx context.Context, handler http.Handler, p string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p, nil)
	if err != nil {
		return nil, fmt.Errorf("export: request %q: %w", p, err)
	}

	rec := &responseBuffer{status: http.StatusOK, header: make(http.Header)}
	handler.ServeHTTP(rec, req)

	if rec.status != http.StatusOK {
		return nil, fmt.Errorf("export: %q returned status %d", p, rec.status)
	}
	return rec.body.Bytes(), nil
}

// outputFile maps a URL path to its pretty-URL file location.
func outputFile(outDir, p string) string {
	clean := path.Clean(p)
	if clean == "/" {
		return filepath.Join(outDir, "index.html")
	}
	return filepath.Join(outDir, filepath.FromSlash(strings.TrimPrefix(clean, "/")), "index.html")
}

// responseBuffer is a minimal in-memory http.ResponseWriter.
type responseBuffer struct {
	header http.Header
	body   bytes.Buffer
	status int
}

func (r *responseBuffer) Header() http.Header {
	return r.header
}

func (r *responseBuffer) Write(b []byte) (int, error) {
	return r.body.Write(b)
}

func (r *responseBuffer) WriteHeader(status int) {
	r.status = status
}

// copyDir copies src into dst, preserving relative paths.
func copyDir(src, dst string) error {
	return filepath.Walk(src, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(p, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
