package glint

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppExport(t *testing.T) {
	docs := mustPlugin(t, "docs", WithRoutes(Route{
		Path: "/docs",
		Component: func(r *http.Request) *Node {
			return El("main", nil, Text("documentation"))
		},
	}))

	app := newTestApp(t, Config{
		Plugins: []*Plugin{docs},
		Title:   "Exported",
	})
	app.Page("/", homePage)

	outDir := t.TempDir()
	if err := app.Export(context.Background(), outDir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		file string
		want string
	}{
		{"index.html", "<h1>Hello</h1>"},
		{filepath.Join("docs", "index.html"), "documentation"},
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
			if !strings.Contains(string(data), "<title>Exported</title>") {
				t.Errorf("exported page should carry the document head, got %q", data)
			}
		})
	}
}

func TestAppExportRejectsParameterizedRoutes(t *testing.T) {
	app := newTestApp(t, Config{})
	app.Page("/posts/{slug}", func(r *http.Request) *Node {
		return El("article", nil)
	})

	if err := app.Export(context.Background(), t.TempDir()); err == nil {
		t.Fatal("expected error for parameterized route")
	}
}
