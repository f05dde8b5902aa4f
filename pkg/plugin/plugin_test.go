package plugin

import (
	"errors"
	"net/http"
	"testing"

	glinterrors "github.com/glint-dev/glint/internal/errors"
	"github.com/glint-dev/glint/pkg/markup"
)

func TestNew_NameValidation(t *testing.T) {
	valid := []string{"twind", "seo_tags", "a", "_"}
	for _, name := range valid {
		t.Run("valid/"+name, func(t *testing.T) {
			if _, err := New(name); err != nil {
				t.Fatalf("New(%q) = %v, want nil", name, err)
			}
		})
	}

	invalid := []string{"", "Twind", "plugin2", "my-plugin", "my plugin", "ünicode"}
	for _, name := range invalid {
		t.Run("invalid/"+name, func(t *testing.T) {
			_, err := New(name)
			if err == nil {
				t.Fatalf("New(%q) = nil error, want E001", name)
			}
			var ge *glinterrors.GlintError
			if !errors.As(err, &ge) || ge.Code != "E001" {
				t.Fatalf("New(%q) error = %v, want code E001", name, err)
			}
		})
	}
}

func TestNew_EntrypointValidation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := New("counter", WithEntrypoints(map[string]string{
			"main": "/plugins/counter/main.js",
		}))
		if err != nil {
			t.Fatalf("New = %v, want nil", err)
		}
		mod, ok := p.Entrypoint("main")
		if !ok || mod != "/plugins/counter/main.js" {
			t.Fatalf("Entrypoint(main) = %q, %v", mod, ok)
		}
	})

	t.Run("bad name", func(t *testing.T) {
		_, err := New("counter", WithEntrypoints(map[string]string{"Main": "/x.js"}))
		assertCode(t, err, "E004")
	})

	t.Run("empty module", func(t *testing.T) {
		_, err := New("counter", WithEntrypoints(map[string]string{"main": ""}))
		assertCode(t, err, "E004")
	})
}

func TestNew_RouteValidation(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	page := func(r *http.Request) *markup.Node { return markup.Text("hi") }

	t.Run("handler route", func(t *testing.T) {
		if _, err := New("p", WithRoutes(Route{Path: "/handler", Handler: handler})); err != nil {
			t.Fatalf("New = %v, want nil", err)
		}
	})

	t.Run("component route", func(t *testing.T) {
		if _, err := New("p", WithRoutes(Route{Path: "/page", Component: page})); err != nil {
			t.Fatalf("New = %v, want nil", err)
		}
	})

	t.Run("relative path", func(t *testing.T) {
		_, err := New("p", WithRoutes(Route{Path: "handler", Handler: handler}))
		assertCode(t, err, "E003")
	})

	t.Run("neither handler nor component", func(t *testing.T) {
		_, err := New("p", WithRoutes(Route{Path: "/x"}))
		assertCode(t, err, "E003")
	})

	t.Run("both handler and component", func(t *testing.T) {
		_, err := New("p", WithRoutes(Route{Path: "/x", Handler: handler, Component: page}))
		assertCode(t, err, "E003")
	})
}

func TestNew_ImmutableAfterConstruction(t *testing.T) {
	eps := map[string]string{"main": "/a.js"}
	routes := []Route{{Path: "/r", Handler: http.NotFoundHandler()}}

	p, err := New("p", WithEntrypoints(eps), WithRoutes(routes...))
	if err != nil {
		t.Fatalf("New = %v, want nil", err)
	}

	// Mutating the inputs must not leak into the record.
	eps["main"] = "/changed.js"
	routes[0].Path = "/changed"

	if mod, _ := p.Entrypoint("main"); mod != "/a.js" {
		t.Fatalf("Entrypoint(main) = %q, want %q", mod, "/a.js")
	}
	if got := p.Routes()[0].Path; got != "/r" {
		t.Fatalf("Routes()[0].Path = %q, want %q", got, "/r")
	}

	// Mutating a returned copy must not affect the record either.
	p.Routes()[0].Path = "/other"
	if got := p.Routes()[0].Path; got != "/r" {
		t.Fatalf("Routes()[0].Path after copy mutation = %q, want %q", got, "/r")
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("error = nil, want code %s", code)
	}
	var ge *glinterrors.GlintError
	if !errors.As(err, &ge) || ge.Code != code {
		t.Fatalf("error = %v, want code %s", err, code)
	}
}
