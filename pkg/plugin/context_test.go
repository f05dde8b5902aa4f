package plugin

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
)

func TestRenderContext_ExactlyOnce(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.com/", nil)
	ctx := NewRenderContext(req, func() (Content, error) {
		return Content{RequiresHydration: true}, nil
	})

	content, err := ctx.Render()
	if err != nil {
		t.Fatalf("first Render = %v", err)
	}
	if !content.RequiresHydration {
		t.Fatal("RequiresHydration not threaded through")
	}

	if _, err := ctx.Render(); !errors.Is(err, ErrRenderReused) {
		t.Fatalf("second Render = %v, want ErrRenderReused", err)
	}
	if ctx.Calls() != 2 {
		t.Fatalf("Calls = %d, want 2", ctx.Calls())
	}
}

func TestAsyncRenderContext_ExactlyOnce(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.com/", nil)
	rctx := NewAsyncRenderContext(req, func(ctx context.Context) (Content, error) {
		return Content{}, nil
	})

	if _, err := rctx.RenderAsync(context.Background()); err != nil {
		t.Fatalf("first RenderAsync = %v", err)
	}
	if _, err := rctx.RenderAsync(context.Background()); !errors.Is(err, ErrRenderReused) {
		t.Fatalf("second RenderAsync = %v, want ErrRenderReused", err)
	}
}
