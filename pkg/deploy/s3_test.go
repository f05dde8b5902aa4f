package deploy

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// fakeS3 records PutObject calls in memory.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]fakeObject
	failKey string
}

type fakeObject struct {
	bucket      string
	contentType string
	body        []byte
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string]fakeObject)}
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	key := *params.Key
	if f.failKey != "" && key == f.failKey {
		return nil, errors.New("simulated failure")
	}

	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}

	contentType := ""
	if params.ContentType != nil {
		contentType = *params.ContentType
	}

	f.mu.Lock()
	f.objects[key] = fakeObject{
		bucket:      *params.Bucket,
		contentType: contentType,
		body:        body,
	}
	f.mu.Unlock()
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.objects))
	for key := range f.objects {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func writeSite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html":            "<html>home</html>",
		"about/index.html":      "<html>about</html>",
		"css/app.css":           "body{}",
		"images/logo.unknownex": "binary",
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return dir
}

func TestUploadDir(t *testing.T) {
	fake := newFakeS3()
	uploader := NewUploader(fake, "my-bucket", "")

	n, err := uploader.UploadDir(context.Background(), writeSite(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Errorf("uploaded = %d, want 4", n)
	}

	want := []string{"about/index.html", "css/app.css", "images/logo.unknownex", "index.html"}
	got := fake.keys()
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys = %v, want %v", got, want)
		}
	}

	obj := fake.objects["index.html"]
	if obj.bucket != "my-bucket" {
		t.Errorf("bucket = %q, want %q", obj.bucket, "my-bucket")
	}
	if obj.contentType != "text/html; charset=utf-8" {
		t.Errorf("content type = %q, want text/html", obj.contentType)
	}
	if string(obj.body) != "<html>home</html>" {
		t.Errorf("body = %q, want page content", obj.body)
	}
}

func TestUploadDirWithPrefix(t *testing.T) {
	fake := newFakeS3()
	uploader := NewUploader(fake, "my-bucket", "site/v2/")

	if _, err := uploader.UploadDir(context.Background(), writeSite(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := fake.objects["site/v2/index.html"]; !ok {
		t.Errorf("keys = %v, want prefix applied", fake.keys())
	}
}

func TestUploadDirFailure(t *testing.T) {
	fake := newFakeS3()
	fake.failKey = "css/app.css"
	uploader := NewUploader(fake, "my-bucket", "")

	_, err := uploader.UploadDir(context.Background(), writeSite(t))
	if err == nil {
		t.Fatal("expected upload failure to propagate")
	}
}

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"index.html", "text/html; charset=utf-8"},
		{"app.css", "text/css; charset=utf-8"},
		{"bundle.js", "text/javascript; charset=utf-8"},
		{"island.mjs", "text/javascript; charset=utf-8"},
		{"data.json", "application/json"},
		{"logo.svg", "image/svg+xml"},
		{"photo.JPG", "image/jpeg"},
		{"blob.bin", "application/octet-stream"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := contentTypeFor(tt.key); got != tt.want {
				t.Errorf("contentTypeFor(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
