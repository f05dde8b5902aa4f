package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// gatherCounter returns the value of a counter with the given label pairs,
// or 0 if no such series exists.
func gatherCounter(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, m := range family.GetMetric() {
			if !labelsMatch(m, labels) {
				continue
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

// gatherHistogramCount returns the sample count of a histogram series.
func gatherHistogramCount(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) uint64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, m := range family.GetMetric() {
			if !labelsMatch(m, labels) {
				continue
			}
			return m.GetHistogram().GetSampleCount()
		}
	}
	return 0
}

func labelsMatch(m *dto.Metric, labels map[string]string) bool {
	got := make(map[string]string, len(m.GetLabel()))
	for _, pair := range m.GetLabel() {
		got[pair.GetName()] = pair.GetValue()
	}
	for name, value := range labels {
		if got[name] != value {
			return false
		}
	}
	return true
}

func TestPrometheusMiddleware_RecordsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw := Prometheus(WithRegistry(reg))

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	got := gatherCounter(t, reg, "glint_requests_total",
		map[string]string{"path": "/test", "status": "200"})
	if got != 1 {
		t.Fatalf("requests_total(/test,200)=%v, want 1", got)
	}
	count := gatherHistogramCount(t, reg, "glint_request_duration_seconds",
		map[string]string{"path": "/test"})
	if count == 0 {
		t.Fatal("expected request_duration_seconds histogram to have sample count > 0")
	}
}

func TestPrometheusMiddleware_RecordsErrorStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw := Prometheus(WithRegistry(reg))

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	req := httptest.NewRequest("GET", "/broken", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	got := gatherCounter(t, reg, "glint_requests_total",
		map[string]string{"path": "/broken", "status": "500"})
	if got != 1 {
		t.Fatalf("requests_total(/broken,500)=%v, want 1", got)
	}
}

func TestPrometheusMiddleware_CustomNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw := Prometheus(WithRegistry(reg), WithNamespace("myapp"))

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	got := gatherCounter(t, reg, "myapp_requests_total",
		map[string]string{"path": "/", "status": "200"})
	if got != 1 {
		t.Fatalf("myapp_requests_total(/,200)=%v, want 1", got)
	}
}

func TestPrometheusMiddleware_DefaultStatusWithoutWriteHeader(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw := Prometheus(WithRegistry(reg))

	// Handler writes a body without calling WriteHeader explicitly.
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/implicit", nil))

	got := gatherCounter(t, reg, "glint_requests_total",
		map[string]string{"path": "/implicit", "status": "200"})
	if got != 1 {
		t.Fatalf("requests_total(/implicit,200)=%v, want 1", got)
	}
}
