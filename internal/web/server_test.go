package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bookpress/bookpress/internal/config"
	"github.com/bookpress/bookpress/internal/project"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := project.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create project store: %v", err)
	}
	cfg := &config.Config{
		Storage: config.StorageConfig{Dir: t.TempDir()},
	}
	return NewServer(cfg, 0, "127.0.0.1", store)
}

func TestServerHealthRoute(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	recorder := httptest.NewRecorder()

	s.Router().ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), `"status"`) {
		t.Errorf("expected JSON status body, got %s", recorder.Body.String())
	}
}

func TestServerCalcRoute(t *testing.T) {
	s := newTestServer(t)

	body := strings.NewReader(`{"page_count":250,"paper":"white","binding":"paperback"}`)
	req := httptest.NewRequest("POST", "/api/v1/calc/spine", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	s.Router().ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected 200, got %d\nBody: %s", recorder.Code, recorder.Body.String())
	}
	if !strings.Contains(recorder.Body.String(), "spine_width_inches") {
		t.Errorf("expected spine width in body, got %s", recorder.Body.String())
	}
}

func TestServerIndexPage(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("GET", "/", nil)
	recorder := httptest.NewRecorder()

	s.Router().ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "BookPress") {
		t.Error("expected landing page content")
	}
}
