package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestValidateHandler_Valid(t *testing.T) {
	handler := NewValidateHandler()

	req := jsonRequest(t, "POST", "/api/v1/validate", ValidateRequest{
		TrimWidth:  6.0,
		TrimHeight: 9.0,
		PageCount:  250,
	})
	recorder := httptest.NewRecorder()

	handler.Validate(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)

	var resp ValidateResponse
	parseJSONResponse(t, recorder, &resp)

	if !resp.Valid {
		t.Errorf("expected valid manuscript, got issues: %v", resp.Issues)
	}
	if resp.TrimSizeName != "6x9" {
		t.Errorf("expected trim size name '6x9', got '%s'", resp.TrimSizeName)
	}
}

func TestValidateHandler_Issues(t *testing.T) {
	handler := NewValidateHandler()

	req := jsonRequest(t, "POST", "/api/v1/validate", ValidateRequest{
		TrimWidth:  6.5,
		TrimHeight: 9.5,
		PageCount:  251,
	})
	recorder := httptest.NewRecorder()

	handler.Validate(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)

	var resp ValidateResponse
	parseJSONResponse(t, recorder, &resp)

	if resp.Valid {
		t.Error("expected invalid manuscript")
	}
	if len(resp.Issues) != 2 {
		t.Errorf("expected 2 issues (trim and parity), got %d: %v", len(resp.Issues), resp.Issues)
	}
}

func TestTrimSizesHandler_List(t *testing.T) {
	handler := NewTrimSizesHandler()

	req := httptest.NewRequest("GET", "/api/v1/trim-sizes", nil)
	recorder := httptest.NewRecorder()

	handler.List(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)

	var sizes []TrimSizeResponse
	parseJSONResponse(t, recorder, &sizes)

	if len(sizes) != 18 {
		t.Errorf("expected 18 trim sizes, got %d", len(sizes))
	}
}

func TestTrimSizesHandler_ListColorOnly(t *testing.T) {
	handler := NewTrimSizesHandler()

	req := httptest.NewRequest("GET", "/api/v1/trim-sizes?interior=color", nil)
	recorder := httptest.NewRecorder()

	handler.List(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)

	var sizes []TrimSizeResponse
	parseJSONResponse(t, recorder, &sizes)

	if len(sizes) != 4 {
		t.Errorf("expected 4 color trim sizes, got %d", len(sizes))
	}
	for _, ts := range sizes {
		if ts.Interior != "color" {
			t.Errorf("expected only color sizes, got %s", ts.Interior)
		}
	}
}

func TestTrimSizesHandler_ListUnknownInterior(t *testing.T) {
	handler := NewTrimSizesHandler()

	req := httptest.NewRequest("GET", "/api/v1/trim-sizes?interior=sepia", nil)
	recorder := httptest.NewRecorder()

	handler.List(recorder, req)

	assertStatusCode(t, recorder, http.StatusBadRequest)
}
