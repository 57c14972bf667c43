package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bookpress/bookpress/internal/kdp"
)

// ValidateHandler checks manuscripts against KDP print requirements.
type ValidateHandler struct{}

// NewValidateHandler creates a new validate handler
func NewValidateHandler() *ValidateHandler {
	return &ValidateHandler{}
}

// ValidateRequest is the input for manuscript validation.
type ValidateRequest struct {
	TrimWidth  float64 `json:"trim_width"`
	TrimHeight float64 `json:"trim_height"`
	PageCount  int     `json:"page_count"`
}

// ValidateResponse lists any issues found. Valid is true when Issues
// is empty.
type ValidateResponse struct {
	Valid        bool     `json:"valid"`
	TrimSizeName string   `json:"trim_size_name,omitempty"`
	Issues       []string `json:"issues"`
}

// Validate checks a trim size and page count against the KDP rules.
func (h *ValidateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	resp := ValidateResponse{Issues: []string{}}

	ok, name := kdp.ValidateTrimSize(req.TrimWidth, req.TrimHeight)
	if ok {
		resp.TrimSizeName = name
	} else {
		resp.Issues = append(resp.Issues, "trim size does not match any standard KDP trim size")
	}

	if ok, msg := kdp.ValidatePageCount(req.PageCount); !ok {
		resp.Issues = append(resp.Issues, msg)
	}

	resp.Valid = len(resp.Issues) == 0
	respondJSON(w, http.StatusOK, resp)
}
