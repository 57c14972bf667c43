package handlers

import (
	"net/http"

	"github.com/bookpress/bookpress/internal/config"
	"github.com/bookpress/bookpress/internal/convert"
)

// DepsHandler reports the availability of external conversion tools.
type DepsHandler struct {
	config *config.Config
}

// NewDepsHandler creates a new dependencies handler
func NewDepsHandler(cfg *config.Config) *DepsHandler {
	return &DepsHandler{config: cfg}
}

// List returns the status of every external tool the converter can use.
func (h *DepsHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, convert.CheckDependencies())
}
