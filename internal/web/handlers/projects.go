package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bookpress/bookpress/internal/project"
)

// ProjectsHandler exposes project CRUD over the store.
type ProjectsHandler struct {
	store project.Store
}

// NewProjectsHandler creates a new projects handler
func NewProjectsHandler(store project.Store) *ProjectsHandler {
	return &ProjectsHandler{store: store}
}

// respondStoreError maps store errors to HTTP statuses.
func respondStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, project.ErrNotFound) {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}

// List returns recent projects, newest first. Supports "limit" and
// "type" query parameters.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	typ := project.Type(r.URL.Query().Get("type"))
	if typ != "" && !typ.Valid() {
		respondError(w, http.StatusBadRequest, "invalid project type")
		return
	}

	projects, err := h.store.Recent(r.Context(), limit, typ)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	respondJSON(w, http.StatusOK, projects)
}

// CreateProjectRequest is the input for creating a project.
type CreateProjectRequest struct {
	Title    string         `json:"title"`
	Type     project.Type   `json:"type"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Create adds a new draft project.
func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}
	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}
	if !req.Type.Valid() {
		respondError(w, http.StatusBadRequest, "invalid project type")
		return
	}

	p, err := h.store.Create(r.Context(), req.Title, req.Type, req.Metadata)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

// Get returns a single project by id.
func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// UpdateProjectRequest is the input for a partial project update.
type UpdateProjectRequest struct {
	Title    *string        `json:"title,omitempty"`
	Status   *string        `json:"status,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Update applies a partial update to a project.
func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	p, err := h.store.Update(r.Context(), chi.URLParam(r, "id"), project.Update{
		Title:    req.Title,
		Status:   req.Status,
		Tags:     req.Tags,
		Metadata: req.Metadata,
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// Delete removes a project.
func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AddFileRequest is the input for attaching a file to a project.
type AddFileRequest struct {
	Path string `json:"path"`
	Kind string `json:"type"`
}

// AddFile attaches an output file to a project.
func (h *ProjectsHandler) AddFile(w http.ResponseWriter, r *http.Request) {
	var req AddFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}
	if req.Path == "" {
		respondError(w, http.StatusBadRequest, "path is required")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.store.AddFile(r.Context(), id, req.Path, req.Kind); err != nil {
		respondStoreError(w, err)
		return
	}

	p, err := h.store.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// Search returns projects whose title or tags match the "q" parameter.
func (h *ProjectsHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respondError(w, http.StatusBadRequest, "q parameter is required")
		return
	}

	projects, err := h.store.Search(r.Context(), q)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	respondJSON(w, http.StatusOK, projects)
}

// Stats returns aggregate counts across all projects.
func (h *ProjectsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Stats(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
