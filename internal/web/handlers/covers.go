package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/bookpress/bookpress/internal/config"
	"github.com/bookpress/bookpress/internal/cover"
	"github.com/bookpress/bookpress/internal/kdp"
	"github.com/bookpress/bookpress/internal/layout"
	"github.com/bookpress/bookpress/internal/project"
)

// CoversHandler renders covers and records them as projects.
type CoversHandler struct {
	config *config.Config
	store  project.Store
}

// NewCoversHandler creates a new covers handler
func NewCoversHandler(cfg *config.Config, store project.Store) *CoversHandler {
	return &CoversHandler{config: cfg, store: store}
}

// CoverRequest describes one cover to render. Scheme selects a named
// color scheme; explicit primary/secondary colors take precedence.
type CoverRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Author   string `json:"author"`

	Format string `json:"format"`
	Style  string `json:"style"`

	Scheme    string `json:"scheme,omitempty"`
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`

	TrimWidth  float64 `json:"trim_width,omitempty"`
	TrimHeight float64 `json:"trim_height,omitempty"`
	PageCount  int     `json:"page_count,omitempty"`
	Paper      string  `json:"paper,omitempty"`
	Binding    string  `json:"binding,omitempty"`
	WrapStyle  string  `json:"wrap_style,omitempty"`
	DPI        int     `json:"dpi,omitempty"`
}

// CoverResponse reports the generated files and the project record.
type CoverResponse struct {
	Project *project.Project `json:"project"`
	Files   []string         `json:"files"`
}

func (req *CoverRequest) spec() (cover.Spec, error) {
	spec := cover.Spec{
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		Author:     req.Author,
		Format:     layout.Format(req.Format),
		Style:      cover.Style(req.Style),
		Primary:    req.Primary,
		Secondary:  req.Secondary,
		TrimWidth:  req.TrimWidth,
		TrimHeight: req.TrimHeight,
		PageCount:  req.PageCount,
		Paper:      kdp.PaperType(req.Paper),
		Binding:    kdp.BindingType(req.Binding),
		WrapStyle:  kdp.HardcoverWrapStyle(req.WrapStyle),
		DPI:        req.DPI,
	}

	if spec.Title == "" {
		return spec, fmt.Errorf("title is required")
	}
	if req.Scheme != "" && spec.Primary == "" {
		scheme, ok := cover.SchemeByName(req.Scheme)
		if !ok {
			return spec, fmt.Errorf("unknown color scheme %q", req.Scheme)
		}
		spec.Primary = scheme.Primary
		spec.Secondary = scheme.Secondary
	}
	return spec, nil
}

// Create renders a cover and attaches the output files to a new project.
func (h *CoversHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	spec, err := req.spec()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	outDir := filepath.Join(h.config.Storage.Dir, "covers")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("creating output directory: %v", err))
		return
	}
	base := filepath.Join(outDir, uuid.NewString())

	var files []string
	switch spec.Format {
	case layout.FormatEbook, "":
		spec.Format = layout.FormatEbook
		img, err := cover.GenerateEbook(spec)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		jpg, err := cover.EncodeJPEG(img)
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		path := base + ".jpg"
		if err := os.WriteFile(path, jpg, 0o644); err != nil {
			respondError(w, http.StatusInternalServerError, fmt.Sprintf("writing cover: %v", err))
			return
		}
		files = append(files, path)

	case layout.FormatPaperback, layout.FormatHardcover:
		img, dims, err := cover.GeneratePrint(spec)
		if err != nil {
			respondCalcError(w, err)
			return
		}
		jpg, err := cover.EncodeJPEG(img)
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		jpgPath := base + ".jpg"
		if err := os.WriteFile(jpgPath, jpg, 0o644); err != nil {
			respondError(w, http.StatusInternalServerError, fmt.Sprintf("writing cover: %v", err))
			return
		}
		files = append(files, jpgPath)

		pdfPath := base + ".pdf"
		if err := cover.WritePDF(img, dims, spec.Title, pdfPath); err != nil {
			respondError(w, http.StatusInternalServerError, fmt.Sprintf("writing cover PDF: %v", err))
			return
		}
		files = append(files, pdfPath)

	default:
		respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown format %q", req.Format))
		return
	}

	p, err := h.store.Create(r.Context(), req.Title, project.TypeCover, map[string]any{
		"format": string(spec.Format),
		"style":  string(spec.Style),
		"author": spec.Author,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("recording project: %v", err))
		return
	}
	for _, f := range files {
		kind := "cover"
		if filepath.Ext(f) == ".pdf" {
			kind = "print"
		}
		if err := h.store.AddFile(r.Context(), p.ID, f, kind); err != nil {
			respondError(w, http.StatusInternalServerError, fmt.Sprintf("recording file: %v", err))
			return
		}
	}

	p, err = h.store.Get(r.Context(), p.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, CoverResponse{Project: p, Files: files})
}
