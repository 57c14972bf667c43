package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bookpress/bookpress/internal/kdp"
)

// CalcHandler exposes the cover geometry calculators.
type CalcHandler struct{}

// NewCalcHandler creates a new calc handler
func NewCalcHandler() *CalcHandler {
	return &CalcHandler{}
}

// SpineRequest is the input for the spine width calculator.
type SpineRequest struct {
	PageCount int             `json:"page_count"`
	Paper     kdp.PaperType   `json:"paper"`
	Binding   kdp.BindingType `json:"binding"`
}

// SpineResponse holds the computed spine width in inches.
type SpineResponse struct {
	SpineWidthInches float64 `json:"spine_width_inches"`
	DisplayInches    float64 `json:"display_inches"`
}

// Spine computes the spine width for a page count, paper and binding.
func (h *CalcHandler) Spine(w http.ResponseWriter, r *http.Request) {
	var req SpineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	width, err := kdp.CalculateSpineWidth(req.PageCount, req.Paper, req.Binding)
	if err != nil {
		respondCalcError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, SpineResponse{
		SpineWidthInches: width,
		DisplayInches:    kdp.Round3(width),
	})
}

// DimensionsRequest is the input for the full cover wrap calculator.
type DimensionsRequest struct {
	TrimWidth  float64                `json:"trim_width"`
	TrimHeight float64                `json:"trim_height"`
	PageCount  int                    `json:"page_count"`
	Paper      kdp.PaperType          `json:"paper"`
	Binding    kdp.BindingType        `json:"binding"`
	WrapStyle  kdp.HardcoverWrapStyle `json:"wrap_style,omitempty"`
	DPI        int                    `json:"dpi"`
}

// DimensionsResponse flattens the computed cover wrap for API clients.
type DimensionsResponse struct {
	WidthInches      float64 `json:"width_inches"`
	HeightInches     float64 `json:"height_inches"`
	WidthPx          int     `json:"width_px"`
	HeightPx         int     `json:"height_px"`
	SpineWidthInches float64 `json:"spine_width_inches"`
	SpineWidthPx     int     `json:"spine_width_px"`
	FlapWidthInches  float64 `json:"flap_width_inches"`
	FlapWidthPx      int     `json:"flap_width_px"`
	BleedInches      float64 `json:"bleed_inches"`
	PanelWidthInches float64 `json:"panel_width_inches"`
	PanelWidthPx     int     `json:"panel_width_px"`
	DPI              int     `json:"dpi"`
}

func dimensionsResponse(dims kdp.CoverDimensions) DimensionsResponse {
	return DimensionsResponse{
		WidthInches:      dims.WidthInches,
		HeightInches:     dims.HeightInches,
		WidthPx:          dims.WidthPx,
		HeightPx:         dims.HeightPx,
		SpineWidthInches: dims.SpineWidthInches,
		SpineWidthPx:     dims.SpineWidthPx,
		FlapWidthInches:  dims.FlapWidthInches,
		FlapWidthPx:      dims.FlapWidthPx,
		BleedInches:      dims.BleedInches,
		PanelWidthInches: dims.PanelWidthInches(),
		PanelWidthPx:     dims.PanelWidthPx(),
		DPI:              dims.DPI,
	}
}

// Dimensions computes the full cover wrap for a print book.
func (h *CalcHandler) Dimensions(w http.ResponseWriter, r *http.Request) {
	var req DimensionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	dims, err := kdp.CalculateCoverDimensions(
		req.TrimWidth, req.TrimHeight, req.PageCount,
		req.Paper, req.Binding, req.WrapStyle, req.DPI)
	if err != nil {
		respondCalcError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dimensionsResponse(dims))
}

// MarginsRequest is the input for the manuscript margin calculator.
// Zero values for the outer margins select the KDP defaults; a missing
// gutter selects the page-count table.
type MarginsRequest struct {
	PageCount int      `json:"page_count"`
	Top       *float64 `json:"top,omitempty"`
	Bottom    *float64 `json:"bottom,omitempty"`
	Outside   *float64 `json:"outside,omitempty"`
	Gutter    *float64 `json:"gutter,omitempty"`
}

// Margins computes KDP-compliant manuscript margins.
func (h *CalcHandler) Margins(w http.ResponseWriter, r *http.Request) {
	var req MarginsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	top, bottom, outside := kdp.DefaultMargin, kdp.DefaultMargin, kdp.DefaultMargin
	gutter := -1.0
	if req.Top != nil {
		top = *req.Top
	}
	if req.Bottom != nil {
		bottom = *req.Bottom
	}
	if req.Outside != nil {
		outside = *req.Outside
	}
	if req.Gutter != nil {
		gutter = *req.Gutter
	}

	margins, err := kdp.CalculateManuscriptMargins(req.PageCount, top, bottom, outside, gutter)
	if err != nil {
		respondCalcError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, MarginsResponse{
		Top:     margins.Top,
		Bottom:  margins.Bottom,
		Outside: margins.Outside,
		Gutter:  margins.Gutter,
		Bleed:   margins.Bleed,
	})
}

// MarginsResponse holds the computed manuscript margins in inches.
type MarginsResponse struct {
	Top     float64 `json:"top"`
	Bottom  float64 `json:"bottom"`
	Outside float64 `json:"outside"`
	Gutter  float64 `json:"gutter"`
	Bleed   float64 `json:"bleed"`
}
