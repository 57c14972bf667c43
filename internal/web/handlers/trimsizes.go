package handlers

import (
	"net/http"

	"github.com/bookpress/bookpress/internal/kdp"
)

// TrimSizesHandler serves the standard trim size catalog.
type TrimSizesHandler struct{}

// NewTrimSizesHandler creates a new trim sizes handler
func NewTrimSizesHandler() *TrimSizesHandler {
	return &TrimSizesHandler{}
}

// TrimSizeResponse represents one standard trim size.
type TrimSizeResponse struct {
	Name     string  `json:"name"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Interior string  `json:"interior"`
	MaxPages int     `json:"max_pages"`
}

// List returns the trim size catalog. The optional "interior" query
// parameter ("bw" or "color") filters by interior type.
func (h *TrimSizesHandler) List(w http.ResponseWriter, r *http.Request) {
	interior := kdp.InteriorType(r.URL.Query().Get("interior"))
	switch interior {
	case "", kdp.InteriorBW, kdp.InteriorColor:
	default:
		respondError(w, http.StatusBadRequest, "unknown interior type, expected bw or color")
		return
	}

	sizes := kdp.TrimSizes(interior)
	out := make([]TrimSizeResponse, len(sizes))
	for i, ts := range sizes {
		out[i] = TrimSizeResponse{
			Name:     ts.Name,
			Width:    ts.Width,
			Height:   ts.Height,
			Interior: string(ts.Interior),
			MaxPages: ts.MaxPages,
		}
	}
	respondJSON(w, http.StatusOK, out)
}
