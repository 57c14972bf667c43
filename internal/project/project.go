package project

import (
	"errors"
	"time"
)

// Type classifies what a project produces.
type Type string

const (
	TypeEbook      Type = "ebook"
	TypeCover      Type = "cover"
	TypeWatermark  Type = "watermark"
	TypeConversion Type = "conversion"
)

// Types lists every valid project type.
func Types() []Type {
	return []Type{TypeEbook, TypeCover, TypeWatermark, TypeConversion}
}

// Valid reports whether t is a known project type.
func (t Type) Valid() bool {
	switch t {
	case TypeEbook, TypeCover, TypeWatermark, TypeConversion:
		return true
	}
	return false
}

// StatusDraft is the status assigned to newly created projects.
const StatusDraft = "draft"

// ErrNotFound is returned when a project id does not exist in the store.
var ErrNotFound = errors.New("project not found")

// File is an artifact attached to a project.
type File struct {
	Path    string    `json:"path"`
	Kind    string    `json:"type"`
	AddedAt time.Time `json:"added_at"`
}

// Project is a unit of work tracked by the toolkit: a book conversion,
// a cover, or a watermarking run, together with its output files.
type Project struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Type      Type           `json:"type"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Status    string         `json:"status"`
	Files     []File         `json:"files"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Tags      []string       `json:"tags,omitempty"`
}

// Update describes a partial modification of a project. Nil pointers
// leave the corresponding field untouched; a non-nil Tags or Metadata
// replaces the stored value.
type Update struct {
	Title    *string
	Status   *string
	Tags     []string
	Metadata map[string]any
}

// Stats aggregates project counts per type.
type Stats struct {
	TotalBooks       int        `json:"total_books"`
	TotalCovers      int        `json:"total_covers"`
	TotalConversions int        `json:"total_conversions"`
	TotalWatermarks  int        `json:"total_watermarks"`
	LastActivity     *time.Time `json:"last_activity,omitempty"`
}

func (s *Stats) count(p Project) {
	switch p.Type {
	case TypeEbook:
		s.TotalBooks++
	case TypeCover:
		s.TotalCovers++
	case TypeConversion:
		s.TotalConversions++
	case TypeWatermark:
		s.TotalWatermarks++
	}
	if s.LastActivity == nil || p.UpdatedAt.After(*s.LastActivity) {
		t := p.UpdatedAt
		s.LastActivity = &t
	}
}
