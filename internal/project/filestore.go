package project

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const projectsFile = "projects.json"

// FileStore keeps all projects in a single projects.json file inside
// a storage directory. It is safe for concurrent use.
type FileStore struct {
	mu       sync.Mutex
	path     string
	projects []Project // newest first
}

// NewFileStore opens (or creates) the projects file under dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}

	s := &FileStore{path: filepath.Join(dir, projectsFile)}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading projects file: %w", err)
	}
	if err := json.Unmarshal(data, &s.projects); err != nil {
		return nil, fmt.Errorf("parsing projects file: %w", err)
	}
	return s, nil
}

// save writes the project list back to disk. Callers must hold mu.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.projects, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding projects: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing projects file: %w", err)
	}
	return nil
}

// find returns the index of the project with the given id, or -1.
// Callers must hold mu.
func (s *FileStore) find(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}

// Create adds a new draft project at the front of the list.
func (s *FileStore) Create(_ context.Context, title string, typ Type, metadata map[string]any) (*Project, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("invalid project type %q", typ)
	}

	now := time.Now().UTC()
	p := Project{
		ID:        uuid.NewString(),
		Title:     title,
		Type:      typ,
		CreatedAt: now,
		UpdatedAt: now,
		Status:    StatusDraft,
		Files:     []File{},
		Metadata:  metadata,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append([]Project{p}, s.projects...)
	if err := s.save(); err != nil {
		s.projects = s.projects[1:]
		return nil, err
	}
	return &p, nil
}

// Get returns the project with the given id.
func (s *FileStore) Get(_ context.Context, id string) (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	p := s.projects[i]
	return &p, nil
}

// Update applies a partial update and bumps the updated_at timestamp.
func (s *FileStore) Update(_ context.Context, id string, upd Update) (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(id)
	if i < 0 {
		return nil, ErrNotFound
	}

	p := &s.projects[i]
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	if upd.Tags != nil {
		p.Tags = upd.Tags
	}
	if upd.Metadata != nil {
		p.Metadata = upd.Metadata
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.save(); err != nil {
		return nil, err
	}
	out := *p
	return &out, nil
}

// AddFile attaches an output file to a project.
func (s *FileStore) AddFile(_ context.Context, id, path, kind string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(id)
	if i < 0 {
		return ErrNotFound
	}

	now := time.Now().UTC()
	p := &s.projects[i]
	p.Files = append(p.Files, File{Path: path, Kind: kind, AddedAt: now})
	p.UpdatedAt = now
	return s.save()
}

// Recent returns up to limit projects, newest first, optionally
// filtered by type.
func (s *FileStore) Recent(_ context.Context, limit int, typ Type) ([]Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Project
	for _, p := range s.projects {
		if typ != "" && p.Type != typ {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Search matches the query against titles and tags, case-insensitively.
func (s *FileStore) Search(_ context.Context, query string) ([]Project, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Project
	for _, p := range s.projects {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func matches(p Project, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Delete removes a project from the store.
func (s *FileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(id)
	if i < 0 {
		return ErrNotFound
	}
	s.projects = append(s.projects[:i], s.projects[i+1:]...)
	return s.save()
}

// Stats aggregates counts across all stored projects.
func (s *FileStore) Stats(_ context.Context) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats Stats
	for _, p := range s.projects {
		stats.count(p)
	}
	return stats, nil
}
