package project

import "context"

// Store persists projects. The default implementation is a JSON file
// store; server deployments can use the PostgreSQL store instead.
type Store interface {
	// Create adds a new draft project and returns it.
	Create(ctx context.Context, title string, typ Type, metadata map[string]any) (*Project, error)
	// Get returns the project with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Project, error)
	// Update applies a partial update and returns the updated project.
	Update(ctx context.Context, id string, upd Update) (*Project, error)
	// AddFile attaches an output file to a project.
	AddFile(ctx context.Context, id, path, kind string) error
	// Recent returns up to limit projects, newest first. An empty typ
	// returns projects of every type.
	Recent(ctx context.Context, limit int, typ Type) ([]Project, error)
	// Search returns projects whose title or tags contain the query,
	// case-insensitively, newest first.
	Search(ctx context.Context, query string) ([]Project, error)
	// Delete removes a project, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
	// Stats aggregates counts across all projects.
	Stats(ctx context.Context) (Stats, error)
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*PostgresStore)(nil)
)
