package project

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PostgresStore persists projects in a PostgreSQL database. It is the
// backend of choice when the web server runs with shared state; single
// user CLI runs use the FileStore instead.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection pool against the given database
// URL and applies pending schema migrations.
func NewPostgresStore(url string) (*PostgresStore, error) {
	if url == "" {
		return nil, errors.New("database URL is required")
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database connection: %w", err)
	}
	return nil
}

func (s *PostgresStore) appliedMigrations(ctx context.Context) (map[string]bool, error) {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ DEFAULT NOW()
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("create migrations table: %w", err)
	}

	applied := make(map[string]bool)
	rows, err := s.db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("query applied migrations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan migration version: %w", err)
		}
		applied[v] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applied migrations: %w", err)
	}
	return applied, nil
}

// migrate applies all pending migrations in lexical order.
func (s *PostgresStore) migrate(ctx context.Context) error {
	applied, err := s.appliedMigrations(ctx)
	if err != nil {
		return err
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".sql") && !applied[e.Name()] {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := migrationsFS.ReadFile("migrations/" + file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction for %s: %w", file, err)
		}

		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("execute migration %s: %w", file, err)
		}

		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", file); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %s: %w", file, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", file, err)
		}
	}

	return nil
}

const projectColumns = "id, title, project_type, created_at, updated_at, status, files, metadata, tags"

func scanProject(scan func(dest ...any) error) (*Project, error) {
	var (
		p        Project
		files    []byte
		metadata []byte
		tags     pq.StringArray
	)
	err := scan(&p.ID, &p.Title, &p.Type, &p.CreatedAt, &p.UpdatedAt, &p.Status, &files, &metadata, &tags)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(files, &p.Files); err != nil {
		return nil, fmt.Errorf("decoding project files: %w", err)
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &p.Metadata); err != nil {
			return nil, fmt.Errorf("decoding project metadata: %w", err)
		}
	}
	p.Tags = tags
	return &p, nil
}

// Create inserts a new draft project.
func (s *PostgresStore) Create(ctx context.Context, title string, typ Type, metadata map[string]any) (*Project, error) {
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

	var meta []byte
	if metadata != nil {
		var err error
		meta, err = json.Marshal(metadata)
		if err != nil {
			return nil, fmt.Errorf("encoding project metadata: %w", err)
		}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, title, project_type, created_at, updated_at, status, files, metadata, tags)
		VALUES ($1, $2, $3, $4, $5, $6, '[]'::jsonb, $7, '{}')
	`, p.ID, p.Title, p.Type, p.CreatedAt, p.UpdatedAt, p.Status, meta)
	if err != nil {
		return nil, fmt.Errorf("inserting project: %w", err)
	}
	return &p, nil
}

// Get returns the project with the given id.
func (s *PostgresStore) Get(ctx context.Context, id string) (*Project, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = $1", id)
	p, err := scanProject(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying project: %w", err)
	}
	return p, nil
}

// Update applies a partial update and returns the updated project.
func (s *PostgresStore) Update(ctx context.Context, id string, upd Update) (*Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

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

	var meta []byte
	if p.Metadata != nil {
		meta, err = json.Marshal(p.Metadata)
		if err != nil {
			return nil, fmt.Errorf("encoding project metadata: %w", err)
		}
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE projects
		SET title = $2, status = $3, tags = $4, metadata = $5, updated_at = $6
		WHERE id = $1
	`, id, p.Title, p.Status, pq.Array(p.Tags), meta, p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}
	return p, nil
}

// AddFile appends an output file to the project's file list.
func (s *PostgresStore) AddFile(ctx context.Context, id, path, kind string) error {
	now := time.Now().UTC()
	entry, err := json.Marshal(File{Path: path, Kind: kind, AddedAt: now})
	if err != nil {
		return fmt.Errorf("encoding file entry: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE projects
		SET files = files || $2::jsonb, updated_at = $3
		WHERE id = $1
	`, id, entry, now)
	if err != nil {
		return fmt.Errorf("attaching file: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) queryProjects(ctx context.Context, query string, args ...any) ([]Project, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return out, nil
}

// Recent returns up to limit projects, newest first, optionally
// filtered by type.
func (s *PostgresStore) Recent(ctx context.Context, limit int, typ Type) ([]Project, error) {
	if limit <= 0 {
		limit = 100
	}
	if typ != "" {
		return s.queryProjects(ctx,
			"SELECT "+projectColumns+" FROM projects WHERE project_type = $1 ORDER BY updated_at DESC LIMIT $2",
			typ, limit)
	}
	return s.queryProjects(ctx,
		"SELECT "+projectColumns+" FROM projects ORDER BY updated_at DESC LIMIT $1", limit)
}

// Search matches the query against titles and tags, case-insensitively.
func (s *PostgresStore) Search(ctx context.Context, query string) ([]Project, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, nil
	}
	pattern := "%" + strings.ToLower(q) + "%"
	return s.queryProjects(ctx, `
		SELECT `+projectColumns+` FROM projects
		WHERE lower(title) LIKE $1
		   OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE lower(tag) LIKE $1)
		ORDER BY updated_at DESC
	`, pattern)
}

// Delete removes a project.
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats aggregates counts across all stored projects.
func (s *PostgresStore) Stats(ctx context.Context) (Stats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT project_type, COUNT(*), MAX(updated_at)
		FROM projects
		GROUP BY project_type
	`)
	if err != nil {
		return Stats{}, fmt.Errorf("querying project stats: %w", err)
	}
	defer rows.Close()

	var stats Stats
	for rows.Next() {
		var (
			typ   Type
			count int
			last  time.Time
		)
		if err := rows.Scan(&typ, &count, &last); err != nil {
			return Stats{}, fmt.Errorf("scanning project stats: %w", err)
		}
		switch typ {
		case TypeEbook:
			stats.TotalBooks = count
		case TypeCover:
			stats.TotalCovers = count
		case TypeConversion:
			stats.TotalConversions = count
		case TypeWatermark:
			stats.TotalWatermarks = count
		}
		if stats.LastActivity == nil || last.After(*stats.LastActivity) {
			t := last
			stats.LastActivity = &t
		}
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("iterating project stats: %w", err)
	}
	return stats, nil
}
