package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/javanav/javanav"
)

// Compile-time interface verification.
var _ javanav.RootService = (*RootService)(nil)

// RootService implements javanav.RootService using SQLite.
type RootService struct {
	db *DB
}

// NewRootService creates a new RootService.
func NewRootService(db *DB) *RootService {
	return &RootService{db: db}
}

// CreateRoot registers a new documentation root.
func (s *RootService) CreateRoot(ctx context.Context, root *javanav.Root) error {
	if err := root.Validate(); err != nil {
		return err
	}

	root.ID = uuid.New().String()
	root.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO roots (id, name, path, created_at)
		VALUES (?, ?, ?, ?)
	`, root.ID, root.Name, root.Path, root.CreatedAt.Format(time.RFC3339))

	if err != nil && strings.Contains(err.Error(), "UNIQUE") {
		return javanav.Errorf(javanav.EINVALID, "root %q already registered", root.Name)
	}
	return err
}

// FindRootByID retrieves a root by ID.
func (s *RootService) FindRootByID(ctx context.Context, id string) (*javanav.Root, error) {
	var root javanav.Root
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, path, created_at
		FROM roots
		WHERE id = ?
	`, id).Scan(&root.ID, &root.Name, &root.Path, &createdAt)

	if err == sql.ErrNoRows {
		return nil, javanav.Errorf(javanav.ENOTFOUND, "root not found")
	}
	if err != nil {
		return nil, err
	}

	root.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &root, nil
}

// FindRoots retrieves roots matching the filter, oldest first so the merge
// order of registered roots is stable across runs.
func (s *RootService) FindRoots(ctx context.Context, filter javanav.RootFilter) ([]*javanav.Root, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, path, created_at FROM roots WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Path != nil {
		query.WriteString(" AND path = ?")
		args = append(args, *filter.Path)
	}

	query.WriteString(" ORDER BY created_at ASC, name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roots []*javanav.Root
	for rows.Next() {
		var root javanav.Root
		var createdAt string

		if err := rows.Scan(&root.ID, &root.Name, &root.Path, &createdAt); err != nil {
			return nil, err
		}

		root.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		roots = append(roots, &root)
	}

	return roots, rows.Err()
}

// DeleteRoot permanently removes a root from the catalog.
func (s *RootService) DeleteRoot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM roots WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return javanav.Errorf(javanav.ENOTFOUND, "root not found")
	}

	return nil
}
