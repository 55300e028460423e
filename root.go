package javanav

import (
	"context"
	"time"
)

// Root represents a registered documentation root: a local Javadoc tree the
// user wants indexed across runs.
type Root struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the root contains invalid fields.
func (r *Root) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "root name required")
	}
	if r.Path == "" {
		return Errorf(EINVALID, "root path required")
	}
	return nil
}

// RootService represents a service for managing registered roots.
type RootService interface {
	// CreateRoot registers a new root.
	CreateRoot(ctx context.Context, root *Root) error

	// FindRootByID retrieves a root by ID.
	// Returns ENOTFOUND if the root does not exist.
	FindRootByID(ctx context.Context, id string) (*Root, error)

	// FindRoots retrieves roots matching the filter.
	FindRoots(ctx context.Context, filter RootFilter) ([]*Root, error)

	// DeleteRoot permanently removes a root from the catalog. The cache
	// record for its path is left in place.
	// Returns ENOTFOUND if the root does not exist.
	DeleteRoot(ctx context.Context, id string) error
}

// RootFilter represents a filter for FindRoots.
type RootFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
	Path *string `json:"path"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
