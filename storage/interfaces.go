package storage

import (
	"context"

	"github.com/mike-arbuzov/findmyangel-backend/core"
)

// ProfileRepository provides operations for managing profile records.
// Implementations must be thread-safe and support concurrent access; the
// query path only ever reads, so readers must never block behind writers
// for longer than a single key operation.
type ProfileRepository interface {
	// Upsert adds profile records to storage, replacing any existing record
	// with the same identity. Sets Id from the normalized LinkedIn URL and
	// populates InsertedAt/UpdatedAt timestamps.
	// Returns the records with IDs and timestamps populated.
	Upsert(ctx context.Context, records ...*core.ProfileRecord) ([]*core.ProfileRecord, error)

	// Get retrieves a single profile record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	Get(ctx context.Context, id core.ID) (*core.ProfileRecord, error)

	// GetByURL retrieves a single profile record by its normalized LinkedIn URL.
	// Returns ErrNotFound if the record doesn't exist.
	GetByURL(ctx context.Context, linkedInURL string) (*core.ProfileRecord, error)

	// GetMany retrieves multiple profile records by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetMany(ctx context.Context, ids ...core.ID) ([]*core.ProfileRecord, error)

	// All retrieves every profile record, ordered by LinkedIn URL.
	// Used only at full index rebuild time; the hot query path never calls it.
	All(ctx context.Context) ([]*core.ProfileRecord, error)

	// List retrieves a page of profile records ordered by LinkedIn URL.
	List(ctx context.Context, skip, limit int) ([]*core.ProfileRecord, error)

	// Count returns the number of stored profile records.
	Count(ctx context.Context) (int, error)

	// Delete removes profile records by their IDs.
	// Returns ErrNotFound if any record doesn't exist.
	Delete(ctx context.Context, ids ...core.ID) error

	// Close closes the storage backend and releases resources.
	Close() error
}
