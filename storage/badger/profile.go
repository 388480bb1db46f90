package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/mike-arbuzov/findmyangel-backend/core"
	"github.com/mike-arbuzov/findmyangel-backend/storage"
)

// ProfileRepository implements storage.ProfileRepository for BadgerDB.
type ProfileRepository struct {
	backend *Backend
}

var _ storage.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository creates a new ProfileRepository.
//
// Returns storage.ProfileRepository interface to enforce abstraction.
func NewProfileRepository(backend *Backend) (storage.ProfileRepository, error) {
	if backend == nil {
		return nil, storage.ErrStorageClosed
	}
	return &ProfileRepository{backend: backend}, nil
}

// Close is a no-op; the backend owns the database lifecycle.
func (r *ProfileRepository) Close() error {
	return nil
}

// Upsert adds profile records to storage, replacing any existing record with
// the same identity.
func (r *ProfileRepository) Upsert(ctx context.Context, records ...*core.ProfileRecord) ([]*core.ProfileRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for _, record := range records {
			if err := core.ValidateProfileRecord(record); err != nil {
				return err
			}
			record.Id = record.Identity()

			// Preserve the original insertion time across replacements
			old, err := r.readProfile(tx, makeProfileKey(record.Id))
			if err != nil {
				return err
			}
			if old != nil {
				record.InsertedAt = old.InsertedAt
			} else {
				record.InsertedAt = now
			}
			record.UpdatedAt = now

			key := makeProfileKey(record.Id)
			if err := tx.Set(key, storage.MarshalProfileRecord(record)); err != nil {
				return err
			}

			// Secondary index: normalized URL -> ID. The ID is derived from
			// the URL, so a URL change is a new identity and never leaves a
			// dangling index entry behind.
			urlKey := makeProfileURLKey(record.LinkedInURL)
			if err := tx.Set(urlKey, storage.MarshalID(record.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// Get retrieves a single profile record by ID.
func (r *ProfileRepository) Get(ctx context.Context, id core.ID) (*core.ProfileRecord, error) {
	var record *core.ProfileRecord

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		record, err = r.readProfile(tx, makeProfileKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, storage.ErrNotFound
	}
	return record, nil
}

// GetByURL retrieves a single profile record by its normalized LinkedIn URL.
func (r *ProfileRepository) GetByURL(ctx context.Context, linkedInURL string) (*core.ProfileRecord, error) {
	return r.Get(ctx, core.IDFromContent(linkedInURL))
}

// GetMany retrieves multiple profile records by their IDs.
// Missing records are skipped, not errors.
func (r *ProfileRepository) GetMany(ctx context.Context, ids ...core.ID) ([]*core.ProfileRecord, error) {
	records := make([]*core.ProfileRecord, 0, len(ids))

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			record, err := r.readProfile(tx, makeProfileKey(id))
			if err != nil {
				return err
			}
			if record != nil {
				records = append(records, record)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// All retrieves every profile record, ordered by LinkedIn URL.
func (r *ProfileRepository) All(ctx context.Context) ([]*core.ProfileRecord, error) {
	return r.scan(0, -1)
}

// List retrieves a page of profile records ordered by LinkedIn URL.
func (r *ProfileRepository) List(ctx context.Context, skip, limit int) ([]*core.ProfileRecord, error) {
	if skip < 0 || limit < 1 {
		return nil, storage.ErrInvalidQuery
	}
	return r.scan(skip, limit)
}

// Count returns the number of stored profile records.
func (r *ProfileRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(profileURLPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// Delete removes profile records by their IDs.
func (r *ProfileRepository) Delete(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			record, err := r.readProfile(tx, makeProfileKey(id))
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}
			if err := tx.Delete(makeProfileKey(id)); err != nil {
				return err
			}
			if err := tx.Delete(makeProfileURLKey(record.LinkedInURL)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// scan walks the URL index in lexicographic order, resolving each entry to
// its record. A limit of -1 means no limit.
func (r *ProfileRepository) scan(skip, limit int) ([]*core.ProfileRecord, error) {
	var records []*core.ProfileRecord

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(profileURLPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		skipped := 0
		for iter.Rewind(); iter.Valid(); iter.Next() {
			if skipped < skip {
				skipped++
				continue
			}
			if limit >= 0 && len(records) >= limit {
				break
			}

			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			record, err := r.readProfile(tx, makeProfileKey(id))
			if err != nil {
				return err
			}
			if record != nil {
				records = append(records, record)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// readProfile reads and unmarshals a profile record within a transaction.
// Returns (nil, nil) if the key doesn't exist.
func (r *ProfileRepository) readProfile(tx *badger.Txn, key []byte) (*core.ProfileRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.ProfileRecord
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalProfileRecord(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
