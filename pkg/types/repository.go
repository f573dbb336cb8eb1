package types

// Repository is the persistence port the task store depends on: a durable
// table keyed by a storage-assigned positive integer ID. Implementations
// return errors for every failure mode; the store never mutates its
// in-memory state on a non-nil error.
type Repository interface {
	// Insert persists a new task from its field-map and returns the
	// storage-assigned ID.
	Insert(fields FieldMap) (int64, error)

	// FetchAll returns one field-map per stored task, ordered by ID.
	FetchAll() ([]FieldMap, error)

	// FetchOne returns the field-map for the given ID.
	// Returns ErrNotFound if no row exists.
	FetchOne(id int64) (FieldMap, error)

	// Update applies a partial field-map to the row with the given ID.
	// Returns ErrNotFound if no row was changed.
	Update(id int64, fields FieldMap) error

	// Delete removes the row with the given ID.
	// Returns ErrNotFound if no row was removed.
	Delete(id int64) error

	// Close releases the underlying storage resources. Idempotent.
	Close() error
}
