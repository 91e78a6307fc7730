package mount

import (
	"vpath-go/internal/model"
	"vpath-go/internal/vpath"
)

// Store persists the mount table and the operation log.
// Lookups that find nothing return (nil, nil).
type Store interface {
	// Mount operations

	// FindMount returns the mount whose virtual prefix normalizes to virtual.
	FindMount(virtual vpath.Path) (*model.Mount, error)

	// ListMounts returns every stored mount ordered by virtual prefix.
	ListMounts() ([]*model.Mount, error)

	// CreateMount stores a new mount. The virtual prefix must be unique.
	CreateMount(m *model.Mount) error

	// DeleteMount removes a mount by ID.
	DeleteMount(id string) error

	// Operation tracking

	// CreateOperation records the start of a mutating operation.
	CreateOperation(operation, parameters string) (*model.Operation, error)

	// FinishOperation stamps the finish time and final status.
	FinishOperation(id int64, status string) error

	// ListOperations returns up to limit operations, newest first.
	ListOperations(limit int) ([]*model.Operation, error)

	// CheckMigrations verifies the schema is current.
	CheckMigrations() error

	// Close closes the underlying connection.
	Close() error
}
