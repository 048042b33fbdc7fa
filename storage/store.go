package storage

import (
	"context"

	"todoapi/models"
)

// TodoStore is the persistence boundary for todo records. Implementations
// own id and timestamp assignment: Insert fills ID, Created and Updated on
// the passed record, Update refreshes Updated.
//
// Get returns (nil, nil) when no record has the given id — absence is data
// for the handlers to act on, not an error.
type TodoStore interface {
	Get(ctx context.Context, id int64) (*models.Todo, error)
	List(ctx context.Context) ([]models.Todo, error)
	Insert(ctx context.Context, t *models.Todo) error
	Update(ctx context.Context, t *models.Todo) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// ContactStore is the persistence boundary for contacts. The uniqueness
// probes back the serializer-level unique validators on create.
type ContactStore interface {
	List(ctx context.Context) ([]models.Contact, error)
	Insert(ctx context.Context, c *models.Contact) error
	PhoneInUse(ctx context.Context, phone string) (bool, error)
	EmailInUse(ctx context.Context, email string) (bool, error)
}
