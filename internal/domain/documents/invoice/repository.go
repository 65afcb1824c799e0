package invoice

import (
	"context"

	"tradebill/internal/core/id"
	"tradebill/internal/domain"
)

// Repository defines operations for invoice snapshots.
type Repository interface {
	Create(ctx context.Context, doc *Invoice) error
	GetByID(ctx context.Context, docID id.ID) (*Invoice, error)
	GetByNumber(ctx context.Context, number string) (*Invoice, error)

	// Line operations
	GetItems(ctx context.Context, docID id.ID) ([]Item, error)
	SaveItems(ctx context.Context, docID id.ID, items []Item) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Invoice], error)
}
