package order

import (
	"context"

	"tradebill/internal/core/id"
	"tradebill/internal/domain"
)

// Repository defines operations for order documents.
type Repository interface {
	Create(ctx context.Context, doc *Order) error
	GetByID(ctx context.Context, docID id.ID) (*Order, error)
	Update(ctx context.Context, doc *Order) error
	Delete(ctx context.Context, docID id.ID) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Order], error)
}
