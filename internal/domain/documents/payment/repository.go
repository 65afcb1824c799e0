package payment

import (
	"context"

	"tradebill/internal/core/id"
	"tradebill/internal/domain"
)

// Repository defines operations for payment documents.
type Repository interface {
	Create(ctx context.Context, doc *Payment) error
	GetByID(ctx context.Context, docID id.ID) (*Payment, error)
	Update(ctx context.Context, doc *Payment) error
	Delete(ctx context.Context, docID id.ID) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Payment], error)
}
