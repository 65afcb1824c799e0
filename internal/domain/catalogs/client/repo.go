package client

import (
	"context"

	"tradebill/internal/core/id"
	"tradebill/internal/domain"
)

// Repository defines the interface for Client persistence.
type Repository interface {
	domain.CatalogRepository[*Client]

	// FindByGST retrieves a client by GST number.
	FindByGST(ctx context.Context, gst string) (*Client, error)

	// GetForUpdate retrieves a client with a row lock.
	GetForUpdate(ctx context.Context, id id.ID) (*Client, error)
}
