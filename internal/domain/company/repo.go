package company

import (
	"context"
)

// Repository persists the company settings singleton.
type Repository interface {
	// Get returns the settings row, creating defaults on first call.
	Get(ctx context.Context) (*Settings, error)

	// Update saves settings with optimistic locking.
	Update(ctx context.Context, s *Settings) error
}
