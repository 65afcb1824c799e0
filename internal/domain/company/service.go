package company

import (
	"context"
	"fmt"

	"tradebill/internal/core/tx"
)

// Service provides business logic for company settings.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a company settings service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// Get returns the current settings.
func (s *Service) Get(ctx context.Context) (*Settings, error) {
	return s.repo.Get(ctx)
}

// Update validates and saves settings.
func (s *Service) Update(ctx context.Context, settings *Settings) error {
	if err := settings.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, settings); err != nil {
			return fmt.Errorf("update company settings: %w", err)
		}
		return nil
	})
}
