package order

import (
	"context"
	"fmt"

	"tradebill/internal/core/apperror"
	"tradebill/internal/core/id"
	"tradebill/internal/core/tx"
	"tradebill/internal/domain"
	"tradebill/pkg/numerator"
)

// Service provides business logic for order documents.
type Service struct {
	repo      Repository
	txManager tx.Manager
	numerator *numerator.Service
}

// NewService creates an order service.
func NewService(repo Repository, txManager tx.Manager, num *numerator.Service) *Service {
	return &Service{repo: repo, txManager: txManager, numerator: num}
}

// Create validates, numbers, and stores a new order.
func (s *Service) Create(ctx context.Context, doc *Order) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if doc.Number == "" {
		cfg := numerator.DefaultConfig("ORD")
		opts := &numerator.Options{Strategy: numerator.StrategyCached}
		number, err := s.numerator.GetNextNumber(ctx, cfg, opts, doc.Date)
		if err != nil {
			return fmt.Errorf("generate order number: %w", err)
		}
		doc.Number = number
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, doc)
	})
}

// GetByID retrieves an order.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Order, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("order", docID.String())
		}
		return nil, err
	}
	return doc, nil
}

// Update validates and saves changes to an order.
func (s *Service) Update(ctx context.Context, doc *Order) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
}

// Delete removes an order.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, docID)
	})
}

// List retrieves orders matching the filter.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Order], error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return s.repo.List(ctx, filter)
}
