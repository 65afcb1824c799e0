package client

import (
	"context"
	"fmt"
	"time"

	"tradebill/internal/core/apperror"
	"tradebill/internal/core/id"
	"tradebill/internal/core/tx"
	"tradebill/internal/domain"
	"tradebill/pkg/numerator"
)

// Service provides business logic for the Client catalog.
// Composes domain.CatalogService for the common CRUD operations.
type Service struct {
	*domain.CatalogService[*Client]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a Client service.
func NewService(repo Repository, txManager tx.Manager, num *numerator.Service) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Client]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "client",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      num,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.prepareForUpdate)

	return svc
}

// prepareForCreate generates the code and checks GST uniqueness.
func (s *Service) prepareForCreate(ctx context.Context, c *Client) error {
	if c.Code == "" {
		cfg := numerator.DefaultConfig("CL")
		code, err := s.numerator.GetNextNumber(ctx, cfg, nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		c.Code = code
	}

	return s.checkGSTUnique(ctx, c)
}

// prepareForUpdate re-checks GST uniqueness, excluding the record itself.
func (s *Service) prepareForUpdate(ctx context.Context, c *Client) error {
	return s.checkGSTUnique(ctx, c)
}

func (s *Service) checkGSTUnique(ctx context.Context, c *Client) error {
	if c.GSTNumber == nil || *c.GSTNumber == "" {
		return nil
	}
	exists, err := s.gstExists(ctx, *c.GSTNumber, c.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewConflict("client with this GST number already exists").
			WithDetail("gstNumber", *c.GSTNumber)
	}
	return nil
}

// FindByGST retrieves a client by GST number.
func (s *Service) FindByGST(ctx context.Context, gst string) (*Client, error) {
	return s.repo.FindByGST(ctx, gst)
}

func (s *Service) gstExists(ctx context.Context, gst string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByGST(ctx, gst)
	if err != nil {
		// Not found is fine; real errors propagate.
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}
