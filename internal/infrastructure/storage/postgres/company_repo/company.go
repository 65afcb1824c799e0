// Package company_repo persists the company settings singleton.
package company_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"tradebill/internal/core/apperror"
	"tradebill/internal/core/id"
	"tradebill/internal/domain/company"
	"tradebill/internal/infrastructure/storage/postgres"
)

const settingsTable = "sys_company_settings"

// Compile-time check that CompanyRepo implements company.Repository.
var _ company.Repository = (*CompanyRepo)(nil)

// CompanyRepo stores the single settings row.
type CompanyRepo struct {
	txManager  *postgres.TxManager
	selectCols []string
}

// NewCompanyRepo creates a new company settings repository.
func NewCompanyRepo(txManager *postgres.TxManager) *CompanyRepo {
	return &CompanyRepo{
		txManager:  txManager,
		selectCols: postgres.ExtractDBColumns[company.Settings](),
	}
}

func (r *CompanyRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Get returns the settings row, creating defaults on first call.
func (r *CompanyRepo) Get(ctx context.Context) (*company.Settings, error) {
	q := r.builder().
		Select(r.selectCols...).
		From(settingsTable).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)

	settings := &company.Settings{}
	if err := pgxscan.Get(ctx, querier, settings, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return r.createDefaults(ctx)
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return settings, nil
}

// Update saves settings with optimistic locking.
func (r *CompanyRepo) Update(ctx context.Context, s *company.Settings) error {
	data := postgres.StructToMap(s)

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if col == "id" || col == "version" || col == "updated_at" {
			continue
		}
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.builder().
		Update(settingsTable).
		SetMap(filteredData).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		Where(squirrel.Eq{"version": s.Version})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification(settingsTable, s.ID)
	}

	return nil
}

// createDefaults inserts the initial settings row. Concurrent first
// calls are safe: the insert is keyed on a fixed singleton guard.
func (r *CompanyRepo) createDefaults(ctx context.Context) (*company.Settings, error) {
	settings := &company.Settings{
		ID:                id.New(),
		CompanyName:       "My Company",
		InvoicePrefix:     "INV",
		NextInvoiceNumber: 1,
		Version:           1,
	}

	sql := fmt.Sprintf(`
		INSERT INTO %s (id, company_name, invoice_prefix, next_invoice_number, version, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT DO NOTHING
	`, settingsTable)

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql,
		settings.ID, settings.CompanyName, settings.InvoicePrefix,
		settings.NextInvoiceNumber, settings.Version,
	); err != nil {
		return nil, fmt.Errorf("insert default settings: %w", err)
	}

	// Re-read: another caller may have won the insert race.
	q := r.builder().
		Select(r.selectCols...).
		From(settingsTable).
		Limit(1)

	selectSQL, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	stored := &company.Settings{}
	if err := pgxscan.Get(ctx, querier, stored, selectSQL, args...); err != nil {
		return nil, fmt.Errorf("read settings after insert: %w", err)
	}

	return stored, nil
}
