// Package ledger_repo reads a client's order and payment history for
// balance reconciliation. Rows come back in ascending date order so
// invoice lines preserve ledger order.
package ledger_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"tradebill/internal/core/id"
	"tradebill/internal/core/types"
	"tradebill/internal/domain/billing"
	"tradebill/internal/domain/documents/order"
	"tradebill/internal/domain/documents/payment"
	"tradebill/internal/infrastructure/storage/postgres"
)

const (
	orderTable   = "doc_orders"
	paymentTable = "doc_payments"
)

// Compile-time check that LedgerRepo implements billing.LedgerReader.
var _ billing.LedgerReader = (*LedgerRepo)(nil)

// LedgerRepo implements billing.LedgerReader over the order and
// payment document tables.
type LedgerRepo struct {
	txManager   *postgres.TxManager
	orderCols   []string
	paymentCols []string
}

// NewLedgerRepo creates a new ledger repository.
func NewLedgerRepo(txManager *postgres.TxManager) *LedgerRepo {
	return &LedgerRepo{
		txManager:   txManager,
		orderCols:   postgres.ExtractDBColumns[order.Order](),
		paymentCols: postgres.ExtractDBColumns[payment.Payment](),
	}
}

func (r *LedgerRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// OrdersForPeriod returns the client's orders dated within the period.
func (r *LedgerRepo) OrdersForPeriod(ctx context.Context, clientID id.ID, period types.Period) ([]*order.Order, error) {
	var items []*order.Order
	err := r.selectRange(ctx, &items, orderTable, r.orderCols, clientID, period.Start(), period.Start().AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("orders for period %s: %w", period, err)
	}
	return items, nil
}

// OrdersBefore returns the client's orders dated strictly before cutoff.
func (r *LedgerRepo) OrdersBefore(ctx context.Context, clientID id.ID, cutoff time.Time) ([]*order.Order, error) {
	var items []*order.Order
	err := r.selectRange(ctx, &items, orderTable, r.orderCols, clientID, time.Time{}, cutoff)
	if err != nil {
		return nil, fmt.Errorf("orders before %s: %w", cutoff.Format("2006-01-02"), err)
	}
	return items, nil
}

// PaymentsForPeriod returns the client's payments dated within the period.
func (r *LedgerRepo) PaymentsForPeriod(ctx context.Context, clientID id.ID, period types.Period) ([]*payment.Payment, error) {
	var items []*payment.Payment
	err := r.selectRange(ctx, &items, paymentTable, r.paymentCols, clientID, period.Start(), period.Start().AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("payments for period %s: %w", period, err)
	}
	return items, nil
}

// PaymentsBefore returns the client's payments dated strictly before cutoff.
func (r *LedgerRepo) PaymentsBefore(ctx context.Context, clientID id.ID, cutoff time.Time) ([]*payment.Payment, error) {
	var items []*payment.Payment
	err := r.selectRange(ctx, &items, paymentTable, r.paymentCols, clientID, time.Time{}, cutoff)
	if err != nil {
		return nil, fmt.Errorf("payments before %s: %w", cutoff.Format("2006-01-02"), err)
	}
	return items, nil
}

// selectRange queries one document table for a client within
// [from, to). A zero from means no lower bound.
func (r *LedgerRepo) selectRange(ctx context.Context, dst any, table string, cols []string, clientID id.ID, from, to time.Time) error {
	q := r.builder().
		Select(cols...).
		From(table).
		Where(squirrel.Eq{"client_id": clientID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.Lt{"date": to}).
		OrderBy("date ASC, created_at ASC")

	if !from.IsZero() {
		q = q.Where(squirrel.GtOrEq{"date": from})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), dst, sql, args...); err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}

	return nil
}
