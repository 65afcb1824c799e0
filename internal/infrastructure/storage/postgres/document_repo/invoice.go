package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"tradebill/internal/core/id"
	"tradebill/internal/domain"
	"tradebill/internal/domain/documents/invoice"
	"tradebill/internal/infrastructure/storage/postgres"
)

const (
	invoiceTable     = "doc_invoices"
	invoiceItemTable = "doc_invoice_items"
)

// InvoiceRepo implements invoice.Repository. Invoice lines live in a
// separate table keyed by invoice ID and line number.
type InvoiceRepo struct {
	*BaseDocumentRepo[*invoice.Invoice]
}

// NewInvoiceRepo creates a new invoice repository.
func NewInvoiceRepo(txManager *postgres.TxManager) *InvoiceRepo {
	return &InvoiceRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*invoice.Invoice](
			txManager,
			invoiceTable,
			postgres.ExtractDBColumns[invoice.Invoice](),
			func() *invoice.Invoice { return &invoice.Invoice{} },
		),
	}
}

// GetItems retrieves invoice lines in line order.
func (r *InvoiceRepo) GetItems(ctx context.Context, docID id.ID) ([]invoice.Item, error) {
	q := r.Builder().
		Select("line_id", "line_no", "order_id", "date", "material", "weight", "rate", "amount").
		From(invoiceItemTable).
		Where(squirrel.Eq{"invoice_id": docID}).
		OrderBy("line_no ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []invoice.Item
	if err := pgxscan.Select(ctx, r.Querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("get invoice items: %w", err)
	}

	return items, nil
}

// SaveItems replaces the invoice's lines.
func (r *InvoiceRepo) SaveItems(ctx context.Context, docID id.ID, items []invoice.Item) error {
	querier := r.Querier(ctx)

	delQ := r.Builder().
		Delete(invoiceItemTable).
		Where(squirrel.Eq{"invoice_id": docID})

	sql, args, err := delQ.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete invoice items: %w", err)
	}

	if len(items) == 0 {
		return nil
	}

	columns := []string{"line_id", "invoice_id", "line_no", "order_id", "date", "material", "weight", "rate", "amount"}

	rows := make([][]any, 0, len(items))
	for _, item := range items {
		lineID := item.LineID
		if id.IsNil(lineID) {
			lineID = id.New()
		}
		rows = append(rows, []any{lineID, docID, item.LineNo, item.OrderID, item.Date, item.Material, item.Weight, item.Rate, item.Amount})
	}

	// Inside a transaction COPY is the fast path; plain inserts
	// otherwise.
	if r.txManager.GetTx(ctx) != nil {
		inserter := postgres.NewBatchInserter(r.txManager)
		if _, err := inserter.CopyFromSlice(ctx, invoiceItemTable, columns, rows); err != nil {
			return fmt.Errorf("copy invoice items: %w", err)
		}
		return nil
	}

	insQ := r.Builder().
		Insert(invoiceItemTable).
		Columns(columns...)
	for _, row := range rows {
		insQ = insQ.Values(row...)
	}

	sql, args, err = insQ.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert invoice items: %w", err)
	}

	return nil
}

// List retrieves invoices filtered by client and period.
func (r *InvoiceRepo) List(ctx context.Context, filter invoice.ListFilter) (domain.ListResult[*invoice.Invoice], error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"deletion_mark": false})

	if filter.ClientID != nil {
		q = q.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.PeriodKey != "" {
		q = q.Where(squirrel.Eq{"period_key": filter.PeriodKey})
	}

	return r.listPage(ctx, q, "date DESC, created_at DESC", filter.Limit, filter.Offset)
}
