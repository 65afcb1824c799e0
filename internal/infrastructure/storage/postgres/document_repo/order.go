package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"tradebill/internal/domain"
	"tradebill/internal/domain/documents/order"
	"tradebill/internal/infrastructure/storage/postgres"
)

const orderTable = "doc_orders"

// OrderRepo implements order.Repository.
type OrderRepo struct {
	*BaseDocumentRepo[*order.Order]
}

// NewOrderRepo creates a new order repository.
func NewOrderRepo(txManager *postgres.TxManager) *OrderRepo {
	return &OrderRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*order.Order](
			txManager,
			orderTable,
			postgres.ExtractDBColumns[order.Order](),
			func() *order.Order { return &order.Order{} },
		),
	}
}

// List retrieves orders filtered by client and date range.
func (r *OrderRepo) List(ctx context.Context, filter order.ListFilter) (domain.ListResult[*order.Order], error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"deletion_mark": false})

	if filter.ClientID != nil {
		q = q.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		q = q.Where(squirrel.Lt{"date": *filter.DateTo})
	}

	return r.listPage(ctx, q, "date DESC, created_at DESC", filter.Limit, filter.Offset)
}
