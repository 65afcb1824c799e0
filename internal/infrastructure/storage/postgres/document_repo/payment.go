package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"tradebill/internal/domain"
	"tradebill/internal/domain/documents/payment"
	"tradebill/internal/infrastructure/storage/postgres"
)

const paymentTable = "doc_payments"

// PaymentRepo implements payment.Repository.
type PaymentRepo struct {
	*BaseDocumentRepo[*payment.Payment]
}

// NewPaymentRepo creates a new payment repository.
func NewPaymentRepo(txManager *postgres.TxManager) *PaymentRepo {
	return &PaymentRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*payment.Payment](
			txManager,
			paymentTable,
			postgres.ExtractDBColumns[payment.Payment](),
			func() *payment.Payment { return &payment.Payment{} },
		),
	}
}

// List retrieves payments filtered by client and date range.
func (r *PaymentRepo) List(ctx context.Context, filter payment.ListFilter) (domain.ListResult[*payment.Payment], error) {
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
