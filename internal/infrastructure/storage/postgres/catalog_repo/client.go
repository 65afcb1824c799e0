package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"tradebill/internal/core/apperror"
	"tradebill/internal/domain/catalogs/client"
	"tradebill/internal/infrastructure/storage/postgres"
)

const clientTable = "cat_clients"

// ClientRepo implements client.Repository.
type ClientRepo struct {
	*BaseCatalogRepo[*client.Client]
}

// NewClientRepo creates a new client repository.
func NewClientRepo(txManager *postgres.TxManager) *ClientRepo {
	return &ClientRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*client.Client](
			txManager,
			clientTable,
			postgres.ExtractDBColumns[client.Client](),
			func() *client.Client { return &client.Client{} },
		),
	}
}

// FindByGST retrieves a client by GST number.
func (r *ClientRepo) FindByGST(ctx context.Context, gst string) (*client.Client, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"gst_number": gst}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	cl, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("client", gst)
		}
		return nil, err
	}
	return cl, nil
}
