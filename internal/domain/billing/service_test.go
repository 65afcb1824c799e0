package billing

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradebill/internal/core/apperror"
	"tradebill/internal/core/id"
	"tradebill/internal/core/types"
	"tradebill/internal/domain"
	"tradebill/internal/domain/catalogs/client"
	"tradebill/internal/domain/company"
	"tradebill/internal/domain/documents/invoice"
	"tradebill/internal/domain/documents/order"
	"tradebill/internal/domain/documents/payment"
	"tradebill/pkg/numerator"
)

// --- Mocks ---

type fakeClientRepo struct {
	clients map[id.ID]*client.Client
}

func (r *fakeClientRepo) Create(ctx context.Context, c *client.Client) error { return nil }
func (r *fakeClientRepo) GetByID(ctx context.Context, cid id.ID) (*client.Client, error) {
	if c, ok := r.clients[cid]; ok {
		return c, nil
	}
	return nil, apperror.NewNotFound("client", cid.String())
}
func (r *fakeClientRepo) GetByCode(ctx context.Context, code string) (*client.Client, error) {
	return nil, apperror.NewNotFound("client", code)
}
func (r *fakeClientRepo) Update(ctx context.Context, c *client.Client) error { return nil }
func (r *fakeClientRepo) Delete(ctx context.Context, cid id.ID) error        { return nil }
func (r *fakeClientRepo) SetDeletionMark(ctx context.Context, cid id.ID, marked bool) error {
	return nil
}
func (r *fakeClientRepo) List(ctx context.Context, f domain.ListFilter) (domain.ListResult[*client.Client], error) {
	return domain.ListResult[*client.Client]{}, nil
}
func (r *fakeClientRepo) Exists(ctx context.Context, cid id.ID) (bool, error) { return true, nil }
func (r *fakeClientRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return false, nil
}
func (r *fakeClientRepo) FindByGST(ctx context.Context, gst string) (*client.Client, error) {
	return nil, apperror.NewNotFound("client", gst)
}
func (r *fakeClientRepo) GetForUpdate(ctx context.Context, cid id.ID) (*client.Client, error) {
	return r.GetByID(ctx, cid)
}

type fakeCompanyRepo struct {
	settings *company.Settings
	updates  int
}

func (r *fakeCompanyRepo) Get(ctx context.Context) (*company.Settings, error) {
	return r.settings, nil
}
func (r *fakeCompanyRepo) Update(ctx context.Context, s *company.Settings) error {
	r.settings = s
	r.updates++
	return nil
}

type fakeLedger struct {
	orders   []*order.Order
	payments []*payment.Payment
}

func (l *fakeLedger) OrdersForPeriod(ctx context.Context, cid id.ID, p types.Period) ([]*order.Order, error) {
	var out []*order.Order
	for _, o := range l.orders {
		if o.ClientID == cid && p.Contains(o.Date) {
			out = append(out, o)
		}
	}
	return out, nil
}
func (l *fakeLedger) OrdersBefore(ctx context.Context, cid id.ID, cutoff time.Time) ([]*order.Order, error) {
	var out []*order.Order
	for _, o := range l.orders {
		if o.ClientID == cid && o.Date.Before(cutoff) {
			out = append(out, o)
		}
	}
	return out, nil
}
func (l *fakeLedger) PaymentsForPeriod(ctx context.Context, cid id.ID, p types.Period) ([]*payment.Payment, error) {
	var out []*payment.Payment
	for _, pay := range l.payments {
		if pay.ClientID == cid && p.Contains(pay.Date) {
			out = append(out, pay)
		}
	}
	return out, nil
}
func (l *fakeLedger) PaymentsBefore(ctx context.Context, cid id.ID, cutoff time.Time) ([]*payment.Payment, error) {
	var out []*payment.Payment
	for _, pay := range l.payments {
		if pay.ClientID == cid && pay.Date.Before(cutoff) {
			out = append(out, pay)
		}
	}
	return out, nil
}

type fakeInvoiceRepo struct {
	created []*invoice.Invoice
	items   map[id.ID][]invoice.Item
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, doc *invoice.Invoice) error {
	r.created = append(r.created, doc)
	return nil
}
func (r *fakeInvoiceRepo) GetByID(ctx context.Context, docID id.ID) (*invoice.Invoice, error) {
	for _, inv := range r.created {
		if inv.ID == docID {
			return inv, nil
		}
	}
	return nil, apperror.NewNotFound("invoice", docID.String())
}
func (r *fakeInvoiceRepo) GetByNumber(ctx context.Context, number string) (*invoice.Invoice, error) {
	for _, inv := range r.created {
		if inv.Number == number {
			return inv, nil
		}
	}
	return nil, apperror.NewNotFound("invoice", number)
}
func (r *fakeInvoiceRepo) GetItems(ctx context.Context, docID id.ID) ([]invoice.Item, error) {
	return r.items[docID], nil
}
func (r *fakeInvoiceRepo) SaveItems(ctx context.Context, docID id.ID, items []invoice.Item) error {
	if r.items == nil {
		r.items = make(map[id.ID][]invoice.Item)
	}
	r.items[docID] = items
	return nil
}
func (r *fakeInvoiceRepo) List(ctx context.Context, f invoice.ListFilter) (domain.ListResult[*invoice.Invoice], error) {
	return domain.ListResult[*invoice.Invoice]{
		Items:      r.created,
		TotalCount: int64(len(r.created)),
	}, nil
}

type fakeTxManager struct{}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type seqRow struct{ val int64 }

func (r *seqRow) Scan(dest ...any) error {
	if ptr, ok := dest[0].(*int64); ok {
		*ptr = r.val
	}
	return nil
}

type seqQuerier struct{ current int64 }

func (q *seqQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.current++
	return &seqRow{val: q.current}
}

// --- Fixtures ---

func newFixture() (*Service, id.ID, *fakeInvoiceRepo, *fakeCompanyRepo) {
	clientID := id.New()

	cl := client.NewClient("CL-1", "Acme Logistics")
	cl.SetOpeningBalance(types.MustMoney("5000"))

	clients := &fakeClientRepo{clients: map[id.ID]*client.Client{clientID: cl}}
	cl.ID = clientID
	clients.clients[clientID] = cl

	settings := &fakeCompanyRepo{settings: &company.Settings{
		ID:                id.New(),
		CompanyName:       "Shree Traders",
		InvoicePrefix:     "INV",
		NextInvoiceNumber: 1,
	}}

	ledger := &fakeLedger{
		orders: []*order.Order{
			makeOrderFor(clientID, day(2026, time.February, 10), "20000"),
			makeOrderFor(clientID, day(2026, time.March, 5), "12000"),
			makeOrderFor(clientID, day(2026, time.March, 20), "18000"),
		},
		payments: []*payment.Payment{
			makePaymentFor(clientID, day(2026, time.February, 15), "10000"),
			makePaymentFor(clientID, day(2026, time.March, 8), "5000"),
		},
	}

	invoices := &fakeInvoiceRepo{}
	num := numerator.New(&seqQuerier{})

	svc := NewService(clients, settings, ledger, invoices, num, &fakeTxManager{}, nil)
	return svc, clientID, invoices, settings
}

func makeOrderFor(clientID id.ID, date time.Time, total string) *order.Order {
	o := makeOrder(date, total)
	o.ClientID = clientID
	return o
}

func makePaymentFor(clientID id.ID, date time.Time, amount string) *payment.Payment {
	p := makePayment(date, amount)
	p.ClientID = clientID
	return p
}

// --- Tests ---

func TestService_Balance(t *testing.T) {
	svc, clientID, _, _ := newFixture()
	period := types.Period{Year: 2026, Month: time.March}

	b, err := svc.Balance(context.Background(), clientID, period)
	require.NoError(t, err)

	assert.True(t, b.PreviousBalance.Equal(types.MustMoney("15000")))
	assert.True(t, b.FinalPayable.Equal(types.MustMoney("40000")))
}

func TestService_Generate(t *testing.T) {
	svc, clientID, invoices, settings := newFixture()
	period := types.Period{Year: 2026, Month: time.March}

	view, inv, err := svc.Generate(context.Background(), clientID, period)
	require.NoError(t, err)

	assert.Equal(t, "INV-1", view.InvoiceNumber)
	assert.True(t, view.GrandTotal.Equal(types.MustMoney("40000")))
	assert.Equal(t, "Forty Thousand Rupees Only", view.AmountInWords)

	// Snapshot persisted with frozen figures and items in ledger order.
	require.Len(t, invoices.created, 1)
	stored := invoices.created[0]
	assert.Equal(t, "INV-1", stored.Number)
	assert.Equal(t, "2026-03", stored.PeriodKey)
	assert.True(t, stored.FinalPayable.Equal(types.MustMoney("40000")))

	items := invoices.items[inv.ID]
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].LineNo)
	assert.True(t, items[0].Date.Before(items[1].Date))

	// Advisory counter advanced past the allocated number.
	assert.Equal(t, int64(2), settings.settings.NextInvoiceNumber)
	assert.Equal(t, 1, settings.updates)
}

func TestService_Preview_DoesNotPersist(t *testing.T) {
	svc, clientID, invoices, settings := newFixture()
	period := types.Period{Year: 2026, Month: time.March}

	view, err := svc.Preview(context.Background(), clientID, period)
	require.NoError(t, err)

	assert.Equal(t, "INV-1", view.InvoiceNumber)
	assert.True(t, view.GrandTotal.Equal(types.MustMoney("40000")))

	assert.Empty(t, invoices.created)
	assert.Equal(t, 0, settings.updates)
	assert.Equal(t, int64(1), settings.settings.NextInvoiceNumber)
}

func TestService_Generate_UnknownClient(t *testing.T) {
	svc, _, _, _ := newFixture()
	period := types.Period{Year: 2026, Month: time.March}

	_, _, err := svc.Generate(context.Background(), id.New(), period)
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_ViewFromStored(t *testing.T) {
	svc, clientID, _, _ := newFixture()
	period := types.Period{Year: 2026, Month: time.March}

	_, inv, err := svc.Generate(context.Background(), clientID, period)
	require.NoError(t, err)

	stored, err := svc.GetInvoice(context.Background(), inv.ID)
	require.NoError(t, err)

	view, err := svc.ViewFromStored(context.Background(), stored)
	require.NoError(t, err)

	// Figures come from the frozen snapshot.
	assert.True(t, view.GrandTotal.Equal(types.MustMoney("40000")))
	assert.Equal(t, "INV-1", view.InvoiceNumber)
	assert.Equal(t, "March 2026", view.PeriodLabel)
	assert.Len(t, view.Items, 2)
}
