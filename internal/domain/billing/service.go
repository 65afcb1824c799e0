package billing

import (
	"context"
	"fmt"
	"time"

	"tradebill/internal/core/entity"
	"tradebill/internal/core/id"
	"tradebill/internal/core/tx"
	"tradebill/internal/core/types"
	"tradebill/internal/domain/catalogs/client"
	"tradebill/internal/domain/company"
	"tradebill/internal/domain/documents/invoice"
	"tradebill/internal/domain/documents/order"
	"tradebill/pkg/logger"
	"tradebill/pkg/numerator"
)

// ChangeLogger records entity changes to the audit log.
type ChangeLogger interface {
	LogChange(ctx context.Context, entityType string, entityID id.ID, action string, changes map[string]any) error
}

// Service orchestrates invoice generation: ledger snapshot reads,
// the pure balance computation, view assembly, number allocation,
// and snapshot persistence.
type Service struct {
	clients   client.Repository
	settings  company.Repository
	ledger    LedgerReader
	invoices  invoice.Repository
	numerator *numerator.Service
	txManager tx.Manager
	audit     ChangeLogger
}

// NewService creates a billing service. audit may be nil.
func NewService(
	clients client.Repository,
	settings company.Repository,
	ledger LedgerReader,
	invoices invoice.Repository,
	num *numerator.Service,
	txManager tx.Manager,
	audit ChangeLogger,
) *Service {
	return &Service{
		clients:   clients,
		settings:  settings,
		ledger:    ledger,
		invoices:  invoices,
		numerator: num,
		txManager: txManager,
		audit:     audit,
	}
}

// snapshot is one client's ledger state read for a period.
type snapshot struct {
	client        *client.Client
	companyInfo   *company.Settings
	currentOrders []*order.Order
	balance       Balance
}

// readSnapshot loads everything the computation needs in one pass.
func (s *Service) readSnapshot(ctx context.Context, clientID id.ID, period types.Period) (*snapshot, error) {
	cl, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	co, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load company settings: %w", err)
	}

	cutoff := period.Start()

	currentOrders, err := s.ledger.OrdersForPeriod(ctx, clientID, period)
	if err != nil {
		return nil, fmt.Errorf("read current orders: %w", err)
	}
	previousOrders, err := s.ledger.OrdersBefore(ctx, clientID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("read previous orders: %w", err)
	}
	currentPayments, err := s.ledger.PaymentsForPeriod(ctx, clientID, period)
	if err != nil {
		return nil, fmt.Errorf("read current payments: %w", err)
	}
	previousPayments, err := s.ledger.PaymentsBefore(ctx, clientID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("read previous payments: %w", err)
	}

	allOrders := append(previousOrders, currentOrders...)
	allPayments := append(previousPayments, currentPayments...)

	balance := ComputeBalance(cl.OpeningBalanceOrZero(), period, allOrders, allPayments)

	return &snapshot{
		client:        cl,
		companyInfo:   co,
		currentOrders: currentOrders,
		balance:       balance,
	}, nil
}

// Balance computes the reconciled balance for one client and period
// without assembling or persisting anything.
func (s *Service) Balance(ctx context.Context, clientID id.ID, period types.Period) (Balance, error) {
	snap, err := s.readSnapshot(ctx, clientID, period)
	if err != nil {
		return Balance{}, err
	}
	return snap.balance, nil
}

// Preview assembles an InvoiceView without allocating a number or
// persisting a snapshot. The displayed number is the next one the
// sequence would hand out.
func (s *Service) Preview(ctx context.Context, clientID id.ID, period types.Period) (*InvoiceView, error) {
	snap, err := s.readSnapshot(ctx, clientID, period)
	if err != nil {
		return nil, err
	}

	number := fmt.Sprintf("%s-%d", snap.companyInfo.PrefixOrDefault(), snap.companyInfo.NextInvoiceNumber)
	return s.assembleView(snap, period, number, time.Now().UTC())
}

// Generate assembles the invoice, allocates the next number, and
// persists the header and item snapshot. The computation itself is
// idempotent; number allocation is the only stateful step.
func (s *Service) Generate(ctx context.Context, clientID id.ID, period types.Period) (*InvoiceView, *invoice.Invoice, error) {
	snap, err := s.readSnapshot(ctx, clientID, period)
	if err != nil {
		return nil, nil, err
	}

	// Strict allocation: invoice numbers must stay gapless.
	cfg := numerator.InvoiceConfig(snap.companyInfo.PrefixOrDefault())
	number, err := s.numerator.GetNextNumber(ctx, cfg, nil, period.Start())
	if err != nil {
		return nil, nil, fmt.Errorf("allocate invoice number: %w", err)
	}

	view, err := s.assembleView(snap, period, number, time.Now().UTC())
	if err != nil {
		return nil, nil, err
	}

	inv := snapshotInvoice(view, clientID)

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.invoices.Create(ctx, inv); err != nil {
			return fmt.Errorf("persist invoice: %w", err)
		}
		if err := s.invoices.SaveItems(ctx, inv.ID, inv.Items); err != nil {
			return fmt.Errorf("persist invoice items: %w", err)
		}

		// Keep the advisory counter on settings in step with the sequence.
		snap.companyInfo.NextInvoiceNumber = numerator.ParseNumber(number) + 1
		if err := s.settings.Update(ctx, snap.companyInfo); err != nil {
			return fmt.Errorf("advance invoice counter: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if s.audit != nil {
		auditErr := s.audit.LogChange(ctx, "invoice", inv.ID, "create", map[string]any{
			"number":       inv.Number,
			"client_id":    clientID.String(),
			"period":       period.String(),
			"finalPayable": view.GrandTotal.String(),
		})
		if auditErr != nil {
			logger.Warn(ctx, "audit log failed", "invoice", inv.Number, "error", auditErr)
		}
	}

	logger.Info(ctx, "invoice generated",
		"number", inv.Number,
		"client_id", clientID.String(),
		"period", period.String(),
		"final_payable", view.GrandTotal.String(),
	)

	return view, inv, nil
}

// GetInvoice loads a stored invoice with its items.
func (s *Service) GetInvoice(ctx context.Context, invoiceID id.ID) (*invoice.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	items, err := s.invoices.GetItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return inv, nil
}

// ListInvoices lists stored invoices.
func (s *Service) ListInvoices(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	res, err := s.invoices.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return res.Items, res.TotalCount, nil
}

// ViewFromStored rebuilds an InvoiceView from a persisted snapshot
// so stored invoices render through the same renderers. Figures come
// from the frozen snapshot, not from a recomputation.
func (s *Service) ViewFromStored(ctx context.Context, inv *invoice.Invoice) (*InvoiceView, error) {
	cl, err := s.clients.GetByID(ctx, inv.ClientID)
	if err != nil {
		return nil, err
	}
	co, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	period, err := types.ParsePeriod(inv.PeriodKey)
	if err != nil {
		return nil, err
	}

	items := make([]LineItem, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, LineItem{
			OrderID:  it.OrderID,
			Date:     it.Date,
			Material: it.Material,
			Weight:   it.Weight,
			Rate:     it.Rate,
			Amount:   it.Amount,
		})
	}

	balance := Balance{
		OrdersTotal:     inv.OrdersTotal,
		PaymentsTotal:   inv.PaymentsTotal,
		PreviousBalance: inv.PreviousBalance,
		FinalPayable:    inv.FinalPayable,
	}

	return Assemble(co, clientInfo(cl), period, items, balance, inv.Number, inv.Date)
}

func (s *Service) assembleView(snap *snapshot, period types.Period, number string, date time.Time) (*InvoiceView, error) {
	items := lineItems(snap.currentOrders)
	return Assemble(snap.companyInfo, clientInfo(snap.client), period, items, snap.balance, number, date)
}

// lineItems maps current-period orders to invoice rows, preserving
// the ledger's ascending-date order.
func lineItems(orders []*order.Order) []LineItem {
	items := make([]LineItem, 0, len(orders))
	for _, o := range orders {
		items = append(items, LineItem{
			OrderID:  o.ID,
			Date:     o.Date,
			Material: o.Material,
			Weight:   o.WeightOrZero(),
			Rate:     o.RateOrZero(),
			Amount:   o.TotalOrZero(),
		})
	}
	return items
}

func clientInfo(cl *client.Client) ClientInfo {
	info := ClientInfo{
		ID:   cl.ID,
		Name: cl.Name,
	}
	if cl.Address != nil {
		info.Address = *cl.Address
	}
	if cl.City != nil {
		info.City = *cl.City
	}
	if cl.State != nil {
		info.State = *cl.State
	}
	if cl.Pincode != nil {
		info.Pincode = *cl.Pincode
	}
	if cl.Phone != nil {
		info.Phone = *cl.Phone
	}
	if cl.GSTNumber != nil {
		info.GSTNumber = *cl.GSTNumber
	}
	return info
}

// snapshotInvoice freezes a view into the persisted document form.
func snapshotInvoice(view *InvoiceView, clientID id.ID) *invoice.Invoice {
	inv := &invoice.Invoice{
		ClientID:        clientID,
		PeriodKey:       view.Period.String(),
		OrdersTotal:     view.Balance.OrdersTotal,
		PreviousBalance: view.Balance.PreviousBalance,
		PaymentsTotal:   view.Balance.PaymentsTotal,
		FinalPayable:    view.Balance.FinalPayable,
		AmountInWords:   view.AmountInWords,
	}
	inv.Document = entity.NewDocument()
	inv.Number = view.InvoiceNumber
	inv.Date = view.InvoiceDate

	items := make([]invoice.Item, 0, len(view.Items))
	for i, it := range view.Items {
		items = append(items, invoice.Item{
			LineID:   id.New(),
			LineNo:   i + 1,
			OrderID:  it.OrderID,
			Date:     it.Date,
			Material: it.Material,
			Weight:   it.Weight,
			Rate:     it.Rate,
			Amount:   it.Amount,
		})
	}
	inv.Items = items

	return inv
}
