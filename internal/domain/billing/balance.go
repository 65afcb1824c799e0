package billing

import (
	"tradebill/internal/core/types"
	"tradebill/internal/domain/documents/order"
	"tradebill/internal/domain/documents/payment"
)

// ComputeBalance reconciles a client's ledger snapshot against a
// billing period. Pure function: same snapshot and period always
// produce the same Balance, with no side effects, so it is safe to
// call repeatedly and concurrently.
//
// Partitioning: a record is "current" iff its date falls in the
// period's year+month, "previous" iff its date is strictly before
// the period's first day. Records dated after the period are
// excluded from both sides; billing stops at the selected month.
//
// NULL or malformed amounts read as zero so that one dirty
// historical record never blocks invoice generation.
func ComputeBalance(openingBalance types.Money, period types.Period, orders []*order.Order, payments []*payment.Payment) Balance {
	var b Balance
	b.OrdersTotal = types.Zero()
	b.PaymentsTotal = types.Zero()
	b.PreviousOrdersTotal = types.Zero()
	b.PreviousPaymentsTotal = types.Zero()

	for _, o := range orders {
		switch {
		case period.Contains(o.Date):
			b.OrdersTotal = b.OrdersTotal.Add(o.TotalOrZero())
		case period.IsBefore(o.Date):
			b.PreviousOrdersTotal = b.PreviousOrdersTotal.Add(o.TotalOrZero())
		}
	}

	for _, p := range payments {
		switch {
		case period.Contains(p.Date):
			b.PaymentsTotal = b.PaymentsTotal.Add(p.AmountOrZero())
		case period.IsBefore(p.Date):
			b.PreviousPaymentsTotal = b.PreviousPaymentsTotal.Add(p.AmountOrZero())
		}
	}

	b.PreviousBalance = openingBalance.
		Add(b.PreviousOrdersTotal).
		Sub(b.PreviousPaymentsTotal)

	b.FinalPayable = b.OrdersTotal.
		Add(b.PreviousBalance).
		Sub(b.PaymentsTotal)

	return b
}
