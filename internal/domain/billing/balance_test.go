package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tradebill/internal/core/id"
	"tradebill/internal/core/types"
	"tradebill/internal/domain/documents/order"
	"tradebill/internal/domain/documents/payment"
)

func makeOrder(date time.Time, total string) *order.Order {
	o := order.New(id.New())
	o.Date = date
	o.Total = decimal.NullDecimal{Decimal: types.MustMoney(total), Valid: true}
	return o
}

func makePayment(date time.Time, amount string) *payment.Payment {
	p := payment.New(id.New())
	p.Date = date
	p.Amount = decimal.NullDecimal{Decimal: types.MustMoney(amount), Valid: true}
	return p
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeBalance_EndToEnd(t *testing.T) {
	period := types.Period{Year: 2026, Month: time.March}
	opening := types.MustMoney("5000")

	orders := []*order.Order{
		makeOrder(day(2026, time.February, 10), "20000"),
		makeOrder(day(2026, time.March, 5), "12000"),
		makeOrder(day(2026, time.March, 20), "18000"),
	}
	payments := []*payment.Payment{
		makePayment(day(2026, time.February, 15), "10000"),
		makePayment(day(2026, time.March, 8), "5000"),
	}

	b := ComputeBalance(opening, period, orders, payments)

	// previousBalance = 5000 + 20000 - 10000
	assert.True(t, b.PreviousBalance.Equal(types.MustMoney("15000")),
		"previousBalance = %s", b.PreviousBalance)
	// finalPayable = 30000 + 15000 - 5000
	assert.True(t, b.FinalPayable.Equal(types.MustMoney("40000")),
		"finalPayable = %s", b.FinalPayable)
	assert.True(t, b.OrdersTotal.Equal(types.MustMoney("30000")))
	assert.True(t, b.PaymentsTotal.Equal(types.MustMoney("5000")))
}

func TestComputeBalance_Idempotent(t *testing.T) {
	period := types.Period{Year: 2026, Month: time.March}
	opening := types.MustMoney("1234.56")

	orders := []*order.Order{
		makeOrder(day(2026, time.January, 3), "999.99"),
		makeOrder(day(2026, time.March, 1), "0.01"),
	}
	payments := []*payment.Payment{
		makePayment(day(2026, time.March, 31), "500"),
	}

	first := ComputeBalance(opening, period, orders, payments)
	second := ComputeBalance(opening, period, orders, payments)

	assert.True(t, first.FinalPayable.Equal(second.FinalPayable))
	assert.True(t, first.PreviousBalance.Equal(second.PreviousBalance))
	assert.True(t, first.OrdersTotal.Equal(second.OrdersTotal))
	assert.True(t, first.PaymentsTotal.Equal(second.PaymentsTotal))
}

func TestComputeBalance_ZeroActivity(t *testing.T) {
	opening := types.MustMoney("7500.25")

	for _, period := range []types.Period{
		{Year: 2024, Month: time.January},
		{Year: 2026, Month: time.June},
		{Year: 2030, Month: time.December},
	} {
		b := ComputeBalance(opening, period, nil, nil)
		assert.True(t, b.FinalPayable.Equal(opening),
			"period %s: finalPayable = %s", period, b.FinalPayable)
		assert.True(t, b.PreviousBalance.Equal(opening))
	}
}

func TestComputeBalance_PartitionExcludesFuture(t *testing.T) {
	period := types.Period{Year: 2026, Month: time.March}

	orders := []*order.Order{
		makeOrder(day(2026, time.February, 28), "100"), // previous
		makeOrder(day(2026, time.March, 1), "200"),     // current
		makeOrder(day(2026, time.March, 31), "300"),    // current
		makeOrder(day(2026, time.April, 1), "5000"),    // after: dropped
		makeOrder(day(2027, time.January, 1), "9000"),  // after: dropped
	}
	payments := []*payment.Payment{
		makePayment(day(2025, time.December, 31), "50"), // previous
		makePayment(day(2026, time.April, 2), "7777"),   // after: dropped
	}

	b := ComputeBalance(types.Zero(), period, orders, payments)

	assert.True(t, b.PreviousOrdersTotal.Equal(types.MustMoney("100")))
	assert.True(t, b.OrdersTotal.Equal(types.MustMoney("500")))
	assert.True(t, b.PreviousPaymentsTotal.Equal(types.MustMoney("50")))
	assert.True(t, b.PaymentsTotal.Equal(types.Zero()))

	// finalPayable = 500 + (0 + 100 - 50) - 0
	assert.True(t, b.FinalPayable.Equal(types.MustMoney("550")))
}

func TestComputeBalance_AdditiveConsistency(t *testing.T) {
	period := types.Period{Year: 2026, Month: time.March}
	opening := types.MustMoney("0.07")

	// Two-decimal inputs must reconcile exactly, with no drift.
	orders := []*order.Order{
		makeOrder(day(2026, time.January, 1), "0.10"),
		makeOrder(day(2026, time.January, 2), "0.20"),
		makeOrder(day(2026, time.March, 3), "1111.11"),
		makeOrder(day(2026, time.March, 4), "2222.22"),
	}
	payments := []*payment.Payment{
		makePayment(day(2026, time.February, 1), "0.15"),
		makePayment(day(2026, time.March, 2), "3333.30"),
	}

	b := ComputeBalance(opening, period, orders, payments)

	wantPrev := opening.Add(b.PreviousOrdersTotal).Sub(b.PreviousPaymentsTotal)
	assert.True(t, b.PreviousBalance.Equal(wantPrev))

	wantFinal := b.OrdersTotal.Add(b.PreviousBalance).Sub(b.PaymentsTotal)
	assert.True(t, b.FinalPayable.Equal(wantFinal))

	// 3333.33 + (0.07 + 0.30 - 0.15) - 3333.30 = 0.25
	assert.True(t, b.FinalPayable.Equal(types.MustMoney("0.25")),
		"finalPayable = %s", b.FinalPayable)
}

func TestComputeBalance_NegativeNotClamped(t *testing.T) {
	period := types.Period{Year: 2026, Month: time.March}

	orders := []*order.Order{
		makeOrder(day(2026, time.March, 1), "1000"),
	}
	payments := []*payment.Payment{
		makePayment(day(2026, time.March, 2), "2500"),
	}

	b := ComputeBalance(types.Zero(), period, orders, payments)

	assert.True(t, b.FinalPayable.IsNegative())
	assert.True(t, b.FinalPayable.Equal(types.MustMoney("-1500")),
		"finalPayable = %s", b.FinalPayable)
}

func TestComputeBalance_NullAmountsReadAsZero(t *testing.T) {
	period := types.Period{Year: 2026, Month: time.March}

	dirty := order.New(id.New())
	dirty.Date = day(2026, time.March, 5)
	// Total left NULL

	orders := []*order.Order{
		dirty,
		makeOrder(day(2026, time.March, 6), "750"),
	}

	nullPay := payment.New(id.New())
	nullPay.Date = day(2026, time.March, 7)

	b := ComputeBalance(types.Zero(), period, orders, []*payment.Payment{nullPay})

	assert.True(t, b.OrdersTotal.Equal(types.MustMoney("750")))
	assert.True(t, b.PaymentsTotal.Equal(types.Zero()))
	assert.True(t, b.FinalPayable.Equal(types.MustMoney("750")))
}
