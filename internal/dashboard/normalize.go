package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/darziapp/darzi-backend/pkg/enums"
)

// OrderRecord is the aggregation view of an order. PlacedAt carries the zero
// time when the source row had no usable date; such records are dropped
// during normalization and counted, never guessed at.
type OrderRecord struct {
	ID       uuid.UUID
	PlacedAt time.Time
	Total    *decimal.Decimal
	Items    []OrderItemRecord
	Category enums.OrderCategory
}

// OrderItemRecord carries the per-line material cost used when the order has
// no recorded total.
type OrderItemRecord struct {
	MaterialCost decimal.Decimal
}

// PaymentRecord is the aggregation view of a ledger entry.
type PaymentRecord struct {
	ID      uuid.UUID
	OrderID uuid.UUID
	Amount  decimal.Decimal
	PaidAt  time.Time
}

// Tuple is a normalized (timestamp, amount) pair ready for bucketing.
type Tuple struct {
	At     time.Time
	Amount decimal.Decimal
}

// orderAmount resolves the earnings value of an order: the recorded total
// when present, otherwise the sum of line-item material costs, otherwise
// zero.
func orderAmount(rec OrderRecord) decimal.Decimal {
	if rec.Total != nil {
		return *rec.Total
	}
	sum := decimal.Zero
	for _, item := range rec.Items {
		sum = sum.Add(item.MaterialCost)
	}
	return sum
}

// normalizeOrders filters orders to the window and flattens them into
// tuples. Orders without a usable placement date are dropped and counted.
func normalizeOrders(records []OrderRecord, w Window) ([]Tuple, int) {
	tuples := make([]Tuple, 0, len(records))
	dropped := 0
	for _, rec := range records {
		if rec.PlacedAt.IsZero() {
			dropped++
			continue
		}
		if !w.Contains(rec.PlacedAt) {
			continue
		}
		tuples = append(tuples, Tuple{At: rec.PlacedAt, Amount: orderAmount(rec)})
	}
	return tuples, dropped
}

// normalizePayments filters ledger entries to the window. Payment timestamps
// are NOT NULL at the source, so nothing is dropped here.
func normalizePayments(records []PaymentRecord, w Window) []Tuple {
	tuples := make([]Tuple, 0, len(records))
	for _, rec := range records {
		if !w.Contains(rec.PaidAt) {
			continue
		}
		tuples = append(tuples, Tuple{At: rec.PaidAt, Amount: rec.Amount})
	}
	return tuples
}
