package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/darziapp/darzi-backend/pkg/db/models"
	"github.com/darziapp/darzi-backend/pkg/logger"
)

// OrderSource supplies the orders of a shop for aggregation. Orders are
// fetched whole because category classification and legacy-date handling
// need fields a windowed query would have to return anyway.
type OrderSource interface {
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]models.Order, error)
}

// PaymentSource supplies the ledger entries of a shop inside a window.
type PaymentSource interface {
	ListByShopWindow(ctx context.Context, shopID uuid.UUID, start, end time.Time) ([]models.Payment, error)
}

// CategoryBreakdown pairs true counts with the render-safe slice weights.
type CategoryBreakdown struct {
	Counts CategoryCounts `json:"counts"`
	Slices CategorySlices `json:"slices"`
}

// Service computes chart-ready dashboard figures for one shop.
type Service interface {
	EarningsSeries(ctx context.Context, shopID uuid.UUID, sel Selector, custom *CustomRange) (DisplaySeries, error)
	CategoryBreakdown(ctx context.Context, shopID uuid.UUID, sel Selector, custom *CustomRange) (CategoryBreakdown, error)
	Location() *time.Location
}

type service struct {
	orders   OrderSource
	payments PaymentSource
	logg     *logger.Logger
	loc      *time.Location
	now      func() time.Time
}

// NewService wires the dashboard service. The location fixes which calendar
// "today" means for the shop; all window math happens in it.
func NewService(orders OrderSource, payments PaymentSource, logg *logger.Logger, loc *time.Location) (Service, error) {
	if orders == nil {
		return nil, fmt.Errorf("order source is required")
	}
	if payments == nil {
		return nil, fmt.Errorf("payment source is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		orders:   orders,
		payments: payments,
		logg:     logg,
		loc:      loc,
		now:      time.Now,
	}, nil
}

func (s *service) Location() *time.Location {
	return s.loc
}

func (s *service) EarningsSeries(ctx context.Context, shopID uuid.UUID, sel Selector, custom *CustomRange) (DisplaySeries, error) {
	now := s.now().In(s.loc)
	window, err := Resolve(sel, custom, now)
	if err != nil {
		return DisplaySeries{}, err
	}

	orderModels, err := s.orders.ListByShop(ctx, shopID)
	if err != nil {
		return DisplaySeries{}, fmt.Errorf("listing orders: %w", err)
	}
	paymentModels, err := s.payments.ListByShopWindow(ctx, shopID, window.Start, window.End)
	if err != nil {
		return DisplaySeries{}, fmt.Errorf("listing payments: %w", err)
	}

	ctx = s.logg.WithShopID(ctx, shopID.String())
	return ComputeEarningsSeries(ctx, s.logg, toOrderRecords(orderModels, s.loc), toPaymentRecords(paymentModels, s.loc), sel, custom, now)
}

func (s *service) CategoryBreakdown(ctx context.Context, shopID uuid.UUID, sel Selector, custom *CustomRange) (CategoryBreakdown, error) {
	now := s.now().In(s.loc)
	if _, err := ResolveClassify(sel, custom, now); err != nil {
		return CategoryBreakdown{}, err
	}

	orderModels, err := s.orders.ListByShop(ctx, shopID)
	if err != nil {
		return CategoryBreakdown{}, fmt.Errorf("listing orders: %w", err)
	}

	counts, err := ComputeCategoryCounts(ctx, toOrderRecords(orderModels, s.loc), sel, custom, now)
	if err != nil {
		return CategoryBreakdown{}, err
	}
	return CategoryBreakdown{Counts: counts, Slices: counts.SliceWeights()}, nil
}

func toOrderRecords(orders []models.Order, loc *time.Location) []OrderRecord {
	records := make([]OrderRecord, 0, len(orders))
	for _, o := range orders {
		rec := OrderRecord{
			ID:       o.ID,
			Total:    o.Total,
			Category: o.Category,
		}
		if o.PlacedAt != nil {
			rec.PlacedAt = o.PlacedAt.In(loc)
		}
		for _, item := range o.Items {
			rec.Items = append(rec.Items, OrderItemRecord{MaterialCost: item.MaterialCost})
		}
		records = append(records, rec)
	}
	return records
}

func toPaymentRecords(payments []models.Payment, loc *time.Location) []PaymentRecord {
	records := make([]PaymentRecord, 0, len(payments))
	for _, p := range payments {
		records = append(records, PaymentRecord{
			ID:      p.ID,
			OrderID: p.OrderID,
			Amount:  p.Amount,
			PaidAt:  p.PaidAt.In(loc),
		})
	}
	return records
}
