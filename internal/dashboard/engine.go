package dashboard

import (
	"context"
	"time"

	"github.com/darziapp/darzi-backend/pkg/logger"
)

// ComputeEarningsSeries runs the full earnings pipeline for one selector:
// resolve the window, normalize both record streams into it, bucket each
// stream, reconcile them, and project the result onto the canonical key
// list. The inputs are plain slices so the pipeline stays deterministic and
// testable without a database.
func ComputeEarningsSeries(
	ctx context.Context,
	logg *logger.Logger,
	orders []OrderRecord,
	payments []PaymentRecord,
	sel Selector,
	custom *CustomRange,
	now time.Time,
) (DisplaySeries, error) {
	window, err := Resolve(sel, custom, now)
	if err != nil {
		return DisplaySeries{}, err
	}

	orderTuples, dropped := normalizeOrders(orders, window)
	if dropped > 0 && logg != nil {
		logg.Warn(logg.WithFields(ctx, map[string]any{
			"dropped":  dropped,
			"selector": string(sel),
		}), "dashboard: order records without placement date dropped")
	}
	paymentTuples := normalizePayments(payments, window)

	g := granularityFor(sel, windowSpanDays(window))
	merged := reconcile(bucketize(orderTuples, g), bucketize(paymentTuples, g))

	return present(sel, canonicalKeys(sel, window), merged), nil
}

// ComputeCategoryCounts tallies orders by category over the classification
// window of the selector (which for the yesterday selector covers yesterday
// only, unlike its two-bar earnings window).
func ComputeCategoryCounts(
	ctx context.Context,
	orders []OrderRecord,
	sel Selector,
	custom *CustomRange,
	now time.Time,
) (CategoryCounts, error) {
	window, err := ResolveClassify(sel, custom, now)
	if err != nil {
		return CategoryCounts{}, err
	}
	return classify(orders, window), nil
}
