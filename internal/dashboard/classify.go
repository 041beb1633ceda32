package dashboard

import "github.com/darziapp/darzi-backend/pkg/enums"

// CategoryCounts are the true per-category order counts within a window.
type CategoryCounts struct {
	NewStitch  int64 `json:"new_stitch"`
	Alteration int64 `json:"alteration"`
}

// CategorySlices are the pie-slice weights derived from CategoryCounts.
type CategorySlices struct {
	NewStitch  float64 `json:"new_stitch"`
	Alteration float64 `json:"alteration"`
}

// sliceEpsilon keeps a pie chart renderable when the window has no orders at
// all; it is never mixed into real counts.
const sliceEpsilon = 0.001

// classify tallies orders inside the window by category. Orders with an
// unknown or empty category count as new stitching work, the shop default.
// Orders without a usable placement date are skipped.
func classify(records []OrderRecord, w Window) CategoryCounts {
	var counts CategoryCounts
	for _, rec := range records {
		if rec.PlacedAt.IsZero() || !w.Contains(rec.PlacedAt) {
			continue
		}
		switch rec.Category {
		case enums.OrderCategoryAlteration:
			counts.Alteration++
		default:
			counts.NewStitch++
		}
	}
	return counts
}

// SliceWeights converts counts to pie-slice weights. When both counts are
// zero it substitutes a tiny equal weight per slice so the chart still
// draws; the zero counts themselves are reported unchanged alongside.
func (c CategoryCounts) SliceWeights() CategorySlices {
	if c.NewStitch == 0 && c.Alteration == 0 {
		return CategorySlices{NewStitch: sliceEpsilon, Alteration: sliceEpsilon}
	}
	return CategorySlices{
		NewStitch:  float64(c.NewStitch),
		Alteration: float64(c.Alteration),
	}
}
