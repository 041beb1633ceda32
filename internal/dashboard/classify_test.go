package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/darziapp/darzi-backend/pkg/enums"
)

func orderAt(at time.Time, category enums.OrderCategory) OrderRecord {
	return OrderRecord{ID: uuid.New(), PlacedAt: at, Category: category}
}

func TestClassifyCounts(t *testing.T) {
	w := dayWindow(testNow, testNow)
	records := []OrderRecord{
		orderAt(testNow, enums.OrderCategoryNewStitch),
		orderAt(testNow, enums.OrderCategoryAlteration),
		orderAt(testNow, enums.OrderCategoryAlteration),
		orderAt(testNow.AddDate(0, 0, -3), enums.OrderCategoryNewStitch), // outside window
	}

	counts := classify(records, w)
	if counts.NewStitch != 1 || counts.Alteration != 2 {
		t.Errorf("counts = %+v, want {NewStitch:1 Alteration:2}", counts)
	}
}

func TestClassifyUnknownCategoryDefaultsToNewStitch(t *testing.T) {
	w := dayWindow(testNow, testNow)
	records := []OrderRecord{
		orderAt(testNow, enums.OrderCategory("")),
		orderAt(testNow, enums.OrderCategory("embroidery")),
	}

	counts := classify(records, w)
	if counts.NewStitch != 2 || counts.Alteration != 0 {
		t.Errorf("counts = %+v, want unknown categories folded into NewStitch", counts)
	}
}

func TestClassifySkipsUndatedOrders(t *testing.T) {
	w := dayWindow(testNow, testNow)
	records := []OrderRecord{
		{ID: uuid.New(), Category: enums.OrderCategoryAlteration}, // no date
		orderAt(testNow, enums.OrderCategoryAlteration),
	}

	counts := classify(records, w)
	if counts.Alteration != 1 {
		t.Errorf("alteration = %d, want 1 (undated order skipped)", counts.Alteration)
	}
}

func TestSliceWeights(t *testing.T) {
	counts := CategoryCounts{NewStitch: 7, Alteration: 3}
	slices := counts.SliceWeights()
	if slices.NewStitch != 7 || slices.Alteration != 3 {
		t.Errorf("slices = %+v, want true counts as weights", slices)
	}
}

func TestSliceWeightsEpsilonOnlyWhenEmpty(t *testing.T) {
	empty := CategoryCounts{}
	slices := empty.SliceWeights()
	if slices.NewStitch != sliceEpsilon || slices.Alteration != sliceEpsilon {
		t.Errorf("slices = %+v, want equal epsilon weights", slices)
	}

	// One real count disables the epsilon substitution entirely.
	oneSided := CategoryCounts{NewStitch: 5}
	slices = oneSided.SliceWeights()
	if slices.NewStitch != 5 || slices.Alteration != 0 {
		t.Errorf("slices = %+v, want {5 0}", slices)
	}
}
