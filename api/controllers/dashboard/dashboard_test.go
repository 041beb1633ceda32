package dashboard

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/darziapp/darzi-backend/api/middleware"
	"github.com/darziapp/darzi-backend/internal/dashboard"
	"github.com/darziapp/darzi-backend/pkg/logger"
)

type testDashboardService struct {
	earningsFn   func(ctx context.Context, shopID uuid.UUID, sel dashboard.Selector, custom *dashboard.CustomRange) (dashboard.DisplaySeries, error)
	categoriesFn func(ctx context.Context, shopID uuid.UUID, sel dashboard.Selector, custom *dashboard.CustomRange) (dashboard.CategoryBreakdown, error)
	loc          *time.Location
}

func (s *testDashboardService) EarningsSeries(ctx context.Context, shopID uuid.UUID, sel dashboard.Selector, custom *dashboard.CustomRange) (dashboard.DisplaySeries, error) {
	if s.earningsFn != nil {
		return s.earningsFn(ctx, shopID, sel, custom)
	}
	return dashboard.DisplaySeries{}, nil
}

func (s *testDashboardService) CategoryBreakdown(ctx context.Context, shopID uuid.UUID, sel dashboard.Selector, custom *dashboard.CustomRange) (dashboard.CategoryBreakdown, error) {
	if s.categoriesFn != nil {
		return s.categoriesFn(ctx, shopID, sel, custom)
	}
	return dashboard.CategoryBreakdown{}, nil
}

func (s *testDashboardService) Location() *time.Location {
	if s.loc != nil {
		return s.loc
	}
	return time.UTC
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func TestEarningsDefaultsToToday(t *testing.T) {
	shopID := uuid.New()
	called := false
	svc := &testDashboardService{
		earningsFn: func(ctx context.Context, sid uuid.UUID, sel dashboard.Selector, custom *dashboard.CustomRange) (dashboard.DisplaySeries, error) {
			called = true
			if sid != shopID {
				t.Fatalf("unexpected shop %s", sid)
			}
			if sel != dashboard.SelectorToday {
				t.Fatalf("expected today selector got %s", sel)
			}
			if custom != nil {
				t.Fatal("expected nil custom range")
			}
			return dashboard.DisplaySeries{
				Labels: []string{"", "", "Today", "", ""},
				Values: []int64{0, 0, 1450, 0, 0},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/earnings", nil)
	req = req.WithContext(middleware.WithShopID(req.Context(), shopID.String()))
	resp := httptest.NewRecorder()

	Earnings(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if !called {
		t.Fatal("expected service called")
	}

	var envelope struct {
		Data earningsResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.Range != dashboard.SelectorToday {
		t.Fatalf("expected today range got %s", envelope.Data.Range)
	}
	if len(envelope.Data.Labels) != 5 || envelope.Data.Labels[2] != "Today" {
		t.Fatalf("unexpected labels %v", envelope.Data.Labels)
	}
	if envelope.Data.Values[2] != 1450 {
		t.Fatalf("unexpected values %v", envelope.Data.Values)
	}
}

func TestEarningsCustomRangePassesBounds(t *testing.T) {
	shopID := uuid.New()
	svc := &testDashboardService{
		earningsFn: func(ctx context.Context, sid uuid.UUID, sel dashboard.Selector, custom *dashboard.CustomRange) (dashboard.DisplaySeries, error) {
			if sel != dashboard.SelectorCustom {
				t.Fatalf("expected custom selector got %s", sel)
			}
			if custom == nil {
				t.Fatal("expected custom range")
			}
			if got := custom.Start.Format("2006-01-02"); got != "2026-03-01" {
				t.Fatalf("unexpected start %s", got)
			}
			if got := custom.End.Format("2006-01-02"); got != "2026-03-15" {
				t.Fatalf("unexpected end %s", got)
			}
			return dashboard.DisplaySeries{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/earnings?range=custom&from=2026-03-01&to=2026-03-15", nil)
	req = req.WithContext(middleware.WithShopID(req.Context(), shopID.String()))
	resp := httptest.NewRecorder()

	Earnings(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
}

func TestEarningsCustomRangeMissingBounds(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/earnings?range=custom&from=2026-03-01", nil)
	req = req.WithContext(middleware.WithShopID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()

	Earnings(&testDashboardService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestEarningsRejectsBoundsWithoutCustom(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/earnings?range=today&from=2026-03-01", nil)
	req = req.WithContext(middleware.WithShopID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()

	Earnings(&testDashboardService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestEarningsInvalidSelector(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/earnings?range=fortnight", nil)
	req = req.WithContext(middleware.WithShopID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()

	Earnings(&testDashboardService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestEarningsInvertedCustomRange(t *testing.T) {
	svc := &testDashboardService{
		earningsFn: func(ctx context.Context, sid uuid.UUID, sel dashboard.Selector, custom *dashboard.CustomRange) (dashboard.DisplaySeries, error) {
			return dashboard.DisplaySeries{}, dashboard.ErrInvalidRange
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/earnings?range=custom&from=2026-03-15&to=2026-03-01", nil)
	req = req.WithContext(middleware.WithShopID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()

	Earnings(svc, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Error.Code != "INVALID_RANGE" {
		t.Fatalf("expected INVALID_RANGE got %s", envelope.Error.Code)
	}
}

func TestEarningsMissingShopContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/earnings", nil)
	resp := httptest.NewRecorder()

	Earnings(&testDashboardService{}, testLogger())(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
}

func TestCategoriesYesterday(t *testing.T) {
	shopID := uuid.New()
	svc := &testDashboardService{
		categoriesFn: func(ctx context.Context, sid uuid.UUID, sel dashboard.Selector, custom *dashboard.CustomRange) (dashboard.CategoryBreakdown, error) {
			if sel != dashboard.SelectorYesterday {
				t.Fatalf("expected yesterday selector got %s", sel)
			}
			counts := dashboard.CategoryCounts{NewStitch: 3, Alteration: 1}
			return dashboard.CategoryBreakdown{Counts: counts, Slices: counts.SliceWeights()}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/categories?range=yesterday", nil)
	req = req.WithContext(middleware.WithShopID(req.Context(), shopID.String()))
	resp := httptest.NewRecorder()

	Categories(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}

	var envelope struct {
		Data categoriesResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.Counts.NewStitch != 3 || envelope.Data.Counts.Alteration != 1 {
		t.Fatalf("unexpected counts %+v", envelope.Data.Counts)
	}
	if envelope.Data.Slices.NewStitch != 3 || envelope.Data.Slices.Alteration != 1 {
		t.Fatalf("unexpected slices %+v", envelope.Data.Slices)
	}
}

func TestCategoriesEmptyUsesEpsilon(t *testing.T) {
	svc := &testDashboardService{
		categoriesFn: func(ctx context.Context, sid uuid.UUID, sel dashboard.Selector, custom *dashboard.CustomRange) (dashboard.CategoryBreakdown, error) {
			counts := dashboard.CategoryCounts{}
			return dashboard.CategoryBreakdown{Counts: counts, Slices: counts.SliceWeights()}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/categories", nil)
	req = req.WithContext(middleware.WithShopID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()

	Categories(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}

	var envelope struct {
		Data categoriesResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.Counts.NewStitch != 0 || envelope.Data.Counts.Alteration != 0 {
		t.Fatalf("expected zero counts got %+v", envelope.Data.Counts)
	}
	if envelope.Data.Slices.NewStitch != 0.001 || envelope.Data.Slices.Alteration != 0.001 {
		t.Fatalf("expected epsilon slices got %+v", envelope.Data.Slices)
	}
}
