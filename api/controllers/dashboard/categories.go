package dashboard

import (
	"net/http"

	"github.com/darziapp/darzi-backend/api/responses"
	"github.com/darziapp/darzi-backend/internal/dashboard"
	pkgerrors "github.com/darziapp/darzi-backend/pkg/errors"
	"github.com/darziapp/darzi-backend/pkg/logger"
)

type categoriesResponse struct {
	Range  dashboard.Selector       `json:"range"`
	Counts dashboard.CategoryCounts `json:"counts"`
	Slices dashboard.CategorySlices `json:"slices"`
}

// Categories serves the pie-chart breakdown for the requested range selector.
func Categories(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		shopID, err := shopIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params, err := parseRangeParams(r, svc.Location())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		breakdown, err := svc.CategoryBreakdown(r.Context(), shopID, params.Selector, params.Custom)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, categoriesResponse{
			Range:  params.Selector,
			Counts: breakdown.Counts,
			Slices: breakdown.Slices,
		})
	}
}
