package dashboard

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/darziapp/darzi-backend/api/middleware"
	"github.com/darziapp/darzi-backend/api/responses"
	"github.com/darziapp/darzi-backend/internal/dashboard"
	pkgerrors "github.com/darziapp/darzi-backend/pkg/errors"
	"github.com/darziapp/darzi-backend/pkg/logger"
)

type earningsResponse struct {
	Range  dashboard.Selector `json:"range"`
	Labels []string           `json:"labels"`
	Values []int64            `json:"values"`
}

// Earnings serves the bar-chart series for the requested range selector.
func Earnings(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
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

		series, err := svc.EarningsSeries(r.Context(), shopID, params.Selector, params.Custom)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, earningsResponse{
			Range:  params.Selector,
			Labels: series.Labels,
			Values: series.Values,
		})
	}
}

func shopIDFromRequest(r *http.Request) (uuid.UUID, error) {
	raw := middleware.ShopIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeForbidden, "shop context missing")
	}
	shopID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeForbidden, err, "invalid shop context")
	}
	return shopID, nil
}
