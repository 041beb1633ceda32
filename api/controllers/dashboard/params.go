package dashboard

import (
	"net/http"
	"strings"
	"time"

	"github.com/darziapp/darzi-backend/api/validators"
	"github.com/darziapp/darzi-backend/internal/dashboard"
	pkgerrors "github.com/darziapp/darzi-backend/pkg/errors"
)

// rangeParams carries the parsed chart range query. Custom is nil for every
// selector except custom.
type rangeParams struct {
	Selector dashboard.Selector
	Custom   *dashboard.CustomRange
}

// parseRangeParams reads the range selector plus optional from/to bounds.
// Defaults to today when the range parameter is absent. The from and to dates
// are interpreted in the dashboard's configured location so calendar days
// line up with the shop's clock.
func parseRangeParams(r *http.Request, loc *time.Location) (rangeParams, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("range"))
	if raw == "" {
		return rangeParams{Selector: dashboard.SelectorToday}, nil
	}

	sel, err := dashboard.ParseSelector(raw)
	if err != nil {
		return rangeParams{}, err
	}

	from, err := validators.ParseQueryDate(r, "from", loc)
	if err != nil {
		return rangeParams{}, err
	}
	to, err := validators.ParseQueryDate(r, "to", loc)
	if err != nil {
		return rangeParams{}, err
	}

	if sel != dashboard.SelectorCustom {
		if from != nil || to != nil {
			return rangeParams{}, pkgerrors.New(pkgerrors.CodeValidation, "from/to are only valid with range=custom")
		}
		return rangeParams{Selector: sel}, nil
	}

	if from == nil || to == nil {
		return rangeParams{}, pkgerrors.New(pkgerrors.CodeValidation, "range=custom requires from and to")
	}
	return rangeParams{
		Selector: sel,
		Custom:   &dashboard.CustomRange{Start: *from, End: *to},
	}, nil
}
