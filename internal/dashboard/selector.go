package dashboard

import (
	"fmt"

	pkgerrors "github.com/darziapp/darzi-backend/pkg/errors"
)

// Selector is the user-facing range choice driving both the window bounds
// and the bucket granularity of a chart.
type Selector string

const (
	SelectorToday       Selector = "today"
	SelectorYesterday   Selector = "yesterday"
	SelectorLastWeek    Selector = "last_week"
	SelectorLastMonth   Selector = "last_month"
	SelectorLast6Months Selector = "last_6_months"
	SelectorCustom      Selector = "custom"
)

var validSelectors = []Selector{
	SelectorToday,
	SelectorYesterday,
	SelectorLastWeek,
	SelectorLastMonth,
	SelectorLast6Months,
	SelectorCustom,
}

// IsValid reports whether the value is a known range selector.
func (s Selector) IsValid() bool {
	for _, candidate := range validSelectors {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSelector converts raw query input into a Selector.
func ParseSelector(value string) (Selector, error) {
	for _, candidate := range validSelectors {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid range selector %q", value))
}
