package dashboard

import (
	"fmt"
	"math"
	"time"

	pkgerrors "github.com/darziapp/darzi-backend/pkg/errors"
)

// Window is the inclusive calendar-day range a chart displays. Start is
// always midnight of its day and End the last instant of its day, in the
// location the reference time was supplied in.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, boundaries included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// CustomRange carries caller-supplied bounds for the custom selector. The
// bounds are day-normalized during resolution; only the calendar dates
// matter.
type CustomRange struct {
	Start time.Time
	End   time.Time
}

// ErrInvalidRange is returned when a custom range has its start after its
// end. Callers must surface it rather than swap the bounds.
var ErrInvalidRange = pkgerrors.New(pkgerrors.CodeInvalidRange, "custom range start is after end")

// Resolve computes the bar-chart window for the selector. For the yesterday
// selector the window spans yesterday and today so a day-over-day comparison
// has both bars; use ResolveClassify for the pie-chart window.
func Resolve(sel Selector, custom *CustomRange, now time.Time) (Window, error) {
	switch sel {
	case SelectorToday:
		return dayWindow(now, now), nil
	case SelectorYesterday:
		return dayWindow(now.AddDate(0, 0, -1), now), nil
	case SelectorLastWeek:
		return dayWindow(now.AddDate(0, 0, -6), now), nil
	case SelectorLastMonth:
		firstOfThis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Window{
			Start: firstOfThis.AddDate(0, -1, 0),
			End:   endOfDay(firstOfThis.AddDate(0, 0, -1)),
		}, nil
	case SelectorLast6Months:
		start := time.Date(now.Year(), now.Month()-5, 1, 0, 0, 0, 0, now.Location())
		return Window{Start: start, End: endOfDay(now)}, nil
	case SelectorCustom:
		return resolveCustom(custom)
	default:
		return Window{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown range selector %q", sel))
	}
}

// ResolveClassify computes the window used for category classification. It
// matches Resolve for every selector except yesterday, whose pie chart covers
// yesterday only while its bar chart also shows today.
func ResolveClassify(sel Selector, custom *CustomRange, now time.Time) (Window, error) {
	if sel == SelectorYesterday {
		y := now.AddDate(0, 0, -1)
		return dayWindow(y, y), nil
	}
	return Resolve(sel, custom, now)
}

func resolveCustom(custom *CustomRange) (Window, error) {
	if custom == nil {
		return Window{}, pkgerrors.New(pkgerrors.CodeValidation, "custom range bounds required")
	}
	w := Window{Start: startOfDay(custom.Start), End: endOfDay(custom.End)}
	if w.Start.After(w.End) {
		return Window{}, ErrInvalidRange
	}
	return w, nil
}

func dayWindow(first, last time.Time) Window {
	return Window{Start: startOfDay(first), End: endOfDay(last)}
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// windowSpanDays counts the calendar days the window covers, inclusive.
func windowSpanDays(w Window) int {
	start := startOfDay(w.Start)
	end := startOfDay(w.End)
	return int(math.Round(end.Sub(start).Hours()/24)) + 1
}

// mondayOf returns midnight of the Monday on or before t.
func mondayOf(t time.Time) time.Time {
	d := startOfDay(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
