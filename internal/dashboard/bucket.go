package dashboard

import (
	"time"

	"github.com/shopspring/decimal"
)

// Granularity is the bucket width a selector maps to.
type Granularity int

const (
	// GranularityDay buckets by calendar date.
	GranularityDay Granularity = iota
	// GranularityWeekday buckets by day-of-week name, used by the seven-day
	// view where each weekday appears exactly once.
	GranularityWeekday
	// GranularityWeek buckets by the Monday starting each week.
	GranularityWeek
	// GranularityMonth buckets by calendar month.
	GranularityMonth
)

// customDailySpanMax is the widest custom range still bucketed per-day.
// Anything wider switches to month buckets.
const customDailySpanMax = 31

const (
	dayKeyFormat   = "2006-01-02"
	monthKeyFormat = "2006-01"
)

// granularityFor maps a selector (and, for custom ranges, the resolved span)
// to its bucket width.
func granularityFor(sel Selector, spanDays int) Granularity {
	switch sel {
	case SelectorToday, SelectorYesterday:
		return GranularityDay
	case SelectorLastWeek:
		return GranularityWeekday
	case SelectorLastMonth:
		return GranularityWeek
	case SelectorLast6Months:
		return GranularityMonth
	case SelectorCustom:
		if spanDays <= customDailySpanMax {
			return GranularityDay
		}
		return GranularityMonth
	default:
		return GranularityDay
	}
}

// bucketKey maps a timestamp to its bucket identity under the granularity.
func bucketKey(t time.Time, g Granularity) string {
	switch g {
	case GranularityWeekday:
		return t.Weekday().String()[:3]
	case GranularityWeek:
		return mondayOf(t).Format(dayKeyFormat)
	case GranularityMonth:
		return t.Format(monthKeyFormat)
	default:
		return t.Format(dayKeyFormat)
	}
}

// weekdayOrder is the fixed presentation order of the seven-day view.
var weekdayOrder = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// canonicalKeys enumerates, in display order, every bucket the window
// covers. The list is derived from the window alone so empty buckets are
// present in the output as zeros and series length never varies with data.
func canonicalKeys(sel Selector, w Window) []string {
	g := granularityFor(sel, windowSpanDays(w))
	switch g {
	case GranularityWeekday:
		return append([]string(nil), weekdayOrder...)
	case GranularityWeek:
		keys := make([]string, 0, 6)
		for cur := mondayOf(w.Start); !cur.After(w.End); cur = cur.AddDate(0, 0, 7) {
			keys = append(keys, cur.Format(dayKeyFormat))
		}
		return keys
	case GranularityMonth:
		keys := make([]string, 0, 12)
		start := time.Date(w.Start.Year(), w.Start.Month(), 1, 0, 0, 0, 0, w.Start.Location())
		for cur := start; !cur.After(w.End); cur = cur.AddDate(0, 1, 0) {
			keys = append(keys, cur.Format(monthKeyFormat))
		}
		return keys
	default:
		keys := make([]string, 0, windowSpanDays(w))
		for cur := startOfDay(w.Start); !cur.After(w.End); cur = cur.AddDate(0, 0, 1) {
			keys = append(keys, cur.Format(dayKeyFormat))
		}
		return keys
	}
}

// Bucket accumulates amount and record count for one chart position.
type Bucket struct {
	Amount decimal.Decimal
	Count  int
}

// BucketMap indexes buckets by their canonical key.
type BucketMap map[string]Bucket

// bucketize folds tuples into buckets. Negative amounts are clamped to zero
// before accumulation so one bad row cannot drag a bucket below zero, but
// the record still counts toward the bucket.
func bucketize(tuples []Tuple, g Granularity) BucketMap {
	out := make(BucketMap, len(tuples))
	for _, tup := range tuples {
		amount := tup.Amount
		if amount.IsNegative() {
			amount = decimal.Zero
		}
		key := bucketKey(tup.At, g)
		b := out[key]
		b.Amount = b.Amount.Add(amount)
		b.Count++
		out[key] = b
	}
	return out
}
