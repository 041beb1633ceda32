package dashboard

// DisplaySeries is the chart-ready output: parallel label and value slices
// of identical length. Values are whole currency units, rounded here and
// nowhere earlier.
type DisplaySeries struct {
	Labels []string `json:"labels"`
	Values []int64  `json:"values"`
}

// minVisualWidth is the fewest bars a chart renders without looking broken;
// narrower series get two empty buckets of padding on each side.
const minVisualWidth = 3

// present projects reconciled buckets onto the canonical key list, applying
// the display label substitutions and padding rules of the narrow selectors.
func present(sel Selector, keys []string, buckets BucketMap) DisplaySeries {
	labels := make([]string, 0, len(keys)+4)
	values := make([]int64, 0, len(keys)+4)

	switch sel {
	case SelectorToday:
		labels = append(labels, "Today")
		values = append(values, roundedValue(buckets, keys[0]))
	case SelectorYesterday:
		// Two day buckets rendered with a spacer so the bars read as a
		// comparison rather than a trend.
		labels = append(labels, "Yesterday", "", "Today")
		values = append(values, roundedValue(buckets, keys[0]), 0, roundedValue(buckets, keys[1]))
	default:
		for _, key := range keys {
			labels = append(labels, key)
			values = append(values, roundedValue(buckets, key))
		}
	}

	if len(labels) < minVisualWidth {
		labels = padLabels(labels)
		values = padValues(values)
	}
	return DisplaySeries{Labels: labels, Values: values}
}

func roundedValue(buckets BucketMap, key string) int64 {
	return buckets[key].Amount.Round(0).IntPart()
}

func padLabels(labels []string) []string {
	out := make([]string, 0, len(labels)+4)
	out = append(out, "", "")
	out = append(out, labels...)
	return append(out, "", "")
}

func padValues(values []int64) []int64 {
	out := make([]int64, 0, len(values)+4)
	out = append(out, 0, 0)
	out = append(out, values...)
	return append(out, 0, 0)
}
