package retrieval

import "strings"

// Fragment tables for query composition. Keyed strictly by enum value so the
// same context always composes the same query.
var stressFragments = map[StressLevel]string{
	StressLow:      "feeling calm and at ease",
	StressNormal:   "seeking everyday wisdom",
	StressElevated: "feeling stressed and seeking perspective",
	StressHigh:     "feeling overwhelmed and anxious",
}

var timeFragments = map[TimeOfDay]string{
	Morning:   "starting the day with purpose",
	Afternoon: "in the middle of the day",
	Evening:   "reflecting on the day",
	Night:     "winding down for rest",
}

const activityFragment = "during physical activity"

// ElevatedTag is added to the filter set whenever stress is elevated or high,
// matching passages tagged for a raised heart rate.
const ElevatedTag = "elevated"

// Compose maps a context to a natural-language query and a set of discrete
// filter tags. Pure and deterministic: no I/O, no randomness, no failure
// mode. Fragment order is fixed (stress, time of day, activity) and joined
// with ", ".
func Compose(rc Context) (queryText string, filterTags []string) {
	fragments := []string{stressFragments[rc.StressLevel]}
	if rc.TimeOfDay != nil {
		fragments = append(fragments, timeFragments[*rc.TimeOfDay])
	}
	if rc.IsActive {
		fragments = append(fragments, activityFragment)
	}
	queryText = strings.Join(fragments, ", ")

	filterTags = []string{rc.PrimaryContext()}
	if rc.StressIsElevated() {
		filterTags = append(filterTags, ElevatedTag)
	}
	return queryText, filterTags
}
