package corpus

// Affinity sentinel accepted anywhere a passage tag can match any context.
const AffinityAny = "any"

// Passage is the retrievable unit of the knowledge base: a short excerpt of
// Stoic text with the metadata used for contextual filtering. A passage is
// immutable once loaded; Id is stable across corpus snapshots.
type Passage struct {
	Id                string   `json:"id"`
	Text              string   `json:"text"`
	Author            string   `json:"author"`
	Work              string   `json:"work,omitempty"`
	Contexts          []string `json:"contexts,omitempty"`
	TimeOfDayAffinity string   `json:"time_of_day_affinity,omitempty"` // "morning".."night", "any" or empty
	HeartRateAffinity string   `json:"heart_rate_affinity,omitempty"`  // "elevated", "resting", "any" or empty
	Quotability       int      `json:"quotability,omitempty"`          // 1-10, how well the text stands alone
}

// HasContext reports whether the passage carries the given topical tag.
func (p Passage) HasContext(tag string) bool {
	for _, c := range p.Contexts {
		if c == tag {
			return true
		}
	}
	return false
}
