package entity

import (
	"time"
)

// Passage is one unit of the knowledge base. Immutable after ingestion:
// the id never changes and the embedding is generated exactly once.
type Passage struct {
	Id                string
	Text              string
	Author            string
	Work              string
	Contexts          []string
	TimeOfDayAffinity string
	HeartRateAffinity string
	Quotability       int
	Embedding         []float32 // nil until the ingestion consumer has run
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// HasAnyContext reports whether the passage's tag set intersects the given
// tags, or carries the "any" sentinel.
func (p *Passage) HasAnyContext(tags []string) bool {
	for _, c := range p.Contexts {
		if c == "any" {
			return true
		}
		for _, t := range tags {
			if c == t {
				return true
			}
		}
	}
	return false
}
