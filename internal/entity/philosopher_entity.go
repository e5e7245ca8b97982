package entity

import "time"

// Philosopher is a public profile plus the criteria used by onboarding
// matching.
type Philosopher struct {
	Id               string
	Name             string
	Era              string
	Biography        string
	CoreThemes       []string
	TeachingStyle    string
	MatchingCriteria []string
	CreatedAt        time.Time
}
