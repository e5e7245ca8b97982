package knowledge

// Wire types for the knowledge-base API. Field names follow the backend's
// JSON contract, not the internal entity shapes.

// HealthContext carries the caller's physiological snapshot.
type HealthContext struct {
	StressLevel          string   `json:"stress_level"`
	TimeOfDay            string   `json:"time_of_day,omitempty"`
	IsActive             bool     `json:"is_active"`
	HeartRate            *float64 `json:"heart_rate,omitempty"`
	HeartRateVariability *float64 `json:"hrv,omitempty"`
}

// QuoteRequest asks for the single best-matching passage.
type QuoteRequest struct {
	Context       HealthContext `json:"context"`
	Query         string        `json:"query,omitempty"`
	PhilosopherId string        `json:"philosopher_id,omitempty"`
}

// Quote is one passage as served by the backend.
type Quote struct {
	Id       string   `json:"id"`
	Text     string   `json:"text"`
	Author   string   `json:"author"`
	Work     string   `json:"work,omitempty"`
	Contexts []string `json:"contexts,omitempty"`
}

// QuoteResponse is the top-1 search result.
type QuoteResponse struct {
	Quote           Quote    `json:"quote"`
	SimilarityScore *float64 `json:"similarity_score,omitempty"`
	Philosopher     string   `json:"philosopher,omitempty"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// OnboardingAnswer is one answered onboarding question.
type OnboardingAnswer struct {
	QuestionId string `json:"question_id"`
	Answer     string `json:"answer"`
}

// MatchRequest asks which philosopher fits the user best.
type MatchRequest struct {
	UserId  string             `json:"user_id"`
	Answers []OnboardingAnswer `json:"answers"`
}

// MatchResponse names the matched philosopher.
type MatchResponse struct {
	PhilosopherId   string  `json:"philosopher_id"`
	PhilosopherName string  `json:"philosopher_name"`
	MatchReason     string  `json:"match_reason"`
	Confidence      float64 `json:"confidence"`
}

// Philosopher is a public philosopher profile.
type Philosopher struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Era           string   `json:"era"`
	Biography     string   `json:"biography"`
	CoreThemes    []string `json:"core_themes"`
	TeachingStyle string   `json:"teaching_style"`
}

// PhilosophersResponse wraps the profile list.
type PhilosophersResponse struct {
	Philosophers []Philosopher `json:"philosophers"`
}
