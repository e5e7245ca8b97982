package dto

type HealthContext struct {
	StressLevel          string   `json:"stress_level" validate:"required,oneof=low normal elevated high"`
	TimeOfDay            string   `json:"time_of_day" validate:"omitempty,oneof=morning afternoon evening night"`
	IsActive             bool     `json:"is_active"`
	HeartRate            *float64 `json:"heart_rate"`
	HeartRateVariability *float64 `json:"hrv"`
}

type ContextQuoteRequest struct {
	Context       HealthContext `json:"context" validate:"required"`
	Query         string        `json:"query"`
	PhilosopherId string        `json:"philosopher_id"`
}

type Quote struct {
	Id       string   `json:"id"`
	Text     string   `json:"text"`
	Author   string   `json:"author"`
	Work     string   `json:"work,omitempty"`
	Contexts []string `json:"contexts,omitempty"`
}

type ContextQuoteResponse struct {
	Quote           Quote    `json:"quote"`
	SimilarityScore *float64 `json:"similarity_score,omitempty"`
	Philosopher     string   `json:"philosopher,omitempty"`
}
