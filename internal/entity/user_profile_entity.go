package entity

import (
	"time"

	"github.com/google/uuid"
)

type OnboardingAnswer struct {
	QuestionId string `json:"question_id"`
	Answer     string `json:"answer"`
}

// UserProfile stores the outcome of philosopher matching for one user.
type UserProfile struct {
	UserId               uuid.UUID
	MatchedPhilosopherId string
	MatchReason          string
	OnboardingAnswers    []OnboardingAnswer
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}
