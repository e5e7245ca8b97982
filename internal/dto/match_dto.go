package dto

import (
	"time"

	"github.com/google/uuid"
)

type OnboardingAnswer struct {
	QuestionId string `json:"question_id" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
}

type MatchPhilosopherRequest struct {
	UserId  uuid.UUID          `json:"user_id" validate:"required"`
	Answers []OnboardingAnswer `json:"answers" validate:"required,min=1,dive"`
}

type MatchPhilosopherResponse struct {
	PhilosopherId   string  `json:"philosopher_id"`
	PhilosopherName string  `json:"philosopher_name"`
	MatchReason     string  `json:"match_reason"`
	Confidence      float64 `json:"confidence"`
}

type UserProfileResponse struct {
	UserId        uuid.UUID           `json:"user_id"`
	PhilosopherId string              `json:"philosopher_id"`
	MatchReason   string              `json:"match_reason"`
	Philosopher   PhilosopherResponse `json:"philosopher"`
	Answers       []OnboardingAnswer  `json:"answers"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     *time.Time          `json:"updated_at"`
}
