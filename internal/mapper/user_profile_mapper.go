package mapper

import (
	"encoding/json"
	"time"

	"stoic-companion-be/internal/entity"
	"stoic-companion-be/internal/model"

	"gorm.io/datatypes"
)

type UserProfileMapper struct{}

func NewUserProfileMapper() *UserProfileMapper {
	return &UserProfileMapper{}
}

func (m *UserProfileMapper) ToEntity(p *model.UserProfile) *entity.UserProfile {
	if p == nil {
		return nil
	}

	var answers []entity.OnboardingAnswer
	if len(p.Answers) > 0 {
		_ = json.Unmarshal(p.Answers, &answers)
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.UserProfile{
		UserId:               p.UserId,
		MatchedPhilosopherId: p.PhilosopherId,
		MatchReason:          p.MatchReason,
		OnboardingAnswers:    answers,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            updatedAt,
	}
}

func (m *UserProfileMapper) ToModel(p *entity.UserProfile) *model.UserProfile {
	if p == nil {
		return nil
	}

	answers, _ := json.Marshal(p.OnboardingAnswers)

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.UserProfile{
		UserId:        p.UserId,
		PhilosopherId: p.MatchedPhilosopherId,
		MatchReason:   p.MatchReason,
		Answers:       datatypes.JSON(answers),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}
