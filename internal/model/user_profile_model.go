package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserProfile struct {
	UserId        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PhilosopherId string    `gorm:"type:text;not null"`
	MatchReason   string    `gorm:"type:text"`
	Answers       datatypes.JSON
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
