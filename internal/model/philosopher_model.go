package model

import (
	"time"

	"gorm.io/datatypes"
)

type Philosopher struct {
	Id               string `gorm:"type:text;primaryKey"`
	Name             string `gorm:"type:text;not null"`
	Era              string `gorm:"type:text"`
	Biography        string `gorm:"type:text"`
	CoreThemes       datatypes.JSON
	TeachingStyle    string `gorm:"type:text"`
	MatchingCriteria datatypes.JSON
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (Philosopher) TableName() string {
	return "philosophers"
}
