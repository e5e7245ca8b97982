package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type Passage struct {
	Id                string `gorm:"type:text;primaryKey"`
	Text              string `gorm:"type:text;not null"`
	Author            string `gorm:"type:text;not null;index"`
	Work              string `gorm:"type:text"`
	Contexts          datatypes.JSON
	TimeOfDayAffinity string           `gorm:"type:text"`
	HeartRateAffinity string           `gorm:"type:text"`
	Quotability       int              `gorm:"default:5"`
	Embedding         *pgvector.Vector `gorm:"type:vector(768)"` // 768 dims: text-embedding-004 / nomic-embed-text
	CreatedAt         time.Time        `gorm:"autoCreateTime"`
	UpdatedAt         time.Time        `gorm:"autoUpdateTime"`
}

func (Passage) TableName() string {
	return "passages"
}
