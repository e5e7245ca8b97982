package specification

import "gorm.io/gorm"

// PendingEmbedding selects passages the ingestion consumer has not
// processed yet.
type PendingEmbedding struct{}

func (s PendingEmbedding) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("embedding IS NULL")
}
