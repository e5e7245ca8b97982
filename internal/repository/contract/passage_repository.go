package contract

import (
	"context"

	"stoic-companion-be/internal/entity"
	"stoic-companion-be/internal/repository/specification"
)

// ScoredPassage wraps a Passage with its cosine similarity to the query
type ScoredPassage struct {
	Passage    *entity.Passage
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type PassageRepository interface {
	Create(ctx context.Context, passage *entity.Passage) error
	CreateBulk(ctx context.Context, passages []*entity.Passage) error
	UpdateEmbedding(ctx context.Context, id string, embedding []float32) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Passage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Passage, error)
	FindPendingEmbedding(ctx context.Context, limit int) ([]*entity.Passage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore returns embedded passages ordered by similarity,
	// filtered by threshold. Passages without an embedding are skipped.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredPassage, error)
}
