package implementation

import (
	"context"
	"errors"

	"stoic-companion-be/internal/entity"
	"stoic-companion-be/internal/mapper"
	"stoic-companion-be/internal/model"
	"stoic-companion-be/internal/repository/contract"
	"stoic-companion-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type PassageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PassageMapper
}

func NewPassageRepository(db *gorm.DB) contract.PassageRepository {
	return &PassageRepositoryImpl{
		db:     db,
		mapper: mapper.NewPassageMapper(),
	}
}

func (r *PassageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PassageRepositoryImpl) Create(ctx context.Context, passage *entity.Passage) error {
	m := r.mapper.ToModel(passage)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*passage = *r.mapper.ToEntity(m)
	return nil
}

func (r *PassageRepositoryImpl) CreateBulk(ctx context.Context, passages []*entity.Passage) error {
	if len(passages) == 0 {
		return nil
	}
	models := make([]*model.Passage, len(passages))
	for i, p := range passages {
		models[i] = r.mapper.ToModel(p)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*passages[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *PassageRepositoryImpl) UpdateEmbedding(ctx context.Context, id string, embedding []float32) error {
	v := pgvector.NewVector(embedding)
	return r.db.WithContext(ctx).
		Model(&model.Passage{}).
		Where("id = ?", id).
		Update("embedding", v).Error
}

func (r *PassageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Passage, error) {
	var m model.Passage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PassageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Passage, error) {
	var models []*model.Passage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PassageRepositoryImpl) FindPendingEmbedding(ctx context.Context, limit int) ([]*entity.Passage, error) {
	if limit <= 0 {
		limit = 100
	}
	return r.FindAll(ctx,
		specification.PendingEmbedding{},
		specification.OrderBy{Field: "id"},
		specification.Pagination{Limit: limit},
	)
}

func (r *PassageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Passage{}).Count(&count).Error
	return count, err
}

type scoredRow struct {
	model.Passage
	Similarity float64
}

// similarityQuery builds the vector search. The id tiebreak keeps the cut at
// Limit stable when passages share a similarity score.
func (r *PassageRepositoryImpl) similarityQuery(db *gorm.DB, queryVector pgvector.Vector, limit int, threshold float64) *gorm.DB {
	return db.Table("passages").
		Select("passages.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("embedding IS NOT NULL").
		Where("1 - (embedding <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC, passages.id ASC").
		Limit(limit)
}

// SearchSimilarWithScore orders by cosine similarity. pgvector's <=> is
// cosine distance, so similarity = 1 - distance.
func (r *PassageRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredPassage, error) {
	if limit <= 0 {
		limit = 20
	}

	var results []scoredRow
	queryVector := pgvector.NewVector(embedding)

	err := r.similarityQuery(r.db.WithContext(ctx), queryVector, limit, threshold).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredPassage, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredPassage{
			Passage:    r.mapper.ToEntity(&res.Passage),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
