package mapper

import (
	"encoding/json"
	"time"

	"stoic-companion-be/internal/entity"
	"stoic-companion-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type PassageMapper struct{}

func NewPassageMapper() *PassageMapper {
	return &PassageMapper{}
}

func (m *PassageMapper) ToEntity(p *model.Passage) *entity.Passage {
	if p == nil {
		return nil
	}

	var contexts []string
	if len(p.Contexts) > 0 {
		_ = json.Unmarshal(p.Contexts, &contexts)
	}

	var embedding []float32
	if p.Embedding != nil {
		embedding = p.Embedding.Slice()
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Passage{
		Id:                p.Id,
		Text:              p.Text,
		Author:            p.Author,
		Work:              p.Work,
		Contexts:          contexts,
		TimeOfDayAffinity: p.TimeOfDayAffinity,
		HeartRateAffinity: p.HeartRateAffinity,
		Quotability:       p.Quotability,
		Embedding:         embedding,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

func (m *PassageMapper) ToModel(p *entity.Passage) *model.Passage {
	if p == nil {
		return nil
	}

	contexts, _ := json.Marshal(p.Contexts)

	var embedding *pgvector.Vector
	if p.Embedding != nil {
		v := pgvector.NewVector(p.Embedding)
		embedding = &v
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Passage{
		Id:                p.Id,
		Text:              p.Text,
		Author:            p.Author,
		Work:              p.Work,
		Contexts:          datatypes.JSON(contexts),
		TimeOfDayAffinity: p.TimeOfDayAffinity,
		HeartRateAffinity: p.HeartRateAffinity,
		Quotability:       p.Quotability,
		Embedding:         embedding,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

func (m *PassageMapper) ToEntities(passages []*model.Passage) []*entity.Passage {
	entities := make([]*entity.Passage, len(passages))
	for i, p := range passages {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *PassageMapper) ToModels(passages []*entity.Passage) []*model.Passage {
	models := make([]*model.Passage, len(passages))
	for i, p := range passages {
		models[i] = m.ToModel(p)
	}
	return models
}
