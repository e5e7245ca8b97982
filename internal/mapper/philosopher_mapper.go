package mapper

import (
	"encoding/json"

	"stoic-companion-be/internal/entity"
	"stoic-companion-be/internal/model"

	"gorm.io/datatypes"
)

type PhilosopherMapper struct{}

func NewPhilosopherMapper() *PhilosopherMapper {
	return &PhilosopherMapper{}
}

func (m *PhilosopherMapper) ToEntity(p *model.Philosopher) *entity.Philosopher {
	if p == nil {
		return nil
	}

	var coreThemes []string
	if len(p.CoreThemes) > 0 {
		_ = json.Unmarshal(p.CoreThemes, &coreThemes)
	}

	var matchingCriteria []string
	if len(p.MatchingCriteria) > 0 {
		_ = json.Unmarshal(p.MatchingCriteria, &matchingCriteria)
	}

	return &entity.Philosopher{
		Id:               p.Id,
		Name:             p.Name,
		Era:              p.Era,
		Biography:        p.Biography,
		CoreThemes:       coreThemes,
		TeachingStyle:    p.TeachingStyle,
		MatchingCriteria: matchingCriteria,
		CreatedAt:        p.CreatedAt,
	}
}

func (m *PhilosopherMapper) ToModel(p *entity.Philosopher) *model.Philosopher {
	if p == nil {
		return nil
	}

	coreThemes, _ := json.Marshal(p.CoreThemes)
	matchingCriteria, _ := json.Marshal(p.MatchingCriteria)

	return &model.Philosopher{
		Id:               p.Id,
		Name:             p.Name,
		Era:              p.Era,
		Biography:        p.Biography,
		CoreThemes:       datatypes.JSON(coreThemes),
		TeachingStyle:    p.TeachingStyle,
		MatchingCriteria: datatypes.JSON(matchingCriteria),
		CreatedAt:        p.CreatedAt,
	}
}

func (m *PhilosopherMapper) ToEntities(philosophers []*model.Philosopher) []*entity.Philosopher {
	entities := make([]*entity.Philosopher, len(philosophers))
	for i, p := range philosophers {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *PhilosopherMapper) ToModels(philosophers []*entity.Philosopher) []*model.Philosopher {
	models := make([]*model.Philosopher, len(philosophers))
	for i, p := range philosophers {
		models[i] = m.ToModel(p)
	}
	return models
}
