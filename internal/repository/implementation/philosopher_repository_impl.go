package implementation

import (
	"context"
	"errors"

	"stoic-companion-be/internal/entity"
	"stoic-companion-be/internal/mapper"
	"stoic-companion-be/internal/model"
	"stoic-companion-be/internal/repository/contract"
	"stoic-companion-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PhilosopherRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PhilosopherMapper
}

func NewPhilosopherRepository(db *gorm.DB) contract.PhilosopherRepository {
	return &PhilosopherRepositoryImpl{
		db:     db,
		mapper: mapper.NewPhilosopherMapper(),
	}
}

func (r *PhilosopherRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PhilosopherRepositoryImpl) Create(ctx context.Context, philosopher *entity.Philosopher) error {
	m := r.mapper.ToModel(philosopher)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*philosopher = *r.mapper.ToEntity(m)
	return nil
}

func (r *PhilosopherRepositoryImpl) CreateBulk(ctx context.Context, philosophers []*entity.Philosopher) error {
	if len(philosophers) == 0 {
		return nil
	}
	models := make([]*model.Philosopher, len(philosophers))
	for i, p := range philosophers {
		models[i] = r.mapper.ToModel(p)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*philosophers[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *PhilosopherRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Philosopher, error) {
	var m model.Philosopher
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PhilosopherRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Philosopher, error) {
	var models []*model.Philosopher
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PhilosopherRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Philosopher{}).Count(&count).Error
	return count, err
}
