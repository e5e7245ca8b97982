package implementation

import (
	"context"
	"errors"

	"stoic-companion-be/internal/entity"
	"stoic-companion-be/internal/mapper"
	"stoic-companion-be/internal/model"
	"stoic-companion-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserProfileMapper
}

func NewUserProfileRepository(db *gorm.DB) contract.UserProfileRepository {
	return &UserProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserProfileMapper(),
	}
}

// Upsert replaces the whole row on conflict. Re-running onboarding
// overwrites the previous match.
func (r *UserProfileRepositoryImpl) Upsert(ctx context.Context, profile *entity.UserProfile) error {
	m := r.mapper.ToModel(profile)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"philosopher_id", "match_reason", "answers", "updated_at"}),
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserProfileRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserProfile, error) {
	var m model.UserProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
