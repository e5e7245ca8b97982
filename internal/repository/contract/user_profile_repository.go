package contract

import (
	"context"

	"stoic-companion-be/internal/entity"

	"github.com/google/uuid"
)

type UserProfileRepository interface {
	// Upsert inserts or replaces the profile row for profile.UserId.
	Upsert(ctx context.Context, profile *entity.UserProfile) error
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserProfile, error)
}
