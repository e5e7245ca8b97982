package contract

import (
	"context"

	"stoic-companion-be/internal/entity"
	"stoic-companion-be/internal/repository/specification"
)

type PhilosopherRepository interface {
	Create(ctx context.Context, philosopher *entity.Philosopher) error
	CreateBulk(ctx context.Context, philosophers []*entity.Philosopher) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Philosopher, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Philosopher, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
