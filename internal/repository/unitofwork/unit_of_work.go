package unitofwork

import (
	"context"

	"stoic-companion-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PassageRepository() contract.PassageRepository
	PhilosopherRepository() contract.PhilosopherRepository
	UserProfileRepository() contract.UserProfileRepository
}
