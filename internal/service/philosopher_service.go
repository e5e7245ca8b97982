package service

import (
	"context"
	"strings"

	"stoic-companion-be/internal/dto"
	"stoic-companion-be/internal/repository/memory"
	"stoic-companion-be/internal/repository/unitofwork"
)

type IPhilosopherService interface {
	ListPhilosophers(ctx context.Context) (*dto.ListPhilosophersResponse, error)
}

type philosopherService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.PhilosopherCache
}

func NewPhilosopherService(uowFactory unitofwork.RepositoryFactory, cache *memory.PhilosopherCache) IPhilosopherService {
	return &philosopherService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *philosopherService) ListPhilosophers(ctx context.Context) (*dto.ListPhilosophersResponse, error) {
	philosophers, found := s.cache.GetAll()
	if !found {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		var err error
		philosophers, err = uow.PhilosopherRepository().FindAll(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.SaveAll(philosophers)
	}

	resp := &dto.ListPhilosophersResponse{
		Philosophers: make([]dto.PhilosopherResponse, len(philosophers)),
	}
	for i, p := range philosophers {
		resp.Philosophers[i] = dto.PhilosopherResponse{
			Id:            p.Id,
			Name:          p.Name,
			Era:           p.Era,
			Biography:     p.Biography,
			CoreThemes:    p.CoreThemes,
			TeachingStyle: p.TeachingStyle,
		}
	}
	return resp, nil
}

// philosopherKey slugs an author name the way philosopher ids are written,
// e.g. "Marcus Aurelius" becomes "marcus_aurelius".
func philosopherKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
