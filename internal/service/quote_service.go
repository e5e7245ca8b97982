package service

import (
	"context"
	"sort"

	"stoic-companion-be/internal/dto"
	"stoic-companion-be/internal/entity"
	"stoic-companion-be/internal/pkg/logger"
	"stoic-companion-be/internal/pkg/serverutils"
	"stoic-companion-be/internal/repository/contract"
	"stoic-companion-be/internal/repository/unitofwork"
	"stoic-companion-be/pkg/embedding"
	"stoic-companion-be/pkg/retrieval"

	"github.com/gofiber/fiber/v2"
)

type IQuoteService interface {
	ContextQuote(ctx context.Context, req *dto.ContextQuoteRequest) (*dto.ContextQuoteResponse, error)
}

type quoteService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	threshold         float64
	topK              int
	logger            logger.ILogger
}

func NewQuoteService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	threshold float64,
	topK int,
	log logger.ILogger,
) IQuoteService {
	return &quoteService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		threshold:         threshold,
		topK:              topK,
		logger:            log,
	}
}

// ContextQuote returns the single best passage for the caller's context.
// When no query text is supplied, one is composed from the context so the
// embedding always has something meaningful to encode.
func (s *quoteService) ContextQuote(ctx context.Context, req *dto.ContextQuoteRequest) (*dto.ContextQuoteResponse, error) {
	rc := healthContextToRetrieval(req.Context)
	queryText, filterTags := retrieval.Compose(rc)
	if req.Query != "" {
		queryText = req.Query
	}

	res, err := s.embeddingProvider.Generate(queryText, "RETRIEVAL_QUERY")
	if err != nil {
		s.logger.Error("quote-service", "query embedding failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, serverutils.NewAppError(fiber.StatusBadGateway, "embedding provider unavailable")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.PassageRepository().SearchSimilarWithScore(ctx, res.Values, s.topK, s.threshold)
	if err != nil {
		return nil, err
	}

	candidates := filterScored(scored, filterTags, req.PhilosopherId)
	if len(candidates) == 0 {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "no matching quote found")
	}

	// Similarity first, then quotability, then id for a stable winner.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Similarity != candidates[j].Similarity {
			return candidates[i].Similarity > candidates[j].Similarity
		}
		if candidates[i].Passage.Quotability != candidates[j].Passage.Quotability {
			return candidates[i].Passage.Quotability > candidates[j].Passage.Quotability
		}
		return candidates[i].Passage.Id < candidates[j].Passage.Id
	})

	best := candidates[0]
	s.logger.Info("quote-service", "quote served", map[string]interface{}{
		"passage_id": best.Passage.Id,
		"similarity": best.Similarity,
		"query":      queryText,
	})

	sim := best.Similarity
	return &dto.ContextQuoteResponse{
		Quote: dto.Quote{
			Id:       best.Passage.Id,
			Text:     best.Passage.Text,
			Author:   best.Passage.Author,
			Work:     best.Passage.Work,
			Contexts: best.Passage.Contexts,
		},
		SimilarityScore: &sim,
		Philosopher:     best.Passage.Author,
	}, nil
}

// filterScored applies the discrete tag filter on top of vector similarity.
// A passage survives when its tag set intersects the filter (or carries
// "any"), and, when a philosopher scope is given, when its author id
// matches.
func filterScored(scored []*contract.ScoredPassage, filterTags []string, philosopherId string) []*contract.ScoredPassage {
	out := make([]*contract.ScoredPassage, 0, len(scored))
	for _, sp := range scored {
		if len(filterTags) > 0 && !sp.Passage.HasAnyContext(filterTags) {
			continue
		}
		if philosopherId != "" && !authorMatches(sp.Passage, philosopherId) {
			continue
		}
		out = append(out, sp)
	}
	return out
}

func authorMatches(p *entity.Passage, philosopherId string) bool {
	return philosopherKey(p.Author) == philosopherId
}

func healthContextToRetrieval(hc dto.HealthContext) retrieval.Context {
	rc := retrieval.Context{
		StressLevel:          retrieval.StressLevel(hc.StressLevel),
		IsActive:             hc.IsActive,
		HeartRate:            hc.HeartRate,
		HeartRateVariability: hc.HeartRateVariability,
	}
	if hc.TimeOfDay != "" {
		rc.TimeOfDay = retrieval.TimeOfDayPtr(retrieval.TimeOfDay(hc.TimeOfDay))
	}
	return rc
}
