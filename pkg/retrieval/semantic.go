package retrieval

import (
	"context"
	"log"

	"stoic-companion-be/pkg/corpus"
	"stoic-companion-be/pkg/knowledge"
)

// QuoteFetcher is the slice of the knowledge client the semantic strategy
// needs. Narrowed to an interface so tests can count and fail calls.
type QuoteFetcher interface {
	ContextQuote(ctx context.Context, req *knowledge.QuoteRequest) (*knowledge.QuoteResponse, error)
}

// SemanticStrategy retrieves a quote by embedding similarity through the
// knowledge-base service. Every failure mode - transport error, timeout,
// non-200 status, nothing above the similarity threshold - surfaces as a
// classified error so the orchestrator can fall through to the next
// strategy.
type SemanticStrategy struct {
	client        QuoteFetcher
	philosopherId string // optional scope, empty means unscoped
	logger        *log.Logger
}

func NewSemanticStrategy(client QuoteFetcher, philosopherId string, logger *log.Logger) *SemanticStrategy {
	return &SemanticStrategy{
		client:        client,
		philosopherId: philosopherId,
		logger:        logger,
	}
}

func (s *SemanticStrategy) Select(ctx context.Context, rc Context) (*Result, error) {
	queryText, _ := Compose(rc)

	req := &knowledge.QuoteRequest{
		Context: knowledge.HealthContext{
			StressLevel:          string(rc.StressLevel),
			IsActive:             rc.IsActive,
			HeartRate:            rc.HeartRate,
			HeartRateVariability: rc.HeartRateVariability,
		},
		Query:         queryText,
		PhilosopherId: s.philosopherId,
	}
	if rc.TimeOfDay != nil {
		req.Context.TimeOfDay = string(*rc.TimeOfDay)
	}

	resp, err := s.client.ContextQuote(ctx, req)
	if err != nil {
		kind := classify(err)
		s.logger.Printf("[WARN] Semantic search failed (%v): %v", kind, err)
		return nil, kind
	}

	result := &Result{
		Quote:      quoteToPassage(resp.Quote),
		Strategy:   StrategySemantic,
		Similarity: resp.SimilarityScore,
	}
	if resp.Philosopher != "" {
		philosopher := resp.Philosopher
		result.MatchedPhilosopher = &philosopher
	}
	return result, nil
}

func quoteToPassage(q knowledge.Quote) corpus.Passage {
	return corpus.Passage{
		Id:       q.Id,
		Text:     q.Text,
		Author:   q.Author,
		Work:     q.Work,
		Contexts: q.Contexts,
	}
}
