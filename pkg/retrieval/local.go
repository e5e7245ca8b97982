package retrieval

import (
	"context"
	"math/rand"
	"sync"

	"stoic-companion-be/pkg/corpus"
)

// LocalStrategy picks a quote from the in-process corpus with a pure
// heuristic filter and a randomized pick. No network, no failure conditions:
// an empty filter result widens to the whole corpus, an empty corpus falls
// back to the built-in passages. Terminal fallback for the whole system.
type LocalStrategy struct {
	passages []corpus.Passage

	mu  sync.Mutex
	rng *rand.Rand
}

// NewLocalStrategy builds the strategy over a corpus snapshot. The random
// source is injected so tests can assert the exact candidate chosen; nil
// falls back to a time-seeded source.
func NewLocalStrategy(passages []corpus.Passage, rng *rand.Rand) *LocalStrategy {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &LocalStrategy{passages: passages, rng: rng}
}

// Select always returns a quote and a nil error.
func (s *LocalStrategy) Select(_ context.Context, rc Context) (*Result, error) {
	candidates := s.Filter(rc)
	if len(candidates) == 0 {
		candidates = s.passages
	}
	if len(candidates) == 0 {
		candidates = corpus.Builtin()
	}

	s.mu.Lock()
	pick := candidates[s.rng.Intn(len(candidates))]
	s.mu.Unlock()

	return &Result{Quote: pick, Strategy: StrategyLocal}, nil
}

// Filter keeps passages matching the context on any one criterion: topical
// tag equals the primary context, OR time-of-day affinity matches (or is
// "any"), OR, under elevated stress, the heart-rate affinity is "elevated".
func (s *LocalStrategy) Filter(rc Context) []corpus.Passage {
	primary := rc.PrimaryContext()

	var matched []corpus.Passage
	for _, p := range s.passages {
		if p.HasContext(primary) {
			matched = append(matched, p)
			continue
		}
		if rc.TimeOfDay != nil && (p.TimeOfDayAffinity == string(*rc.TimeOfDay) || p.TimeOfDayAffinity == corpus.AffinityAny) {
			matched = append(matched, p)
			continue
		}
		if rc.StressIsElevated() && p.HeartRateAffinity == "elevated" {
			matched = append(matched, p)
		}
	}
	return matched
}
