package retrieval

import (
	"context"

	"stoic-companion-be/pkg/corpus"
)

// StrategyKind names which selection strategy produced a result.
type StrategyKind string

const (
	StrategySemantic StrategyKind = "semantic"
	StrategyLLM      StrategyKind = "llm"
	StrategyLocal    StrategyKind = "local"
)

// Result is one selected quote together with how it was chosen. Similarity
// is only set by the semantic strategy.
type Result struct {
	Quote              corpus.Passage
	Strategy           StrategyKind
	Similarity         *float64
	MatchedPhilosopher *string
}

// Strategy is the shared contract of the three selection strategies: given a
// context, return exactly one quote. The local strategy never returns an
// error; the semantic strategy surfaces classified errors so the
// orchestrator can fall through.
type Strategy interface {
	Select(ctx context.Context, rc Context) (*Result, error)
}
