package retrieval

import (
	"context"
	"errors"
	"log"
	"sync/atomic"

	"stoic-companion-be/pkg/knowledge"
)

// HealthChecker is the probe slice of the knowledge client.
type HealthChecker interface {
	Health(ctx context.Context) (*knowledge.HealthResponse, error)
}

// Config gates the network-dependent strategies. StickyFallback decides
// whether one semantic failure suppresses the semantic strategy for the rest
// of the session.
type Config struct {
	SemanticEnabled bool
	LLMEnabled      bool
	StickyFallback  bool
}

func DefaultConfig() Config {
	return Config{
		SemanticEnabled: true,
		LLMEnabled:      true,
		StickyFallback:  true,
	}
}

// Orchestrator runs the strategy chain: semantic, then LLM, then local.
// Within a call the strategies are strictly sequential, never raced, with at
// most one hop per strategy. GetQuote never returns an error - the local
// strategy is the terminal fallback and cannot fail.
//
// The availability flag is the only shared mutable state: session-scoped,
// atomic because retrieval calls may overlap (pre-fetch plus a user-driven
// refresh). It trips on the first semantic failure under the sticky policy
// and resets only on process restart or an explicit Recheck.
type Orchestrator struct {
	cfg      Config
	semantic Strategy
	llm      Strategy
	local    *LocalStrategy
	logger   *log.Logger

	semanticAvailable atomic.Bool
}

// NewOrchestrator wires the strategy objects at construction time. semantic
// and llm may be nil when the matching flag is off.
func NewOrchestrator(cfg Config, semantic Strategy, llm Strategy, local *LocalStrategy, logger *log.Logger) *Orchestrator {
	o := &Orchestrator{
		cfg:      cfg,
		semantic: semantic,
		llm:      llm,
		local:    local,
		logger:   logger,
	}
	// Optimistic until a call or probe says otherwise.
	o.semanticAvailable.Store(true)
	return o
}

// GetQuote is the single public retrieval operation.
func (o *Orchestrator) GetQuote(ctx context.Context, rc Context) *Result {
	if o.cfg.SemanticEnabled && o.semantic != nil && o.semanticAvailable.Load() {
		result, err := o.semantic.Select(ctx, rc)
		if err == nil {
			return result
		}
		if errors.Is(err, ErrCancelled) {
			// The caller abandoned this call; the backend said nothing about
			// its own health, so the flag stays up.
			o.logger.Printf("[WARN] Semantic retrieval cancelled, falling back: %v", err)
		} else if o.cfg.StickyFallback {
			o.semanticAvailable.Store(false)
			o.logger.Printf("[WARN] Semantic strategy unavailable for the rest of the session: %v", err)
		} else {
			o.logger.Printf("[WARN] Semantic strategy failed, falling back: %v", err)
		}
	}

	if o.cfg.LLMEnabled && o.llm != nil {
		// The LLM strategy degrades internally to local selection and never
		// errors outward.
		if result, err := o.llm.Select(ctx, rc); err == nil {
			return result
		}
	}

	result, _ := o.local.Select(ctx, rc)
	return result
}

// SemanticAvailable exposes the breaker state for observability.
func (o *Orchestrator) SemanticAvailable() bool {
	return o.semanticAvailable.Load()
}

// Probe pre-warms the availability flag from the backend health endpoint.
// Meant to run once at startup in its own goroutine; it never blocks a
// retrieval call - until it completes the orchestrator stays optimistic and
// lets the first call's own failure trip the flag.
func (o *Orchestrator) Probe(ctx context.Context, checker HealthChecker) {
	if checker == nil || !o.cfg.SemanticEnabled {
		return
	}
	if _, err := checker.Health(ctx); err != nil {
		o.semanticAvailable.Store(false)
		o.logger.Printf("[WARN] Availability probe failed, semantic strategy disabled: %v", err)
	}
}

// Recheck re-runs the health probe and re-enables the semantic strategy if
// the backend answers. This is the only way to reset a tripped breaker short
// of a restart.
func (o *Orchestrator) Recheck(ctx context.Context, checker HealthChecker) bool {
	if checker == nil || !o.cfg.SemanticEnabled {
		return false
	}
	if _, err := checker.Health(ctx); err != nil {
		o.semanticAvailable.Store(false)
		return false
	}
	o.semanticAvailable.Store(true)
	return true
}
