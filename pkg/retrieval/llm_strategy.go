package retrieval

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"stoic-companion-be/pkg/corpus"
	"stoic-companion-be/pkg/llm"
)

// selectionHeuristics are included verbatim in every selection prompt so the
// model ranks candidates the same way the local heuristic would.
const selectionHeuristics = `Selection guidance:
- High or elevated stress: prefer quotes about control and acceptance.
- Morning: prefer quotes about intention and starting well.
- Evening or night: prefer quotes about reflection and rest.
- Inactive: prefer quotes that encourage action.
- Active: prefer quotes about discipline and effort.`

// LLMStrategy delegates the final pick over the full local corpus to a
// generative model. It never fails outward: any provider error, malformed
// reply or hallucinated id silently degrades to the local strategy, so from
// the orchestrator's point of view this strategy always produces a quote.
type LLMStrategy struct {
	provider llm.LLMProvider
	local    *LocalStrategy
	passages []corpus.Passage
	logger   *log.Logger
}

func NewLLMStrategy(provider llm.LLMProvider, local *LocalStrategy, passages []corpus.Passage, logger *log.Logger) *LLMStrategy {
	return &LLMStrategy{
		provider: provider,
		local:    local,
		passages: passages,
		logger:   logger,
	}
}

// Select asks the model for exactly one candidate id and validates the reply
// against the candidate set.
func (s *LLMStrategy) Select(ctx context.Context, rc Context) (*Result, error) {
	if len(s.passages) == 0 {
		s.logger.Printf("[WARN] LLM strategy has no candidates, using local selection")
		return s.local.Select(ctx, rc)
	}

	prompt := s.buildPrompt(rc)
	reply, err := s.provider.Generate(ctx, prompt, llm.WithTemperature(0.2), llm.WithMaxTokens(30))
	if err != nil {
		kind := classify(err)
		if errors.Is(kind, ErrRateLimited) || errors.Is(kind, ErrUnauthorized) {
			s.logger.Printf("[WARN] LLM provider rejected request (%v), using local selection", kind)
		} else {
			s.logger.Printf("[WARN] LLM selection failed (%v), using local selection", err)
		}
		return s.local.Select(ctx, rc)
	}

	id := parseQuoteId(reply)
	for _, p := range s.passages {
		if p.Id == id {
			return &Result{Quote: p, Strategy: StrategyLLM}, nil
		}
	}

	s.logger.Printf("[WARN] LLM returned unknown quote id %q, using local selection", id)
	return s.local.Select(ctx, rc)
}

func (s *LLMStrategy) buildPrompt(rc Context) string {
	var b strings.Builder
	b.WriteString("You are selecting one Stoic quote for a user.\n")
	b.WriteString("User state: ")
	b.WriteString(rc.Summary())
	b.WriteString("\n\nCandidates:\n")
	for _, p := range s.passages {
		fmt.Fprintf(&b, "- id: %s | author: %s | contexts: %s | text: %s\n",
			p.Id, p.Author, strings.Join(p.Contexts, "/"), p.Text)
	}
	b.WriteString("\n")
	b.WriteString(selectionHeuristics)
	b.WriteString("\n\nRespond with ONLY the id of the single best candidate. No explanation, no punctuation.")
	return b.String()
}

// parseQuoteId normalizes a model reply down to a bare id: trims whitespace
// and strips one layer of surrounding quote characters.
func parseQuoteId(reply string) string {
	id := strings.TrimSpace(reply)
	id = strings.Trim(id, `"'`)
	return strings.TrimSpace(id)
}
