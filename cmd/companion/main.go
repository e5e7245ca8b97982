package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"stoic-companion-be/internal/config"
	"stoic-companion-be/pkg/corpus"
	"stoic-companion-be/pkg/knowledge"
	"stoic-companion-be/pkg/llm/factory"
	"stoic-companion-be/pkg/retrieval"
)

// companion fetches one context-appropriate quote from the command line,
// exercising the full strategy chain: knowledge-base search, then LLM
// selection over the bundled corpus, then local filtering.
func main() {
	var (
		stress      = flag.String("stress", "normal", "stress level: low, normal, elevated, high")
		timeOfDay   = flag.String("time", "", "time of day: morning, afternoon, evening, night (empty to omit)")
		active      = flag.Bool("active", false, "currently physically active")
		heartRate   = flag.Float64("hr", 0, "heart rate in bpm (0 to omit)")
		philosopher = flag.String("philosopher", "", "restrict to one philosopher id, e.g. marcus_aurelius")
		recheck     = flag.Bool("recheck", false, "probe the backend before retrieving")
	)
	flag.Parse()

	cfg := config.Load()
	logger := log.New(os.Stderr, "", log.LstdFlags)

	rc := retrieval.Context{
		StressLevel: retrieval.StressLevel(*stress),
		IsActive:    *active,
	}
	if *timeOfDay != "" {
		rc.TimeOfDay = retrieval.TimeOfDayPtr(retrieval.TimeOfDay(*timeOfDay))
	}
	if *heartRate > 0 {
		rc.HeartRate = heartRate
	}

	passages, err := corpus.Load(cfg.Retrieval.CorpusPath)
	if err != nil {
		logger.Printf("[WARN] Corpus unavailable (%v), using built-in passages", err)
		passages = corpus.Builtin()
	}

	local := retrieval.NewLocalStrategy(passages, nil)

	var llmStrategy retrieval.Strategy
	if cfg.Retrieval.LLMEnabled {
		provider, err := factory.NewLLMProvider(
			cfg.Ai.LLMProvider,
			cfg.Ai.LLMModel,
			cfg.Ai.OllamaBaseURL,
			cfg.Keys.HuggingFace,
		)
		if err != nil {
			logger.Printf("[WARN] LLM provider unavailable: %v", err)
		} else {
			llmStrategy = retrieval.NewLLMStrategy(provider, local, passages, logger)
		}
	}

	client := knowledge.NewClient(cfg.Retrieval.BackendBaseURL)
	semantic := retrieval.NewSemanticStrategy(client, *philosopher, logger)

	orch := retrieval.NewOrchestrator(retrieval.Config{
		SemanticEnabled: cfg.Retrieval.SemanticEnabled,
		LLMEnabled:      cfg.Retrieval.LLMEnabled,
		StickyFallback:  cfg.Retrieval.StickyFallback,
	}, semantic, llmStrategy, local, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	if *recheck {
		orch.Probe(ctx, client)
	}

	result := orch.GetQuote(ctx, rc)

	fmt.Printf("%q\n", result.Quote.Text)
	if result.Quote.Work != "" {
		fmt.Printf("    - %s, %s\n", result.Quote.Author, result.Quote.Work)
	} else {
		fmt.Printf("    - %s\n", result.Quote.Author)
	}
	fmt.Printf("\nstrategy: %s", result.Strategy)
	if result.Similarity != nil {
		fmt.Printf(" (similarity %.2f)", *result.Similarity)
	}
	fmt.Println()
}
