package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"stoic-companion-be/internal/config"
	"stoic-companion-be/internal/entity"
	"stoic-companion-be/internal/repository/implementation"
	"stoic-companion-be/pkg/corpus"
	"stoic-companion-be/pkg/database"
)

type philosopherSeed struct {
	Id               string   `json:"id"`
	Name             string   `json:"name"`
	Era              string   `json:"era"`
	Biography        string   `json:"biography"`
	CoreThemes       []string `json:"core_themes"`
	TeachingStyle    string   `json:"teaching_style"`
	MatchingCriteria []string `json:"matching_criteria"`
}

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()

	// 1. Passages. Embeddings stay NULL here; the rest server's consumer
	// fills them in on startup.
	passages, err := corpus.Load(cfg.Retrieval.CorpusPath)
	if err != nil {
		log.Fatalf("Error: Failed to load corpus from %s: %v", cfg.Retrieval.CorpusPath, err)
	}

	passageRepo := implementation.NewPassageRepository(db)
	existing, err := passageRepo.FindAll(ctx)
	if err != nil {
		log.Fatal("Error: Failed to list existing passages:", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p.Id] = true
	}

	var newPassages []*entity.Passage
	for _, p := range passages {
		if seen[p.Id] {
			continue
		}
		newPassages = append(newPassages, &entity.Passage{
			Id:                p.Id,
			Text:              p.Text,
			Author:            p.Author,
			Work:              p.Work,
			Contexts:          p.Contexts,
			TimeOfDayAffinity: p.TimeOfDayAffinity,
			HeartRateAffinity: p.HeartRateAffinity,
			Quotability:       p.Quotability,
		})
	}
	if err := passageRepo.CreateBulk(ctx, newPassages); err != nil {
		log.Fatal("Error: Failed to insert passages:", err)
	}
	log.Printf("Seeded %d new passages (%d already present)", len(newPassages), len(existing))

	// 2. Philosophers
	raw, err := os.ReadFile(cfg.Retrieval.PhilosophersPath)
	if err != nil {
		log.Fatalf("Error: Failed to read %s: %v", cfg.Retrieval.PhilosophersPath, err)
	}
	var seeds []philosopherSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		log.Fatal("Error: Failed to parse philosophers file:", err)
	}

	philosopherRepo := implementation.NewPhilosopherRepository(db)
	existingPhilosophers, err := philosopherRepo.FindAll(ctx)
	if err != nil {
		log.Fatal("Error: Failed to list existing philosophers:", err)
	}
	seenPhilosophers := make(map[string]bool, len(existingPhilosophers))
	for _, p := range existingPhilosophers {
		seenPhilosophers[p.Id] = true
	}

	var newPhilosophers []*entity.Philosopher
	for _, s := range seeds {
		if seenPhilosophers[s.Id] {
			continue
		}
		newPhilosophers = append(newPhilosophers, &entity.Philosopher{
			Id:               s.Id,
			Name:             s.Name,
			Era:              s.Era,
			Biography:        s.Biography,
			CoreThemes:       s.CoreThemes,
			TeachingStyle:    s.TeachingStyle,
			MatchingCriteria: s.MatchingCriteria,
		})
	}
	if err := philosopherRepo.CreateBulk(ctx, newPhilosophers); err != nil {
		log.Fatal("Error: Failed to insert philosophers:", err)
	}
	log.Printf("Seeded %d new philosophers (%d already present)", len(newPhilosophers), len(existingPhilosophers))
}
