package main

import (
	"context"
	"log"

	"stoic-companion-be/internal/bootstrap"
	"stoic-companion-be/internal/config"
	"stoic-companion-be/internal/server"
	"stoic-companion-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}

		// Pick up passages seeded before this process started.
		n, err := container.PublisherService.PublishPending(context.Background())
		if err != nil {
			log.Printf("Background: Failed to enqueue pending passages: %v", err)
		} else if n > 0 {
			log.Printf("Background: Enqueued %d passages for embedding", n)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
