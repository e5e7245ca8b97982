package bootstrap

import (
	"log"

	"stoic-companion-be/internal/config"
	"stoic-companion-be/internal/controller"
	"stoic-companion-be/internal/pkg/logger"
	"stoic-companion-be/internal/repository/memory"
	"stoic-companion-be/internal/repository/unitofwork"
	"stoic-companion-be/internal/service"
	"stoic-companion-be/pkg/embedding"
	"stoic-companion-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	QuoteController       controller.IQuoteController
	MatchController       controller.IMatchController
	PhilosopherController controller.IPhilosopherController
	HealthController      controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService  service.IConsumerService
	PublisherService service.IPublisherService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.HuggingFace,
	)
	if err != nil {
		log.Printf("[WARN] LLM provider unavailable, match reasons will use the static fallback: %v", err)
		llmProvider = nil
	} else {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.EmbedTopic, pubSub, uowFactory)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedTopic,
		uowFactory,
		embeddingProvider,
		sysLogger,
	)

	philosopherCache := memory.NewPhilosopherCache()

	quoteService := service.NewQuoteService(
		uowFactory,
		embeddingProvider,
		cfg.Retrieval.SimilarityThreshold,
		cfg.Retrieval.TopK,
		sysLogger,
	)
	matchService := service.NewMatchService(uowFactory, llmProvider, sysLogger)
	philosopherService := service.NewPhilosopherService(uowFactory, philosopherCache)

	// 5. Controllers
	return &Container{
		QuoteController:       controller.NewQuoteController(quoteService),
		MatchController:       controller.NewMatchController(matchService),
		PhilosopherController: controller.NewPhilosopherController(philosopherService),
		HealthController:      controller.NewHealthController(cfg.App.Version),
		ConsumerService:       consumerService,
		PublisherService:      publisherService,
		Logger:                sysLogger,
	}
}
