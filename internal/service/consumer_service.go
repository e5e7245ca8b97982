package service

import (
	"context"
	"encoding/json"

	"stoic-companion-be/internal/dto"
	"stoic-companion-be/internal/pkg/logger"
	"stoic-companion-be/internal/repository/specification"
	"stoic-companion-be/internal/repository/unitofwork"
	"stoic-companion-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		logger:            log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedPassageMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer-service", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed messages never become valid, drop them
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	passage, err := uow.PassageRepository().FindOne(ctx, specification.ByKey{Key: payload.PassageId})
	if err != nil {
		cs.logger.Error("consumer-service", "failed to load passage", map[string]interface{}{
			"passage_id": payload.PassageId,
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}
	if passage == nil {
		cs.logger.Warn("consumer-service", "passage not found, dropping", map[string]interface{}{
			"passage_id": payload.PassageId,
		})
		msg.Ack()
		return
	}
	if passage.Embedding != nil {
		msg.Ack() // already embedded, nothing to do
		return
	}

	res, err := cs.embeddingProvider.Generate(passage.Text, "RETRIEVAL_DOCUMENT")
	if err != nil {
		cs.logger.Error("consumer-service", "embedding generation failed", map[string]interface{}{
			"passage_id": payload.PassageId,
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	if err := uow.PassageRepository().UpdateEmbedding(ctx, passage.Id, res.Values); err != nil {
		cs.logger.Error("consumer-service", "failed to persist embedding", map[string]interface{}{
			"passage_id": payload.PassageId,
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	cs.logger.Info("consumer-service", "passage embedded", map[string]interface{}{
		"passage_id": payload.PassageId,
		"dims":       len(res.Values),
	})
	msg.Ack()
}
