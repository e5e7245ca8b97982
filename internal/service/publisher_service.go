package service

import (
	"context"
	"encoding/json"

	"stoic-companion-be/internal/dto"
	"stoic-companion-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
	// PublishPending enqueues every passage still missing an embedding.
	// Called once at startup so seeded corpora get embedded without a
	// separate backfill job.
	PublishPending(ctx context.Context) (int, error)
}

type publisherService struct {
	topicName  string
	pubSub     *gochannel.GoChannel
	uowFactory unitofwork.RepositoryFactory
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel, uowFactory unitofwork.RepositoryFactory) IPublisherService {
	return &publisherService{
		topicName:  topicName,
		pubSub:     pubSub,
		uowFactory: uowFactory,
	}
}

func (s *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return s.pubSub.Publish(s.topicName, msg)
}

func (s *publisherService) PublishPending(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pending, err := uow.PassageRepository().FindPendingEmbedding(ctx, 1000)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, p := range pending {
		payload, err := json.Marshal(dto.PublishEmbedPassageMessage{PassageId: p.Id})
		if err != nil {
			return published, err
		}
		if err := s.Publish(ctx, payload); err != nil {
			return published, err
		}
		published++
	}
	return published, nil
}
