package service

import (
	"context"
	"encoding/json"
	"time"

	"gcn-navigator-be/internal/entity"
	"gcn-navigator-be/internal/pkg/logger"
	"gcn-navigator-be/internal/repository/unitofwork"
	"gcn-navigator-be/pkg/answer"
	"gcn-navigator-be/pkg/events"
	"gcn-navigator-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// SummaryClient is the slice of the answering backend the memory
// summarizer needs.
type SummaryClient interface {
	Summarize(ctx context.Context, req *answer.MemoryRequest) (*answer.MemoryResponse, error)
}

type IMemoryService interface {
	Consume(ctx context.Context) error
}

// memoryService listens for recorded turns and maintains each session's
// condensed memory off the request path. Failures here are logged and
// dropped; the turn that triggered them is already safely stored.
type memoryService struct {
	pubSub        *gochannel.GoChannel
	topicName     string
	uowFactory    unitofwork.RepositoryFactory
	summaryClient SummaryClient
	natsPublisher *nats.Publisher
	logger        logger.ILogger
}

func NewMemoryService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	summaryClient SummaryClient,
	natsPublisher *nats.Publisher,
	logger logger.ILogger,
) IMemoryService {
	return &memoryService{
		pubSub:        pubSub,
		topicName:     topicName,
		uowFactory:    uowFactory,
		summaryClient: summaryClient,
		natsPublisher: natsPublisher,
		logger:        logger,
	}
}

func (ms *memoryService) Consume(ctx context.Context) error {
	messages, err := ms.pubSub.Subscribe(ctx, ms.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ms.processMessage(ctx, msg)
		}
	}()

	return nil
}

type turnRecordedPayload struct {
	ChatSessionId string `json:"chat_session_id"`
	Query         string `json:"query"`
	Answer        string `json:"answer"`
}

func (ms *memoryService) processMessage(ctx context.Context, msg *message.Message) {
	var payload turnRecordedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		ms.logger.Error("memory", "failed to unmarshal turn event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed messages would loop forever on Nack
		return
	}

	sessionId, err := uuid.Parse(payload.ChatSessionId)
	if err != nil {
		ms.logger.Error("memory", "turn event carries an invalid session id", map[string]interface{}{
			"chat_session_id": payload.ChatSessionId,
		})
		msg.Ack()
		return
	}

	if err := ms.updateMemory(ctx, sessionId, payload.Query, payload.Answer); err != nil {
		ms.logger.Error("memory", "failed to update session memory", map[string]interface{}{
			"chat_session_id": payload.ChatSessionId,
			"error":           err.Error(),
		})
		// Nack would redeliver immediately and stall the channel behind
		// one broken turn. The next turn on this session rebuilds the
		// summary anyway, so drop it.
		msg.Ack()
		return
	}

	ms.forwardToNats(ctx, payload)
	msg.Ack()
}

func (ms *memoryService) updateMemory(ctx context.Context, sessionId uuid.UUID, query, turnAnswer string) error {
	res, err := ms.summaryClient.Summarize(ctx, &answer.MemoryRequest{
		ChatId: sessionId.String(),
		Query:  query,
		Answer: turnAnswer,
	})
	if err != nil {
		return err
	}

	uow := ms.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()
	return uow.ChatMemoryRepository().Upsert(ctx, &entity.ChatMemory{
		Id:            uuid.New(),
		ChatSessionId: sessionId,
		Summary:       res.Summary,
		KeyPoints:     res.KeyPoints,
		CreatedAt:     now,
		UpdatedAt:     &now,
	})
}

// forwardToNats mirrors the event to the external bus when one is
// configured. Best effort only.
func (ms *memoryService) forwardToNats(ctx context.Context, payload turnRecordedPayload) {
	if ms.natsPublisher == nil {
		return
	}
	event := events.NewTurnRecorded(payload.ChatSessionId, payload.Query, payload.Answer)
	if err := ms.natsPublisher.Publish(ctx, event); err != nil {
		ms.logger.Warn("memory", "failed to forward turn event to NATS", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
