package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gcn-navigator-be/internal/dto"
	"gcn-navigator-be/internal/entity"
	"gcn-navigator-be/internal/pkg/logger"
	"gcn-navigator-be/internal/pkg/serverutils"
	"gcn-navigator-be/internal/repository/specification"
	"gcn-navigator-be/internal/repository/unitofwork"
	"gcn-navigator-be/pkg/answer"
	"gcn-navigator-be/pkg/draft"
	"gcn-navigator-be/pkg/events"

	"github.com/google/uuid"
)

// PersistenceDegradedWarning travels to the client when the answer was
// produced but could not be recorded. The exchange is lost from history;
// the answer itself is still delivered.
const PersistenceDegradedWarning = "answer delivered but not recorded; this exchange will be missing from history"

// AnswerClient is the slice of the answering backend the chat service needs.
type AnswerClient interface {
	Ask(ctx context.Context, req *answer.Request) (*answer.Response, error)
}

type IChatService interface {
	SubmitQuery(ctx context.Context, req *dto.SubmitQueryRequest) (*dto.SubmitQueryResponse, string, error)
	GetChatList(ctx context.Context) ([]*dto.ChatListItemResponse, error)
	GetHistory(ctx context.Context, chatId string, limit, offset int) ([]*dto.ChatHistoryItemResponse, error)
	DeleteChat(ctx context.Context, chatId string) error
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	answerClient     AnswerClient
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	answerClient AnswerClient,
	publisherService IPublisherService,
	logger logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		answerClient:     answerClient,
		publisherService: publisherService,
		logger:           logger,
	}
}

// SubmitQuery runs one full turn: resolve the session id, ask the backend,
// persist the exchange, announce it. The upstream call happens before any
// write, so a failed question leaves no trace. A failed write after a
// successful answer degrades to a warning instead of an error.
func (c *chatService) SubmitQuery(ctx context.Context, req *dto.SubmitQueryRequest) (*dto.SubmitQueryResponse, string, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, "", serverutils.NewInvalidRequest("query must not be empty")
	}

	sessionId, err := c.resolveSessionId(req.ChatId)
	if err != nil {
		return nil, "", err
	}

	settings := draft.DefaultSettings()
	if req.Settings != nil {
		settings = draft.Settings{
			UseOnlineContext: req.Settings.UseOnlineContext,
			UseDatabase:      req.Settings.UseDatabase,
		}
	}

	res, err := c.answerClient.Ask(ctx, &answer.Request{
		Query:            enrichQuery(req.Query, req.References),
		OrgQuery:         req.Query,
		ChatId:           sessionId.String(),
		UseOnlineContext: settings.UseOnlineContext,
		UseDatabase:      settings.UseDatabase,
	})
	if err != nil {
		if errors.Is(err, answer.ErrRejected) {
			return nil, "", serverutils.NewUpstreamRejected("answering service rejected the query", err)
		}
		return nil, "", serverutils.NewUpstreamUnavailable(err)
	}

	chatName := c.sessionName(req, res)
	response := buildQueryResponse(sessionId, chatName, res)

	if err := c.persistTurn(ctx, sessionId, chatName, req.Query, settings, res); err != nil {
		c.logger.Error("chat", "failed to persist turn", map[string]interface{}{
			"chat_id": sessionId.String(),
			"error":   err.Error(),
		})
		return response, PersistenceDegradedWarning, nil
	}

	if err := c.publisherService.Publish(ctx, events.NewTurnRecorded(sessionId.String(), req.Query, res.Answer)); err != nil {
		c.logger.Warn("chat", "failed to publish turn event", map[string]interface{}{
			"chat_id": sessionId.String(),
			"error":   err.Error(),
		})
	}

	return response, "", nil
}

func (c *chatService) GetChatList(ctx context.Context) ([]*dto.ChatListItemResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.ChatSessionRepository().FindListWithFirstTurn(ctx)
	if err != nil {
		return nil, serverutils.NewStoreUnavailable(err)
	}

	result := make([]*dto.ChatListItemResponse, len(items))
	for i, item := range items {
		result[i] = &dto.ChatListItemResponse{
			ChatId:    item.Id.String(),
			ChatName:  item.Name,
			Query:     item.FirstQuery,
			Answer:    item.FirstAnswer,
			CreatedAt: item.CreatedAt,
		}
	}
	return result, nil
}

func (c *chatService) GetHistory(ctx context.Context, chatId string, limit, offset int) ([]*dto.ChatHistoryItemResponse, error) {
	sessionId, err := uuid.Parse(chatId)
	if err != nil {
		return nil, serverutils.NewInvalidRequest("chat_id must be a valid session id")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, serverutils.NewStoreUnavailable(err)
	}
	if session == nil {
		return nil, serverutils.NewNotFound("chat session not found")
	}

	specs := []specification.Specification{
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	}
	if limit > 0 {
		specs = append(specs, specification.Pagination{Limit: limit, Offset: offset})
	}

	turns, err := uow.ChatTurnRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, serverutils.NewStoreUnavailable(err)
	}

	result := make([]*dto.ChatHistoryItemResponse, len(turns))
	for i, turn := range turns {
		result[i] = turnToHistoryItem(turn)
	}
	return result, nil
}

// DeleteChat removes a session and everything hanging off it in one
// transaction. Memory and turns go first so a partial failure can never
// orphan them.
func (c *chatService) DeleteChat(ctx context.Context, chatId string) error {
	sessionId, err := uuid.Parse(chatId)
	if err != nil {
		return serverutils.NewInvalidRequest("chat_id must be a valid session id")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return serverutils.NewStoreUnavailable(err)
	}
	defer uow.Rollback()

	if err := uow.ChatMemoryRepository().DeleteByChatSessionId(ctx, sessionId); err != nil {
		return serverutils.NewStoreUnavailable(err)
	}
	if err := uow.ChatTurnRepository().DeleteByChatSessionId(ctx, sessionId); err != nil {
		return serverutils.NewStoreUnavailable(err)
	}

	affected, err := uow.ChatSessionRepository().Delete(ctx, sessionId)
	if err != nil {
		return serverutils.NewStoreUnavailable(err)
	}
	if affected == 0 {
		return serverutils.NewNotFound("chat session not found")
	}

	if err := uow.Commit(); err != nil {
		return serverutils.NewStoreUnavailable(err)
	}
	return nil
}

func (c *chatService) resolveSessionId(chatId string) (uuid.UUID, error) {
	if chatId == "" {
		return uuid.New(), nil
	}
	sessionId, err := uuid.Parse(chatId)
	if err != nil {
		return uuid.Nil, serverutils.NewInvalidRequest("chat_id must be a valid session id")
	}
	return sessionId, nil
}

func (c *chatService) sessionName(req *dto.SubmitQueryRequest, res *answer.Response) string {
	if res.ChatName != "" {
		return res.ChatName
	}
	if req.ChatName != "" {
		return req.ChatName
	}
	return fmt.Sprintf("Chat %s", time.Now().Format(time.RFC3339))
}

func (c *chatService) persistTurn(
	ctx context.Context,
	sessionId uuid.UUID,
	chatName string,
	query string,
	settings draft.Settings,
	res *answer.Response,
) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	session := entity.ChatSession{
		Id:        sessionId,
		Name:      chatName,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatSessionRepository().CreateIfAbsent(ctx, &session); err != nil {
		return err
	}

	turn := entity.ChatTurn{
		Id:              uuid.New(),
		ChatSessionId:   sessionId,
		Query:           query,
		Answer:          res.Answer,
		PdfReferences:   toEntityPdfReferences(res.PdfReferences),
		SimilarImages:   res.SimilarImages,
		OnlineImages:    res.OnlineImages,
		OnlineVideos:    res.OnlineVideos,
		OnlineLinks:     res.OnlineLinks,
		RelevantQueries: res.RelatedQueries,
		Settings: &entity.TurnSettings{
			UseOnlineContext: settings.UseOnlineContext,
			UseDatabase:      settings.UseDatabase,
		},
		CreatedAt: time.Now(),
	}
	if err := uow.ChatTurnRepository().Create(ctx, &turn); err != nil {
		return err
	}

	return uow.Commit()
}

// enrichQuery appends the mentioned reference names so the backend can scope
// retrieval; the untouched text still travels as org_query.
func enrichQuery(query string, references []string) string {
	if len(references) == 0 {
		return query
	}
	return fmt.Sprintf("%s\n\nReferences: %s", query, strings.Join(references, ", "))
}

func buildQueryResponse(sessionId uuid.UUID, chatName string, res *answer.Response) *dto.SubmitQueryResponse {
	return &dto.SubmitQueryResponse{
		ChatId:          sessionId.String(),
		Answer:          res.Answer,
		ChatName:        chatName,
		PdfReferences:   toDtoPdfReferences(res.PdfReferences),
		SimilarImages:   res.SimilarImages,
		OnlineImages:    res.OnlineImages,
		OnlineVideos:    res.OnlineVideos,
		OnlineLinks:     res.OnlineLinks,
		RelevantQueries: res.RelatedQueries,
	}
}

func turnToHistoryItem(turn *entity.ChatTurn) *dto.ChatHistoryItemResponse {
	item := &dto.ChatHistoryItemResponse{
		Id:              turn.Id.String(),
		Query:           turn.Query,
		Answer:          turn.Answer,
		PdfReferences:   make([]dto.PdfReferenceDTO, len(turn.PdfReferences)),
		SimilarImages:   turn.SimilarImages,
		OnlineImages:    turn.OnlineImages,
		OnlineVideos:    turn.OnlineVideos,
		OnlineLinks:     turn.OnlineLinks,
		RelevantQueries: turn.RelevantQueries,
		CreatedAt:       turn.CreatedAt,
	}
	for i, ref := range turn.PdfReferences {
		item.PdfReferences[i] = dto.PdfReferenceDTO{Name: ref.Name, PageNumbers: ref.PageNumbers}
	}
	if turn.Settings != nil {
		item.Settings = &dto.TurnSettingsDTO{
			UseOnlineContext: turn.Settings.UseOnlineContext,
			UseDatabase:      turn.Settings.UseDatabase,
		}
	}
	return item
}

func toEntityPdfReferences(refs []answer.PdfReference) []entity.PdfReference {
	out := make([]entity.PdfReference, len(refs))
	for i, r := range refs {
		out[i] = entity.PdfReference{Name: r.Name, PageNumbers: r.PageNumbers}
	}
	return out
}

func toDtoPdfReferences(refs []answer.PdfReference) []dto.PdfReferenceDTO {
	out := make([]dto.PdfReferenceDTO, len(refs))
	for i, r := range refs {
		out[i] = dto.PdfReferenceDTO{Name: r.Name, PageNumbers: r.PageNumbers}
	}
	return out
}
