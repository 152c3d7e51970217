package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"gcn-navigator-be/internal/dto"
	"gcn-navigator-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatService struct {
	submitRes     *dto.SubmitQueryResponse
	submitWarning string
	submitErr     error
	deleteErr     error
	list          []*dto.ChatListItemResponse
	history       []*dto.ChatHistoryItemResponse
	historyErr    error
	historyLimit  int
	historyOffset int
}

func (s *stubChatService) SubmitQuery(ctx context.Context, req *dto.SubmitQueryRequest) (*dto.SubmitQueryResponse, string, error) {
	return s.submitRes, s.submitWarning, s.submitErr
}

func (s *stubChatService) GetChatList(ctx context.Context) ([]*dto.ChatListItemResponse, error) {
	return s.list, nil
}

func (s *stubChatService) GetHistory(ctx context.Context, chatId string, limit, offset int) ([]*dto.ChatHistoryItemResponse, error) {
	s.historyLimit = limit
	s.historyOffset = offset
	return s.history, s.historyErr
}

func (s *stubChatService) DeleteChat(ctx context.Context, chatId string) error {
	return s.deleteErr
}

func newTestApp(svc *stubChatService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewChatController(svc).RegisterRoutes(api)
	return app
}

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestSubmitQueryEndpoint(t *testing.T) {
	app := newTestApp(&stubChatService{
		submitRes: &dto.SubmitQueryResponse{ChatId: "abc", Answer: "hi", ChatName: "Greetings"},
	})

	payload := []byte(`{"query":"hello"}`)
	req := httptest.NewRequest("POST", "/api/query", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	body := decodeBody(t, res.Body)
	assert.Equal(t, true, body["success"])
	assert.Nil(t, body["warning"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "hi", data["answer"])
}

func TestSubmitQueryEndpointRequiresQuery(t *testing.T) {
	app := newTestApp(&stubChatService{})

	req := httptest.NewRequest("POST", "/api/query", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	body := decodeBody(t, res.Body)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, serverutils.CodeInvalidRequest, body["code"])
}

func TestSubmitQueryEndpointCarriesWarning(t *testing.T) {
	app := newTestApp(&stubChatService{
		submitRes:     &dto.SubmitQueryResponse{ChatId: "abc", Answer: "hi"},
		submitWarning: "answer delivered but not recorded",
	})

	req := httptest.NewRequest("POST", "/api/query", bytes.NewReader([]byte(`{"query":"q"}`)))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode, "degraded persistence still succeeds")

	body := decodeBody(t, res.Body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "answer delivered but not recorded", body["warning"])
}

func TestSubmitQueryEndpointMapsUpstreamFailure(t *testing.T) {
	app := newTestApp(&stubChatService{
		submitErr: serverutils.NewUpstreamUnavailable(io.ErrUnexpectedEOF),
	})

	req := httptest.NewRequest("POST", "/api/query", bytes.NewReader([]byte(`{"query":"q"}`)))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, res.StatusCode)

	body := decodeBody(t, res.Body)
	assert.Equal(t, serverutils.CodeUpstreamUnavailable, body["code"])
}

func TestDeleteChatEndpoint(t *testing.T) {
	app := newTestApp(&stubChatService{
		deleteErr: serverutils.NewNotFound("chat session not found"),
	})

	req := httptest.NewRequest("DELETE", "/api/chat?chatId=abc", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestDeleteChatEndpointRequiresChatId(t *testing.T) {
	app := newTestApp(&stubChatService{})

	req := httptest.NewRequest("DELETE", "/api/chat", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestGetHistoryEndpoint(t *testing.T) {
	app := newTestApp(&stubChatService{
		history: []*dto.ChatHistoryItemResponse{{Id: "t1", Query: "q", Answer: "a"}},
	})

	req := httptest.NewRequest("GET", "/api/chat-history/some-id", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	body := decodeBody(t, res.Body)
	items := body["data"].([]interface{})
	require.Len(t, items, 1)
}

func TestGetHistoryEndpointForwardsPagination(t *testing.T) {
	svc := &stubChatService{}
	app := newTestApp(svc)

	req := httptest.NewRequest("GET", "/api/chat-history/some-id?limit=20&offset=40", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, 20, svc.historyLimit)
	assert.Equal(t, 40, svc.historyOffset)
}

func TestGetHistoryEndpointRejectsNegativePagination(t *testing.T) {
	app := newTestApp(&stubChatService{})

	req := httptest.NewRequest("GET", "/api/chat-history/some-id?limit=-1", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}
