package answer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config controls the answering backend endpoint and its retry policy.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	RetryAttempts  int
	RetryBaseDelay time.Duration
}

// PdfReference cites a source document and the pages backing the answer.
type PdfReference struct {
	Name        string `json:"name"`
	PageNumbers []int  `json:"page_number"`
}

// Request is the payload sent to the answering backend. OrgQuery carries the
// user's text exactly as typed; Query may include resolved reference context.
type Request struct {
	Query            string `json:"query"`
	OrgQuery         string `json:"org_query"`
	ChatId           string `json:"chat_id"`
	UseOnlineContext bool   `json:"use_online_context"`
	UseDatabase      bool   `json:"use_database"`
}

// Response is the answering backend's reply. Collections the backend omits
// are normalized to empty slices before the response is handed to callers.
type Response struct {
	Answer         string         `json:"answer"`
	ChatName       string         `json:"chat_name"`
	PdfReferences  []PdfReference `json:"pdf_references"`
	SimilarImages  []string       `json:"similar_images"`
	OnlineImages   []string       `json:"online_images"`
	OnlineVideos   []string       `json:"online_videos"`
	OnlineLinks    []string       `json:"online_links"`
	RelatedQueries []string       `json:"related_queries"`
}

// MemoryRequest asks the backend to condense a conversation exchange into
// the running session memory.
type MemoryRequest struct {
	ChatId string `json:"chat_id"`
	Query  string `json:"query"`
	Answer string `json:"answer"`
}

// MemoryResponse is the condensed memory for a session.
type MemoryResponse struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
}

// ErrRejected marks a well-formed error reply from the backend. The request
// reached the service and was refused, so retrying is pointless.
var ErrRejected = errors.New("answer backend rejected the request")

// ErrUnavailable marks transport failures and malformed replies, the cases
// worth retrying.
var ErrUnavailable = errors.New("answer backend unavailable")

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 120 * time.Second
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = time.Second
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// Ask submits a query and returns the normalized answer. Transport failures
// are retried with the delay doubling between attempts; a well-formed error
// reply from the backend aborts immediately.
func (c *Client) Ask(ctx context.Context, req *Request) (*Response, error) {
	var res Response
	err := c.doWithRetry(ctx, c.cfg.BaseURL+"/query", req, &res)
	if err != nil {
		return nil, err
	}

	if res.PdfReferences == nil {
		res.PdfReferences = []PdfReference{}
	}
	if res.SimilarImages == nil {
		res.SimilarImages = []string{}
	}
	if res.OnlineImages == nil {
		res.OnlineImages = []string{}
	}
	if res.OnlineVideos == nil {
		res.OnlineVideos = []string{}
	}
	if res.OnlineLinks == nil {
		res.OnlineLinks = []string{}
	}
	if res.RelatedQueries == nil {
		res.RelatedQueries = []string{}
	}
	return &res, nil
}

// Summarize condenses one exchange into the running session memory.
func (c *Client) Summarize(ctx context.Context, req *MemoryRequest) (*MemoryResponse, error) {
	var res MemoryResponse
	if err := c.doWithRetry(ctx, c.cfg.BaseURL+"/memory", req, &res); err != nil {
		return nil, err
	}
	if res.KeyPoints == nil {
		res.KeyPoints = []string{}
	}
	return &res, nil
}

func (c *Client) doWithRetry(ctx context.Context, url string, payload, out interface{}) error {
	delay := c.cfg.RetryBaseDelay

	var lastErr error
	for attempt := 0; attempt < c.cfg.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
			case <-time.After(delay):
			}
			delay *= 2
		}

		err := c.doOnce(ctx, url, payload, out)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrRejected) {
			return err
		}
		lastErr = err
	}
	return lastErr
}

func (c *Client) doOnce(ctx context.Context, url string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	// 4xx means the backend understood and refused; 5xx and transport-level
	// trouble stay retryable.
	if res.StatusCode >= 400 && res.StatusCode < 500 {
		return fmt.Errorf("%w: status %d: %s", ErrRejected, res.StatusCode, truncate(raw, 256))
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnavailable, res.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return nil
}

func truncate(raw []byte, limit int) string {
	if len(raw) <= limit {
		return string(raw)
	}
	return string(raw[:limit])
}
