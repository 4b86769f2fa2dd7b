package samples

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/okian/talkscore/internal/domain/model"
	"github.com/okian/talkscore/pkg/logger"
)

const defaultTimeout = 30 * time.Second

// Client talks to a running scoring service.
type Client struct {
	baseURL string
	http    *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type scoreRequest struct {
	TranscriptText string        `json:"transcript_text"`
	Options        model.Options `json:"options"`
}

// Health checks GET /healthz.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/healthz", nil)
	if err != nil {
		return err
	}
	defer closeBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: healthz returned %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}

// Score submits a transcript to POST /score.
func (c *Client) Score(ctx context.Context, transcript string, durationSeconds float64) (model.ScoreResult, error) {
	body, err := json.Marshal(scoreRequest{
		TranscriptText: transcript,
		Options:        model.Options{}.WithDuration(durationSeconds),
	})
	if err != nil {
		return model.ScoreResult{}, fmt.Errorf("failed to marshal request body: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/score", body)
	if err != nil {
		return model.ScoreResult{}, err
	}
	defer closeBody(ctx, resp)

	var res model.ScoreResult
	if err := decode(resp, &res); err != nil {
		return model.ScoreResult{}, err
	}
	return res, nil
}

// History fetches GET /history with the given limit.
func (c *Client) History(ctx context.Context, limit int) ([]model.ScoreResult, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/history?limit=%d", limit), nil)
	if err != nil {
		return nil, err
	}
	defer closeBody(ctx, resp)

	var out []model.ScoreResult
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

// decode reads a 200 JSON body into v. Other statuses become errors carrying
// the server's message.
func decode(resp *http.Response, v any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Code != "" {
			return fmt.Errorf("%w: %d %s: %s", ErrUnexpectedStatus, resp.StatusCode, apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		logger.Get().Error(ctx, "failed to close response body", logger.Error(err))
	}
}
