// Package client consumes the health and analyze endpoints the way the
// browser UI does: check readiness once, then analyze only when ready.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/newsverify/api-backend/internal/models"
)

var (
	// ErrNotReady is returned by Analyze when the last health check did
	// not report a loaded model.
	ErrNotReady = errors.New("model is not ready")
	// ErrEmptyText is returned by Analyze for blank input. No request is sent.
	ErrEmptyText = errors.New("please enter some text to analyze")
)

// State is the readiness the caller carries between calls.
type State struct {
	Ready     bool
	LastError error
}

// APIError is a non-success answer from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to a running API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for baseURL, e.g. http://localhost:8080.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// CheckHealth queries /api/health. Any failure yields a not-ready state
// carrying the error.
func (c *Client) CheckHealth(ctx context.Context) State {
	var report models.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &report); err != nil {
		return State{Ready: false, LastError: err}
	}
	if !report.IsReady() {
		return State{Ready: false, LastError: ErrNotReady}
	}
	return State{Ready: true}
}

// Analyze submits text when state is ready. It never retries; the
// returned state records the outcome. A 503 marks the model as not ready.
func (c *Client) Analyze(ctx context.Context, state State, text string) (*models.AnalysisResponse, State, error) {
	if !state.Ready {
		return nil, state, ErrNotReady
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, state, ErrEmptyText
	}

	var resp models.AnalysisResponse
	err := c.do(ctx, http.MethodPost, "/api/analyze", models.AnalysisRequest{Text: text}, &resp)
	if err != nil {
		next := State{Ready: state.Ready, LastError: err}
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusServiceUnavailable {
			next.Ready = false
		}
		return nil, next, err
	}
	return &resp, State{Ready: true}, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any, v any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody models.ErrorResponse
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(raw, &errBody) != nil || errBody.Error == "" {
			errBody.Error = strings.TrimSpace(string(raw))
		}
		if errBody.Error == "" {
			errBody.Error = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
