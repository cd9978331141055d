package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// RemoteName is the backend name of the HTTP inference predictor.
const RemoteName = "remote"

// RemoteConfig describes the inference server.
type RemoteConfig struct {
	// Endpoint is the base URL, e.g. http://ml:9000. /predict and /health are appended.
	Endpoint string
	// APIKey is sent as a bearer token when set.
	APIKey string
	// Timeout bounds each HTTP call.
	Timeout time.Duration
}

// Remote talks to an external inference server that hosts the trained model.
type Remote struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

var _ Predictor = (*Remote)(nil)

// NewRemote creates a reusable HTTP client for the inference server.
func NewRemote(cfg RemoteConfig) (*Remote, error) {
	endpoint := strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/")
	if endpoint == "" {
		return nil, fmt.Errorf("inference endpoint is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Remote{
		endpoint: endpoint,
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: timeout},
	}, nil
}

// Predict posts the text to /predict.
func (c *Remote) Predict(ctx context.Context, text string) (Probabilities, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return Probabilities{}, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/predict", bytes.NewReader(body))
	if err != nil {
		return Probabilities{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return Probabilities{}, fmt.Errorf("%w: predict request: %v", ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Probabilities{}, fmt.Errorf("%w: unexpected status %s: %s", ErrModelUnavailable, resp.Status, strings.TrimSpace(string(snippet)))
	}

	var raw Probabilities
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Probabilities{}, fmt.Errorf("%w: decode response: %v", ErrModelUnavailable, err)
	}

	probs, err := raw.Normalize()
	if err != nil {
		return Probabilities{}, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	return probs, nil
}

// Ready probes GET /health. Any answer other than 200 means "not loaded".
func (c *Remote) Ready(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/health", nil)
	if err != nil {
		return false, fmt.Errorf("new request: %w", err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, nil
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	if err := resp.Body.Close(); err != nil {
		return false, fmt.Errorf("close response body: %w", err)
	}

	return resp.StatusCode == http.StatusOK, nil
}

// Name returns RemoteName.
func (c *Remote) Name() string {
	return RemoteName
}

func (c *Remote) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
