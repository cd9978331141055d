package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsverify/api-backend/internal/models"
)

type fakeAPI struct {
	health       models.HealthResponse
	healthStatus int
	analyzeCode  int
	analyzeCalls atomic.Int32
	lastText     string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/api/health":
		code := f.healthStatus
		if code == 0 {
			code = http.StatusOK
		}
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(f.health)
	case "/api/analyze":
		f.analyzeCalls.Add(1)
		var req models.AnalysisRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.lastText = req.Text
		if f.analyzeCode != 0 && f.analyzeCode != http.StatusOK {
			w.WriteHeader(f.analyzeCode)
			_ = json.NewEncoder(w).Encode(models.NewErrorResponse("Model unavailable"))
			return
		}
		_ = json.NewEncoder(w).Encode(models.AnalysisResponse{
			Status: models.StatusSuccess, Prediction: models.PredictionReal,
			Confidence: 73.47, RealProbability: 73.47, FakeProbability: 26.53,
		})
	default:
		http.NotFound(w, r)
	}
}

func newClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)
	return New(server.URL+"/", 0)
}

func TestCheckHealth(t *testing.T) {
	ctx := context.Background()

	t.Run("Ready", func(t *testing.T) {
		c := newClient(t, &fakeAPI{health: models.HealthResponse{Status: models.StatusHealthy, ModelLoaded: true}})
		state := c.CheckHealth(ctx)
		assert.True(t, state.Ready)
		assert.NoError(t, state.LastError)
	})

	t.Run("ModelNotLoaded", func(t *testing.T) {
		c := newClient(t, &fakeAPI{health: models.HealthResponse{Status: models.StatusHealthy}})
		state := c.CheckHealth(ctx)
		assert.False(t, state.Ready)
		assert.ErrorIs(t, state.LastError, ErrNotReady)
	})

	t.Run("ServerError", func(t *testing.T) {
		c := newClient(t, &fakeAPI{healthStatus: http.StatusInternalServerError})
		state := c.CheckHealth(ctx)
		assert.False(t, state.Ready)

		var apiErr *APIError
		require.ErrorAs(t, state.LastError, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	})

	t.Run("Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		state := New(url, 0).CheckHealth(ctx)
		assert.False(t, state.Ready)
		assert.Error(t, state.LastError)
	})
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		api := &fakeAPI{}
		c := newClient(t, api)

		resp, state, err := c.Analyze(ctx, State{Ready: true}, "  markets rally  ")
		require.NoError(t, err)
		assert.True(t, resp.IsReal())
		assert.True(t, state.Ready)
		assert.Equal(t, "markets rally", api.lastText)
	})

	t.Run("RefusedWhenNotReady", func(t *testing.T) {
		api := &fakeAPI{}
		c := newClient(t, api)

		_, state, err := c.Analyze(ctx, State{}, "text")
		assert.ErrorIs(t, err, ErrNotReady)
		assert.False(t, state.Ready)
		assert.Zero(t, api.analyzeCalls.Load())
	})

	t.Run("EmptyTextNotSent", func(t *testing.T) {
		api := &fakeAPI{}
		c := newClient(t, api)

		_, state, err := c.Analyze(ctx, State{Ready: true}, " \n ")
		assert.ErrorIs(t, err, ErrEmptyText)
		assert.True(t, state.Ready)
		assert.Zero(t, api.analyzeCalls.Load())
	})

	t.Run("ModelUnavailableNoRetry", func(t *testing.T) {
		api := &fakeAPI{analyzeCode: http.StatusServiceUnavailable}
		c := newClient(t, api)

		_, state, err := c.Analyze(ctx, State{Ready: true}, "text")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Model unavailable", apiErr.Message)
		assert.False(t, state.Ready)
		assert.Equal(t, err, state.LastError)
		assert.Equal(t, int32(1), api.analyzeCalls.Load())
	})

	t.Run("OtherErrorKeepsReady", func(t *testing.T) {
		api := &fakeAPI{analyzeCode: http.StatusInternalServerError}
		c := newClient(t, api)

		_, state, err := c.Analyze(ctx, State{Ready: true}, "text")
		assert.Error(t, err)
		assert.True(t, state.Ready)
		assert.Error(t, state.LastError)
	})
}
