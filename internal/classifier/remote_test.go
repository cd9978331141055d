package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemotePredict(t *testing.T) {
	var gotAuth, gotText string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotText = body["text"]
		_, _ = w.Write([]byte(`{"real_probability": 72, "fake_probability": 28}`))
	}))
	defer server.Close()

	c, err := NewRemote(RemoteConfig{Endpoint: server.URL + "/", APIKey: "secret"})
	require.NoError(t, err)

	p, err := c.Predict(context.Background(), "markets rally")
	require.NoError(t, err)

	assert.InDelta(t, 0.72, p.Real, 1e-12)
	assert.InDelta(t, 0.28, p.Fake, 1e-12)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "markets rally", gotText)
}

func TestRemotePredictFailures(t *testing.T) {
	t.Run("UpstreamError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model crashed", http.StatusInternalServerError)
		}))
		defer server.Close()

		c, _ := NewRemote(RemoteConfig{Endpoint: server.URL})
		_, err := c.Predict(context.Background(), "x")
		assert.ErrorIs(t, err, ErrModelUnavailable)
	})

	t.Run("GarbageBody", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		c, _ := NewRemote(RemoteConfig{Endpoint: server.URL})
		_, err := c.Predict(context.Background(), "x")
		assert.ErrorIs(t, err, ErrModelUnavailable)
	})

	t.Run("ZeroProbabilities", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"real_probability": 0, "fake_probability": 0}`))
		}))
		defer server.Close()

		c, _ := NewRemote(RemoteConfig{Endpoint: server.URL})
		_, err := c.Predict(context.Background(), "x")
		assert.ErrorIs(t, err, ErrModelUnavailable)
	})

	t.Run("Timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer server.Close()

		c, _ := NewRemote(RemoteConfig{Endpoint: server.URL})
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := c.Predict(ctx, "x")
		assert.ErrorIs(t, err, ErrModelUnavailable)
	})

	t.Run("Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		c, _ := NewRemote(RemoteConfig{Endpoint: url})
		_, err := c.Predict(context.Background(), "x")
		assert.ErrorIs(t, err, ErrModelUnavailable)
	})
}

func TestRemoteReady(t *testing.T) {
	t.Run("Loaded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				w.WriteHeader(http.StatusOK)
				return
			}
			http.NotFound(w, r)
		}))
		defer server.Close()

		c, _ := NewRemote(RemoteConfig{Endpoint: server.URL})
		ready, err := c.Ready(context.Background())
		assert.NoError(t, err)
		assert.True(t, ready)
	})

	t.Run("NotLoaded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		c, _ := NewRemote(RemoteConfig{Endpoint: server.URL})
		ready, err := c.Ready(context.Background())
		assert.NoError(t, err)
		assert.False(t, ready)
	})

	t.Run("Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		c, _ := NewRemote(RemoteConfig{Endpoint: url})
		ready, err := c.Ready(context.Background())
		assert.NoError(t, err)
		assert.False(t, ready)
	})
}
