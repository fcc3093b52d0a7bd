package app

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-tavily/internal/config"
)

// isolateConfig points every configuration layer at empty locations so a
// developer's real config files cannot leak into assertions.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("TAVILY_API_KEY", "")
	t.Setenv("TAVILY_BASE_URL", "")
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("sse", "0.0.0.0", 9000, true, "1.2.3")

	assert.Equal(t, "sse", cfg.Transport)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "1.2.3", cfg.Version)
}

func TestNewApplicationRequiresAPIKey(t *testing.T) {
	isolateConfig(t)

	_, err := NewApplication(NewConfig("", "", 0, false, "test"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TAVILY_API_KEY environment variable is required")
}

func TestNewApplicationRejectsUnknownTransport(t *testing.T) {
	isolateConfig(t)
	t.Setenv("TAVILY_API_KEY", "tvly-test-key")

	_, err := NewApplication(NewConfig("carrier-pigeon", "", 0, false, "test"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported transport "carrier-pigeon"`)
}

func TestNewApplicationDefaults(t *testing.T) {
	isolateConfig(t)
	t.Setenv("TAVILY_API_KEY", "tvly-test-key")

	application, err := NewApplication(NewConfig("", "", 0, false, "test"))
	require.NoError(t, err)

	assert.Equal(t, config.TransportStdio, application.transport)
	assert.Equal(t, config.DefaultHost, application.host)
	assert.Equal(t, config.DefaultPort, application.port)
	assert.NotNil(t, application.backend)
	assert.NotNil(t, application.server)
}

func TestNewApplicationFlagOverrides(t *testing.T) {
	isolateConfig(t)
	t.Setenv("TAVILY_API_KEY", "tvly-test-key")

	application, err := NewApplication(NewConfig("sse", "0.0.0.0", 9000, false, "test"))
	require.NoError(t, err)

	assert.Equal(t, config.TransportSSE, application.transport)
	assert.Equal(t, "0.0.0.0", application.host)
	assert.Equal(t, 9000, application.port)
}

func TestProbeHitsTheAPI(t *testing.T) {
	isolateConfig(t)

	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/search", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"query": "test", "answer": "ok", "results": []}`))
	}))
	defer ts.Close()

	t.Setenv("TAVILY_API_KEY", "tvly-test-key")
	t.Setenv("TAVILY_BASE_URL", ts.URL)

	application, err := NewApplication(NewConfig("", "", 0, false, "test"))
	require.NoError(t, err)

	application.probe(context.Background())
	assert.Equal(t, int32(1), hits.Load())
}

func TestProbeFailureIsNotFatal(t *testing.T) {
	isolateConfig(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid api key"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	t.Setenv("TAVILY_API_KEY", "tvly-bad-key")
	t.Setenv("TAVILY_BASE_URL", ts.URL)

	application, err := NewApplication(NewConfig("", "", 0, false, "test"))
	require.NoError(t, err)

	// Must return without panicking even though the API rejects the key.
	application.probe(context.Background())
}

func TestRunSSEStopsOnContextCancel(t *testing.T) {
	isolateConfig(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"query": "test", "answer": "ok", "results": []}`))
	}))
	defer ts.Close()

	t.Setenv("TAVILY_API_KEY", "tvly-test-key")
	t.Setenv("TAVILY_BASE_URL", ts.URL)

	application, err := NewApplication(NewConfig("sse", "127.0.0.1", freePort(t), false, "test"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- application.Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}
