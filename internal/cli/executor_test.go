package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-tavily/internal/capability"
	"mcp-tavily/internal/dispatch"
	"mcp-tavily/internal/tavily"
)

type stubBackend struct {
	answer    string
	answerErr error
}

func (s *stubBackend) Search(ctx context.Context, req tavily.SearchRequest) (*tavily.SearchResponse, error) {
	return &tavily.SearchResponse{Query: req.Query}, nil
}

func (s *stubBackend) Answer(ctx context.Context, query string) (string, error) {
	if s.answerErr != nil {
		return "", s.answerErr
	}
	return s.answer, nil
}

func (s *stubBackend) SearchContext(ctx context.Context, query string, maxTokens int) (string, error) {
	return "[]", nil
}

func (s *stubBackend) Extract(ctx context.Context, req tavily.ExtractRequest) (*tavily.ExtractResponse, error) {
	return &tavily.ExtractResponse{}, nil
}

func newTestExecutor(t *testing.T, backend dispatch.Backend) (*Executor, *bytes.Buffer) {
	t.Helper()
	d, err := dispatch.New(backend)
	require.NoError(t, err)
	var buf bytes.Buffer
	return NewExecutorWithWriter(d, &buf), &buf
}

func TestExecutePrintsResponseText(t *testing.T) {
	exec, buf := newTestExecutor(t, &stubBackend{answer: "Paris is the capital of France."})

	err := exec.Execute(context.Background(), capability.ToolQNASearch, map[string]any{
		"query": "capital of France",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "**Answer:** Paris is the capital of France.")
	assert.Equal(t, "\n", out[len(out)-1:], "output should end with a newline")
}

func TestExecuteReturnsBackendFailure(t *testing.T) {
	exec, buf := newTestExecutor(t, &stubBackend{answerErr: errors.New("API quota exhausted")})

	err := exec.Execute(context.Background(), capability.ToolQNASearch, map[string]any{
		"query": "capital of France",
	})
	require.Error(t, err)
	assert.Equal(t, "Q&A search failed: API quota exhausted", err.Error())
	assert.Empty(t, buf.String(), "failed calls must not print to the output writer")
}

func TestExecuteReturnsValidationFailure(t *testing.T) {
	exec, buf := newTestExecutor(t, &stubBackend{})

	err := exec.Execute(context.Background(), capability.ToolSearch, map[string]any{
		"query":       "golang",
		"max_results": 0,
	})
	require.Error(t, err)
	assert.Equal(t, `Invalid arguments for tavily_search: parameter "max_results": must be at least 1`, err.Error())
	assert.Empty(t, buf.String())
}

func TestExecuteReturnsUnknownTool(t *testing.T) {
	exec, _ := newTestExecutor(t, &stubBackend{})

	err := exec.Execute(context.Background(), "tavily_translate", nil)
	require.Error(t, err)
	assert.Equal(t, "Error: Unknown tool: tavily_translate", err.Error())
}

func TestNewToolExecutorRequiresAPIKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("TAVILY_API_KEY", "")
	t.Setenv("TAVILY_BASE_URL", "")

	_, err := NewToolExecutor(ExecutorOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TAVILY_API_KEY environment variable is required")
}

func TestNewToolExecutorWiresTheDispatcher(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("TAVILY_API_KEY", "tvly-test-key")
	t.Setenv("TAVILY_BASE_URL", "")

	exec, err := NewToolExecutor(ExecutorOptions{})
	require.NoError(t, err)
	require.NotNil(t, exec)
	assert.NotNil(t, exec.dispatcher)
	assert.Equal(t, 4, len(exec.dispatcher.ListCapabilities()))
}
