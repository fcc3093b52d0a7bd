package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-tavily/internal/tavily"
)

func floatPtr(v float64) *float64 { return &v }

func TestSearchResultsGolden(t *testing.T) {
	got := SearchResults("go routines", 5, []tavily.SearchResult{
		{
			Title:   "Goroutines",
			URL:     "https://go.dev/tour",
			Content: "Lightweight threads.",
			Score:   floatPtr(0.97),
		},
	})

	want := `
# Tavily Search Results for: "go routines"

Found 1 results:


**Result 1:**
**Title:** Goroutines
**URL:** https://go.dev/tour
**Content:** Lightweight threads.
**Score:** 0.97
---


**Search completed successfully.**
`
	assert.Equal(t, want, got)
}

func TestSearchResultsNAFallbacks(t *testing.T) {
	got := SearchResults("anything", 5, []tavily.SearchResult{{}})

	assert.Contains(t, got, "**Title:** N/A")
	assert.Contains(t, got, "**URL:** N/A")
	assert.Contains(t, got, "**Content:** N/A")
	assert.Contains(t, got, "**Score:** N/A")
}

func TestSearchResultsTruncatesToMaxResults(t *testing.T) {
	results := []tavily.SearchResult{
		{Title: "first", URL: "u1", Content: "c1"},
		{Title: "second", URL: "u2", Content: "c2"},
		{Title: "third", URL: "u3", Content: "c3"},
	}

	got := SearchResults("anything", 2, results)
	assert.Contains(t, got, "Found 2 results:")
	assert.Contains(t, got, "**Result 1:**")
	assert.Contains(t, got, "**Result 2:**")
	assert.NotContains(t, got, "**Result 3:**")
	assert.NotContains(t, got, "third")
}

func TestSearchResultsEmpty(t *testing.T) {
	assert.Equal(t, "No search results found.", SearchResults("no hits", 5, nil))
	assert.Equal(t, "No search results found.", SearchResults("no hits", 5, []tavily.SearchResult{}))
}

func TestQNAAnswerGolden(t *testing.T) {
	got := QNAAnswer("What is the capital of France?", "Paris")

	want := `
# Tavily Q&A Result for: "What is the capital of France?"

**Answer:** Paris

**Note:** This answer is generated from web sources and optimized for factual accuracy.
`
	assert.Equal(t, want, got)
}

// A ten-word context reports "~10 words" no matter what token budget was
// requested.
func TestRAGContextWordCount(t *testing.T) {
	context := "one two three four five six seven eight nine ten"
	got := RAGContext("counting", context, 500)

	assert.Contains(t, got, `# Tavily Context for: "counting"`)
	assert.Contains(t, got, "## Generated Context:")
	assert.Contains(t, got, context)
	assert.Contains(t, got, "**Context Length:** ~10 words")
	assert.Contains(t, got, "**Max Tokens Requested:** 500")
	assert.Contains(t, got, "**Note:** This context is compiled from multiple web sources and formatted for RAG applications.")
}

func TestRAGContextCollapsesWhitespaceWhenCounting(t *testing.T) {
	got := RAGContext("q", "  spaced\t\tout\n\nwords  ", 100)
	assert.Contains(t, got, "**Context Length:** ~3 words")
}

func TestExtractionResultsGolden(t *testing.T) {
	got := ExtractionResults(&tavily.ExtractResponse{
		Results: []tavily.ExtractResult{
			{URL: "https://ok.example", RawContent: "short body"},
		},
		FailedResults: []tavily.ExtractFailure{
			{URL: "https://broken.example", Error: "fetch timed out"},
		},
	}, false)

	want := `
# Tavily Content Extraction Results

## Successfully Extracted (1 URLs):


**Extract 1:**
**URL:** https://ok.example
**Content Preview:** short body
**Full Content Length:** 10 characters
---


## Failed Extractions (1 URLs):

- https://broken.example: fetch timed out

**Extraction completed.**
`
	assert.Equal(t, want, got)
}

func TestExtractionPreviewBoundary(t *testing.T) {
	exact := strings.Repeat("a", 500)
	over := strings.Repeat("b", 501)

	got := ExtractionResults(&tavily.ExtractResponse{
		Results: []tavily.ExtractResult{
			{URL: "https://exact.example", RawContent: exact},
			{URL: "https://over.example", RawContent: over},
		},
	}, false)

	assert.Contains(t, got, "**Content Preview:** "+exact+"\n")
	assert.NotContains(t, got, exact+"...")

	assert.Contains(t, got, "**Content Preview:** "+strings.Repeat("b", 500)+"...")
	assert.Contains(t, got, "**Full Content Length:** 501 characters")
}

func TestExtractionImagesLineOnlyWhenRequested(t *testing.T) {
	withImages := &tavily.ExtractResponse{
		Results: []tavily.ExtractResult{
			{URL: "https://ok.example", RawContent: "body", Images: []string{"i1", "i2"}},
		},
	}

	got := ExtractionResults(withImages, true)
	assert.Contains(t, got, "**Images Found:** 2 images")

	got = ExtractionResults(withImages, false)
	assert.NotContains(t, got, "**Images Found:**")

	withoutImages := &tavily.ExtractResponse{
		Results: []tavily.ExtractResult{
			{URL: "https://ok.example", RawContent: "body"},
		},
	}
	got = ExtractionResults(withoutImages, true)
	assert.NotContains(t, got, "**Images Found:**")
}

func TestExtractionEmptySections(t *testing.T) {
	got := ExtractionResults(&tavily.ExtractResponse{}, false)

	assert.Contains(t, got, "## Successfully Extracted (0 URLs):")
	assert.Contains(t, got, "No content successfully extracted.")
	assert.Contains(t, got, "## Failed Extractions (0 URLs):")
	assert.Contains(t, got, "No failed extractions.")
	assert.Contains(t, got, "**Extraction completed.**")
}

func TestExtractionFailureFallbacks(t *testing.T) {
	got := ExtractionResults(&tavily.ExtractResponse{
		FailedResults: []tavily.ExtractFailure{
			{URL: "", Error: ""},
			{URL: "https://known.example", Error: ""},
		},
	}, false)

	require.Contains(t, got, "- Unknown URL: Unknown error")
	assert.Contains(t, got, "- https://known.example: Unknown error")
}

func TestExtractionURLFallback(t *testing.T) {
	got := ExtractionResults(&tavily.ExtractResponse{
		Results: []tavily.ExtractResult{{RawContent: "body"}},
	}, false)
	assert.Contains(t, got, "**URL:** N/A")
}

func TestMultibytePreviewCountsRunes(t *testing.T) {
	raw := strings.Repeat("ü", 501)
	got := ExtractionResults(&tavily.ExtractResponse{
		Results: []tavily.ExtractResult{{URL: "https://x.example", RawContent: raw}},
	}, false)

	assert.Contains(t, got, strings.Repeat("ü", 500)+"...")
	assert.Contains(t, got, "**Full Content Length:** 501 characters")
}
