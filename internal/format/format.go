// Package format renders backend payloads into the markdown-flavored text
// blocks returned to MCP clients.
//
// The renderings are part of the server's observable contract: consumers
// parse headings like `# Tavily Search Results for: "..."` and sentinel
// sentences like `No search results found.`, so the exact strings here must
// stay stable.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"mcp-tavily/internal/tavily"
)

// NoSearchResults is returned for a search that produced an empty result set.
const NoSearchResults = "No search results found."

// extractPreviewLimit is how many characters of raw content the extraction
// rendering shows before truncating.
const extractPreviewLimit = 500

const searchHeader = `
# Tavily Search Results for: "%s"

Found %d results:

%s

**Search completed successfully.**
`

const searchResultBlock = `
**Result %d:**
**Title:** %s
**URL:** %s
**Content:** %s
**Score:** %s
---
`

// SearchResults renders a search result list. The list is truncated to
// maxResults here; the backend is free to return more. An empty (or fully
// truncated-away) list renders the fixed no-results sentence.
func SearchResults(query string, maxResults int, results []tavily.SearchResult) string {
	if maxResults >= 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	if len(results) == 0 {
		return NoSearchResults
	}

	var blocks strings.Builder
	for i, r := range results {
		fmt.Fprintf(&blocks, searchResultBlock,
			i+1, orNA(r.Title), orNA(r.URL), orNA(r.Content), scoreText(r.Score))
	}
	return fmt.Sprintf(searchHeader, query, len(results), blocks.String())
}

const qnaResult = `
# Tavily Q&A Result for: "%s"

**Answer:** %s

**Note:** This answer is generated from web sources and optimized for factual accuracy.
`

// QNAAnswer renders a direct answer with its provenance note.
func QNAAnswer(query, answer string) string {
	return fmt.Sprintf(qnaResult, query, answer)
}

const contextResult = `
# Tavily Context for: "%s"

## Generated Context:

%s

---
**Context Length:** ~%d words
**Max Tokens Requested:** %d

**Note:** This context is compiled from multiple web sources and formatted for RAG applications.
`

// RAGContext renders assembled context. The word count is always computed
// from the context text itself.
func RAGContext(query, context string, maxTokens int) string {
	return fmt.Sprintf(contextResult, query, context, len(strings.Fields(context)), maxTokens)
}

const extractionHeader = `
# Tavily Content Extraction Results

## Successfully Extracted (%d URLs):

%s

## Failed Extractions (%d URLs):

%s

**Extraction completed.**
`

const extractionBlock = `
**Extract %d:**
**URL:** %s
**Content Preview:** %s
**Full Content Length:** %d characters
`

// ExtractionResults renders extraction successes and failures. The images
// line appears only when the caller asked for images and the result carries
// some.
func ExtractionResults(resp *tavily.ExtractResponse, includeImages bool) string {
	var blocks strings.Builder
	for i, r := range resp.Results {
		fmt.Fprintf(&blocks, extractionBlock,
			i+1, orNA(r.URL), contentPreview(r.RawContent), utf8.RuneCountInString(r.RawContent))
		if includeImages && len(r.Images) > 0 {
			fmt.Fprintf(&blocks, "**Images Found:** %d images\n", len(r.Images))
		}
		blocks.WriteString("---\n")
	}

	succeeded := blocks.String()
	if len(resp.Results) == 0 {
		succeeded = "No content successfully extracted."
	}

	var failedLines []string
	for _, f := range resp.FailedResults {
		url := f.URL
		if url == "" {
			url = "Unknown URL"
		}
		reason := f.Error
		if reason == "" {
			reason = "Unknown error"
		}
		failedLines = append(failedLines, fmt.Sprintf("- %s: %s", url, reason))
	}

	failed := strings.Join(failedLines, "\n")
	if len(failedLines) == 0 {
		failed = "No failed extractions."
	}

	return fmt.Sprintf(extractionHeader, len(resp.Results), succeeded, len(failedLines), failed)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func scoreText(s *float64) string {
	if s == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*s, 'g', -1, 64)
}

func contentPreview(raw string) string {
	runes := []rune(raw)
	if len(runes) <= extractPreviewLimit {
		return raw
	}
	return string(runes[:extractPreviewLimit]) + "..."
}
