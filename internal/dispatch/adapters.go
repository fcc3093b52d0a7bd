package dispatch

import (
	"context"

	"mcp-tavily/internal/format"
	"mcp-tavily/internal/tavily"
	"mcp-tavily/internal/validation"
)

// The adapters translate validated arguments into typed backend calls and
// hand the payload to the formatter. They never retry and let errors flow
// back to Dispatch, which owns rendering them.

func searchAdapter(ctx context.Context, backend Backend, args validation.Args) (string, error) {
	query := args.String("query")
	maxResults := args.Int("max_results")

	resp, err := backend.Search(ctx, tavily.SearchRequest{
		Query:          query,
		MaxResults:     maxResults,
		IncludeDomains: args.StringSlice("include_domains"),
		ExcludeDomains: args.StringSlice("exclude_domains"),
	})
	if err != nil {
		return "", err
	}
	return format.SearchResults(query, maxResults, resp.Results), nil
}

func qnaAdapter(ctx context.Context, backend Backend, args validation.Args) (string, error) {
	query := args.String("query")

	answer, err := backend.Answer(ctx, query)
	if err != nil {
		return "", err
	}
	return format.QNAAnswer(query, answer), nil
}

func contextAdapter(ctx context.Context, backend Backend, args validation.Args) (string, error) {
	query := args.String("query")
	maxTokens := args.Int("max_tokens")

	text, err := backend.SearchContext(ctx, query, maxTokens)
	if err != nil {
		return "", err
	}
	return format.RAGContext(query, text, maxTokens), nil
}

func extractAdapter(ctx context.Context, backend Backend, args validation.Args) (string, error) {
	includeImages := args.Bool("include_images")

	resp, err := backend.Extract(ctx, tavily.ExtractRequest{
		URLs:          args.StringSlice("urls"),
		IncludeImages: includeImages,
	})
	if err != nil {
		return "", err
	}
	return format.ExtractionResults(resp, includeImages), nil
}
