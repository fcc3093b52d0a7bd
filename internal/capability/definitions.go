package capability

// Names of the capabilities exposed by the Tavily server.
const (
	ToolSearch         = "tavily_search"
	ToolQNASearch      = "tavily_qna_search"
	ToolGetContext     = "tavily_get_context"
	ToolExtractContent = "tavily_extract_content"
)

// Definitions returns the declarative schemas of the four Tavily tools in
// their fixed declaration order. The order here is the tools/list order and
// the baseline the validator walks in.
func Definitions() []Descriptor {
	return []Descriptor{
		{
			Name: ToolSearch,
			Description: "Perform a comprehensive web search using Tavily API. " +
				"Returns search results with URLs, titles, and content snippets. " +
				"Use this for general web searches when you need multiple sources of information.",
			Parameters: []ParameterSpec{
				{
					Name:        "query",
					Type:        TypeString,
					Description: "The search query to execute",
					Required:    true,
				},
				{
					Name:        "max_results",
					Type:        TypeInteger,
					Description: "Maximum number of results to return (default: 5, max: 20)",
					Default:     5,
					Minimum:     IntPtr(1),
					Maximum:     IntPtr(20),
				},
				{
					Name:        "include_domains",
					Type:        TypeStringArray,
					Description: "List of domains to search within (optional)",
				},
				{
					Name:        "exclude_domains",
					Type:        TypeStringArray,
					Description: "List of domains to exclude from search (optional)",
				},
			},
		},
		{
			Name: ToolQNASearch,
			Description: "Get a direct, concise answer to a specific question using Tavily's Q&A search. " +
				"This is optimized for factual questions where you need a single, accurate answer " +
				"rather than multiple search results.",
			Parameters: []ParameterSpec{
				{
					Name:        "query",
					Type:        TypeString,
					Description: "The question to get an answer for",
					Required:    true,
				},
			},
		},
		{
			Name: ToolGetContext,
			Description: "Get comprehensive context about a topic for RAG (Retrieval-Augmented Generation) applications. " +
				"Returns a formatted context string that contains relevant information from multiple sources. " +
				"Use this when you need detailed background information on a topic.",
			Parameters: []ParameterSpec{
				{
					Name:        "query",
					Type:        TypeString,
					Description: "The topic to get context about",
					Required:    true,
				},
				{
					Name:        "max_tokens",
					Type:        TypeInteger,
					Description: "Maximum number of tokens in the context (default: 4000)",
					Default:     4000,
					Minimum:     IntPtr(100),
					Maximum:     IntPtr(8000),
				},
			},
		},
		{
			Name: ToolExtractContent,
			Description: "Extract raw content from specific URLs using Tavily's extraction API. " +
				"Useful for getting clean, formatted content from web pages. " +
				"Can handle multiple URLs simultaneously (up to 20).",
			Parameters: []ParameterSpec{
				{
					Name:        "urls",
					Type:        TypeStringArray,
					Description: "List of URLs to extract content from (max 20)",
					Required:    true,
					MaxItems:    20,
				},
				{
					Name:        "include_images",
					Type:        TypeBoolean,
					Description: "Whether to include image URLs in the response (default: false)",
					Default:     false,
				},
			},
		},
	}
}

// NewDefaultRegistry builds the registry holding the standard Tavily tool
// set.
func NewDefaultRegistry() (*Registry, error) {
	return NewRegistry(Definitions()...)
}
