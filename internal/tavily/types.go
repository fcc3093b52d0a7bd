package tavily

// SearchRequest carries the caller-tunable knobs of a web search.
type SearchRequest struct {
	Query          string
	MaxResults     int
	IncludeDomains []string
	ExcludeDomains []string
}

// SearchResult is a single hit returned by the search endpoint. Score is a
// pointer because the API omits it for some result types and an absent score
// renders differently from a zero one.
type SearchResult struct {
	Title   string   `json:"title"`
	URL     string   `json:"url"`
	Content string   `json:"content"`
	Score   *float64 `json:"score,omitempty"`
}

// SearchResponse is the decoded body of a search call. Answer is only
// populated when the request asked for one.
type SearchResponse struct {
	Query        string         `json:"query"`
	Answer       string         `json:"answer,omitempty"`
	Results      []SearchResult `json:"results"`
	ResponseTime float64        `json:"response_time,omitempty"`
}

// ExtractRequest names the URLs to pull raw content from.
type ExtractRequest struct {
	URLs          []string
	IncludeImages bool
}

// ExtractResult is one successfully extracted page.
type ExtractResult struct {
	URL        string   `json:"url"`
	RawContent string   `json:"raw_content"`
	Images     []string `json:"images,omitempty"`
}

// ExtractFailure is one URL the API could not extract, with its reason.
type ExtractFailure struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// ExtractResponse is the decoded body of an extract call.
type ExtractResponse struct {
	Results       []ExtractResult  `json:"results"`
	FailedResults []ExtractFailure `json:"failed_results"`
	ResponseTime  float64          `json:"response_time,omitempty"`
}

// searchPayload is the wire shape of POST /search.
type searchPayload struct {
	Query          string   `json:"query"`
	SearchDepth    string   `json:"search_depth,omitempty"`
	MaxResults     int      `json:"max_results,omitempty"`
	IncludeDomains []string `json:"include_domains,omitempty"`
	ExcludeDomains []string `json:"exclude_domains,omitempty"`
	IncludeAnswer  bool     `json:"include_answer,omitempty"`
}

// extractPayload is the wire shape of POST /extract.
type extractPayload struct {
	URLs          []string `json:"urls"`
	IncludeImages bool     `json:"include_images,omitempty"`
}
