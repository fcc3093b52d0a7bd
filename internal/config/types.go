package config

// Transport names accepted by the serve command.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config is the top-level configuration for mcp-tavily.
type Config struct {
	// APIKey authenticates against the Tavily API. Usually injected via
	// TAVILY_API_KEY rather than written to a file.
	APIKey string `yaml:"apiKey,omitempty"`

	// BaseURL overrides the API endpoint. Empty means the production API.
	BaseURL string `yaml:"baseURL,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel,omitempty"`

	Server ServerConfig `yaml:"server"`
	Client ClientConfig `yaml:"client"`
}

// ServerConfig defines how the MCP server is exposed.
type ServerConfig struct {
	Transport string `yaml:"transport,omitempty"` // "stdio" or "sse"
	Host      string `yaml:"host,omitempty"`      // SSE bind host
	Port      int    `yaml:"port,omitempty"`      // SSE bind port
}

// ClientConfig tunes the HTTP client talking to the API.
type ClientConfig struct {
	TimeoutSeconds int `yaml:"timeoutSeconds,omitempty"`
	RetryMax       int `yaml:"retryMax,omitempty"`
}
