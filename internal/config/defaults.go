package config

// Defaults applied before any file or environment layer.
const (
	DefaultLogLevel       = "info"
	DefaultTransport      = TransportStdio
	DefaultHost           = "localhost"
	DefaultPort           = 8080
	DefaultTimeoutSeconds = 30
	DefaultRetryMax       = 0
)

// GetDefaultConfig returns the configuration mcp-tavily runs with when no
// file or environment variable overrides anything. The API key has no
// default; serving without one is refused at startup.
func GetDefaultConfig() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		Server: ServerConfig{
			Transport: DefaultTransport,
			Host:      DefaultHost,
			Port:      DefaultPort,
		},
		Client: ClientConfig{
			TimeoutSeconds: DefaultTimeoutSeconds,
			RetryMax:       DefaultRetryMax,
		},
	}
}
