package app

// Config holds the options of one serve invocation. Zero values for
// Transport, Host and Port mean "use the configured value"; flags only
// override what the user actually set.
type Config struct {
	// Transport selects how MCP is served: stdio or sse.
	Transport string

	// Host and Port bind the SSE listener. Ignored for stdio.
	Host string
	Port int

	// Debug forces debug-level logging regardless of the configured level.
	Debug bool

	// Version is reported to MCP clients during initialization.
	Version string
}

// NewConfig creates a new application configuration
func NewConfig(transport, host string, port int, debug bool, version string) *Config {
	return &Config{
		Transport: transport,
		Host:      host,
		Port:      port,
		Debug:     debug,
		Version:   version,
	}
}
