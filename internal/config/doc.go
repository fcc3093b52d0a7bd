// Package config provides configuration management for mcp-tavily.
//
// Configuration is loaded from multiple sources and merged in order, with
// later sources overriding earlier ones:
//
//  1. Built-in defaults
//  2. User configuration (~/.config/mcp-tavily/config.yaml)
//  3. Project configuration (./.mcp-tavily/config.yaml)
//  4. Environment variables (TAVILY_API_KEY, TAVILY_BASE_URL)
//
// A .env file in the working directory is read before the environment layer,
// so a key can live next to a checkout without being exported globally.
// Variables already present in the real environment always win over .env.
//
// # Configuration Structure
//
//	apiKey: "tvly-..."     # usually supplied via TAVILY_API_KEY instead
//	baseURL: ""            # override the API endpoint (proxies, testing)
//	logLevel: "info"       # debug | info | warn | error
//	server:
//	  transport: "stdio"   # stdio | sse
//	  host: "localhost"
//	  port: 8080
//	client:
//	  timeoutSeconds: 30
//	  retryMax: 0
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if cfg.APIKey == "" {
//	    log.Fatal("TAVILY_API_KEY is not set")
//	}
package config
