package config

import "time"

const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultServerURL      = "http://localhost:8080"
	DefaultGitHubAPIURL   = "https://api.github.com"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			ServerURL:      DefaultServerURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		GitHub: GitHub{
			APIBaseURL:     DefaultGitHubAPIURL,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
