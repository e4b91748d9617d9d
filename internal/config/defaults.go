package config

import "time"

const (
	defaultHTTPAddress     = "localhost:8080"
	defaultRequestTimeout  = 10 * time.Second
	defaultShutdownTimeout = 5 * time.Second
	defaultDSN             = "memory://"
	defaultFrontendURL     = "http://localhost:8080"
	defaultVersion         = "dev"
	defaultRetryAttempts   = 3
	defaultRetryBaseDelay  = 200 * time.Millisecond
)

// defaults returns the values used for every field that none of the
// configuration sources has set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:     defaultVersion,
			FrontendURL: defaultFrontendURL,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Notifier: Notifier{
			RetryAttempts:  defaultRetryAttempts,
			RetryBaseDelay: defaultRetryBaseDelay,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
	}
}
