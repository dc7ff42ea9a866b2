package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "prod",
		Server: ServerConfig{
			Port: 3000,
			Host: "localhost",
		},
		Source: SourceConfig{
			Timeout: "10s",
		},
		Cache: CacheConfig{
			TTL:        "5m",
			MaxEntries: 64,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Outputs: []string{"console"},
		},
	}
}
