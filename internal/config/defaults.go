package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Dir: "aikaleimat",
		},
		Report: ReportConfig{
			Granularity: 15,
			Weekdays:    []string{"MA", "TI", "KE", "TO", "PE"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
