package config

import "time"

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "codelens",
			Version:     "1.0.0",
			Description: "Rule-based source code analysis",
		},
		Analysis: AnalysisConfig{
			Delay:       2 * time.Second,
			MaxSourceKB: 512,
		},
		Output: OutputConfig{
			Formats:            []string{"markdown"},
			OutputDir:          ".",
			MaxIssues:          10,
			IncludeSuggestions: true,
			ScoreBarWidth:      20,
		},
		Logging: LoggingConfig{
			Level:            "info",
			Format:           "text",
			IncludeTimestamp: true,
		},
	}
}
