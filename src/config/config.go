package config

import "time"

// Config is the root configuration structure
type Config struct {
	Agent    AgentConfig    `yaml:"agent"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AgentConfig contains tool metadata
type AgentConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// AnalysisConfig contains analysis pipeline settings
type AnalysisConfig struct {
	// Delay is the artificial pause before a result is produced,
	// modeling an asynchronous analysis request
	Delay time.Duration `yaml:"delay"`

	// MaxSourceKB caps accepted input size; 0 means unlimited
	MaxSourceKB int `yaml:"max_source_kb"`
}

// OutputConfig contains report output settings
type OutputConfig struct {
	Formats            []string `yaml:"formats"`
	OutputDir          string   `yaml:"output_dir"`
	MaxIssues          int      `yaml:"max_issues"`
	IncludeSuggestions bool     `yaml:"include_suggestions"`
	ScoreBarWidth      int      `yaml:"score_bar_width"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level            string `yaml:"level"`
	Format           string `yaml:"format"` // text, json
	File             string `yaml:"file"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
}
