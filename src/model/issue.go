package model

// Kind classifies an issue for display and scoring
type Kind string

const (
	KindError      Kind = "error"
	KindWarning    Kind = "warning"
	KindSuggestion Kind = "suggestion"
)

// Severity represents how urgent a rule considers its findings.
// Set by the rule definition, independent of Kind.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Language identifies a supported source language
type Language string

const (
	LanguageJava   Language = "java"
	LanguagePython Language = "python"
	LanguageCpp    Language = "cpp"
)

// Known reports whether the language has a rule set in the catalog.
// Unknown languages are still analyzable; they simply produce no
// catalog-sourced issues.
func (l Language) Known() bool {
	switch l {
	case LanguageJava, LanguagePython, LanguageCpp:
		return true
	}
	return false
}

// Issue represents a single detected concern in the analyzed source
type Issue struct {
	ID       string   `json:"id"`
	Kind     Kind     `json:"kind"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Message  string   `json:"message"`
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
}
