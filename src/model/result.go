package model

// Metrics contains size and quality heuristics derived per analysis.
// These are heuristic values, not exact static analysis: complexity is
// a token-count approximation and duplicate_lines is a sampled
// placeholder rather than real clone detection.
type Metrics struct {
	LinesOfCode          int `json:"lines_of_code"`
	CyclomaticComplexity int `json:"cyclomatic_complexity"`
	MaintainabilityIndex int `json:"maintainability_index"`
	DuplicateLines       int `json:"duplicate_lines"`
	TestCoverage         int `json:"test_coverage"`
}

// AnalysisResult is the complete output of one analysis run. It is
// immutable once constructed and owned by the caller.
type AnalysisResult struct {
	Score       int      `json:"score"`
	Issues      []Issue  `json:"issues"`
	Metrics     Metrics  `json:"metrics"`
	Suggestions []string `json:"suggestions"`
}
