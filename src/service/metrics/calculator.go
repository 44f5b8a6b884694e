package metrics

import (
	"math/rand"
	"strings"

	"codelens/src/model"
)

// branchTokens approximate decision points. Counted as raw substrings,
// case-sensitive, without word-boundary checks.
var branchTokens = []string{"if", "else", "while", "for", "switch", "case"}

// Calculator derives per-analysis heuristics from source text and the
// total issue count. Duplicate-line sampling is the only randomized
// part; everything else is a pure function of its inputs.
type Calculator struct {
	rng *rand.Rand
}

// NewCalculator creates a calculator drawing noise from rng
func NewCalculator(rng *rand.Rand) *Calculator {
	return &Calculator{rng: rng}
}

// Compute derives all metrics for one analysis run
func (c *Calculator) Compute(source string, issueCount int) model.Metrics {
	loc := linesOfCode(source)

	complexity := loc / 10
	for _, tok := range branchTokens {
		complexity += strings.Count(source, tok)
	}
	if complexity < 1 {
		complexity = 1
	}

	maintainability := 100 - 5*issueCount - complexity/2
	if maintainability < 10 {
		maintainability = 10
	}

	coverage := 100 - 3*issueCount
	if coverage < 0 {
		coverage = 0
	}

	return model.Metrics{
		LinesOfCode:          loc,
		CyclomaticComplexity: complexity,
		MaintainabilityIndex: maintainability,
		DuplicateLines:       c.rng.Intn(5),
		TestCoverage:         coverage,
	}
}

// linesOfCode counts non-blank lines that are not single-line comments
func linesOfCode(source string) int {
	count := 0
	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		count++
	}
	return count
}
