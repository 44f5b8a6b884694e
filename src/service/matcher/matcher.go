package matcher

import (
	"strings"

	"github.com/google/uuid"

	"codelens/src/model"
)

// Run applies a single rule to source text and returns one issue per
// match. Find-all rules yield every non-overlapping occurrence;
// first-match rules yield at most one issue. A rule that never matches
// contributes nothing, which is not an error. Aside from generated
// issue IDs the result is a pure function of (text, rule).
func Run(text string, rule model.Rule) []model.Issue {
	if text == "" {
		return nil
	}

	var starts []int
	if rule.FindAll {
		for _, loc := range rule.Pattern.FindAllStringIndex(text, -1) {
			starts = append(starts, loc[0])
		}
	} else {
		if loc := rule.Pattern.FindStringIndex(text); loc != nil {
			starts = append(starts, loc[0])
		}
	}

	issues := make([]model.Issue, 0, len(starts))
	for _, start := range starts {
		line, column := locate(text, start)
		issues = append(issues, model.Issue{
			ID:       uuid.New().String(),
			Kind:     rule.Kind,
			Line:     line,
			Column:   column,
			Message:  rule.Message,
			RuleID:   rule.ID,
			Severity: rule.Severity,
		})
	}
	return issues
}

// RunAll applies rules in order and concatenates their issues,
// preserving catalog application order.
func RunAll(text string, rules []model.Rule) []model.Issue {
	var issues []model.Issue
	for _, rule := range rules {
		issues = append(issues, Run(text, rule)...)
	}
	return issues
}

// locate converts a match start offset into a 1-based line number and
// a column measured from the nearest preceding line break. A match
// before any line break gets column 0.
func locate(text string, start int) (line, column int) {
	prefix := text[:start]
	line = 1 + strings.Count(prefix, "\n")

	nl := strings.LastIndexByte(prefix, '\n')
	if nl < 0 {
		return line, 0
	}
	return line, start - nl
}
