package matcher

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codelens/src/model"
)

func testRule(pattern string, findAll bool) model.Rule {
	return model.Rule{
		ID:       "test-rule",
		Pattern:  regexp.MustCompile(pattern),
		FindAll:  findAll,
		Kind:     model.KindWarning,
		Severity: model.SeverityMedium,
		Message:  "test message",
	}
}

func TestFindAllModeYieldsEveryOccurrence(t *testing.T) {
	text := "foo bar foo baz foo"
	issues := Run(text, testRule(`foo`, true))

	require.Len(t, issues, 3)
	for _, issue := range issues {
		assert.Equal(t, "test-rule", issue.RuleID)
		assert.Equal(t, model.KindWarning, issue.Kind)
		assert.Equal(t, model.SeverityMedium, issue.Severity)
		assert.Equal(t, "test message", issue.Message)
	}
}

func TestFirstMatchModeYieldsAtMostOne(t *testing.T) {
	text := "foo foo foo foo foo"
	issues := Run(text, testRule(`foo`, false))

	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Line)
	assert.Equal(t, 0, issues[0].Column)
}

func TestNoMatchIsNotAnError(t *testing.T) {
	issues := Run("nothing to see here", testRule(`absent`, true))
	assert.Empty(t, issues)
}

func TestEmptyTextYieldsNoIssues(t *testing.T) {
	assert.Empty(t, Run("", testRule(`.*`, true)))
	assert.Empty(t, Run("", testRule(`.*`, false)))
}

func TestLineAndColumnComputation(t *testing.T) {
	// offsets: 'm' of the second line match sits at 8, newline at 3
	text := "abc\ndef match"
	issues := Run(text, testRule(`match`, false))

	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Line)
	assert.Equal(t, 5, issues[0].Column)
}

func TestColumnIsZeroBeforeAnyLineBreak(t *testing.T) {
	issues := Run("prefix match", testRule(`match`, false))

	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Line)
	assert.Equal(t, 0, issues[0].Column)
}

func TestMatchAtTextStart(t *testing.T) {
	issues := Run("match and more", testRule(`match`, false))

	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Line)
	assert.Equal(t, 0, issues[0].Column)
}

func TestFindAllLineNumbersAcrossLines(t *testing.T) {
	text := "foo\nbar\nfoo\nbaz foo"
	issues := Run(text, testRule(`foo`, true))

	require.Len(t, issues, 3)
	assert.Equal(t, 1, issues[0].Line)
	assert.Equal(t, 3, issues[1].Line)
	assert.Equal(t, 4, issues[2].Line)
}

func TestRunIsIdempotentExceptIDs(t *testing.T) {
	text := "foo\nbar foo\nfoo"
	rule := testRule(`foo`, true)

	first := Run(text, rule)
	second := Run(text, rule)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.NotEmpty(t, first[i].ID)
		assert.NotEqual(t, first[i].ID, second[i].ID)

		a, b := first[i], second[i]
		a.ID, b.ID = "", ""
		assert.Equal(t, a, b)
	}
}

func TestRunAllPreservesRuleOrder(t *testing.T) {
	rules := []model.Rule{
		{ID: "second-pattern", Pattern: regexp.MustCompile(`bar`), Kind: model.KindError, Severity: model.SeverityHigh, Message: "b"},
		{ID: "first-pattern", Pattern: regexp.MustCompile(`foo`), Kind: model.KindWarning, Severity: model.SeverityLow, Message: "f"},
	}

	issues := RunAll("foo bar", rules)

	require.Len(t, issues, 2)
	assert.Equal(t, "second-pattern", issues[0].RuleID)
	assert.Equal(t, "first-pattern", issues[1].RuleID)
}
