package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"codelens/src/config"
	"codelens/src/model"
	"codelens/src/util"
)

// Generator renders one AnalysisResult into a report. It treats the
// result as read-only input.
type Generator struct {
	cfg config.OutputConfig
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.OutputConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Generate renders a report in the specified format
func (g *Generator) Generate(result *model.AnalysisResult, lang model.Language, format string) (string, error) {
	util.Debug("Generating report in %s format (%d issues)", format, len(result.Issues))
	switch format {
	case "json":
		return g.generateJSON(result, lang)
	case "markdown", "md":
		return g.generateMarkdown(result, lang)
	case "text", "txt":
		return g.generateText(result, lang)
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// document wraps a result with report header fields for JSON output
type document struct {
	Tool        string                `json:"tool"`
	Language    model.Language        `json:"language"`
	GeneratedAt time.Time             `json:"generated_at"`
	Result      *model.AnalysisResult `json:"result"`
}

func (g *Generator) generateJSON(result *model.AnalysisResult, lang model.Language) (string, error) {
	doc := document{
		Tool:        "codelens",
		Language:    lang,
		GeneratedAt: time.Now().UTC(),
		Result:      result,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateMarkdown(result *model.AnalysisResult, lang model.Language) (string, error) {
	var sb strings.Builder

	sb.WriteString("# Code Analysis Report\n\n")
	sb.WriteString(fmt.Sprintf("**Language:** %s\n", lang))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().UTC().Format("2006-01-02 15:04:05 UTC")))

	sb.WriteString("## Score\n\n")
	sb.WriteString(fmt.Sprintf("`%s` **%d/100**\n\n", ScoreBar(result.Score, g.barWidth()), result.Score))

	errors, warnings, suggestions := countKinds(result.Issues)
	sb.WriteString("## Issues by Kind\n\n")
	sb.WriteString("| Kind | Count |\n")
	sb.WriteString("|------|-------|\n")
	sb.WriteString(fmt.Sprintf("| error | %d |\n", errors))
	sb.WriteString(fmt.Sprintf("| warning | %d |\n", warnings))
	sb.WriteString(fmt.Sprintf("| suggestion | %d |\n\n", suggestions))

	sb.WriteString("## Metrics\n\n")
	m := result.Metrics
	sb.WriteString(fmt.Sprintf("- **Lines of Code:** %d\n", m.LinesOfCode))
	sb.WriteString(fmt.Sprintf("- **Cyclomatic Complexity:** %d\n", m.CyclomaticComplexity))
	sb.WriteString(fmt.Sprintf("- **Maintainability Index:** %d\n", m.MaintainabilityIndex))
	sb.WriteString(fmt.Sprintf("- **Duplicate Lines:** %d\n", m.DuplicateLines))
	sb.WriteString(fmt.Sprintf("- **Test Coverage:** %d%%\n\n", m.TestCoverage))

	issues := g.limitIssues(result.Issues)
	if len(issues) > 0 {
		sb.WriteString(fmt.Sprintf("## Issues (%d of %d)\n\n", len(issues), len(result.Issues)))
		for _, issue := range issues {
			sb.WriteString(fmt.Sprintf("- **[%s]** line %d, col %d: %s (`%s`, severity %s)\n",
				issue.Kind, issue.Line, issue.Column, issue.Message, issue.RuleID, issue.Severity))
		}
		sb.WriteString("\n")
	}

	if g.cfg.IncludeSuggestions && len(result.Suggestions) > 0 {
		sb.WriteString("## Suggestions\n\n")
		for _, s := range result.Suggestions {
			sb.WriteString(fmt.Sprintf("- %s\n", s))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func (g *Generator) generateText(result *model.AnalysisResult, lang model.Language) (string, error) {
	var sb strings.Builder

	sb.WriteString("Code Analysis Report\n")
	sb.WriteString(fmt.Sprintf("Language:  %s\n", lang))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().UTC().Format("2006-01-02 15:04:05 UTC")))

	sb.WriteString(fmt.Sprintf("Score: %s %d/100\n\n", ScoreBar(result.Score, g.barWidth()), result.Score))

	errors, warnings, suggestions := countKinds(result.Issues)
	sb.WriteString(fmt.Sprintf("Errors: %d  Warnings: %d  Suggestions: %d\n\n", errors, warnings, suggestions))

	m := result.Metrics
	sb.WriteString(fmt.Sprintf("Lines of code:         %d\n", m.LinesOfCode))
	sb.WriteString(fmt.Sprintf("Cyclomatic complexity: %d\n", m.CyclomaticComplexity))
	sb.WriteString(fmt.Sprintf("Maintainability index: %d\n", m.MaintainabilityIndex))
	sb.WriteString(fmt.Sprintf("Duplicate lines:       %d\n", m.DuplicateLines))
	sb.WriteString(fmt.Sprintf("Test coverage:         %d%%\n\n", m.TestCoverage))

	for _, issue := range g.limitIssues(result.Issues) {
		sb.WriteString(fmt.Sprintf("%-10s %4d:%-3d %s [%s/%s]\n",
			issue.Kind, issue.Line, issue.Column, issue.Message, issue.RuleID, issue.Severity))
	}

	if g.cfg.IncludeSuggestions && len(result.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range result.Suggestions {
			sb.WriteString("  - " + s + "\n")
		}
	}

	return sb.String(), nil
}

// limitIssues returns the first MaxIssues issues; 0 means no limit
func (g *Generator) limitIssues(issues []model.Issue) []model.Issue {
	if g.cfg.MaxIssues <= 0 || len(issues) <= g.cfg.MaxIssues {
		return issues
	}
	return issues[:g.cfg.MaxIssues]
}

func (g *Generator) barWidth() int {
	if g.cfg.ScoreBarWidth > 0 {
		return g.cfg.ScoreBarWidth
	}
	return 20
}

// ScoreBar renders a fixed-width text gauge for a 0-100 score
func ScoreBar(score, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func countKinds(issues []model.Issue) (errors, warnings, suggestions int) {
	for _, issue := range issues {
		switch issue.Kind {
		case model.KindError:
			errors++
		case model.KindWarning:
			warnings++
		case model.KindSuggestion:
			suggestions++
		}
	}
	return
}
