package controller

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codelens/src/config"
	"codelens/src/model"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Analysis.Delay = 0
	return cfg
}

func TestAnalyzeProducesResult(t *testing.T) {
	ctrl := NewAnalysisController(testConfig())

	result, err := ctrl.Analyze(AnalyzeRequest{
		Source:   "public class calculator {}",
		Language: model.LanguageJava,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
	assert.NotEmpty(t, result.Issues)
	assert.NotEmpty(t, result.Suggestions)
}

func TestAnalyzeUnknownLanguage(t *testing.T) {
	ctrl := NewAnalysisController(testConfig())

	result, err := ctrl.Analyze(AnalyzeRequest{Source: "text", Language: "basic"})

	require.NoError(t, err)
	require.NotNil(t, result)
}

func TestAnalyzeRejectsOversizedInput(t *testing.T) {
	cfg := testConfig()
	cfg.Analysis.MaxSourceKB = 1
	ctrl := NewAnalysisController(cfg)

	_, err := ctrl.Analyze(AnalyzeRequest{
		Source:   strings.Repeat("x", 2048),
		Language: model.LanguageJava,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "KB limit")
}

func TestGenerateReportsWritesConfiguredFormats(t *testing.T) {
	cfg := testConfig()
	cfg.Output.OutputDir = t.TempDir()
	cfg.Output.Formats = []string{"json", "markdown"}

	result, err := NewAnalysisController(cfg).Analyze(AnalyzeRequest{
		Source:   "from os import *\n",
		Language: model.LanguagePython,
	})
	require.NoError(t, err)

	paths, err := NewReportController(cfg).GenerateReports(result, model.LanguagePython)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Contains(t, paths[0], "python-analysis-report.json")
	assert.Contains(t, paths[1], "python-analysis-report.md")
}

func TestGenerateToStringUnsupportedFormat(t *testing.T) {
	cfg := testConfig()
	result, err := NewAnalysisController(cfg).Analyze(AnalyzeRequest{Source: "", Language: model.LanguageCpp})
	require.NoError(t, err)

	_, err = NewReportController(cfg).GenerateToString(result, model.LanguageCpp, "pdf")
	require.Error(t, err)
}
