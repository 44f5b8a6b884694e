package controller

import (
	"os"
	"path/filepath"

	"codelens/src/config"
	"codelens/src/model"
	"codelens/src/service/report"
	"codelens/src/util"
)

// ReportController handles report generation
type ReportController struct {
	cfg *config.Config
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config) *ReportController {
	return &ReportController{cfg: cfg}
}

// GenerateReports writes reports in all configured formats and returns
// the written paths. An export failure never invalidates the result;
// the caller may retry or pick another format.
func (c *ReportController) GenerateReports(result *model.AnalysisResult, lang model.Language) ([]string, error) {
	util.Debug("Generating reports for %d formats: %v", len(c.cfg.Output.Formats), c.cfg.Output.Formats)
	generator := report.NewGenerator(c.cfg.Output)
	var outputPaths []string

	for _, format := range c.cfg.Output.Formats {
		output, err := generator.Generate(result, lang, format)
		if err != nil {
			util.Error("Failed to generate %s report: %v", format, err)
			return nil, err
		}

		outputPath := c.getOutputPath(lang, format)

		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			util.Error("Failed to create output directory: %v", err)
			return nil, err
		}

		if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
			util.Error("Failed to write report to %s: %v", outputPath, err)
			return nil, err
		}

		util.Info("Report written: %s", outputPath)
		outputPaths = append(outputPaths, outputPath)
	}

	return outputPaths, nil
}

// GenerateToString generates a report to a string
func (c *ReportController) GenerateToString(result *model.AnalysisResult, lang model.Language, format string) (string, error) {
	return report.NewGenerator(c.cfg.Output).Generate(result, lang, format)
}

func (c *ReportController) getOutputPath(lang model.Language, format string) string {
	ext := format
	switch format {
	case "markdown":
		ext = "md"
	case "text":
		ext = "txt"
	}

	filename := string(lang) + "-analysis-report." + ext
	return filepath.Join(c.cfg.Output.OutputDir, filename)
}
