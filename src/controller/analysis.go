package controller

import (
	"fmt"
	"time"

	"codelens/src/config"
	"codelens/src/model"
	"codelens/src/service/analyzer"
	"codelens/src/util"
)

// AnalysisController orchestrates the analysis pipeline for one request
type AnalysisController struct {
	cfg *config.Config
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(cfg *config.Config) *AnalysisController {
	return &AnalysisController{cfg: cfg}
}

// AnalyzeRequest represents a request to analyze a source text
type AnalyzeRequest struct {
	Source   string
	Language model.Language
}

// Analyze runs the full analysis pipeline. Analysis itself never
// fails; the only rejection is oversized input, which is checked here
// at the boundary rather than in the core.
func (c *AnalysisController) Analyze(req AnalyzeRequest) (*model.AnalysisResult, error) {
	startTime := time.Now()
	util.Info("Starting analysis (language: %s, %d bytes)", req.Language, len(req.Source))

	if max := c.cfg.Analysis.MaxSourceKB; max > 0 && len(req.Source) > max*1024 {
		return nil, fmt.Errorf("source exceeds %d KB limit", max)
	}

	if !req.Language.Known() {
		util.Warn("Unrecognized language %q, proceeding without catalog rules", req.Language)
	}

	a := analyzer.New(analyzer.WithDelay(c.cfg.Analysis.Delay))
	result := a.Analyze(req.Source, req.Language)

	util.Info("Analysis finished: score %d, %d issues (took %v)",
		result.Score, len(result.Issues), time.Since(startTime))

	return result, nil
}
