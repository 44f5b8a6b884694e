package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"codelens/src/controller"
	"codelens/src/model"
	"codelens/src/service/report"
	"codelens/src/util"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		lang      string
		outputDir string
		format    string
		noDelay   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a source file for quality issues",
		Long:  "Runs the rule catalog for the detected language over a source file (or stdin) and prints the result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, path, err := readSource(args)
			if err != nil {
				return err
			}

			language := model.Language(lang)
			if lang == "" {
				language = languageFromPath(path)
			}

			if noDelay {
				h.cfg.Analysis.Delay = 0
			}

			analysisCtrl := controller.NewAnalysisController(h.cfg)
			start := time.Now()
			result, err := analysisCtrl.Analyze(controller.AnalyzeRequest{
				Source:   source,
				Language: language,
			})
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}
			util.Debug("Analysis returned after %v", time.Since(start))

			if outputDir != "" {
				h.cfg.Output.OutputDir = outputDir
				if format != "" {
					h.cfg.Output.Formats = []string{format}
				}

				reportCtrl := controller.NewReportController(h.cfg)
				paths, err := reportCtrl.GenerateReports(result, language)
				if err != nil {
					return fmt.Errorf("generating reports: %w", err)
				}
				for _, p := range paths {
					fmt.Printf("Report written to %s\n", p)
				}
				return nil
			}

			if format != "" {
				reportCtrl := controller.NewReportController(h.cfg)
				output, err := reportCtrl.GenerateToString(result, language, format)
				if err != nil {
					return fmt.Errorf("generating report: %w", err)
				}
				fmt.Println(output)
				return nil
			}

			printResult(result, language, h.cfg.Output.ScoreBarWidth)
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Source language (java, python, cpp); detected from file extension if omitted")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Write report files to this directory instead of printing")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Report format (json, markdown, text)")
	cmd.Flags().BoolVar(&noDelay, "no-delay", false, "Skip the artificial analysis delay")

	return cmd
}

// readSource reads the file argument, or stdin when no argument is given
func readSource(args []string) (source, path string, err error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading source file: %w", err)
	}
	return string(data), args[0], nil
}

// languageFromPath routes input to a language by file extension. This
// lives at the CLI boundary; the analysis core only sees the declared
// language.
func languageFromPath(path string) model.Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".java":
		return model.LanguageJava
	case ".py":
		return model.LanguagePython
	case ".cpp", ".cc", ".cxx", ".hpp", ".h":
		return model.LanguageCpp
	default:
		return ""
	}
}

func printResult(result *model.AnalysisResult, lang model.Language, barWidth int) {
	bold := color.New(color.Bold)

	bold.Printf("Analysis result (%s)\n\n", langLabel(lang))

	scoreColor := color.New(color.FgRed)
	switch {
	case result.Score >= 80:
		scoreColor = color.New(color.FgGreen)
	case result.Score >= 50:
		scoreColor = color.New(color.FgYellow)
	}
	fmt.Printf("Score: %s ", report.ScoreBar(result.Score, barWidth))
	scoreColor.Printf("%d/100\n\n", result.Score)

	m := result.Metrics
	fmt.Printf("Lines of code:         %d\n", m.LinesOfCode)
	fmt.Printf("Cyclomatic complexity: %d\n", m.CyclomaticComplexity)
	fmt.Printf("Maintainability index: %d\n", m.MaintainabilityIndex)
	fmt.Printf("Duplicate lines:       %d\n", m.DuplicateLines)
	fmt.Printf("Test coverage:         %d%%\n\n", m.TestCoverage)

	if len(result.Issues) > 0 {
		bold.Printf("Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			kindColor(issue.Kind).Printf("  %-10s", issue.Kind)
			fmt.Printf(" %4d:%-3d %s [%s/%s]\n",
				issue.Line, issue.Column, issue.Message, issue.RuleID, issue.Severity)
		}
		fmt.Println()
	}

	if len(result.Suggestions) > 0 {
		bold.Println("Suggestions:")
		for _, s := range result.Suggestions {
			fmt.Println("  - " + s)
		}
	}
}

func langLabel(lang model.Language) string {
	if lang == "" {
		return "unknown language"
	}
	return string(lang)
}

func kindColor(kind model.Kind) *color.Color {
	switch kind {
	case model.KindError:
		return color.New(color.FgRed)
	case model.KindWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}
