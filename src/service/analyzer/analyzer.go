package analyzer

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"codelens/src/model"
	"codelens/src/service/catalog"
	"codelens/src/service/matcher"
	"codelens/src/service/metrics"
	"codelens/src/util"
)

// FillerRuleID marks issues injected by the noise stage rather than
// produced by a catalog rule.
const FillerRuleID = "general"

// DefaultDelay is the artificial pause before a result is produced,
// modeling the latency of an asynchronous analysis request.
const DefaultDelay = 2 * time.Second

// Analyzer is the single entry point of the analysis pipeline. Each
// Analyze call is an independent computation; concurrent calls share
// no state apart from the rand source, so callers wanting overlapping
// invocations should give each analyzer its own.
type Analyzer struct {
	rng   *rand.Rand
	delay time.Duration
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithRand replaces the randomness source behind the noise stages
// (filler placement, duplicate-line sampling, suggestion count). Tests
// pass a seeded source to make runs reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(a *Analyzer) { a.rng = rng }
}

// WithDelay overrides the artificial delay before results are produced
func WithDelay(d time.Duration) Option {
	return func(a *Analyzer) { a.delay = d }
}

// New creates an analyzer with an unseeded randomness source and the
// default delay
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		delay: DefaultDelay,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the full pipeline over one source text: catalog rules
// in order, then filler issues, then metrics, score, and suggestions.
// It never fails; empty text and unrecognized languages produce a
// trivial but valid result. Once started it always runs to completion;
// there is no cancellation.
func (a *Analyzer) Analyze(source string, lang model.Language) *model.AnalysisResult {
	start := time.Now()
	util.Debug("Analyzing %d bytes of %s source", len(source), lang)

	if a.delay > 0 {
		time.Sleep(a.delay)
	}

	issues := matcher.RunAll(source, catalog.RulesFor(lang))
	issues = append(issues, a.fillerIssues(source)...)

	result := &model.AnalysisResult{
		Score:       Score(issues),
		Issues:      issues,
		Metrics:     metrics.NewCalculator(a.rng).Compute(source, len(issues)),
		Suggestions: a.pickSuggestions(),
	}

	util.Info("Analysis complete: %d issues, score %d (took %v)",
		len(result.Issues), result.Score, time.Since(start))
	return result
}

// fillerIssues injects the two randomized advisory issues appended to
// every analysis: a documentation note and a naming note. Their lines
// are drawn uniformly from [1, lineCount], which keeps them valid for
// any non-empty or empty text.
func (a *Analyzer) fillerIssues(source string) []model.Issue {
	lineCount := strings.Count(source, "\n") + 1

	return []model.Issue{
		{
			ID:       uuid.New().String(),
			Kind:     model.KindSuggestion,
			Line:     1 + a.rng.Intn(lineCount),
			Column:   0,
			Message:  "Consider adding documentation comments",
			RuleID:   FillerRuleID,
			Severity: model.SeverityLow,
		},
		{
			ID:       uuid.New().String(),
			Kind:     model.KindWarning,
			Line:     1 + a.rng.Intn(lineCount),
			Column:   0,
			Message:  "Variable naming could be improved for clarity",
			RuleID:   FillerRuleID,
			Severity: model.SeverityMedium,
		},
	}
}
