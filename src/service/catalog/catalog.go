package catalog

import (
	"regexp"

	"codelens/src/model"
)

// byLanguage is the static rule catalog, keyed by language. Built once
// at package init and treated as read-only afterwards.
var byLanguage = map[model.Language][]model.Rule{
	model.LanguageJava: {
		{
			ID:       "naming-convention",
			Pattern:  regexp.MustCompile(`class\s+[a-z]\w*`),
			Kind:     model.KindWarning,
			Severity: model.SeverityMedium,
			Message:  "Class names should start with an uppercase letter",
		},
		{
			ID:       "method-size",
			Pattern:  regexp.MustCompile(`public\s+static\s+void\s+main`),
			Kind:     model.KindSuggestion,
			Severity: model.SeverityLow,
			Message:  "Main method detected, keep entry points small and delegate to helpers",
		},
		{
			ID:       "unused-imports",
			Pattern:  regexp.MustCompile(`import\s+[\w.]+\s*;`),
			FindAll:  true,
			Kind:     model.KindSuggestion,
			Severity: model.SeverityLow,
			Message:  "Potentially unused import",
		},
		{
			ID:       "performance",
			Pattern:  regexp.MustCompile(`for\s*\([^)]*\)[^{]*\{[^{}]*for\s*\(`),
			Kind:     model.KindWarning,
			Severity: model.SeverityHigh,
			Message:  "Nested loops detected, consider restructuring to reduce complexity",
		},
	},
	model.LanguagePython: {
		{
			ID:       "naming-convention",
			Pattern:  regexp.MustCompile(`def\s+\w*[A-Z]\w*\s*\(`),
			Kind:     model.KindWarning,
			Severity: model.SeverityMedium,
			Message:  "Function names should use snake_case",
		},
		{
			ID:       "import-style",
			Pattern:  regexp.MustCompile(`import\s+\*`),
			Kind:     model.KindWarning,
			Severity: model.SeverityMedium,
			Message:  "Wildcard imports obscure the module namespace",
		},
		{
			ID:       "exception-handling",
			Pattern:  regexp.MustCompile(`except\s*:`),
			Kind:     model.KindError,
			Severity: model.SeverityHigh,
			Message:  "Bare except clause catches all exceptions, including system exits",
		},
	},
	model.LanguageCpp: {
		{
			ID:       "include-review",
			Pattern:  regexp.MustCompile(`#include\s*[<"][^<">]+[>"]`),
			FindAll:  true,
			Kind:     model.KindSuggestion,
			Severity: model.SeverityLow,
			Message:  "Verify this include directive is required",
		},
		{
			ID:       "namespace-pollution",
			Pattern:  regexp.MustCompile(`using\s+namespace\s+std`),
			Kind:     model.KindWarning,
			Severity: model.SeverityMedium,
			Message:  "using namespace std pollutes the global namespace",
		},
		{
			ID:       "memory-management",
			Pattern:  regexp.MustCompile(`\bnew\s+\w+`),
			Kind:     model.KindWarning,
			Severity: model.SeverityHigh,
			Message:  "Raw pointer allocation, prefer smart pointers or containers",
		},
	},
}

// RulesFor returns the rule set for a language. Unrecognized languages
// return nil; analysis proceeds with zero catalog-sourced issues.
func RulesFor(lang model.Language) []model.Rule {
	return byLanguage[lang]
}

// Languages returns all languages with a non-empty rule set
func Languages() []model.Language {
	return []model.Language{model.LanguageJava, model.LanguagePython, model.LanguageCpp}
}
