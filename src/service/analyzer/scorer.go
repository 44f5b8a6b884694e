package analyzer

import "codelens/src/model"

// Kind weights for the quality score
const (
	errorWeight      = 15
	warningWeight    = 8
	suggestionWeight = 3
)

// Score converts issue kind counts into a 0-100 quality score. Counts
// cover all issues, filler included.
func Score(issues []model.Issue) int {
	var errors, warnings, suggestions int
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

	score := 100 - errorWeight*errors - warningWeight*warnings - suggestionWeight*suggestions
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
