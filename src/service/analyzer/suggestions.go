package analyzer

// suggestionPool is the fixed advisory pool. Each analysis returns a
// prefix of 2 to 4 entries in pool order, never shuffled.
var suggestionPool = []string{
	"Add unit tests to improve coverage",
	"Break long methods into smaller, focused functions",
	"Document public APIs and non-obvious logic",
	"Review error handling paths for consistency",
	"Remove unused imports and dead code",
}

func (a *Analyzer) pickSuggestions() []string {
	n := 2 + a.rng.Intn(3)
	picked := make([]string, n)
	copy(picked, suggestionPool[:n])
	return picked
}
