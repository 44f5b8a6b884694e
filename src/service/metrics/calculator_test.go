package metrics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestCalculator() *Calculator {
	return NewCalculator(rand.New(rand.NewSource(1)))
}

func TestEmptySource(t *testing.T) {
	m := newTestCalculator().Compute("", 0)

	assert.Equal(t, 0, m.LinesOfCode)
	assert.Equal(t, 1, m.CyclomaticComplexity)
	assert.Equal(t, 100, m.MaintainabilityIndex)
	assert.Equal(t, 100, m.TestCoverage)
}

func TestLinesOfCodeSkipsBlanksAndComments(t *testing.T) {
	source := "// header comment\n\nint x = 1;\n   \n  // indented comment\nint y = 2;"

	m := newTestCalculator().Compute(source, 0)
	assert.Equal(t, 2, m.LinesOfCode)
}

func TestComplexityCountsBranchTokens(t *testing.T) {
	// one "if" and one "else", loc below 10 contributes nothing
	source := "if (a) { x(); } else { y(); }"

	m := newTestCalculator().Compute(source, 0)
	assert.Equal(t, 2, m.CyclomaticComplexity)
}

func TestComplexityCountsSubstringsNotWords(t *testing.T) {
	// "iffy" still contains "if"; substring semantics are intentional
	m := newTestCalculator().Compute("iffy value", 0)
	assert.Equal(t, 1, m.CyclomaticComplexity)

	m = newTestCalculator().Compute("iffy if", 0)
	assert.Equal(t, 2, m.CyclomaticComplexity)
}

func TestIssueCountLowersMaintainabilityAndCoverage(t *testing.T) {
	m := newTestCalculator().Compute("int x = 1;", 6)

	assert.Equal(t, 100-5*6-m.CyclomaticComplexity/2, m.MaintainabilityIndex)
	assert.Equal(t, 100-3*6, m.TestCoverage)
}

func TestMaintainabilityFloor(t *testing.T) {
	m := newTestCalculator().Compute("int x = 1;", 50)
	assert.Equal(t, 10, m.MaintainabilityIndex)
}

func TestCoverageFloor(t *testing.T) {
	m := newTestCalculator().Compute("int x = 1;", 40)
	assert.Equal(t, 0, m.TestCoverage)
}

func TestDuplicateLinesRange(t *testing.T) {
	calc := NewCalculator(rand.New(rand.NewSource(7)))
	for i := 0; i < 100; i++ {
		m := calc.Compute("int x = 1;", 0)
		assert.GreaterOrEqual(t, m.DuplicateLines, 0)
		assert.LessOrEqual(t, m.DuplicateLines, 4)
	}
}

func TestDeterministicExceptDuplicateLines(t *testing.T) {
	source := "if (a) {\n  doWork();\n}\n"

	a := NewCalculator(rand.New(rand.NewSource(1))).Compute(source, 3)
	b := NewCalculator(rand.New(rand.NewSource(2))).Compute(source, 3)

	assert.Equal(t, a.LinesOfCode, b.LinesOfCode)
	assert.Equal(t, a.CyclomaticComplexity, b.CyclomaticComplexity)
	assert.Equal(t, a.MaintainabilityIndex, b.MaintainabilityIndex)
	assert.Equal(t, a.TestCoverage, b.TestCoverage)
}
