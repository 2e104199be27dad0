package domain

import (
	"fmt"
	"strings"
)

// SkipToken is the answer an operator types to leave a question out.
const SkipToken = "NA"

// QAPair is one answered onboarding question.
type QAPair struct {
	Question string
	Answer   string
}

// IsSkipAnswer reports whether answer is the skip sentinel. The comparison
// trims whitespace and ignores case, so "na" and " NA " skip but "NAx" does not.
func IsSkipAnswer(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), SkipToken)
}

// Format renders the pair as a single "Q: <q> A: <a>" line.
func (qa QAPair) Format() string {
	return fmt.Sprintf("Q: %s A: %s", qa.Question, qa.Answer)
}

// FormatQAPairs joins pairs one per line.
func FormatQAPairs(pairs []QAPair) string {
	lines := make([]string, 0, len(pairs))
	for _, qa := range pairs {
		lines = append(lines, qa.Format())
	}
	return strings.Join(lines, "\n")
}
