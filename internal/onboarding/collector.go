package onboarding

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/frontdesk/internal/domain"
	"github.com/alexanderramin/frontdesk/internal/intelligence"
)

// Collect asks each question in order and returns the answered pairs.
// Skipped answers are dropped; the order of the rest is preserved.
func Collect(ctx context.Context, asker intelligence.Asker, questions []string) ([]domain.QAPair, error) {
	pairs := make([]domain.QAPair, 0, len(questions))
	for i, q := range questions {
		answer, err := asker.Ask(ctx, intelligence.OperatorQuestion{
			Kind:  intelligence.QuestionGenerated,
			Text:  q,
			Index: i + 1,
			Total: len(questions),
		})
		if err != nil {
			return nil, fmt.Errorf("reading answer to question %d: %w", i+1, err)
		}
		if domain.IsSkipAnswer(answer) {
			continue
		}
		pairs = append(pairs, domain.QAPair{Question: q, Answer: strings.TrimSpace(answer)})
	}
	return pairs, nil
}
