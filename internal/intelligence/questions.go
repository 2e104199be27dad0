package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/frontdesk/internal/domain"
	"github.com/alexanderramin/frontdesk/internal/llm"
	"github.com/samber/lo"
)

// QuestionKind distinguishes the fixed battery from model-generated questions.
type QuestionKind string

const (
	QuestionGeneric   QuestionKind = "generic"
	QuestionGenerated QuestionKind = "generated"
)

// OperatorQuestion is one question put to the operator. Index is 1-based
// within its batch.
type OperatorQuestion struct {
	Kind  QuestionKind
	Text  string
	Index int
	Total int
}

// Asker puts a question to the operator and returns the raw answer line.
type Asker interface {
	Ask(ctx context.Context, q OperatorQuestion) (string, error)
}

// QuestionSet is the outcome of question generation.
type QuestionSet struct {
	Vague            bool
	GenericAnswers   []domain.QAPair
	GenericFormatted string
	Questions        []string
}

// QuestionGenerator derives follow-up questions for a business profile.
type QuestionGenerator interface {
	// Generate classifies the profile, runs the generic battery through asker
	// when it is vague, then asks the model for follow-up questions.
	Generate(ctx context.Context, profile domain.BusinessProfile, asker Asker) (*QuestionSet, error)
}

type questionGenerator struct {
	client     llm.Client
	classifier VaguenessClassifier
}

// NewQuestionGenerator creates a QuestionGenerator backed by a completion client.
func NewQuestionGenerator(client llm.Client, classifier VaguenessClassifier) QuestionGenerator {
	return &questionGenerator{client: client, classifier: classifier}
}

func (g *questionGenerator) Generate(ctx context.Context, profile domain.BusinessProfile, asker Asker) (*QuestionSet, error) {
	vague, err := g.classifier.IsVague(ctx, profile)
	if err != nil {
		return nil, err
	}

	set := &QuestionSet{Vague: vague}
	if vague {
		set.GenericAnswers, err = askGenericBattery(ctx, asker)
		if err != nil {
			return nil, err
		}
		set.GenericFormatted = domain.FormatQAPairs(set.GenericAnswers)
	}

	set.Questions, err = g.GenerateFromAnswers(ctx, profile, set.GenericFormatted)
	if err != nil {
		return nil, err
	}
	return set, nil
}

// GenerateFromAnswers asks the model for follow-up questions given the
// profile and any generic answers already collected.
func (g *questionGenerator) GenerateFromAnswers(ctx context.Context, profile domain.BusinessProfile, genericFormatted string) ([]string, error) {
	resp, err := g.client.Complete(ctx, llm.CompletionRequest{
		Task: llm.TaskQuestions,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: buildQuestionsPrompt(profile, genericFormatted)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("llm question generation failed: %w", err)
	}
	return ParseQuestions(resp.Text()), nil
}

func askGenericBattery(ctx context.Context, asker Asker) ([]domain.QAPair, error) {
	var pairs []domain.QAPair
	for i, q := range GenericQuestions {
		answer, err := asker.Ask(ctx, OperatorQuestion{
			Kind:  QuestionGeneric,
			Text:  q,
			Index: i + 1,
			Total: len(GenericQuestions),
		})
		if err != nil {
			return nil, fmt.Errorf("reading answer to generic question %d: %w", i+1, err)
		}
		answer = strings.TrimSpace(answer)
		if domain.IsSkipAnswer(answer) {
			continue
		}
		pairs = append(pairs, domain.QAPair{Question: q, Answer: answer})
	}
	return pairs, nil
}

// ParseQuestions splits model output into questions: one per line, a leading
// dash and surrounding whitespace stripped, empty lines dropped.
func ParseQuestions(text string) []string {
	return lo.FilterMap(strings.Split(text, "\n"), func(line string, _ int) (string, bool) {
		q := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
		return q, q != ""
	})
}
