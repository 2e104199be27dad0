package onboarding

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/frontdesk/internal/domain"
	"github.com/alexanderramin/frontdesk/internal/intelligence"
	"github.com/alexanderramin/frontdesk/internal/prompt"
	"github.com/rs/zerolog"
)

// Result is everything onboarding produced for one business.
type Result struct {
	Profile        domain.BusinessProfile
	Vague          bool
	GenericAnswers []domain.QAPair
	Questions      []string
	Answers        []domain.QAPair
	Prompt         *prompt.SystemPrompt
}

// Flow turns a validated profile into the system prompt the assistant runs on.
type Flow struct {
	generator intelligence.QuestionGenerator
	log       zerolog.Logger
	now       func() time.Time
}

// Option configures a Flow.
type Option func(*Flow)

// WithClock overrides the time source used for the prompt timestamp.
func WithClock(now func() time.Time) Option {
	return func(f *Flow) { f.now = now }
}

// WithLogger sets the logger used for progress events.
func WithLogger(log zerolog.Logger) Option {
	return func(f *Flow) { f.log = log }
}

// NewFlow creates a Flow.
func NewFlow(generator intelligence.QuestionGenerator, opts ...Option) *Flow {
	f := &Flow{
		generator: generator,
		log:       zerolog.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Run validates the profile, generates and collects follow-up answers, and
// composes the system prompt. Backend errors stop the flow.
func (f *Flow) Run(ctx context.Context, profile domain.BusinessProfile, asker intelligence.Asker) (*Result, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	set, err := f.generator.Generate(ctx, profile, asker)
	if err != nil {
		return nil, fmt.Errorf("generating questions: %w", err)
	}
	f.log.Info().
		Bool("vague", set.Vague).
		Int("generic_answers", len(set.GenericAnswers)).
		Int("questions", len(set.Questions)).
		Msg("onboarding questions ready")

	answers, err := Collect(ctx, asker, set.Questions)
	if err != nil {
		return nil, err
	}

	sp, err := prompt.Compose(prompt.Input{
		Profile:        profile,
		QAPairs:        answers,
		GenericAnswers: set.GenericFormatted,
		Now:            f.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("composing system prompt: %w", err)
	}
	f.log.Debug().Int("answers", len(answers)).Msg("system prompt composed")

	return &Result{
		Profile:        profile,
		Vague:          set.Vague,
		GenericAnswers: set.GenericAnswers,
		Questions:      set.Questions,
		Answers:        answers,
		Prompt:         sp,
	}, nil
}
