package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/frontdesk/internal/domain"
	"github.com/alexanderramin/frontdesk/internal/llm"
	"github.com/alexanderramin/frontdesk/internal/prompt"
	"github.com/alexanderramin/frontdesk/internal/sentiment"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

const (
	// TrainCommand enters training mode. It must match exactly.
	TrainCommand = "TRAIN"
	// ExitCommand leaves training mode without changes.
	ExitCommand = "exit"
	// InternalMarker prefixes system turns added by training.
	InternalMarker = "[INTERNAL DIRECTIVE]"
)

// Predictor labels the sentiment of customer input.
type Predictor interface {
	Predict(ctx context.Context, text string) (string, error)
}

type state int

const (
	stateActive state = iota
	stateSelecting
	stateAwaitingReply
)

// Session is one conversation between a customer and the assistant. It owns
// the live system prompt, the turn history and the conversation log, and is
// not safe for concurrent use.
type Session struct {
	id        string
	client    llm.Client
	predictor Predictor
	prompt    *prompt.SystemPrompt
	model     string
	log       zerolog.Logger

	history  []domain.Turn
	entries  []domain.LogEntry
	state    state
	selected int
}

// Option configures a Session.
type Option func(*Session)

// WithPredictor enables sentiment tagging. Without it every turn is tagged
// with sentiment.UnknownLabel.
func WithPredictor(p Predictor) Option {
	return func(s *Session) { s.predictor = p }
}

// WithModel overrides the configured completion model.
func WithModel(model string) Option {
	return func(s *Session) { s.model = model }
}

// WithLogger sets the base logger. The session adds its own fields.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// New creates a Session running on sp.
func New(client llm.Client, sp *prompt.SystemPrompt, opts ...Option) *Session {
	s := &Session{
		id:     uuid.New().String(),
		client: client,
		prompt: sp,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("component", "session").Str("session_id", s.id).Logger()
	return s
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Prompt returns the live system prompt.
func (s *Session) Prompt() *prompt.SystemPrompt { return s.prompt }

// InTraining reports whether the session is in training mode.
func (s *Session) InTraining() bool { return s.state != stateActive }

// Log returns a copy of the conversation log.
func (s *Session) Log() []domain.LogEntry {
	return append([]domain.LogEntry(nil), s.entries...)
}

// History returns a copy of the turn history.
func (s *Session) History() []domain.Turn {
	return append([]domain.Turn(nil), s.history...)
}

// Submit processes one line of input. The returned error is non-nil only
// when the completion backend fails, which ends the session.
func (s *Session) Submit(ctx context.Context, line string) (Outcome, error) {
	switch s.state {
	case stateSelecting:
		return s.selectEntry(line), nil
	case stateAwaitingReply:
		return s.train(line), nil
	}

	if line == TrainCommand {
		s.state = stateSelecting
		s.log.Debug().Int("entries", len(s.entries)).Msg("training mode entered")
		return Outcome{Kind: OutcomeTrainingMenu, Log: s.Log()}, nil
	}
	return s.reply(ctx, line)
}

func (s *Session) reply(ctx context.Context, input string) (Outcome, error) {
	label := s.tag(ctx, input)
	s.history = append(s.history, domain.Turn{Role: domain.RoleUser, Content: input, Sentiment: label})

	resp, err := s.client.Complete(ctx, llm.CompletionRequest{
		Task:     llm.TaskChat,
		Model:    s.model,
		Messages: s.Messages(),
	})
	if err != nil {
		s.history = s.history[:len(s.history)-1]
		return Outcome{}, fmt.Errorf("completing turn: %w", err)
	}

	contents := make([]string, 0, len(resp.Choices))
	for _, c := range resp.Choices {
		s.history = append(s.history, domain.Turn{Role: domain.RoleAssistant, Content: c.Content})
		contents = append(contents, c.Content)
	}
	reply := strings.Join(contents, "\n")
	s.entries = append(s.entries, domain.LogEntry{Input: input, Reply: reply})

	s.log.Debug().
		Str("sentiment", label).
		Int("choices", len(resp.Choices)).
		Int("turns", len(s.history)).
		Msg("turn completed")

	return Outcome{Kind: OutcomeReply, Reply: reply, Sentiment: label}, nil
}

// tag never fails: a missing or failing predictor yields the unknown label.
func (s *Session) tag(ctx context.Context, input string) string {
	if s.predictor == nil {
		return sentiment.UnknownLabel
	}
	label, err := s.predictor.Predict(ctx, input)
	if err != nil {
		s.log.Warn().Err(err).Msg("sentiment prediction failed")
		return sentiment.UnknownLabel
	}
	return label
}

// Messages builds the request sent for the next turn: the rendered system
// prompt followed by the entire history.
func (s *Session) Messages() []llm.Message {
	msgs := make([]llm.Message, 0, len(s.history)+1)
	msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: s.prompt.Render()})
	return append(msgs, lo.Map(s.history, func(t domain.Turn, _ int) llm.Message {
		return turnMessage(t)
	})...)
}

func turnMessage(t domain.Turn) llm.Message {
	switch t.Role {
	case domain.RoleUser:
		content := t.Content
		if t.Sentiment != "" {
			content = fmt.Sprintf("[sentiment: %s] %s", t.Sentiment, t.Content)
		}
		return llm.Message{Role: llm.RoleUser, Content: content}
	case domain.RoleAssistant:
		return llm.Message{Role: llm.RoleAssistant, Content: t.Content}
	default:
		return llm.Message{Role: llm.RoleSystem, Content: t.Content}
	}
}

func (s *Session) selectEntry(line string) Outcome {
	if line == ExitCommand {
		s.state = stateActive
		return Outcome{Kind: OutcomeTrainingExit}
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return s.reject(fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, line))
	}
	if n < 1 || n > len(s.entries) {
		return s.reject(fmt.Errorf("%w: %d is outside 1..%d", ErrInvalidSelection, n, len(s.entries)))
	}

	s.selected = n
	s.state = stateAwaitingReply
	return Outcome{Kind: OutcomeAwaitingReply, Selection: n, Entry: s.entries[n-1]}
}

func (s *Session) train(line string) Outcome {
	reply := strings.TrimSpace(line)
	if reply == "" {
		return s.reject(fmt.Errorf("%w: empty reply", ErrInvalidSelection))
	}

	idx := s.selected - 1
	entry := s.entries[idx]
	d := domain.TrainingDirective{TriggerInput: entry.Input, RequiredReply: reply}

	s.prompt.Amend(d)
	s.history = append(s.history, domain.Turn{
		Role: domain.RoleSystem,
		Content: fmt.Sprintf("%s From now on, when the customer says \"%s\", you must reply with exactly: \"%s\"",
			InternalMarker, d.TriggerInput, d.RequiredReply),
	})
	s.entries[idx].Reply = reply

	s.state = stateActive
	s.selected = 0
	s.log.Info().Int("selection", idx+1).Msg("training directive recorded")

	return Outcome{Kind: OutcomeTrained, Selection: idx + 1, Entry: s.entries[idx], Directive: d}
}

func (s *Session) reject(err error) Outcome {
	s.state = stateActive
	s.selected = 0
	s.log.Info().Err(err).Msg("training selection rejected")
	return Outcome{Kind: OutcomeInvalidSelection, Err: err}
}
