package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/frontdesk/internal/cli/formatter"
	"github.com/alexanderramin/frontdesk/internal/domain"
	"github.com/alexanderramin/frontdesk/internal/intelligence"
	"github.com/alexanderramin/frontdesk/internal/llm"
	"github.com/alexanderramin/frontdesk/internal/logging"
	"github.com/alexanderramin/frontdesk/internal/onboarding"
	"github.com/alexanderramin/frontdesk/internal/sentiment"
	"github.com/alexanderramin/frontdesk/internal/session"
	"github.com/rs/zerolog"
)

func runFrontdesk(ctx context.Context, app *App, opts runOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logging.Component(app.Logger, "cli")
	console := NewConsole(app.In, app.Out)

	llmCfg := app.LLMConfig
	llmCfg.Model = domain.CoalesceStr(opts.model, llmCfg.Model)
	var client llm.Client = app.NewLLM(llmCfg)
	if app.interactive() {
		client = &spinningClient{next: client, out: app.Out}
	}

	var predictor session.Predictor
	sentCfg := app.SentimentConfig
	if opts.noSentiment {
		sentCfg.Enabled = false
	}
	if sentCfg.Enabled && app.NewSentiment != nil {
		sc := app.NewSentiment(sentCfg)
		trainSentiment(ctx, sc, logging.Component(app.Logger, "sentiment"))
		predictor = sc
	}

	profile, err := readProfile(ctx, app, console, opts.profilePath)
	if err != nil {
		return err
	}
	log.Info().Str("business", profile.Name).Msg("onboarding started")

	gen := intelligence.NewQuestionGenerator(client, intelligence.NewVaguenessClassifier(client))
	flow := onboarding.NewFlow(gen,
		onboarding.WithLogger(logging.Component(app.Logger, "onboarding")),
		onboarding.WithClock(app.now),
	)
	res, err := flow.Run(ctx, profile, console)
	if err != nil {
		return fmt.Errorf("onboarding: %w", err)
	}

	if opts.showPrompt {
		console.Println("")
		console.Println(formatter.FormatPrompt(res.Prompt.Render()))
	}

	sessOpts := []session.Option{
		session.WithModel(llmCfg.Model),
		session.WithLogger(app.Logger),
	}
	if predictor != nil {
		sessOpts = append(sessOpts, session.WithPredictor(predictor))
	}
	sess := session.New(client, res.Prompt, sessOpts...)
	log.Info().Str("session_id", sess.ID()).Msg("chat started")

	return chat(ctx, sess, console)
}

// readProfile picks the profile source: a YAML file, the interactive form,
// or line prompts.
func readProfile(ctx context.Context, app *App, console *Console, path string) (domain.BusinessProfile, error) {
	switch {
	case path != "":
		return LoadProfile(path)
	case app.interactive():
		return runProfileForm(ctx, app.In, app.Out)
	default:
		console.Println(formatter.Header("Business profile"))
		return promptProfile(ctx, console)
	}
}

// trainSentiment asks the sentiment service to train once. Failures only
// degrade tagging, so they are logged and swallowed.
func trainSentiment(ctx context.Context, c sentiment.Client, log zerolog.Logger) {
	err := c.Train(ctx)
	switch {
	case err == nil:
		log.Info().Msg("sentiment model trained")
	case errors.Is(err, sentiment.ErrAlreadyTrained):
		log.Info().Msg("sentiment model already trained")
	default:
		log.Warn().Err(err).Msg("sentiment training failed; turns will be tagged unknown until the service recovers")
	}
}

// chat runs the conversation until the input is exhausted.
func chat(ctx context.Context, sess *session.Session, console *Console) error {
	console.Println("")
	console.Println(formatter.Header("Chat"))
	console.Println(formatter.Dim(fmt.Sprintf("Type %s to correct a reply. End of input closes the session.", session.TrainCommand)))

	for {
		label := "You: "
		if sess.InTraining() {
			label = "train> "
		}
		line, err := console.Prompt(formatter.Bold(label))
		if errors.Is(err, io.EOF) {
			console.Println("")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if !sess.InTraining() && strings.TrimSpace(line) == "" {
			continue
		}

		out, err := sess.Submit(ctx, line)
		if err != nil {
			return err
		}
		console.Println(renderOutcome(out))
	}
}

func renderOutcome(out session.Outcome) string {
	switch out.Kind {
	case session.OutcomeReply:
		return formatter.FormatReply(out.Reply, out.Sentiment)
	case session.OutcomeTrainingMenu:
		return formatter.FormatTrainingMenu(out.Log)
	case session.OutcomeAwaitingReply:
		return formatter.FormatSelection(out.Selection, out.Entry)
	case session.OutcomeTrained:
		return formatter.FormatTrained(out.Directive)
	case session.OutcomeTrainingExit:
		return formatter.Dim("Left training mode.")
	case session.OutcomeInvalidSelection:
		return formatter.Error(out.Err.Error()) + "\n" + formatter.Dim("Back to the chat.")
	default:
		return ""
	}
}
