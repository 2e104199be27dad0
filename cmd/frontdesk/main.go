package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/frontdesk/internal/cli"
	"github.com/alexanderramin/frontdesk/internal/llm"
	"github.com/alexanderramin/frontdesk/internal/logging"
	"github.com/alexanderramin/frontdesk/internal/sentiment"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment may already be set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	logger := logging.FromEnv()

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(logging.Component(logger, "llm"))
	}

	app := &cli.App{
		LLMConfig: llmCfg,
		NewLLM: func(cfg llm.Config) llm.Client {
			return llm.NewOpenAIClient(cfg, observer)
		},
		SentimentConfig: sentiment.LoadConfig(),
		NewSentiment:    sentiment.NewHTTPClient,
		Logger:          logger,
		In:              os.Stdin,
		Out:             os.Stdout,
	}

	// Detect interactive terminal for the profile form and spinner.
	app.IsInteractive = func() bool {
		in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		return in && out
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
