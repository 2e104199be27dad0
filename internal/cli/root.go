package cli

import (
	"io"
	"time"

	"github.com/alexanderramin/frontdesk/internal/llm"
	"github.com/alexanderramin/frontdesk/internal/sentiment"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds configuration and collaborator factories used by CLI commands.
// Factories take the config after flags have been applied.
type App struct {
	LLMConfig       llm.Config
	NewLLM          func(cfg llm.Config) llm.Client
	SentimentConfig sentiment.Config
	NewSentiment    func(cfg sentiment.Config) sentiment.Client

	Logger zerolog.Logger
	In     io.Reader
	Out    io.Writer

	// IsInteractive reports whether In and Out are a terminal. Nil means no.
	IsInteractive func() bool
	// Now is the clock used for the prompt timestamp. Nil means time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// runOptions are the flags of the root command.
type runOptions struct {
	profilePath string
	model       string
	showPrompt  bool
	noSentiment bool
}

func (o *runOptions) bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.profilePath, "profile", "", "Load the business profile from a YAML file instead of prompting")
	fs.StringVar(&o.model, "model", "", "Completion model (overrides FRONTDESK_LLM_MODEL)")
	fs.BoolVar(&o.showPrompt, "show-prompt", false, "Print the generated system prompt before the chat starts")
	fs.BoolVar(&o.noSentiment, "no-sentiment", false, "Do not call the sentiment service")
}

// NewRootCmd creates the top-level "frontdesk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var opts runOptions

	root := &cobra.Command{
		Use:   "frontdesk",
		Short: "Onboard a business and run its customer service assistant",
		Long: `frontdesk interviews a business owner, builds a system prompt from the answers,
then runs a customer chat on it. Type TRAIN during the chat to correct a past reply.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrontdesk(cmd.Context(), app, opts)
		},
	}
	opts.bind(root.Flags())

	root.AddCommand(
		newSentimentCmd(app),
		newPromptCmd(app),
	)

	return root
}
