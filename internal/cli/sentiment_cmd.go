package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/frontdesk/internal/cli/formatter"
	"github.com/alexanderramin/frontdesk/internal/sentiment"
	"github.com/spf13/cobra"
)

func newSentimentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sentiment",
		Short: "Talk to the sentiment service directly",
	}
	cmd.AddCommand(newSentimentTrainCmd(app), newSentimentPredictCmd(app))
	return cmd
}

func newSentimentTrainCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Train the sentiment model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.NewSentiment(app.SentimentConfig).Train(cmd.Context())
			switch {
			case err == nil:
				fmt.Fprintln(app.Out, formatter.StyleGreen.Render("Sentiment model trained."))
			case errors.Is(err, sentiment.ErrAlreadyTrained):
				fmt.Fprintln(app.Out, formatter.Dim("Sentiment model already trained."))
			default:
				return fmt.Errorf("training sentiment model: %w", err)
			}
			return nil
		},
	}
}

func newSentimentPredictCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "predict <text>",
		Short: "Print the sentiment label for a piece of text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, err := app.NewSentiment(app.SentimentConfig).Predict(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("predicting sentiment: %w", err)
			}
			fmt.Fprintln(app.Out, label)
			return nil
		},
	}
}
