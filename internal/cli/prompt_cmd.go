package cli

import (
	"fmt"

	"github.com/alexanderramin/frontdesk/internal/prompt"
	"github.com/spf13/cobra"
)

func newPromptCmd(app *App) *cobra.Command {
	var profilePath string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the base system prompt for a profile without running onboarding",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := LoadProfile(profilePath)
			if err != nil {
				return err
			}
			sp, err := prompt.Compose(prompt.Input{Profile: profile, Now: app.now()})
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, sp.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "Business profile YAML file")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}
