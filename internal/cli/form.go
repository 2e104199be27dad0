package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"strings"

	"github.com/alexanderramin/frontdesk/internal/cli/formatter"
	"github.com/alexanderramin/frontdesk/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// frontdeskHuhTheme returns a huh theme matching the formatter palette.
func frontdeskHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// profileForm builds the identity and contact form. Phone and address are
// only asked once an email is given.
func profileForm(v *profileValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Business name").
				Value(&v.Name).
				Validate(validateRequired("business name")),
			huh.NewInput().
				Title("Industry").
				Placeholder("hair salon, bicycle repair, dental clinic...").
				Value(&v.Industry).
				Validate(validateRequired("industry")),
			huh.NewText().
				Title("Description").
				Description("Services, prices, opening hours, booking. The more detail, the fewer questions.").
				Value(&v.Description).
				Validate(validateRequired("description")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Contact email").
				Description("Leave blank to skip contact details.").
				Value(&v.Email).
				Validate(validateOptionalEmail),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Phone").
				Value(&v.Phone),
			huh.NewInput().
				Title("Address").
				Value(&v.Address),
		).WithHideFunc(func() bool { return !v.hasEmail() }),
	).WithTheme(frontdeskHuhTheme()).WithShowHelp(false)
}

// runProfileForm shows the profile form on the given terminal streams.
func runProfileForm(ctx context.Context, in io.Reader, out io.Writer) (domain.BusinessProfile, error) {
	var v profileValues
	form := profileForm(&v).WithProgramOptions(tea.WithInput(in), tea.WithOutput(out))
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return domain.BusinessProfile{}, fmt.Errorf("profile entry cancelled")
		}
		return domain.BusinessProfile{}, fmt.Errorf("profile form: %w", err)
	}
	p := v.profile()
	return p, p.Validate()
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateOptionalEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("not a valid email address")
	}
	return nil
}
