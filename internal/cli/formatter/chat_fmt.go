package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/frontdesk/internal/domain"
)

// FormatQuestion renders an onboarding question with its position, for
// example "AI Question (2 of 7)".
func FormatQuestion(label, text string, index, total int) string {
	head := StyleHeader.Render(fmt.Sprintf("%s (%d of %d)", label, index, total))
	return fmt.Sprintf("%s\n%s\n%s", head, StyleFg.Render(text), Dim(`Type "NA" to skip.`))
}

// FormatReply renders an assistant reply with the customer's sentiment tag.
func FormatReply(reply, sentiment string) string {
	tag := SentimentColor(sentiment).Render("[" + sentiment + "]")
	return fmt.Sprintf("%s %s %s", StylePurple.Bold(true).Render("Assistant:"), tag, reply)
}

// FormatTrainingMenu lists the conversation log with 1-based indices.
func FormatTrainingMenu(entries []domain.LogEntry) string {
	var b strings.Builder
	b.WriteString(Header("Training mode"))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(Dim("No conversation yet."))
		b.WriteString("\n")
	}
	for i, e := range entries {
		fmt.Fprintf(&b, "%s %s %s\n", StyleYellow.Render(fmt.Sprintf("%d.", i+1)), Bold("Customer:"), e.Input)
		fmt.Fprintf(&b, "   %s %s\n", Dim("Reply:"), e.Reply)
	}
	b.WriteString(Dim(`Enter an entry number to correct, or "exit" to go back.`))
	return b.String()
}

// FormatSelection confirms which entry is being corrected.
func FormatSelection(index int, e domain.LogEntry) string {
	return fmt.Sprintf("%s %q\n%s",
		StyleYellow.Render(fmt.Sprintf("Correcting entry %d:", index)), e.Input,
		Dim("Type the reply the assistant should give from now on."))
}

// FormatTrained confirms a recorded directive.
func FormatTrained(d domain.TrainingDirective) string {
	return StyleGreen.Render("Trained: ") + fmt.Sprintf("%q → %q", d.TriggerInput, d.RequiredReply)
}

// FormatPrompt renders the system prompt for review.
func FormatPrompt(text string) string {
	return RenderBox("Generated prompt", text)
}
