package intelligence

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/frontdesk/internal/domain"
	"github.com/alexanderramin/frontdesk/internal/llm"
)

// MinDescriptionLength is the character count below which a description is
// vague without asking the model.
const MinDescriptionLength = 300

// VaguenessClassifier decides whether a profile needs more detail.
type VaguenessClassifier interface {
	IsVague(ctx context.Context, profile domain.BusinessProfile) (bool, error)
}

type vaguenessClassifier struct {
	client llm.Client
}

// NewVaguenessClassifier creates a VaguenessClassifier backed by a completion client.
func NewVaguenessClassifier(client llm.Client) VaguenessClassifier {
	return &vaguenessClassifier{client: client}
}

func (c *vaguenessClassifier) IsVague(ctx context.Context, profile domain.BusinessProfile) (bool, error) {
	if utf8.RuneCountInString(profile.Description) < MinDescriptionLength {
		return true, nil
	}

	resp, err := c.client.Complete(ctx, llm.CompletionRequest{
		Task: llm.TaskVagueness,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: vaguenessSystemPrompt},
			{Role: llm.RoleUser, Content: buildVaguenessUserPrompt(profile)},
		},
	})
	if err != nil {
		return false, fmt.Errorf("llm vagueness check failed: %w", err)
	}

	// Anything other than an exact "yes" counts as not vague.
	return strings.ToLower(strings.TrimSpace(resp.Text())) == "yes", nil
}
