package cli

import (
	"context"
	"io"

	"github.com/alexanderramin/frontdesk/internal/cli/formatter"
	"github.com/alexanderramin/frontdesk/internal/llm"
)

// spinningClient shows a spinner on out while a completion is in flight.
type spinningClient struct {
	next llm.Client
	out  io.Writer
}

func (c *spinningClient) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	stop := formatter.StartSpinner(c.out, spinnerMessage(req.Task))
	defer stop()
	return c.next.Complete(ctx, req)
}

func spinnerMessage(task llm.TaskType) string {
	switch task {
	case llm.TaskVagueness:
		return "Reading your description..."
	case llm.TaskQuestions:
		return "Preparing questions..."
	default:
		return "Thinking..."
	}
}
