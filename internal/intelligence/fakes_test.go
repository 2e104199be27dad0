package intelligence

import (
	"context"
	"errors"
	"sync"

	"github.com/alexanderramin/frontdesk/internal/llm"
)

// fakeLLMClient returns queued responses in order and records every request.
type fakeLLMClient struct {
	mu        sync.Mutex
	responses []string
	err       error
	requests  []llm.CompletionRequest
}

func (f *fakeLLMClient) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.responses) == 0 {
		return &llm.CompletionResponse{Model: "test-model"}, nil
	}
	text := f.responses[0]
	f.responses = f.responses[1:]
	return &llm.CompletionResponse{
		Choices: []llm.Message{{Role: llm.RoleAssistant, Content: text}},
		Model:   "test-model",
	}, nil
}

func (f *fakeLLMClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// scriptedAsker answers questions from a fixed list and records what was asked.
type scriptedAsker struct {
	answers []string
	asked   []OperatorQuestion
}

var errNoMoreAnswers = errors.New("no more answers")

func (a *scriptedAsker) Ask(_ context.Context, q OperatorQuestion) (string, error) {
	a.asked = append(a.asked, q)
	if len(a.answers) == 0 {
		return "", errNoMoreAnswers
	}
	ans := a.answers[0]
	a.answers = a.answers[1:]
	return ans, nil
}
