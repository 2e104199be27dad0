package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Client talks to the sentiment classification service.
type Client interface {
	// Train asks the service to fit its model. ErrAlreadyTrained means a
	// model is already loaded and is not a failure.
	Train(ctx context.Context) error

	// Predict returns the sentiment label for text.
	Predict(ctx context.Context, text string) (string, error)
}

type httpClient struct {
	cfg  Config
	http *http.Client
}

// NewHTTPClient creates a Client for the REST sentiment service at cfg.BaseURL.
func NewHTTPClient(cfg Config) Client {
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 2 * time.Second,
				}).DialContext,
			},
		},
	}
}

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	Prediction string `json:"prediction"`
}

type trainResponse struct {
	Status string `json:"status"`
}

func (c *httpClient) Train(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	status, body, err := c.post(ctx, "/train", nil)
	if err != nil {
		return c.classify(ctx, err)
	}
	if status == http.StatusConflict {
		return ErrAlreadyTrained
	}
	if status < 200 || status > 299 {
		return fmt.Errorf("%w: train returned status %d: %s", ErrBadResponse, status, strings.TrimSpace(string(body)))
	}

	var resp trainResponse
	if len(bytes.TrimSpace(body)) > 0 && json.Unmarshal(body, &resp) == nil {
		if strings.Contains(strings.ToLower(resp.Status), "already trained") {
			return ErrAlreadyTrained
		}
	}
	return nil
}

func (c *httpClient) Predict(ctx context.Context, text string) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	status, body, err := c.post(ctx, "/predict", predictRequest{Text: text})
	if err != nil {
		return "", c.classify(ctx, err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("%w: predict returned status %d: %s", ErrBadResponse, status, strings.TrimSpace(string(body)))
	}

	var resp predictResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: decoding prediction: %v", ErrBadResponse, err)
	}
	if strings.TrimSpace(resp.Prediction) == "" {
		return "", fmt.Errorf("%w: empty prediction", ErrBadResponse)
	}
	return resp.Prediction, nil
}

func (c *httpClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
}

func (c *httpClient) post(ctx context.Context, path string, payload any) (int, []byte, error) {
	var reader io.Reader = http.NoBody
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func (c *httpClient) classify(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("sentiment request cancelled: %w", ctx.Err())
	}
	if ctx.Err() != nil {
		return ErrTimeout
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
