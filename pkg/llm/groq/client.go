package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fitflow/ai-gateway/pkg/domain"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.1-70b-versatile"

	providerName = "groq"
)

type client struct {
	token   string
	baseURL string
	model   string
	hc      *http.Client
}

type Option func(*client)

func WithBaseURL(url string) Option {
	return func(c *client) { c.baseURL = strings.TrimRight(url, "/") }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) { c.hc = hc }
}

func NewClient(token string, opts ...Option) (*client, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}
	c := &client{
		token:   token,
		baseURL: defaultBaseURL,
		model:   defaultModel,
		hc:      &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CreateChatCompletion performs exactly one non-streaming chat completion
// call and returns the generated message content. The response body is
// validated against the expected schema; anything else is a provider error.
func (c *client) CreateChatCompletion(ctx context.Context, params domain.ChatParams) (string, error) {
	reqBody, err := json.Marshal(chatCompletionRequest{
		Model: c.model,
		Messages: []chatCompletionMessage{
			{Role: roleSystem, Content: params.System},
			{Role: roleUser, Content: params.User},
		},
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
		Stream:      false,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling chat completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.doRequest(req)
	if err != nil {
		return "", err
	}

	var resp chatCompletionResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", &domain.ProviderError{Provider: providerName, Message: "unparseable response body", Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &domain.ProviderError{Provider: providerName, Message: "response contains no generated message"}
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *client) doRequest(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &domain.ProviderError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.ProviderError{Provider: providerName, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.ProviderError{Provider: providerName, Status: resp.StatusCode, Message: string(respBody)}
	}

	return respBody, nil
}
