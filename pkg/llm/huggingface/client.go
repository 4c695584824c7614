package huggingface

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
	defaultBaseURL = "https://api-inference.huggingface.co/models"

	providerName = "huggingface"
)

type client struct {
	token   string
	baseURL string
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
		hc:      &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type inferenceRequest struct {
	Inputs  string          `json:"inputs"`
	Options inferenceOption `json:"options"`
}

type inferenceOption struct {
	WaitForModel bool `json:"wait_for_model"`
}

// GenerateImage runs text-to-image inference against the given hosted model
// reference. The API answers with raw image bytes; the returned media type
// comes from the Content-Type header, falling back to sniffing the bytes.
func (c *client) GenerateImage(ctx context.Context, prompt, modelRef string) ([]byte, string, error) {
	reqBody, err := json.Marshal(inferenceRequest{
		Inputs:  prompt,
		Options: inferenceOption{WaitForModel: true},
	})
	if err != nil {
		return nil, "", fmt.Errorf("marshaling inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+modelRef, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, "", fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, "", &domain.ProviderError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &domain.ProviderError{Provider: providerName, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &domain.ProviderError{Provider: providerName, Status: resp.StatusCode, Message: string(respBody)}
	}

	if len(respBody) == 0 {
		return nil, "", &domain.ProviderError{Provider: providerName, Message: "empty image payload"}
	}

	mediaType := resp.Header.Get("Content-Type")
	if mediaType == "" || !strings.HasPrefix(mediaType, "image/") {
		mediaType = http.DetectContentType(respBody)
	}

	return respBody, mediaType, nil
}
