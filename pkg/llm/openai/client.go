package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fitflow/ai-gateway/pkg/domain"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"

	// ImageModel is the single flagship model this provider serves.
	ImageModel = "gpt-image-1"

	providerName = "openai"
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

// GenerateImage performs one image generation call. gpt-image-1 answers with
// base64 text in the format it was asked for, so the returned media type is
// always the requested webp.
func (c *client) GenerateImage(ctx context.Context, prompt string, size string) ([]byte, string, error) {
	reqBody, err := json.Marshal(imageGenerationRequest{
		Model:        ImageModel,
		Prompt:       prompt,
		N:            defaultImageCount,
		Size:         size,
		Quality:      qualityHigh,
		OutputFormat: outputFormatWebp,
		Background:   backgroundAuto,
	})
	if err != nil {
		return nil, "", fmt.Errorf("marshaling image generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/images/generations", bytes.NewBuffer(reqBody))
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

	var genResp imageGenerationResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return nil, "", &domain.ProviderError{Provider: providerName, Message: "unparseable response body", Err: err}
	}

	if len(genResp.Data) == 0 || genResp.Data[0].B64JSON == "" {
		return nil, "", &domain.ProviderError{Provider: providerName, Message: "empty image payload"}
	}

	imageBytes, err := base64.StdEncoding.DecodeString(genResp.Data[0].B64JSON)
	if err != nil {
		return nil, "", &domain.ProviderError{Provider: providerName, Message: "invalid base64 image payload", Err: err}
	}

	return imageBytes, "image/" + outputFormatWebp, nil
}
