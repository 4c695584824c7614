package gateway

import (
	"context"

	"github.com/fitflow/ai-gateway/pkg/domain"
	"github.com/fitflow/ai-gateway/pkg/llm/openai"
)

type sizedImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string, size string) ([]byte, string, error)
}

// OpenAIProvider serves the single flagship model. It ignores catalog model
// resolution entirely.
type OpenAIProvider struct {
	client sizedImageGenerator
}

func NewOpenAIProvider(client sizedImageGenerator) *OpenAIProvider {
	return &OpenAIProvider{client: client}
}

func (p *OpenAIProvider) Name() domain.ImageProviderName {
	return domain.ProviderOpenAI
}

func (p *OpenAIProvider) Generate(ctx context.Context, req domain.ImageRequest) (*domain.GeneratedImage, error) {
	imageBytes, mediaType, err := p.client.GenerateImage(ctx, req.Prompt, string(req.Size))
	if err != nil {
		return nil, err
	}

	return &domain.GeneratedImage{
		DataURI:  toDataURI(imageBytes, mediaType),
		Model:    openai.ImageModel,
		Provider: domain.ProviderOpenAI,
	}, nil
}
