package gateway

import (
	"context"
	"encoding/base64"
	"log/slog"

	"github.com/fitflow/ai-gateway/pkg/domain"
)

type imageBytesGenerator interface {
	GenerateImage(ctx context.Context, prompt, modelRef string) ([]byte, string, error)
}

type modelClassifier interface {
	Classify(ctx context.Context, prompt string) string
}

// HuggingFaceProvider serves the open model catalog. Model resolution order:
// a catalog override from the request, then the classifier's hint, which
// itself falls back to the default entry.
type HuggingFaceProvider struct {
	client     imageBytesGenerator
	classifier modelClassifier
}

func NewHuggingFaceProvider(client imageBytesGenerator, classifier modelClassifier) *HuggingFaceProvider {
	return &HuggingFaceProvider{client: client, classifier: classifier}
}

func (p *HuggingFaceProvider) Name() domain.ImageProviderName {
	return domain.ProviderHuggingFace
}

func (p *HuggingFaceProvider) Generate(ctx context.Context, req domain.ImageRequest) (*domain.GeneratedImage, error) {
	model := req.Model
	if !domain.InCatalog(model) {
		model = p.classifier.Classify(ctx, req.Prompt)
	}

	slog.InfoContext(ctx, "Model resolved", "model", model)

	imageBytes, mediaType, err := p.client.GenerateImage(ctx, req.Prompt, domain.ImageModelCatalog[model])
	if err != nil {
		return nil, err
	}

	return &domain.GeneratedImage{
		DataURI:  toDataURI(imageBytes, mediaType),
		Model:    model,
		Provider: domain.ProviderHuggingFace,
	}, nil
}

func toDataURI(imageBytes []byte, mediaType string) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(imageBytes)
}
