package gateway

import (
	"context"

	"github.com/fitflow/ai-gateway/pkg/domain"
)

type mockChatCompleter struct {
	CreateChatCompletionFunc func(ctx context.Context, params domain.ChatParams) (string, error)
	calls                    int
	lastParams               domain.ChatParams
}

func (m *mockChatCompleter) CreateChatCompletion(ctx context.Context, params domain.ChatParams) (string, error) {
	m.calls++
	m.lastParams = params
	if m.CreateChatCompletionFunc != nil {
		return m.CreateChatCompletionFunc(ctx, params)
	}
	return "ok", nil
}

type mockClassifier struct {
	ClassifyFunc func(ctx context.Context, prompt string) string
	calls        int
}

func (m *mockClassifier) Classify(ctx context.Context, prompt string) string {
	m.calls++
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, prompt)
	}
	return domain.DefaultImageModel
}

type mockImageBytesGenerator struct {
	GenerateImageFunc func(ctx context.Context, prompt, modelRef string) ([]byte, string, error)
	calls             int
	lastPrompt        string
	lastModelRef      string
}

func (m *mockImageBytesGenerator) GenerateImage(ctx context.Context, prompt, modelRef string) ([]byte, string, error) {
	m.calls++
	m.lastPrompt = prompt
	m.lastModelRef = modelRef
	if m.GenerateImageFunc != nil {
		return m.GenerateImageFunc(ctx, prompt, modelRef)
	}
	return []byte("image"), "image/png", nil
}

type mockSizedImageGenerator struct {
	GenerateImageFunc func(ctx context.Context, prompt, size string) ([]byte, string, error)
	calls             int
	lastSize          string
}

func (m *mockSizedImageGenerator) GenerateImage(ctx context.Context, prompt, size string) ([]byte, string, error) {
	m.calls++
	m.lastSize = size
	if m.GenerateImageFunc != nil {
		return m.GenerateImageFunc(ctx, prompt, size)
	}
	return []byte("image"), "image/webp", nil
}

type mockImageProvider struct {
	name         domain.ImageProviderName
	GenerateFunc func(ctx context.Context, req domain.ImageRequest) (*domain.GeneratedImage, error)
	calls        int
	lastReq      domain.ImageRequest
}

func (m *mockImageProvider) Name() domain.ImageProviderName { return m.name }

func (m *mockImageProvider) Generate(ctx context.Context, req domain.ImageRequest) (*domain.GeneratedImage, error) {
	m.calls++
	m.lastReq = req
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return &domain.GeneratedImage{DataURI: "data:image/png;base64,", Model: "m", Provider: m.name}, nil
}
