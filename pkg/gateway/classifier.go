package gateway

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fitflow/ai-gateway/pkg/domain"
	"github.com/fitflow/ai-gateway/pkg/logger"
)

const (
	classifierMaxTokens   = 10
	classifierTemperature = 0
)

const classifierInstruction = `You select the best text-to-image model for a prompt.
Answer with exactly one of the following model ids and nothing else:
%KEYS%
Pick flux-schnell for simple or speed-sensitive prompts, flux-dev for high fidelity,
realistic-vision for photorealism, dreamshaper or playground-v2 for illustrative art,
and the stable-diffusion entries for general purpose prompts.`

// Classifier asks the text model which catalog entry suits a prompt. It is a
// best-effort hint: any failure, and any answer outside the catalog, resolves
// to the default model rather than an error.
type Classifier struct {
	llm chatCompleter
}

func NewClassifier(llm chatCompleter) *Classifier {
	return &Classifier{llm: llm}
}

func (c *Classifier) Classify(ctx context.Context, prompt string) string {
	instruction := strings.Replace(classifierInstruction, "%KEYS%", strings.Join(domain.CatalogKeys(), ", "), 1)

	answer, err := c.llm.CreateChatCompletion(ctx, domain.ChatParams{
		System:      instruction,
		User:        prompt,
		MaxTokens:   classifierMaxTokens,
		Temperature: classifierTemperature,
	})
	if err != nil {
		slog.WarnContext(ctx, "Model classification failed, using default", logger.Err(err), "default", domain.DefaultImageModel)
		return domain.DefaultImageModel
	}

	model := strings.ToLower(strings.TrimSpace(answer))
	if !domain.InCatalog(model) {
		slog.WarnContext(ctx, "Classifier answered outside the catalog, using default", "answer", answer, "default", domain.DefaultImageModel)
		return domain.DefaultImageModel
	}

	return model
}
