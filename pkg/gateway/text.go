package gateway

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fitflow/ai-gateway/pkg/domain"
	"github.com/samber/lo"
)

const (
	textMaxTokens   = 2000
	textTemperature = 0.7

	contextLabel = "Contexto: "
)

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, params domain.ChatParams) (string, error)
}

type htmlRenderer interface {
	ToHTML(markdown string) string
}

// TextGateway maps a task type to its persona and performs a single chat
// completion call. It holds no mutable state.
type TextGateway struct {
	llm      chatCompleter
	renderer htmlRenderer
}

func NewTextGateway(llm chatCompleter, renderer htmlRenderer) *TextGateway {
	return &TextGateway{llm: llm, renderer: renderer}
}

func (g *TextGateway) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, &domain.InvalidRequestError{Message: "Prompt é obrigatório"}
	}

	user := req.Prompt
	if req.Context != "" {
		user = contextLabel + req.Context + "\n\n" + req.Prompt
	}

	taskType := lo.CoalesceOrEmpty(req.Type, domain.TaskGeneral)

	slog.InfoContext(ctx, "Generating text", "type", taskType, "promptLen", len(req.Prompt))

	text, err := g.llm.CreateChatCompletion(ctx, domain.ChatParams{
		System:      domain.PersonaFor(req.Type),
		User:        user,
		MaxTokens:   textMaxTokens,
		Temperature: textTemperature,
	})
	if err != nil {
		return nil, err
	}

	resp := &domain.GenerationResponse{Text: text, Type: taskType}
	if req.RenderHTML && g.renderer != nil {
		resp.HTML = g.renderer.ToHTML(text)
	}

	return resp, nil
}
