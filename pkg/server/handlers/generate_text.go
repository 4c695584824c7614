package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fitflow/ai-gateway/pkg/domain"
	"github.com/fitflow/ai-gateway/pkg/logger"
	"github.com/gin-gonic/gin"
)

type generateTextGateway interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResponse, error)
}

type generateTextPromptSaver interface {
	Save(ctx context.Context, prompt *domain.Prompt) error
}

type generateTextRequest struct {
	Prompt     string `json:"prompt"`
	Context    string `json:"context"`
	Type       string `json:"type"`
	RenderHTML bool   `json:"render_html"`
}

type generateTextResponse struct {
	Response string `json:"response"`
	Type     string `json:"type"`
	HTML     string `json:"html,omitempty"`
}

func GenerateText(gw generateTextGateway, promptSaver generateTextPromptSaver) gin.HandlerFunc {
	const fallbackError = "Falha ao processar solicitação de IA"

	return func(c *gin.Context) {
		var req generateTextRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "corpo da requisição inválido", Details: err.Error()})
			return
		}

		ctx := c.Request.Context()

		resp, err := gw.Generate(ctx, domain.GenerationRequest{
			Prompt:     req.Prompt,
			Context:    req.Context,
			Type:       domain.TaskType(req.Type),
			RenderHTML: req.RenderHTML,
		})
		if err != nil {
			respondError(c, fallbackError, err)
			return
		}

		// History is best effort; a storage hiccup must not fail the response.
		if err := promptSaver.Save(ctx, &domain.Prompt{
			Kind:  domain.PromptKindText,
			Text:  req.Prompt,
			Label: string(resp.Type),
		}); err != nil {
			slog.ErrorContext(ctx, "Saving text prompt failed", logger.Err(err))
		}

		c.JSON(http.StatusOK, generateTextResponse{
			Response: resp.Text,
			Type:     string(resp.Type),
			HTML:     resp.HTML,
		})
	}
}
