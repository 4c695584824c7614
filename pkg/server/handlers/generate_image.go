package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fitflow/ai-gateway/pkg/domain"
	"github.com/fitflow/ai-gateway/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type generateImageGateway interface {
	Generate(ctx context.Context, req domain.ImageRequest) (*domain.GeneratedImage, error)
}

type generateImagePromptSaver interface {
	Save(ctx context.Context, prompt *domain.Prompt) error
}

type generateImageRequest struct {
	Prompt   string `json:"prompt"`
	Style    string `json:"style"`
	Size     string `json:"size"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

type generateImageResponse struct {
	ImageURL string `json:"imageUrl"`
	Success  bool   `json:"success"`
	Model    string `json:"model"`
	Provider string `json:"provider"`
	PromptID int64  `json:"promptId,omitempty"`
}

func GenerateImage(gw generateImageGateway, promptSaver generateImagePromptSaver) gin.HandlerFunc {
	const fallbackError = "Falha ao gerar imagem"

	return func(c *gin.Context) {
		var req generateImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "corpo da requisição inválido", Details: err.Error()})
			return
		}

		ctx := c.Request.Context()

		image, err := gw.Generate(ctx, domain.ImageRequest{
			Prompt:   req.Prompt,
			Style:    domain.ImageStyle(req.Style),
			Size:     domain.ImageSize(req.Size),
			Provider: domain.ImageProviderName(req.Provider),
			Model:    req.Model,
		})
		if err != nil {
			respondError(c, fallbackError, err)
			return
		}

		prompt := &domain.Prompt{
			Kind:     domain.PromptKindImage,
			Text:     req.Prompt,
			Label:    string(lo.CoalesceOrEmpty(domain.ImageStyle(req.Style), domain.StyleProfessional)),
			Model:    image.Model,
			Provider: string(image.Provider),
		}
		if err := promptSaver.Save(ctx, prompt); err != nil {
			slog.ErrorContext(ctx, "Saving image prompt failed", logger.Err(err))
		}

		c.JSON(http.StatusOK, generateImageResponse{
			ImageURL: image.DataURI,
			Success:  true,
			Model:    image.Model,
			Provider: string(image.Provider),
			PromptID: prompt.ID,
		})
	}
}
