package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/fitflow/ai-gateway/pkg/domain"
	"github.com/gin-gonic/gin"
)

type regenerateImagePromptProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.Prompt, error)
}

type regenerateImageGateway interface {
	Generate(ctx context.Context, req domain.ImageRequest) (*domain.GeneratedImage, error)
}

type regenerateImageRequest struct {
	PromptID int64 `json:"promptId"`
}

// RegenerateImage replays a stored image prompt, keeping its style and the
// model that served it.
func RegenerateImage(promptProvider regenerateImagePromptProvider, gw regenerateImageGateway) gin.HandlerFunc {
	const fallbackError = "Falha ao gerar imagem"

	return func(c *gin.Context) {
		var req regenerateImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "corpo da requisição inválido", Details: err.Error()})
			return
		}

		ctx := c.Request.Context()

		prompt, err := promptProvider.GetByID(ctx, req.PromptID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, errorResponse{Error: "prompt não encontrado"})
				return
			}
			respondError(c, fallbackError, err)
			return
		}

		image, err := gw.Generate(ctx, domain.ImageRequest{
			Prompt:   prompt.Text,
			Style:    domain.ImageStyle(prompt.Label),
			Provider: domain.ImageProviderName(prompt.Provider),
			Model:    prompt.Model,
		})
		if err != nil {
			respondError(c, fallbackError, err)
			return
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
