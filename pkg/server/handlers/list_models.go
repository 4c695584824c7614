package handlers

import (
	"net/http"

	"github.com/fitflow/ai-gateway/pkg/domain"
	"github.com/gin-gonic/gin"
)

type modelEntry struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	Default   bool   `json:"default,omitempty"`
}

type listModelsResponse struct {
	Models []modelEntry `json:"models"`
}

func ListModels() gin.HandlerFunc {
	return func(c *gin.Context) {
		var models []modelEntry
		for _, id := range domain.CatalogKeys() {
			models = append(models, modelEntry{
				ID:        id,
				Reference: domain.ImageModelCatalog[id],
				Default:   id == domain.DefaultImageModel,
			})
		}
		c.JSON(http.StatusOK, listModelsResponse{Models: models})
	}
}
