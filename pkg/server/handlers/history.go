package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/fitflow/ai-gateway/pkg/domain"
	"github.com/gin-gonic/gin"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type historyPromptLister interface {
	List(ctx context.Context, kind domain.PromptKind, limit int) ([]domain.Prompt, error)
}

type historyEntry struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Text      string    `json:"text"`
	Label     string    `json:"label,omitempty"`
	Model     string    `json:"model,omitempty"`
	Provider  string    `json:"provider,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type historyResponse struct {
	Prompts []historyEntry `json:"prompts"`
}

func History(promptLister historyPromptLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := defaultHistoryLimit
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				c.JSON(http.StatusBadRequest, errorResponse{Error: "limit inválido"})
				return
			}
			limit = min(n, maxHistoryLimit)
		}

		prompts, err := promptLister.List(c.Request.Context(), domain.PromptKind(c.Query("kind")), limit)
		if err != nil {
			respondError(c, "Falha ao consultar histórico", err)
			return
		}

		entries := make([]historyEntry, 0, len(prompts))
		for _, p := range prompts {
			entries = append(entries, historyEntry{
				ID:        p.ID,
				Kind:      string(p.Kind),
				Text:      p.Text,
				Label:     p.Label,
				Model:     p.Model,
				Provider:  p.Provider,
				CreatedAt: p.CreatedAt,
			})
		}

		c.JSON(http.StatusOK, historyResponse{Prompts: entries})
	}
}
