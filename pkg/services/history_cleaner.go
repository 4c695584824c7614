package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/fitflow/ai-gateway/pkg/logger"
	"github.com/robfig/cron/v3"
)

type promptPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// historyCleaner prunes prompt history past the retention window once an
// hour.
type historyCleaner struct {
	prompts   promptPruner
	retention time.Duration
}

func NewHistoryCleaner(prompts promptPruner, retention time.Duration) (*historyCleaner, error) {
	return &historyCleaner{prompts: prompts, retention: retention}, nil
}

func (h *historyCleaner) Name() string { return "history cleaner" }

func (h *historyCleaner) Run(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() { h.prune(ctx) }); err != nil {
		return err
	}

	c.Start()
	h.prune(ctx)

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

func (h *historyCleaner) prune(ctx context.Context) {
	cutoff := time.Now().Add(-h.retention)
	deleted, err := h.prompts.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		slog.ErrorContext(ctx, "Pruning prompt history failed", logger.Err(err))
		return
	}
	if deleted > 0 {
		slog.InfoContext(ctx, "Prompt history pruned", "deleted", deleted, "cutoff", cutoff)
	}
}
