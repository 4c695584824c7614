package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hashicorp/go-multierror"
)

type Service interface {
	Name() string
	Run(ctx context.Context) error
}

// Group runs services together: the first one to fail cancels the rest, and
// Start returns once all of them have stopped.
type Group []Service

func (g Group) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	errCh := make(chan error, len(g))

	for _, svc := range g {
		wg.Add(1)
		go func(svc Service) {
			defer wg.Done()
			slog.Info("starting service", "name", svc.Name())
			if err := svc.Run(ctx); err != nil {
				errCh <- err
				cancel()
			}
			slog.Info("service stopped", "name", svc.Name())
		}(svc)
	}

	wg.Wait()
	close(errCh)

	var result *multierror.Error
	for err := range errCh {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
