package session

import (
	"context"

	"github.com/aretw0/lifecycle"
)

// AutoRefresh consumes store watch events until ctx is canceled, re-rendering
// the views affected by each change. External rewrites of the notes file
// (RELOAD) refresh every open view; targeted mutations refresh only the views
// showing the mutated file.
//
// Requires a watchable store; returns the service's error otherwise.
func (s *Session) AutoRefresh(ctx context.Context) error {
	events, err := s.service.Watch(ctx)
	if err != nil {
		return err
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-events:
				if !ok {
					return nil
				}
				if e.Key.Path == "" {
					s.Refresh(ctx)
				} else {
					s.renderFile(ctx, e.Key.Path)
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("auto-refresh panic", "error", err)
	}))

	return nil
}
