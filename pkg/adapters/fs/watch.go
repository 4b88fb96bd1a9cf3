package fs

import (
	"context"
	"fmt"

	"github.com/aretw0/lifecycle"

	"github.com/SharanyaR1/Code-Canvas/pkg/core"
)

// Watch implements core.Watchable. The returned channel carries:
//   - EventUpsert / EventDelete for mutations made through this store, and
//   - EventReload when the backing file was changed by another process.
//
// The channel is closed when ctx is canceled. One consumer per store is the
// supported usage; the command surface is single-threaded by design.
func (s *Store) Watch(ctx context.Context) (<-chan core.Event, error) {
	id, ch := s.subscribe()

	w := newWatchWorker(s, ch)
	if err := w.Start(ctx); err != nil {
		s.unsubscribe(id)
		return nil, fmt.Errorf("failed to start notes watcher: %w", err)
	}

	// Tear down on cancellation: stop the worker first so nothing writes to
	// the channel after it closes.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		if err := w.Stop(context.Background()); err != nil {
			s.logger.Debug("watcher stop", "error", err)
		}
		s.unsubscribe(id)
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("watcher teardown panic", "error", err)
	}))

	return ch, nil
}
