package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/SharanyaR1/Code-Canvas/pkg/core"
)

type canvasSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits annotation store events.
// It bridges the typed canvas event channel to the generic lifecycle Event
// interface so applications can plug the store into a lifecycle runtime.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &canvasSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *canvasSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *canvasSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
