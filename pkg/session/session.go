// Package session is the command surface of Code Canvas: it tracks the open
// editor views, dispatches the add/edit/remove/hover operations against the
// annotation service, and pushes recomputed decoration sets to the host
// through the Surface collaborator.
//
// Every command is a single-step transaction: mutate, persist, re-render.
// There is no pending state and nothing to roll back.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/SharanyaR1/Code-Canvas/pkg/core"
	"github.com/SharanyaR1/Code-Canvas/pkg/render"
)

// Surface is the visual collaborator contract: the host editor applies a
// complete decoration set to one of its open views. Replacement is atomic
// from the session's perspective; there is no incremental diffing.
type Surface interface {
	ApplyDecorations(viewID string, decorations []render.Decoration) error
}

// View is an open editor view the session renders into.
type View struct {
	ID        string
	Path      string
	LineCount int
	Cursor    int
}

// PathFilter decides whether a file may be annotated. A nil filter allows
// everything.
type PathFilter func(path string) bool

// Session orchestrates annotation commands and decoration rendering for a
// set of open views.
type Session struct {
	service  *core.Service
	renderer *render.Renderer
	surface  Surface
	filter   PathFilter
	logger   *slog.Logger

	// Commands arrive on a single event thread by contract; the mutex only
	// guards against the auto-refresh loop observing a torn view map.
	mu     sync.RWMutex
	views  map[string]*View
	active string
}

// New creates a Session. renderer may be nil (defaults apply); logger may be
// nil (slog.Default); filter may be nil (allow all).
func New(service *core.Service, renderer *render.Renderer, surface Surface, filter PathFilter, logger *slog.Logger) *Session {
	if renderer == nil {
		renderer = render.New("")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		service:  service,
		renderer: renderer,
		surface:  surface,
		filter:   filter,
		logger:   logger,
		views:    make(map[string]*View),
	}
}

// OpenView registers a view, makes it active, and renders its decorations.
func (s *Session) OpenView(ctx context.Context, path string, lineCount int) (View, error) {
	if path == "" {
		return View{}, fmt.Errorf("view path cannot be empty")
	}
	if lineCount < 0 {
		return View{}, fmt.Errorf("view line count cannot be negative: %d", lineCount)
	}

	v := &View{
		ID:        uuid.NewString(),
		Path:      path,
		LineCount: lineCount,
	}

	s.mu.Lock()
	s.views[v.ID] = v
	s.active = v.ID
	s.mu.Unlock()

	s.renderView(ctx, *v)
	return *v, nil
}

// CloseView forgets a view. Closing the active view leaves no view active.
func (s *Session) CloseView(viewID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.views, viewID)
	if s.active == viewID {
		s.active = ""
	}
}

// Activate switches the active view and re-renders it (and only it), reading
// the already-loaded store.
func (s *Session) Activate(ctx context.Context, viewID string) error {
	s.mu.Lock()
	v, ok := s.views[viewID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("unknown view: %s", viewID)
	}
	s.active = viewID
	view := *v
	s.mu.Unlock()

	s.renderView(ctx, view)
	return nil
}

// SetCursor records the cursor line of a view; AddNote targets it.
func (s *Session) SetCursor(viewID string, line int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.views[viewID]
	if !ok {
		return fmt.Errorf("unknown view: %s", viewID)
	}
	v.Cursor = line
	return nil
}

// ActiveView returns the currently active view, if any.
func (s *Session) ActiveView() (View, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.views[s.active]
	if !ok {
		return View{}, false
	}
	return *v, true
}

// Views returns a snapshot of all open views.
func (s *Session) Views() []View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]View, 0, len(s.views))
	for _, v := range s.views {
		out = append(out, *v)
	}
	return out
}

// Refresh recomputes and re-applies decorations for every open view.
func (s *Session) Refresh(ctx context.Context) {
	for _, v := range s.Views() {
		s.renderView(ctx, v)
	}
}

// renderFile re-renders every open view displaying the given file.
func (s *Session) renderFile(ctx context.Context, path string) {
	for _, v := range s.Views() {
		if core.SamePath(v.Path, path) {
			s.renderView(ctx, v)
		}
	}
}

// renderView computes the full decoration set for a view and pushes it to
// the surface. Rendering never raises user-visible errors: failures are
// logged and the previous decorations stay in place.
func (s *Session) renderView(ctx context.Context, v View) {
	if s.surface == nil {
		return
	}

	annotations, err := s.service.ForFile(ctx, v.Path)
	if err != nil {
		s.logger.Warn("failed to list annotations for view", "path", v.Path, "error", err)
		return
	}

	decorations := s.renderer.Compute(annotations, v.Path, v.LineCount)
	if err := s.surface.ApplyDecorations(v.ID, decorations); err != nil {
		s.logger.Warn("failed to apply decorations", "view", v.ID, "error", err)
	}
}
