package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Service handles the business logic for annotations.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a new Service. A nil logger falls back to slog.Default.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Annotate attaches text to a line of a file, overwriting any existing
// annotation for the same (path, line). Empty text is allowed: clearing the
// text of a note without removing the marker is a legitimate edit.
func (s *Service) Annotate(ctx context.Context, path string, line int, text string) error {
	if path == "" {
		return errors.New("annotation path cannot be empty")
	}
	if line < 0 {
		return fmt.Errorf("annotation line cannot be negative: %d", line)
	}

	return s.store.Upsert(ctx, Annotation{Path: path, Line: line, Text: text})
}

// Note retrieves the annotation at (path, line).
// Returns ErrAnnotationNotFound on absence.
func (s *Service) Note(ctx context.Context, path string, line int) (Annotation, error) {
	if path == "" {
		return Annotation{}, errors.New("annotation path cannot be empty")
	}
	return s.store.Get(ctx, Key{Path: path, Line: line})
}

// Remove deletes the annotation at (path, line). Removing an absent
// annotation is a no-op.
func (s *Service) Remove(ctx context.Context, path string, line int) error {
	if path == "" {
		return errors.New("annotation path cannot be empty")
	}
	return s.store.Delete(ctx, Key{Path: path, Line: line})
}

// List retrieves all annotations.
func (s *Service) List(ctx context.Context) ([]Annotation, error) {
	return s.store.List(ctx)
}

// ForFile retrieves the annotations attached to a single file.
func (s *Service) ForFile(ctx context.Context, path string) ([]Annotation, error) {
	if path == "" {
		return nil, errors.New("annotation path cannot be empty")
	}
	return s.store.ListFile(ctx, path)
}

// Watch observes changes in the store if supported.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx)
}

// Logger exposes the service logger for collaborators that report
// non-fatal persistence failures.
func (s *Service) Logger() *slog.Logger {
	return s.logger
}
