package session

import (
	"context"
	"errors"
	"fmt"

	lsp "github.com/tliron/glsp/protocol_3_16"

	"github.com/SharanyaR1/Code-Canvas/pkg/core"
)

// EditArgs is the invocation payload of the edit-note command, typically
// decoded from the hover link's command arguments. Both fields are required;
// pointers distinguish "missing" from zero values.
type EditArgs struct {
	FilePath *string `json:"filePath"`
	Line     *int    `json:"line"`
}

// AddNote attaches text to the cursor line of the active view.
//
// Empty text means the user cancelled the prompt: the command is a silent
// no-op and returns an empty confirmation. On success the note is persisted,
// the active view re-rendered, and a confirmation message returned. A
// persistence failure is logged, not surfaced: the in-memory note stays
// authoritative.
func (s *Session) AddNote(ctx context.Context, text string) (string, error) {
	view, ok := s.ActiveView()
	if !ok {
		return "", errors.New("no active view")
	}

	if text == "" {
		return "", nil
	}

	if s.filter != nil && !s.filter(view.Path) {
		return "", fmt.Errorf("%w: %s", core.ErrPathExcluded, view.Path)
	}

	if err := s.service.Annotate(ctx, view.Path, view.Cursor, text); err != nil {
		s.logger.Warn("note kept in memory, save failed", "path", view.Path, "line", view.Cursor, "error", err)
	}

	s.renderView(ctx, view)
	return fmt.Sprintf("Note added at %s:%d", view.Path, view.Cursor), nil
}

// EditNote rewrites the text of an existing note, invoked from a hover link.
//
// Both FilePath and Line must be present in the payload; otherwise the
// command reports ErrInvalidArguments and performs no mutation. A nil
// newText means the user cancelled the prompt (no-op); an empty string is a
// legitimate new text. On success every open view showing the file is
// re-rendered.
func (s *Session) EditNote(ctx context.Context, args EditArgs, newText *string) (string, error) {
	if args.FilePath == nil || args.Line == nil {
		return "", fmt.Errorf("%w: edit-note requires filePath and line", core.ErrInvalidArguments)
	}

	if newText == nil {
		return "", nil
	}

	if err := s.service.Annotate(ctx, *args.FilePath, *args.Line, *newText); err != nil {
		s.logger.Warn("note kept in memory, save failed", "path", *args.FilePath, "line", *args.Line, "error", err)
	}

	s.renderFile(ctx, *args.FilePath)
	return fmt.Sprintf("Note updated at %s:%d", *args.FilePath, *args.Line), nil
}

// RemoveNote deletes the note at (path, line) and re-renders affected views.
func (s *Session) RemoveNote(ctx context.Context, path string, line int) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: remove-note requires a file path", core.ErrInvalidArguments)
	}

	if err := s.service.Remove(ctx, path, line); err != nil {
		s.logger.Warn("note removed in memory, save failed", "path", path, "line", line, "error", err)
	}

	s.renderFile(ctx, path)
	return fmt.Sprintf("Note removed at %s:%d", path, line), nil
}

// Hover is the pure read path behind hover previews. It returns the payload
// for the note at (viewPath, line) and whether one exists.
func (s *Session) Hover(ctx context.Context, viewPath string, line int) (lsp.Hover, bool, error) {
	annotations, err := s.service.ForFile(ctx, viewPath)
	if err != nil {
		return lsp.Hover{}, false, err
	}

	hover, ok := s.renderer.HoverAt(annotations, viewPath, line)
	return hover, ok, nil
}
