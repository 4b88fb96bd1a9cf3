package canvas

import (
	"log/slog"

	"github.com/SharanyaR1/Code-Canvas/internal/platform"
	"github.com/SharanyaR1/Code-Canvas/pkg/core"
	"github.com/SharanyaR1/Code-Canvas/pkg/session"
)

// --- Types ---

// Annotation is a public alias for the domain entity.
type Annotation = core.Annotation

// Key identifies an annotation by file path and zero-based line.
type Key = core.Key

// Event represents a change in the annotation store.
type Event = core.Event

// Session is the command surface: views, add/edit/hover, rendering.
type Session = session.Session

// Surface is the host-editor collaborator that receives decoration sets.
type Surface = session.Surface

// View is an open editor view tracked by a Session.
type View = session.View

// EditArgs is the invocation payload of the edit-note command.
type EditArgs = session.EditArgs

// --- Configuration ---

// Option defines a functional option for configuring Canvas.
type Option = platform.Option

// WithLogger sets the logger for the service and store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithSystemDir allows specifying the hidden directory name (e.g. ".canvas").
func WithSystemDir(name string) Option {
	return platform.WithSystemDir(name)
}

// WithNotesFile pins the notes file location, bypassing root resolution.
func WithNotesFile(path string) Option {
	return platform.WithNotesFile(path)
}

// WithEventBuffer allows specifying the size of watch event buffers.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithMustExist makes initialization fail when the notes file is absent.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithIcon overrides the hover icon glyph.
func WithIcon(icon string) Option {
	return platform.WithIcon(icon)
}

// WithInclude restricts annotation to files matching the glob patterns.
func WithInclude(patterns ...string) Option {
	return platform.WithInclude(patterns...)
}

// WithExclude prevents annotation of files matching the glob patterns.
func WithExclude(patterns ...string) Option {
	return platform.WithExclude(patterns...)
}

// --- Factories ---

// New creates a new annotation Service rooted at the given directory.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes the annotation store explicitly.
func Init(path string, opts ...Option) (core.Store, error) {
	return platform.Init(path, opts...)
}

// NewSession composes the full command surface (store, service, renderer,
// config filters) wired to the given host surface.
func NewSession(path string, surface Surface, opts ...Option) (*Session, error) {
	return platform.NewSession(path, surface, opts...)
}

// --- Utils ---

// FindWorkspaceRoot recursively looks upwards for a workspace root indicator
// (.canvas, .git, or canvas.json).
func FindWorkspaceRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir, "")
}

// ResolveNotesPath determines the notes file location for a directory:
// the workspace root's system dir, or the per-installation fallback.
func ResolveNotesPath(startDir string) (string, error) {
	return platform.ResolveNotesPath(startDir, "")
}
