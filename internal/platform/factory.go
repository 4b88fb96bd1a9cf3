package platform

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SharanyaR1/Code-Canvas/pkg/adapters/fs"
	"github.com/SharanyaR1/Code-Canvas/pkg/core"
	"github.com/SharanyaR1/Code-Canvas/pkg/render"
	"github.com/SharanyaR1/Code-Canvas/pkg/session"
)

// Init builds and initializes the annotation store for a workspace.
// The path argument is the directory the user is working in; the actual
// notes file location is resolved from it (workspace root or fallback)
// unless WithNotesFile overrides it.
func Init(path string, opts ...Option) (core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// 1. Check for injected store
	if o.store != nil {
		if err := o.store.Initialize(context.Background()); err != nil {
			return nil, err
		}
		return o.store, nil
	}

	// 2. Resolve the notes file location
	notesFile := o.stringOpt("notes_file")
	if notesFile == "" {
		resolved, err := ResolveNotesPath(path, o.stringOpt("system_dir"))
		if err != nil {
			return nil, err
		}
		notesFile = resolved
	}

	if o.boolOpt("must_exist") {
		if _, err := os.Stat(notesFile); err != nil {
			return nil, fmt.Errorf("notes file does not exist: %w", err)
		}
	}

	store := fs.NewStore(fs.Config{
		Path:        notesFile,
		Logger:      o.logger,
		EventBuffer: o.intOpt("event_buffer"),
	})

	if err := store.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return store, nil
}

// New creates the annotation Service for a workspace.
func New(path string, opts ...Option) (*core.Service, error) {
	store, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewService(store, o.logger), nil
}

// NewSession composes the full command surface for a workspace: store,
// service, renderer and path filter, wired to the given host surface.
// Options override the workspace config file where both specify a value.
func NewSession(path string, surface session.Surface, opts ...Option) (*session.Session, error) {
	service, err := New(path, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	cfg := Config{}
	if root, err := FindRoot(path, o.stringOpt("system_dir")); err == nil {
		loaded, err := LoadConfig(root, o.stringOpt("system_dir"))
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	icon := cfg.Icon
	if override := o.stringOpt("icon"); override != "" {
		icon = override
	}
	if patterns := o.stringsOpt("include"); patterns != nil {
		cfg.Include = patterns
	}
	if patterns := o.stringsOpt("exclude"); patterns != nil {
		cfg.Exclude = patterns
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	return session.New(service, render.New(icon), surface, cfg.Filter(), logger), nil
}
