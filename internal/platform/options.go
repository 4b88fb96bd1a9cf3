package platform

import (
	"log/slog"

	"github.com/SharanyaR1/Code-Canvas/pkg/core"
)

// options holds the internal configuration for the Canvas service.
type options struct {
	store  core.Store
	logger *slog.Logger
	config map[string]interface{}
}

// Option defines a functional option for configuring Canvas.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		store:  nil,
		logger: nil,
		config: make(map[string]interface{}),
	}
}

// WithLogger sets the logger for the service and store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom storage adapter (e.g. a mock).
// If provided, the default JSON-file adapter is skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithSystemDir allows specifying the hidden directory name (e.g. ".canvas").
// Defaults to ".canvas".
func WithSystemDir(name string) Option {
	return func(o *options) {
		o.config["system_dir"] = name
	}
}

// WithNotesFile overrides the notes file location entirely, bypassing
// workspace-root resolution. Useful for tests and one-off tooling.
func WithNotesFile(path string) Option {
	return func(o *options) {
		o.config["notes_file"] = path
	}
}

// WithEventBuffer allows specifying the size of watch event buffers.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.config["event_buffer"] = size
	}
}

// WithMustExist makes initialization fail when the notes file is absent,
// instead of starting empty. For tooling that should not silently create
// state in an uninitialized workspace.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithIcon overrides the hover icon glyph from the config file.
func WithIcon(icon string) Option {
	return func(o *options) {
		o.config["icon"] = icon
	}
}

// WithInclude sets glob patterns for files that may be annotated.
// Empty means everything is annotatable.
func WithInclude(patterns ...string) Option {
	return func(o *options) {
		o.config["include"] = patterns
	}
}

// WithExclude sets glob patterns for files that must not be annotated.
// Exclusion wins over inclusion.
func WithExclude(patterns ...string) Option {
	return func(o *options) {
		o.config["exclude"] = patterns
	}
}

func (o *options) stringOpt(key string) string {
	if val, ok := o.config[key].(string); ok {
		return val
	}
	return ""
}

func (o *options) intOpt(key string) int {
	if val, ok := o.config[key].(int); ok {
		return val
	}
	return 0
}

func (o *options) boolOpt(key string) bool {
	if val, ok := o.config[key].(bool); ok {
		return val
	}
	return false
}

func (o *options) stringsOpt(key string) []string {
	if val, ok := o.config[key].([]string); ok {
		return val
	}
	return nil
}
