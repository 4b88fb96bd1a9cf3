package main

import (
	"log/slog"
	"os"

	canvas "github.com/SharanyaR1/Code-Canvas"
	"github.com/SharanyaR1/Code-Canvas/pkg/core"
)

// openService builds the annotation service for the current directory,
// honoring the global --notes override.
func openService() *core.Service {
	cwd, err := os.Getwd()
	if err != nil {
		fatal("Failed to get CWD", err)
	}

	opts := []canvas.Option{canvas.WithLogger(slog.Default())}
	if notesFile != "" {
		opts = append(opts, canvas.WithNotesFile(notesFile))
	}

	service, err := canvas.New(cwd, opts...)
	if err != nil {
		fatal("Failed to initialize canvas", err)
	}
	return service
}
