package canvas_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	canvas "github.com/SharanyaR1/Code-Canvas"
)

// Example demonstrates the core flow: annotate a line, read it back.
func Example() {
	dir, err := os.MkdirTemp("", "canvas-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	svc, err := canvas.New(dir, canvas.WithNotesFile(filepath.Join(dir, "notes.json")))
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	if err := svc.Annotate(ctx, "/repo/main.ts", 5, "fix this"); err != nil {
		panic(err)
	}

	a, err := svc.Note(ctx, "/repo/main.ts", 5)
	if err != nil {
		panic(err)
	}
	fmt.Printf("line %d: %s\n", a.Line, a.Text)
	// Output: line 5: fix this
}
