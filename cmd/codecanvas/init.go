package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	canvas "github.com/SharanyaR1/Code-Canvas"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a canvas workspace in the current directory",
	Long: `Create the .canvas system directory here, making this directory the
workspace root for note resolution.`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}

		systemDir := filepath.Join(cwd, ".canvas")
		if err := os.MkdirAll(systemDir, 0755); err != nil {
			fatal("Failed to create system directory", err)
		}

		// Initializing the store creates the notes file location eagerly so
		// the workspace is self-describing.
		if _, err := canvas.Init(cwd, canvas.WithNotesFile(filepath.Join(systemDir, "notes.json"))); err != nil {
			fatal("Failed to initialize store", err)
		}

		fmt.Printf("Initialized canvas workspace at %s\n", cwd)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
