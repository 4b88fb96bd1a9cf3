package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSystemDir is the hidden directory holding canvas state inside a
// workspace.
const DefaultSystemDir = ".canvas"

// NotesFileName is the name of the persisted annotation document.
const NotesFileName = "notes.json"

// FindRoot recursively looks upwards for a workspace root indicator.
// Indicators are: the system directory, a .git directory, or a canvas.json
// file. Returns the absolute path of the first directory that carries one.
func FindRoot(startDir, systemDir string) (string, error) {
	if systemDir == "" {
		systemDir = DefaultSystemDir
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, systemDir) || hasFile(dir, ".git") || hasFile(dir, "canvas.json") {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("workspace root not found")
}

// ResolveNotesPath determines where the notes file lives for a given start
// directory: `<workspace root>/<systemDir>/notes.json` when a workspace root
// exists, otherwise a per-installation fallback under the user config
// directory.
func ResolveNotesPath(startDir, systemDir string) (string, error) {
	if systemDir == "" {
		systemDir = DefaultSystemDir
	}

	if root, err := FindRoot(startDir, systemDir); err == nil {
		return filepath.Join(root, systemDir, NotesFileName), nil
	}

	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("no workspace root and no user config dir: %w", err)
	}
	return filepath.Join(cfgDir, "codecanvas", NotesFileName), nil
}

func hasFile(dir, name string) bool {
	path := filepath.Join(dir, name)
	_, err := os.Stat(path)
	return err == nil
}
