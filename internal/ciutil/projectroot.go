package ciutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrProjectRootNotFound is returned when no go.mod is found in any parent
// of the working directory.
var ErrProjectRootNotFound = errors.New("unable to find project root")

// FindProjectRoot returns the absolute path of the repository root. It
// honors the TASKAPI_PROJECT_ROOT override, then walks upward from the
// working directory looking for go.mod. Tests use this to locate files
// outside their own package directory, such as migrations.
func FindProjectRoot() (string, error) {
	if root := os.Getenv(EnvProjectRoot); root != "" {
		if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
			return "", fmt.Errorf("%s does not point at a module root: %w", EnvProjectRoot, err)
		}
		return root, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrProjectRootNotFound
		}
		dir = parent
	}
}
