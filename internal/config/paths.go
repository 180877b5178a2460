// Package config resolves the filesystem locations pixresize uses.
//
// All persisted data lives under a single root directory, ~/.pixresize by
// default. The root can be moved with the PIXRESIZE_ROOT environment
// variable, which is mostly useful for tests and portable installs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danieljhkim/pixresize/internal/fsops"
)

// RootEnv is the environment variable that overrides the data root.
const RootEnv = "PIXRESIZE_ROOT"

// Paths contains the filesystem paths used by pixresize.
type Paths struct {
	// Root is the base directory for all pixresize data (default: ~/.pixresize)
	Root string

	// Settings is the persisted settings file
	Settings string
}

// DefaultPaths returns the default paths for pixresize.
func DefaultPaths() (*Paths, error) {
	root := os.Getenv(RootEnv)
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".pixresize")
	}
	return PathsAt(root), nil
}

// PathsAt returns the paths rooted at root.
func PathsAt(root string) *Paths {
	return &Paths{
		Root:     root,
		Settings: filepath.Join(root, "settings.json"),
	}
}

// EnsureDirectories creates the data root if it doesn't exist.
func (p *Paths) EnsureDirectories(fs fsops.FS) error {
	if err := fs.MkdirAll(p.Root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.Root, err)
	}
	return nil
}
