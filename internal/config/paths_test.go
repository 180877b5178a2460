package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danieljhkim/pixresize/internal/fsops"
)

func TestDefaultPaths(t *testing.T) {
	t.Run("returns paths based on home directory", func(t *testing.T) {
		t.Setenv(RootEnv, "")

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if filepath.Base(paths.Root) != ".pixresize" {
			t.Errorf("Root should end with .pixresize, got: %s", paths.Root)
		}
		if paths.Settings != filepath.Join(paths.Root, "settings.json") {
			t.Errorf("Settings path incorrect: got %s", paths.Settings)
		}
	})

	t.Run("respects PIXRESIZE_ROOT environment variable", func(t *testing.T) {
		customRoot := "/custom/pixresize/path"
		t.Setenv(RootEnv, customRoot)

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root != customRoot {
			t.Errorf("Expected root %s, got %s", customRoot, paths.Root)
		}
		if paths.Settings != filepath.Join(customRoot, "settings.json") {
			t.Errorf("Settings should be under custom root, got: %s", paths.Settings)
		}
	})
}

func TestEnsureDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", ".pixresize")
	paths := PathsAt(root)

	if err := paths.EnsureDirectories(fsops.NewRealFS()); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		t.Fatalf("root not created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", root)
	}

	// Idempotent.
	if err := paths.EnsureDirectories(fsops.NewRealFS()); err != nil {
		t.Errorf("second EnsureDirectories failed: %v", err)
	}
}

func TestEnsureDirectories_UsesGivenFS(t *testing.T) {
	fs := fsops.NewMemFS()
	paths := PathsAt("/data/.pixresize")

	if err := paths.EnsureDirectories(fs); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	isDir, err := fs.IsDir("/data/.pixresize")
	if err != nil || !isDir {
		t.Errorf("IsDir(root) = %v, %v; want true", isDir, err)
	}
}
