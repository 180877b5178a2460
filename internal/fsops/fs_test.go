package fsops

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRealFS_Exists(t *testing.T) {
	fs := &RealFS{}

	tmpDir, err := os.MkdirTemp("", "fsops-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Run("existing file", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "exists.txt")
		if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		exists, err := fs.Exists(testFile)
		if err != nil {
			t.Errorf("Exists returned error: %v", err)
		}
		if !exists {
			t.Error("Exists should return true for existing file")
		}
	})

	t.Run("non-existing file", func(t *testing.T) {
		nonExistent := filepath.Join(tmpDir, "does-not-exist.txt")
		exists, err := fs.Exists(nonExistent)
		if err != nil {
			t.Errorf("Exists returned error: %v", err)
		}
		if exists {
			t.Error("Exists should return false for non-existing file")
		}
	})

	t.Run("existing directory", func(t *testing.T) {
		exists, err := fs.Exists(tmpDir)
		if err != nil {
			t.Errorf("Exists returned error: %v", err)
		}
		if !exists {
			t.Error("Exists should return true for existing directory")
		}
	})
}

func TestRealFS_MkdirAll(t *testing.T) {
	fs := &RealFS{}

	tmpDir, err := os.MkdirTemp("", "fsops-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Run("create nested directories", func(t *testing.T) {
		nestedPath := filepath.Join(tmpDir, "a", "b", "c")
		err := fs.MkdirAll(nestedPath, 0755)
		if err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}

		// Verify directory exists
		if _, err := os.Stat(nestedPath); os.IsNotExist(err) {
			t.Error("Nested directory was not created")
		}
	})

	t.Run("idempotent operation", func(t *testing.T) {
		dirPath := filepath.Join(tmpDir, "existing")

		// Create once
		if err := fs.MkdirAll(dirPath, 0755); err != nil {
			t.Fatalf("First MkdirAll failed: %v", err)
		}

		// Create again - should not fail
		if err := fs.MkdirAll(dirPath, 0755); err != nil {
			t.Errorf("Second MkdirAll should not fail: %v", err)
		}
	})
}

func TestRealFS_AtomicWrite(t *testing.T) {
	fs := &RealFS{}

	tmpDir, err := os.MkdirTemp("", "fsops-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Run("write to new file", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "atomic-new.txt")
		content := []byte("atomic content")

		err := fs.AtomicWrite(testFile, content, 0644)
		if err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		// Verify file exists and has correct content
		readContent, err := os.ReadFile(testFile)
		if err != nil {
			t.Fatalf("failed to read written file: %v", err)
		}
		if string(readContent) != string(content) {
			t.Errorf("File content mismatch: got %q, want %q", readContent, content)
		}
	})

	t.Run("overwrite existing file", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "atomic-overwrite.txt")

		// Write initial content
		initialContent := []byte("initial")
		if err := os.WriteFile(testFile, initialContent, 0644); err != nil {
			t.Fatalf("failed to create initial file: %v", err)
		}

		// Overwrite with atomic write
		newContent := []byte("overwritten")
		err := fs.AtomicWrite(testFile, newContent, 0644)
		if err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		// Verify new content
		readContent, err := os.ReadFile(testFile)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if string(readContent) != string(newContent) {
			t.Errorf("File content not updated: got %q, want %q", readContent, newContent)
		}
	})
}

func TestRealFS_ReadFile(t *testing.T) {
	fs := &RealFS{}

	tmpDir, err := os.MkdirTemp("", "fsops-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Run("read existing file", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "read-test.txt")
		content := []byte("test content")
		if err := os.WriteFile(testFile, content, 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		readContent, err := fs.ReadFile(testFile)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if string(readContent) != string(content) {
			t.Errorf("ReadFile content mismatch: got %q, want %q", readContent, content)
		}
	})

	t.Run("read non-existing file", func(t *testing.T) {
		nonExistent := filepath.Join(tmpDir, "does-not-exist.txt")
		_, err := fs.ReadFile(nonExistent)
		if err == nil {
			t.Error("ReadFile should return error for non-existing file")
		}
	})
}

func TestRealFS_Remove(t *testing.T) {
	fs := &RealFS{}

	tmpDir, err := os.MkdirTemp("", "fsops-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Run("remove existing file", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "remove-me.txt")
		if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		err := fs.Remove(testFile)
		if err != nil {
			t.Fatalf("Remove failed: %v", err)
		}

		// Verify file is gone
		if _, err := os.Stat(testFile); !os.IsNotExist(err) {
			t.Error("File should have been removed")
		}
	})
}

func TestRealFS_IsDir(t *testing.T) {
	fs := &RealFS{}

	tmpDir, err := os.MkdirTemp("", "fsops-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	file := filepath.Join(tmpDir, "a.png")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if isDir, err := fs.IsDir(tmpDir); err != nil || !isDir {
		t.Errorf("IsDir(dir) = %v, %v; want true, nil", isDir, err)
	}
	if isDir, err := fs.IsDir(file); err != nil || isDir {
		t.Errorf("IsDir(file) = %v, %v; want false, nil", isDir, err)
	}
	if _, err := fs.IsDir(filepath.Join(tmpDir, "missing")); !os.IsNotExist(err) {
		t.Errorf("IsDir(missing) error = %v, want not-exist", err)
	}
}

func TestRealFS_ListFiles(t *testing.T) {
	fs := &RealFS{}

	tmpDir, err := os.MkdirTemp("", "fsops-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	for _, name := range []string{"b.png", "a.gif", "c.txt"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "sub"), 0755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}

	files, err := fs.ListFiles(tmpDir)
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	want := []string{
		filepath.Join(tmpDir, "a.gif"),
		filepath.Join(tmpDir, "b.png"),
		filepath.Join(tmpDir, "c.txt"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("ListFiles = %v, want %v", files, want)
	}
}

func TestMemFS(t *testing.T) {
	fs := NewMemFS()
	fs.AddFile("/art/a.png", []byte("a"))
	fs.AddFile("/art/sub/b.png", []byte("b"))

	t.Run("directories are implied by files", func(t *testing.T) {
		for _, dir := range []string{"/art", "/art/sub", "/"} {
			if isDir, err := fs.IsDir(dir); err != nil || !isDir {
				t.Errorf("IsDir(%q) = %v, %v", dir, isDir, err)
			}
		}
	})

	t.Run("list is non-recursive", func(t *testing.T) {
		files, err := fs.ListFiles("/art")
		if err != nil {
			t.Fatalf("ListFiles failed: %v", err)
		}
		if !reflect.DeepEqual(files, []string{"/art/a.png"}) {
			t.Errorf("ListFiles = %v", files)
		}
	})

	t.Run("write read remove", func(t *testing.T) {
		if err := fs.AtomicWrite("/out/c.png", []byte("c"), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}
		data, err := fs.ReadFile("/out/c.png")
		if err != nil || string(data) != "c" {
			t.Fatalf("ReadFile = %q, %v", data, err)
		}
		if err := fs.Remove("/out/c.png"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if exists, _ := fs.Exists("/out/c.png"); exists {
			t.Error("file should be gone after Remove")
		}
	})

	t.Run("injected write failure", func(t *testing.T) {
		boom := errors.New("disk full")
		fs.FailWrites["/out/d.png"] = boom
		if err := fs.AtomicWrite("/out/d.png", nil, 0644); !errors.Is(err, boom) {
			t.Errorf("AtomicWrite error = %v, want %v", err, boom)
		}
	})
}
