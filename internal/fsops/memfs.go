package fsops

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// MemFS implements FS in memory. It is safe for concurrent use and is
// meant for tests.
type MemFS struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]bool

	// FailWrites makes AtomicWrite fail for the listed paths.
	FailWrites map[string]error
}

// NewMemFS creates an empty MemFS.
func NewMemFS() *MemFS {
	return &MemFS{
		files:      make(map[string][]byte),
		dirs:       make(map[string]bool),
		FailWrites: make(map[string]error),
	}
}

// AddFile stores data at path and registers its parent directories.
func (fs *MemFS) AddFile(path string, data []byte) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	path = filepath.Clean(path)
	fs.files[path] = append([]byte(nil), data...)
	fs.addParents(path)
}

// Files returns a copy of every stored path and its contents.
func (fs *MemFS) Files() map[string][]byte {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	out := make(map[string][]byte, len(fs.files))
	for p, data := range fs.files {
		out[p] = append([]byte(nil), data...)
	}
	return out
}

func (fs *MemFS) addParents(path string) {
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		fs.dirs[dir] = true
		if parent := filepath.Dir(dir); parent == dir {
			return
		}
	}
}

func (fs *MemFS) IsDir(path string) (bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	path = filepath.Clean(path)
	if fs.dirs[path] {
		return true, nil
	}
	if _, ok := fs.files[path]; ok {
		return false, nil
	}
	return false, os.ErrNotExist
}

func (fs *MemFS) ListFiles(dir string) ([]string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	dir = filepath.Clean(dir)
	if !fs.dirs[dir] {
		return nil, os.ErrNotExist
	}
	var files []string
	for p := range fs.files {
		if filepath.Dir(p) == dir {
			files = append(files, p)
		}
	}
	sort.Strings(files)
	return files, nil
}

func (fs *MemFS) MkdirAll(path string, perm os.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	path = filepath.Clean(path)
	fs.dirs[path] = true
	fs.addParents(path)
	return nil
}

func (fs *MemFS) Remove(path string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	path = filepath.Clean(path)
	if _, ok := fs.files[path]; !ok {
		return os.ErrNotExist
	}
	delete(fs.files, path)
	return nil
}

func (fs *MemFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	path = filepath.Clean(path)
	if err, ok := fs.FailWrites[path]; ok {
		return err
	}
	fs.files[path] = append([]byte(nil), data...)
	fs.addParents(path)
	return nil
}

func (fs *MemFS) ReadFile(path string) ([]byte, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if data, ok := fs.files[filepath.Clean(path)]; ok {
		return append([]byte(nil), data...), nil
	}
	return nil, os.ErrNotExist
}

func (fs *MemFS) Exists(path string) (bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	path = filepath.Clean(path)
	_, isFile := fs.files[path]
	return isFile || fs.dirs[path], nil
}
