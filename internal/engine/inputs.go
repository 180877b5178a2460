package engine

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/pixresize/internal/codec"
)

// expandInputs resolves the request inputs into a list of files.
//
// Directories contribute their supported image files, sorted by name.
// Explicit files are kept even with an unknown extension so the user gets
// a per-item error instead of a silent skip. Paths that cannot be stat'ed
// are also kept; reading them reports the problem per item. Duplicates are
// dropped, first occurrence wins.
func (e *Engine) expandInputs(inputs []string) ([]string, error) {
	seen := make(map[string]bool, len(inputs))
	files := make([]string, 0, len(inputs))

	add := func(p string) {
		p = filepath.Clean(p)
		if seen[p] {
			return
		}
		seen[p] = true
		files = append(files, p)
	}

	for _, input := range inputs {
		if input == "" {
			continue
		}
		isDir, err := e.fs.IsDir(input)
		if err != nil || !isDir {
			add(input)
			continue
		}

		entries, err := e.fs.ListFiles(input)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", input, err)
		}
		matched := 0
		for _, p := range entries {
			if codec.Supported(p) {
				add(p)
				matched++
			}
		}
		e.logger.Debug("expanded directory", "dir", input, "images", matched, "entries", len(entries))
	}

	if len(files) == 0 {
		return nil, ErrNoInputs
	}
	return files, nil
}

// outputPath returns where the resized copy of input is written.
func outputPath(input, outputDir string, w, h int, out codec.Format) string {
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, codec.OutputName(input, w, h, out))
}
