// Package grid computes tile-grid overlay lines for verifying that resized
// pixel art lines up with its tiles.
//
// The overlay is a verification aid only. Line positions and the rendered
// preview are never written into resized output.
package grid

// Spec describes an overlay grid: the cell size and a free offset. The
// offset may be any integer; it is normalized into [0, CellSize) when
// lines are laid out.
type Spec struct {
	CellSize int `json:"cellSize"`
	OffsetX  int `json:"offsetX"`
	OffsetY  int `json:"offsetY"`
}

// Normalized returns the offset folded into [0, CellSize). A
// non-positive cell size yields (0, 0).
func (s Spec) Normalized() (x, y int) {
	return normalize(s.OffsetX, s.CellSize), normalize(s.OffsetY, s.CellSize)
}

// Nudge moves the offset by (dx, dy).
func (s *Spec) Nudge(dx, dy int) {
	s.OffsetX += dx
	s.OffsetY += dy
}

// Reset moves the offset back to (0, 0).
func (s *Spec) Reset() {
	s.OffsetX = 0
	s.OffsetY = 0
}

// Lines holds the vertical (Xs) and horizontal (Ys) line coordinates.
type Lines struct {
	Xs []int `json:"xs"`
	Ys []int `json:"ys"`
}

// Layout returns the overlay lines for a w x h canvas.
func Layout(w, h int, s Spec) Lines {
	xs, ys := LinePositions(w, h, s.CellSize, s.OffsetX, s.OffsetY)
	return Lines{Xs: xs, Ys: ys}
}

// LinePositions returns ascending line coordinates for a w x h canvas.
//
// Each axis starts with 0, continues with every tile boundary offset by the
// normalized offset up to the canvas size, and always ends with the canvas
// size itself. Both content edges are therefore present for any offset.
// A non-positive cellSize returns nil slices.
func LinePositions(w, h, cellSize, offsetX, offsetY int) (xs, ys []int) {
	if cellSize <= 0 {
		return nil, nil
	}
	return axis(w, cellSize, normalize(offsetX, cellSize)),
		axis(h, cellSize, normalize(offsetY, cellSize))
}

func axis(size, cell, start int) []int {
	lines := make([]int, 0, size/cell+3)
	lines = append(lines, 0)

	first := start
	if first == 0 {
		first = cell
	}
	for v := first; v <= size; v += cell {
		lines = append(lines, v)
	}

	if lines[len(lines)-1] != size {
		lines = append(lines, size)
	}
	return lines
}

// normalize folds off into [0, cell).
func normalize(off, cell int) int {
	if cell <= 0 {
		return 0
	}
	return ((off % cell) + cell) % cell
}
