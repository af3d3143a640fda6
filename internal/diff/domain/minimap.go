package domain

// MinimapCell is one bucket of a fixed-height diff overview strip.
// Each cell covers a contiguous run of diff lines and records which
// kinds of change fall inside it, so a scrollbar gutter can be painted
// proportionally without walking the full alignment.
type MinimapCell struct {
	FirstLine  int // index into the DiffLine sequence, inclusive
	LastLine   int // index into the DiffLine sequence, inclusive
	HasAdded   bool
	HasRemoved bool
}

// Minimap buckets an alignment into at most height cells of near-equal
// size. Returns nil for empty input or non-positive height. When the
// alignment has fewer lines than height, one cell per line is returned.
func Minimap(lines []DiffLine, height int) []MinimapCell {
	if len(lines) == 0 || height <= 0 {
		return nil
	}
	if height > len(lines) {
		height = len(lines)
	}

	cells := make([]MinimapCell, 0, height)
	for c := 0; c < height; c++ {
		// Integer split keeps cell sizes within one line of each other.
		first := c * len(lines) / height
		last := (c+1)*len(lines)/height - 1

		cell := MinimapCell{FirstLine: first, LastLine: last}
		for i := first; i <= last; i++ {
			switch lines[i].Kind {
			case Added:
				cell.HasAdded = true
			case Removed:
				cell.HasRemoved = true
			}
		}
		cells = append(cells, cell)
	}
	return cells
}
