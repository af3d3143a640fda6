package domain

// Row is one visual row of a split (side-by-side) diff view. Either side
// may be absent: a removed line with no paired insertion leaves Right nil,
// and vice versa.
type Row struct {
	Left  *DiffLine
	Right *DiffLine
}

// SideBySide folds an alignment into split-view rows. Unchanged lines
// occupy both sides of a row. Within a changed region, removed and added
// lines are paired up positionally; the longer run spills into rows with
// an empty opposite side.
func SideBySide(lines []DiffLine) []Row {
	var rows []Row
	var removed, added []DiffLine

	flush := func() {
		n := len(removed)
		if len(added) > n {
			n = len(added)
		}
		for i := 0; i < n; i++ {
			var row Row
			if i < len(removed) {
				row.Left = &removed[i]
			}
			if i < len(added) {
				row.Right = &added[i]
			}
			rows = append(rows, row)
		}
		removed, added = nil, nil
	}

	for i := range lines {
		switch lines[i].Kind {
		case Removed:
			removed = append(removed, lines[i])
		case Added:
			added = append(added, lines[i])
		default:
			flush()
			line := lines[i]
			rows = append(rows, Row{Left: &line, Right: &line})
		}
	}
	flush()
	return rows
}
