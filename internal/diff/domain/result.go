package domain

import "strings"

// Stats summarizes an alignment by line kind.
type Stats struct {
	Added     int
	Removed   int
	Unchanged int
}

// Changed reports whether the alignment contains any added or removed lines.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// CountByKind returns counts of lines grouped by kind.
func CountByKind(lines []DiffLine) Stats {
	var s Stats
	for _, l := range lines {
		switch l.Kind {
		case Added:
			s.Added++
		case Removed:
			s.Removed++
		case Unchanged:
			s.Unchanged++
		}
	}
	return s
}

// Comparison is the full result of comparing two texts: the raw alignment
// plus the renderings derived from it. Produced fresh on every compare and
// never mutated afterwards.
type Comparison struct {
	Name     string // display label, e.g. a file path
	Language string // language tag used for highlighting, may be empty
	OldRef   string // where the original came from, may be empty
	NewRef   string // where the modified came from, may be empty

	Lines   []DiffLine
	Stats   Stats
	Unified string // engine rendering ("+ "/"- "/"  " prefixes, no hunks)
	Patch   string // git-style unified patch with hunk headers, may be empty

	// Highlight holds syntax tokens per entry of Lines when a language
	// was given and recognized; nil otherwise.
	Highlight [][]Token
}

// Reconstruct rebuilds one side of the compared pair from an alignment.
// Filtering to Removed+Unchanged yields the original text, Added+Unchanged
// the modified text. Useful for integrity checks.
func Reconstruct(lines []DiffLine, keep Kind) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.Kind == keep || l.Kind == Unchanged {
			parts = append(parts, l.Content)
		}
	}
	return strings.Join(parts, "\n")
}
