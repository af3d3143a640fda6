package domain

import "strings"

// Compute aligns two texts line by line using a longest-common-subsequence
// table and returns the alignment in original-to-end order.
//
// Texts are split on "\n" with no special casing: splitting "" yields a
// single empty line, so comparing two empty texts yields one Unchanged line
// with empty content. Lines match on exact string equality.
//
// When an insertion and a deletion are equally cheap at the same position,
// the insertion is listed first. Output is fully deterministic.
//
// The table costs O(m·n) time and space, which is fine for texts compared
// interactively but makes this the wrong engine for large-file diffing.
func Compute(original, modified string) []DiffLine {
	oldLines := strings.Split(original, "\n")
	newLines := strings.Split(modified, "\n")
	m, n := len(oldLines), len(newLines)

	// dp[i][j] = LCS length of oldLines[:i] and newLines[:j].
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			switch {
			case oldLines[i-1] == newLines[j-1]:
				dp[i][j] = dp[i-1][j-1] + 1
			case dp[i-1][j] >= dp[i][j-1]:
				dp[i][j] = dp[i-1][j]
			default:
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	// Backtrack from (m,n). Entries come out last-to-first and are
	// reversed below. Taking the Removed branch on ties here is what
	// puts Added lines before Removed lines in the final order.
	lines := make([]DiffLine, 0, m+n)
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && oldLines[i-1] == newLines[j-1]:
			lines = append(lines, DiffLine{Kind: Unchanged, Content: oldLines[i-1], OldLine: i, NewLine: j})
			i--
			j--
		case i > 0 && (j == 0 || dp[i-1][j] >= dp[i][j-1]):
			lines = append(lines, DiffLine{Kind: Removed, Content: oldLines[i-1], OldLine: i})
			i--
		default:
			lines = append(lines, DiffLine{Kind: Added, Content: newLines[j-1], NewLine: j})
			j--
		}
	}

	for a, b := 0, len(lines)-1; a < b; a, b = a+1, b-1 {
		lines[a], lines[b] = lines[b], lines[a]
	}
	return lines
}

// RenderUnified renders the alignment of two texts as prefixed lines:
// "+ " for added, "- " for removed, "  " for unchanged, joined with "\n".
// No hunk headers are produced; every line of both texts appears.
func RenderUnified(original, modified string) string {
	return RenderAligned(Compute(original, modified))
}

// RenderAligned renders an already-computed alignment; see RenderUnified.
func RenderAligned(lines []DiffLine) string {
	var b strings.Builder
	for idx, line := range lines {
		if idx > 0 {
			b.WriteByte('\n')
		}
		switch line.Kind {
		case Added:
			b.WriteString("+ ")
		case Removed:
			b.WriteString("- ")
		default:
			b.WriteString("  ")
		}
		b.WriteString(line.Content)
	}
	return b.String()
}
