// Package domain contains the line diff engine and its output types.
package domain

// Kind classifies a single line of diff output.
type Kind int

const (
	Unchanged Kind = iota // Line present in both texts
	Added                 // Line present only in the modified text
	Removed               // Line present only in the original text

	// Header is reserved for hunk-header lines in external patch formats.
	// The engine never produces it; it exists so consumers that ingest
	// git-style patches can tag those lines without a second enum.
	Header
)

// String returns the string representation of the Kind.
// Implements the Stringer interface.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

var kindNames = [...]string{
	Unchanged: "Unchanged",
	Added:     "Added",
	Removed:   "Removed",
	Header:    "Header",
}

// DiffLine is one line of an alignment between two texts.
//
// OldLine is the 1-based line number in the original text; it is 0 for
// Added lines. NewLine is the 1-based line number in the modified text;
// it is 0 for Removed lines. Unchanged lines carry both.
type DiffLine struct {
	Kind    Kind
	Content string
	OldLine int
	NewLine int

	// Spans holds intraline refinement segments for changed lines.
	// Compute leaves it nil; refinement adapters fill it in.
	Spans []Span
}
