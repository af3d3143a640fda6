// Package api defines the JSON wire types shared by the server and the CLI.
package api

// DiffRequest asks for a comparison of two texts.
type DiffRequest struct {
	Name     string `json:"name,omitempty"`     // display label, e.g. a file path
	Language string `json:"language,omitempty"` // language tag; empty disables highlighting
	Original string `json:"original"`
	Modified string `json:"modified"`

	Refine bool `json:"refine,omitempty"` // attach intraline spans to changed lines
	Patch  bool `json:"patch,omitempty"`  // also produce a git-style patch
}

// Span is an intraline fragment of a changed line.
type Span struct {
	Kind string `json:"kind"` // "unchanged", "added" or "removed"
	Text string `json:"text"`
}

// Token is a syntax-highlighted fragment of a line.
type Token struct {
	Text  string `json:"text"`
	Color string `json:"color,omitempty"` // hex color like "#ff0000"
	Bold  bool   `json:"bold,omitempty"`
}

// DiffLine is one aligned output line of a comparison.
type DiffLine struct {
	Kind    string `json:"kind"`
	Content string `json:"content"`
	OldLine int    `json:"oldLine,omitempty"` // 1-based, 0 when absent
	NewLine int    `json:"newLine,omitempty"`
	Spans   []Span `json:"spans,omitempty"`
}

// DiffStats counts lines by kind.
type DiffStats struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Unchanged int `json:"unchanged"`
}

// DiffResponse is the full result of one comparison.
type DiffResponse struct {
	Name     string `json:"name,omitempty"`
	Language string `json:"language,omitempty"`
	OldRef   string `json:"oldRef,omitempty"`
	NewRef   string `json:"newRef,omitempty"`

	Lines   []DiffLine `json:"lines"`
	Stats   DiffStats  `json:"stats"`
	Unified string     `json:"unified"`
	Patch   string     `json:"patch,omitempty"`

	Highlight [][]Token `json:"highlight,omitempty"`
}

// GitHubDiffRequest compares files on GitHub: either all files of a pull
// request (PullRequest > 0) or one path at two refs.
type GitHubDiffRequest struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`

	PullRequest int `json:"pullRequest,omitempty"`

	Path   string `json:"path,omitempty"`
	OldRef string `json:"oldRef,omitempty"`
	NewRef string `json:"newRef,omitempty"`
}

// GitHubDiffResponse holds one comparison per changed file.
type GitHubDiffResponse struct {
	Files []DiffResponse `json:"files"`
}

// QRRequest asks for a QR code PNG.
type QRRequest struct {
	Content string `json:"content"`
	Size    int    `json:"size,omitempty"`  // pixels, square
	Level   string `json:"level,omitempty"` // "low", "medium", "high", "highest"
}

// BarcodeRequest asks for a barcode PNG.
type BarcodeRequest struct {
	Content string `json:"content"`
	Format  string `json:"format,omitempty"` // "code128" (default) or "ean"
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

// MarkdownRequest asks for a Markdown → HTML rendering.
type MarkdownRequest struct {
	Source string `json:"source"`
}

// MarkdownResponse carries the rendered HTML fragment.
type MarkdownResponse struct {
	HTML string `json:"html"`
}

// TextStatsRequest asks for text measurements.
type TextStatsRequest struct {
	Text string `json:"text"`
}

// TextStatsResponse mirrors the textkit counters.
type TextStatsResponse struct {
	Bytes        int `json:"bytes"`
	Runes        int `json:"runes"`
	Graphemes    int `json:"graphemes"`
	Words        int `json:"words"`
	Lines        int `json:"lines"`
	DisplayWidth int `json:"displayWidth"`
}

// ConvertRequest carries a document for format conversion.
type ConvertRequest struct {
	Input string `json:"input"`
}

// ConvertResponse carries the converted document.
type ConvertResponse struct {
	Output string `json:"output"`
}

// PaletteResponse lists dominant colors as "#rrggbb" hex strings, most
// common first.
type PaletteResponse struct {
	Colors []string `json:"colors"`
}

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
