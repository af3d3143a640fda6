// Command toolbox-cli runs the toolbox utilities locally, without the server.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/nathantilsley/toolbox/internal/diff/domain"
	"github.com/nathantilsley/toolbox/internal/imagefx"
	"github.com/nathantilsley/toolbox/internal/qrgen"
	"github.com/nathantilsley/toolbox/internal/textkit"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		usage()
		return fmt.Errorf("missing command")
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "diff":
		return cmdDiff(args)
	case "qr":
		return cmdQR(args)
	case "barcode":
		return cmdBarcode(args)
	case "markdown":
		return cmdMarkdown(args)
	case "stats":
		return cmdStats(args)
	case "convert":
		return cmdConvert(args)
	case "escape":
		return cmdEscape(args)
	case "lorem":
		return cmdLorem(args)
	case "image":
		return cmdImage(args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: toolbox-cli <command> [flags] [args]

Commands:
  diff <old-file> <new-file>   aligned line diff
  qr <content>                 QR code PNG
  barcode <content>            barcode PNG
  markdown <file>              Markdown to HTML
  stats [file]                 text measurements (stdin when no file)
  convert [file]               JSON <-> YAML
  escape <text>                escape or unescape a string
  lorem                        placeholder text
  image <file>                 image filters

Run "toolbox-cli <command> -h" for command flags.
`)
}

// output writes text to stdout and optionally the system clipboard.
func output(text string, copyToClipboard bool) error {
	fmt.Println(text)
	if copyToClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stderr, "(copied to clipboard)")
	}
	return nil
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func cmdDiff(args []string) error {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	sideBySide := fs.Bool("side-by-side", false, "two-column output")
	stats := fs.Bool("stats", false, "print counts only")
	minimap := fs.Int("minimap", 0, "overview strip with this many cells")
	copyOut := fs.Bool("copy", false, "copy output to clipboard")
	fs.Parse(args)

	if fs.NArg() != 2 {
		return fmt.Errorf("diff needs exactly two files")
	}
	original, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}
	modified, err := readInput(fs.Arg(1))
	if err != nil {
		return err
	}

	lines := domain.Compute(original, modified)

	if *stats {
		s := domain.CountByKind(lines)
		return output(fmt.Sprintf("+%d -%d =%d", s.Added, s.Removed, s.Unchanged), *copyOut)
	}
	if *minimap > 0 {
		return output(renderMinimap(lines, *minimap), *copyOut)
	}
	if *sideBySide {
		return output(renderSideBySide(lines), *copyOut)
	}
	return output(domain.RenderAligned(lines), *copyOut)
}

// renderMinimap prints one character per cell: + added, - removed,
// ± both, . unchanged.
func renderMinimap(lines []domain.DiffLine, height int) string {
	var b strings.Builder
	for _, cell := range domain.Minimap(lines, height) {
		switch {
		case cell.HasAdded && cell.HasRemoved:
			b.WriteString("±")
		case cell.HasAdded:
			b.WriteByte('+')
		case cell.HasRemoved:
			b.WriteByte('-')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// renderSideBySide prints paired rows with a gutter marker per side.
func renderSideBySide(lines []domain.DiffLine) string {
	rows := domain.SideBySide(lines)
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(fmt.Sprintf("%-40s | %s", cell(row.Left), cell(row.Right)))
	}
	return b.String()
}

func cell(l *domain.DiffLine) string {
	if l == nil {
		return ""
	}
	marker := ' '
	switch l.Kind {
	case domain.Added:
		marker = '+'
	case domain.Removed:
		marker = '-'
	}
	return fmt.Sprintf("%c %s", marker, l.Content)
}

func cmdQR(args []string) error {
	fs := flag.NewFlagSet("qr", flag.ExitOnError)
	out := fs.String("o", "qr.png", "output file")
	size := fs.Int("size", 256, "image size in pixels")
	level := fs.String("level", "medium", "error recovery: low, medium, high, highest")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("qr needs the content argument")
	}
	png, err := qrgen.QR(fs.Arg(0), *size, qrgen.RecoveryLevel(*level))
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, png, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", *out)
	return nil
}

func cmdBarcode(args []string) error {
	fs := flag.NewFlagSet("barcode", flag.ExitOnError)
	out := fs.String("o", "barcode.png", "output file")
	format := fs.String("format", "code128", "barcode format: code128 or ean")
	width := fs.Int("width", 300, "image width")
	height := fs.Int("height", 80, "image height")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("barcode needs the content argument")
	}
	png, err := qrgen.Barcode(fs.Arg(0), qrgen.BarcodeFormat(*format), *width, *height)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, png, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", *out)
	return nil
}

func cmdMarkdown(args []string) error {
	fs := flag.NewFlagSet("markdown", flag.ExitOnError)
	copyOut := fs.Bool("copy", false, "copy output to clipboard")
	fs.Parse(args)

	source, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}
	html, err := textkit.RenderMarkdown(source)
	if err != nil {
		return err
	}
	return output(html, *copyOut)
}

func cmdStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Parse(args)

	text, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}
	s := textkit.Stats(text)
	fmt.Printf("bytes      %d\n", s.Bytes)
	fmt.Printf("runes      %d\n", s.Runes)
	fmt.Printf("graphemes  %d\n", s.Graphemes)
	fmt.Printf("words      %d\n", s.Words)
	fmt.Printf("lines      %d\n", s.Lines)
	fmt.Printf("width      %d\n", s.DisplayWidth)
	return nil
}

func cmdConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	to := fs.String("to", "yaml", "target format: yaml or json")
	copyOut := fs.Bool("copy", false, "copy output to clipboard")
	fs.Parse(args)

	input, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}

	var result string
	switch *to {
	case "yaml":
		result, err = textkit.JSONToYAML(input)
	case "json":
		result, err = textkit.YAMLToJSON(input)
	default:
		return fmt.Errorf("unknown target format %q", *to)
	}
	if err != nil {
		return err
	}
	return output(result, *copyOut)
}

func cmdEscape(args []string) error {
	fs := flag.NewFlagSet("escape", flag.ExitOnError)
	mode := fs.String("mode", "url", "url, html, json, url-decode or html-decode")
	copyOut := fs.Bool("copy", false, "copy output to clipboard")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("escape needs the text argument")
	}
	result, err := textkit.Escape(fs.Arg(0), textkit.EscapeMode(*mode))
	if err != nil {
		return err
	}
	return output(result, *copyOut)
}

func cmdLorem(args []string) error {
	fs := flag.NewFlagSet("lorem", flag.ExitOnError)
	n := fs.Int("n", 3, "number of paragraphs")
	seed := fs.Int64("seed", 1, "random seed; same seed gives same text")
	copyOut := fs.Bool("copy", false, "copy output to clipboard")
	fs.Parse(args)

	text, err := textkit.Lorem(*n, *seed)
	if err != nil {
		return err
	}
	return output(text, *copyOut)
}

func cmdImage(args []string) error {
	fs := flag.NewFlagSet("image", flag.ExitOnError)
	op := fs.String("op", "", "blur, dither, edges, palette or removebg")
	out := fs.String("o", "out.png", "output file")
	sigma := fs.Float64("sigma", 2, "blur radius")
	mode := fs.String("mode", "floyd-steinberg", "dither mode")
	threshold := fs.Float64("threshold", 128, "edge or background threshold")
	feather := fs.Float64("feather", 20, "background feather distance")
	k := fs.Int("k", 6, "palette size")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("image needs the input file argument")
	}
	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := imagefx.Decode(f, 0)
	if err != nil {
		return err
	}

	switch *op {
	case "blur":
		res, err := imagefx.GaussianBlur(img, *sigma)
		if err != nil {
			return err
		}
		return writePNG(*out, res)
	case "dither":
		res, err := imagefx.Dither(img, imagefx.DitherMode(*mode))
		if err != nil {
			return err
		}
		return writePNG(*out, res)
	case "edges":
		res, err := imagefx.SobelEdges(img, uint8(*threshold))
		if err != nil {
			return err
		}
		return writePNG(*out, res)
	case "removebg":
		res, err := imagefx.RemoveBackground(img, *threshold, *feather)
		if err != nil {
			return err
		}
		return writePNG(*out, res)
	case "palette":
		colors, err := imagefx.ExtractPalette(img, *k)
		if err != nil {
			return err
		}
		for _, c := range colors {
			fmt.Printf("#%02x%02x%02x\n", c.R, c.G, c.B)
		}
		return nil
	default:
		return fmt.Errorf("unknown image op %q", *op)
	}
}

func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := imagefx.EncodePNG(f, img); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
