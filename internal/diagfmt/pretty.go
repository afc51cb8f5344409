package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"bridgec/internal/diag"
	"bridgec/internal/source"
)

type palette struct {
	err, warn, info, note, path, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan, color.Bold),
		note:   mk(color.FgBlue, color.Bold),
		path:   mk(color.Bold),
		gutter: mk(color.FgBlue),
		caret:  mk(color.FgRed, color.Bold),
	}
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Range, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, &d, fs, opts, p)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	sev := p.severity(d.Severity)
	if loc := location(d.Primary, fs, opts.PathMode); loc != "" {
		p.path.Fprintf(w, "%s: ", loc)
	}
	sev.Fprintf(w, "%s %s", d.Severity.String(), d.Code.ID())
	fmt.Fprintf(w, ": %s\n", d.Message)
	snippet(w, d.Primary, fs, opts, p)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		p.note.Fprint(w, "  note")
		if loc := location(n.Range, fs, opts.PathMode); loc != "" {
			fmt.Fprintf(w, " (%s)", loc)
		}
		fmt.Fprintf(w, ": %s\n", n.Msg)
		if !n.Range.IsZero() && n.Range != d.Primary {
			snippet(w, n.Range, fs, opts, p)
		}
	}
}

func location(rng source.CodeRange, fs *source.FileSet, mode PathMode) string {
	if rng.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s:%d:%d", displayPath(rng.File, fs, mode), rng.Line, rng.StartCol)
}

// snippet печатает строку rng с контекстом и подчёркивание под диапазоном.
func snippet(w io.Writer, rng source.CodeRange, fs *source.FileSet, opts PrettyOpts, p palette) {
	if fs == nil || rng.IsZero() || rng.Line <= 0 {
		return
	}
	f, ok := fs.GetByPath(rng.File)
	if !ok {
		return
	}
	ctx := max(int(opts.Context), 0)
	first := max(rng.Line-ctx, 1)
	last := rng.Line + ctx
	gw := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		text := f.GetLine(uint32(ln)) //nolint:gosec // ln >= 1
		if ln > rng.Line && text == "" {
			break
		}
		text = strings.ReplaceAll(text, "\t", "    ")
		if opts.Width > 0 {
			text = runewidth.Truncate(text, int(opts.Width), "…")
		}
		p.gutter.Fprintf(w, "%*d | ", gw, ln)
		fmt.Fprintln(w, text)
		if ln == rng.Line {
			p.gutter.Fprintf(w, "%s | ", strings.Repeat(" ", gw))
			p.caret.Fprintln(w, underline(f.GetLine(uint32(ln)), rng)) //nolint:gosec // ln >= 1
		}
	}
}

// underline строит строку вида "    ^~~~" с учётом ширины символов.
func underline(line string, rng source.CodeRange) string {
	runes := []rune(line)
	startCol := max(rng.StartCol, 1)
	endCol := max(rng.EndCol, startCol+1)

	pad := 0
	for i := 0; i < startCol-1 && i < len(runes); i++ {
		pad += cellWidth(runes[i])
	}
	width := 0
	for i := startCol - 1; i < endCol-1 && i < len(runes); i++ {
		width += cellWidth(runes[i])
	}
	if width == 0 {
		width = 1
	}
	return strings.Repeat(" ", pad) + "^" + strings.Repeat("~", width-1)
}

func cellWidth(r rune) int {
	if r == '\t' {
		return 4
	}
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}
