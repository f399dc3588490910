// Package diagfmt renders a diag.Bag as human-readable text: a
// path:line:col header, the offending source line(s) with a caret
// underline beneath the diagnostic's span, and an optional hint line.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"wave/internal/diag"
	"wave/internal/source"
	"wave/internal/vfs"
)

var (
	errorHeader = color.New(color.FgRed, color.Bold)
	warnHeader  = color.New(color.FgMagenta, color.Bold)
	underline   = color.New(color.FgRed, color.Bold)
	hintStyle   = color.New(color.FgWhite, color.Underline)
	gutterStyle = color.New(color.FgCyan)
)

// Pretty writes every diagnostic in bag to w, in the order bag.Items()
// returns them (callers that want file/severity order call bag.Sort()
// first).
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	for _, d := range bag.Items() {
		renderOne(w, d, opts)
	}
}

func renderOne(w io.Writer, d diag.Diagnostic, opts PrettyOpts) {
	span := d.Location
	path, ok := vfs.FilePath(span.File)
	if !ok {
		path = fmt.Sprintf("<file %d>", span.File)
	}
	startLC, _ := vfs.Position(span.File, span.Start)
	endStart := span.End
	if endStart > span.Start {
		endStart-- // point the end column at the last covered byte, not one past it
	}
	endLC, _ := vfs.Position(span.File, endStart)

	sevWord, sevStyle := "error", errorHeader
	if d.Severity == diag.SevWarning {
		sevWord, sevStyle = "warning", warnHeader
	} else if d.Severity == diag.SevInfo {
		sevWord, sevStyle = "info", gutterStyle
	}

	header := fmt.Sprintf("%s:%d:%d: %s: %s", path, startLC.Line, startLC.Col, sevWord, d.Message)
	if opts.Color {
		fmt.Fprintln(w, sevStyle.Sprint(header))
	} else {
		fmt.Fprintln(w, header)
	}

	file, ok := vfs.File(span.File)
	if ok {
		renderSnippet(w, file, startLC, endLC, d.Label, opts)
	}

	if d.HasHint() {
		hint := "hint: " + d.Hint
		if opts.Color {
			fmt.Fprintln(w, hintStyle.Sprint(hint))
		} else {
			fmt.Fprintln(w, hint)
		}
	}
	fmt.Fprintln(w)
}

// renderSnippet prints one gutter-prefixed row per source line the span
// covers, each followed by a caret row underlining the columns that line
// contributes to the span. A first line is underlined from its start
// column to its own end; a last line from its own start to its end
// column; any line strictly between them is underlined in full.
func renderSnippet(w io.Writer, file source.File, start, end source.LineCol, label string, opts PrettyOpts) {
	gutterWidth := len(fmt.Sprintf("%d", end.Line))

	for line := start.Line; line <= end.Line; line++ {
		text := lineText(file, line)
		gutter := fmt.Sprintf("%*d | ", gutterWidth, line)
		if opts.Color {
			fmt.Fprintln(w, gutterStyle.Sprint(gutter)+text)
		} else {
			fmt.Fprintln(w, gutter+text)
		}

		lineLen := len([]rune(text))
		underlineStart, underlineEnd := 1, lineLen
		switch {
		case line == start.Line && line == end.Line:
			underlineStart, underlineEnd = int(start.Col), int(end.Col)
		case line == start.Line:
			underlineStart = int(start.Col)
		case line == end.Line:
			underlineEnd = int(end.Col)
		}
		if underlineEnd < underlineStart {
			underlineEnd = underlineStart
		}

		pad := strings.Repeat(" ", gutterWidth+3+underlineStart-1)
		carets := strings.Repeat("^", underlineEnd-underlineStart+1)
		caretLine := pad + carets
		if line == end.Line && label != "" {
			caretLine += " " + label
		}
		if opts.Color {
			fmt.Fprintln(w, underline.Sprint(caretLine))
		} else {
			fmt.Fprintln(w, caretLine)
		}
	}
}

// lineText returns the (1-based) line's text, without its trailing
// newline.
func lineText(file source.File, line uint32) string {
	start, end := lineOffsets(file, line)
	if start > end || int(end) > len(file.Content) {
		return ""
	}
	return string(file.Content[start:end])
}

// lineOffsets returns the [start, end) byte range of a 1-based line,
// excluding its trailing newline, from the file's line index.
func lineOffsets(file source.File, line uint32) (start, end uint32) {
	contentLen := uint32(len(file.Content))
	if line <= 1 {
		start = 0
	} else if idx := line - 2; int(idx) < len(file.LineIdx) {
		start = file.LineIdx[idx] + 1
	} else {
		start = contentLen
	}

	if idx := line - 1; int(idx) < len(file.LineIdx) {
		end = file.LineIdx[idx]
	} else {
		end = contentLen
	}
	return start, end
}
