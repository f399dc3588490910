package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"wave/internal/diag"
	"wave/internal/source"
	"wave/internal/vfs"
)

func TestPrettyRendersHeaderAndCaret(t *testing.T) {
	src := "main :: () {\n  +\n}"
	file := vfs.AddVirtualFile("snippet.wv", []byte(src))

	span := source.Span{File: file, Start: 15, End: 16} // the '+' on line 2
	bag := diag.NewBag(0)
	bag.Add(diag.Error(span, "unexpected token", "here", "did you mean a unary '+'?"))

	var buf bytes.Buffer
	Pretty(&buf, bag, PrettyOpts{Color: false})
	out := buf.String()

	if !strings.Contains(out, "snippet.wv:2:3: error: unexpected token") {
		t.Fatalf("missing expected header, got:\n%s", out)
	}
	if !strings.Contains(out, "  +") {
		t.Fatalf("missing source line, got:\n%s", out)
	}
	if !strings.Contains(out, "^ here") {
		t.Fatalf("missing caret+label line, got:\n%s", out)
	}
	if !strings.Contains(out, "hint: did you mean a unary '+'?") {
		t.Fatalf("missing hint line, got:\n%s", out)
	}
}

func TestPrettyMultiLineSpanUnderlinesEveryLine(t *testing.T) {
	src := "foo :: struct {\n  bar: int,\n  baz: int\n}"
	file := vfs.AddVirtualFile("multi.wv", []byte(src))

	// Cover from 'bar' through the end of 'baz: int'.
	span := source.Span{File: file, Start: 18, End: 38}
	bag := diag.NewBag(0)
	bag.Add(diag.Warn(span, "duplicate-looking fields", "spans both lines"))

	var buf bytes.Buffer
	Pretty(&buf, bag, PrettyOpts{Color: false})
	out := buf.String()
	lines := strings.Split(out, "\n")

	caretLines := 0
	for _, l := range lines {
		if strings.Contains(l, "^") {
			caretLines++
		}
	}
	if caretLines != 2 {
		t.Fatalf("expected exactly two caret lines for a two-line span, got %d in:\n%s", caretLines, out)
	}
}

func TestPrettyUnknownFileStillPrintsHeader(t *testing.T) {
	span := source.Span{File: source.FileID(999999), Start: 0, End: 1}
	bag := diag.NewBag(0)
	bag.Add(diag.Error(span, "orphan diagnostic", "here"))

	var buf bytes.Buffer
	Pretty(&buf, bag, PrettyOpts{Color: false})
	if !strings.Contains(buf.String(), "error: orphan diagnostic") {
		t.Fatalf("expected the header to render even without a resolvable file, got:\n%s", buf.String())
	}
}
