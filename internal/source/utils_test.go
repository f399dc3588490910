package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}
	if err := os.MkdirAll(otherDir, 0o755); err != nil {
		t.Fatalf("failed to create other dir: %v", err)
	}

	target := filepath.Join(otherDir, "file.sg")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := NormalizePath(target)
	if got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}

	target := filepath.Join(baseDir, "nested", "file.sg")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := NormalizePath(filepath.Join("nested", "file.sg"))
	if got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}

func TestToLineColAdvancesPastEachNewline(t *testing.T) {
	content := []byte("foo :: struct {\n  bar: int,\n  baz: int\n}")
	lineIdx := BuildLineIndex(content)

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{14, LineCol{Line: 1, Col: 15}}, // the '{' closing line 1
		{16, LineCol{Line: 2, Col: 1}},  // first char of line 2, right after its '\n'
		{18, LineCol{Line: 2, Col: 3}},  // 'b' of "bar"
		{28, LineCol{Line: 3, Col: 1}},  // first char of line 3
		{39, LineCol{Line: 4, Col: 1}},  // the closing '}'
	}
	for _, c := range cases {
		got := ToLineCol(lineIdx, c.off)
		if got != c.want {
			t.Errorf("ToLineCol(%d) = %+v, want %+v", c.off, got, c.want)
		}
	}
}
