package lexer

import (
	"testing"

	"wave/internal/diag"
	"wave/internal/token"
)

func lexKinds(t *testing.T, src string) []token.Kind {
	t.Helper()
	ls := Lex(1, []byte(src), nil)
	return ls.Kind
}

func TestLexEmptySourceIsJustEOF(t *testing.T) {
	ls := Lex(1, []byte(""), nil)
	if ls.NumTokens() != 1 || ls.Kind[0] != token.EOF || ls.Start[0] != 0 {
		t.Fatalf("expected a single EOF token at offset 0, got %+v", ls)
	}
}

func TestLexAlwaysEndsWithEOFAtSourceLength(t *testing.T) {
	src := "main :: () {\n}"
	ls := Lex(1, []byte(src), nil)
	last := ls.NumTokens() - 1
	if ls.Kind[last] != token.EOF {
		t.Fatalf("expected last token to be EOF, got %v", ls.Kind[last])
	}
	if ls.Start[last] != uint32(len(src)) {
		t.Fatalf("expected EOF start == len(src) (%d), got %d", len(src), ls.Start[last])
	}
	for i := 1; i < ls.NumTokens(); i++ {
		if ls.Start[i-1] > ls.Start[i] {
			t.Fatalf("start offsets not monotonic at %d: %d > %d", i, ls.Start[i-1], ls.Start[i])
		}
	}
}

func TestLexUnknownByteProducesBad(t *testing.T) {
	kinds := lexKinds(t, "$")
	if len(kinds) != 2 || kinds[0] != token.BAD || kinds[1] != token.EOF {
		t.Fatalf("expected [BAD EOF], got %v", kinds)
	}
}

func TestLexKeywordsVsIdentifiers(t *testing.T) {
	kinds := lexKinds(t, "struct hello enum")
	want := []token.Kind{token.STRUCT, token.IDENTIFIER, token.ENUM, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("at %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestLexLongestMatchOperators(t *testing.T) {
	kinds := lexKinds(t, ">>= >> > :: := : |> || |")
	want := []token.Kind{
		token.GT_GT_EQ, token.GT_GT, token.GT,
		token.COLON_COLON, token.COLON_EQ, token.COLON,
		token.PIPE_GT, token.PIPE_PIPE, token.PIPE,
		token.EOF,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("at %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestLexHexFloatValid(t *testing.T) {
	bag := diag.NewBag(0)
	ls := Lex(1, []byte("0x1.2p2"), bag)
	if ls.Kind[0] != token.FLOAT {
		t.Fatalf("expected FLOAT, got %v", ls.Kind[0])
	}
	if bag.HasErrors() {
		t.Fatalf("expected no diagnostics, got %v", bag.Items())
	}
}

func TestLexMalformedHexFloatStillProducesToken(t *testing.T) {
	for _, src := range []string{"0x12.p2", "0b1.0"} {
		bag := diag.NewBag(0)
		ls := Lex(1, []byte(src), bag)
		if ls.Kind[0] != token.FLOAT {
			t.Fatalf("%q: expected FLOAT, got %v", src, ls.Kind[0])
		}
		if !bag.HasErrors() {
			t.Fatalf("%q: expected a diagnostic to be recorded", src)
		}
	}
}

func TestLexUnterminatedCharRecovers(t *testing.T) {
	bag := diag.NewBag(0)
	kinds := lexKinds(t, "'c")
	if len(kinds) != 2 || kinds[0] != token.CHAR || kinds[1] != token.EOF {
		t.Fatalf("expected [CHAR EOF], got %v", kinds)
	}
	ls := Lex(1, []byte("'c\nrest"), bag)
	if !bag.HasErrors() {
		t.Fatalf("expected an unterminated-char diagnostic")
	}
	if len(ls.Kind) < 4 || ls.Kind[1] != token.NEWLINE || ls.Kind[2] != token.IDENTIFIER {
		t.Fatalf("expected lexing to resume at the newline, got %v", ls.Kind)
	}
}

func TestLexNewlineIsASingleToken(t *testing.T) {
	kinds := lexKinds(t, "a\r\nb\nc")
	want := []token.Kind{token.IDENTIFIER, token.NEWLINE, token.IDENTIFIER, token.NEWLINE, token.IDENTIFIER, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("at %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestLexCommentVariants(t *testing.T) {
	kinds := lexKinds(t, "// line\n/// doc\n/* multi\nline */")
	want := []token.Kind{token.COMMENT, token.NEWLINE, token.DOC_COMMENT, token.NEWLINE, token.MULTILINE_COMMENT, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("at %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}
