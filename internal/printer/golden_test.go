package printer

import (
	"testing"

	"wave/internal/parser"
	"wave/internal/source"
)

// goldenCase pairs a source snippet with the exact S-expression text it
// must render to, adapted from the teacher's table-driven golden-file
// comparison in internal/diag/golden_test.go.
type goldenCase struct {
	name string
	src  string
	want string
}

func TestPrinterGoldenDeclarations(t *testing.T) {
	cases := []goldenCase{
		{
			name: "arithmetic precedence",
			src:  "hello :: 2 * 1 - 2 * 3",
			want: "(def hello (- (* 2 1) (* 2 3)))\n",
		},
		{
			name: "bare identifier initialiser",
			src:  "alias :: other",
			want: "(def alias other)\n",
		},
		{
			name: "comparison and logical operators",
			src:  "flag :: a < b && c >= d",
			want: "(def flag (&& (< a b) (>= c d)))\n",
		},
		{
			name: "bitwise and shift operators",
			src:  "mask :: a << 1 | b >> 2 & c ^ d",
			want: "(def mask (^ (| (<< a 1) (& (>> b 2) c)) d))\n",
		},
		{
			name: "pipe and as operators",
			src:  "piped :: a |> b as c",
			want: "(def piped (|> a (as b c)))\n",
		},
		{
			name: "multiple declarations in order",
			src:  "first :: 1\nsecond :: 2",
			want: "(def first 1)\n(def second 2)\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tree, bag := parser.Parse(source.FileID(1), []byte(tc.src))
			if bag.HasErrors() {
				t.Fatalf("unexpected parse errors for %q: %v", tc.src, bag.Items())
			}
			got := String(&tree)
			if got != tc.want {
				t.Fatalf("printer golden mismatch for %q:\nwant: %q\ngot:  %q", tc.src, tc.want, got)
			}
		})
	}
}
