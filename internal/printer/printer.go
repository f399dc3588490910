// Package printer renders a parsed Tree back to source-like text: an
// S-expression per top-level declaration, in the form the original
// compiler's printer.c produced. It is a read-only consumer of the
// tree — an example of walking Kind/Token/Data the way a real tool
// (a formatter, a golden test, a REPL echo) would.
package printer

import (
	"fmt"
	"io"
	"strings"

	"wave/internal/ast"
)

// Printer walks a Tree and writes its declarations' S-expression form.
type Printer struct {
	w    io.Writer
	tree *ast.Tree
}

// New returns a Printer that writes tree's declarations to w.
func New(w io.Writer, tree *ast.Tree) *Printer {
	return &Printer{w: w, tree: tree}
}

// Print writes every top-level declaration in tree to w, in the S-expression
// form print_ast produced: one "(def name expr)\n" per CONST declaration,
// in declaration order.
func Print(w io.Writer, tree *ast.Tree) {
	New(w, tree).Print()
}

// String renders tree the same way Print does and returns the result,
// for callers (mainly tests) that want the bare text rather than a
// writer.
func String(tree *ast.Tree) string {
	var b strings.Builder
	Print(&b, tree)
	return b.String()
}

// Print writes p's tree's declarations to its writer.
func (p *Printer) Print() {
	for _, decl := range p.tree.Decls {
		io.WriteString(p.w, p.printDecl(decl))
	}
}

// printDecl renders a single top-level declaration. Only CONST has a
// printed form today, matching the original's print_decl switch — VAR and
// the other declaration containers fall through to the empty string, same
// as the original's default case.
func (p *Printer) printDecl(idx ast.Index) string {
	switch p.tree.KindOf(idx) {
	case ast.CONST:
		name := p.tree.TokenText(idx)
		_, expr := p.tree.DataOf(idx).Variable()
		return fmt.Sprintf("(def %s %s)\n", name, p.printExpr(expr))
	default:
		return ""
	}
}

// printExpr renders idx's S-expression form. IDENTIFIER and INT_LIT print
// their own source text; every binary-operator kind prints as
// "(op lhs rhs)"; anything else (unary expressions, calls, aggregates,
// types) is outside the original printer's switch and renders as "".
func (p *Printer) printExpr(idx ast.Index) string {
	if !idx.IsValid() {
		return ""
	}

	switch p.tree.KindOf(idx) {
	case ast.IDENTIFIER, ast.INT_LIT:
		return p.tree.TokenText(idx)
	default:
		if op, ok := binaryOp(p.tree.KindOf(idx)); ok {
			lhs, rhs := p.tree.DataOf(idx).Binary()
			return fmt.Sprintf("(%s %s %s)", op, p.printExpr(lhs), p.printExpr(rhs))
		}
		return ""
	}
}

// binaryOp maps a binary-expression Kind to the operator spelling the
// original printer.c's BINARY() macro table used, covering the full
// expression grammar rather than just arithmetic.
func binaryOp(k ast.Kind) (string, bool) {
	switch k {
	case ast.PIPE_EXPR:
		return "|>", true
	case ast.OR_EXPR:
		return "or", true
	case ast.LOGICAL_OR_EXPR:
		return "||", true
	case ast.LOGICAL_AND_EXPR:
		return "&&", true
	case ast.EQ_EXPR:
		return "==", true
	case ast.NE_EXPR:
		return "!=", true
	case ast.LT_EXPR:
		return "<", true
	case ast.GT_EXPR:
		return ">", true
	case ast.LE_EXPR:
		return "<=", true
	case ast.GE_EXPR:
		return ">=", true
	case ast.ADD_EXPR:
		return "+", true
	case ast.SUB_EXPR:
		return "-", true
	case ast.BIT_XOR_EXPR:
		return "^", true
	case ast.BIT_OR_EXPR:
		return "|", true
	case ast.MUL_EXPR:
		return "*", true
	case ast.DIV_EXPR:
		return "/", true
	case ast.MOD_EXPR:
		return "%", true
	case ast.BIT_AND_EXPR:
		return "&", true
	case ast.SHL_EXPR:
		return "<<", true
	case ast.SHR_EXPR:
		return ">>", true
	case ast.AS_EXPR:
		return "as", true
	default:
		return "", false
	}
}
