package parser

import (
	"wave/internal/ast"
	"wave/internal/token"
)

// Precedence levels, low to high, mirroring the fixed climbing ladder:
// PIPE < OR < LOGICAL_OR < LOGICAL_AND < COMPARISON < TERM < FACTOR < AS.
// UNARY, CALL and PRIMARY live below parseExprPrec, in parseUnary/parseCall/
// parsePrimary.
const (
	precPipe = iota + 1
	precOr
	precLogicalOr
	precLogicalAnd
	precComparison
	precTerm
	precFactor
	precAs
)

// parseExpr parses a full expression at the lowest precedence.
func (p *Parser) parseExpr() (ast.Index, bool) {
	return p.parseExprPrec(precPipe)
}

// parseExprPrec implements the Pratt/precedence-climbing loop: parse a
// unary-or-tighter left operand, then repeatedly consume binary operators
// whose precedence is at least minPrec, parsing each right operand one
// level tighter (minPrec+1) to keep every operator left-associative.
func (p *Parser) parseExprPrec(minPrec int) (ast.Index, bool) {
	lhs, ok := p.parseUnary()
	if !ok {
		return ast.Invalid, false
	}

	for {
		if p.peekKind() == token.AS && precAs >= minPrec {
			_, _, anchor := p.advance()
			typ, ok := p.parseType()
			if !ok {
				return ast.Invalid, false
			}
			lhs = p.b.AddNode(ast.AS_EXPR, anchor, ast.BinaryData(lhs, typ))
			continue
		}

		kind, prec, isOp := binOpInfo(p.peekKind())
		if !isOp || prec < minPrec {
			return lhs, true
		}
		_, _, anchor := p.advance()
		rhs, ok := p.parseExprPrec(prec + 1)
		if !ok {
			return ast.Invalid, false
		}
		lhs = p.b.AddNode(kind, anchor, ast.BinaryData(lhs, rhs))
	}
}

// binOpInfo maps a binary operator token to its NodeKind and precedence
// level. AS is handled separately in parseExprPrec since its right operand
// is a type, not an expression.
func binOpInfo(k token.Kind) (ast.Kind, int, bool) {
	switch k {
	case token.PIPE_GT:
		return ast.PIPE_EXPR, precPipe, true
	case token.OR:
		return ast.OR_EXPR, precOr, true
	case token.PIPE_PIPE:
		return ast.LOGICAL_OR_EXPR, precLogicalOr, true
	case token.AND_AND:
		return ast.LOGICAL_AND_EXPR, precLogicalAnd, true
	case token.EQ_EQ:
		return ast.EQ_EXPR, precComparison, true
	case token.EXCLAMATION_EQ:
		return ast.NE_EXPR, precComparison, true
	case token.LT:
		return ast.LT_EXPR, precComparison, true
	case token.GT:
		return ast.GT_EXPR, precComparison, true
	case token.LT_EQ:
		return ast.LE_EXPR, precComparison, true
	case token.GT_EQ:
		return ast.GE_EXPR, precComparison, true
	case token.PLUS:
		return ast.ADD_EXPR, precTerm, true
	case token.MINUS:
		return ast.SUB_EXPR, precTerm, true
	case token.PIPE:
		return ast.BIT_OR_EXPR, precTerm, true
	case token.CARET:
		return ast.BIT_XOR_EXPR, precTerm, true
	case token.STAR:
		return ast.MUL_EXPR, precFactor, true
	case token.SLASH:
		return ast.DIV_EXPR, precFactor, true
	case token.PERCENT:
		return ast.MOD_EXPR, precFactor, true
	case token.AND:
		return ast.BIT_AND_EXPR, precFactor, true
	case token.LT_LT:
		return ast.SHL_EXPR, precFactor, true
	case token.GT_GT:
		return ast.SHR_EXPR, precFactor, true
	default:
		return 0, 0, false
	}
}

// parseUnary recognises the prefix-operator table and recurses so chains of
// unary operators (e.g. "!!x", "--x") compose correctly; once no operator
// matches it falls through to postfix/call-level parsing.
func (p *Parser) parseUnary() (ast.Index, bool) {
	kind, isUnary := unaryOpKind(p.peekKind())
	if !isUnary {
		return p.parseCall()
	}

	_, _, anchor := p.advance()
	if kind == ast.REF && p.at(token.MUT) {
		p.advance()
		kind = ast.MUT_REF
	}

	expr, ok := p.parseUnary()
	if !ok {
		return ast.Invalid, false
	}
	return p.b.AddNode(kind, anchor, ast.UnaryData(expr)), true
}

func unaryOpKind(k token.Kind) (ast.Kind, bool) {
	switch k {
	case token.PLUS:
		return ast.UNARY_PLUS, true
	case token.MINUS:
		return ast.UNARY_MINUS, true
	case token.STAR:
		return ast.DEREF, true
	case token.EXCLAMATION:
		return ast.UNARY_NOT, true
	case token.TILDE:
		return ast.BITNOT, true
	case token.AND:
		return ast.REF, true
	default:
		return 0, false
	}
}

// parseCall parses a primary expression followed by any chain of postfix
// field accesses (".name") and calls ("(args)").
func (p *Parser) parseCall() (ast.Index, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return ast.Invalid, false
	}

	for {
		switch p.peekKind() {
		case token.DOT:
			p.advance()
			nameAnchor, ok := p.expect(token.IDENTIFIER, "a field name after '.'")
			if !ok {
				return ast.Invalid, false
			}
			expr = p.b.AddNode(ast.FIELD_EXPR, nameAnchor, ast.UnaryData(expr))

		case token.LPAREN:
			_, _, anchor := p.advance()
			args := ast.Invalid
			if !p.at(token.RPAREN) {
				var first, last ast.Index
				for {
					arg, ok := p.parseExpr()
					if !ok {
						return ast.Invalid, false
					}
					if first == ast.Invalid {
						first = arg
					}
					last = arg
					if p.at(token.COMMA) {
						p.advance()
						continue
					}
					break
				}
				args = p.b.AddNode(ast.RANGE, anchor, ast.RangeData(first, last))
			}
			p.expect(token.RPAREN, "a closing ')' for the call arguments")
			expr = p.b.AddNode(ast.CALL_EXPR, anchor, ast.BinaryData(expr, args))

		default:
			return expr, true
		}
	}
}

// parsePrimary parses the innermost expression forms: literals, names,
// parenthesised/function forms, and aggregate literals.
func (p *Parser) parsePrimary() (ast.Index, bool) {
	switch p.peekKind() {
	case token.IDENTIFIER:
		_, _, anchor := p.advance()
		return p.b.AddNode(ast.IDENTIFIER, anchor, ast.Data{}), true
	case token.INT:
		_, _, anchor := p.advance()
		return p.b.AddNode(ast.INT_LIT, anchor, ast.Data{}), true
	case token.FLOAT:
		_, _, anchor := p.advance()
		return p.b.AddNode(ast.FLOAT_LIT, anchor, ast.Data{}), true
	case token.CHAR:
		_, _, anchor := p.advance()
		return p.b.AddNode(ast.CHAR_LIT, anchor, ast.Data{}), true
	case token.STRING, token.MULTILINE_STRING:
		_, _, anchor := p.advance()
		return p.b.AddNode(ast.STRING_LIT, anchor, ast.Data{}), true
	case token.LPAREN:
		return p.parseParenOrFunc()
	case token.STRUCT:
		return p.parseStruct()
	case token.ENUM:
		return p.parseEnum()
	case token.RBRACKET:
		// Early-exit used by parseType's array-type rule when this
		// expression is actually the inner type, not a length.
		return ast.Invalid, false
	default:
		p.errorf("expected an expression, found %s", p.peekKind().String())
		return ast.Invalid, false
	}
}
