package parser

import (
	"wave/internal/ast"
	"wave/internal/token"
)

// parseParenOrFunc resolves the "(" ambiguity between a parenthesised
// expression and a function literal. Disambiguation happens on a single
// token of lookahead past the "(": an immediate ")" (zero parameters) or an
// IDENTIFIER followed by ":" (a named, typed parameter) can only start a
// parameter list, since bare expressions never contain a top-level colon.
// Anything else can only be a parenthesised expression. When the lookahead
// picks a function but its parameter list then fails to parse, parseFunc
// discards the nodes it reserved or appended, moves the cursor back to the
// "(" and parses a parenthesised expression instead.
func (p *Parser) parseParenOrFunc() (ast.Index, bool) {
	if p.looksLikeParamList() {
		return p.parseFunc()
	}
	return p.parseParenExpr()
}

// looksLikeParamList is called with the cursor on the opening "(".
func (p *Parser) looksLikeParamList() bool {
	next := p.peekAt(1)
	if next == token.RPAREN {
		return true
	}
	return next == token.IDENTIFIER && p.peekAt(2) == token.COLON
}

func (p *Parser) parseParenExpr() (ast.Index, bool) {
	_, _, anchor := p.advance() // LPAREN
	inner, ok := p.parseExpr()
	if !ok {
		return ast.Invalid, false
	}
	p.expect(token.RPAREN, "a closing ')'")
	return p.b.AddNode(ast.PAREN_EXPR, anchor, ast.UnaryData(inner)), true
}

// parseFunc parses a function literal: a parameter list, an optional
// "-> type", an optional calling-convention string, and a body that is
// either "=> expr" or a block. If the parameter list fails to parse, the
// text from the "(" is parsed again as a parenthesised expression.
func (p *Parser) parseFunc() (ast.Index, bool) {
	mark := p.b.NodeMark()
	lparenPos := p.pos
	protoIdx := p.b.ReserveNode()
	funcIdx := p.b.ReserveNode()

	lparenAnchor, _ := p.expect(token.LPAREN, "a '('")
	paramsStart, paramsEnd, ok := p.parseParamList()
	if !ok {
		// parseParamList may have parsed and appended real child nodes
		// (a parameter's type, its default expression) before failing on
		// a later parameter, so protoIdx/funcIdx are no longer
		// necessarily the array's tail; a mark-based truncation discards
		// everything reserved or appended since, not just the two
		// placeholders.
		p.b.TruncateNodes(mark)
		p.pos = lparenPos
		return p.parseParenExpr()
	}
	p.expect(token.RPAREN, "a closing ')' for the parameter list")

	returnType := ast.Invalid
	if p.at(token.ARROW) {
		p.advance()
		if rt, ok := p.parseType(); ok {
			returnType = rt
		}
	}

	cc := ast.Invalid
	if p.at(token.STRING) {
		_, _, ccAnchor := p.advance()
		cc = p.b.AddNode(ast.STRING_LIT, ccAnchor, ast.Data{})
	}

	var body ast.Index
	switch {
	case p.at(token.FAT_ARROW):
		p.advance()
		body, _ = p.parseExpr()
	case p.at(token.LBRACE):
		body, _ = p.parseBlock()
	default:
		p.errorf("expected '=>' or '{' to begin the function body, found %s", p.peekKind().String())
	}

	protoKind, extraOff := p.assembleProto(paramsStart, paramsEnd, cc)
	p.b.SetNode(protoIdx, protoKind, lparenAnchor, ast.FuncProtoData(extraOff, returnType))
	p.b.SetNode(funcIdx, ast.FUNC, lparenAnchor, ast.FuncData(protoIdx, body))
	return funcIdx, true
}

// parseParamList parses a comma-separated parameter list up to (but not
// consuming) the closing ")". Each parameter is "name : [...] type [=
// default]"; "..." between the colon and the type marks a vararg, which
// must be the last parameter (a later parameter after one is diagnosed but
// still accepted, matching the draft's documented-but-unenforced check).
func (p *Parser) parseParamList() (start, end ast.Index, ok bool) {
	mark := p.b.ScratchMark()
	varparamSeen := false

	for !p.at(token.RPAREN) && !p.at(token.EOF) {
		nameAnchor, ok := p.expect(token.IDENTIFIER, "a parameter name")
		if !ok {
			p.b.RestoreScratch(mark)
			return ast.Invalid, ast.Invalid, false
		}
		if _, ok := p.expect(token.COLON, "':' after a parameter name"); !ok {
			p.b.RestoreScratch(mark)
			return ast.Invalid, ast.Invalid, false
		}

		kind := ast.PARAM
		if p.at(token.ELLIPSIS) {
			p.advance()
			kind = ast.VARPARAM
			if varparamSeen {
				p.errorf("a vararg parameter must be the last parameter")
			}
			varparamSeen = true
		} else if varparamSeen {
			p.errorf("parameter follows a vararg parameter")
		}

		typ, ok := p.parseType()
		if !ok {
			p.b.RestoreScratch(mark)
			return ast.Invalid, ast.Invalid, false
		}

		def := ast.Invalid
		if p.at(token.EQ) {
			p.advance()
			d, ok := p.parseExpr()
			if !ok {
				p.b.RestoreScratch(mark)
				return ast.Invalid, ast.Invalid, false
			}
			def = d
		}

		p.b.PushScratch(ast.Node{Kind: kind, Token: nameAnchor, Data: ast.ParamData(typ, def)})

		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}

	s, e := p.b.MaterializeRange(mark)
	return s, e, true
}

// assembleProto writes the extra-buffer record for a function prototype and
// picks the node kind matching its parameter count, per the spec's
// zero/one/many encoding.
func (p *Parser) assembleProto(paramsStart, paramsEnd, cc ast.Index) (ast.Kind, uint32) {
	switch {
	case paramsStart == ast.Invalid:
		off := p.b.WriteFuncProtoOne(ast.FuncProtoOne{Param: ast.Invalid, CallingConvention: cc})
		return ast.FUNC_PROTO_ONE, off
	case paramsStart == paramsEnd:
		off := p.b.WriteFuncProtoOne(ast.FuncProtoOne{Param: paramsStart, CallingConvention: cc})
		return ast.FUNC_PROTO_ONE, off
	default:
		off := p.b.WriteFuncProto(ast.FuncProto{ParamsStart: paramsStart, ParamsEnd: paramsEnd, CallingConvention: cc})
		return ast.FUNC_PROTO, off
	}
}
