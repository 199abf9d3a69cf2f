package parser

import (
	"github.com/quadra-lang/quadra/internal/ast"
	"github.com/quadra-lang/quadra/internal/diagnostics"
	"github.com/quadra-lang/quadra/internal/token"
)

// Statement grammar, dispatched on one token of lookahead:
//
//	statement ::= "let" [ "mut" ] ident "=" expr ";"
//	            | "for" ident "in" int ".." int "{" stmt* "}"
//	            | "return" expr ";"
//	            | comment
//	            | expr ";"
func (p *Parser) parseStmt() (*ast.Stmt, *diagnostics.DiagnosticError) {
	tok, ok := p.stream.Peek()
	if !ok {
		return nil, diagnostics.NewErrorAt(diagnostics.ErrP006, p.stream.LastSpan(),
			"expected a statement, reached end of input")
	}

	switch tok.Kind {
	case token.LET:
		return p.parseAssign()

	case token.FOR:
		return p.parseForLoop()

	case token.RETURN:
		p.stream.Bump()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.bumpExpected(token.SEMICOLON); err != nil {
			return nil, err
		}
		return &ast.Stmt{
			Kind:   ast.StmtReturn,
			Return: expr,
			Span:   tok.Span.Merge(expr.Span),
		}, nil

	case token.COMMENT:
		p.stream.Bump()
		return &ast.Stmt{
			Kind:    ast.StmtComment,
			Comment: tok.Literal.(string),
			Span:    tok.Span,
		}, nil

	case token.IF:
		// `if` only exists as an expression; there is no statement form
		return nil, diagnostics.NewError(diagnostics.ErrP010, tok,
			"`if` is not a statement, use an if expression instead (e.g. `x = if cond { 1 } else { 2 };`)")

	default:
		// a bare expression statement, expected to be a function call
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.bumpExpected(token.SEMICOLON); err != nil {
			return nil, err
		}
		return &ast.Stmt{
			Kind: ast.StmtExpr,
			Expr: expr,
			Span: expr.Span,
		}, nil
	}
}

func (p *Parser) parseAssign() (*ast.Stmt, *diagnostics.DiagnosticError) {
	letTok, _ := p.stream.Bump()

	mutable := false
	if p.peekIs(token.MUT) {
		p.stream.Bump()
		mutable = true
	}

	lhs, err := p.bumpIdent(diagnostics.ErrP002, "expected a variable name")
	if err != nil {
		return nil, err
	}

	if _, err := p.bumpExpected(token.ASSIGN); err != nil {
		return nil, err
	}

	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.bumpExpected(token.SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.Stmt{
		Kind:   ast.StmtAssign,
		Assign: &ast.Assign{Mutable: mutable, Lhs: lhs, Rhs: rhs},
		Span:   letTok.Span.Merge(rhs.Span),
	}, nil
}

// parseForLoop parses `for i in 0..5 { ... }`. Both bounds must be integer
// literals: the loop is unrolled a fixed number of times at compile time,
// so a runtime bound cannot be honored.
func (p *Parser) parseForLoop() (*ast.Stmt, *diagnostics.DiagnosticError) {
	forTok, _ := p.stream.Bump()

	loopVar, err := p.bumpIdent(diagnostics.ErrP002, "expected a loop variable")
	if err != nil {
		return nil, err
	}

	if _, err := p.bumpExpected(token.IN); err != nil {
		return nil, err
	}

	start, startSpan, err := p.parseRangeBound()
	if err != nil {
		return nil, err
	}

	if _, err := p.bumpExpected(token.DOUBLEDOT); err != nil {
		return nil, err
	}

	end, endSpan, err := p.parseRangeBound()
	if err != nil {
		return nil, err
	}

	loopRange := ast.Range{
		Start: start,
		End:   end,
		Span:  startSpan.Merge(endSpan),
	}

	if _, err := p.bumpExpected(token.LBRACE); err != nil {
		return nil, err
	}

	var body []ast.Stmt
	for {
		if p.peekIs(token.RBRACE) {
			p.stream.Bump()
			break
		}

		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		body = append(body, *stmt)
	}

	return &ast.Stmt{
		Kind:    ast.StmtForLoop,
		ForLoop: &ast.ForLoop{Var: loopVar, Range: loopRange, Body: body},
		Span:    forTok.Span.Merge(p.stream.LastSpan()),
	}, nil
}

func (p *Parser) parseRangeBound() (uint32, token.Span, *diagnostics.DiagnosticError) {
	tok, err := p.bumpErr(diagnostics.ErrP007, "expected an integer literal as the loop bound")
	if err != nil {
		return 0, token.Span{}, err
	}
	if tok.Kind != token.INT {
		return 0, token.Span{}, diagnostics.NewError(diagnostics.ErrP007, tok,
			"expected an integer literal as the loop bound, found `%s`", tok.Lexeme)
	}
	bound, ok := uint32Literal(tok)
	if !ok {
		return 0, token.Span{}, diagnostics.NewError(diagnostics.ErrP007, tok,
			"loop bound `%s` does not fit in 32 bits", tok.Lexeme)
	}
	return bound, tok.Span, nil
}
