package parser

import (
	"math"
	"math/big"

	"github.com/quadra-lang/quadra/internal/ast"
	"github.com/quadra-lang/quadra/internal/diagnostics"
	"github.com/quadra-lang/quadra/internal/token"
)

// Cursor helpers over the token stream. Each consumes one token and reports
// a diagnostic when the stream ends or the token is not what the grammar
// requires. Errors at end of input anchor on the last consumed span.

// bumpErr consumes the next token, reporting the given diagnostic if the
// stream is exhausted.
func (p *Parser) bumpErr(code diagnostics.ErrorCode, msg string) (token.Token, *diagnostics.DiagnosticError) {
	tok, ok := p.stream.Bump()
	if !ok {
		return token.Token{}, diagnostics.NewErrorAt(code, p.stream.LastSpan(), "%s", msg)
	}
	return tok, nil
}

// bumpExpected consumes the next token and requires it to be of the given
// kind.
func (p *Parser) bumpExpected(kind token.Kind) (token.Token, *diagnostics.DiagnosticError) {
	tok, ok := p.stream.Bump()
	if !ok {
		return token.Token{}, diagnostics.NewErrorAt(diagnostics.ErrP001, p.stream.LastSpan(),
			"expected `%s`, reached end of input", kind)
	}
	if tok.Kind != kind {
		return token.Token{}, diagnostics.NewError(diagnostics.ErrP001, tok,
			"expected `%s`, found `%s`", kind, tok.Lexeme)
	}
	return tok, nil
}

// bumpIdent consumes the next token and requires it to be an identifier,
// reporting the given diagnostic otherwise.
func (p *Parser) bumpIdent(code diagnostics.ErrorCode, msg string) (ast.Ident, *diagnostics.DiagnosticError) {
	tok, ok := p.stream.Bump()
	if !ok {
		return ast.Ident{}, diagnostics.NewErrorAt(code, p.stream.LastSpan(), "%s", msg)
	}
	if tok.Kind != token.IDENT {
		return ast.Ident{}, diagnostics.NewError(code, tok, "%s", msg)
	}
	return ast.NewIdent(tok.Lexeme, tok.Span), nil
}

// peekIs reports whether the next token has the given kind.
func (p *Parser) peekIs(kind token.Kind) bool {
	tok, ok := p.stream.Peek()
	return ok && tok.Kind == kind
}

// uint32Literal converts an INT token's value to uint32, for array sizes and
// loop bounds.
func uint32Literal(tok token.Token) (uint32, bool) {
	v, ok := tok.Literal.(*big.Int)
	if !ok {
		return 0, false
	}
	if !v.IsUint64() || v.Uint64() > math.MaxUint32 {
		return 0, false
	}
	return uint32(v.Uint64()), true
}
