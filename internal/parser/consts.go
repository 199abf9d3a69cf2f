package parser

import (
	"github.com/quadra-lang/quadra/internal/ast"
	"github.com/quadra-lang/quadra/internal/config"
	"github.com/quadra-lang/quadra/internal/diagnostics"
	"github.com/quadra-lang/quadra/internal/token"
)

// parseConst parses a constant declaration, the `const` keyword already
// consumed:
//
//	const player_count = 4;
//
// The right-hand side must be an integer literal that fits the field; any
// other expression shape is rejected here rather than during type checking,
// because constants feed the type checker itself.
func (p *Parser) parseConst() (*ast.Const, *diagnostics.DiagnosticError) {
	name, err := p.bumpIdent(diagnostics.ErrP002, "expected a constant name")
	if err != nil {
		return nil, err
	}

	if _, err := p.bumpExpected(token.ASSIGN); err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if value.Kind != ast.ExprBigInt {
		return nil, diagnostics.NewErrorAt(diagnostics.ErrP008, value.Span,
			"a constant can only be an integer literal")
	}
	if !config.FitsField(value.BigInt) {
		return nil, diagnostics.NewErrorAt(diagnostics.ErrP009, value.Span,
			"`%s` is not a valid field element", value.BigInt)
	}

	if _, err := p.bumpExpected(token.SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.Const{
		Name:  name,
		Value: value.BigInt,
		Span:  name.Span,
	}, nil
}
