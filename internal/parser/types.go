package parser

import (
	"github.com/quadra-lang/quadra/internal/ast"
	"github.com/quadra-lang/quadra/internal/diagnostics"
	"github.com/quadra-lang/quadra/internal/token"
)

// Type grammar:
//
//	type ::= ident | ident "::" ident | "[" type ";" uint32 "]"
//
// A type-cased identifier is a bare type name; a value-cased one must be a
// module qualifier followed by `::` and the type name (casing dispatch).

func (p *Parser) parseType() (*ast.Ty, *diagnostics.DiagnosticError) {
	tok, err := p.bumpErr(diagnostics.ErrP003, "expected a type")
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	// module::Type or Type
	case token.IDENT:
		var module *ast.Ident
		name := ast.NewIdent(tok.Lexeme, tok.Span)
		span := tok.Span

		if !ast.IsTypeName(tok.Lexeme) {
			// value-cased, so it can only be a module qualifier
			if _, err := p.bumpExpected(token.DOUBLECOLON); err != nil {
				return nil, err
			}

			qualified, err := p.bumpIdent(diagnostics.ErrP003, "expected a type name after `::`")
			if err != nil {
				return nil, err
			}

			m := name
			module = &m
			name = qualified
			span = span.Merge(qualified.Span)
		}

		kind, derr := p.reservedTypes(module, name)
		if derr != nil {
			return nil, derr
		}

		return &ast.Ty{Kind: kind, Span: span}, nil

	// [type; size]
	case token.LBRACKET:
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}

		if _, err := p.bumpExpected(token.SEMICOLON); err != nil {
			return nil, err
		}

		sizeTok, err := p.bumpErr(diagnostics.ErrP001, "expected an array size")
		if err != nil {
			return nil, err
		}
		if sizeTok.Kind != token.INT {
			return nil, diagnostics.NewError(diagnostics.ErrP001, sizeTok,
				"expected an integer literal as the array size, found `%s`", sizeTok.Lexeme)
		}
		size, ok := uint32Literal(sizeTok)
		if !ok {
			return nil, diagnostics.NewError(diagnostics.ErrP004, sizeTok,
				"invalid array size `%s`", sizeTok.Lexeme)
		}

		rbracket, err := p.bumpExpected(token.RBRACKET)
		if err != nil {
			return nil, err
		}

		return &ast.Ty{
			Kind: ast.ArrayTy(elem.Kind, size),
			Span: tok.Span.Merge(rbracket.Span),
		}, nil

	default:
		return nil, diagnostics.NewError(diagnostics.ErrP003, tok,
			"invalid type, found `%s`", tok.Lexeme)
	}
}

// reservedTypes resolves the built-in primitive names. Reserved names may
// never carry a module qualifier.
func (p *Parser) reservedTypes(module *ast.Ident, name ast.Ident) (ast.TyKind, *diagnostics.DiagnosticError) {
	if ast.IsReservedTypeName(name.Value) {
		if module != nil {
			return ast.TyKind{}, diagnostics.NewErrorAt(diagnostics.ErrP011, name.Span,
				"the reserved type `%s` cannot be qualified by a module", name.Value)
		}
		if name.Value == string(ast.TyField) {
			return ast.FieldTy(), nil
		}
		return ast.BoolTy(), nil
	}
	return ast.CustomTy(module, name), nil
}

// parseCustomType parses a struct name in declaration position. The name
// must be type-cased (casing dispatch) and must not shadow a primitive.
func (p *Parser) parseCustomType() (*ast.CustomType, *diagnostics.DiagnosticError) {
	name, err := p.bumpIdent(diagnostics.ErrP003, "expected a type name")
	if err != nil {
		return nil, err
	}

	if !ast.IsTypeName(name.Value) {
		return nil, diagnostics.NewErrorAt(diagnostics.ErrP014, name.Span,
			"type names must start with an uppercase letter, found `%s`", name.Value)
	}

	if ast.IsReservedTypeName(name.Value) {
		return nil, diagnostics.NewErrorAt(diagnostics.ErrP011, name.Span,
			"`%s` is a reserved type name", name.Value)
	}

	return &ast.CustomType{Value: name.Value, Span: name.Span}, nil
}
