package parser

import (
	"github.com/quadra-lang/quadra/internal/ast"
	"github.com/quadra-lang/quadra/internal/diagnostics"
	"github.com/quadra-lang/quadra/internal/token"
)

// parseStruct parses a struct declaration, the `struct` keyword already
// consumed:
//
//	struct Foo { a: Field, b: [Bool; 3] }
//
// The token sequence after the name is identical to a struct literal; only
// the parsing context (top-level item after `struct`) selects this
// production. Field order is preserved, it drives layout downstream.
func (p *Parser) parseStruct() (*ast.Struct, *diagnostics.DiagnosticError) {
	first, ok := p.stream.Peek()
	if !ok {
		return nil, diagnostics.NewErrorAt(diagnostics.ErrP003, p.stream.LastSpan(),
			"expected a struct name")
	}
	span := first.Span

	name, err := p.parseCustomType()
	if err != nil {
		return nil, err
	}

	if _, err := p.bumpExpected(token.LBRACE); err != nil {
		return nil, err
	}

	var fields []ast.StructFieldDef
	for {
		if p.peekIs(token.RBRACE) {
			p.stream.Bump()
			break
		}

		fieldName, err := p.bumpIdent(diagnostics.ErrP002, "expected a field name")
		if err != nil {
			return nil, err
		}

		if _, err := p.bumpExpected(token.COLON); err != nil {
			return nil, err
		}

		fieldTy, err := p.parseType()
		if err != nil {
			return nil, err
		}

		fields = append(fields, ast.StructFieldDef{Name: fieldName, Typ: *fieldTy})

		// `,` continues the list; `}` ends it; the trailing comma before `}`
		// is optional
		sep, ok := p.stream.Peek()
		switch {
		case ok && sep.Kind == token.COMMA:
			p.stream.Bump()
		case ok && sep.Kind == token.RBRACE:
			p.stream.Bump()
		default:
			return nil, diagnostics.NewErrorAt(diagnostics.ErrP013, p.stream.LastSpan(),
				"expected `,` or `}` after the struct field")
		}
		if ok && sep.Kind == token.RBRACE {
			break
		}
	}

	return &ast.Struct{
		Name:   *name,
		Fields: fields,
		Span:   span.Merge(p.stream.LastSpan()),
	}, nil
}
