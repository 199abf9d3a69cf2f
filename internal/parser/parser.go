// Package parser implements the recursive-descent parser for Quadra
// compilation units. It consumes the token stream the lexer produced and
// builds the AST bottom-up, merging spans as productions return.
//
// The parser stops at the first grammar violation: there is no error
// recovery or resynchronization, and no partial AST is returned alongside an
// error. A failed unit reports exactly one diagnostic.
package parser

import (
	"github.com/quadra-lang/quadra/internal/ast"
	"github.com/quadra-lang/quadra/internal/diagnostics"
	"github.com/quadra-lang/quadra/internal/token"
)

type Parser struct {
	stream *token.Stream
}

func New(stream *token.Stream) *Parser {
	return &Parser{stream: stream}
}

// ParseModule parses a whole compilation unit: a sequence of `use`, `fn`,
// `struct`, `const` items and top-level comments, in source order.
func (p *Parser) ParseModule() (*ast.Module, *diagnostics.DiagnosticError) {
	module := &ast.Module{}

	for {
		tok, ok := p.stream.Peek()
		if !ok {
			break
		}

		switch tok.Kind {
		case token.COMMENT:
			p.stream.Bump()
			module.Roots = append(module.Roots, ast.Root{
				Kind:    ast.RootComment,
				Comment: tok.Literal.(string),
				Span:    tok.Span,
			})

		case token.USE:
			p.stream.Bump()
			path, err := p.parseUsePath()
			if err != nil {
				return nil, err
			}
			semi, err := p.bumpExpected(token.SEMICOLON)
			if err != nil {
				return nil, err
			}
			module.Roots = append(module.Roots, ast.Root{
				Kind: ast.RootUse,
				Use:  path,
				Span: tok.Span.Merge(semi.Span),
			})

		case token.FN:
			p.stream.Bump()
			fn, err := p.parseFunction()
			if err != nil {
				return nil, err
			}
			module.Roots = append(module.Roots, ast.Root{
				Kind:     ast.RootFunction,
				Function: fn,
				Span:     tok.Span.Merge(fn.Span),
			})

		case token.STRUCT:
			p.stream.Bump()
			st, err := p.parseStruct()
			if err != nil {
				return nil, err
			}
			module.Roots = append(module.Roots, ast.Root{
				Kind:   ast.RootStruct,
				Struct: st,
				Span:   tok.Span.Merge(st.Span),
			})

		case token.CONST:
			p.stream.Bump()
			cst, err := p.parseConst()
			if err != nil {
				return nil, err
			}
			module.Roots = append(module.Roots, ast.Root{
				Kind:  ast.RootConst,
				Const: cst,
				Span:  tok.Span.Merge(p.stream.LastSpan()),
			})

		default:
			return nil, diagnostics.NewError(diagnostics.ErrP001, tok,
				"unexpected token `%s` at top level, expected `use`, `fn`, `struct` or `const`",
				tok.Lexeme)
		}
	}

	return module, nil
}

// parseUsePath parses `module :: submodule`. Exactly two segments: a deeper
// path fails on the statement terminator that follows.
func (p *Parser) parseUsePath() (*ast.UsePath, *diagnostics.DiagnosticError) {
	module, err := p.bumpIdent(diagnostics.ErrP012, "wrong path: expected a module")
	if err != nil {
		return nil, err
	}

	if _, err := p.bumpExpected(token.DOUBLECOLON); err != nil {
		return nil, err
	}

	submodule, err := p.bumpIdent(diagnostics.ErrP012, "wrong path: expected a submodule after `::`")
	if err != nil {
		return nil, err
	}

	return &ast.UsePath{
		Module:    module,
		Submodule: submodule,
		Span:      module.Span.Merge(submodule.Span),
	}, nil
}
