package parser

import (
	"github.com/quadra-lang/quadra/internal/ast"
	"github.com/quadra-lang/quadra/internal/diagnostics"
	"github.com/quadra-lang/quadra/internal/token"
)

// Function grammar:
//
//	fn_decl    ::= "fn" fn_name "(" args ")" [ "->" type ] "{" stmt+ "}"
//	fn_name    ::= ident | type_ident "." ident
//	args       ::= [ arg { "," arg } [ "," ] ]
//	arg        ::= [ "pub" | "const" ] ident ":" type | "self"

// parseFnNameDef parses a function's name. A type-cased identifier means the
// `Type.method` form and must be followed by `.` and the method name
// (casing dispatch).
func (p *Parser) parseFnNameDef() (ast.FnNameDef, *diagnostics.DiagnosticError) {
	name, err := p.bumpIdent(diagnostics.ErrP005, "expected a function name")
	if err != nil {
		return ast.FnNameDef{}, err
	}

	if !ast.IsTypeName(name.Value) {
		return ast.FnNameDef{Name: name, Span: name.Span}, nil
	}

	// fn House.verify(...)
	if _, err := p.bumpExpected(token.DOT); err != nil {
		return ast.FnNameDef{}, err
	}

	method, err := p.bumpIdent(diagnostics.ErrP005, "expected a method name after `.`")
	if err != nil {
		return ast.FnNameDef{}, err
	}

	return ast.FnNameDef{
		SelfName: &name,
		Name:     method,
		Span:     name.Span.Merge(method.Span),
	}, nil
}

// parseFnArgs parses the parenthesized argument list. selfName is the
// enclosing method context: it is set only when the function was declared as
// `Type.method`, and it is what gives `self` its type. The context travels
// as an explicit argument so that nothing about the current method leaks
// into parser state.
func (p *Parser) parseFnArgs(selfName *ast.Ident) ([]ast.FnArg, *diagnostics.DiagnosticError) {
	if _, err := p.bumpExpected(token.LPAREN); err != nil {
		return nil, err
	}

	var args []ast.FnArg

	for {
		tok, err := p.bumpErr(diagnostics.ErrP005, "expected function arguments")
		if err != nil {
			return nil, err
		}

		var attribute *ast.Attribute
		var argName ast.Ident

		switch tok.Kind {
		case token.RPAREN:
			return args, nil

		// public input
		case token.PUB:
			attribute = &ast.Attribute{Kind: ast.AttributePub, Span: tok.Span}
			argName, err = p.bumpIdent(diagnostics.ErrP002, "expected an argument name")
			if err != nil {
				return nil, err
			}

		// constant input
		case token.CONST:
			attribute = &ast.Attribute{Kind: ast.AttributeConst, Span: tok.Span}
			argName, err = p.bumpIdent(diagnostics.ErrP002, "expected an argument name")
			if err != nil {
				return nil, err
			}

		// private input
		case token.IDENT:
			argName = ast.NewIdent(tok.Lexeme, tok.Span)

		default:
			return nil, diagnostics.NewError(diagnostics.ErrP005, tok,
				"expected an argument name, found `%s`", tok.Lexeme)
		}

		// `self` takes no type annotation: its type is the enclosing method's
		// receiver type, synthesized from the context passed in.
		var argTyp *ast.Ty
		if argName.Value == "self" {
			if attribute != nil {
				return nil, diagnostics.NewErrorAt(diagnostics.ErrP005, argName.Span,
					"`self` cannot carry an attribute")
			}
			if selfName == nil {
				return nil, diagnostics.NewErrorAt(diagnostics.ErrP005, argName.Span,
					"the `self` argument is only allowed in struct methods")
			}
			if len(args) != 0 {
				return nil, diagnostics.NewErrorAt(diagnostics.ErrP005, argName.Span,
					"`self` must be the first argument")
			}
			argTyp = &ast.Ty{
				Kind: ast.CustomTy(nil, ast.NewIdent(selfName.Value, selfName.Span)),
				Span: selfName.Span,
			}
		} else {
			if _, err := p.bumpExpected(token.COLON); err != nil {
				return nil, err
			}
			argTyp, err = p.parseType()
			if err != nil {
				return nil, err
			}
		}

		separator, err := p.bumpErr(diagnostics.ErrP005,
			"expected the end of the argument list or another argument")
		if err != nil {
			return nil, err
		}

		span := argName.Span
		if argName.Value != "self" {
			span = span.Merge(argTyp.Span)
			if attribute != nil {
				span = attribute.Span.Merge(argTyp.Span)
			}
		}

		args = append(args, ast.FnArg{
			Name:      argName,
			Typ:       *argTyp,
			Attribute: attribute,
			Span:      span,
		})

		switch separator.Kind {
		case token.COMMA:
		case token.RPAREN:
			return args, nil
		default:
			return nil, diagnostics.NewError(diagnostics.ErrP005, separator,
				"expected `,` or `)`, found `%s`", separator.Lexeme)
		}
	}
}

// parseFnReturnType parses the optional `-> type` clause.
func (p *Parser) parseFnReturnType() (*ast.Ty, *diagnostics.DiagnosticError) {
	if !p.peekIs(token.ARROW) {
		return nil, nil
	}
	p.stream.Bump()
	return p.parseType()
}

// parseFnBody parses a brace-delimited statement list.
func (p *Parser) parseFnBody() ([]ast.Stmt, *diagnostics.DiagnosticError) {
	if _, err := p.bumpExpected(token.LBRACE); err != nil {
		return nil, err
	}

	var body []ast.Stmt
	for {
		if p.peekIs(token.RBRACE) {
			p.stream.Bump()
			return body, nil
		}

		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		body = append(body, *stmt)
	}
}

// parseFunction parses a function declaration, the `fn` keyword already
// consumed.
func (p *Parser) parseFunction() (*ast.Function, *diagnostics.DiagnosticError) {
	first, ok := p.stream.Peek()
	if !ok {
		return nil, diagnostics.NewErrorAt(diagnostics.ErrP005, p.stream.LastSpan(),
			"expected a function name")
	}
	span := first.Span

	name, err := p.parseFnNameDef()
	if err != nil {
		return nil, err
	}

	arguments, err := p.parseFnArgs(name.SelfName)
	if err != nil {
		return nil, err
	}

	returnType, err := p.parseFnReturnType()
	if err != nil {
		return nil, err
	}

	body, err := p.parseFnBody()
	if err != nil {
		return nil, err
	}

	// a function with no statements cannot constrain anything
	if len(body) == 0 {
		return nil, diagnostics.NewErrorAt(diagnostics.ErrP005, p.stream.LastSpan(),
			"expected a function body")
	}

	span = span.Merge(body[len(body)-1].Span)

	return &ast.Function{
		Sig: ast.FnSig{
			Name:       name,
			Arguments:  arguments,
			ReturnType: returnType,
		},
		Body: body,
		Span: span,
	}, nil
}
