package lexer

import (
	"github.com/quadra-lang/quadra/internal/diagnostics"
	"github.com/quadra-lang/quadra/internal/pipeline"
	"github.com/quadra-lang/quadra/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	l := New(ctx.SourceCode)

	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == token.ILLEGAL {
			code := diagnostics.ErrL001
			msg := "unknown character %q"
			if s, ok := tok.Literal.(string); ok && s == "invalid integer literal" {
				code = diagnostics.ErrL002
				msg = "malformed integer literal %q"
			}
			ctx.AddError(diagnostics.NewError(code, tok, msg, tok.Lexeme))
			return ctx
		}
		tokens = append(tokens, tok)
	}

	ctx.TokenStream = token.NewStream(tokens)
	return ctx
}
