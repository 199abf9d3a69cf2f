package parser

import (
	"github.com/quadra-lang/quadra/internal/diagnostics"
	"github.com/quadra-lang/quadra/internal/pipeline"
	"github.com/quadra-lang/quadra/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.TokenStream == nil {
		// the lexer failed or never ran; nothing to parse
		if !ctx.Failed() {
			ctx.AddError(diagnostics.NewErrorAt(diagnostics.ErrP000, token.Span{},
				"parser: token stream is nil"))
		}
		return ctx
	}

	parser := New(ctx.TokenStream)
	module, err := parser.ParseModule()
	if err != nil {
		// no partial AST travels alongside an error: the unit either parses
		// completely or reports its one diagnostic
		ctx.AddError(err)
		return ctx
	}

	module.File = ctx.FilePath
	ctx.Module = module
	return ctx
}
