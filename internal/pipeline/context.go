package pipeline

import (
	"github.com/google/uuid"

	"github.com/quadra-lang/quadra/internal/ast"
	"github.com/quadra-lang/quadra/internal/diagnostics"
	"github.com/quadra-lang/quadra/internal/token"
)

// Processor is one compilation stage. Stages communicate exclusively through
// the context; each receives the previous stage's output and returns its own.
type Processor interface {
	Process(ctx *Context) *Context
}

// Context carries one compilation unit through the pipeline. It is owned by
// a single goroutine: concurrent builds of different units must each use
// their own context.
type Context struct {
	// BuildID tags every diagnostic batch from this run so multi-unit build
	// logs can be correlated.
	BuildID string

	FilePath   string
	SourceCode string

	TokenStream *token.Stream
	Module      *ast.Module

	Errors []*diagnostics.DiagnosticError
}

func NewContext(filePath, sourceCode string) *Context {
	return &Context{
		BuildID:    uuid.NewString(),
		FilePath:   filePath,
		SourceCode: sourceCode,
	}
}

// Failed reports whether any stage recorded an error.
func (c *Context) Failed() bool {
	return len(c.Errors) > 0
}

// AddError records a diagnostic, stamping it with the unit's file path.
func (c *Context) AddError(err *diagnostics.DiagnosticError) {
	if err.File == "" {
		err.File = c.FilePath
	}
	c.Errors = append(c.Errors, err)
}
