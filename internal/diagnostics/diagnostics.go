// Package diagnostics defines the coded error values every compiler stage
// reports through. A diagnostic pins down an error kind (the code), a
// human-readable message, and the source location of the offending token.
package diagnostics

import (
	"fmt"

	"github.com/quadra-lang/quadra/internal/token"
)

type ErrorCode string

const (
	// Pipeline
	ErrP000 ErrorCode = "P000" // internal: stage precondition violated

	// Lexer
	ErrL001 ErrorCode = "L001" // unknown character
	ErrL002 ErrorCode = "L002" // malformed integer literal

	// Parser
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // expected identifier
	ErrP003 ErrorCode = "P003" // invalid type
	ErrP004 ErrorCode = "P004" // invalid array size
	ErrP005 ErrorCode = "P005" // invalid function signature
	ErrP006 ErrorCode = "P006" // invalid statement
	ErrP007 ErrorCode = "P007" // invalid range bound
	ErrP008 ErrorCode = "P008" // invalid constant type
	ErrP009 ErrorCode = "P009" // invalid field element literal
	ErrP010 ErrorCode = "P010" // `if` used as a statement
	ErrP011 ErrorCode = "P011" // reserved type name misuse
	ErrP012 ErrorCode = "P012" // invalid use path
	ErrP013 ErrorCode = "P013" // expected `,` or end of field list
	ErrP014 ErrorCode = "P014" // type name must be capitalized
	ErrP015 ErrorCode = "P015" // invalid expression
)

func (c ErrorCode) String() string {
	return string(c)
}

// DiagnosticError is the single error currency of the front-end. File is
// filled in by the pipeline stage once the source path is known.
type DiagnosticError struct {
	Code    ErrorCode
	Message string
	File    string
	Line    int
	Column  int
	Span    token.Span
}

// NewError builds a diagnostic anchored at tok. The message is a printf
// format; extra args are interpolated.
func NewError(code ErrorCode, tok token.Token, format string, args ...any) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
		Span:    tok.Span,
	}
}

// NewErrorAt builds a diagnostic at a bare span, for errors detected at end
// of input where no offending token exists.
func NewErrorAt(code ErrorCode, span token.Span, format string, args ...any) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Span:    span,
	}
}

func (e *DiagnosticError) Error() string {
	loc := ""
	if e.File != "" {
		loc = e.File
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d:%d", loc, e.Line, e.Column)
	}
	if loc != "" {
		loc += ": "
	}
	return fmt.Sprintf("%s%s: %s", loc, e.Code, e.Message)
}
