// Package ast defines the syntax tree the parser produces for one Quadra
// compilation unit. Nodes are built once during the parse and never mutated;
// every node carries the span of the source text it covers. All nodes
// marshal to JSON without loss of variant or span information, which is what
// the `quadra ast` command and the structural tests rely on.
package ast

import (
	"fmt"

	"github.com/quadra-lang/quadra/internal/token"
)

// Module is the root of the AST for one compilation unit. Item order is
// preserved: later passes report duplicate-name diagnostics in source order.
type Module struct {
	File  string `json:"file,omitempty"`
	Roots []Root `json:"roots"`
}

type RootKind string

const (
	RootUse      RootKind = "use"
	RootFunction RootKind = "function"
	RootStruct   RootKind = "struct"
	RootConst    RootKind = "const"
	RootComment  RootKind = "comment"
)

// Root is one top-level item. Exactly one payload field is set, matching
// Kind.
type Root struct {
	Kind     RootKind   `json:"kind"`
	Use      *UsePath   `json:"use,omitempty"`
	Function *Function  `json:"function,omitempty"`
	Struct   *Struct    `json:"struct,omitempty"`
	Const    *Const     `json:"const,omitempty"`
	Comment  string     `json:"comment,omitempty"`
	Span     token.Span `json:"span"`
}

// Ident is any name occurrence: a variable, a function, a type, a module.
type Ident struct {
	Value string     `json:"value"`
	Span  token.Span `json:"span"`
}

func NewIdent(value string, span token.Span) Ident {
	return Ident{Value: value, Span: span}
}

func (i Ident) String() string {
	return i.Value
}

// UsePath is a two-segment import path, `module::submodule`. Deeper nesting
// is not part of the language.
type UsePath struct {
	Module    Ident      `json:"module"`
	Submodule Ident      `json:"submodule"`
	Span      token.Span `json:"span"`
}

func (u UsePath) String() string {
	return fmt.Sprintf("%s::%s", u.Module.Value, u.Submodule.Value)
}
