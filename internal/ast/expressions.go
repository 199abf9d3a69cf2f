package ast

import (
	"math/big"

	"github.com/quadra-lang/quadra/internal/token"
)

type ExprKind string

const (
	ExprBigInt        ExprKind = "bigint"
	ExprBool          ExprKind = "bool"
	ExprVariable      ExprKind = "variable"
	ExprFnCall        ExprKind = "fn_call"
	ExprMethodCall    ExprKind = "method_call"
	ExprFieldAccess   ExprKind = "field_access"
	ExprArrayAccess   ExprKind = "array_access"
	ExprArrayLiteral  ExprKind = "array_literal"
	ExprStructLiteral ExprKind = "struct_literal"
	ExprBinary        ExprKind = "binary"
	ExprUnary         ExprKind = "unary"
	ExprIf            ExprKind = "if"
)

// Expr is one expression node. Exactly one payload field is set, matching
// Kind.
type Expr struct {
	Kind ExprKind   `json:"kind"`
	Span token.Span `json:"span"`

	BigInt        *big.Int       `json:"bigint,omitempty"`
	Bool          *bool          `json:"bool,omitempty"`
	Variable      *VariableRef   `json:"variable,omitempty"`
	FnCall        *FnCall        `json:"fn_call,omitempty"`
	MethodCall    *MethodCall    `json:"method_call,omitempty"`
	FieldAccess   *FieldAccess   `json:"field_access,omitempty"`
	ArrayAccess   *ArrayAccess   `json:"array_access,omitempty"`
	ArrayLiteral  *ArrayLiteral  `json:"array_literal,omitempty"`
	StructLiteral *StructLiteral `json:"struct_literal,omitempty"`
	Binary        *BinaryExpr    `json:"binary,omitempty"`
	Unary         *UnaryExpr     `json:"unary,omitempty"`
	If            *IfExpr        `json:"if,omitempty"`
}

// VariableRef is a value name, optionally qualified by a module
// (`mod::CONSTANT`).
type VariableRef struct {
	Module *Ident `json:"module,omitempty"`
	Name   Ident  `json:"name"`
}

// FnCall is a free-function call, optionally module-qualified.
type FnCall struct {
	Module *Ident `json:"module,omitempty"`
	Name   Ident  `json:"name"`
	Args   []Expr `json:"args"`
}

// MethodCall is `lhs.method(args)`.
type MethodCall struct {
	Lhs    *Expr  `json:"lhs"`
	Method Ident  `json:"method"`
	Args   []Expr `json:"args"`
}

type FieldAccess struct {
	Lhs   *Expr `json:"lhs"`
	Field Ident `json:"field"`
}

type ArrayAccess struct {
	Array *Expr `json:"array"`
	Index *Expr `json:"index"`
}

type ArrayLiteral struct {
	Items []Expr `json:"items"`
}

// StructLiteral is the value-construction form `Name { field: expr, ... }`.
// It shares surface syntax with a struct declaration; the parser only
// produces it in expression position, for a type-cased name directly
// followed by `{`.
type StructLiteral struct {
	Name   Ident         `json:"name"`
	Fields []StructField `json:"fields"`
}

type StructField struct {
	Name  Ident `json:"name"`
	Value Expr  `json:"value"`
}

type BinaryExpr struct {
	Op  string `json:"op"`
	Lhs *Expr  `json:"lhs"`
	Rhs *Expr  `json:"rhs"`
}

type UnaryExpr struct {
	Op  string `json:"op"`
	Rhs *Expr  `json:"rhs"`
}

// IfExpr is the only conditional form in the language: both branches are
// expressions and the else branch is mandatory.
type IfExpr struct {
	Cond *Expr `json:"cond"`
	Then *Expr `json:"then"`
	Else *Expr `json:"else"`
}
