package ast

import (
	"math/big"

	"github.com/quadra-lang/quadra/internal/token"
)

type AttributeKind string

const (
	AttributePub   AttributeKind = "pub"
	AttributeConst AttributeKind = "const"
)

// Attribute marks a function argument as a public circuit input (`pub`) or a
// compile-time constant (`const`). An argument without an attribute is a
// private input.
type Attribute struct {
	Kind AttributeKind `json:"kind"`
	Span token.Span    `json:"span"`
}

func (a Attribute) IsPublic() bool   { return a.Kind == AttributePub }
func (a Attribute) IsConstant() bool { return a.Kind == AttributeConst }

// FnArg is one function parameter.
type FnArg struct {
	Name      Ident      `json:"name"`
	Typ       Ty         `json:"typ"`
	Attribute *Attribute `json:"attribute,omitempty"`
	Span      token.Span `json:"span"`
}

func (a FnArg) IsPublic() bool {
	return a.Attribute != nil && a.Attribute.IsPublic()
}

func (a FnArg) IsConstant() bool {
	return a.Attribute != nil && a.Attribute.IsConstant()
}

// FnNameDef is a function's identity. SelfName is set iff the source used
// the `Type.method` form.
type FnNameDef struct {
	SelfName *Ident     `json:"self_name,omitempty"`
	Name     Ident      `json:"name"`
	Span     token.Span `json:"span"`
}

type FnSig struct {
	Name       FnNameDef `json:"name"`
	Arguments  []FnArg   `json:"arguments"`
	ReturnType *Ty       `json:"return_type,omitempty"`
}

type Function struct {
	Sig  FnSig      `json:"sig"`
	Body []Stmt     `json:"body"`
	Span token.Span `json:"span"`
}

// IsMain reports whether this is the circuit entry point.
func (f *Function) IsMain() bool {
	return f.Sig.Name.Name.Value == "main"
}

// CustomType is a struct-name occurrence in declaration position. The value
// is always type-cased and never a reserved primitive name; the parser
// enforces both.
type CustomType struct {
	Value string     `json:"value"`
	Span  token.Span `json:"span"`
}

// Struct is a top-level struct declaration. Field order is significant: it
// drives the memory layout of the struct's circuit variables downstream.
type Struct struct {
	Name   CustomType       `json:"name"`
	Fields []StructFieldDef `json:"fields"`
	Span   token.Span       `json:"span"`
}

type StructFieldDef struct {
	Name Ident `json:"name"`
	Typ  Ty    `json:"typ"`
}

// Const is a top-level constant. The value is a field element, so the RHS
// must be an integer literal below the field modulus.
type Const struct {
	Name  Ident      `json:"name"`
	Value *big.Int   `json:"value"`
	Span  token.Span `json:"span"`
}
