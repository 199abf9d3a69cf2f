package ast

import (
	"fmt"

	"github.com/quadra-lang/quadra/internal/token"
)

type TyName string

const (
	// TyField is the primitive scalar of the target arithmetic system.
	TyField TyName = "Field"
	// TyBool is `true` or `false`, constrained to 0/1 downstream.
	TyBool TyName = "Bool"
	// TyBigInt is the type of integer literals. It is interchangeable with
	// Field for equivalence purposes but tracks that the value is a literal
	// constant.
	TyBigInt TyName = "BigInt"
	// TyCustom is a user-defined struct type, optionally module-qualified.
	TyCustom TyName = "Custom"
	// TyArray is a fixed-size array.
	TyArray TyName = "Array"
)

// CustomRef is the payload of a TyCustom: an optional module qualifier and
// the struct name.
type CustomRef struct {
	Module *Ident `json:"module,omitempty"`
	Name   Ident  `json:"name"`
}

// ArrayRef is the payload of a TyArray. Size is fixed at parse time; array
// bounds are never runtime values.
type ArrayRef struct {
	Elem TyKind `json:"elem"`
	Size uint32 `json:"size"`
}

// TyKind is a type, independent of where it occurs. Exactly one payload
// field is set for Custom and Array; the primitive kinds carry none.
type TyKind struct {
	Kind   TyName     `json:"kind"`
	Custom *CustomRef `json:"custom,omitempty"`
	Array  *ArrayRef  `json:"array,omitempty"`
}

// Ty is a type occurrence in source: a TyKind plus the span of the full type
// expression, brackets included.
type Ty struct {
	Kind TyKind     `json:"kind"`
	Span token.Span `json:"span"`
}

func FieldTy() TyKind  { return TyKind{Kind: TyField} }
func BoolTy() TyKind   { return TyKind{Kind: TyBool} }
func BigIntTy() TyKind { return TyKind{Kind: TyBigInt} }

func CustomTy(module *Ident, name Ident) TyKind {
	return TyKind{Kind: TyCustom, Custom: &CustomRef{Module: module, Name: name}}
}

func ArrayTy(elem TyKind, size uint32) TyKind {
	return TyKind{Kind: TyArray, Array: &ArrayRef{Elem: elem, Size: size}}
}

// IsReservedTypeName reports whether name is one of the built-in primitive
// type names, which user structs may not shadow.
func IsReservedTypeName(name string) bool {
	return name == string(TyField) || name == string(TyBool)
}

// MatchExpected reports whether a value of type t is acceptable where
// expected is required. The relation is directional: a BigInt literal fits a
// Field slot, but a Field value does not fit a BigInt slot (that pair falls
// through to exact equality). Array sizes must match exactly; element types
// recurse through MatchExpected. A custom type with no module qualifier
// matches any module on the other side.
//
// The directionality, and SameAs recursing into this relation for array
// elements, are pinned behavior: the type checker depends on them as-is.
func (t TyKind) MatchExpected(expected TyKind) bool {
	switch {
	case t.Kind == TyBigInt && expected.Kind == TyField:
		return true
	case t.Kind == TyArray && expected.Kind == TyArray:
		return t.Array.Size == expected.Array.Size &&
			t.Array.Elem.MatchExpected(expected.Array.Elem)
	case t.Kind == TyCustom && expected.Kind == TyCustom:
		return customMatches(t.Custom, expected.Custom)
	default:
		return t.equal(expected)
	}
}

// SameAs reports whether two types are the same type. Unlike MatchExpected
// it treats Field and BigInt as interchangeable in both directions; array
// elements still go through MatchExpected.
func (t TyKind) SameAs(other TyKind) bool {
	switch {
	case t.Kind == TyBigInt && other.Kind == TyField,
		t.Kind == TyField && other.Kind == TyBigInt:
		return true
	case t.Kind == TyArray && other.Kind == TyArray:
		return t.Array.Size == other.Array.Size &&
			t.Array.Elem.MatchExpected(other.Array.Elem)
	case t.Kind == TyCustom && other.Kind == TyCustom:
		return customMatches(t.Custom, other.Custom)
	default:
		return t.equal(other)
	}
}

// customMatches compares custom types by name; module qualifiers are
// compared only when both sides carry one, so an unqualified reference acts
// as a wildcard.
func customMatches(a, b *CustomRef) bool {
	if a.Module != nil && b.Module != nil && a.Module.Value != b.Module.Value {
		return false
	}
	return a.Name.Value == b.Name.Value
}

// equal is exact structural equality, ignoring spans.
func (t TyKind) equal(other TyKind) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case TyArray:
		return t.Array.Size == other.Array.Size && t.Array.Elem.equal(other.Array.Elem)
	case TyCustom:
		if (t.Custom.Module == nil) != (other.Custom.Module == nil) {
			return false
		}
		if t.Custom.Module != nil && t.Custom.Module.Value != other.Custom.Module.Value {
			return false
		}
		return t.Custom.Name.Value == other.Custom.Name.Value
	default:
		return true
	}
}

func (t TyKind) String() string {
	switch t.Kind {
	case TyCustom:
		if t.Custom.Module != nil {
			return fmt.Sprintf("a `%s` struct from module `%s`",
				t.Custom.Name.Value, t.Custom.Module.Value)
		}
		return fmt.Sprintf("a `%s` struct", t.Custom.Name.Value)
	case TyArray:
		return fmt.Sprintf("[%s; %d]", t.Array.Elem, t.Array.Size)
	default:
		return string(t.Kind)
	}
}
