package ast

import "github.com/quadra-lang/quadra/internal/token"

type StmtKind string

const (
	StmtAssign  StmtKind = "assign"
	StmtExpr    StmtKind = "expr"
	StmtReturn  StmtKind = "return"
	StmtComment StmtKind = "comment"
	StmtForLoop StmtKind = "for_loop"
)

// Stmt is one statement. Exactly one payload field is set, matching Kind.
type Stmt struct {
	Kind    StmtKind   `json:"kind"`
	Assign  *Assign    `json:"assign,omitempty"`
	Expr    *Expr      `json:"expr,omitempty"`
	Return  *Expr      `json:"return,omitempty"`
	Comment string     `json:"comment,omitempty"`
	ForLoop *ForLoop   `json:"for_loop,omitempty"`
	Span    token.Span `json:"span"`
}

type Assign struct {
	Mutable bool  `json:"mutable"`
	Lhs     Ident `json:"lhs"`
	Rhs     *Expr `json:"rhs"`
}

// Range is a for-loop bound pair. Both ends are integer literals known at
// parse time; loop bodies are unrolled end-start times downstream, so a
// runtime bound has no meaning here.
type Range struct {
	Start uint32     `json:"start"`
	End   uint32     `json:"end"`
	Span  token.Span `json:"span"`
}

type ForLoop struct {
	Var   Ident  `json:"var"`
	Range Range  `json:"range"`
	Body  []Stmt `json:"body"`
}
