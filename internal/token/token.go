package token

import "fmt"

type Kind string

const (
	ILLEGAL Kind = "ILLEGAL"
	EOF     Kind = "EOF"

	// Identifiers and literals
	IDENT   Kind = "IDENT"
	INT     Kind = "INT"
	COMMENT Kind = "COMMENT"

	// Punctuation
	LPAREN      Kind = "("
	RPAREN      Kind = ")"
	LBRACKET    Kind = "["
	RBRACKET    Kind = "]"
	LBRACE      Kind = "{"
	RBRACE      Kind = "}"
	COMMA       Kind = ","
	COLON       Kind = ":"
	DOUBLECOLON Kind = "::"
	SEMICOLON   Kind = ";"
	DOT         Kind = "."
	DOUBLEDOT   Kind = ".."
	ARROW       Kind = "->"

	// Operators
	ASSIGN   Kind = "="
	EQ       Kind = "=="
	PLUS     Kind = "+"
	MINUS    Kind = "-"
	ASTERISK Kind = "*"
	BANG     Kind = "!"
	LT       Kind = "<"
	LTE      Kind = "<="
	GT       Kind = ">"
	GTE      Kind = ">="
	AND      Kind = "&&"

	// Keywords
	FN     Kind = "FN"
	STRUCT Kind = "STRUCT"
	CONST  Kind = "CONST"
	USE    Kind = "USE"
	LET    Kind = "LET"
	MUT    Kind = "MUT"
	FOR    Kind = "FOR"
	IN     Kind = "IN"
	RETURN Kind = "RETURN"
	IF     Kind = "IF"
	ELSE   Kind = "ELSE"
	PUB    Kind = "PUB"
	TRUE   Kind = "TRUE"
	FALSE  Kind = "FALSE"
)

var keywords = map[string]Kind{
	"fn":     FN,
	"struct": STRUCT,
	"const":  CONST,
	"use":    USE,
	"let":    LET,
	"mut":    MUT,
	"for":    FOR,
	"in":     IN,
	"return": RETURN,
	"if":     IF,
	"else":   ELSE,
	"pub":    PUB,
	"true":   TRUE,
	"false":  FALSE,
}

// LookupIdent maps reserved words to their keyword kind; everything else is
// a plain identifier. Note that `self` is deliberately not a keyword: the
// argument parser treats it as an ordinary identifier with special meaning.
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENT
}

// Span is a half-open source range: byte offset of the first character and
// length in bytes. Every AST node carries one for diagnostics.
type Span struct {
	Start int `json:"start"`
	Len   int `json:"len"`
}

func NewSpan(start, length int) Span {
	return Span{Start: start, Len: length}
}

// Merge returns the union of two spans. Order does not matter; the result
// covers everything from the earliest start to the latest end.
func (s Span) Merge(other Span) Span {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End()
	if other.End() > end {
		end = other.End()
	}
	return Span{Start: start, Len: end - start}
}

func (s Span) End() int {
	return s.Start + s.Len
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End())
}

// Token is one lexical unit. Lexeme is the raw source text; Literal carries
// the decoded value for INT (*big.Int) and COMMENT (the comment text without
// the leading slashes). Line and Column are 1-based and kept alongside the
// span so diagnostics can print file:line:col without a line table.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any
	Span    Span
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %s", t.Kind, t.Lexeme, t.Span)
}
