package parser_test

import (
	"strings"
	"testing"

	"github.com/quadra-lang/quadra/internal/diagnostics"
)

func TestErrorUnexpectedTopLevelToken(t *testing.T) {
	expectError(t, `let x = 1;`, diagnostics.ErrP001)
}

func TestErrorUsePath(t *testing.T) {
	expectError(t, `use alice;`, diagnostics.ErrP001)
	expectError(t, `use ::lib;`, diagnostics.ErrP012)
	// a third segment is not part of the language
	expectError(t, `use alice::lib::sub;`, diagnostics.ErrP001)
}

func TestErrorReservedTypeName(t *testing.T) {
	// reserved primitives cannot be module-qualified
	expectError(t, `fn main(x: std::Field) { assert(x); }`, diagnostics.ErrP011)
	// nor redeclared as structs
	expectError(t, `struct Field { x: Bool }`, diagnostics.ErrP011)
}

func TestErrorTypeNameCasing(t *testing.T) {
	expectError(t, `struct point { x: Field }`, diagnostics.ErrP014)
}

func TestErrorInvalidType(t *testing.T) {
	expectError(t, `fn main(x: 42) { assert(x); }`, diagnostics.ErrP003)
}

func TestErrorArraySize(t *testing.T) {
	// the size must be an integer literal
	expectError(t, `fn main(x: [Field; n]) { assert(x); }`, diagnostics.ErrP001)
	// and fit in 32 bits
	expectError(t, `fn main(x: [Field; 4294967296]) { assert(x); }`, diagnostics.ErrP004)
}

func TestErrorFnSignature(t *testing.T) {
	expectError(t, `fn main(x Field) { assert(x); }`, diagnostics.ErrP001)
	expectError(t, `fn main() { }`, diagnostics.ErrP005)
}

func TestErrorSelfArgument(t *testing.T) {
	// `self` needs a method context
	expectError(t, `fn main(self) { assert(self); }`, diagnostics.ErrP005)
	// must come first
	expectError(t, `fn House.verify(x: Field, self) { assert(x); }`, diagnostics.ErrP005)
	// and takes no attribute
	expectError(t, `fn House.verify(pub self) { assert(self); }`, diagnostics.ErrP005)
}

func TestErrorStatement(t *testing.T) {
	err := expectError(t, `fn main(x: Field) { if x { assert(x); } }`, diagnostics.ErrP010)
	if !strings.Contains(err.Message, "if expression") {
		t.Errorf("message should point at the expression form: %s", err.Message)
	}
}

func TestErrorLoopBound(t *testing.T) {
	expectError(t, `fn main(x: Field) { for i in 0..n { assert(x); } }`, diagnostics.ErrP007)
	expectError(t, `fn main(x: Field) { for i in x..5 { assert(x); } }`, diagnostics.ErrP007)
	expectError(t, `fn main(x: Field) { for i in 0..4294967296 { assert(x); } }`, diagnostics.ErrP007)
}

func TestErrorConst(t *testing.T) {
	// only integer literals can initialize a constant
	expectError(t, `const foo = true;`, diagnostics.ErrP008)
	expectError(t, `const foo = bar;`, diagnostics.ErrP008)
	// the value must fit in the field
	expectError(t,
		`const foo = 21888242871839275222246405745257275088548364400416034343698204186575808495617;`,
		diagnostics.ErrP009)
}

func TestErrorStructFieldSeparator(t *testing.T) {
	expectError(t, `struct Point { x: Field y: Field }`, diagnostics.ErrP013)
}

func TestErrorStructLiteralSeparator(t *testing.T) {
	expectError(t, `fn main(x: Field) { let p = Point { x: 1 y: 2 }; }`, diagnostics.ErrP013)
}

func TestErrorIfWithoutElse(t *testing.T) {
	expectError(t, `fn main(c: Bool) { let x = if c { 1 }; }`, diagnostics.ErrP001)
}

func TestErrorExpression(t *testing.T) {
	expectError(t, `fn main(x: Field) { let y = ; }`, diagnostics.ErrP015)
	expectError(t, `fn main(x: Field) { let y = x +; }`, diagnostics.ErrP015)
}

func TestErrorTruncatedInput(t *testing.T) {
	expectError(t, `fn main(x: Field) {`, diagnostics.ErrP006)
	expectError(t, `struct Point {`, diagnostics.ErrP002)
	expectError(t, `fn main(x: Field`, diagnostics.ErrP005)
}

func TestErrorSpansPointAtOffendingToken(t *testing.T) {
	input := `fn main(x: Field) { for i in 0..n { assert(x); } }`
	err := expectError(t, input, diagnostics.ErrP007)
	if input[err.Span.Start:err.Span.End()] != "n" {
		t.Errorf("span covers %q, want the bad bound", input[err.Span.Start:err.Span.End()])
	}
	if err.Line != 1 {
		t.Errorf("line = %d, want 1", err.Line)
	}
}

func TestNoPartialModuleOnError(t *testing.T) {
	ctx := parse(`struct Point { x: Field }
fn main( { }`)
	if !ctx.Failed() {
		t.Fatal("expected a parse error")
	}
	if ctx.Module != nil {
		t.Errorf("a failed parse must not leave a partial module: %+v", ctx.Module)
	}
}
