package parser_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/quadra-lang/quadra/internal/ast"
	"github.com/quadra-lang/quadra/internal/diagnostics"
	"github.com/quadra-lang/quadra/internal/lexer"
	"github.com/quadra-lang/quadra/internal/parser"
	"github.com/quadra-lang/quadra/internal/pipeline"
	"github.com/quadra-lang/quadra/internal/prettyprinter"
)

// parse runs lexer and parser over input and returns the context.
func parse(input string) *pipeline.Context {
	ctx := pipeline.NewContext("test.qd", input)
	p := pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{})
	return p.Run(ctx)
}

// mustParse fails the test unless input parses cleanly.
func mustParse(t *testing.T, input string) *ast.Module {
	t.Helper()
	ctx := parse(input)
	if ctx.Failed() {
		var msgs []string
		for _, err := range ctx.Errors {
			msgs = append(msgs, err.Error())
		}
		t.Fatalf("parsing failed:\n%s\ninput: %s", strings.Join(msgs, "\n"), input)
	}
	return ctx.Module
}

// expectError asserts parsing fails with the given error code.
func expectError(t *testing.T, input string, code diagnostics.ErrorCode) *diagnostics.DiagnosticError {
	t.Helper()
	ctx := parse(input)
	if !ctx.Failed() {
		t.Fatalf("expected error %s, but parsing succeeded\ninput: %s", code, input)
	}
	if len(ctx.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %d\ninput: %s", len(ctx.Errors), input)
	}
	err := ctx.Errors[0]
	if err.Code != code {
		t.Fatalf("expected error %s, got %s: %s\ninput: %s", code, err.Code, err.Message, input)
	}
	return err
}

// tree renders the module through the tree printer, for whole-shape
// expectations.
func tree(t *testing.T, input string) string {
	t.Helper()
	module := mustParse(t, input)
	tp := prettyprinter.NewTreePrinter()
	tp.PrintModule(module)
	return tp.String()
}

func TestParseEmptyFile(t *testing.T) {
	module := mustParse(t, "")
	if len(module.Roots) != 0 {
		t.Errorf("roots = %+v, want none", module.Roots)
	}
}

func TestParseStructDeclaration(t *testing.T) {
	module := mustParse(t, `struct Point { x: Field, y: Field }`)

	if len(module.Roots) != 1 || module.Roots[0].Kind != ast.RootStruct {
		t.Fatalf("expected one struct item, got %+v", module.Roots)
	}
	st := module.Roots[0].Struct
	if st.Name.Value != "Point" {
		t.Errorf("name = %q, want Point", st.Name.Value)
	}
	if len(st.Fields) != 2 {
		t.Fatalf("fields = %d, want 2", len(st.Fields))
	}
	// field order drives layout downstream, it must be preserved
	if st.Fields[0].Name.Value != "x" || st.Fields[1].Name.Value != "y" {
		t.Errorf("field order = %s, %s; want x, y", st.Fields[0].Name.Value, st.Fields[1].Name.Value)
	}
	for _, f := range st.Fields {
		if f.Typ.Kind.Kind != ast.TyField {
			t.Errorf("field %s: type = %s, want Field", f.Name.Value, f.Typ.Kind)
		}
	}
}

func TestParseStructTrailingComma(t *testing.T) {
	mustParse(t, `struct Point { x: Field, y: Field, }`)
	mustParse(t, `struct Empty { }`)
}

func TestParseTypeShapes(t *testing.T) {
	tests := []struct {
		typeText string
		check    func(t *testing.T, ty ast.Ty)
	}{
		{"Field", func(t *testing.T, ty ast.Ty) {
			if ty.Kind.Kind != ast.TyField {
				t.Errorf("kind = %s", ty.Kind)
			}
		}},
		{"Bool", func(t *testing.T, ty ast.Ty) {
			if ty.Kind.Kind != ast.TyBool {
				t.Errorf("kind = %s", ty.Kind)
			}
		}},
		{"[Field; 4]", func(t *testing.T, ty ast.Ty) {
			if ty.Kind.Kind != ast.TyArray || ty.Kind.Array.Size != 4 ||
				ty.Kind.Array.Elem.Kind != ast.TyField {
				t.Errorf("kind = %s", ty.Kind)
			}
		}},
		{"[[Bool; 2]; 3]", func(t *testing.T, ty ast.Ty) {
			if ty.Kind.Kind != ast.TyArray || ty.Kind.Array.Size != 3 {
				t.Fatalf("kind = %s", ty.Kind)
			}
			inner := ty.Kind.Array.Elem
			if inner.Kind != ast.TyArray || inner.Array.Size != 2 ||
				inner.Array.Elem.Kind != ast.TyBool {
				t.Errorf("element = %s", inner)
			}
		}},
		{"mod::Custom", func(t *testing.T, ty ast.Ty) {
			if ty.Kind.Kind != ast.TyCustom {
				t.Fatalf("kind = %s", ty.Kind)
			}
			c := ty.Kind.Custom
			if c.Module == nil || c.Module.Value != "mod" || c.Name.Value != "Custom" {
				t.Errorf("custom = %+v", c)
			}
		}},
		{"Thing", func(t *testing.T, ty ast.Ty) {
			if ty.Kind.Kind != ast.TyCustom || ty.Kind.Custom.Module != nil ||
				ty.Kind.Custom.Name.Value != "Thing" {
				t.Errorf("kind = %s", ty.Kind)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.typeText, func(t *testing.T) {
			input := "fn main(x: " + tt.typeText + ") { assert(x); }"
			module := mustParse(t, input)
			ty := module.Roots[0].Function.Sig.Arguments[0].Typ

			// the span covers the whole type text, brackets included
			if got := input[ty.Span.Start:ty.Span.End()]; got != tt.typeText {
				t.Errorf("span covers %q, want %q", got, tt.typeText)
			}
			tt.check(t, ty)
		})
	}
}

func TestParseMethodSignature(t *testing.T) {
	module := mustParse(t, `fn House.verify(self, pub x: Field) -> Bool { return x; }`)

	fn := module.Roots[0].Function
	name := fn.Sig.Name
	if name.SelfName == nil || name.SelfName.Value != "House" {
		t.Fatalf("self_name = %v, want House", name.SelfName)
	}
	if name.Name.Value != "verify" {
		t.Errorf("name = %q, want verify", name.Name.Value)
	}

	args := fn.Sig.Arguments
	if len(args) != 2 {
		t.Fatalf("arguments = %d, want 2", len(args))
	}

	// `self` gets its type synthesized from the method context
	selfArg := args[0]
	if selfArg.Name.Value != "self" || selfArg.Attribute != nil {
		t.Errorf("self arg = %+v", selfArg)
	}
	if selfArg.Typ.Kind.Kind != ast.TyCustom || selfArg.Typ.Kind.Custom.Name.Value != "House" {
		t.Errorf("self type = %s, want a `House` struct", selfArg.Typ.Kind)
	}

	xArg := args[1]
	if xArg.Name.Value != "x" || !xArg.IsPublic() || xArg.IsConstant() {
		t.Errorf("x arg = %+v, want pub x", xArg)
	}
	if xArg.Typ.Kind.Kind != ast.TyField {
		t.Errorf("x type = %s, want Field", xArg.Typ.Kind)
	}

	if fn.Sig.ReturnType == nil || fn.Sig.ReturnType.Kind.Kind != ast.TyBool {
		t.Errorf("return type = %v, want Bool", fn.Sig.ReturnType)
	}
}

func TestParseArgumentAttributes(t *testing.T) {
	module := mustParse(t, `fn main(pub a: Field, const b: Field, c: Field) { assert(a); }`)

	args := module.Roots[0].Function.Sig.Arguments
	if !args[0].IsPublic() {
		t.Error("a should be public")
	}
	if !args[1].IsConstant() {
		t.Error("b should be constant")
	}
	if args[2].Attribute != nil {
		t.Error("c should be a private input with no attribute")
	}
}

func TestParseForLoop(t *testing.T) {
	module := mustParse(t, `fn main(x: Field) { for i in 0..5 { assert(x); } }`)

	body := module.Roots[0].Function.Body
	if len(body) != 1 || body[0].Kind != ast.StmtForLoop {
		t.Fatalf("body = %+v", body)
	}
	loop := body[0].ForLoop
	if loop.Var.Value != "i" {
		t.Errorf("loop var = %q, want i", loop.Var.Value)
	}
	if loop.Range.Start != 0 || loop.Range.End != 5 {
		t.Errorf("range = %d..%d, want 0..5", loop.Range.Start, loop.Range.End)
	}
	if len(loop.Body) != 1 {
		t.Errorf("loop body = %d statements, want 1", len(loop.Body))
	}
}

func TestParseEmptyForLoopBody(t *testing.T) {
	module := mustParse(t, `fn main(x: Field) { for i in 0..5 { } }`)
	loop := module.Roots[0].Function.Body[0].ForLoop
	if loop.Range != (ast.Range{Start: 0, End: 5, Span: loop.Range.Span}) {
		t.Errorf("range = %+v", loop.Range)
	}
}

func TestParseConst(t *testing.T) {
	module := mustParse(t, `const foo = 42;`)

	cst := module.Roots[0].Const
	if cst.Name.Value != "foo" {
		t.Errorf("name = %q, want foo", cst.Name.Value)
	}
	if cst.Value.Cmp(big.NewInt(42)) != 0 {
		t.Errorf("value = %v, want 42", cst.Value)
	}
}

func TestParseUsePath(t *testing.T) {
	module := mustParse(t, `use alice::lib;`)

	use := module.Roots[0].Use
	if use.Module.Value != "alice" || use.Submodule.Value != "lib" {
		t.Errorf("use = %s, want alice::lib", use)
	}
}

func TestParseAssignments(t *testing.T) {
	module := mustParse(t, `fn main(x: Field) {
    let y = x;
    let mut z = 0;
    assert_eq(y, z);
}`)

	body := module.Roots[0].Function.Body
	if body[0].Kind != ast.StmtAssign || body[0].Assign.Mutable {
		t.Errorf("stmt 0 = %+v, want immutable assign", body[0])
	}
	if body[1].Kind != ast.StmtAssign || !body[1].Assign.Mutable {
		t.Errorf("stmt 1 = %+v, want mutable assign", body[1])
	}
	if body[2].Kind != ast.StmtExpr {
		t.Errorf("stmt 2 kind = %s, want expr", body[2].Kind)
	}
}

func TestParseCommentsArePreserved(t *testing.T) {
	module := mustParse(t, `// top comment
fn main(x: Field) {
    // body comment
    assert(x);
}`)

	if module.Roots[0].Kind != ast.RootComment || module.Roots[0].Comment != " top comment" {
		t.Errorf("root 0 = %+v, want the top comment", module.Roots[0])
	}
	body := module.Roots[1].Function.Body
	if body[0].Kind != ast.StmtComment || body[0].Comment != " body comment" {
		t.Errorf("body 0 = %+v, want the body comment", body[0])
	}
}

func TestRootOrderPreserved(t *testing.T) {
	module := mustParse(t, `use std::crypto;
const n = 3;
struct Foo { a: Field }
fn main(x: Field) { assert(x); }`)

	wantKinds := []ast.RootKind{ast.RootUse, ast.RootConst, ast.RootStruct, ast.RootFunction}
	if len(module.Roots) != len(wantKinds) {
		t.Fatalf("roots = %d, want %d", len(module.Roots), len(wantKinds))
	}
	for i, kind := range wantKinds {
		if module.Roots[i].Kind != kind {
			t.Errorf("root %d = %s, want %s", i, module.Roots[i].Kind, kind)
		}
	}
}

func TestParseStructLiteral(t *testing.T) {
	module := mustParse(t, `fn main(x: Field) { let p = Point { x: x, y: 2 }; }`)

	rhs := module.Roots[0].Function.Body[0].Assign.Rhs
	if rhs.Kind != ast.ExprStructLiteral {
		t.Fatalf("rhs kind = %s, want struct literal", rhs.Kind)
	}
	lit := rhs.StructLiteral
	if lit.Name.Value != "Point" || len(lit.Fields) != 2 {
		t.Errorf("literal = %+v", lit)
	}
	if lit.Fields[0].Name.Value != "x" || lit.Fields[1].Name.Value != "y" {
		t.Errorf("field order not preserved: %+v", lit.Fields)
	}
}

func TestParseIfExpression(t *testing.T) {
	module := mustParse(t, `fn main(c: Bool) { let x = if c { 1 } else { 2 }; }`)

	rhs := module.Roots[0].Function.Body[0].Assign.Rhs
	if rhs.Kind != ast.ExprIf {
		t.Fatalf("rhs kind = %s, want if", rhs.Kind)
	}
	if rhs.If.Cond.Kind != ast.ExprVariable {
		t.Errorf("cond = %+v", rhs.If.Cond)
	}
}

func TestParseExpressionShapes(t *testing.T) {
	got := tree(t, `fn main(x: Field) {
    let a = x + 2 * 3;
    let b = x.double().add(a);
    let c = [x, 2][0];
    assert_eq(crypto::poseidon(a), b);
}`)

	want := `Module
  Function main
    Arg x: Field
    Body
      Assign a
        Binary +
          Variable x
          Binary *
            BigInt 2
            BigInt 3
      Assign b
        MethodCall add
          MethodCall double
            Variable x
          Variable a
      Assign c
        ArrayAccess
          ArrayLiteral
            Variable x
            BigInt 2
          BigInt 0
      ExprStmt
        FnCall assert_eq
          FnCall crypto::poseidon
            Variable a
          Variable b
`
	if got != want {
		t.Errorf("tree mismatch:\n--- want\n%s\n--- got\n%s", want, got)
	}
}

func TestFunctionSpanCoversBody(t *testing.T) {
	input := `fn main(x: Field) { assert(x); }`
	module := mustParse(t, input)

	fn := module.Roots[0].Function
	if fn.Span.Start == fn.Span.End() {
		t.Fatal("function span is empty")
	}
	// the span starts at the name and reaches the last statement
	if !strings.HasPrefix(input[fn.Span.Start:], "main") {
		t.Errorf("span starts at %q", input[fn.Span.Start:])
	}
	last := fn.Body[len(fn.Body)-1]
	if fn.Span.End() != last.Span.End() {
		t.Errorf("span end = %d, want the last statement's end %d", fn.Span.End(), last.Span.End())
	}
}
