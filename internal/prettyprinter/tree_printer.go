// Package prettyprinter renders an AST as an indented tree, one node per
// line. The output is meant for humans and for structural test
// expectations; it is stable but deliberately lossy (no spans).
package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/quadra-lang/quadra/internal/ast"
)

type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) writeLine(format string, args ...any) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *TreePrinter) nested(fn func()) {
	p.indent++
	fn()
	p.indent--
}

func (p *TreePrinter) PrintModule(m *ast.Module) {
	p.writeLine("Module")
	p.nested(func() {
		for i := range m.Roots {
			p.printRoot(&m.Roots[i])
		}
	})
}

func (p *TreePrinter) printRoot(r *ast.Root) {
	switch r.Kind {
	case ast.RootUse:
		p.writeLine("Use %s", r.Use)
	case ast.RootFunction:
		p.printFunction(r.Function)
	case ast.RootStruct:
		p.printStruct(r.Struct)
	case ast.RootConst:
		p.writeLine("Const %s = %s", r.Const.Name.Value, r.Const.Value)
	case ast.RootComment:
		p.writeLine("Comment %q", r.Comment)
	}
}

func (p *TreePrinter) printFunction(f *ast.Function) {
	name := f.Sig.Name.Name.Value
	if f.Sig.Name.SelfName != nil {
		name = f.Sig.Name.SelfName.Value + "." + name
	}
	p.writeLine("Function %s", name)
	p.nested(func() {
		for _, arg := range f.Sig.Arguments {
			attr := ""
			if arg.Attribute != nil {
				attr = string(arg.Attribute.Kind) + " "
			}
			p.writeLine("Arg %s%s: %s", attr, arg.Name.Value, typeText(arg.Typ.Kind))
		}
		if f.Sig.ReturnType != nil {
			p.writeLine("Returns %s", typeText(f.Sig.ReturnType.Kind))
		}
		p.writeLine("Body")
		p.nested(func() {
			for i := range f.Body {
				p.printStmt(&f.Body[i])
			}
		})
	})
}

func (p *TreePrinter) printStruct(s *ast.Struct) {
	p.writeLine("Struct %s", s.Name.Value)
	p.nested(func() {
		for _, field := range s.Fields {
			p.writeLine("Field %s: %s", field.Name.Value, typeText(field.Typ.Kind))
		}
	})
}

func (p *TreePrinter) printStmt(s *ast.Stmt) {
	switch s.Kind {
	case ast.StmtAssign:
		mut := ""
		if s.Assign.Mutable {
			mut = "mut "
		}
		p.writeLine("Assign %s%s", mut, s.Assign.Lhs.Value)
		p.nested(func() { p.printExpr(s.Assign.Rhs) })
	case ast.StmtExpr:
		p.writeLine("ExprStmt")
		p.nested(func() { p.printExpr(s.Expr) })
	case ast.StmtReturn:
		p.writeLine("Return")
		p.nested(func() { p.printExpr(s.Return) })
	case ast.StmtComment:
		p.writeLine("Comment %q", s.Comment)
	case ast.StmtForLoop:
		p.writeLine("For %s in %d..%d", s.ForLoop.Var.Value, s.ForLoop.Range.Start, s.ForLoop.Range.End)
		p.nested(func() {
			for i := range s.ForLoop.Body {
				p.printStmt(&s.ForLoop.Body[i])
			}
		})
	}
}

func (p *TreePrinter) printExpr(e *ast.Expr) {
	switch e.Kind {
	case ast.ExprBigInt:
		p.writeLine("BigInt %s", e.BigInt)
	case ast.ExprBool:
		p.writeLine("Bool %t", *e.Bool)
	case ast.ExprVariable:
		p.writeLine("Variable %s", qualified(e.Variable.Module, e.Variable.Name))
	case ast.ExprFnCall:
		p.writeLine("FnCall %s", qualified(e.FnCall.Module, e.FnCall.Name))
		p.nested(func() {
			for i := range e.FnCall.Args {
				p.printExpr(&e.FnCall.Args[i])
			}
		})
	case ast.ExprMethodCall:
		p.writeLine("MethodCall %s", e.MethodCall.Method.Value)
		p.nested(func() {
			p.printExpr(e.MethodCall.Lhs)
			for i := range e.MethodCall.Args {
				p.printExpr(&e.MethodCall.Args[i])
			}
		})
	case ast.ExprFieldAccess:
		p.writeLine("FieldAccess %s", e.FieldAccess.Field.Value)
		p.nested(func() { p.printExpr(e.FieldAccess.Lhs) })
	case ast.ExprArrayAccess:
		p.writeLine("ArrayAccess")
		p.nested(func() {
			p.printExpr(e.ArrayAccess.Array)
			p.printExpr(e.ArrayAccess.Index)
		})
	case ast.ExprArrayLiteral:
		p.writeLine("ArrayLiteral")
		p.nested(func() {
			for i := range e.ArrayLiteral.Items {
				p.printExpr(&e.ArrayLiteral.Items[i])
			}
		})
	case ast.ExprStructLiteral:
		p.writeLine("StructLiteral %s", e.StructLiteral.Name.Value)
		p.nested(func() {
			for _, field := range e.StructLiteral.Fields {
				p.writeLine("Field %s", field.Name.Value)
				p.nested(func() {
					value := field.Value
					p.printExpr(&value)
				})
			}
		})
	case ast.ExprBinary:
		p.writeLine("Binary %s", e.Binary.Op)
		p.nested(func() {
			p.printExpr(e.Binary.Lhs)
			p.printExpr(e.Binary.Rhs)
		})
	case ast.ExprUnary:
		p.writeLine("Unary %s", e.Unary.Op)
		p.nested(func() { p.printExpr(e.Unary.Rhs) })
	case ast.ExprIf:
		p.writeLine("If")
		p.nested(func() {
			p.printExpr(e.If.Cond)
			p.printExpr(e.If.Then)
			p.printExpr(e.If.Else)
		})
	}
}

func qualified(module *ast.Ident, name ast.Ident) string {
	if module != nil {
		return module.Value + "::" + name.Value
	}
	return name.Value
}

func typeText(t ast.TyKind) string {
	switch t.Kind {
	case ast.TyCustom:
		if t.Custom.Module != nil {
			return t.Custom.Module.Value + "::" + t.Custom.Name.Value
		}
		return t.Custom.Name.Value
	case ast.TyArray:
		return fmt.Sprintf("[%s; %d]", typeText(t.Array.Elem), t.Array.Size)
	default:
		return string(t.Kind)
	}
}
