package parser

import (
	"testing"

	"github.com/roxlang/roxc/internal/compiler/ast"
	"github.com/roxlang/roxc/internal/compiler/lexer"
)

// checkNoErrors mirrors the teacher's checkParserErrors helper
// (internal/compiler/parser_test.go), adapted to rox's single-fatal-error
// Errors() contract: a 0-or-1 element slice instead of an accumulated list.
func checkNoErrors(t *testing.T, p *Parser) {
	t.Helper()
	errors := p.Errors()
	if len(errors) == 0 {
		return
	}
	for i, msg := range errors {
		t.Errorf("   Error %d: %q", i+1, msg)
	}
	t.FailNow()
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, err := lexer.Tokens(src)
	if err != nil {
		t.Fatalf("lexer error: %v", err)
	}
	program, parseErr := ParseProgram(toks)
	if parseErr != nil {
		t.Fatalf("parse error: %v", parseErr)
	}
	return program
}

func TestFunctionSimple(t *testing.T) {
	input := `
function greet() -> none {
  print("hi");
  return none;
}
`
	toks, err := lexer.Tokens(input)
	if err != nil {
		t.Fatalf("lexer error: %v", err)
	}
	p := New(toks)
	stmt := p.parseDeclaration()
	checkNoErrors(t, p)
	program := &ast.Program{Statements: []ast.Stmt{stmt}}

	if len(program.Statements) != 1 {
		t.Fatalf("program.Statements expected=1, got=%d", len(program.Statements))
	}

	fn, ok := program.Statements[0].(*ast.FunctionStmt)
	if !ok {
		t.Fatalf("program.Statements[0] is not *ast.FunctionStmt, got=%T", program.Statements[0])
	}
	if fn.Name.Lexeme != "greet" {
		t.Errorf("fn.Name.Lexeme expected='greet', got=%q", fn.Name.Lexeme)
	}
	if len(fn.Body) != 2 {
		t.Fatalf("fn.Body expected=2 statements, got=%d", len(fn.Body))
	}
	if _, ok := fn.Body[0].(*ast.ExprStmt); !ok {
		t.Errorf("fn.Body[0] expected *ast.ExprStmt, got=%T", fn.Body[0])
	}
	if _, ok := fn.Body[1].(*ast.ReturnStmt); !ok {
		t.Errorf("fn.Body[1] expected *ast.ReturnStmt, got=%T", fn.Body[1])
	}
}

func TestLetDeclarationWithList(t *testing.T) {
	program := mustParse(t, `list[int64] xs = [10, 20, 30];`)
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	let, ok := program.Statements[0].(*ast.LetStmt)
	if !ok {
		t.Fatalf("expected *ast.LetStmt, got %T", program.Statements[0])
	}
	if let.Type.String() != "list[int64]" {
		t.Errorf("let.Type expected='list[int64]', got=%q", let.Type.String())
	}
	lit, ok := let.Initializer.(*ast.ListLiteral)
	if !ok {
		t.Fatalf("expected *ast.ListLiteral initializer, got %T", let.Initializer)
	}
	if len(lit.Elements) != 3 {
		t.Errorf("expected 3 elements, got %d", len(lit.Elements))
	}
}

func TestIfWithIsOkGuard(t *testing.T) {
	program := mustParse(t, `
if (isOk(r)) {
  print(getValue(r));
}
`)
	ifStmt, ok := program.Statements[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected *ast.IfStmt, got %T", program.Statements[0])
	}
	call, ok := ifStmt.Condition.(*ast.Call)
	if !ok {
		t.Fatalf("expected *ast.Call condition, got %T", ifStmt.Condition)
	}
	callee, ok := call.Callee.(*ast.Variable)
	if !ok || callee.Name.Lexeme != "isOk" {
		t.Fatalf("expected isOk callee, got %#v", call.Callee)
	}
}

func TestAssignmentRejectsNonVariableTarget(t *testing.T) {
	toks, err := lexer.Tokens(`xs.at(0) = 5;`)
	if err != nil {
		t.Fatalf("lexer error: %v", err)
	}
	p := New(toks)
	p.parseDeclaration()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected a fatal parse error for a non-variable assignment target")
	}
}

func TestBooleanLiteralComparisonRejected(t *testing.T) {
	toks, err := lexer.Tokens(`bool ok2 = flag == true;`)
	if err != nil {
		t.Fatalf("lexer error: %v", err)
	}
	p := New(toks)
	p.parseDeclaration()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected a fatal parse error comparing against a boolean literal")
	}
}

func TestMissingClosingBraceIsFatal(t *testing.T) {
	toks, err := lexer.Tokens(`function f() -> none { print("x");`)
	if err != nil {
		t.Fatalf("lexer error: %v", err)
	}
	p := New(toks)
	p.parseDeclaration()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected a fatal parse error for an unclosed block")
	}
}

func TestForLoopOverRange(t *testing.T) {
	program := mustParse(t, `
for i in range(0, 5, 1) {
  print(i);
}
`)
	forStmt, ok := program.Statements[0].(*ast.ForStmt)
	if !ok {
		t.Fatalf("expected *ast.ForStmt, got %T", program.Statements[0])
	}
	if forStmt.Iterator.Lexeme != "i" {
		t.Errorf("expected iterator 'i', got %q", forStmt.Iterator.Lexeme)
	}
	call, ok := forStmt.Iterable.(*ast.Call)
	if !ok {
		t.Fatalf("expected *ast.Call iterable, got %T", forStmt.Iterable)
	}
	if len(call.Args) != 3 {
		t.Errorf("expected range() with 3 args, got %d", len(call.Args))
	}
}
