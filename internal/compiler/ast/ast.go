// Package ast defines the rox abstract syntax tree: a closed variant of
// expression and statement node types (spec.md §3.3–§3.4), each owning its
// children exclusively (spec.md §4.3 — no back-pointers, no cycles, no
// shared sub-expressions). This generalizes the teacher's Node/Statement/
// Expression interface split in internal/compiler/ast/ast.go to rox's
// grammar; the struct-per-shape-plus-interface style and the debug
// PrintAST walker are kept, the COBOL-specific record/file nodes are not.
package ast

import (
	"fmt"
	"strings"

	"github.com/roxlang/roxc/internal/compiler/token"
	"github.com/roxlang/roxc/internal/compiler/types"
)

// Node is implemented by every AST node.
type Node interface {
	node()
}

// Expr is implemented by every expression node (spec.md §3.3).
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node (spec.md §3.4).
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of a compilation: an ordered list of top-level
// declarations and statements (spec.md §4.2's program := declaration*).
type Program struct {
	Statements []Stmt
}

func (*Program) node() {}

// --- Expressions ---

// Literal is a leaf expression wrapping the token carrying its value.
type Literal struct {
	Value token.Token
}

func (*Literal) node()     {}
func (*Literal) exprNode() {}

// Variable is a bare identifier reference.
type Variable struct {
	Name token.Token
}

func (*Variable) node()     {}
func (*Variable) exprNode() {}

// ListLiteral is a `[a, b, c]` literal.
type ListLiteral struct {
	Bracket  token.Token
	Elements []Expr
}

func (*ListLiteral) node()     {}
func (*ListLiteral) exprNode() {}

// Unary is `not x` or `-x`.
type Unary struct {
	Op      token.Token
	Operand Expr
}

func (*Unary) node()     {}
func (*Unary) exprNode() {}

// Binary is an arithmetic, comparison, or equality expression. `and`/`or`
// are never Binary — see Logical.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*Binary) node()     {}
func (*Binary) exprNode() {}

// Logical is `and`/`or`, kept distinct from Binary because the operators
// have short-circuit semantics (spec.md §3.3).
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*Logical) node()     {}
func (*Logical) exprNode() {}

// Assignment is `name = value`. Only a bare variable target is legal; the
// parser never constructs one with any other LHS shape.
type Assignment struct {
	Name  token.Token
	Value Expr
}

func (*Assignment) node()     {}
func (*Assignment) exprNode() {}

// Call is `callee(args...)`.
type Call struct {
	Callee       Expr
	ClosingParen token.Token
	Args         []Expr
}

func (*Call) node()     {}
func (*Call) exprNode() {}

// MethodCall is the syntactic dot-call `object.name(args...)`, the primary
// vehicle for container operations (spec.md §3.3).
type MethodCall struct {
	Object Expr
	Name   token.Token
	Args   []Expr
}

func (*MethodCall) node()     {}
func (*MethodCall) exprNode() {}

// --- Statements ---

// ExprStmt wraps an expression evaluated for effect.
type ExprStmt struct {
	Expression Expr
}

func (*ExprStmt) node()     {}
func (*ExprStmt) stmtNode() {}

// LetStmt declares a variable with an explicit type (spec.md §3.4's
// invariant: no type inference at declaration).
type LetStmt struct {
	Name        token.Token
	Type        *types.Type
	Initializer Expr // nil when absent
	IsConst     bool
}

func (*LetStmt) node()     {}
func (*LetStmt) stmtNode() {}

// BlockStmt is a `{ ... }` sequence; the code generator pushes a scope
// frame on entry and pops it on exit.
type BlockStmt struct {
	Statements []Stmt
}

func (*BlockStmt) node()     {}
func (*BlockStmt) stmtNode() {}

// IfStmt is `if (cond) then [else else]`.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil when absent
}

func (*IfStmt) node()     {}
func (*IfStmt) stmtNode() {}

// ForStmt is the general `for x in iterable { ... }` form spec.md §3.4
// offers as one of two numeric-iteration shapes; this implementation picks
// this one exclusively (see DESIGN.md's Open Question resolution) — the
// distilled `repeat ... in range(...)` surface sugar is not a separate
// grammar production, since both lower to the same runtime range iterable.
type ForStmt struct {
	Iterator token.Token
	Iterable Expr
	Body     Stmt
}

func (*ForStmt) node()     {}
func (*ForStmt) stmtNode() {}

// Param is one function parameter: a name plus its declared type.
type Param struct {
	Name token.Token
	Type *types.Type
}

// FunctionStmt declares a function with explicit parameter types and
// return type (spec.md §3.4's invariant).
type FunctionStmt struct {
	Name       token.Token
	Params     []Param
	ReturnType *types.Type
	Body       []Stmt
}

func (*FunctionStmt) node()     {}
func (*FunctionStmt) stmtNode() {}

// ReturnStmt is `return [value];`. A nil Value is only legal inside a
// function whose declared return type is none (spec.md §3.4). The code
// generator does not check this: it emits `return none;` for a nil Value
// whatever the function's declared return type.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil when absent
}

func (*ReturnStmt) node()     {}
func (*ReturnStmt) stmtNode() {}

// BreakStmt is `break;`.
type BreakStmt struct {
	Keyword token.Token
}

func (*BreakStmt) node()     {}
func (*BreakStmt) stmtNode() {}

// ContinueStmt is `continue;`.
type ContinueStmt struct {
	Keyword token.Token
}

func (*ContinueStmt) node()     {}
func (*ContinueStmt) stmtNode() {}

// PrintAST renders node as an indented debug dump, mirroring the teacher's
// ast.PrintAST type-switch walker (internal/compiler/ast/ast.go).
func PrintAST(node Node, indent string) string {
	var b strings.Builder
	printNode(&b, node, indent)
	return b.String()
}

func printNode(b *strings.Builder, node Node, indent string) {
	switch n := node.(type) {
	case *Program:
		fmt.Fprintf(b, "%sProgram\n", indent)
		for _, s := range n.Statements {
			printNode(b, s, indent+"  ")
		}
	case *Literal:
		fmt.Fprintf(b, "%sLiteral(%s)\n", indent, n.Value.Lexeme)
	case *Variable:
		fmt.Fprintf(b, "%sVariable(%s)\n", indent, n.Name.Lexeme)
	case *ListLiteral:
		fmt.Fprintf(b, "%sListLiteral\n", indent)
		for _, e := range n.Elements {
			printNode(b, e, indent+"  ")
		}
	case *Unary:
		fmt.Fprintf(b, "%sUnary(%s)\n", indent, n.Op.Lexeme)
		printNode(b, n.Operand, indent+"  ")
	case *Binary:
		fmt.Fprintf(b, "%sBinary(%s)\n", indent, n.Op.Lexeme)
		printNode(b, n.Left, indent+"  ")
		printNode(b, n.Right, indent+"  ")
	case *Logical:
		fmt.Fprintf(b, "%sLogical(%s)\n", indent, n.Op.Lexeme)
		printNode(b, n.Left, indent+"  ")
		printNode(b, n.Right, indent+"  ")
	case *Assignment:
		fmt.Fprintf(b, "%sAssignment(%s)\n", indent, n.Name.Lexeme)
		printNode(b, n.Value, indent+"  ")
	case *Call:
		fmt.Fprintf(b, "%sCall\n", indent)
		printNode(b, n.Callee, indent+"  ")
		for _, a := range n.Args {
			printNode(b, a, indent+"  ")
		}
	case *MethodCall:
		fmt.Fprintf(b, "%sMethodCall(%s)\n", indent, n.Name.Lexeme)
		printNode(b, n.Object, indent+"  ")
		for _, a := range n.Args {
			printNode(b, a, indent+"  ")
		}
	case *ExprStmt:
		fmt.Fprintf(b, "%sExprStmt\n", indent)
		printNode(b, n.Expression, indent+"  ")
	case *LetStmt:
		fmt.Fprintf(b, "%sLetStmt(%s: %s, const=%v)\n", indent, n.Name.Lexeme, n.Type.String(), n.IsConst)
		if n.Initializer != nil {
			printNode(b, n.Initializer, indent+"  ")
		}
	case *BlockStmt:
		fmt.Fprintf(b, "%sBlockStmt\n", indent)
		for _, s := range n.Statements {
			printNode(b, s, indent+"  ")
		}
	case *IfStmt:
		fmt.Fprintf(b, "%sIfStmt\n", indent)
		printNode(b, n.Condition, indent+"  ")
		printNode(b, n.Then, indent+"  ")
		if n.Else != nil {
			printNode(b, n.Else, indent+"  ")
		}
	case *ForStmt:
		fmt.Fprintf(b, "%sForStmt(%s)\n", indent, n.Iterator.Lexeme)
		printNode(b, n.Iterable, indent+"  ")
		printNode(b, n.Body, indent+"  ")
	case *FunctionStmt:
		fmt.Fprintf(b, "%sFunctionStmt(%s) -> %s\n", indent, n.Name.Lexeme, n.ReturnType.String())
		for _, s := range n.Body {
			printNode(b, s, indent+"  ")
		}
	case *ReturnStmt:
		fmt.Fprintf(b, "%sReturnStmt\n", indent)
		if n.Value != nil {
			printNode(b, n.Value, indent+"  ")
		}
	case *BreakStmt:
		fmt.Fprintf(b, "%sBreakStmt\n", indent)
	case *ContinueStmt:
		fmt.Fprintf(b, "%sContinueStmt\n", indent)
	default:
		fmt.Fprintf(b, "%s<unknown node>\n", indent)
	}
}
