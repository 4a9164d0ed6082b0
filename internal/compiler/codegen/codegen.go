// Package codegen implements rox's code generator (spec.md §4.4): an AST
// walker holding a scope stack and a strings.Builder output buffer, the
// same shape as the teacher's emitter.Emitter (builder, errors,
// scope-aware emit helpers, emitIndent/emit/emitLine), generalized from
// COBOL column-aware emission to plain C++ statement emission. It also
// carries the flow-sensitive result-refinement analysis and the
// roxv26_-prefix identifier policy that the teacher's COBOL target never
// needed, grounded directly on original_source/src/codegen.cc's Codegen
// class (enterScope/exitScope/declareVar/resolveVar/refineVar/
// invalidateVar, genStmt/genExpr type-switch dispatch, sanitize).
package codegen

import (
	"fmt"
	"strings"

	"github.com/roxlang/roxc/internal/compiler/ast"
	"github.com/roxlang/roxc/internal/compiler/scope"
	"github.com/roxlang/roxc/internal/compiler/token"
	"github.com/roxlang/roxc/internal/compiler/types"
)

// Error is a fatal codegen semantic error (spec.md §7): unsafe getValue,
// range arity/literal-zero-step, method-call type mismatch.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// Generator walks a Program and emits C++ text.
type Generator struct {
	out   strings.Builder
	scope *scope.Scope
	indent int

	// currentFunction is the sanitized name of the function currently being
	// emitted, used to special-case `main`'s return-type rewrite.
	currentFunction string

	err error
}

// Generate runs the full pipeline from a parsed Program to C++ text, per
// spec.md §4.4's contract.
func Generate(prog *ast.Program) (string, error) {
	g := &Generator{scope: scope.New(nil)}
	g.out.WriteString(preamble)
	for _, stmt := range prog.Statements {
		g.genStmt(stmt)
		if g.err != nil {
			return "", g.err
		}
	}
	return g.out.String(), nil
}

func (g *Generator) fail(line int, format string, args ...interface{}) {
	if g.err != nil {
		return
	}
	g.err = &Error{Line: line, Message: fmt.Sprintf(format, args...)}
}

func (g *Generator) failed() bool { return g.err != nil }

func (g *Generator) emitIndent() {
	for i := 0; i < g.indent; i++ {
		g.out.WriteString("  ")
	}
}

func (g *Generator) emit(s string) {
	g.out.WriteString(s)
}

func (g *Generator) emitLine(s string) {
	g.emitIndent()
	g.out.WriteString(s)
	g.out.WriteString("\n")
}

// sanitize implements the identifier emission policy of spec.md §4.4:
// keywords and builtins pass through unchanged; everything else gets the
// roxv26_ prefix. The lexer's rejection of that prefix on user source
// guarantees the two namespaces never collide.
func sanitize(name string) string {
	if _, isKeyword := token.Keywords[name]; isKeyword {
		return name
	}
	if token.Builtins[name] {
		return name
	}
	return token.ReservedPrefix + name
}

func (g *Generator) enterScope() {
	g.scope = scope.New(g.scope)
}

func (g *Generator) exitScope() {
	g.scope = g.scope.Outer()
}

func (g *Generator) declareVar(name string, t *types.Type, isConst bool) {
	_ = g.scope.Define(name, &scope.Binding{Type: t, IsConst: isConst})
}

// --- Type lowering (spec.md §4.4) ---

func lowerType(t *types.Type) string {
	if t == nil {
		return "auto"
	}
	switch t.Kind {
	case types.KindPrimitive:
		switch t.Primitive {
		case token.Int64:
			return "int64_t"
		case token.Float64:
			return "double"
		case token.Bool:
			return "bool"
		case token.Char:
			return "char"
		case token.StringType:
			return "RoxString"
		case token.None:
			return "None"
		}
	case types.KindList:
		return "std::vector<" + lowerType(t.Element) + ">"
	case types.KindDictionary:
		return "std::unordered_map<" + lowerType(t.Key) + ", " + lowerType(t.Value) + ">"
	case types.KindResult:
		return "rox_result<" + lowerType(t.Element) + ">"
	}
	return "auto"
}

// --- Statement lowering ---

func (g *Generator) genStmt(stmt ast.Stmt) {
	if g.failed() {
		return
	}
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		g.genBlock(s)
	case *ast.IfStmt:
		g.genIf(s)
	case *ast.ForStmt:
		g.genFor(s)
	case *ast.FunctionStmt:
		g.genFunction(s)
	case *ast.ReturnStmt:
		g.genReturn(s)
	case *ast.BreakStmt:
		g.emitLine("break;")
	case *ast.ContinueStmt:
		g.emitLine("continue;")
	case *ast.LetStmt:
		g.genLet(s)
	case *ast.ExprStmt:
		g.genExprStmt(s)
	default:
		g.fail(0, "internal error: unknown statement %T", stmt)
	}
}

func (g *Generator) genBlock(stmt *ast.BlockStmt) {
	g.emitLine("{")
	g.indent++
	g.enterScope()
	for _, s := range stmt.Statements {
		g.genStmt(s)
		if g.failed() {
			break
		}
	}
	g.exitScope()
	g.indent--
	g.emitLine("}")
}

// genIf implements spec.md §4.4's refinement contract: when the condition
// is exactly `isOk(v)` for a bare variable v, the then-branch gets a fresh
// scope frame shadowing v with isProvenOk=true. No refinement reaches the
// else branch.
func (g *Generator) genIf(stmt *ast.IfStmt) {
	refined := refinedVarName(stmt.Condition)

	g.emitIndent()
	g.emit("if (")
	g.genExpr(stmt.Condition)
	g.emit(") ")
	if g.failed() {
		return
	}

	g.enterScope()
	if refined != "" {
		g.scope.Refine(refined)
	}
	g.genThenOrElse(stmt.Then)
	g.exitScope()

	if stmt.Else != nil {
		g.emitIndent()
		g.emit("else ")
		g.enterScope()
		g.genThenOrElse(stmt.Else)
		g.exitScope()
	}
}

// genThenOrElse emits a branch body without introducing a second scope
// frame when the branch is already a block (genBlock pushes its own); a
// bare statement branch is emitted inline within the frame genIf pushed.
func (g *Generator) genThenOrElse(stmt ast.Stmt) {
	if block, ok := stmt.(*ast.BlockStmt); ok {
		g.emitLine("{")
		g.indent++
		for _, s := range block.Statements {
			g.genStmt(s)
			if g.failed() {
				break
			}
		}
		g.indent--
		g.emitLine("}")
		return
	}
	g.genStmt(stmt)
}

// refinedVarName reports the variable name when cond has the exact shape
// `isOk(v)` for a bare variable v, else "".
func refinedVarName(cond ast.Expr) string {
	call, ok := cond.(*ast.Call)
	if !ok || len(call.Args) != 1 {
		return ""
	}
	callee, ok := call.Callee.(*ast.Variable)
	if !ok || callee.Name.Lexeme != "isOk" {
		return ""
	}
	arg, ok := call.Args[0].(*ast.Variable)
	if !ok {
		return ""
	}
	return arg.Name.Lexeme
}

func (g *Generator) genFor(stmt *ast.ForStmt) {
	g.emitIndent()
	g.emit(fmt.Sprintf("for (auto %s : ", sanitize(stmt.Iterator.Lexeme)))
	g.genExpr(stmt.Iterable)
	if g.failed() {
		return
	}
	g.emit(") ")
	g.enterScope()
	g.declareVar(stmt.Iterator.Lexeme, nil, false)
	g.genThenOrElse(stmt.Body)
	g.exitScope()
}

func (g *Generator) genFunction(stmt *ast.FunctionStmt) {
	oldFn := g.currentFunction
	g.currentFunction = sanitize(stmt.Name.Lexeme)
	defer func() { g.currentFunction = oldFn }()

	g.enterScope()
	for _, param := range stmt.Params {
		g.declareVar(param.Name.Lexeme, param.Type, false)
	}

	if stmt.Name.Lexeme == "main" {
		g.emitLine("int main() {")
		g.indent++
		g.emitLine("std::cout << std::boolalpha;")
		for _, s := range stmt.Body {
			g.genStmt(s)
			if g.failed() {
				break
			}
		}
		g.emitLine("return 0;")
		g.indent--
		g.emitLine("}")
		g.exitScope()
		return
	}

	g.emitIndent()
	params := make([]string, len(stmt.Params))
	for i, param := range stmt.Params {
		params[i] = fmt.Sprintf("%s %s", lowerType(param.Type), sanitize(param.Name.Lexeme))
	}
	g.emit(fmt.Sprintf("%s %s(%s) {\n", lowerType(stmt.ReturnType), sanitize(stmt.Name.Lexeme), strings.Join(params, ", ")))
	g.indent++
	for _, s := range stmt.Body {
		g.genStmt(s)
		if g.failed() {
			break
		}
	}
	if stmt.ReturnType.IsNone() {
		g.emitLine("return none;")
	}
	g.indent--
	g.emitLine("}")
	g.exitScope()
}

func (g *Generator) genReturn(stmt *ast.ReturnStmt) {
	g.emitIndent()
	g.emit("return")
	if g.currentFunction == "main" {
		if stmt.Value != nil && !isNoneLiteral(stmt.Value) {
			g.emit(" (")
			g.genExpr(stmt.Value)
			g.emit(", 0)")
		} else {
			g.emit(" 0")
		}
	} else if stmt.Value != nil {
		g.emit(" ")
		g.genExpr(stmt.Value)
	} else {
		g.emit(" none")
	}
	g.emit(";\n")
}

func isNoneLiteral(e ast.Expr) bool {
	lit, ok := e.(*ast.Literal)
	return ok && lit.Value.Kind == token.None
}

func (g *Generator) genLet(stmt *ast.LetStmt) {
	g.emitIndent()
	if stmt.IsConst {
		g.emit("const ")
	}
	g.emit(lowerType(stmt.Type) + " " + sanitize(stmt.Name.Lexeme))
	g.declareVar(stmt.Name.Lexeme, stmt.Type, stmt.IsConst)

	if stmt.Initializer == nil {
		g.emit("{};\n")
		return
	}
	g.emit(" = ")

	// A list-literal initializer takes its element type from the declared
	// list type, closing the empty-list type-inference gap spec.md §4.4
	// and §8 call out (std::vector{} CTAD fails on an empty braced-init).
	if lit, ok := stmt.Initializer.(*ast.ListLiteral); ok && stmt.Type.Kind == types.KindList {
		g.emit(lowerType(stmt.Type) + "{")
		for i, el := range lit.Elements {
			if i > 0 {
				g.emit(", ")
			}
			g.genExpr(el)
		}
		g.emit("}")
		g.emit(";\n")
		return
	}

	g.genExpr(stmt.Initializer)
	g.emit(";\n")
}

func (g *Generator) genExprStmt(stmt *ast.ExprStmt) {
	g.emitIndent()
	g.genExpr(stmt.Expression)
	g.emit(";\n")
}

// --- Expression lowering ---

func (g *Generator) genExpr(expr ast.Expr) {
	if g.failed() {
		return
	}
	switch e := expr.(type) {
	case *ast.Binary:
		g.genBinary(e)
	case *ast.Logical:
		g.genLogical(e)
	case *ast.Unary:
		g.genUnary(e)
	case *ast.Literal:
		g.genLiteral(e)
	case *ast.Variable:
		g.emit(sanitize(e.Name.Lexeme))
	case *ast.Assignment:
		g.genAssignment(e)
	case *ast.Call:
		g.genCall(e)
	case *ast.MethodCall:
		g.genMethodCall(e)
	case *ast.ListLiteral:
		g.genListLiteral(e)
	default:
		g.fail(0, "internal error: unknown expression %T", expr)
	}
}

// genBinary rewrites `/` and `%` into the checked rox_div/rox_mod helpers
// (spec.md §4.4, §9's "fallible arithmetic"); every other arithmetic/
// comparison/equality operator is a direct, parenthesized host operator.
func (g *Generator) genBinary(e *ast.Binary) {
	switch e.Op.Kind {
	case token.Slash:
		g.emit("rox_div(")
		g.genExpr(e.Left)
		g.emit(", ")
		g.genExpr(e.Right)
		g.emit(")")
	case token.Percent:
		g.emit("rox_mod(")
		g.genExpr(e.Left)
		g.emit(", ")
		g.genExpr(e.Right)
		g.emit(")")
	default:
		g.emit("(")
		g.genExpr(e.Left)
		g.emit(" " + e.Op.Lexeme + " ")
		g.genExpr(e.Right)
		g.emit(")")
	}
}

func (g *Generator) genLogical(e *ast.Logical) {
	g.emit("(")
	g.genExpr(e.Left)
	if e.Op.Kind == token.Or {
		g.emit(" || ")
	} else {
		g.emit(" && ")
	}
	g.genExpr(e.Right)
	g.emit(")")
}

func (g *Generator) genUnary(e *ast.Unary) {
	if e.Op.Kind == token.Not {
		g.emit("(!")
	} else {
		g.emit("(" + e.Op.Lexeme)
	}
	g.genExpr(e.Operand)
	g.emit(")")
}

func (g *Generator) genLiteral(e *ast.Literal) {
	switch e.Value.Kind {
	case token.String:
		g.emit("rox_str(" + e.Value.Lexeme + ")")
	case token.NumberInt:
		// Explicit 64-bit signedness stabilizes container-element
		// deduction (spec.md §4.4) the way the original's `(int64_t)` cast
		// on integer literals does.
		g.emit("((int64_t)" + e.Value.Lexeme + ")")
	case token.True:
		g.emit("true")
	case token.False:
		g.emit("false")
	case token.None:
		g.emit("none")
	default:
		g.emit(e.Value.Lexeme)
	}
}

func (g *Generator) genAssignment(e *ast.Assignment) {
	g.scope.Invalidate(e.Name.Lexeme)
	g.emit("(" + sanitize(e.Name.Lexeme) + " = ")
	g.genExpr(e.Value)
	g.emit(")")
}

// genCall intercepts two callee shapes per spec.md §4.4: `range(a,b,c)`
// and an unsafe `getValue(v)` on a not-provably-Ok variable.
func (g *Generator) genCall(e *ast.Call) {
	if callee, ok := e.Callee.(*ast.Variable); ok {
		switch callee.Name.Lexeme {
		case "getValue":
			if len(e.Args) == 1 {
				if g.checkUnsafeGetValue(e.Args[0], callee.Name.Line) {
					return
				}
			}
		case "range":
			g.genRangeCall(e, callee.Name.Line)
			return
		}
	}

	g.genExpr(e.Callee)
	g.emit("(")
	for i, arg := range e.Args {
		if i > 0 {
			g.emit(", ")
		}
		g.genExpr(arg)
	}
	g.emit(")")
}

// checkUnsafeGetValue reports whether arg is a bare variable not provably
// Ok in scope, failing generation in that case (spec.md §4.4, §8). It
// returns true when it has already failed, so the caller can stop.
func (g *Generator) checkUnsafeGetValue(arg ast.Expr, line int) bool {
	v, ok := arg.(*ast.Variable)
	if !ok {
		return false
	}
	binding, found := g.scope.Lookup(v.Name.Lexeme)
	if found && !binding.IsProvenOk {
		g.fail(line, "getValue(%s) is unsafe: '%s' is not proven to be Ok in this scope. Wrap it in 'if (isOk(%s)) { ... }'.", v.Name.Lexeme, v.Name.Lexeme, v.Name.Lexeme)
		return true
	}
	return false
}

func (g *Generator) genRangeCall(e *ast.Call, line int) {
	if len(e.Args) != 3 {
		g.fail(line, "range() requires exactly 3 arguments: range(start, end, step)")
		return
	}
	if lit, ok := e.Args[2].(*ast.Literal); ok && lit.Value.Kind == token.NumberInt && lit.Value.Lexeme == "0" {
		g.fail(line, "range() step cannot be a literal 0")
		return
	}
	g.emit("RoxRange(")
	for i, arg := range e.Args {
		if i > 0 {
			g.emit(", ")
		}
		g.genExpr(arg)
	}
	g.emit(")")
}

// genMethodCall dispatches by method name over the closed set of
// spec.md §4.4/§6.3 container operations.
func (g *Generator) genMethodCall(e *ast.MethodCall) {
	switch e.Name.Lexeme {
	case "at":
		g.emit("rox_at(")
		g.genExpr(e.Object)
		g.emit(", ")
		if len(e.Args) > 0 {
			g.genExpr(e.Args[0])
		}
		g.emit(")")
	case "get":
		g.emit("rox_get(")
		g.genExpr(e.Object)
		g.emit(", ")
		if len(e.Args) > 0 {
			g.genExpr(e.Args[0])
		}
		g.emit(")")
	case "getValue":
		if g.checkUnsafeGetValue(e.Object, e.Name.Line) {
			return
		}
		g.emit("getValue(")
		g.genExpr(e.Object)
		g.emit(")")
	case "append":
		g.genAppend(e)
	case "pop":
		g.genExpr(e.Object)
		g.emit(".pop_back()")
	case "set":
		g.genDictSet(e)
	case "remove":
		g.emit("rox_remove(")
		g.genExpr(e.Object)
		g.emit(", ")
		g.genExpr(e.Args[0])
		g.emit(")")
	case "has":
		g.emit("rox_has(")
		g.genExpr(e.Object)
		g.emit(", ")
		g.genExpr(e.Args[0])
		g.emit(")")
	case "size":
		g.emit("((int64_t)")
		g.genExpr(e.Object)
		g.emit(".size())")
	case "getKeys":
		g.emit("rox_keys(")
		g.genExpr(e.Object)
		g.emit(")")
	default:
		g.fail(e.Name.Line, "unknown method '%s'", e.Name.Lexeme)
	}
}

func (g *Generator) genAppend(e *ast.MethodCall) {
	if len(e.Args) != 1 {
		g.fail(e.Name.Line, "list.append expects 1 argument")
		return
	}
	objType := g.inferType(e.Object)
	if objType != nil && objType.Kind == types.KindList {
		argType := g.inferType(e.Args[0])
		if argType != nil && !argType.Equal(objType.Element) {
			g.fail(e.Name.Line, "list append type mismatch: expected %s but got %s", objType.Element.String(), argType.String())
			return
		}
	}
	g.genExpr(e.Object)
	g.emit(".push_back(")
	g.genExpr(e.Args[0])
	g.emit(")")
}

func (g *Generator) genDictSet(e *ast.MethodCall) {
	if len(e.Args) != 2 {
		g.fail(e.Name.Line, "dictionary.set expects 2 arguments")
		return
	}
	objType := g.inferType(e.Object)
	if objType != nil && objType.Kind == types.KindDictionary {
		keyType := g.inferType(e.Args[0])
		if keyType != nil && !keyType.Equal(objType.Key) {
			g.fail(e.Name.Line, "dictionary key type mismatch: expected %s but got %s", objType.Key.String(), keyType.String())
			return
		}
		valType := g.inferType(e.Args[1])
		if valType != nil && !valType.Equal(objType.Value) {
			g.fail(e.Name.Line, "dictionary value type mismatch: expected %s but got %s", objType.Value.String(), valType.String())
			return
		}
	}
	g.emit("rox_set(")
	g.genExpr(e.Object)
	g.emit(", ")
	g.genExpr(e.Args[0])
	g.emit(", ")
	g.genExpr(e.Args[1])
	g.emit(")")
}

func (g *Generator) genListLiteral(e *ast.ListLiteral) {
	g.emit("std::vector{")
	for i, el := range e.Elements {
		if i > 0 {
			g.emit(", ")
		}
		g.genExpr(el)
	}
	g.emit("}")
}

// inferType implements spec.md §4.5's conservative local type inference,
// used only by codegen's method-call sanity checks: literals map to their
// obvious primitive, variables look up the nearest scope, everything else
// is unknown (nil).
func (g *Generator) inferType(expr ast.Expr) *types.Type {
	switch e := expr.(type) {
	case *ast.Literal:
		switch e.Value.Kind {
		case token.NumberInt:
			return types.Int64()
		case token.NumberFloat:
			return types.Float64()
		case token.String:
			return types.StringT()
		case token.CharLiteral:
			return types.Char()
		case token.True, token.False:
			return types.Bool()
		case token.None:
			return types.NoneT()
		}
	case *ast.Variable:
		if binding, ok := g.scope.Lookup(e.Name.Lexeme); ok {
			return binding.Type
		}
	}
	return nil
}
