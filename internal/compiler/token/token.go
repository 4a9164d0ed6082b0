// Package token defines the lexical vocabulary of rox: token kinds, the
// keyword and builtin tables of the reserved-identifier namespaces, and the
// roxv26_ prefix check enforced by the lexer.
package token

import "strings"

// Kind tags a Token. The set is closed and fixed at build time.
type Kind int

const (
	EOF Kind = iota
	Error
	Comment

	// punctuation
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Comma
	Dot
	Colon
	Semicolon
	Plus
	Minus
	Star
	Slash
	Percent

	// one/two character operators
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// literals
	Identifier
	String
	CharLiteral
	NumberInt
	NumberFloat

	// keywords
	And
	Or
	Not
	If
	Else
	For
	Function
	Const
	None
	True
	False
	Return
	Break
	Continue
	Type
	Default
	Print
	ReadLine

	// type keywords
	Int64
	Float64
	Bool
	Char
	StringType
	List
	Dictionary
	RoxResult
)

// Token is an immutable value produced once by the lexer. Lexeme is the
// exact source slice — for strings it still carries the enclosing quotes.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}

// Keywords is the reserved-word table of spec.md §3.6, including the type
// keywords (they double as both a keyword and a grammar-starting token).
var Keywords = map[string]Kind{
	"and":        And,
	"or":         Or,
	"not":        Not,
	"if":         If,
	"else":       Else,
	"for":        For,
	"function":   Function,
	"const":      Const,
	"none":       None,
	"true":       True,
	"false":      False,
	"return":     Return,
	"break":      Break,
	"continue":   Continue,
	"type":       Type,
	"default":    Default,
	"print":      Print,
	"read_line":  ReadLine,
	"int64":      Int64,
	"float64":    Float64,
	"bool":       Bool,
	"char":       Char,
	"string":     StringType,
	"list":       List,
	"dictionary": Dictionary,
	"rox_result": RoxResult,
}

// Builtins must be reachable as bare names in generated code and are never
// rewritten with the reserved prefix, even though they are ordinary
// identifiers to the lexer.
var Builtins = map[string]bool{
	"isOk":     true,
	"getValue": true,
	"getError": true,
	"ok":       true,
	"error":    true,
	"range":    true,
	"pi":       true,
	"e":        true,
	"EOF":      true,
	"main":     true,

	"int64_abs": true, "int64_min": true, "int64_max": true, "int64_pow": true,
	"float64_abs": true, "float64_min": true, "float64_max": true, "float64_pow": true,
	"float64_sqrt": true, "float64_sin": true, "float64_cos": true, "float64_tan": true,
	"float64_log": true, "float64_exp": true, "float64_floor": true, "float64_ceil": true,
}

// ReservedPrefix is forbidden on user identifiers and mandatory on every
// identifier the code generator emits that isn't a keyword or a builtin.
const ReservedPrefix = "roxv26_"

// HasReservedPrefix reports whether ident begins with the reserved prefix.
func HasReservedPrefix(ident string) bool {
	return strings.HasPrefix(ident, ReservedPrefix)
}

// Lookup classifies ident as a keyword Kind, or Identifier if it is a plain
// user identifier.
func Lookup(ident string) Kind {
	if kind, ok := Keywords[ident]; ok {
		return kind
	}
	return Identifier
}

// IsTypeStart reports whether kind begins a type annotation: a primitive
// type keyword, none, list, dictionary, or rox_result — used by the parser
// to decide declaration-vs-statement lookahead.
func IsTypeStart(kind Kind) bool {
	switch kind {
	case Int64, Float64, Bool, Char, StringType, None, List, Dictionary, RoxResult:
		return true
	default:
		return false
	}
}

// String renders a Kind for diagnostics and debug dumps.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Error:
		return "ERROR"
	case Comment:
		return "COMMENT"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case Comma:
		return ","
	case Dot:
		return "."
	case Colon:
		return ":"
	case Semicolon:
		return ";"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case Percent:
		return "%"
	case Bang:
		return "!"
	case BangEqual:
		return "!="
	case Equal:
		return "="
	case EqualEqual:
		return "=="
	case Greater:
		return ">"
	case GreaterEqual:
		return ">="
	case Less:
		return "<"
	case LessEqual:
		return "<="
	case Identifier:
		return "IDENTIFIER"
	case String:
		return "STRING"
	case CharLiteral:
		return "CHAR"
	case NumberInt:
		return "NUMBER_INT"
	case NumberFloat:
		return "NUMBER_FLOAT"
	default:
		for name, kind := range Keywords {
			if kind == k {
				return name
			}
		}
		return "UNKNOWN"
	}
}
