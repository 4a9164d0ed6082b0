// Package format implements rox's token-stream formatter, a supplemented
// feature (SPEC_FULL.md §7) absent from spec.md's distillation but present
// in the original implementation. It is grounded directly on
// original_source/src/formatter.cc's Formatter::format: a single linear
// pass over the token stream tracking an indent level and a
// start-of-line flag, with no re-parse and no AST involved — formatting
// is a lexical, not syntactic, concern.
package format

import (
	"strings"

	"github.com/roxlang/roxc/internal/compiler/lexer"
	"github.com/roxlang/roxc/internal/compiler/token"
)

// Tokens renders toks (including token.Comment entries, which the parser
// filters but the formatter must preserve) as formatted source text.
func Tokens(toks []token.Token) string {
	var out strings.Builder
	indentLevel := 0
	startOfLine := true

	for i, t := range toks {
		if t.Kind == token.EOF {
			break
		}

		if t.Kind == token.RBrace && startOfLine && indentLevel > 0 {
			indentLevel--
		}

		if i > 0 {
			gap := t.Line - toks[i-1].Line
			if gap > 1 {
				if !startOfLine {
					out.WriteString("\n")
					startOfLine = true
				}
				out.WriteString("\n")
			}
		}

		if startOfLine {
			for k := 0; k < indentLevel; k++ {
				out.WriteString("    ")
			}
			startOfLine = false
		}

		out.WriteString(t.Lexeme)

		newlineAfter := false
		spaceAfter := false

		switch t.Kind {
		case token.LBrace:
			newlineAfter = true
			indentLevel++
		case token.RBrace, token.Semicolon, token.Comment:
			newlineAfter = true
		default:
			if i+1 < len(toks) {
				next := toks[i+1]
				switch next.Kind {
				case token.Semicolon, token.Comma, token.Dot, token.RParen, token.LBracket, token.RBracket:
					spaceAfter = false
				default:
					switch t.Kind {
					case token.LParen, token.LBracket, token.Dot:
						spaceAfter = false
					default:
						spaceAfter = true
					}
				}

				if t.Kind == token.Identifier && next.Kind == token.LParen {
					spaceAfter = false
				}
				if t.Kind == token.Print && next.Kind == token.LParen {
					spaceAfter = false
				}
				if t.Kind == token.Minus && next.Kind == token.Greater {
					spaceAfter = false
				}
				if (t.Kind == token.If || t.Kind == token.For) && next.Kind == token.LParen {
					spaceAfter = true
				}
			}
		}

		if newlineAfter {
			out.WriteString("\n")
			startOfLine = true
		} else if spaceAfter {
			out.WriteString(" ")
		}
	}

	return out.String()
}

// Source lexes src and re-renders it through Tokens, the entry point the
// `roxc fmt` subcommand calls.
func Source(src string) (string, error) {
	toks, err := lexer.Tokens(src)
	if err != nil {
		return "", err
	}
	return Tokens(toks), nil
}
