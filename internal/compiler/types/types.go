// Package types models rox's type annotations (spec.md §3.2): a closed,
// four-shape variant with structural equality via a canonical string form.
// This generalizes the teacher's flat symbols.SymbolInfo (a single string
// tag plus a width) into an owning tree that can represent list[T],
// dictionary[K,V], and result[T] without string-encoding their structure.
package types

import (
	"fmt"

	"github.com/roxlang/roxc/internal/compiler/token"
)

// Kind tags which of the four shapes a Type holds.
type Kind int

const (
	KindPrimitive Kind = iota
	KindList
	KindDictionary
	KindResult
)

// Type is the variant described in spec.md §3.2. Exactly one field group is
// meaningful for a given Kind; Type owns its children exclusively.
type Type struct {
	Kind Kind

	// Primitive holds the token kind for Kind == KindPrimitive: one of
	// Int64, Float64, Bool, Char, StringType, None.
	Primitive token.Kind

	// Element is the element type for KindList, and the inner type for
	// KindResult.
	Element *Type

	// Key and Value are populated for KindDictionary.
	Key, Value *Type
}

// Primitive type constructors — these are the only primitive shapes
// spec.md §3.2 names.
func Int64() *Type      { return &Type{Kind: KindPrimitive, Primitive: token.Int64} }
func Float64() *Type    { return &Type{Kind: KindPrimitive, Primitive: token.Float64} }
func Bool() *Type       { return &Type{Kind: KindPrimitive, Primitive: token.Bool} }
func Char() *Type       { return &Type{Kind: KindPrimitive, Primitive: token.Char} }
func StringT() *Type    { return &Type{Kind: KindPrimitive, Primitive: token.StringType} }
func NoneT() *Type      { return &Type{Kind: KindPrimitive, Primitive: token.None} }
func List(el *Type) *Type {
	return &Type{Kind: KindList, Element: el}
}
func Dictionary(key, val *Type) *Type {
	return &Type{Kind: KindDictionary, Key: key, Value: val}
}
func Result(inner *Type) *Type {
	return &Type{Kind: KindResult, Element: inner}
}

// String renders the canonical form spec.md §3.2 requires for structural
// equality: "list[int64]", "dictionary[string, int64]", "result[char]".
func (t *Type) String() string {
	if t == nil {
		return "unknown"
	}
	switch t.Kind {
	case KindPrimitive:
		return primitiveName(t.Primitive)
	case KindList:
		return fmt.Sprintf("list[%s]", t.Element.String())
	case KindDictionary:
		return fmt.Sprintf("dictionary[%s, %s]", t.Key.String(), t.Value.String())
	case KindResult:
		return fmt.Sprintf("result[%s]", t.Element.String())
	default:
		return "unknown"
	}
}

func primitiveName(k token.Kind) string {
	switch k {
	case token.Int64:
		return "int64"
	case token.Float64:
		return "float64"
	case token.Bool:
		return "bool"
	case token.Char:
		return "char"
	case token.StringType:
		return "string"
	case token.None:
		return "none"
	default:
		return "unknown"
	}
}

// Equal reports structural equality via the canonical string form, per
// spec.md §3.2.
func (t *Type) Equal(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.String() == other.String()
}

// Clone deep-copies t, since a Type owns its children exclusively.
func (t *Type) Clone() *Type {
	if t == nil {
		return nil
	}
	clone := &Type{Kind: t.Kind, Primitive: t.Primitive}
	clone.Element = t.Element.Clone()
	clone.Key = t.Key.Clone()
	clone.Value = t.Value.Clone()
	return clone
}

// IsNone reports whether t is the primitive none type.
func (t *Type) IsNone() bool {
	return t != nil && t.Kind == KindPrimitive && t.Primitive == token.None
}
