// Package token defines the lexical vocabulary of September source text.
package token

import "fmt"

// Kind is the symbolic tag of a token.
type Kind string

const (
	Id           Kind = "id"
	Int          Kind = "int"
	Float        Kind = "float"
	Str          Kind = "str"
	Operator     Kind = "operator"
	OpenBracket  Kind = "openbracket"
	CloseBracket Kind = "closebracket"
	LParen       Kind = "("
	RParen       Kind = ")"
	LBrace       Kind = "{"
	RBrace       Kind = "}"
	Comma        Kind = ","
	Semicolon    Kind = ";"
	Colon        Kind = ":"
	Pipe         Kind = "|"
	Comment      Kind = "comment"
	EOF          Kind = "end of file"
)

// Location is a 1-based line/column position of a token's first character.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Token is a single lexical unit produced by the lexer.
type Token struct {
	Kind  Kind
	Raw   string
	Value any // parsed int/float, de-escaped string, or == Raw otherwise
	Loc   Location

	// Counterpart holds the matching closer for an OpenBracket token, and
	// is nil for every other kind.
	Counterpart *Token
}

func (t Token) String() string {
	if t.Kind == Kind(t.Raw) {
		return t.Raw
	}
	return fmt.Sprintf("%s:'%s'", t.Kind, t.Raw)
}

// terminatorSet is the set of token kinds after which ASI may fire.
var terminatorSet = map[Kind]bool{
	Id: true, Int: true, Float: true, Str: true,
	CloseBracket: true, RParen: true, RBrace: true,
}

// IsTerminator reports whether a token of this kind can end a statement
// for the purposes of automatic semicolon insertion.
func (k Kind) IsTerminator() bool {
	return terminatorSet[k]
}

// suppressorSet is the set of token kinds that suppress ASI when they
// appear as the next incoming token.
var suppressorSet = map[Kind]bool{
	Operator: true,
}

// IsSuppressor reports whether a token of this kind blocks ASI from
// firing before it.
func (k Kind) IsSuppressor() bool {
	return suppressorSet[k]
}
