// Package lexer implements the xCDN tokenizer: a position-tracking,
// byte-by-byte scanner over an in-memory source buffer (spec §4.2).
// There is no streaming/incremental variant — spec.md's Non-goals
// explicitly exclude one — so the scanner owns the whole input slice.
package lexer

import "github.com/gslf/xcdn-go/xcdnerr"

// Kind identifies a lexical token type.
type Kind int

const (
	// EOF marks the end of input.
	EOF Kind = iota
	// BraceOpen is '{'.
	BraceOpen
	// BraceClose is '}'.
	BraceClose
	// BracketOpen is '['.
	BracketOpen
	// BracketClose is ']'.
	BracketClose
	// ParenOpen is '('.
	ParenOpen
	// ParenClose is ')'.
	ParenClose
	// Colon is ':'.
	Colon
	// Comma is ','.
	Comma
	// Dollar is '$'.
	Dollar
	// Hash is '#'.
	Hash
	// At is '@'.
	At
	// True is the keyword `true`.
	True
	// False is the keyword `false`.
	False
	// Null is the keyword `null`.
	Null
	// Ident is a bare identifier that is not a keyword.
	Ident
	// Int is an integer literal.
	Int
	// Float is a floating point literal.
	Float
	// String is a `"..."` quoted string; Text holds the decoded content.
	String
	// TripleString is a `"""..."""` triple-quoted string; Text holds the
	// raw (unescaped) inner content.
	TripleString
	// DecimalLit is a `d"..."` typed literal; Text holds the inner text.
	DecimalLit
	// BytesLit is a `b"..."` typed literal; Text holds the inner text.
	BytesLit
	// UUIDLit is a `u"..."` typed literal; Text holds the inner text.
	UUIDLit
	// DateTimeLit is a `t"..."` typed literal; Text holds the inner text.
	DateTimeLit
	// DurationLit is an `r"..."` typed literal; Text holds the inner text.
	DurationLit
)

// String returns the programmatic name of the token kind, for diagnostics.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case BraceOpen:
		return "'{'"
	case BraceClose:
		return "'}'"
	case BracketOpen:
		return "'['"
	case BracketClose:
		return "']'"
	case ParenOpen:
		return "'('"
	case ParenClose:
		return "')'"
	case Colon:
		return "':'"
	case Comma:
		return "','"
	case Dollar:
		return "'$'"
	case Hash:
		return "'#'"
	case At:
		return "'@'"
	case True:
		return "true"
	case False:
		return "false"
	case Null:
		return "null"
	case Ident:
		return "identifier"
	case Int:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case TripleString:
		return "triple-quoted string"
	case DecimalLit:
		return "decimal literal"
	case BytesLit:
		return "bytes literal"
	case UUIDLit:
		return "UUID literal"
	case DateTimeLit:
		return "datetime literal"
	case DurationLit:
		return "duration literal"
	default:
		return "(unknown token)"
	}
}

// Token is a single lexical token: its kind, decoded text (where
// applicable), and the span of its first byte.
type Token struct {
	Kind Kind
	Text string
	Span xcdnerr.Span
}
