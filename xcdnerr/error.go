// Package xcdnerr defines the closed error taxonomy shared by the xCDN
// lexer, parser, and typed-literal codecs.
package xcdnerr

import "fmt"

// Kind identifies the category of an xCDN diagnostic. The set is closed:
// callers should switch on Kind rather than pattern-match Error() text.
type Kind int

const (
	// Eof indicates the input ended while a token or construct was incomplete.
	Eof Kind = iota
	// InvalidToken indicates a byte sequence the lexer could not tokenize.
	InvalidToken
	// Expected indicates the parser found a token where a different one was required.
	Expected
	// InvalidEscape indicates an unrecognized backslash escape in a quoted string.
	InvalidEscape
	// InvalidNumber indicates a malformed or out-of-range numeric literal.
	InvalidNumber
	// InvalidDecimal indicates a malformed d"..." literal (reserved; currently unvalidated).
	InvalidDecimal
	// InvalidDateTime indicates a malformed t"..." literal (reserved; currently unvalidated).
	InvalidDateTime
	// InvalidDuration indicates a malformed r"..." literal (reserved; currently unvalidated).
	InvalidDuration
	// InvalidUuid indicates a u"..." literal that fails structural UUID validation.
	InvalidUuid
	// InvalidBase64 indicates a b"..." literal containing a non-base64, non-whitespace byte.
	InvalidBase64
	// Message is a generic diagnostic not covered by a more specific kind.
	Message
	// OutOfMemory is reserved for allocation failure during parsing.
	OutOfMemory
)

// String returns the programmatic name of the error kind.
func (k Kind) String() string {
	switch k {
	case Eof:
		return "Eof"
	case InvalidToken:
		return "InvalidToken"
	case Expected:
		return "Expected"
	case InvalidEscape:
		return "InvalidEscape"
	case InvalidNumber:
		return "InvalidNumber"
	case InvalidDecimal:
		return "InvalidDecimal"
	case InvalidDateTime:
		return "InvalidDateTime"
	case InvalidDuration:
		return "InvalidDuration"
	case InvalidUuid:
		return "InvalidUuid"
	case InvalidBase64:
		return "InvalidBase64"
	case Message:
		return "Message"
	case OutOfMemory:
		return "OutOfMemory"
	default:
		return "(invalid)"
	}
}

// Span locates a position in xCDN source text. Line and Column are
// 1-based and count user-visible positions; Offset is the 0-based byte
// offset of the position's first byte.
type Span struct {
	Offset uint64
	Line   uint64
	Column uint64
}

// String returns "line:column" for use in diagnostic messages.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// Error is the single concrete error type returned by the lexer, parser,
// and typed-literal codecs. Every parse/lex failure produces exactly one
// Error and no partial tree.
type Error struct {
	Kind Kind
	Span Span
	msg  string
}

// New builds an Error with a preformatted message.
func New(kind Kind, span Span, msg string) *Error {
	return &Error{Kind: kind, Span: span, msg: msg}
}

// Newf builds an Error with a formatted message.
func Newf(kind Kind, span Span, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Span: span, msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface. The message text is for humans;
// it is not part of the API contract — tests must assert on Kind.
func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Span, e.msg)
}

// Is reports whether target is an *Error with the same Kind, so that
// callers may use errors.Is(err, xcdnerr.New(xcdnerr.Eof, ...)) style
// checks; in practice callers typically compare the Kind field directly.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
