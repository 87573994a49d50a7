package lexer

import (
	"strconv"

	"github.com/gslf/xcdn-go/xcdnerr"
)

// Lexer scans an in-memory xCDN source buffer into a token stream. It is
// not re-entrant across inputs: each Lexer instance scans exactly one
// buffer, mirroring the teacher's Scanner contract.
type Lexer struct {
	src    []byte
	pos    int
	line   uint64
	column uint64
}

// New creates a Lexer over src.
func New(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, column: 1}
}

// span returns the current position as a Span, suitable for the first
// byte of the next token.
func (l *Lexer) span() xcdnerr.Span {
	return xcdnerr.Span{Offset: uint64(l.pos), Line: l.line, Column: l.column}
}

// peekByte returns the byte at the current position, or 0 with ok=false at EOF.
func (l *Lexer) peekByte() (byte, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

// peekByteAt returns the byte offset bytes ahead of the current position, or 0 with ok=false if out of range.
func (l *Lexer) peekByteAt(offset int) (byte, bool) {
	i := l.pos + offset
	if i >= len(l.src) {
		return 0, false
	}
	return l.src[i], true
}

// advance consumes and returns the current byte, updating line/column
// per spec §3: column resets to 1 on '\n'; '\r' and '\t' advance the
// column by one like any other byte.
func (l *Lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return c
}

// Next returns the next token from the input, or a non-nil error on failure.
func (l *Lexer) Next() (Token, *xcdnerr.Error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return Token{}, err
	}

	start := l.span()
	c, ok := l.peekByte()
	if !ok {
		return Token{Kind: EOF, Span: start}, nil
	}

	switch c {
	case '{':
		l.advance()
		return Token{Kind: BraceOpen, Span: start}, nil
	case '}':
		l.advance()
		return Token{Kind: BraceClose, Span: start}, nil
	case '[':
		l.advance()
		return Token{Kind: BracketOpen, Span: start}, nil
	case ']':
		l.advance()
		return Token{Kind: BracketClose, Span: start}, nil
	case '(':
		l.advance()
		return Token{Kind: ParenOpen, Span: start}, nil
	case ')':
		l.advance()
		return Token{Kind: ParenClose, Span: start}, nil
	case ':':
		l.advance()
		return Token{Kind: Colon, Span: start}, nil
	case ',':
		l.advance()
		return Token{Kind: Comma, Span: start}, nil
	case '$':
		l.advance()
		return Token{Kind: Dollar, Span: start}, nil
	case '#':
		l.advance()
		return Token{Kind: Hash, Span: start}, nil
	case '@':
		l.advance()
		return Token{Kind: At, Span: start}, nil
	case '"':
		return l.readStringOrTriple(start)
	}

	if isTypedPrefixLetter(c) {
		if next, ok := l.peekByteAt(1); ok && next == '"' {
			kind := typedKindFor(c)
			l.advance() // the prefix letter
			return l.readTypedQuoted(start, kind)
		}
	}

	if isDigit(c) || c == '+' || c == '-' || c == '.' {
		return l.readNumber(start)
	}

	if isIdentStart(c) {
		return l.readIdentOrKeyword(start)
	}

	l.advance()
	return Token{}, xcdnerr.Newf(xcdnerr.InvalidToken, start, "unexpected byte %q", c)
}

func isTypedPrefixLetter(c byte) bool {
	switch c {
	case 'd', 'b', 'u', 't', 'r':
		return true
	default:
		return false
	}
}

func typedKindFor(c byte) Kind {
	switch c {
	case 'd':
		return DecimalLit
	case 'b':
		return BytesLit
	case 'u':
		return UUIDLit
	case 't':
		return DateTimeLit
	case 'r':
		return DurationLit
	default:
		panic("unreachable")
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_'
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '-'
}

// skipWhitespaceAndComments consumes whitespace, line comments, and
// block comments. An unterminated block comment silently consumes to
// end-of-input with no error; the caller's subsequent peek sees EOF.
func (l *Lexer) skipWhitespaceAndComments() *xcdnerr.Error {
	for {
		c, ok := l.peekByte()
		if !ok {
			return nil
		}
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance()
		case c == '/' && peekIs(l, 1, '/'):
			l.advance()
			l.advance()
			for {
				c, ok := l.peekByte()
				if !ok || c == '\n' {
					break
				}
				l.advance()
			}
		case c == '/' && peekIs(l, 1, '*'):
			l.advance()
			l.advance()
			for {
				c, ok := l.peekByte()
				if !ok {
					return nil
				}
				if c == '*' && peekIs(l, 1, '/') {
					l.advance()
					l.advance()
					break
				}
				l.advance()
			}
		default:
			return nil
		}
	}
}

func peekIs(l *Lexer, offset int, want byte) bool {
	c, ok := l.peekByteAt(offset)
	return ok && c == want
}

// readIdentOrKeyword reads a bare identifier and classifies it as a
// keyword (true/false/null) or a generic Ident.
func (l *Lexer) readIdentOrKeyword(start xcdnerr.Span) (Token, *xcdnerr.Error) {
	begin := l.pos
	for {
		c, ok := l.peekByte()
		if !ok || !isIdentCont(c) {
			break
		}
		l.advance()
	}
	text := string(l.src[begin:l.pos])
	switch text {
	case "true":
		return Token{Kind: True, Text: text, Span: start}, nil
	case "false":
		return Token{Kind: False, Text: text, Span: start}, nil
	case "null":
		return Token{Kind: Null, Text: text, Span: start}, nil
	default:
		return Token{Kind: Ident, Text: text, Span: start}, nil
	}
}

// readNumber reads a decimal/float literal per spec §4.2's numeric grammar:
// an optional sign, then digits, dot, and exponent marker mixed freely, with
// at most one dot and one exponent and no requirement that a digit sit
// immediately next to the dot — matching the reference scanner's
// read_number, which accepts both ".5" and "1." as floats and only demands
// that some digit appear somewhere in the token.
func (l *Lexer) readNumber(start xcdnerr.Span) (Token, *xcdnerr.Error) {
	begin := l.pos
	hadDigits, hadDot, hadExp := false, false, false

	if c, ok := l.peekByte(); ok && (c == '+' || c == '-') {
		l.advance()
	}

scan:
	for {
		c, ok := l.peekByte()
		if !ok {
			break
		}
		switch {
		case isDigit(c):
			hadDigits = true
			l.advance()
		case c == '.' && !hadDot && !hadExp:
			hadDot = true
			l.advance()
		case (c == 'e' || c == 'E') && !hadExp:
			hadExp = true
			l.advance()
			if sign, ok := l.peekByte(); ok && (sign == '+' || sign == '-') {
				l.advance()
			}
		default:
			break scan
		}
	}

	if !hadDigits {
		return Token{}, xcdnerr.New(xcdnerr.InvalidNumber, start, "no digits in number")
	}

	text := string(l.src[begin:l.pos])
	if hadDot || hadExp {
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return Token{}, xcdnerr.Newf(xcdnerr.InvalidNumber, start, "invalid float literal %q", text)
		}
		return Token{Kind: Float, Text: text, Span: start}, nil
	}

	if _, err := strconv.ParseInt(text, 10, 64); err != nil {
		return Token{}, xcdnerr.Newf(xcdnerr.InvalidNumber, start, "integer literal %q out of range", text)
	}
	return Token{Kind: Int, Text: text, Span: start}, nil
}
