package lexer

import "github.com/gslf/xcdn-go/xcdnerr"

// readStringOrTriple reads a `"..."` or `"""..."""` string starting at
// the opening quote (not yet consumed).
func (l *Lexer) readStringOrTriple(start xcdnerr.Span) (Token, *xcdnerr.Error) {
	if peekIs(l, 1, '"') && peekIs(l, 2, '"') {
		l.advance()
		l.advance()
		l.advance()
		return l.readTripleBody(start)
	}
	l.advance() // opening quote
	return l.readQuotedBody(start, String)
}

// readTypedQuoted reads the `"..."` body of a typed literal whose prefix
// letter has already been consumed by the caller.
func (l *Lexer) readTypedQuoted(start xcdnerr.Span, kind Kind) (Token, *xcdnerr.Error) {
	l.advance() // opening quote
	return l.readQuotedBody(start, kind)
}

// readQuotedBody reads a single-quoted string body per spec §4.2: \" and
// \\ decode to the unescaped byte; \uXXXX and \b \f \n \r \t \/ are
// validated but retained verbatim in their escaped form; any other
// escape is InvalidEscape; an unterminated string is Eof.
func (l *Lexer) readQuotedBody(start xcdnerr.Span, kind Kind) (Token, *xcdnerr.Error) {
	var out []byte
	for {
		c, ok := l.peekByte()
		if !ok {
			return Token{}, xcdnerr.New(xcdnerr.Eof, start, "unterminated string")
		}
		if c == '"' {
			l.advance()
			return Token{Kind: kind, Text: string(out), Span: start}, nil
		}
		if c != '\\' {
			out = append(out, c)
			l.advance()
			continue
		}

		escSpan := l.span()
		l.advance() // backslash
		e, ok := l.peekByte()
		if !ok {
			return Token{}, xcdnerr.New(xcdnerr.Eof, start, "unterminated string")
		}
		switch e {
		case '"':
			out = append(out, '"')
			l.advance()
		case '\\':
			out = append(out, '\\')
			l.advance()
		case 'b', 'f', 'n', 'r', 't', '/':
			out = append(out, '\\', e)
			l.advance()
		case 'u':
			l.advance()
			hex := make([]byte, 0, 4)
			for i := 0; i < 4; i++ {
				c, ok := l.peekByte()
				if !ok {
					return Token{}, xcdnerr.New(xcdnerr.Eof, start, "unterminated string")
				}
				if !isHexDigit(c) {
					return Token{}, xcdnerr.New(xcdnerr.InvalidEscape, escSpan, "\\u escape requires four hex digits")
				}
				hex = append(hex, c)
				l.advance()
			}
			out = append(out, '\\', 'u')
			out = append(out, hex...)
		default:
			return Token{}, xcdnerr.Newf(xcdnerr.InvalidEscape, escSpan, "invalid escape sequence \\%c", e)
		}
	}
}

// readTripleBody reads a `"""..."""` body with no escape processing;
// inner newlines are preserved verbatim. An unterminated triple-quoted
// string is Eof.
func (l *Lexer) readTripleBody(start xcdnerr.Span) (Token, *xcdnerr.Error) {
	begin := l.pos
	for {
		c, ok := l.peekByte()
		if !ok {
			return Token{}, xcdnerr.New(xcdnerr.Eof, start, "unterminated triple-quoted string")
		}
		if c == '"' && peekIs(l, 1, '"') && peekIs(l, 2, '"') {
			text := string(l.src[begin:l.pos])
			l.advance()
			l.advance()
			l.advance()
			return Token{Kind: TripleString, Text: text, Span: start}, nil
		}
		l.advance()
	}
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
