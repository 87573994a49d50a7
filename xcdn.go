// Package xcdn provides the text↔tree pipeline for the xCDN
// configuration/data notation: Parse converts source text to an
// ast.Document, and the Format functions convert a Document back to
// text in pretty or compact form.
package xcdn

import (
	"github.com/gslf/xcdn-go/ast"
	"github.com/gslf/xcdn-go/internal/parser"
	"github.com/gslf/xcdn-go/internal/serializer"
	"github.com/gslf/xcdn-go/xcdnerr"
)

// Parse parses a complete xCDN document from text, or returns a non-nil
// error on failure. No partial Document is ever returned.
func Parse(text string) (*ast.Document, error) {
	return ParseBytes([]byte(text))
}

// ParseBytes parses a complete xCDN document from src, or returns a
// non-nil error on failure.
func ParseBytes(src []byte) (*ast.Document, error) {
	doc, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseBounded parses the first length bytes of text as a complete xCDN
// document, or returns a non-nil error on failure. A negative length is
// itself an error rather than being silently clamped to 0.
func ParseBounded(text string, length int) (*ast.Document, error) {
	if length < 0 {
		return nil, xcdnerr.Newf(xcdnerr.Message, xcdnerr.Span{}, "negative length %d", length)
	}
	if length > len(text) {
		length = len(text)
	}
	return ParseBytes([]byte(text[:length]))
}

// Format renders doc per the given options.
func Format(doc *ast.Document, opts serializer.Options) string {
	return serializer.Serialize(doc, opts)
}

// FormatPretty renders doc using the default pretty preset (2-space
// indent, trailing commas).
func FormatPretty(doc *ast.Document) string {
	return serializer.Serialize(doc, serializer.Pretty)
}

// FormatCompact renders doc using the default compact preset (no
// newlines, no indentation, no trailing commas).
func FormatCompact(doc *ast.Document) string {
	return serializer.Serialize(doc, serializer.Compact)
}

// Kind re-exports xcdnerr.Kind so callers can switch on error kind
// without importing the xcdnerr package directly.
type Kind = xcdnerr.Kind

// ErrorKindOf returns the Kind of err if it is an xCDN diagnostic, or
// false if err did not originate from this package.
func ErrorKindOf(err error) (Kind, bool) {
	e, ok := err.(*xcdnerr.Error)
	if !ok {
		return 0, false
	}
	return e.Kind, true
}
