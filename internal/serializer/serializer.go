// Package serializer renders an ast.Document back to xCDN text, in
// either pretty or compact form (spec §4.5).
package serializer

import (
	"strconv"
	"strings"

	"github.com/gslf/xcdn-go/ast"
)

// Options configures serialization.
type Options struct {
	// Pretty enables newlines and indentation.
	Pretty bool
	// Indent is the number of spaces per indentation level (pretty mode only).
	Indent int
	// TrailingCommas enables a trailing comma after the last element of
	// a container/directive list.
	TrailingCommas bool
}

// Pretty is the default pretty-printing preset: 2-space indent, trailing commas enabled.
var Pretty = Options{Pretty: true, Indent: 2, TrailingCommas: true}

// Compact is the default compact preset: no newlines, no indentation, no trailing commas.
var Compact = Options{Pretty: false, Indent: 0, TrailingCommas: false}

type writer struct {
	b     strings.Builder
	opts  Options
	depth int
}

// Serialize renders doc per opts and returns the resulting text.
func Serialize(doc *ast.Document, opts Options) string {
	w := &writer{opts: opts}
	w.document(doc)
	return w.b.String()
}

func (w *writer) indent() {
	if w.opts.Pretty && w.depth > 0 {
		w.b.WriteString(strings.Repeat(" ", w.opts.Indent*w.depth))
	}
}

func (w *writer) newline() {
	if w.opts.Pretty {
		w.b.WriteByte('\n')
	}
}

func (w *writer) document(doc *ast.Document) {
	for _, d := range doc.Directives {
		w.b.WriteByte('$')
		w.b.WriteString(d.Name)
		w.b.WriteString(": ")
		w.value(d.Value, w.opts)
		if w.opts.TrailingCommas {
			w.b.WriteByte(',')
		}
		w.b.WriteByte('\n')
	}

	for i, n := range doc.Top {
		if i > 0 && w.opts.Pretty {
			w.b.WriteByte('\n')
		}
		w.node(n)
	}
}

// node emits a node's decorations in source order, then its value.
func (w *writer) node(n *ast.Node) {
	for _, a := range n.Annotations {
		w.annotation(a)
		w.b.WriteByte(' ')
	}
	for _, t := range n.Tags {
		w.b.WriteByte('#')
		w.b.WriteString(t)
		w.b.WriteByte(' ')
	}
	w.value(n.Value, w.opts)
}

// annotation emits `@name` or `@name(arg1, arg2)`; arguments are always
// serialized compact, regardless of the outer format (spec §4.5).
func (w *writer) annotation(a *ast.Annotation) {
	w.b.WriteByte('@')
	w.b.WriteString(a.Name)
	if len(a.Args) == 0 {
		return
	}
	w.b.WriteByte('(')
	for i, arg := range a.Args {
		if i > 0 {
			w.b.WriteString(", ")
		}
		w.value(arg, Compact)
	}
	w.b.WriteByte(')')
}

func (w *writer) value(v ast.Value, opts Options) {
	switch v.Kind() {
	case ast.Null:
		w.b.WriteString("null")
	case ast.Bool:
		if v.AsBool() {
			w.b.WriteString("true")
		} else {
			w.b.WriteString("false")
		}
	case ast.Int:
		w.b.WriteString(strconv.FormatInt(v.AsInt(), 10))
	case ast.Float:
		w.b.WriteString(strconv.FormatFloat(v.AsFloat(), 'g', -1, 64))
	case ast.String:
		writeQuotedString(&w.b, v.AsString())
	case ast.Decimal:
		w.b.WriteString(`d"`)
		w.b.WriteString(v.AsText())
		w.b.WriteByte('"')
	case ast.DateTime:
		w.b.WriteString(`t"`)
		w.b.WriteString(v.AsText())
		w.b.WriteByte('"')
	case ast.Duration:
		w.b.WriteString(`r"`)
		w.b.WriteString(v.AsText())
		w.b.WriteByte('"')
	case ast.UUID:
		w.b.WriteString(`u"`)
		w.b.WriteString(v.AsText())
		w.b.WriteByte('"')
	case ast.Bytes:
		w.b.WriteString(`b"`)
		w.b.WriteString(ast.EncodeBase64Standard(v.AsBytes()))
		w.b.WriteByte('"')
	case ast.Array:
		w.array(v.AsArray(), opts)
	case ast.Object:
		w.object(v.AsObject(), opts)
	}
}

func (w *writer) array(items []*ast.Node, opts Options) {
	saved := w.opts
	w.opts = opts
	defer func() { w.opts = saved }()

	w.b.WriteByte('[')
	if len(items) == 0 {
		w.b.WriteByte(']')
		return
	}
	w.newline()
	w.depth++
	for i, item := range items {
		w.indent()
		w.node(item)
		if i < len(items)-1 || w.opts.TrailingCommas {
			w.b.WriteByte(',')
		}
		if !w.opts.Pretty && i < len(items)-1 {
			w.b.WriteByte(' ')
		}
		w.newline()
	}
	w.depth--
	w.indent()
	w.b.WriteByte(']')
}

func (w *writer) object(obj *ast.ObjectValue, opts Options) {
	saved := w.opts
	w.opts = opts
	defer func() { w.opts = saved }()

	w.b.WriteByte('{')
	keys := obj.Keys()
	if len(keys) == 0 {
		w.b.WriteByte('}')
		return
	}
	w.newline()
	w.depth++
	for i, key := range keys {
		w.indent()
		writeKey(&w.b, key)
		w.b.WriteString(": ")
		w.node(obj.Get(key))
		if i < len(keys)-1 || w.opts.TrailingCommas {
			w.b.WriteByte(',')
		}
		if !w.opts.Pretty && i < len(keys)-1 {
			w.b.WriteByte(' ')
		}
		w.newline()
	}
	w.depth--
	w.indent()
	w.b.WriteByte('}')
}

func writeKey(b *strings.Builder, key string) {
	if ast.IsBareIdentifier(key) {
		b.WriteString(key)
		return
	}
	writeQuotedString(b, key)
}

// writeQuotedString escapes s per spec §4.5: \\, ", 0x0A, 0x0D, 0x09 get
// short escapes; other control bytes < 0x20 become \uXXXX (uppercase);
// everything else, including non-ASCII UTF-8 bytes, passes through.
func writeQuotedString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' || c == '"':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20:
			b.WriteString(`\u`)
			b.WriteString(strings.ToUpper(padHex(c)))
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}

func padHex(c byte) string {
	s := strconv.FormatInt(int64(c), 16)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
