// Package parser implements the xCDN recursive-descent parser: one
// token of lookahead over internal/lexer, building an ast.Document per
// the grammar in spec §4.3. There is no error recovery — the first
// error aborts parsing and no partial tree is returned (spec §4.3,
// "Error recovery. None.").
package parser

import (
	"github.com/gslf/xcdn-go/ast"
	"github.com/gslf/xcdn-go/internal/lexer"
	"github.com/gslf/xcdn-go/xcdnerr"
)

// Parser holds the lexer and its one-token lookahead.
type Parser struct {
	lex *lexer.Lexer
	cur lexer.Token
}

// New creates a Parser over src and primes its first lookahead token.
func New(src []byte) (*Parser, *xcdnerr.Error) {
	p := &Parser{lex: lexer.New(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// advance discards the current lookahead token and reads the next one.
func (p *Parser) advance() *xcdnerr.Error {
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

// Parse parses a complete document: an optional prolog followed by
// either an implicit top-level object, a stream of nodes, or nothing.
func Parse(src []byte) (*ast.Document, *xcdnerr.Error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	return p.parseDocument()
}

func (p *Parser) parseDocument() (*ast.Document, *xcdnerr.Error) {
	doc := ast.New()
	if err := p.parseProlog(doc); err != nil {
		return nil, err
	}
	if err := p.parseTop(doc); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.EOF {
		return nil, xcdnerr.Newf(xcdnerr.Expected, p.cur.Span, "expected end of input, found %s", p.cur.Kind)
	}
	return doc, nil
}

// parseProlog consumes `$name: value (,)?` directives for as long as the
// lookahead is '$'.
func (p *Parser) parseProlog(doc *ast.Document) *xcdnerr.Error {
	for p.cur.Kind == lexer.Dollar {
		if err := p.advance(); err != nil {
			return err
		}
		if p.cur.Kind != lexer.Ident {
			return xcdnerr.Newf(xcdnerr.Expected, p.cur.Span, "expected directive name, found %s", p.cur.Kind)
		}
		name := p.cur.Text
		if err := p.advance(); err != nil {
			return err
		}
		if p.cur.Kind != lexer.Colon {
			return xcdnerr.Newf(xcdnerr.Expected, p.cur.Span, "expected ':' after directive name, found %s", p.cur.Kind)
		}
		if err := p.advance(); err != nil {
			return err
		}
		// A directive's value is a bare Value, never a decorated Node
		// (spec §3: "value ... not a decorated node").
		v, err := p.parseValue()
		if err != nil {
			return err
		}
		doc.PushDirective(name, v)

		if p.cur.Kind == lexer.Comma {
			if err := p.advance(); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseTop implements the top-level disambiguation state machine of
// spec §4.3: EOF yields no top-level values; an Ident/String key
// followed by ':' begins an implicit top-level object; any other
// leading token begins a stream of nodes.
func (p *Parser) parseTop(doc *ast.Document) *xcdnerr.Error {
	switch p.cur.Kind {
	case lexer.EOF:
		return nil

	case lexer.Ident:
		firstKey := p.cur
		if err := p.advance(); err != nil {
			return err
		}
		if p.cur.Kind == lexer.Colon {
			return p.parseImplicitObject(doc, firstKey.Text)
		}
		return xcdnerr.New(xcdnerr.Expected, firstKey.Span, "expected ':' after top-level key")

	case lexer.String:
		firstTok := p.cur
		if err := p.advance(); err != nil {
			return err
		}
		if p.cur.Kind == lexer.Colon {
			return p.parseImplicitObject(doc, firstTok.Text)
		}
		// Fall back to stream mode: the consumed String token is itself
		// the first (undecorated) top-level value.
		first := ast.NewNode(ast.StringValue(firstTok.Text))
		doc.PushTop(first)
		return p.parseStream(doc)

	default:
		return p.parseStream(doc)
	}
}

// parseImplicitObject parses the remainder of the input as a single
// top-level Object node, with firstKey as the already-consumed first
// entry's key (the lookahead is currently positioned on ':').
func (p *Parser) parseImplicitObject(doc *ast.Document, firstKey string) *xcdnerr.Error {
	obj := ast.NewObject()

	if err := p.parseObjectEntry(obj, firstKey); err != nil {
		return err
	}

	for p.cur.Kind != lexer.EOF {
		key, err := p.parseKey()
		if err != nil {
			return err
		}
		if err := p.parseObjectEntry(obj, key); err != nil {
			return err
		}
	}

	doc.PushTop(ast.NewNode(ast.ObjectValueOf(obj)))
	return nil
}

// parseObjectEntry consumes ':' value (,)? for an entry whose key has
// already been read, storing the result in obj.
func (p *Parser) parseObjectEntry(obj *ast.ObjectValue, key string) *xcdnerr.Error {
	if p.cur.Kind != lexer.Colon {
		return xcdnerr.Newf(xcdnerr.Expected, p.cur.Span, "expected ':' after key %q, found %s", key, p.cur.Kind)
	}
	if err := p.advance(); err != nil {
		return err
	}
	node, err := p.parseNode()
	if err != nil {
		return err
	}
	obj.Set(key, node)

	if p.cur.Kind == lexer.Comma {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

// parseStream parses one or more nodes until EOF.
func (p *Parser) parseStream(doc *ast.Document) *xcdnerr.Error {
	for p.cur.Kind != lexer.EOF {
		n, err := p.parseNode()
		if err != nil {
			return err
		}
		doc.PushTop(n)
	}
	return nil
}

// parseKey reads an object/entry key: a bare identifier or a quoted string.
func (p *Parser) parseKey() (string, *xcdnerr.Error) {
	switch p.cur.Kind {
	case lexer.Ident, lexer.String:
		text := p.cur.Text
		if err := p.advance(); err != nil {
			return "", err
		}
		return text, nil
	default:
		return "", xcdnerr.Newf(xcdnerr.Expected, p.cur.Span, "expected key, found %s", p.cur.Kind)
	}
}

// parseNode parses `decoration* value` — zero or more tags/annotations
// in source order, followed by a value.
func (p *Parser) parseNode() (*ast.Node, *xcdnerr.Error) {
	n := &ast.Node{}
	for {
		switch p.cur.Kind {
		case lexer.At:
			ann, err := p.parseAnnotation()
			if err != nil {
				return nil, err
			}
			n.AddAnnotation(ann)
		case lexer.Hash:
			tag, err := p.parseTag()
			if err != nil {
				return nil, err
			}
			n.AddTag(tag)
		default:
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			n.Value = v
			return n, nil
		}
	}
}

// parseTag parses `#name`.
func (p *Parser) parseTag() (string, *xcdnerr.Error) {
	hashSpan := p.cur.Span
	if err := p.advance(); err != nil {
		return "", err
	}
	if p.cur.Kind != lexer.Ident {
		return "", xcdnerr.New(xcdnerr.Expected, hashSpan, "expected tag name after '#'")
	}
	name := p.cur.Text
	if err := p.advance(); err != nil {
		return "", err
	}
	return name, nil
}

// parseAnnotation parses `@name` or `@name(arg, ...)`.
func (p *Parser) parseAnnotation() (*ast.Annotation, *xcdnerr.Error) {
	atSpan := p.cur.Span
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.Ident {
		return nil, xcdnerr.New(xcdnerr.Expected, atSpan, "expected annotation name after '@'")
	}
	ann := ast.NewAnnotation(p.cur.Text)
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.cur.Kind != lexer.ParenOpen {
		return ann, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	for p.cur.Kind != lexer.ParenClose {
		if p.cur.Kind == lexer.EOF {
			return nil, xcdnerr.New(xcdnerr.Expected, p.cur.Span, "expected ')' to close annotation arguments")
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		ann.PushArg(v)
		if p.cur.Kind == lexer.Comma {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return ann, nil
}
