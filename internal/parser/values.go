package parser

import (
	"strconv"

	"github.com/gslf/xcdn-go/ast"
	"github.com/gslf/xcdn-go/internal/lexer"
	"github.com/gslf/xcdn-go/xcdnerr"
)

// parseValue parses `object | array | atom`.
func (p *Parser) parseValue() (ast.Value, *xcdnerr.Error) {
	switch p.cur.Kind {
	case lexer.BraceOpen:
		return p.parseObject()
	case lexer.BracketOpen:
		return p.parseArray()
	default:
		return p.parseAtom()
	}
}

// parseObject parses `'{' ( entry ( (',' | ε) entry)* (',')? )? '}'`.
func (p *Parser) parseObject() (ast.Value, *xcdnerr.Error) {
	if err := p.advance(); err != nil { // consume '{'
		return ast.Value{}, err
	}
	obj := ast.NewObject()
	for p.cur.Kind != lexer.BraceClose {
		if p.cur.Kind == lexer.EOF {
			return ast.Value{}, xcdnerr.New(xcdnerr.Expected, p.cur.Span, "expected '}' to close object")
		}
		key, err := p.parseKey()
		if err != nil {
			return ast.Value{}, err
		}
		if err := p.parseObjectEntry(obj, key); err != nil {
			return ast.Value{}, err
		}
	}
	if err := p.advance(); err != nil { // consume '}'
		return ast.Value{}, err
	}
	return ast.ObjectValueOf(obj), nil
}

// parseArray parses `'[' ( node ( (',' | ε) node)* (',')? )? ']'`.
func (p *Parser) parseArray() (ast.Value, *xcdnerr.Error) {
	if err := p.advance(); err != nil { // consume '['
		return ast.Value{}, err
	}
	var items []*ast.Node
	for p.cur.Kind != lexer.BracketClose {
		if p.cur.Kind == lexer.EOF {
			return ast.Value{}, xcdnerr.New(xcdnerr.Expected, p.cur.Span, "expected ']' to close array")
		}
		n, err := p.parseNode()
		if err != nil {
			return ast.Value{}, err
		}
		items = append(items, n)
		if p.cur.Kind == lexer.Comma {
			if err := p.advance(); err != nil {
				return ast.Value{}, err
			}
		}
	}
	if err := p.advance(); err != nil { // consume ']'
		return ast.Value{}, err
	}
	return ast.ArrayValue(items...), nil
}

// parseAtom parses a single scalar or typed-literal token.
func (p *Parser) parseAtom() (ast.Value, *xcdnerr.Error) {
	t := p.cur
	switch t.Kind {
	case lexer.String, lexer.TripleString:
		if err := p.advance(); err != nil {
			return ast.Value{}, err
		}
		return ast.StringValue(t.Text), nil

	case lexer.Int:
		if err := p.advance(); err != nil {
			return ast.Value{}, err
		}
		n, parseErr := strconv.ParseInt(t.Text, 10, 64)
		if parseErr != nil {
			return ast.Value{}, xcdnerr.Newf(xcdnerr.InvalidNumber, t.Span, "invalid integer literal %q", t.Text)
		}
		return ast.IntValue(n), nil

	case lexer.Float:
		if err := p.advance(); err != nil {
			return ast.Value{}, err
		}
		f, parseErr := strconv.ParseFloat(t.Text, 64)
		if parseErr != nil {
			return ast.Value{}, xcdnerr.Newf(xcdnerr.InvalidNumber, t.Span, "invalid float literal %q", t.Text)
		}
		return ast.FloatValue(f), nil

	case lexer.True:
		if err := p.advance(); err != nil {
			return ast.Value{}, err
		}
		return ast.BoolValue(true), nil

	case lexer.False:
		if err := p.advance(); err != nil {
			return ast.Value{}, err
		}
		return ast.BoolValue(false), nil

	case lexer.Null:
		if err := p.advance(); err != nil {
			return ast.Value{}, err
		}
		return ast.NullValue(), nil

	case lexer.DecimalLit:
		if err := p.advance(); err != nil {
			return ast.Value{}, err
		}
		return ast.DecimalValue(t.Text), nil

	case lexer.DateTimeLit:
		if err := p.advance(); err != nil {
			return ast.Value{}, err
		}
		return ast.DateTimeValue(t.Text), nil

	case lexer.DurationLit:
		if err := p.advance(); err != nil {
			return ast.Value{}, err
		}
		return ast.DurationValue(t.Text), nil

	case lexer.UUIDLit:
		if err := p.advance(); err != nil {
			return ast.Value{}, err
		}
		if !ast.ValidateUUID(t.Text) {
			return ast.Value{}, xcdnerr.Newf(xcdnerr.InvalidUuid, t.Span, "invalid UUID %q", t.Text)
		}
		return ast.UUIDValue(t.Text), nil

	case lexer.BytesLit:
		if err := p.advance(); err != nil {
			return ast.Value{}, err
		}
		decoded, decodeErr := ast.DecodeBase64Mixed(t.Text)
		if decodeErr != nil {
			return ast.Value{}, xcdnerr.Newf(xcdnerr.InvalidBase64, t.Span, "invalid base64 content: %v", decodeErr)
		}
		return ast.BytesValue(decoded), nil

	default:
		return ast.Value{}, xcdnerr.Newf(xcdnerr.Expected, t.Span, "expected value, found %s", t.Kind)
	}
}
