package ast

import "strings"

// Directive is a prolog entry `$name: value`. name never includes the
// leading '$'. value may be any value, including composite values, but
// is never itself decorated.
type Directive struct {
	Name  string
	Value Value
}

// Document is the top-level container for an xCDN document: an ordered
// prolog of directives followed by an ordered list of top-level nodes.
// A zero-value Document (no directives, no top-level nodes) represents
// an empty, valid document.
type Document struct {
	Directives []Directive
	Top        []*Node
}

// New creates an empty Document.
func New() *Document {
	return &Document{
		Directives: make([]Directive, 0, 4),
		Top:        make([]*Node, 0, 8),
	}
}

// PushDirective appends a directive to the prolog.
func (d *Document) PushDirective(name string, v Value) {
	if d == nil {
		return
	}
	d.Directives = append(d.Directives, Directive{Name: name, Value: v})
}

// PushTop appends a node to the top-level node list. A nil node is a
// silent no-op per the construction contract of spec §7.
func (d *Document) PushTop(n *Node) {
	if d == nil || n == nil {
		return
	}
	d.Top = append(d.Top, n)
}

// GetTop returns the top-level node at ordinal position i, or nil if out of range.
func (d *Document) GetTop(i int) *Node {
	if d == nil || i < 0 || i >= len(d.Top) {
		return nil
	}
	return d.Top[i]
}

// GetKey looks up key inside the first top-level value, iff that value
// is an Object; returns nil for any other shape (no top-level nodes,
// first value not an Object, or key absent).
func (d *Document) GetKey(key string) *Node {
	first := d.GetTop(0)
	if first == nil {
		return nil
	}
	return first.Get(key)
}

// HasKey reports whether key is present per the same rules as GetKey.
func (d *Document) HasKey(key string) bool {
	return d.GetKey(key) != nil
}

// GetDirective returns the first directive named name, or nil if none matches.
func (d *Document) GetDirective(name string) *Directive {
	if d == nil {
		return nil
	}
	for i := range d.Directives {
		if d.Directives[i].Name == name {
			return &d.Directives[i]
		}
	}
	return nil
}

// GetPath navigates dotted path "a.b.c" through Object values only,
// starting from the document's first top-level node. It returns nil on
// any missing segment or non-object intermediate traversal.
func GetPath(d *Document, path string) *Node {
	first := d.GetTop(0)
	if first == nil {
		return nil
	}
	return getPathFromNode(first, path)
}

// getPathFromNode navigates dotted path starting from n itself, treating
// n's Value as the root Object to descend into.
func getPathFromNode(n *Node, path string) *Node {
	if n == nil || path == "" {
		return nil
	}
	segments := strings.Split(path, ".")
	cur := n
	for _, seg := range segments {
		if cur == nil {
			return nil
		}
		cur = cur.Get(seg)
	}
	return cur
}
