package mdsite

import (
	"fmt"
	"strings"
)

// Node is an element of the generic HTML tree.
// Implemented by *Leaf and *Parent.
type Node interface {
	// HTML serializes the node and its descendants.
	HTML() string
}

// Compile-time interface implementation checks.
var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Parent)(nil)
)

// imageTag is the only tag allowed on a leaf with an empty value.
const imageTag = "img"

// Attr is a single HTML attribute.
type Attr struct {
	Name  string
	Value string
}

// Attributes is an ordered attribute list. Order is kept for deterministic output.
type Attributes []Attr

// HTML renders the attributes as ` name="value"` pairs, or "" when empty.
// Values are emitted verbatim.
func (a Attributes) HTML() string {
	if len(a) == 0 {
		return ""
	}
	var b strings.Builder
	for _, attr := range a {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteByte('"')
	}
	return b.String()
}

// Leaf is a childless node: bare text, or a tag wrapping text.
type Leaf struct {
	tag   string
	value string
	attrs Attributes
}

// NewLeaf creates a leaf node. An empty tag yields bare text.
// Returns ErrMalformedNode if value is empty, unless tag is "img".
func NewLeaf(tag, value string, attrs Attributes) (*Leaf, error) {
	if value == "" && tag != imageTag {
		return nil, fmt.Errorf("%w: leaf <%s> requires a value", ErrMalformedNode, tag)
	}
	return &Leaf{tag: tag, value: value, attrs: attrs}, nil
}

// Tag returns the leaf tag, "" for bare text.
func (l *Leaf) Tag() string { return l.tag }

// Value returns the leaf text.
func (l *Leaf) Value() string { return l.value }

// Attrs returns the leaf attributes.
func (l *Leaf) Attrs() Attributes { return l.attrs }

// HTML implements Node.
func (l *Leaf) HTML() string {
	if l.tag == "" {
		return l.value
	}
	return "<" + l.tag + l.attrs.HTML() + ">" + l.value + "</" + l.tag + ">"
}

// Parent is a tagged node owning a non-empty list of children.
type Parent struct {
	tag      string
	children []Node
	attrs    Attributes
}

// NewParent creates a parent node.
// Returns ErrMalformedNode if tag is empty or there are no children.
func NewParent(tag string, children []Node, attrs Attributes) (*Parent, error) {
	if tag == "" {
		return nil, fmt.Errorf("%w: parent requires a tag", ErrMalformedNode)
	}
	if len(children) == 0 {
		return nil, fmt.Errorf("%w: parent <%s> requires children", ErrMalformedNode, tag)
	}
	return &Parent{tag: tag, children: children, attrs: attrs}, nil
}

// NewNode builds a Leaf or a Parent depending on whether children are given.
// A non-empty value together with children is rejected: leaves take no children
// and parents take no value.
func NewNode(tag, value string, children []Node, attrs Attributes) (Node, error) {
	if children == nil {
		return NewLeaf(tag, value, attrs)
	}
	if value != "" {
		return nil, fmt.Errorf("%w: node <%s> has both a value and children", ErrMalformedNode, tag)
	}
	return NewParent(tag, children, attrs)
}

// Tag returns the parent tag.
func (p *Parent) Tag() string { return p.tag }

// Children returns the child nodes in order.
func (p *Parent) Children() []Node { return p.children }

// Attrs returns the parent attributes.
func (p *Parent) Attrs() Attributes { return p.attrs }

// HTML implements Node.
func (p *Parent) HTML() string {
	var b strings.Builder
	p.writeHTML(&b)
	return b.String()
}

func (p *Parent) writeHTML(b *strings.Builder) {
	b.WriteString("<" + p.tag + p.attrs.HTML() + ">")
	for _, child := range p.children {
		if cp, ok := child.(*Parent); ok {
			cp.writeHTML(b)
			continue
		}
		b.WriteString(child.HTML())
	}
	b.WriteString("</" + p.tag + ">")
}

// TokenToNode converts an inline token to its leaf node.
func TokenToNode(tok Token) (Node, error) {
	switch tok.Kind {
	case TokenText:
		return NewLeaf("", tok.Text, nil)
	case TokenBold:
		return NewLeaf("b", tok.Text, nil)
	case TokenItalic:
		return NewLeaf("i", tok.Text, nil)
	case TokenCode:
		return NewLeaf("code", tok.Text, nil)
	case TokenLink:
		return NewLeaf("a", tok.Text, Attributes{{Name: "href", Value: tok.Target}})
	case TokenImage:
		return NewLeaf(imageTag, "", Attributes{
			{Name: "src", Value: tok.Target},
			{Name: "alt", Value: tok.Text},
		})
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, tok.Kind)
}

// TokensToNodes converts tokens to leaf nodes, stopping at the first error.
func TokensToNodes(tokens []Token) ([]Node, error) {
	nodes := make([]Node, 0, len(tokens))
	for _, tok := range tokens {
		n, err := TokenToNode(tok)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
