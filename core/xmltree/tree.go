package xmltree

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Node is one element of a parsed document. Children keep document order and
// repeated elements stay separate siblings; use List to read a field that may
// occur once or many times.
type Node struct {
	Name     string
	Text     string
	Children []*Node
}

// ParseFile reads and parses an XML file into a Node tree rooted at the
// document element.
func ParseFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	root, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return root, nil
}

// Parse reads a whole document from r.
func Parse(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

// ParseBytes parses an XML document. A leading UTF-8 byte order mark is
// ignored. Attributes are not part of the tree.
func ParseBytes(data []byte) (*Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(bytes.TrimPrefix(data, utf8BOM)); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrNoRoot
	}
	return fromElement(root), nil
}

func fromElement(el *etree.Element) *Node {
	n := &Node{Name: el.Tag}
	children := el.ChildElements()
	if len(children) == 0 {
		n.Text = strings.TrimSpace(el.Text())
		return n
	}
	n.Children = make([]*Node, 0, len(children))
	for _, c := range children {
		n.Children = append(n.Children, fromElement(c))
	}
	return n
}

// IsLeaf reports whether the node has no child elements.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsEmpty reports whether the node carries neither text nor children.
func (n *Node) IsEmpty() bool {
	return n == nil || (n.IsLeaf() && n.Text == "")
}

// Has reports whether a child element with the given name exists.
func (n *Node) Has(name string) bool {
	return n.Child(name) != nil
}

// Child returns the first child element with the given name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Path walks nested first-children by name.
func (n *Node) Path(names ...string) *Node {
	cur := n
	for _, name := range names {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// List returns every child element with the given name. It is the single
// place where "one element" and "many elements" collapse into a slice.
func (n *Node) List(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Strings returns the values of every child element with the given name.
func (n *Node) Strings(name string) []string {
	list := n.List(name)
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Value())
	}
	return out
}

// Field returns the value of the first child with the given name.
func (n *Node) Field(name string) (string, bool) {
	c := n.Child(name)
	if c == nil {
		return "", false
	}
	return c.Value(), true
}

// Value renders the node as a single string: the text of a leaf, or the
// leaf values of a branch joined with ", ".
func (n *Node) Value() string {
	if n == nil {
		return ""
	}
	if n.IsLeaf() {
		return n.Text
	}
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if v := c.Value(); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

// Keys returns the distinct child names in first-seen order.
func (n *Node) Keys() []string {
	if n == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(n.Children))
	keys := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if _, ok := seen[c.Name]; ok {
			continue
		}
		seen[c.Name] = struct{}{}
		keys = append(keys, c.Name)
	}
	return keys
}

// Fields flattens the node one level deep: each distinct child name maps
// to the non-empty values of all children with that name, joined with ", ".
func (n *Node) Fields() map[string]string {
	keys := n.Keys()
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		var parts []string
		for _, c := range n.List(key) {
			if v := c.Value(); v != "" {
				parts = append(parts, v)
			}
		}
		out[key] = strings.Join(parts, ", ")
	}
	return out
}
