// Package span is the styled-text document: an immutable tree of text
// leaves, line breaks and single-channel style scopes.
//
// Positions are rune offsets into the document's plain text, with every
// break counting as one rune.  Operations never modify their input; they
// return a new Document that shares untouched subtrees with the old one.
package span

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cptaffe/ansi-styles/style"
)

// Kind distinguishes the three node forms.
type Kind uint8

const (
	TextNode Kind = iota
	ScopeNode
	BreakNode
)

// Node is a text leaf, a line break, or a scope declaring Code for the
// channel Code belongs to.  Text is only meaningful for text leaves, Code
// and Children only for scopes.
type Node struct {
	Kind     Kind
	Text     string
	Code     style.Code
	Children []*Node
}

// Text returns a text leaf.  s should not contain newlines; use Plain for
// text that does.
func Text(s string) *Node {
	return &Node{Kind: TextNode, Text: s}
}

// Break returns a line-break leaf.
func Break() *Node {
	return &Node{Kind: BreakNode}
}

// Scope returns a scope declaring code over children.
func Scope(code style.Code, children ...*Node) *Node {
	return &Node{Kind: ScopeNode, Code: code, Children: children}
}

// Plain converts s into text leaves, turning each newline into a break.
func Plain(s string) Document {
	var d Document
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			d = append(d, Break())
		}
		if line != "" {
			d = append(d, Text(line))
		}
	}
	return d
}

// Len is the number of positions n spans.
func (n *Node) Len() int {
	switch n.Kind {
	case TextNode:
		return utf8.RuneCountInString(n.Text)
	case BreakNode:
		return 1
	}
	l := 0
	for _, c := range n.Children {
		l += c.Len()
	}
	return l
}

func (n *Node) withChildren(kids []*Node) *Node {
	return &Node{Kind: ScopeNode, Code: n.Code, Children: kids}
}

// Document is an ordered sequence of top-level nodes.
type Document []*Node

// Len is the number of positions in d.
func (d Document) Len() int {
	l := 0
	for _, n := range d {
		l += n.Len()
	}
	return l
}

// String returns the plain text of d, breaks rendered as "\n".
func (d Document) String() string {
	var sb strings.Builder
	writePlain(&sb, d)
	return sb.String()
}

func writePlain(sb *strings.Builder, nodes []*Node) {
	for _, n := range nodes {
		switch n.Kind {
		case TextNode:
			sb.WriteString(n.Text)
		case BreakNode:
			sb.WriteByte('\n')
		case ScopeNode:
			writePlain(sb, n.Children)
		}
	}
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b Document) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !nodeEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func nodeEqual(a, b *Node) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case TextNode:
		return a.Text == b.Text
	case ScopeNode:
		return a.Code == b.Code && Equal(a.Children, b.Children)
	}
	return true
}

// Dump renders the tree structure of d compactly, e.g. `45{37{"Discord"}} "!"`.
func Dump(d Document) string {
	var sb strings.Builder
	dump(&sb, d)
	return sb.String()
}

func dump(sb *strings.Builder, nodes []*Node) {
	for i, n := range nodes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch n.Kind {
		case TextNode:
			sb.WriteString(strconv.Quote(n.Text))
		case BreakNode:
			sb.WriteString(`\n`)
		case ScopeNode:
			sb.WriteString(strconv.Itoa(int(n.Code)))
			sb.WriteByte('{')
			dump(sb, n.Children)
			sb.WriteByte('}')
		}
	}
}
