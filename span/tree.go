package span

import "github.com/cptaffe/ansi-styles/style"

// splitAt divides nodes at position p.  A text leaf or scope straddling p is
// split in two; the halves of a scope keep its code.
func splitAt(nodes []*Node, p int) (before, after []*Node) {
	pos := 0
	for i, n := range nodes {
		l := n.Len()
		switch {
		case pos+l <= p:
			before = append(before, n)
		case pos >= p:
			after = append(after, nodes[i:]...)
			return before, after
		default:
			off := p - pos
			switch n.Kind {
			case TextNode:
				r := []rune(n.Text)
				before = append(before, Text(string(r[:off])))
				after = append(after, Text(string(r[off:])))
			case ScopeNode:
				b, a := splitAt(n.Children, off)
				before = append(before, n.withChildren(b))
				after = append(after, n.withChildren(a))
			}
			after = append(after, nodes[i+1:]...)
			return before, after
		}
		pos += l
	}
	return before, after
}

// cut divides nodes into the parts before, inside and after [s, e).  Every
// returned node lies wholly within one part.
func cut(nodes []*Node, s, e int) (before, mid, after []*Node) {
	before, rest := splitAt(nodes, s)
	mid, after = splitAt(rest, e-s)
	return before, mid, after
}

// strip unwraps every scope whose code satisfies match, at any depth.
func strip(nodes []*Node, match func(style.Code) bool) []*Node {
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind != ScopeNode {
			out = append(out, n)
			continue
		}
		kids := strip(n.Children, match)
		if match(n.Code) {
			out = append(out, kids...)
		} else {
			out = append(out, n.withChildren(kids))
		}
	}
	return out
}

func concat(parts ...[]*Node) []*Node {
	var out []*Node
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// splice returns a copy of nodes with nodes[i] replaced by repl.
func splice(nodes []*Node, i int, repl ...*Node) []*Node {
	return concat(nodes[:i:i], repl, nodes[i+1:])
}

func onChannel(ch style.Channel) func(style.Code) bool {
	return func(c style.Code) bool {
		got, err := c.Channel()
		return err == nil && got == ch
	}
}

func anyCode(style.Code) bool { return true }

// Normalize returns the canonical form of d: adjacent text leaves and
// adjacent scopes with equal codes are merged, empty text and empty scopes
// are dropped, and scopes re-declaring the value they already inherit are
// unwrapped.  The effective style of every position is unchanged.  Scopes
// with codes outside the table are left in place for the serializer to
// report.
func Normalize(d Document) Document {
	return normalize(d, style.Triple{})
}

func normalize(nodes []*Node, t style.Triple) []*Node {
	var out []*Node
	var push func(n *Node)
	push = func(n *Node) {
		last := len(out) - 1
		switch n.Kind {
		case TextNode:
			if n.Text == "" {
				return
			}
			if last >= 0 && out[last].Kind == TextNode {
				out[last] = Text(out[last].Text + n.Text)
				return
			}
		case ScopeNode:
			ch, err := n.Code.Channel()
			if err != nil {
				break
			}
			if t.Get(ch) == n.Code {
				for _, k := range normalize(n.Children, t) {
					push(k)
				}
				return
			}
			inner := t.With(ch, n.Code)
			kids := normalize(n.Children, inner)
			if len(kids) == 0 {
				return
			}
			if last >= 0 && out[last].Kind == ScopeNode && out[last].Code == n.Code {
				merged := concat(out[last].Children, kids)
				out[last] = n.withChildren(normalize(merged, inner))
				return
			}
			n = n.withChildren(kids)
		}
		out = append(out, n)
	}
	for _, n := range nodes {
		push(n)
	}
	return out
}
