package span

import "github.com/cptaffe/ansi-styles/style"

// Effective returns the effective triple of every position of d: for each
// channel, the code of the nearest enclosing scope declaring it.
func Effective(d Document) []style.Triple {
	out := make([]style.Triple, 0, d.Len())
	var walk func(nodes []*Node, t style.Triple)
	walk = func(nodes []*Node, t style.Triple) {
		for _, n := range nodes {
			switch n.Kind {
			case TextNode:
				for range n.Text {
					out = append(out, t)
				}
			case BreakNode:
				out = append(out, t)
			case ScopeNode:
				inner := t
				if ch, err := n.Code.Channel(); err == nil {
					inner = t.With(ch, n.Code)
				}
				walk(n.Children, inner)
			}
		}
	}
	walk(d, style.Triple{})
	return out
}

// ScopeRange locates one scope of a document.  Depth is 0 for top-level
// scopes.
type ScopeRange struct {
	Code  style.Code
	Start int
	End   int // exclusive
	Depth int
}

// Scopes lists every scope of d in document order.
func Scopes(d Document) []ScopeRange {
	var out []ScopeRange
	var walk func(nodes []*Node, pos, depth int) int
	walk = func(nodes []*Node, pos, depth int) int {
		for _, n := range nodes {
			if n.Kind != ScopeNode {
				pos += n.Len()
				continue
			}
			i := len(out)
			out = append(out, ScopeRange{Code: n.Code, Start: pos, Depth: depth})
			pos = walk(n.Children, pos, depth+1)
			out[i].End = pos
		}
		return pos
	}
	walk(d, 0, 0)
	return out
}
