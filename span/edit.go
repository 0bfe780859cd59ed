package span

import "fmt"

// Insert places frag at position at.  Inserted content joins the scopes that
// end at or contain at, so text typed after a styled run continues its style.
func Insert(d Document, at int, frag Document) (Document, error) {
	if at < 0 || at > d.Len() {
		return d, fmt.Errorf("%w: insert at %d in document of length %d", ErrMalformedSelection, at, d.Len())
	}
	d = Normalize(d)
	if frag.Len() == 0 {
		return d, nil
	}
	return Normalize(insertIn(d, at, frag)), nil
}

// InsertText inserts s at position at; newlines become breaks.
func InsertText(d Document, at int, s string) (Document, error) {
	return Insert(d, at, Plain(s))
}

func insertIn(nodes []*Node, at int, frag []*Node) []*Node {
	pos := 0
	for i, n := range nodes {
		a, b := pos, pos+n.Len()
		pos = b
		if n.Kind == ScopeNode && a < at && at <= b {
			return splice(nodes, i, n.withChildren(insertIn(n.Children, at-a, frag)))
		}
	}
	before, after := splitAt(nodes, at)
	return concat(before, frag, after)
}

// Delete removes the positions in sel.  Scopes emptied by the deletion
// disappear and scopes left adjacent with equal codes merge.
func Delete(d Document, sel Selection) (Document, error) {
	if err := sel.check(d); err != nil {
		return d, err
	}
	before, _, after := cut(d, sel.Start, sel.End)
	return Normalize(concat(before, after)), nil
}
