package span

import (
	"fmt"

	"github.com/cptaffe/ansi-styles/style"
)

// Apply sets channel ch to code over sel.  Scopes on other channels are left
// where they are, so their values still reach the selection by inheritance;
// the new scope declares only ch.  Scopes on ch inside the selection are
// superseded rather than nested under.  Applying the same code twice yields
// the same document.
//
// code == style.None resets ch over the selection (see ResetChannel).  An
// empty selection is a no-op.
func Apply(d Document, sel Selection, ch style.Channel, code style.Code) (Document, error) {
	if code == style.None {
		return ResetChannel(d, sel, ch)
	}
	got, err := code.Channel()
	if err != nil {
		return d, err
	}
	if got != ch {
		return d, fmt.Errorf("%w: %d is not a %v code", style.ErrUnknownCode, code, ch)
	}
	if err := sel.check(d); err != nil {
		return d, err
	}
	d = Normalize(d)
	if sel.Empty() {
		return d, nil
	}
	return Normalize(applyIn(d, sel.Start, sel.End, ch, code, style.None)), nil
}

// applyIn works on one sibling list; inh is the value of ch inherited by
// that list from its ancestors.
func applyIn(nodes []*Node, s, e int, ch style.Channel, code, inh style.Code) []*Node {
	match := onChannel(ch)
	pos := 0
	for i, n := range nodes {
		a, b := pos, pos+n.Len()
		pos = b
		if n.Kind != ScopeNode || s < a || e > b {
			continue
		}
		if a == s && b == e && match(n.Code) {
			// Supersede the scope covering exactly the selection.
			kids := strip(n.Children, match)
			if code == inh {
				return splice(nodes, i, kids...)
			}
			return splice(nodes, i, Scope(code, kids...))
		}
		inner := inh
		if match(n.Code) {
			inner = n.Code
		}
		return splice(nodes, i, n.withChildren(applyIn(n.Children, s-a, e-a, ch, code, inner)))
	}

	before, mid, after := cut(nodes, s, e)
	mid = strip(mid, match)
	if code != inh {
		mid = []*Node{Scope(code, mid...)}
	}
	return concat(before, mid, after)
}

// ResetChannel clears channel ch over sel, leaving the other two channels
// alone.  Enclosing scopes on ch are split around the selection so that it
// falls back to the renderer default.
func ResetChannel(d Document, sel Selection, ch style.Channel) (Document, error) {
	return resetWhere(d, sel, onChannel(ch))
}

// ResetAll removes every scope over sel, leaving plain text and breaks.
func ResetAll(d Document, sel Selection) (Document, error) {
	return resetWhere(d, sel, anyCode)
}

func resetWhere(d Document, sel Selection, match func(style.Code) bool) (Document, error) {
	if err := sel.check(d); err != nil {
		return d, err
	}
	d = Normalize(d)
	if sel.Empty() {
		return d, nil
	}
	return Normalize(clearIn(d, sel.Start, sel.End, match)), nil
}

// clearIn descends through enclosing scopes that match does not select,
// then carves the selection out of everything below.
func clearIn(nodes []*Node, s, e int, match func(style.Code) bool) []*Node {
	pos := 0
	for i, n := range nodes {
		a, b := pos, pos+n.Len()
		pos = b
		if n.Kind != ScopeNode || s < a || e > b || match(n.Code) {
			continue
		}
		return splice(nodes, i, n.withChildren(clearIn(n.Children, s-a, e-a, match)))
	}
	before, mid, after := cut(nodes, s, e)
	return concat(before, strip(mid, match), after)
}
