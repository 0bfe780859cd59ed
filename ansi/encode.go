// Package ansi converts documents to and from the escape-coded text accepted
// by Discord's ```ansi code blocks.
//
// The renderer reads each escape as a pair: ESC[<emphasis>;<code>m sets the
// emphasis (0 for none) together with the channel code belongs to, and
// ESC[0m clears everything.  Leaving a scope therefore resets and re-asserts
// whatever the enclosing scopes still declare.
package ansi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cptaffe/ansi-styles/span"
	"github.com/cptaffe/ansi-styles/style"
)

const (
	esc   = "\x1b"
	reset = esc + "[0m"

	// OpenFence and CloseFence delimit an exported block.
	OpenFence  = "```ansi\n"
	CloseFence = "\n```"
)

// ErrInvariant means the document could not have been produced by the span
// operations: a scope whose code has no single channel, or a scope stack
// that underflowed.
var ErrInvariant = errors.New("serialization invariant violated")

// Serialize returns the escape-coded body of doc wrapped in the fence.
func Serialize(doc span.Document) (string, error) {
	body, err := Body(doc)
	if err != nil {
		return "", err
	}
	return Wrap(body), nil
}

// Wrap fences body as an ansi code block.
func Wrap(body string) string {
	return OpenFence + body + CloseFence
}

// Unwrap returns the body of a fenced block.  Text that is not fenced is
// returned unchanged with ok false.
func Unwrap(s string) (body string, ok bool) {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```ansi") || !strings.HasSuffix(t, "```") || len(t) < len("```ansi```") {
		return s, false
	}
	t = strings.TrimPrefix(t, "```ansi")
	t = strings.TrimSuffix(t, "```")
	t = strings.TrimPrefix(t, "\n")
	t = strings.TrimSuffix(t, "\n")
	return t, true
}

// Body returns the escape-coded stream for doc without the fence.
func Body(doc span.Document) (string, error) {
	e := encoder{stack: []style.Triple{{}}}
	if err := e.nodes(doc); err != nil {
		return "", err
	}
	return e.sb.String(), nil
}

type encoder struct {
	sb    strings.Builder
	stack []style.Triple
}

func (e *encoder) top() style.Triple {
	return e.stack[len(e.stack)-1]
}

func (e *encoder) nodes(nodes []*span.Node) error {
	for _, n := range nodes {
		if err := e.node(n); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) node(n *span.Node) error {
	switch n.Kind {
	case span.TextNode:
		e.sb.WriteString(n.Text)
		return nil
	case span.BreakNode:
		e.sb.WriteByte('\n')
		return nil
	}

	ch, err := n.Code.Channel()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvariant, err)
	}
	t := e.top().With(ch, n.Code)
	e.stack = append(e.stack, t)
	e.sgr(t.Emphasis, n.Code)

	if err := e.nodes(n.Children); err != nil {
		return err
	}

	e.sb.WriteString(reset)
	e.stack = e.stack[:len(e.stack)-1]
	e.restore(e.top())
	return nil
}

// restore re-asserts t after a full reset.
func (e *encoder) restore(t style.Triple) {
	if t.Foreground != style.None {
		e.sgr(t.Emphasis, t.Foreground)
	}
	if t.Background != style.None {
		e.sgr(t.Emphasis, t.Background)
	}
	if t.Foreground == style.None && t.Background == style.None && t.Emphasis != style.None {
		e.sgr(t.Emphasis, t.Emphasis)
	}
}

// sgr writes ESC[<emphasis>;<code>m; an unset emphasis is written as 0.
func (e *encoder) sgr(emphasis, code style.Code) {
	fmt.Fprintf(&e.sb, "%s[%d;%dm", esc, emphasis, code)
}
