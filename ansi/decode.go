package ansi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cptaffe/ansi-styles/span"
	"github.com/cptaffe/ansi-styles/style"
)

// ErrMalformed is returned for escapes that are not complete SGR sequences.
var ErrMalformed = errors.New("malformed escape sequence")

// Chunk is a piece of text with the style it is rendered in.
type Chunk struct {
	Text  string
	Style style.Triple
}

// Split replays body the way the renderer does and splits it into chunks of
// constant style.  Styling carries over from one chunk to the next until an
// escape changes it.
//
// ESC[m and ESC[0m clear everything.  In a sequence with more than one
// parameter a leading 0 clears only the emphasis; every other parameter
// sets the channel it belongs to, and a later 0 clears everything.
func Split(body string) ([]Chunk, error) {
	var (
		result []Chunk
		cur    style.Triple
	)
	for {
		idx := strings.Index(body, esc)
		if idx != 0 {
			if idx == -1 {
				idx = len(body)
			}
			if idx > 0 {
				result = append(result, Chunk{Text: body[:idx], Style: cur})
			}
			body = body[idx:]
		}
		if len(body) == 0 {
			return result, nil
		}

		if len(body) < 2 || body[1] != '[' {
			return nil, fmt.Errorf("%w: escape not followed by '['", ErrMalformed)
		}
		end := strings.IndexByte(body, 'm')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated %q", ErrMalformed, body)
		}
		params := body[2:end]
		body = body[end+1:]

		var err error
		cur, err = applyParams(cur, params)
		if err != nil {
			return nil, err
		}
	}
}

func applyParams(t style.Triple, params string) (style.Triple, error) {
	if params == "" {
		return style.Triple{}, nil
	}
	fields := strings.Split(params, ";")
	for i, f := range fields {
		n := 0
		if f != "" {
			var err error
			n, err = strconv.Atoi(f)
			if err != nil || n < 0 {
				return t, fmt.Errorf("%w: parameter %q", ErrMalformed, f)
			}
		}
		if n == 0 {
			if i == 0 && len(fields) > 1 {
				t.Emphasis = style.None
			} else {
				t = style.Triple{}
			}
			continue
		}
		if n > 255 {
			return t, fmt.Errorf("%w: %d", style.ErrUnknownCode, n)
		}
		code := style.Code(n)
		ch, err := code.Channel()
		if err != nil {
			return t, err
		}
		t = t.With(ch, code)
	}
	return t, nil
}

// Decode rebuilds a document from an escape-coded body.  Each chunk becomes
// text nested as background, then foreground, then emphasis; adjacent
// chunks sharing outer scopes are merged.
func Decode(body string) (span.Document, error) {
	chunks, err := Split(body)
	if err != nil {
		return nil, err
	}
	var doc span.Document
	for _, c := range chunks {
		nodes := []*span.Node(span.Plain(c.Text))
		for _, code := range []style.Code{c.Style.Emphasis, c.Style.Foreground, c.Style.Background} {
			if code != style.None {
				nodes = []*span.Node{span.Scope(code, nodes...)}
			}
		}
		doc = append(doc, nodes...)
	}
	return span.Normalize(doc), nil
}

// Styles expands chunks into the triple of every position, counting a
// newline as one position.
func Styles(chunks []Chunk) []style.Triple {
	var out []style.Triple
	for _, c := range chunks {
		for range c.Text {
			out = append(out, c.Style)
		}
	}
	return out
}
