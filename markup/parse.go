package markup

import (
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/net/html"

	"github.com/cptaffe/ansi-styles/span"
	"github.com/cptaffe/ansi-styles/style"
)

type frame struct {
	codes []style.Code
	nodes []*span.Node
}

func (f *frame) close() []*span.Node {
	nodes := f.nodes
	for i := len(f.codes) - 1; i >= 0; i-- {
		nodes = []*span.Node{span.Scope(f.codes[i], nodes...)}
	}
	return nodes
}

// Parse builds a document from span markup.  A span carrying several ansi-N
// classes becomes nested scopes, the first class outermost; a span without
// one is transparent.  Newlines in text become breaks.  Unknown codes are
// all reported and no document is returned.
func Parse(markup string) (span.Document, error) {
	z := html.NewTokenizer(strings.NewReader(markup))
	stack := []*frame{{}}
	top := func() *frame { return stack[len(stack)-1] }
	var err error
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			for len(stack) > 1 {
				f := top()
				stack = stack[:len(stack)-1]
				top().nodes = append(top().nodes, f.close()...)
			}
			if err != nil {
				return nil, err
			}
			return span.Normalize(stack[0].nodes), nil

		case html.TextToken:
			top().nodes = append(top().nodes, span.Plain(string(z.Text()))...)

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			switch string(name) {
			case "br":
				top().nodes = append(top().nodes, span.Break())
			case "span":
				if tt == html.SelfClosingTagToken {
					continue
				}
				f := &frame{}
				for _, c := range strings.Fields(ansiClasses(z, hasAttr)) {
					code, cerr := style.ParseCode(c)
					if cerr != nil {
						err = multierr.Append(err, cerr)
						continue
					}
					f.codes = append(f.codes, code)
				}
				stack = append(stack, f)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == "span" && len(stack) > 1 {
				f := top()
				stack = stack[:len(stack)-1]
				top().nodes = append(top().nodes, f.close()...)
			}
		}
	}
}

// Format writes doc as span markup.
func Format(doc span.Document) string {
	var sb strings.Builder
	format(&sb, doc)
	return sb.String()
}

func format(sb *strings.Builder, nodes []*span.Node) {
	for _, n := range nodes {
		switch n.Kind {
		case span.TextNode:
			sb.WriteString(html.EscapeString(n.Text))
		case span.BreakNode:
			sb.WriteString("<br>")
		case span.ScopeNode:
			sb.WriteString(`<span class="ansi-`)
			sb.WriteString(strconv.Itoa(int(n.Code)))
			sb.WriteString(`">`)
			format(sb, n.Children)
			sb.WriteString("</span>")
		}
	}
}
