// Package markup reads and writes the editor's span markup:
//
//	Welcome to <span class="ansi-45"><span class="ansi-37">Discord</span></span><br>
//
// Each ansi-N class is a style scope, <br> is a line break, and everything
// else is text.
package markup

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var ansiClass = regexp.MustCompile(`^ansi-[0-9]+$`)

// Sanitize filters pasted markup down to <br>, <span> and </span>.  Only
// ansi-N class names survive on a span; other attributes are dropped.  Any
// other tag is removed but its text is kept, except inside script and style
// elements.  Unmatched </span> tags are dropped and unclosed spans closed.
func Sanitize(raw string) string {
	z := html.NewTokenizer(strings.NewReader(raw))
	var sb strings.Builder
	open, skip := 0, 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			for ; open > 0; open-- {
				sb.WriteString("</span>")
			}
			return sb.String()

		case html.TextToken:
			if skip == 0 {
				sb.WriteString(html.EscapeString(string(z.Text())))
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			switch string(name) {
			case "br":
				sb.WriteString("<br>")
			case "span":
				if tt == html.SelfClosingTagToken {
					continue
				}
				if classes := ansiClasses(z, hasAttr); classes != "" {
					sb.WriteString(`<span class="` + classes + `">`)
				} else {
					sb.WriteString("<span>")
				}
				open++
			case "script", "style":
				if tt == html.StartTagToken {
					skip++
				}
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "span":
				if open > 0 {
					sb.WriteString("</span>")
					open--
				}
			case "script", "style":
				if skip > 0 {
					skip--
				}
			}
		}
	}
}

// ansiClasses returns the ansi-N tokens of the current tag's class
// attribute, space separated.
func ansiClasses(z *html.Tokenizer, hasAttr bool) string {
	var keep []string
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		if string(key) != "class" {
			continue
		}
		for _, c := range strings.Fields(string(val)) {
			if ansiClass.MatchString(c) {
				keep = append(keep, c)
			}
		}
	}
	return strings.Join(keep, " ")
}
