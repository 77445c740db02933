// Package mrkdwn renders Slack's markdown flavour to HTML and flattens
// that HTML back to plain text for extraction. Slack formatting is
// documented at https://api.slack.com/reference/surfaces/formatting.
package mrkdwn

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	anglePattern  = regexp.MustCompile(`<([^<>]+)>`)
	boldPattern   = regexp.MustCompile(`\*([^*\n]+)\*`)
	italicPattern = regexp.MustCompile(`\b_([^_\n]+)_\b`)
	strikePattern = regexp.MustCompile(`~([^~\n]+)~`)
	codePattern   = regexp.MustCompile("`([^`\n]+)`")
)

// Render converts mrkdwn to HTML. Newlines become <br> tags, the way
// chat messages are displayed, so paragraph structure survives the
// round trip to plain text.
func Render(source string) string {
	var out strings.Builder
	segments := strings.Split(source, "```")
	for i, seg := range segments {
		if i%2 == 1 {
			// inside a fenced block
			out.WriteString("<pre><code>")
			out.WriteString(html.EscapeString(strings.Trim(seg, "\n")))
			out.WriteString("</code></pre>")
			continue
		}
		out.WriteString(renderInline(seg))
	}
	return out.String()
}

func renderInline(source string) string {
	var out strings.Builder
	last := 0
	for _, loc := range anglePattern.FindAllStringSubmatchIndex(source, -1) {
		out.WriteString(renderSpans(source[last:loc[0]]))
		out.WriteString(renderAngle(source[loc[2]:loc[3]]))
		last = loc[1]
	}
	out.WriteString(renderSpans(source[last:]))
	return strings.ReplaceAll(out.String(), "\n", "<br>")
}

// renderAngle handles Slack's <...> constructs: links with optional
// labels, user and channel mentions.
func renderAngle(body string) string {
	switch {
	case strings.HasPrefix(body, "@"), strings.HasPrefix(body, "!"):
		return `<span>` + html.EscapeString(body) + `</span>`
	case strings.HasPrefix(body, "#"):
		name := body
		if i := strings.IndexByte(body, '|'); i >= 0 {
			name = "#" + body[i+1:]
		}
		return `<span>` + html.EscapeString(name) + `</span>`
	default:
		url, label, ok := strings.Cut(body, "|")
		if !ok {
			label = url
		}
		return `<a href="` + html.EscapeString(url) + `">` + html.EscapeString(label) + `</a>`
	}
}

// renderSpans escapes plain text and applies inline span formatting.
func renderSpans(source string) string {
	s := html.EscapeString(source)
	s = codePattern.ReplaceAllString(s, "<code>$1</code>")
	s = boldPattern.ReplaceAllString(s, "<b>$1</b>")
	s = italicPattern.ReplaceAllString(s, "<i>$1</i>")
	s = strikePattern.ReplaceAllString(s, "<s>$1</s>")
	return s
}

// blockTags end their text with a line break when flattened.
var blockTags = map[string]struct{}{
	"p": {}, "div": {}, "pre": {}, "li": {}, "tr": {},
}

// Text flattens HTML to plain text. <br> and block elements turn into
// newlines; entities are decoded by the parser.
func Text(source string) string {
	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return source
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && n.Data == "br" {
			buf.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			if _, ok := blockTags[n.Data]; ok {
				buf.WriteString("\n")
			}
		}
	}
	walk(doc)

	return strings.TrimSpace(buf.String())
}

// Flatten renders mrkdwn and strips the markup in one step.
func Flatten(source string) string {
	return Text(Render(source))
}
