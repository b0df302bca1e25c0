// Package htmlsanitize renders content copy to HTML that is safe to embed in
// pages. Copy is written in Markdown, converted with goldmark, and passed
// through a bluemonday policy before it reaches a template.
package htmlsanitize

import (
	"bytes"
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	policy = bluemonday.UGCPolicy()
	md     = goldmark.New()
)

// Sanitize strips anything outside the UGC policy (scripts, event handlers,
// javascript: URLs, frames, forms).
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// Markdown converts Markdown to sanitized HTML. Raw HTML in the source is
// dropped by goldmark; whatever remains still goes through the policy. On a
// conversion error the text is escaped and wrapped in a paragraph.
func Markdown(s string) template.HTML {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(s), &buf); err != nil {
		return template.HTML("<p>" + html.EscapeString(s) + "</p>")
	}
	return template.HTML(strings.TrimSpace(Sanitize(buf.String())))
}

// Inline is Markdown without the enclosing paragraph, for copy placed inside
// an existing block element. Multi-paragraph input is returned unchanged.
func Inline(s string) template.HTML {
	out := string(Markdown(s))
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") &&
		strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return template.HTML(out)
}
