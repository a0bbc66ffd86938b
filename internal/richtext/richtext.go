// Package richtext renders editor-supplied text as sanitized HTML.
package richtext

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	inlinePolicy = bluemonday.NewPolicy().
			AllowElements("br", "em", "strong", "b", "i", "span").
			AllowAttrs("class").OnElements("span")
	blockPolicy = bluemonday.UGCPolicy()

	md = goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps()))
)

// Inline keeps only line breaks and emphasis. Headlines are stored with inline markup.
func Inline(s string) template.HTML {
	return template.HTML(inlinePolicy.Sanitize(s))
}

// Markdown renders s as paragraphs. Single newlines become line breaks.
func Markdown(s string) template.HTML {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(s), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(s) + "</p>")
	}
	return template.HTML(blockPolicy.SanitizeBytes(buf.Bytes()))
}
