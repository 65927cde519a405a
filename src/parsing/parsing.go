package parsing

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	goldmarkHtml "github.com/yuin/goldmark/renderer/html"
	"mvdan.cc/xurls/v2"

	"github.com/smartchessacademy/website/src/logging"
)

// Markdown for trusted content authored by staff (news entries). Raw
// HTML passes through, which is exactly why user content never goes
// near this renderer.
var trustedMarkdown = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHtml.WithUnsafe(),
	),
)

func ParseMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := trustedMarkdown.Convert([]byte(source), &buf); err != nil {
		logging.Error().Err(err).Msg("failed to render markdown")
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(buf.String())
}

var relaxedUrlRegex = xurls.Relaxed()

// LinkifyText escapes user-authored plain text and turns bare urls
// into links, with paragraph breaks on blank lines.
func LinkifyText(text string) template.HTML {
	var b strings.Builder
	paragraphs := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")
	for _, paragraph := range paragraphs {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		b.WriteString("<p>")
		writeLinkified(&b, paragraph)
		b.WriteString("</p>\n")
	}
	return template.HTML(b.String())
}

func writeLinkified(b *strings.Builder, text string) {
	matches := relaxedUrlRegex.FindAllStringIndex(text, -1)
	last := 0
	for _, match := range matches {
		b.WriteString(escapeWithBreaks(text[last:match[0]]))

		rawUrl := text[match[0]:match[1]]
		href := rawUrl
		if !strings.Contains(href, "://") {
			href = "https://" + href
		}
		b.WriteString(`<a href="`)
		b.WriteString(template.HTMLEscapeString(href))
		b.WriteString(`" rel="noopener nofollow">`)
		b.WriteString(template.HTMLEscapeString(rawUrl))
		b.WriteString("</a>")

		last = match[1]
	}
	b.WriteString(escapeWithBreaks(text[last:]))
}

func escapeWithBreaks(text string) string {
	escaped := template.HTMLEscapeString(text)
	return strings.ReplaceAll(escaped, "\n", "<br>\n")
}
