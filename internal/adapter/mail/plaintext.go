package mail

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const blockSelector = "p, div, tr, li, table, h1, h2, h3, h4, h5, h6, ul, ol, blockquote"

// PlainText renders an HTML document as readable text: block elements and
// <br> become line breaks, link targets are appended in parentheses,
// whitespace collapses and empty lines are dropped.
func PlainText(htmlBody string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("head, style, script").Remove()
	doc.Find("br").ReplaceWithHtml("\n")

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "mailto:") || strings.TrimSpace(a.Text()) == href {
			return
		}
		a.AppendHtml(html.EscapeString(" (" + href + ")"))
	})

	doc.Find("td, th").AfterHtml(" ")
	doc.Find(blockSelector).BeforeHtml("\n").AfterHtml("\n")

	return normalizeText(doc.Text()), nil
}

func normalizeText(raw string) string {
	raw = strings.ReplaceAll(raw, "\u00a0", " ")

	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
