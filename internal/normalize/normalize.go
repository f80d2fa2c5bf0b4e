// Package normalize converts extracted detail markup into a portable
// plain-text form and detects structural features of the content.
package normalize

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

var converter = md.NewConverter("", true, nil)

// ToMarkdown converts the selection's inner markup to markdown text.
// No sanitization or size limiting is applied; the caller receives the
// full converted text.
func ToMarkdown(sel *goquery.Selection) (string, error) {
	html, err := sel.Html()
	if err != nil {
		return "", fmt.Errorf("render content html: %w", err)
	}
	text, err := converter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// HasAttachment reports whether an attachment-list container matching
// selector exists in the document.
func HasAttachment(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

// HasEmbeddedImage reports whether the content selection contains at
// least one embedded image tag.
func HasEmbeddedImage(content *goquery.Selection) bool {
	return content.Find("img").Length() > 0
}
