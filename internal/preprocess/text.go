// Package preprocess normalizes submitted news text before it reaches a predictor.
package preprocess

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// Normalize strips HTML markup, lowercases, replaces punctuation and
// symbols with spaces and collapses whitespace.
func Normalize(text string) string {
	text = StripHTML(text)
	text = strings.ToLower(text)

	text = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, text)

	return strings.Join(strings.Fields(text), " ")
}

// StripHTML returns the visible text of an HTML fragment. Text without any
// tag is returned unchanged.
func StripHTML(text string) string {
	if !looksLikeHTML(text) {
		return text
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return text
	}
	doc.Find("script, style, noscript").Remove()

	// block elements would otherwise glue neighbouring words together
	doc.Find("p, div, br, li, h1, h2, h3, h4, h5, h6, tr, td").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})

	return doc.Text()
}

func looksLikeHTML(text string) bool {
	open := strings.IndexByte(text, '<')
	return open >= 0 && strings.IndexByte(text[open:], '>') > 0
}
