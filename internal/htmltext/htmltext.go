// Package htmltext extracts plain text from raw HTML fragments for
// one-line previews of collapsed sections.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// Preview returns the fragment's visible text collapsed to single spaces
// and truncated to maxLen runes. Markup that fails to parse degrades to an
// empty preview rather than an error; previews are cosmetic.
func Preview(fragment string, maxLen int) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	collectText(doc, &sb)

	text := strings.Join(strings.Fields(sb.String()), " ")
	runes := []rune(text)
	if maxLen > 3 && len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return text
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		}
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteString(" ")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
