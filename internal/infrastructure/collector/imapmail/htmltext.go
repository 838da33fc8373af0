package imapmail

import (
	"strings"

	"golang.org/x/net/html"
)

// htmlToText flattens an HTML email body to line-oriented text. Block
// elements become line breaks so salutation and signature lines keep their
// positions for the body name miner.
func htmlToText(src string) string {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return strings.TrimSpace(src)
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
					b.WriteString(" ")
				}
				b.WriteString(t)
			}
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "head":
				return
			case "br", "p", "div", "tr", "li":
				if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
					b.WriteString("\n")
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "div", "tr", "li":
				if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
					b.WriteString("\n")
				}
			}
		}
	}
	walk(root)
	return strings.TrimSpace(b.String())
}
