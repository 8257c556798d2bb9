package ingest

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	nethtml "golang.org/x/net/html"

	"github.com/gauransh/gitingest/internal/model"
)

// Element IDs the server renders digest text into. Everything else on the
// page is opaque.
const (
	ElementSummary = "summary"
	ElementTree    = "directory-structure"
	ElementContent = "result-text"
)

var stripPolicy = bluemonday.StrictPolicy()

// ExtractDigest pulls the digest fields out of a server-rendered result
// page. When none of the known elements are present the whole page's
// sanitized text becomes the content, preserving the opaque-HTML contract.
func ExtractDigest(page string) (model.Digest, error) {
	root, err := nethtml.Parse(strings.NewReader(page))
	if err != nil {
		return model.Digest{}, err
	}

	digest := model.Digest{
		Summary: textOfElement(root, ElementSummary),
		Tree:    textOfElement(root, ElementTree),
		Content: textOfElement(root, ElementContent),
	}

	if digest.Empty() {
		digest.Content = PlainText(page)
	}

	return digest, nil
}

// PlainText strips all markup from an HTML fragment and returns the
// remaining text with entities decoded.
func PlainText(page string) string {
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(page)))
}

// textOfElement returns the trimmed text content of the element with the
// given id, or "" when the element is absent.
func textOfElement(root *nethtml.Node, id string) string {
	node := findByID(root, id)
	if node == nil {
		return ""
	}

	var sb strings.Builder
	collectText(node, &sb)
	return strings.TrimSpace(sb.String())
}

func findByID(n *nethtml.Node, id string) *nethtml.Node {
	if n.Type == nethtml.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == "id" && attr.Val == id {
				return n
			}
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findByID(child, id); found != nil {
			return found
		}
	}

	return nil
}

func collectText(n *nethtml.Node, sb *strings.Builder) {
	if n.Type == nethtml.TextNode {
		sb.WriteString(n.Data)
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, sb)
	}
}
