package news

import (
	"fmt"
	"strings"
)

// maxDigestArticles bounds the digest to the top results regardless of how
// many the source returned.
const maxDigestArticles = 3

const emptyDigest = "No fresh market news found."

// BuildDigest formats the top articles as one "- title: url" line each.
func BuildDigest(articles []Article) string {
	if len(articles) == 0 {
		return emptyDigest
	}

	if len(articles) > maxDigestArticles {
		articles = articles[:maxDigestArticles]
	}

	lines := make([]string, 0, len(articles))
	for _, a := range articles {
		lines = append(lines, fmt.Sprintf("- %s: %s", a.Title, a.URL))
	}

	return strings.Join(lines, "\n")
}
