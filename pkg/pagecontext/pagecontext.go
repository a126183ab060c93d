// Package pagecontext isolates the analyzable component markup when the
// caller hands over a full exported HTML page instead of a snippet.
package pagecontext

import (
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
)

// IsFullDocument reports whether the markup looks like a complete HTML page
// rather than a component snippet.
func IsFullDocument(markup string) bool {
	head := strings.ToLower(markup)
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.Contains(head, "<!doctype") || strings.Contains(head, "<html")
}

// IsolateContent runs a full document through readability and returns the
// main content region, so navigation chrome and footers do not pollute the
// signal extraction. Returns the input unchanged when isolation fails or
// produces nothing.
func IsolateContent(markup string) string {
	// readability wants a base URL for resolving relative references; the
	// markup never leaves the process, so a placeholder is fine.
	base, err := url.Parse("https://localhost/")
	if err != nil {
		return markup
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(markup), base)
	if err != nil {
		return markup
	}
	if strings.TrimSpace(article.Content) == "" {
		return markup
	}
	return article.Content
}
