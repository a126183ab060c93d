// Package normalizer turns verbose design-export markup into compact
// canonical markup that the downstream pattern matching can rely on.
package normalizer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/contentforge/blockinfer/internal/common"
)

// DefaultCollapsePasses bounds the wrapper-collapse iteration.
const DefaultCollapsePasses = 5

// Normalize strips presentation noise (utility class lists, inline style
// declarations, style blocks), collapses layout-only wrappers around a single
// named child, and flattens icon/image subtrees to their first image leaf.
//
// Normalize is idempotent: running it on already-canonical markup returns the
// input unchanged. Input that cannot be parsed is returned unchanged.
func Normalize(markup string) string {
	return NormalizeN(markup, DefaultCollapsePasses)
}

// NormalizeN is Normalize with an explicit wrapper-collapse pass bound.
func NormalizeN(markup string, passes int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return markup
	}

	mutated := false

	if sel := doc.Find("style"); sel.Length() > 0 {
		sel.Remove()
		mutated = true
	}

	if sel := doc.Find("[class],[style]"); sel.Length() > 0 {
		sel.Each(func(_ int, s *goquery.Selection) {
			s.RemoveAttr("class")
			s.RemoveAttr("style")
		})
		mutated = true
	}

	if passes <= 0 {
		passes = DefaultCollapsePasses
	}
	for i := 0; i < passes; i++ {
		if !collapseWrappers(doc) {
			break
		}
		mutated = true
	}

	if flattenIconTrees(doc) {
		mutated = true
	}

	if !mutated {
		return markup
	}

	out, err := doc.Find("body").Html()
	if err != nil {
		return markup
	}
	return strings.TrimSpace(out)
}

// collapseWrappers replaces each unnamed layout element that wraps exactly
// one named child (and no text of its own) with that child. Returns whether
// anything was collapsed.
func collapseWrappers(doc *goquery.Document) bool {
	collapsed := false
	doc.Find("div,span,section").Each(func(_ int, s *goquery.Selection) {
		if isNamed(s) {
			return
		}
		children := s.Children()
		if children.Length() != 1 {
			return
		}
		child := children.First()
		if !isNamed(child) {
			return
		}
		if strings.TrimSpace(ownText(s)) != "" {
			return
		}
		s.ReplaceWithSelection(child)
		collapsed = true
	})
	return collapsed
}

// flattenIconTrees reduces icon/image wrapper subtrees to the first
// image-producing leaf inside them. Returns whether anything changed.
func flattenIconTrees(doc *goquery.Document) bool {
	flattened := false
	doc.Find("[data-name]").Each(func(_ int, s *goquery.Selection) {
		name := common.NormalizeName(s.AttrOr("data-name", ""))
		if !strings.Contains(name, "icon") && !strings.Contains(name, "image") && !strings.Contains(name, "img") {
			return
		}
		leaf := s.Find("img,svg,picture").First()
		if leaf.Length() == 0 {
			return
		}
		children := s.Children()
		if children.Length() == 1 && len(children.First().Nodes) > 0 && len(leaf.Nodes) > 0 &&
			children.First().Nodes[0] == leaf.Nodes[0] {
			return // already flat
		}
		leafHTML, err := goquery.OuterHtml(leaf)
		if err != nil {
			return
		}
		s.SetHtml(leafHTML)
		flattened = true
	})
	return flattened
}

// isNamed reports whether an element carries a semantic name, i.e. a
// data-name or id attribute.
func isNamed(s *goquery.Selection) bool {
	if _, ok := s.Attr("data-name"); ok {
		return true
	}
	_, ok := s.Attr("id")
	return ok
}

// ownText returns the element's direct text content, excluding children.
func ownText(s *goquery.Selection) string {
	clone := s.Clone()
	clone.Children().Remove()
	return clone.Text()
}
