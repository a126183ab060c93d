// Package signals scans canonical markup and produces the flat signal bag
// consumed by classification, field derivation and confidence scoring.
package signals

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/contentforge/blockinfer/internal/common"
	"github.com/contentforge/blockinfer/models"
)

// Extract scans the given canonical markup and returns a SignalBag. Input
// below the minimum length yields the zero-valued bag, never an error.
func Extract(markup string, th models.Thresholds) models.SignalBag {
	bag := models.SignalBag{}

	if utf8.RuneCountInString(strings.TrimSpace(markup)) < th.MinMarkupLength {
		return bag
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return bag
	}

	bag.RepeatedContainerNames = countRepeatedContainers(doc)
	bag.DistinctHeadings = collectHeadings(doc, th.HeadingMaxLen)
	bag.SemanticCTAs = collectCTAs(doc, th.CTAMaxTextLen)
	bag.ActionButtonCount = len(bag.SemanticCTAs)
	bag.ItemLikeContainerCount = countItemLikeContainers(doc)
	bag.GenericContainerCount = countGenericContainers(doc)
	bag.SmallHeadingCount = doc.Find("h3,h4,h5,h6").Length()
	bag.BulletCount = doc.Find("li").Length()

	bag.MultiItemLikely = bag.MaxRepeatedCount() >= th.RepeatedNameMin ||
		len(bag.DistinctHeadings) >= th.DistinctHeadingMin ||
		bag.ItemLikeContainerCount >= th.ItemLikeMin ||
		(bag.GenericContainerCount >= th.GenericContainerMin &&
			(bag.SmallHeadingCount >= th.SmallHeadingMin || bag.BulletCount >= th.BulletMin))

	return bag
}

// countRepeatedContainers counts occurrences of each vocabulary-matching
// container name, keyed by the normalized name.
func countRepeatedContainers(doc *goquery.Document) map[string]int {
	counts := make(map[string]int)
	doc.Find("[data-name]").Each(func(_ int, s *goquery.Selection) {
		normalized := common.NormalizeName(s.AttrOr("data-name", ""))
		if _, ok := matchContainerName(normalized); ok {
			counts[normalized]++
		}
	})
	if len(counts) == 0 {
		return nil
	}
	return counts
}

// collectHeadings gathers heading-level and bold-marked text, capped at
// maxLen characters and deduplicated exactly, in document order.
func collectHeadings(doc *goquery.Document, maxLen int) []string {
	var headings []string
	seen := make(map[string]struct{})
	doc.Find("h1,h2,h3,h4,h5,h6,strong,b").Each(func(_ int, s *goquery.Selection) {
		text := common.TruncateText(common.CleanText(s.Text()), maxLen)
		if text == "" {
			return
		}
		if _, dup := seen[text]; dup {
			return
		}
		seen[text] = struct{}{}
		headings = append(headings, text)
	})
	return headings
}

// collectCTAs extracts calls to action from genuinely actionable elements:
// explicit buttons, links with a real destination, and interactive-component
// markers. Text over maxTextLen characters is rejected; duplicates are
// dropped case-insensitively.
func collectCTAs(doc *goquery.Document, maxTextLen int) []models.SemanticCTA {
	var ctas []models.SemanticCTA
	seen := make(map[string]struct{})

	add := func(text, href string, kind models.CTAType) {
		text = common.CleanText(text)
		if text == "" || utf8.RuneCountInString(text) > maxTextLen {
			return
		}
		key := strings.ToLower(text)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		ctas = append(ctas, models.SemanticCTA{Text: text, Href: href, Type: kind})
	}

	doc.Find(`button,a[href],[role="button"],[data-interactive]`).Each(func(_ int, s *goquery.Selection) {
		switch {
		case s.Is("button"):
			add(s.Text(), "", models.CTATypeButton)
		case s.Is("a"):
			href := strings.TrimSpace(s.AttrOr("href", ""))
			if !common.IsActionableHref(href) {
				return
			}
			add(s.Text(), href, models.CTATypeLink)
		default:
			add(s.Text(), "", models.CTATypeButton)
		}
	})

	return ctas
}

// countItemLikeContainers counts containers whose name matches the item
// vocabulary, plus explicit list-item roles.
func countItemLikeContainers(doc *goquery.Document) int {
	count := 0
	doc.Find("[data-name]").Each(func(_ int, s *goquery.Selection) {
		normalized := common.NormalizeName(s.AttrOr("data-name", ""))
		if _, ok := matchContainerName(normalized); ok {
			count++
		}
	})
	count += doc.Find(`[role="listitem"]`).Length()
	return count
}

// countGenericContainers counts unnamed divs holding at least two element
// children, the shape export tools produce for implicit lists.
func countGenericContainers(doc *goquery.Document) int {
	count := 0
	doc.Find("div").Each(func(_ int, s *goquery.Selection) {
		if _, named := s.Attr("data-name"); named {
			return
		}
		if s.Children().Length() >= 2 {
			count++
		}
	})
	return count
}
