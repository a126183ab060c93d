// Package interactions summarizes the actionable surface of a block: a
// capped call-to-action list, link destinations and hover effect markers.
package interactions

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/contentforge/blockinfer/internal/common"
	"github.com/contentforge/blockinfer/models"
)

// Extract builds the interaction summary. CTAs come from the signal bag,
// already deduplicated and in document order; links and hover markers are
// read from the raw markup because the normalizer strips class attributes.
func Extract(rawMarkup string, bag *models.SignalBag, th models.Thresholds) models.Interactions {
	var out models.Interactions

	if bag != nil {
		out.CTAButtons = ctaButtons(bag.SemanticCTAs, th.MaxCTAButtons)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawMarkup))
	if err != nil {
		return out
	}
	out.Links = collectLinks(doc)
	out.Hovers = collectHovers(doc)

	return out
}

func ctaButtons(ctas []models.SemanticCTA, max int) []models.CTAButton {
	if max > 0 && len(ctas) > max {
		ctas = ctas[:max]
	}
	out := make([]models.CTAButton, 0, len(ctas))
	for _, cta := range ctas {
		out = append(out, models.CTAButton{
			Text: cta.Text,
			Href: cta.Href,
			Type: cta.Type,
		})
	}
	return out
}

// collectLinks gathers real destinations in document order, deduplicated.
func collectLinks(doc *goquery.Document) []string {
	seen := make(map[string]bool)
	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if !common.IsActionableHref(href) || seen[href] {
			return
		}
		seen[href] = true
		links = append(links, href)
	})
	return links
}

// collectHovers finds hover-variant utility classes (hover:bg-..., etc.) and
// explicit data-hover markers.
func collectHovers(doc *goquery.Document) []string {
	seen := make(map[string]bool)
	var hovers []string
	add := func(marker string) {
		if marker == "" || seen[marker] {
			return
		}
		seen[marker] = true
		hovers = append(hovers, marker)
	}

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		if class, ok := sel.Attr("class"); ok {
			for _, token := range strings.Fields(class) {
				if strings.HasPrefix(token, "hover:") {
					add(token)
				}
			}
		}
		if marker, ok := sel.Attr("data-hover"); ok {
			add(strings.TrimSpace(marker))
		}
	})
	return hovers
}
