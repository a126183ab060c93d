// Package fields walks canonical markup and derives the typed field
// descriptors a content-managed version of the block needs, split into
// container scope and item scope.
package fields

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/contentforge/blockinfer/internal/common"
	"github.com/contentforge/blockinfer/models"
)

// Derivation is the result of a field-derivation pass.
type Derivation struct {
	ContainerFields []models.Field
	ItemFields      []models.Field
	JSPattern       models.JSPattern
	ConfigOptions   []string
	Notes           []string
}

// Derive runs the container-first pass and, for multi-item blocks, the
// per-candidate item pass, then selects the rendering-pattern tag.
func Derive(markup string, bag models.SignalBag, blockType models.BlockType, blockName string, th models.Thresholds) Derivation {
	d := Derivation{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		d.JSPattern = models.JSPatternCards
		return d
	}

	candidates := findItemCandidates(doc, bag, blockType, th)

	d.ContainerFields = deriveContainerFields(doc, candidates, th, &d.Notes)

	if blockType == models.BlockTypeMulti {
		d.ItemFields = deriveItemFields(candidates, th, &d.Notes)
	}

	d.JSPattern = selectJSPattern(blockName, d.ItemFields, &d.Notes)
	d.ConfigOptions = configOptions(blockType, d.JSPattern)

	return d
}

// findItemCandidates locates the repeating-container elements an item pass
// should inspect. Preference order: the most repeated vocabulary name, then
// explicit list items.
func findItemCandidates(doc *goquery.Document, bag models.SignalBag, blockType models.BlockType, th models.Thresholds) *goquery.Selection {
	if blockType != models.BlockTypeMulti {
		return doc.Selection.Slice(0, 0)
	}

	topName, topCount := "", 0
	for name, count := range bag.RepeatedContainerNames {
		if count > topCount || (count == topCount && name < topName) {
			topName, topCount = name, count
		}
	}

	if topCount >= th.RepeatedNameMin {
		return doc.Find("[data-name]").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return common.NormalizeName(s.AttrOr("data-name", "")) == topName
		})
	}

	if bag.BulletCount >= th.ItemLikeMin {
		return doc.Find("li")
	}

	return doc.Selection.Slice(0, 0)
}

// deriveContainerFields implements the container pass: a single leading
// heading, an adjacent icon paired with its alt field, and remaining
// descriptive text as either text or richText, never both.
func deriveContainerFields(doc *goquery.Document, candidates *goquery.Selection, th models.Thresholds, notes *[]string) []models.Field {
	var out []models.Field

	headings := doc.Find("h1,h2,h3,h4,h5,h6").NotSelection(candidates.Find("h1,h2,h3,h4,h5,h6"))
	if headings.Length() > 0 {
		text := common.CleanText(headings.First().Text())
		if text != "" {
			out = append(out, textField("heading", "Heading", true, th.HeadingMaxLen))
			*notes = append(*notes, fmt.Sprintf("container: heading from <%s> %q", goquery.NodeName(headings.First()), common.TruncateText(text, 40)))
		}
	}

	images := doc.Find("img,svg,picture").NotSelection(candidates.Find("img,svg,picture"))
	if images.Length() > 0 {
		out = append(out, refField("icon", "Icon", "asset"), textField("iconAlt", "Icon Alt Text", false, 0))
		*notes = append(*notes, "container: icon/image with paired alt field")
	}

	paragraphs := descriptiveParagraphs(doc.Find("p").NotSelection(candidates.Find("p")))
	bullets := doc.Find("li").NotSelection(candidates.Filter("li")).NotSelection(candidates.Find("li")).Length()

	switch {
	case bullets > 0 || len(paragraphs) >= 2:
		out = append(out, richTextField("richText", "Rich Text"))
		*notes = append(*notes, fmt.Sprintf("container: richText (%d paragraphs, %d bullets)", len(paragraphs), bullets))
	case len(paragraphs) == 1 && utf8.RuneCountInString(paragraphs[0]) <= th.DescriptionMaxLen:
		out = append(out, textField("text", "Text", false, th.DescriptionMaxLen))
		*notes = append(*notes, "container: single short paragraph as text")
	case len(paragraphs) == 1:
		out = append(out, richTextField("richText", "Rich Text"))
		*notes = append(*notes, "container: long paragraph as richText")
	}

	return out
}

// itemTraits records which field types one item candidate exhibits.
type itemTraits struct {
	heading     bool
	icon        bool
	description bool
	richContent bool
	cta         bool
}

// deriveItemFields inspects every candidate and adds a field type to the
// item schema only if at least one item actually exhibits it.
func deriveItemFields(candidates *goquery.Selection, th models.Thresholds, notes *[]string) []models.Field {
	if candidates.Length() == 0 {
		return nil
	}

	var agg itemTraits
	candidates.Each(func(_ int, s *goquery.Selection) {
		t := inspectItem(s, th)
		agg.heading = agg.heading || t.heading
		agg.icon = agg.icon || t.icon
		agg.description = agg.description || t.description
		agg.richContent = agg.richContent || t.richContent
		agg.cta = agg.cta || t.cta
	})

	var out []models.Field
	if agg.heading {
		out = append(out, textField("heading", "Heading", true, th.HeadingMaxLen))
	}
	if agg.icon {
		out = append(out, refField("icon", "Icon", "asset"), textField("iconAlt", "Icon Alt Text", false, 0))
	}
	if agg.description {
		out = append(out, textField("description", "Description", false, th.DescriptionMaxLen))
	}
	if agg.richContent {
		out = append(out, richTextField("richContent", "Rich Content"))
	}
	if agg.cta {
		out = append(out, refField("cta", "CTA Link", "link"), textField("ctaText", "CTA Text", false, 0))
	}

	*notes = append(*notes, fmt.Sprintf("items: %d candidates, fields %v", candidates.Length(), models.FieldNames(out)))
	return out
}

// inspectItem checks one repeating candidate for field-type evidence.
func inspectItem(s *goquery.Selection, th models.Thresholds) itemTraits {
	t := itemTraits{}

	if s.Find("h1,h2,h3,h4,h5,h6,strong,b").Length() > 0 {
		t.heading = true
	}
	if s.Find("img,svg,picture").Length() > 0 {
		t.icon = true
	}
	s.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		n := utf8.RuneCountInString(common.CleanText(p.Text()))
		if n >= th.DescriptionMinLen && n <= th.DescriptionMaxLen {
			t.description = true
			return false
		}
		return true
	})
	if s.Find("li").Length() > 0 {
		t.richContent = true
	}
	if s.Find("button").Length() > 0 {
		t.cta = true
	} else {
		s.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			if common.IsActionableHref(a.AttrOr("href", "")) {
				t.cta = true
				return false
			}
			return true
		})
	}

	return t
}

// carousel-before-cards is a fixed, observable priority order.
func selectJSPattern(blockName string, itemFields []models.Field, notes *[]string) models.JSPattern {
	name := common.NormalizeName(blockName)

	switch {
	case strings.Contains(name, "carousel") || strings.Contains(name, "slider") || strings.Contains(name, "gallery"):
		*notes = append(*notes, "jsPattern: carousel (name match)")
		return models.JSPatternCarousel
	case strings.Contains(name, "card"):
		*notes = append(*notes, "jsPattern: cards (name match)")
		return models.JSPatternCards
	}

	for _, f := range itemFields {
		if f.Component == models.ComponentRichText {
			*notes = append(*notes, "jsPattern: decorated (richtext item field)")
			return models.JSPatternDecorated
		}
	}

	*notes = append(*notes, "jsPattern: cards (default)")
	return models.JSPatternCards
}

// configOptions lists the editor configuration switches each pattern family
// understands. Single blocks carry none.
func configOptions(blockType models.BlockType, pattern models.JSPattern) []string {
	if blockType != models.BlockTypeMulti {
		return nil
	}
	switch pattern {
	case models.JSPatternCarousel:
		return []string{"autoplay", "loop", "slides-per-view"}
	case models.JSPatternDecorated:
		return []string{"style-variant"}
	default:
		return []string{"columns"}
	}
}

// descriptiveParagraphs returns the cleaned non-empty paragraph texts.
func descriptiveParagraphs(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if text := common.CleanText(s.Text()); text != "" {
			out = append(out, text)
		}
	})
	return out
}

func textField(name, label string, required bool, maxLen int) models.Field {
	return models.Field{
		Name:      name,
		Label:     label,
		Component: models.ComponentText,
		ValueType: "string",
		Required:  required,
		MaxLength: maxLen,
	}
}

func richTextField(name, label string) models.Field {
	return models.Field{
		Name:      name,
		Label:     label,
		Component: models.ComponentRichText,
		ValueType: "html",
	}
}

func refField(name, label, valueType string) models.Field {
	return models.Field{
		Name:      name,
		Label:     label,
		Component: models.ComponentRef,
		ValueType: valueType,
	}
}
