// Package tokens harvests color, typography and spacing defaults from a
// component snapshot. It reads the raw markup, before normalization strips
// class and style attributes.
package tokens

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/contentforge/blockinfer/models"
)

// Fallback tokens used when the markup carries no styling hints at all.
const (
	defaultBackground  = "#ffffff"
	defaultText        = "#1a1a1a"
	defaultAccent      = "#0066cc"
	defaultHeadingSize = "xl"
	defaultBodySize    = "base"
	defaultPadding     = "md"
	defaultGap         = "md"
)

var (
	bgClassRe      = regexp.MustCompile(`(?:^|\s)bg-([a-z]+(?:-\d{2,3})?|\[#[0-9a-fA-F]{3,8}\])`)
	textColorRe    = regexp.MustCompile(`(?:^|\s)text-([a-z]+-\d{2,3}|\[#[0-9a-fA-F]{3,8}\]|white|black)`)
	textSizeRe     = regexp.MustCompile(`(?:^|\s)text-(xs|sm|base|lg|xl|\dxl)`)
	paddingClassRe = regexp.MustCompile(`(?:^|\s)p[txybrl]?-(\d+)`)
	gapClassRe     = regexp.MustCompile(`(?:^|\s)gap-(?:[xy]-)?(\d+)`)
)

// Extract scans the raw markup for styling hints and fills the gaps with
// neutral defaults. First hit in document order wins for every token; the
// result is deterministic for a given input.
func Extract(rawMarkup string) models.DesignTokens {
	out := models.DesignTokens{
		Colors: models.ColorTokens{
			Background: defaultBackground,
			Text:       defaultText,
			Accent:     defaultAccent,
		},
		Typography: models.TypographyTokens{
			HeadingSize: defaultHeadingSize,
			BodySize:    defaultBodySize,
		},
		Spacing: models.SpacingTokens{
			Padding: defaultPadding,
			Gap:     defaultGap,
		},
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawMarkup))
	if err != nil {
		return out
	}

	var (
		bgSet, textSet, accentSet bool
		headingSet, bodySet       bool
		paddingSet, gapSet        bool
	)

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		style, _ := sel.Attr("style")
		actionable := isActionableElement(sel)

		if !bgSet {
			if v := firstMatch(bgClassRe, class); v != "" {
				out.Colors.Background, bgSet = v, true
			} else if v := styleValue(style, "background-color", "background"); v != "" {
				out.Colors.Background, bgSet = v, true
			}
		}

		if color := firstMatch(textColorRe, class); color == "" {
			color = styleValue(style, "color")
			if color != "" {
				assignColor(&out.Colors, color, actionable, &textSet, &accentSet)
			}
		} else {
			assignColor(&out.Colors, color, actionable, &textSet, &accentSet)
		}

		if size := firstMatch(textSizeRe, class); size != "" {
			if isHeadingElement(sel) {
				if !headingSet {
					out.Typography.HeadingSize, headingSet = size, true
				}
			} else if !bodySet {
				out.Typography.BodySize, bodySet = size, true
			}
		}

		if !paddingSet {
			if v := firstMatch(paddingClassRe, class); v != "" {
				out.Spacing.Padding, paddingSet = spacingScale(v), true
			} else if styleValue(style, "padding") != "" {
				out.Spacing.Padding, paddingSet = "md", true
			}
		}
		if !gapSet {
			if v := firstMatch(gapClassRe, class); v != "" {
				out.Spacing.Gap, gapSet = spacingScale(v), true
			} else if styleValue(style, "gap") != "" {
				out.Spacing.Gap, gapSet = "md", true
			}
		}
	})

	if !headingSet {
		if size := headingSizeFromOutline(doc); size != "" {
			out.Typography.HeadingSize = size
		}
	}

	return out
}

// assignColor routes a discovered color to the accent slot for actionable
// elements and the body-text slot otherwise.
func assignColor(colors *models.ColorTokens, value string, actionable bool, textSet, accentSet *bool) {
	if actionable {
		if !*accentSet {
			colors.Accent, *accentSet = value, true
		}
		return
	}
	if !*textSet {
		colors.Text, *textSet = value, true
	}
}

func isActionableElement(sel *goquery.Selection) bool {
	if goquery.NodeName(sel) == "button" || goquery.NodeName(sel) == "a" {
		return true
	}
	role, _ := sel.Attr("role")
	return role == "button"
}

func isHeadingElement(sel *goquery.Selection) bool {
	switch goquery.NodeName(sel) {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// headingSizeFromOutline picks a heading size from the most prominent heading
// tag present when no utility class said otherwise.
func headingSizeFromOutline(doc *goquery.Document) string {
	switch {
	case doc.Find("h1").Length() > 0:
		return "2xl"
	case doc.Find("h2").Length() > 0:
		return "xl"
	case doc.Find("h3, h4").Length() > 0:
		return "lg"
	}
	return ""
}

// spacingScale buckets a utility spacing step into the coarse token scale.
func spacingScale(step string) string {
	switch {
	case len(step) > 1, step > "6":
		return "lg"
	case step > "2":
		return "md"
	}
	return "sm"
}

func firstMatch(re *regexp.Regexp, class string) string {
	m := re.FindStringSubmatch(class)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// styleValue finds the first of the given declaration names in an inline
// style attribute and returns its value.
func styleValue(style string, names ...string) string {
	for _, decl := range strings.Split(style, ";") {
		key, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(strings.ToLower(key))
		for _, name := range names {
			if key == name {
				return strings.TrimSpace(value)
			}
		}
	}
	return ""
}
