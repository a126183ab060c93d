package common

import (
	"bufio"
	"strings"
)

// NormalizeName lowercases a container name and strips everything but
// letters and digits, so "Card-Item_2", "card item" and "CardItem" all
// compare equal during vocabulary matching.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Slugify turns free text into a lowercase hyphenated identifier suitable
// for a block name, e.g. "Our Services " -> "our-services".
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case ('a' <= r && r <= 'z') || ('0' <= r && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// CleanText collapses a multi-line string into single-space-separated text.
func CleanText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(strings.Join(strings.Fields(b.String()), " "))
}

// TruncateText cuts text to at most max runes without splitting the last rune.
func TruncateText(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}

// IsActionableHref rejects empty, placeholder and script pseudo-URL hrefs.
func IsActionableHref(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" || href == "#" {
		return false
	}
	return !strings.HasPrefix(strings.ToLower(href), "javascript:")
}

// TitleCase uppercases the first letter of each hyphen- or space-separated
// word, for generating human-readable field labels.
func TitleCase(text string) string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
