package models

// CTAType distinguishes button-style from link-style calls to action.
type CTAType string

const (
	CTATypeButton CTAType = "button"
	CTATypeLink   CTAType = "link"
)

// SemanticCTA is an actionable element found in the markup.
type SemanticCTA struct {
	Text string  `json:"text"`
	Href string  `json:"href,omitempty"`
	Type CTAType `json:"type"`
}

// SignalBag is the ephemeral result of scanning canonical markup. It feeds
// classification, field derivation and confidence scoring; it is never
// persisted.
type SignalBag struct {
	RepeatedContainerNames map[string]int `json:"repeated_container_names,omitempty"`
	DistinctHeadings       []string       `json:"distinct_headings,omitempty"`
	ActionButtonCount      int            `json:"action_button_count"`
	ItemLikeContainerCount int            `json:"item_like_container_count"`
	GenericContainerCount  int            `json:"generic_container_count"`
	SmallHeadingCount      int            `json:"small_heading_count"`
	BulletCount            int            `json:"bullet_count"`
	MultiItemLikely        bool           `json:"multi_item_likely"`
	SemanticCTAs           []SemanticCTA  `json:"semantic_ctas,omitempty"`
}

// MaxRepeatedCount returns the highest occurrence count among repeated
// container names, or 0 if none were seen.
func (b *SignalBag) MaxRepeatedCount() int {
	max := 0
	for _, count := range b.RepeatedContainerNames {
		if count > max {
			max = count
		}
	}
	return max
}
