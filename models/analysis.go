// Package models defines the data structures shared across the analysis pipeline.
package models

// BlockType classifies a block as a one-off or a repeating list of items.
type BlockType string

const (
	BlockTypeSingle BlockType = "single"
	BlockTypeMulti  BlockType = "multi-item"
)

// JSPattern selects which behavior template family a downstream generator
// should use for the block.
type JSPattern string

const (
	JSPatternCards     JSPattern = "cards"
	JSPatternCarousel  JSPattern = "carousel"
	JSPatternDecorated JSPattern = "decorated"
)

// BlockAnalysis is the root result of analyzing one component snapshot.
// It is built fresh per call and only the enhancement step produces a
// modified copy; nothing is shared between concurrent analyses.
type BlockAnalysis struct {
	BlockName        string           `json:"block_name"`
	BlockType        BlockType        `json:"block_type"`
	ContentStructure ContentStructure `json:"content_structure"`
	DesignTokens     DesignTokens     `json:"design_tokens"`
	Interactions     Interactions     `json:"interactions"`
	Accessibility    Accessibility    `json:"accessibility"`

	// Debug carries the signal bag and provenance notes. Informational only;
	// consumers must not depend on its shape.
	Debug *Debug `json:"debug,omitempty"`
}

// ContentStructure describes the fields a content-managed equivalent of the
// block needs, split into container scope and (for multi-item blocks) item scope.
type ContentStructure struct {
	ContainerFields      []Field   `json:"container_fields"`
	ItemFields           []Field   `json:"item_fields,omitempty"`
	ConfigurationOptions []string  `json:"configuration_options,omitempty"`
	JSPattern            JSPattern `json:"js_pattern"`
}

// DesignTokens holds color/typography/spacing defaults harvested from the
// snapshot's utility classes and inline styles.
type DesignTokens struct {
	Colors     ColorTokens      `json:"colors"`
	Typography TypographyTokens `json:"typography"`
	Spacing    SpacingTokens    `json:"spacing"`
}

type ColorTokens struct {
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
	Accent     string `json:"accent,omitempty"`
}

type TypographyTokens struct {
	HeadingSize string `json:"heading_size,omitempty"`
	BodySize    string `json:"body_size,omitempty"`
}

type SpacingTokens struct {
	Padding string `json:"padding,omitempty"`
	Gap     string `json:"gap,omitempty"`
}

// Interactions summarizes the actionable surface of the block.
type Interactions struct {
	CTAButtons []CTAButton `json:"cta_buttons,omitempty"`
	Links      []string    `json:"links,omitempty"`
	Hovers     []string    `json:"hovers,omitempty"`
}

// CTAButton is a deduplicated call-to-action.
type CTAButton struct {
	Text string  `json:"text"`
	Href string  `json:"href,omitempty"`
	Type CTAType `json:"type"`
}

// Accessibility holds hints for the editor/rendering layers.
type Accessibility struct {
	Language       string   `json:"language,omitempty"`
	AltFields      []string `json:"alt_fields,omitempty"`
	HeadingOutline []string `json:"heading_outline,omitempty"`
}

// Debug is the provenance side of an analysis: the raw signal bag plus
// ordered notes about which heuristics fired.
type Debug struct {
	Signals     *SignalBag `json:"signals,omitempty"`
	Provenance  []string   `json:"provenance,omitempty"`
	TopKeywords []string   `json:"top_keywords,omitempty"`
}
