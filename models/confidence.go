package models

// ConfidenceScore grades an analysis. All three scores are clamped to
// [0,100]; Reasons and Suggestions are ordered, append-only audit trails.
type ConfidenceScore struct {
	Overall         int      `json:"overall"`
	BlockType       int      `json:"block_type"`
	FieldExtraction int      `json:"field_extraction"`
	Reasons         []string `json:"reasons,omitempty"`
	Suggestions     []string `json:"suggestions,omitempty"`
}

// SimilarBlockPattern is a ranked corpus match whose fields can be borrowed
// when a low-confidence derivation came up empty.
type SimilarBlockPattern struct {
	BlockName             string   `json:"block_name"`
	Similarity            int      `json:"similarity"`
	SharedCharacteristics []string `json:"shared_characteristics,omitempty"`
	SuggestedFields       []Field  `json:"suggested_fields,omitempty"`
}

// BlockSchema is a previously generated schema stored in the corpus. Every
// field is optional; the matcher only needs whatever happens to be present.
type BlockSchema struct {
	BlockName       string    `json:"block_name"`
	BlockType       BlockType `json:"block_type,omitempty"`
	JSPattern       JSPattern `json:"js_pattern,omitempty"`
	ContainerFields []Field   `json:"container_fields,omitempty"`
	ItemFields      []Field   `json:"item_fields,omitempty"`
	Characteristics []string  `json:"characteristics,omitempty"`
}
