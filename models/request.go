package models

// AnalyzeRequest is the input contract of the analyzer. Markup is required;
// everything else is optional context.
type AnalyzeRequest struct {
	// Markup is the raw component snapshot as exported by the design tool.
	Markup string `json:"markup"`

	// BlockName overrides the inferred block name when the caller knows it.
	BlockName string `json:"block_name,omitempty"`

	// Metadata carries ancillary export metadata. Unused by the core.
	Metadata map[string]string `json:"metadata,omitempty"`

	// VisualRef is an opaque visual reference (e.g. a screenshot path or
	// data URI). Reserved for validation layers outside this module.
	VisualRef string `json:"visual_ref,omitempty"`
}
