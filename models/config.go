package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds collects every tunable heuristic parameter. The defaults were
// tuned against one export tool's output shape and deliberately lean toward
// false multi-item positives, which confidence scoring exposes later.
type Thresholds struct {
	// Signal extraction
	MinMarkupLength     int `yaml:"min_markup_length"`
	RepeatedNameMin     int `yaml:"repeated_name_min"`
	DistinctHeadingMin  int `yaml:"distinct_heading_min"`
	ItemLikeMin         int `yaml:"item_like_min"`
	GenericContainerMin int `yaml:"generic_container_min"`
	SmallHeadingMin     int `yaml:"small_heading_min"`
	BulletMin           int `yaml:"bullet_min"`
	HeadingMaxLen       int `yaml:"heading_max_len"`
	CTAMaxTextLen       int `yaml:"cta_max_text_len"`

	// Field derivation
	DescriptionMinLen int `yaml:"description_min_len"`
	DescriptionMaxLen int `yaml:"description_max_len"`
	MaxCTAButtons     int `yaml:"max_cta_buttons"`

	// Normalization
	CollapsePasses int `yaml:"collapse_passes"`

	// Similarity matching
	SimilarityCutoff   int `yaml:"similarity_cutoff"`
	LowConfidence      int `yaml:"low_confidence"`
	LowFieldExtraction int `yaml:"low_field_extraction"`
	MaxSimilar         int `yaml:"max_similar"`
}

// DefaultThresholds returns the tuned defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinMarkupLength:     20,
		RepeatedNameMin:     2,
		DistinctHeadingMin:  2,
		ItemLikeMin:         2,
		GenericContainerMin: 2,
		SmallHeadingMin:     2,
		BulletMin:           4,
		HeadingMaxLen:       60,
		CTAMaxTextLen:       100,
		DescriptionMinLen:   20,
		DescriptionMaxLen:   500,
		MaxCTAButtons:       3,
		CollapsePasses:      5,
		SimilarityCutoff:    40,
		LowConfidence:       70,
		LowFieldExtraction:  50,
		MaxSimilar:          5,
	}
}

// LoadThresholds reads a YAML thresholds file and merges it over the
// defaults: zero values in the file keep their default.
func LoadThresholds(path string) (Thresholds, error) {
	defaults := DefaultThresholds()

	data, err := os.ReadFile(path)
	if err != nil {
		return defaults, fmt.Errorf("failed to read thresholds file: %w", err)
	}

	var loaded Thresholds
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return defaults, fmt.Errorf("failed to parse thresholds file: %w", err)
	}

	merged := defaults
	mergeInt := func(dst *int, src int) {
		if src > 0 {
			*dst = src
		}
	}
	mergeInt(&merged.MinMarkupLength, loaded.MinMarkupLength)
	mergeInt(&merged.RepeatedNameMin, loaded.RepeatedNameMin)
	mergeInt(&merged.DistinctHeadingMin, loaded.DistinctHeadingMin)
	mergeInt(&merged.ItemLikeMin, loaded.ItemLikeMin)
	mergeInt(&merged.GenericContainerMin, loaded.GenericContainerMin)
	mergeInt(&merged.SmallHeadingMin, loaded.SmallHeadingMin)
	mergeInt(&merged.BulletMin, loaded.BulletMin)
	mergeInt(&merged.HeadingMaxLen, loaded.HeadingMaxLen)
	mergeInt(&merged.CTAMaxTextLen, loaded.CTAMaxTextLen)
	mergeInt(&merged.DescriptionMinLen, loaded.DescriptionMinLen)
	mergeInt(&merged.DescriptionMaxLen, loaded.DescriptionMaxLen)
	mergeInt(&merged.MaxCTAButtons, loaded.MaxCTAButtons)
	mergeInt(&merged.CollapsePasses, loaded.CollapsePasses)
	mergeInt(&merged.SimilarityCutoff, loaded.SimilarityCutoff)
	mergeInt(&merged.LowConfidence, loaded.LowConfidence)
	mergeInt(&merged.LowFieldExtraction, loaded.LowFieldExtraction)
	mergeInt(&merged.MaxSimilar, loaded.MaxSimilar)

	return merged, nil
}
