// Package analyzer wires the full inference pipeline: content isolation,
// normalization, signal extraction, classification, field derivation, token
// and interaction harvesting, confidence scoring and, for low-confidence
// results, similarity-based enhancement.
package analyzer

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/contentforge/blockinfer/models"
	"github.com/contentforge/blockinfer/pkg/classifier"
	"github.com/contentforge/blockinfer/pkg/confidence"
	"github.com/contentforge/blockinfer/pkg/fields"
	"github.com/contentforge/blockinfer/pkg/interactions"
	"github.com/contentforge/blockinfer/pkg/language"
	"github.com/contentforge/blockinfer/pkg/normalizer"
	"github.com/contentforge/blockinfer/pkg/pagecontext"
	"github.com/contentforge/blockinfer/pkg/signals"
	"github.com/contentforge/blockinfer/pkg/similar"
	"github.com/contentforge/blockinfer/pkg/textstats"
	"github.com/contentforge/blockinfer/pkg/tokens"
)

const fallbackBlockName = "untitled-block"

// debugKeywordCount is how many top content words land in the debug block.
const debugKeywordCount = 5

// Result bundles everything one analysis produces.
type Result struct {
	Analysis   models.BlockAnalysis         `json:"analysis"`
	Confidence models.ConfidenceScore       `json:"confidence"`
	Similar    []models.SimilarBlockPattern `json:"similar,omitempty"`
	Warnings   []string                     `json:"warnings,omitempty"`
}

// Analyzer runs the pipeline with a fixed threshold set. The corpus is
// optional; without one the similarity stage is skipped.
type Analyzer struct {
	th     models.Thresholds
	corpus similar.Corpus
	logger *slog.Logger
}

// New creates an analyzer. corpus may be nil; logger may be nil to disable
// logging.
func New(th models.Thresholds, corpus similar.Corpus, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Analyzer{th: th, corpus: corpus, logger: logger}
}

// Analyze infers the content schema of one component snapshot. The only
// error condition is empty markup; every degradation below that is expressed
// through the confidence score and warnings instead.
func (a *Analyzer) Analyze(req models.AnalyzeRequest) (*Result, error) {
	raw := strings.TrimSpace(req.Markup)
	if raw == "" {
		return nil, fmt.Errorf("markup is required")
	}

	var provenance []string

	if pagecontext.IsFullDocument(raw) {
		raw = pagecontext.IsolateContent(raw)
		provenance = append(provenance, "full document input; main content isolated before analysis")
		a.logger.Debug("isolated main content from full document input")
	}

	canonical := normalizer.NormalizeN(raw, a.th.CollapsePasses)

	var bag *models.SignalBag
	if utf8.RuneCountInString(strings.TrimSpace(canonical)) >= a.th.MinMarkupLength {
		b := signals.Extract(canonical, a.th)
		bag = &b
	} else {
		provenance = append(provenance, "input below minimum analyzable length; signal extraction skipped")
	}

	blockType := models.BlockTypeSingle
	if bag != nil {
		blockType = classifier.Classify(*bag)
	}

	visibleText := extractText(canonical)
	blockName := a.resolveBlockName(req.BlockName, visibleText, &provenance)

	derivation := fields.Derive(canonical, derefBag(bag), blockType, blockName, a.th)
	provenance = append(provenance, derivation.Notes...)

	analysis := models.BlockAnalysis{
		BlockName: blockName,
		BlockType: blockType,
		ContentStructure: models.ContentStructure{
			ContainerFields:      derivation.ContainerFields,
			ItemFields:           derivation.ItemFields,
			ConfigurationOptions: derivation.ConfigOptions,
			JSPattern:            derivation.JSPattern,
		},
		DesignTokens: tokens.Extract(raw),
		Interactions: interactions.Extract(raw, bag, a.th),
		Accessibility: models.Accessibility{
			Language:       language.Detect(visibleText),
			AltFields:      altFields(derivation.ContainerFields, derivation.ItemFields),
			HeadingOutline: headingOutline(bag),
		},
		Debug: &models.Debug{
			Signals:     bag,
			Provenance:  provenance,
			TopKeywords: textstats.TopNWords(visibleText, debugKeywordCount),
		},
	}

	score := confidence.Score(&analysis, bag)

	result := &Result{Analysis: analysis, Confidence: score}

	if a.corpus != nil && score.Overall < a.th.LowConfidence {
		a.enhance(result, bag)
	}

	a.logger.Info("analysis complete",
		"block_name", result.Analysis.BlockName,
		"block_type", result.Analysis.BlockType,
		"confidence", result.Confidence.Overall,
	)

	return result, nil
}

// enhance runs the similarity stage and borrows fields from the best match
// when field extraction came up short.
func (a *Analyzer) enhance(result *Result, bag *models.SignalBag) {
	characteristics := buildCharacteristics(result.Analysis, bag, a.th)

	matches, warnings := similar.FindSimilar(result.Analysis.BlockName, characteristics, a.corpus, a.th)
	result.Similar = matches
	result.Warnings = append(result.Warnings, warnings...)
	for _, w := range warnings {
		a.logger.Warn("similarity matching degraded", "detail", w)
	}
	if len(matches) == 0 {
		return
	}

	result.Analysis, result.Confidence = similar.Enhance(result.Analysis, result.Confidence, matches, a.th)
}

// buildCharacteristics describes the analysis in the vocabulary the matcher
// compares against corpus entries.
func buildCharacteristics(analysis models.BlockAnalysis, bag *models.SignalBag, th models.Thresholds) []string {
	out := []string{string(analysis.ContentStructure.JSPattern), string(analysis.BlockType)}
	if bag != nil && bag.MaxRepeatedCount() >= th.RepeatedNameMin {
		out = append(out, "repeating items")
	}
	return out
}

// resolveBlockName prefers the caller's name, then a keyword-derived slug,
// then the fixed fallback.
func (a *Analyzer) resolveBlockName(requested, visibleText string, provenance *[]string) string {
	if name := strings.TrimSpace(requested); name != "" {
		return name
	}
	if name := textstats.SuggestBlockName(visibleText); name != "" {
		*provenance = append(*provenance, fmt.Sprintf("block name %q derived from dominant content words", name))
		return name
	}
	*provenance = append(*provenance, "no block name available; using fallback")
	return fallbackBlockName
}

// extractText returns the visible text of the markup, whitespace-collapsed.
func extractText(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// altFields lists the alt-text companion fields across both scopes, for the
// accessibility hint block.
func altFields(containerFields, itemFields []models.Field) []string {
	var out []string
	for _, f := range containerFields {
		if strings.HasSuffix(f.Name, "Alt") {
			out = append(out, f.Name)
		}
	}
	for _, f := range itemFields {
		if strings.HasSuffix(f.Name, "Alt") {
			out = append(out, f.Name)
		}
	}
	return out
}

func headingOutline(bag *models.SignalBag) []string {
	if bag == nil {
		return nil
	}
	return bag.DistinctHeadings
}

func derefBag(bag *models.SignalBag) models.SignalBag {
	if bag == nil {
		return models.SignalBag{}
	}
	return *bag
}
