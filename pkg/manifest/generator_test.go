package manifest

import (
	"errors"
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/contentforge/blockinfer/models"
	"github.com/contentforge/blockinfer/pkg/analyzer"
	"github.com/contentforge/blockinfer/pkg/storage"
)

func TestGenerateSummary(t *testing.T) {
	results := []BatchResult{
		{
			Path: "exports/cards.html",
			Result: &analyzer.Result{
				Analysis: models.BlockAnalysis{
					BlockName: "feature-cards",
					BlockType: models.BlockTypeMulti,
					ContentStructure: models.ContentStructure{
						ContainerFields: []models.Field{{Name: "heading"}},
						ItemFields:      []models.Field{{Name: "heading"}, {Name: "cta"}},
						JSPattern:       models.JSPatternCards,
					},
					Debug: &models.Debug{TopKeywords: []string{"pricing", "teams"}},
				},
				Confidence: models.ConfidenceScore{Overall: 85},
			},
		},
		{
			Path:      "exports/broken.html",
			Error:     errors.New("markup is required"),
			ErrorType: "invalid_input",
		},
	}

	outDir := t.TempDir()
	path, err := GenerateSummary(results, outDir, &storage.Storage{})
	if err != nil {
		t.Fatalf("GenerateSummary() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}

	var got SummaryManifest
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("manifest is not valid YAML: %v", err)
	}

	if got.TotalFiles != 2 || got.Successful != 1 || got.Failed != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", got.TotalFiles, got.Successful, got.Failed)
	}
	if len(got.Results) != 2 {
		t.Fatalf("Results = %d entries, want 2", len(got.Results))
	}

	ok := got.Results[0]
	if ok.Status != "success" || ok.BlockName != "feature-cards" || ok.FieldCount != 3 {
		t.Errorf("success entry = %+v", ok)
	}
	if ok.Confidence != 85 || ok.JSPattern != "cards" {
		t.Errorf("success entry scores = %+v", ok)
	}

	bad := got.Results[1]
	if bad.Status != "error" || bad.ErrorType != "invalid_input" || bad.ErrorMessage == "" {
		t.Errorf("error entry = %+v", bad)
	}
}
