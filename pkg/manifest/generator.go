package manifest

import (
	"fmt"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/contentforge/blockinfer/pkg/storage"
)

// GenerateSummary writes the batch summary manifest into outDir and returns
// its path.
func GenerateSummary(results []BatchResult, outDir string, s *storage.Storage) (string, error) {
	summary := SummaryManifest{
		GeneratedAt: time.Now().Format(time.RFC3339),
		TotalFiles:  len(results),
	}

	for _, result := range results {
		entry := BlockSummary{Path: result.Path}

		if result.Error != nil {
			summary.Failed++
			entry.Status = "error"
			entry.ErrorType = result.ErrorType
			entry.ErrorMessage = result.Error.Error()
		} else {
			summary.Successful++
			entry.Status = "success"

			if result.Result != nil {
				analysis := result.Result.Analysis
				entry.BlockName = analysis.BlockName
				entry.BlockType = string(analysis.BlockType)
				entry.JSPattern = string(analysis.ContentStructure.JSPattern)
				entry.Confidence = result.Result.Confidence.Overall
				entry.FieldCount = len(analysis.ContentStructure.ContainerFields) +
					len(analysis.ContentStructure.ItemFields)
				if analysis.Debug != nil {
					entry.TopKeywords = analysis.Debug.TopKeywords
				}
			}
		}

		summary.Results = append(summary.Results, entry)
	}

	manifestPath := filepath.Join(outDir, fmt.Sprintf("summary-%s.yaml", time.Now().Format("2006-01-02")))
	data, err := yaml.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("error marshalling manifest: %w", err)
	}

	if err := s.SaveFile(manifestPath, data); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}

	return manifestPath, nil
}
