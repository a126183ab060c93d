// Package manifest summarizes a batch analysis run into one YAML document,
// so a reviewer can scan the outcome without opening every result file.
package manifest

import (
	"github.com/contentforge/blockinfer/pkg/analyzer"
)

// BatchResult is the outcome of analyzing one snapshot file.
type BatchResult struct {
	Path      string
	BlockName string
	Result    *analyzer.Result
	Error     error
	ErrorType string
}

// SummaryManifest is the structure of the batch summary file. It gives a
// lightweight overview of every analyzed snapshot without requiring readers
// to open the full per-file results.
type SummaryManifest struct {
	GeneratedAt string         `yaml:"generated_at"`
	TotalFiles  int            `yaml:"total_files"`
	Successful  int            `yaml:"successful"`
	Failed      int            `yaml:"failed"`
	Results     []BlockSummary `yaml:"results"`
}

// BlockSummary is one snapshot's line in the manifest.
type BlockSummary struct {
	Path         string   `yaml:"path"`
	Status       string   `yaml:"status"`
	BlockName    string   `yaml:"block_name,omitempty"`
	BlockType    string   `yaml:"block_type,omitempty"`
	JSPattern    string   `yaml:"js_pattern,omitempty"`
	Confidence   int      `yaml:"confidence,omitempty"`
	FieldCount   int      `yaml:"field_count,omitempty"`
	TopKeywords  []string `yaml:"top_keywords,omitempty"`
	ErrorType    string   `yaml:"error_type,omitempty"`
	ErrorMessage string   `yaml:"error_message,omitempty"`
}
