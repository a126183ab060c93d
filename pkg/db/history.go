package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/contentforge/blockinfer/models"
)

// AnalysisRecord is one row of the analysis history.
type AnalysisRecord struct {
	ID                  int64     `json:"id"`
	BlockName           string    `json:"block_name"`
	BlockType           string    `json:"block_type"`
	JSPattern           string    `json:"js_pattern"`
	CreatedAt           time.Time `json:"created_at"`
	Overall             int       `json:"overall"`
	BlockTypeScore      int       `json:"block_type_score"`
	FieldExtraction     int       `json:"field_extraction"`
	ContainerFieldCount int       `json:"container_field_count"`
	ItemFieldCount      int       `json:"item_field_count"`
	CTACount            int       `json:"cta_count"`
}

// InsertAnalysis records one finished analysis. The full analysis document
// is stored as JSON next to the queryable summary columns.
func (db *DB) InsertAnalysis(analysis models.BlockAnalysis, score models.ConfidenceScore) (int64, error) {
	doc, err := json.Marshal(analysis)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO analyses (
			block_name, block_type, js_pattern,
			overall, block_type_score, field_extraction_score,
			container_field_count, item_field_count, cta_count,
			result_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		analysis.BlockName,
		string(analysis.BlockType),
		string(analysis.ContentStructure.JSPattern),
		score.Overall,
		score.BlockType,
		score.FieldExtraction,
		len(analysis.ContentStructure.ContainerFields),
		len(analysis.ContentStructure.ItemFields),
		len(analysis.Interactions.CTAButtons),
		string(doc),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis: %w", err)
	}

	return result.LastInsertId()
}

// RecentAnalyses returns the newest history rows, newest first.
func (db *DB) RecentAnalyses(limit int) ([]AnalysisRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT analysis_id, block_name, block_type, js_pattern, created_at,
		       overall, block_type_score, field_extraction_score,
		       container_field_count, item_field_count, cta_count
		FROM analyses
		ORDER BY analysis_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// AnalysesByBlockName returns the history for one block, newest first.
func (db *DB) AnalysesByBlockName(blockName string) ([]AnalysisRecord, error) {
	rows, err := db.Query(`
		SELECT analysis_id, block_name, block_type, js_pattern, created_at,
		       overall, block_type_score, field_extraction_score,
		       container_field_count, item_field_count, cta_count
		FROM analyses
		WHERE block_name = ?
		ORDER BY analysis_id DESC`, blockName)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses for %q: %w", blockName, err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// GetAnalysisDocument returns the stored full analysis JSON for one row.
func (db *DB) GetAnalysisDocument(id int64) (*models.BlockAnalysis, error) {
	var doc sql.NullString
	err := db.QueryRow(`SELECT result_json FROM analyses WHERE analysis_id = ?`, id).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("analysis %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis %d: %w", id, err)
	}
	if !doc.Valid || doc.String == "" {
		return nil, fmt.Errorf("analysis %d has no stored document", id)
	}

	var analysis models.BlockAnalysis
	if err := json.Unmarshal([]byte(doc.String), &analysis); err != nil {
		return nil, fmt.Errorf("stored document for analysis %d is malformed: %w", id, err)
	}
	return &analysis, nil
}

// CountByBlockType aggregates the history per block type.
func (db *DB) CountByBlockType() (map[string]int, error) {
	rows, err := db.Query(`SELECT block_type, COUNT(*) FROM analyses GROUP BY block_type`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate analyses: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var blockType string
		var count int
		if err := rows.Scan(&blockType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan aggregate row: %w", err)
		}
		counts[blockType] = count
	}
	return counts, rows.Err()
}

func scanRecords(rows *sql.Rows) ([]AnalysisRecord, error) {
	var records []AnalysisRecord
	for rows.Next() {
		var r AnalysisRecord
		if err := rows.Scan(
			&r.ID, &r.BlockName, &r.BlockType, &r.JSPattern, &r.CreatedAt,
			&r.Overall, &r.BlockTypeScore, &r.FieldExtraction,
			&r.ContainerFieldCount, &r.ItemFieldCount, &r.CTACount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
