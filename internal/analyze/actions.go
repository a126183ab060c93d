// Package analyze implements the CLI actions around the analyzer pipeline.
package analyze

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/contentforge/blockinfer/internal/common"
	"github.com/contentforge/blockinfer/models"
	"github.com/contentforge/blockinfer/pkg/analyzer"
	"github.com/contentforge/blockinfer/pkg/corpus"
	"github.com/contentforge/blockinfer/pkg/db"
	"github.com/contentforge/blockinfer/pkg/manifest"
	"github.com/contentforge/blockinfer/pkg/similar"
	"github.com/contentforge/blockinfer/pkg/storage"
)

// AnalyzeAction handles both single-file and directory-batch analysis.
func AnalyzeAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	th, err := loadThresholds(c.String("thresholds"), logger)
	if err != nil {
		return err
	}

	var store similar.Corpus
	if dir := c.String("corpus"); dir != "" {
		store = corpus.NewStore(dir)
	}
	a := analyzer.New(th, store, logger)

	history := openHistory(c.String("db"), c.Bool("no-history"), logger)
	if history != nil {
		defer history.Close()
	}

	if dir := c.String("dir"); dir != "" {
		return runBatch(c, a, history, dir, logger)
	}

	file := c.String("file")
	if file == "" {
		return fmt.Errorf("either --file or --dir is required")
	}
	return runSingle(c, a, history, file, logger)
}

func runSingle(c *cli.Context, a *analyzer.Analyzer, history *db.DB, file string, logger *slog.Logger) error {
	markup, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read markup file: %w", err)
	}

	result, err := a.Analyze(models.AnalyzeRequest{
		Markup:    string(markup),
		BlockName: c.String("name"),
	})
	if err != nil {
		resp := models.NewErrorResponse("invalid_input", err.Error(),
			"provide the exported component markup via --file",
			"check that the file is not empty")
		if werr := common.WriteResponse(c.App.Writer, resp, c.String("format")); werr != nil {
			return werr
		}
		return cli.Exit("", 1)
	}

	recordHistory(history, result, logger)

	resp := models.Response{
		Status:     "ok",
		Data:       result,
		Confidence: result.Confidence.Overall,
		Warnings:   result.Warnings,
	}
	return common.WriteResponse(c.App.Writer, resp, c.String("format"))
}

func runBatch(c *cli.Context, a *analyzer.Analyzer, history *db.DB, dir string, logger *slog.Logger) error {
	files, err := snapshotFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .html or .xml snapshot files found in %s", dir)
	}

	outDir := c.String("out")
	if outDir == "" {
		outDir = "results"
	}
	s := &storage.Storage{}

	logger.Info("starting batch analysis", "files", len(files), "out", outDir)

	var results []manifest.BatchResult
	for _, file := range files {
		entry := manifest.BatchResult{Path: file}

		markup, err := os.ReadFile(file)
		if err != nil {
			entry.Error = err
			entry.ErrorType = "read_error"
			results = append(results, entry)
			logger.Error("failed to read snapshot", "file", file, "error", err)
			continue
		}

		result, err := a.Analyze(models.AnalyzeRequest{
			Markup:    string(markup),
			BlockName: blockNameFromPath(file),
		})
		if err != nil {
			entry.Error = err
			entry.ErrorType = "invalid_input"
			results = append(results, entry)
			logger.Error("analysis failed", "file", file, "error", err)
			continue
		}

		entry.BlockName = result.Analysis.BlockName
		entry.Result = result
		results = append(results, entry)

		recordHistory(history, result, logger)

		if err := saveResult(s, outDir, result); err != nil {
			logger.Warn("failed to save result", "file", file, "error", err)
		}
	}

	manifestPath, err := manifest.GenerateSummary(results, outDir, s)
	if err != nil {
		return fmt.Errorf("failed to write batch summary: %w", err)
	}
	logger.Info("batch analysis complete", "summary", manifestPath)

	fmt.Fprintln(c.App.Writer, manifestPath)
	return nil
}

// snapshotFiles lists analyzable files directly inside dir, sorted for a
// stable batch order.
func snapshotFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshot directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".html", ".htm", ".xml":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func blockNameFromPath(path string) string {
	base := filepath.Base(path)
	return common.Slugify(strings.TrimSuffix(base, filepath.Ext(base)))
}

func saveResult(s *storage.Storage, outDir string, result *analyzer.Result) error {
	resp := models.Response{
		Status:     "ok",
		Data:       result,
		Confidence: result.Confidence.Overall,
		Warnings:   result.Warnings,
	}

	var buf strings.Builder
	if err := common.WriteResponse(&buf, resp, "json"); err != nil {
		return err
	}
	path := filepath.Join(outDir, result.Analysis.BlockName+".json")
	return s.SaveFile(path, []byte(buf.String()))
}

func loadThresholds(path string, logger *slog.Logger) (models.Thresholds, error) {
	if path == "" {
		return models.DefaultThresholds(), nil
	}
	th, err := models.LoadThresholds(path)
	if err != nil {
		return th, fmt.Errorf("failed to load thresholds: %w", err)
	}
	logger.Info("loaded thresholds", "path", path)
	return th, nil
}

// openHistory opens the analysis-history database. History is best effort:
// an unopenable database downgrades to a warning, never a failed analysis.
func openHistory(path string, disabled bool, logger *slog.Logger) *db.DB {
	if disabled {
		return nil
	}

	var (
		database *db.DB
		err      error
	)
	if path != "" {
		database, err = db.OpenAt(path)
	} else {
		database, err = db.Open()
	}
	if err != nil {
		logger.Warn("analysis history disabled", "error", err)
		return nil
	}
	return database
}

func recordHistory(history *db.DB, result *analyzer.Result, logger *slog.Logger) {
	if history == nil {
		return
	}
	if _, err := history.InsertAnalysis(result.Analysis, result.Confidence); err != nil {
		logger.Warn("failed to record analysis history", "error", err)
	}
}
