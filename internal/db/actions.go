// Package db implements the CLI actions over the analysis-history store.
package db

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/contentforge/blockinfer/internal/common"
	"github.com/contentforge/blockinfer/models"
	dbpkg "github.com/contentforge/blockinfer/pkg/db"
	"github.com/contentforge/blockinfer/pkg/extractor"
)

func open(c *cli.Context) (*dbpkg.DB, error) {
	if path := c.String("db"); path != "" {
		return dbpkg.OpenAt(path)
	}
	return dbpkg.Open()
}

// HistoryAction lists recent analyses, optionally filtered by a strategy
// expression like "conf:>=70,type:multi-item".
func HistoryAction(c *cli.Context) error {
	database, err := open(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	strategy, err := extractor.ParseStrategy(c.String("filter"))
	if err != nil {
		return fmt.Errorf("invalid --filter: %w", err)
	}

	records, err := database.RecentAnalyses(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}
	records = extractor.FilterRecords(records, strategy)

	resp := models.Response{Status: "ok", Data: records}
	return common.WriteResponse(c.App.Writer, resp, c.String("format"))
}

// BlockAction lists the history of one block name.
func BlockAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("block name argument is required")
	}

	database, err := open(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	records, err := database.AnalysesByBlockName(c.Args().First())
	if err != nil {
		return fmt.Errorf("failed to query analyses: %w", err)
	}

	resp := models.Response{Status: "ok", Data: records}
	return common.WriteResponse(c.App.Writer, resp, c.String("format"))
}

// ShowAction prints the stored analysis document for one history row.
func ShowAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("analysis id argument is required")
	}
	id, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid analysis id %q", c.Args().First())
	}

	database, err := open(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	analysis, err := database.GetAnalysisDocument(id)
	if err != nil {
		return err
	}

	resp := models.Response{Status: "ok", Data: analysis}
	return common.WriteResponse(c.App.Writer, resp, c.String("format"))
}

// StatsAction aggregates the history per block type.
func StatsAction(c *cli.Context) error {
	database, err := open(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	counts, err := database.CountByBlockType()
	if err != nil {
		return fmt.Errorf("failed to aggregate analyses: %w", err)
	}

	resp := models.Response{Status: "ok", Data: counts}
	return common.WriteResponse(c.App.Writer, resp, c.String("format"))
}

// InitAction creates the database schema explicitly.
func InitAction(c *cli.Context) error {
	database, err := open(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	fmt.Fprintf(c.App.Writer, "database ready at %s\n", database.Path())
	return nil
}
