// Package corpus implements the CLI actions for querying the schema corpus.
package corpus

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/contentforge/blockinfer/internal/common"
	"github.com/contentforge/blockinfer/models"
	corpuspkg "github.com/contentforge/blockinfer/pkg/corpus"
	"github.com/contentforge/blockinfer/pkg/similar"
)

// SimilarAction ranks corpus entries against a block name and
// characteristics without running a full analysis.
func SimilarAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	name := c.String("name")
	if name == "" {
		return fmt.Errorf("--name is required")
	}
	corpusDir := c.String("corpus")
	if corpusDir == "" {
		return fmt.Errorf("--corpus is required")
	}

	var characteristics []string
	for _, part := range strings.Split(c.String("characteristics"), ",") {
		if part = strings.TrimSpace(part); part != "" {
			characteristics = append(characteristics, part)
		}
	}

	th := models.DefaultThresholds()
	store := corpuspkg.NewStore(corpusDir)

	matches, warnings := similar.FindSimilar(name, characteristics, store, th)
	for _, w := range warnings {
		logger.Warn("corpus degraded", "detail", w)
	}

	resp := models.Response{
		Status:   "ok",
		Data:     matches,
		Warnings: warnings,
	}
	if len(matches) > 0 {
		resp.Confidence = matches[0].Similarity
	}
	return common.WriteResponse(c.App.Writer, resp, c.String("format"))
}

// ListAction prints the corpus entry names.
func ListAction(c *cli.Context) error {
	corpusDir := c.String("corpus")
	if corpusDir == "" {
		return fmt.Errorf("--corpus is required")
	}

	names, err := corpuspkg.NewStore(corpusDir).Names()
	if err != nil {
		return fmt.Errorf("failed to list corpus: %w", err)
	}

	resp := models.Response{Status: "ok", Data: names}
	return common.WriteResponse(c.App.Writer, resp, c.String("format"))
}
