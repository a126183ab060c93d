package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	analyzecmd "github.com/contentforge/blockinfer/internal/analyze"
	corpuscmd "github.com/contentforge/blockinfer/internal/corpus"
	dbcmd "github.com/contentforge/blockinfer/internal/db"
	"github.com/contentforge/blockinfer/pkg/help"
)

func main() {
	app := &cli.App{
		Name:  "blockinfer",
		Usage: "infer content schemas from design-tool component exports",
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "Analyze a component snapshot (or a directory of them)",
				Action: analyzecmd.AnalyzeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Usage: "snapshot file to analyze"},
					&cli.StringFlag{Name: "dir", Usage: "directory of snapshots for a batch run"},
					&cli.StringFlag{Name: "name", Usage: "block name override"},
					&cli.StringFlag{Name: "corpus", Usage: "schema corpus directory for similarity matching"},
					&cli.StringFlag{Name: "thresholds", Usage: "YAML thresholds file"},
					&cli.StringFlag{Name: "out", Usage: "output directory for batch results", Value: "results"},
					&cli.StringFlag{Name: "db", Usage: "history database path (default: next to the binary)"},
					&cli.BoolFlag{Name: "no-history", Usage: "skip recording the analysis history"},
					&cli.StringFlag{Name: "format", Usage: "output format: json or yaml", Value: "json"},
					&cli.BoolFlag{Name: "quiet", Usage: "log errors only"},
				},
			},
			{
				Name:   "similar",
				Usage:  "Rank corpus entries against a block name and characteristics",
				Action: corpuscmd.SimilarAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "block name to match", Required: true},
					&cli.StringFlag{Name: "characteristics", Usage: "comma-separated characteristics, e.g. \"carousel,multi-item\""},
					&cli.StringFlag{Name: "corpus", Usage: "schema corpus directory", Required: true},
					&cli.StringFlag{Name: "format", Usage: "output format: json or yaml", Value: "json"},
					&cli.BoolFlag{Name: "quiet", Usage: "log errors only"},
				},
			},
			{
				Name:  "corpus",
				Usage: "Inspect the schema corpus",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List corpus entry names",
						Action: corpuscmd.ListAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "corpus", Usage: "schema corpus directory", Required: true},
							&cli.StringFlag{Name: "format", Usage: "output format: json or yaml", Value: "json"},
						},
					},
				},
			},
			{
				Name:  "db",
				Usage: "Query the analysis history",
				Subcommands: []*cli.Command{
					{
						Name:   "history",
						Usage:  "List recent analyses",
						Action: dbcmd.HistoryAction,
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Usage: "max rows", Value: 20},
							&cli.StringFlag{Name: "filter", Usage: "strategy filter, e.g. \"conf:>=70,type:multi-item\""},
							&cli.StringFlag{Name: "db", Usage: "history database path"},
							&cli.StringFlag{Name: "format", Usage: "output format: json or yaml", Value: "json"},
						},
					},
					{
						Name:      "block",
						Usage:     "Show the history of one block name",
						ArgsUsage: "<block-name>",
						Action:    dbcmd.BlockAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db", Usage: "history database path"},
							&cli.StringFlag{Name: "format", Usage: "output format: json or yaml", Value: "json"},
						},
					},
					{
						Name:      "show",
						Usage:     "Print the stored analysis document for a history row",
						ArgsUsage: "<analysis-id>",
						Action:    dbcmd.ShowAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db", Usage: "history database path"},
							&cli.StringFlag{Name: "format", Usage: "output format: json or yaml", Value: "json"},
						},
					},
					{
						Name:   "stats",
						Usage:  "Aggregate history counts per block type",
						Action: dbcmd.StatsAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db", Usage: "history database path"},
							&cli.StringFlag{Name: "format", Usage: "output format: json or yaml", Value: "json"},
						},
					},
					{
						Name:   "init",
						Usage:  "Initialize the history database schema",
						Action: dbcmd.InitAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db", Usage: "history database path"},
						},
					},
				},
			},
			{
				Name:  "coldstart",
				Usage: "Print a machine-readable quick-start reference",
				Action: func(c *cli.Context) error {
					fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
