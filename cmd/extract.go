package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/telemetrics/gitingest/internal/extract"
	"github.com/telemetrics/gitingest/internal/gitsource"
	"github.com/telemetrics/gitingest/internal/pipeline"
	"github.com/telemetrics/gitingest/internal/sink"
	"github.com/urfave/cli/v2"
)

// ExtractCmd returns the extract command group.
func ExtractCmd() *cli.Command {
	return &cli.Command{
		Name:  "extract",
		Usage: "Data extraction commands",
		Subcommands: []*cli.Command{
			extractGitRepoCmd(),
		},
	}
}

func extractGitRepoCmd() *cli.Command {
	flags := append([]cli.Flag{
		&cli.StringFlag{
			Name:     "customer-id",
			Usage:    "Customer identifier",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "source-id",
			Usage: "Repo source ID - derived from customer ID if not set",
		},
		&cli.StringFlag{
			Name:  "output-dir",
			Usage: "Output directory for JSONL record sets",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch / rev spec",
		},
		&cli.StringFlag{
			Name:  "forced-repo-name",
			Usage: "Name to set if one can't be read from origin",
		},
		&cli.BoolFlag{
			Name:  "ignore-errors",
			Usage: "Skip commits that fail to process instead of aborting",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns to exclude (can be specified multiple times)",
		},
	}, logFlags()...)

	return &cli.Command{
		Name:      "git-repo",
		Usage:     "Extract a git repo's history to JSONL record sets",
		ArgsUsage: "REPO_PATH",
		Flags:     flags,
		Action:    extractGitRepoAction,
	}
}

func extractGitRepoAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("missing required argument: REPO_PATH")
	}
	repoPath := c.Args().Get(0)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(c, cfg)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	customerID := c.String("customer-id")
	sourceID := c.String("source-id")
	if sourceID == "" {
		sourceID = customerID + "-git"
	}

	branch := c.String("branch")
	if branch == "" {
		branch = cfg.Extract.DefaultBranch
	}
	fallback := ""
	if branch == "master" && cfg.Extract.FallbackMasterToMain {
		fallback = "main"
	}

	outputDir := c.String("output-dir")
	if outputDir == "" {
		outputDir = cfg.Extract.OutputDir
	}

	var filter *gitsource.Filter
	if len(cfg.Filters.Include) > 0 || len(cfg.Filters.Exclude) > 0 {
		filter = &gitsource.Filter{
			Include: cfg.Filters.Include,
			Exclude: cfg.Filters.Exclude,
		}
	}

	ex, err := extract.NewExtractor(extract.Options{
		Source:             gitsource.Source{PathOrURL: repoPath},
		CustomerID:         customerID,
		SourceID:           sourceID,
		AutogenerateRepoID: true,
		ForcedRepoName:     c.String("forced-repo-name"),
		UseRemoteLinkURL:   true,
		Order:              gitsource.OldestFirst,
		Filter:             filter,
		IgnoreErrors:       c.Bool("ignore-errors") || cfg.Extract.IgnoreErrors,
	}, logger)
	if err != nil {
		return err
	}

	p := &pipeline.Pipeline{
		Sink: &sink.JSONL{
			Dir:        outputDir,
			CustomerID: customerID,
			SourceID:   sourceID,
		},
		Logger: logger,
	}

	color.Green("Extracting %v", repoPath)
	if err := p.Run(c.Context, ex, branch, fallback); err != nil {
		return err
	}
	color.Green("Records written to %v", outputDir)
	return nil
}
