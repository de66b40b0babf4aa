package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/telemetrics/gitingest/config"
	"github.com/telemetrics/gitingest/internal/logging"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "gitingest",
		Usage:   "Extract git history into analytics-ready record sets",
		Version: "1.0.0",
		Commands: []*cli.Command{
			ExtractCmd(),
			UploadCmd(),
			EncodeCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
	}
}

// logFlags are shared by every command that produces log output.
func logFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Logging level (debug, info, warn, error)",
		},
		&cli.BoolFlag{
			Name:  "log-to-file",
			Usage: "Also write logs to the log file",
			Value: true,
		},
	}
}

// newLogger builds the run-scoped logger from flags and config.
// The returned closer owns the log file handle when one is open.
func newLogger(c *cli.Context, cfg *config.Config) (*slog.Logger, io.Closer, error) {
	level := c.String("log-level")
	if level == "" {
		level = cfg.Logging.Level
	}

	logFile := ""
	if c.Bool("log-to-file") && cfg.Logging.LogToFile {
		logFile = cfg.Logging.LogFile
	}

	return logging.New(logging.Options{Level: level, LogFile: logFile})
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply filter overrides from CLI
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}

	return cfg, nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		c.Close()
	}
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
