package cmd

import (
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/fatih/color"
	"github.com/telemetrics/gitingest/internal/upload"
	"github.com/urfave/cli/v2"
	"google.golang.org/api/option"
)

// UploadCmd returns the upload command group.
func UploadCmd() *cli.Command {
	return &cli.Command{
		Name:  "upload",
		Usage: "Content uploading (extracted data)",
		Subcommands: []*cli.Command{
			uploadDataCmd(),
		},
	}
}

func uploadDataCmd() *cli.Command {
	flags := append([]cli.Flag{
		&cli.StringFlag{
			Name:     "customer-id",
			Usage:    "Customer identifier",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "credentials-file",
			Usage:    "Path to service account credentials file",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "bucket",
			Usage: "Destination bucket (default: from config)",
		},
	}, logFlags()...)

	return &cli.Command{
		Name:      "data",
		Usage:     "Upload the content of a data directory",
		ArgsUsage: "DIRECTORY",
		Flags:     flags,
		Action:    uploadDataAction,
	}
}

func uploadDataAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("missing required argument: DIRECTORY")
	}
	dir := c.Args().Get(0)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(c, cfg)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	bucket := c.String("bucket")
	if bucket == "" {
		bucket = cfg.Upload.Bucket
	}
	if bucket == "" {
		return fmt.Errorf("no bucket given on the command line or in config")
	}

	client, err := storage.NewClient(c.Context, option.WithCredentialsFile(c.String("credentials-file")))
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	uploader := &upload.Uploader{Bucket: bucket, Logger: logger}
	n, err := uploader.UploadDir(c.Context, client, dir, c.String("customer-id"), cfg.Upload.Subpath)
	if err != nil {
		return err
	}

	color.Green("Uploaded %v file(s) to %v", n, bucket)
	return nil
}
