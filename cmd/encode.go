package cmd

import (
	"fmt"
	"strings"

	"github.com/telemetrics/gitingest/internal/ident"
	"github.com/urfave/cli/v2"
)

// EncodeCmd returns the encode command group.
func EncodeCmd() *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "Onboarding helpers",
		Subcommands: []*cli.Command{
			encodeShortCmd(),
		},
	}
}

func encodeShortCmd() *cli.Command {
	return &cli.Command{
		Name:      "short",
		Usage:     "Encode text as a short base62 string",
		ArgsUsage: "TEXT",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "lower",
				Aliases: []string{"l"},
				Usage:   "Lowercase the encoded value",
			},
		},
		Action: encodeShortAction,
	}
}

func encodeShortAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("missing required argument: TEXT")
	}

	res := ident.Encode(strings.TrimSpace(c.Args().Get(0)))
	if c.Bool("lower") {
		res = strings.ToLower(res)
	}
	fmt.Println(res)
	return nil
}
