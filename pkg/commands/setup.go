package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/liip/sheriff"
	"github.com/travigo/metro/pkg/app"
	"github.com/travigo/metro/pkg/config"
	"github.com/urfave/cli/v2"
)

// GlobalFlags are registered on the root command and read by every subcommand
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "data-dir",
			Usage: "Directory holding stations.csv, lines.csv, tickets.csv and fares.yaml",
		},
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "Load environment variables from this file",
			Value: ".env",
		},
	}
}

func loadApp(c *cli.Context) (*app.App, error) {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return nil, err
	}

	if dataDir := c.String("data-dir"); dataDir != "" {
		cfg = cfg.WithDataDir(dataDir)
	}

	return app.New(cfg)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
}

func writeJSON(w io.Writer, groups []string, value any) error {
	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, value)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(reduced, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(encoded))
	return err
}

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "Print JSON instead of a table",
	}
}

func requireArgs(c *cli.Context, count int) error {
	if c.Args().Len() != count {
		return fmt.Errorf("%s expects %d argument(s): %s", c.Command.Name, count, c.Command.ArgsUsage)
	}

	return nil
}
