package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/metro/pkg/commands"
	"github.com/urfave/cli/v2"
)

func main() {
	if os.Getenv("METRO_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log.Logger = log.Output(os.Stderr)
	}

	if os.Getenv("METRO_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "metro",
		Usage:       "Metro ticketing",
		Description: "Browse the metro network, plan journeys and buy tickets",
		Flags:       commands.GlobalFlags(),

		Commands: []*cli.Command{
			commands.RegisterStationsCLI(),
			commands.RegisterLinesCLI(),
			commands.RegisterRouteCLI(),
			commands.RegisterTicketCLI(),
			commands.RegisterGraphCLI(),
			commands.RegisterMenuCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Msg(commands.Explain(err))
	}
}
