package commands

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/metro/pkg/app"
	"github.com/travigo/metro/pkg/tickets"
	"github.com/urfave/cli/v2"
)

func RegisterRouteCLI() *cli.Command {
	return &cli.Command{
		Name:      "route",
		Usage:     "Plan and price a journey without buying a ticket",
		ArgsUsage: "<from> <to>",
		Flags:     []cli.Flag{jsonFlag()},
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 2); err != nil {
				return err
			}

			metro, err := loadApp(c)
			if err != nil {
				return err
			}

			quote, err := quoteJourney(metro, c.Args().Get(0), c.Args().Get(1))
			if err != nil {
				return err
			}

			if c.Bool("json") {
				return writeJSON(c.App.Writer, []string{"basic", "detailed"}, quote)
			}

			return printQuote(c.App.Writer, metro, quote)
		},
	}
}

func quoteJourney(metro *app.App, from string, to string) (*tickets.Quote, error) {
	origin, err := metro.FindStation(from)
	if err != nil {
		return nil, err
	}
	destination, err := metro.FindStation(to)
	if err != nil {
		return nil, err
	}

	quote, err := metro.Issuer.Quote(origin.ID, destination.ID)
	if err != nil {
		return nil, err
	}

	log.Debug().Msgf("Resolved itinerary %s", pretty.Sprint(quote.Itinerary))

	return quote, nil
}

func printQuote(w io.Writer, metro *app.App, quote *tickets.Quote) error {
	itinerary := quote.Itinerary
	n := metro.Network

	fmt.Fprintf(w, "From %s to %s\n", n.StationName(itinerary.Origin), n.StationName(itinerary.Destination))

	if itinerary.IsEmpty() {
		fmt.Fprintln(w, "You are already there, no travel needed")
		return nil
	}

	table := newTable(w)
	fmt.Fprintln(table, "LINE\tBOARD AT\tALIGHT AT\tSTOPS")
	for _, segment := range itinerary.Segments {
		fmt.Fprintf(table, "%s\t%s\t%s\t%d\n",
			n.LineName(segment.Line),
			n.StationName(segment.Entry),
			n.StationName(segment.Exit),
			segment.Hops(),
		)
	}
	if err := table.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Stops: %d  Changes: %d  Fare: %s\n", itinerary.Hops(), itinerary.Transfers(), metro.Fares.Format(quote.Price))

	return nil
}
