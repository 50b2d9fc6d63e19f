package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/metro/pkg/app"
	"github.com/travigo/metro/pkg/tickets"
	"github.com/travigo/metro/pkg/util"
	"github.com/urfave/cli/v2"
)

func RegisterTicketCLI() *cli.Command {
	return &cli.Command{
		Name:  "ticket",
		Usage: "Purchase and review tickets",
		Subcommands: []*cli.Command{
			{
				Name:      "purchase",
				Usage:     "Buy a ticket between two stations",
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

					ticket, err := purchaseTicket(metro, c.Args().Get(0), c.Args().Get(1))
					if err != nil {
						return err
					}

					if c.Bool("json") {
						return writeJSON(c.App.Writer, []string{"basic", "detailed"}, ticket)
					}

					return printTicket(c.App.Writer, metro, ticket)
				},
			},
			{
				Name:  "list",
				Usage: "List every purchased ticket",
				Flags: []cli.Flag{jsonFlag()},
				Action: func(c *cli.Context) error {
					metro, err := loadApp(c)
					if err != nil {
						return err
					}

					purchased, err := metro.Issuer.Store().All()
					if err != nil {
						return err
					}

					if c.Bool("json") {
						return writeJSON(c.App.Writer, []string{"basic"}, purchased)
					}

					return printTickets(c.App.Writer, metro, purchased)
				},
			},
			{
				Name:      "show",
				Usage:     "Show a purchased ticket",
				ArgsUsage: "<ticket id>",
				Flags:     []cli.Flag{jsonFlag()},
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, 1); err != nil {
						return err
					}

					metro, err := loadApp(c)
					if err != nil {
						return err
					}

					ticket, err := metro.Issuer.Store().Get(c.Args().First())
					if err != nil {
						return err
					}

					if c.Bool("json") {
						return writeJSON(c.App.Writer, []string{"basic", "detailed"}, ticket)
					}

					return printTicket(c.App.Writer, metro, ticket)
				},
			},
		},
	}
}

func purchaseTicket(metro *app.App, from string, to string) (*tickets.Ticket, error) {
	origin, err := metro.FindStation(from)
	if err != nil {
		return nil, err
	}
	destination, err := metro.FindStation(to)
	if err != nil {
		return nil, err
	}

	ticket, err := metro.Issuer.Issue(origin.ID, destination.ID)
	if err != nil {
		return nil, err
	}

	log.Info().Str("ticket", ticket.ID).Int64("price", int64(ticket.Price)).Msg("Issued ticket")

	return ticket, nil
}

func printTicket(w io.Writer, metro *app.App, ticket *tickets.Ticket) error {
	table := newTable(w)
	fmt.Fprintf(table, "Ticket\t%s\n", ticket.ID)
	fmt.Fprintf(table, "From\t%s\n", stationLabel(metro, ticket.OriginStationID))
	fmt.Fprintf(table, "To\t%s\n", stationLabel(metro, ticket.DestinationStationID))
	fmt.Fprintf(table, "Route\t%s\n", ticket.Route)
	fmt.Fprintf(table, "Stops\t%d\n", ticket.Hops)
	fmt.Fprintf(table, "Changes\t%d\n", ticket.Transfers)
	fmt.Fprintf(table, "Price\t%s\n", metro.Fares.Format(ticket.Price))
	fmt.Fprintf(table, "Purchased\t%s\n", ticket.PurchasedAt.Local().Format(time.DateTime))

	return table.Flush()
}

func printTickets(w io.Writer, metro *app.App, purchased []*tickets.Ticket) error {
	if len(purchased) == 0 {
		fmt.Fprintln(w, "No tickets purchased yet")
		return nil
	}

	table := newTable(w)
	fmt.Fprintln(table, "TICKET\tFROM\tTO\tPRICE\tPURCHASED\tROUTE")
	for _, ticket := range purchased {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\t%s\n",
			ticket.ID,
			stationLabel(metro, ticket.OriginStationID),
			stationLabel(metro, ticket.DestinationStationID),
			metro.Fares.Format(ticket.Price),
			ticket.PurchasedAt.Local().Format(time.DateTime),
			util.TrimString(ticket.Route, 60),
		)
	}
	return table.Flush()
}

// stationLabel falls back to the id for tickets bought before a station was
// removed from the network files
func stationLabel(metro *app.App, id int) string {
	if name := metro.Network.StationName(id); name != "" {
		return name
	}

	return fmt.Sprintf("#%d", id)
}
