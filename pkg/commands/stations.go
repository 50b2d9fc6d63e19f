package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/travigo/metro/pkg/network"
	"github.com/travigo/metro/pkg/util"
	"github.com/urfave/cli/v2"
)

func RegisterStationsCLI() *cli.Command {
	return &cli.Command{
		Name:  "stations",
		Usage: "List the stations on the network",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "line",
				Usage: "Only list stations served by this line id",
			},
		},
		Action: func(c *cli.Context) error {
			metro, err := loadApp(c)
			if err != nil {
				return err
			}

			stations := metro.Network.Stations()
			if c.IsSet("line") {
				lineID := c.Int("line")
				if _, exists := metro.Network.Line(lineID); !exists {
					return fmt.Errorf("unknown line %d", lineID)
				}

				util.InPlaceFilter(&stations, func(s *network.Station) bool {
					return s.ServedBy(lineID)
				})
			}

			return printStations(c.App.Writer, metro.Network, stations)
		},
	}
}

func printStations(w io.Writer, n *network.Network, stations []*network.Station) error {
	table := newTable(w)

	fmt.Fprintln(table, "ID\tSTATION\tLINES\tINTERCHANGE")
	for _, station := range stations {
		interchange := ""
		if station.IsTransferStation() {
			interchange = "yes"
		}

		fmt.Fprintf(table, "%d\t%s\t%s\t%s\n", station.ID, station.Name, strings.Join(station.LineNames(n), ", "), interchange)
	}

	return table.Flush()
}
