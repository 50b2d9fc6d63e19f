package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/travigo/metro/pkg/network"
	"github.com/urfave/cli/v2"
)

func RegisterLinesCLI() *cli.Command {
	return &cli.Command{
		Name:  "lines",
		Usage: "List the lines on the network",
		Action: func(c *cli.Context) error {
			metro, err := loadApp(c)
			if err != nil {
				return err
			}

			return printLines(c.App.Writer, metro.Network)
		},
		Subcommands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "Show the stations of one line in order",
				ArgsUsage: "<line id or name>",
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, 1); err != nil {
						return err
					}

					metro, err := loadApp(c)
					if err != nil {
						return err
					}

					line, err := findLine(metro.Network, c.Args().First())
					if err != nil {
						return err
					}

					return printLine(c.App.Writer, metro.Network, line)
				},
			},
		},
	}
}

func findLine(n *network.Network, argument string) (*network.Line, error) {
	argument = strings.TrimSpace(argument)

	if id, err := strconv.Atoi(argument); err == nil {
		if line, exists := n.Line(id); exists {
			return line, nil
		}
	}

	for _, line := range n.Lines() {
		if strings.EqualFold(line.Name, argument) {
			return line, nil
		}
	}

	return nil, fmt.Errorf("unknown line %q", argument)
}

func printLines(w io.Writer, n *network.Network) error {
	table := newTable(w)

	fmt.Fprintln(table, "ID\tLINE\tCOLOUR\tSTOPS\tTERMINI")
	for _, line := range n.Lines() {
		first := n.StationName(line.Stations[0])
		last := n.StationName(line.Stations[len(line.Stations)-1])

		fmt.Fprintf(table, "%d\t%s\t%s\t%d\t%s - %s\n", line.ID, line.Name, line.Colour, len(line.Stations), first, last)
	}

	return table.Flush()
}

func printLine(w io.Writer, n *network.Network, line *network.Line) error {
	fmt.Fprintf(w, "%s (%s)\n", line.Name, line.Colour)

	table := newTable(w)
	fmt.Fprintln(table, "#\tID\tSTATION\tCHANGE FOR")
	for i, stationID := range line.Stations {
		station, _ := n.Station(stationID)

		var others []string
		for _, lineID := range station.Lines {
			if lineID != line.ID {
				others = append(others, n.LineName(lineID))
			}
		}

		fmt.Fprintf(table, "%d\t%d\t%s\t%s\n", i+1, station.ID, station.Name, strings.Join(others, ", "))
	}

	return table.Flush()
}
