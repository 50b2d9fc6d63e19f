package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/metro/pkg/journeygraph"
	"github.com/urfave/cli/v2"
)

func RegisterGraphCLI() *cli.Command {
	return &cli.Command{
		Name:  "graph",
		Usage: "Inspect or export the station graph",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print every station with its neighbours",
				Action: func(c *cli.Context) error {
					metro, err := loadApp(c)
					if err != nil {
						return err
					}

					return printGraph(c.App.Writer, metro.Graph)
				},
			},
			{
				Name:  "export",
				Usage: "Export the station graph into Neo4j",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "uri", Usage: "Neo4j connection URI (METRO_NEO4J_URI)"},
					&cli.StringFlag{Name: "username", Usage: "Neo4j username (METRO_NEO4J_USERNAME)"},
					&cli.StringFlag{Name: "password", Usage: "Neo4j password (METRO_NEO4J_PASSWORD)"},
					&cli.StringFlag{Name: "database", Usage: "Neo4j database (METRO_NEO4J_DATABASE)"},
				},
				Action: func(c *cli.Context) error {
					metro, err := loadApp(c)
					if err != nil {
						return err
					}

					neo4jConfig := journeygraph.Neo4jConfig{
						URI:      metro.Config.Neo4jURI,
						Username: metro.Config.Neo4jUsername,
						Password: metro.Config.Neo4jPassword,
						Database: metro.Config.Neo4jDatabase,
					}
					if c.IsSet("uri") {
						neo4jConfig.URI = c.String("uri")
					}
					if c.IsSet("username") {
						neo4jConfig.Username = c.String("username")
					}
					if c.IsSet("password") {
						neo4jConfig.Password = c.String("password")
					}
					if c.IsSet("database") {
						neo4jConfig.Database = c.String("database")
					}

					log.Info().Str("uri", neo4jConfig.URI).Msg("Connecting to Neo4j")

					driver, err := journeygraph.ConnectNeo4j(c.Context, neo4jConfig)
					if err != nil {
						return err
					}
					defer driver.Close(c.Context)

					if err := journeygraph.ExportNeo4j(c.Context, driver, neo4jConfig.Database, metro.Graph); err != nil {
						return err
					}

					log.Info().
						Int("stations", len(metro.Graph.Stations())).
						Int("edges", metro.Graph.EdgeCount()).
						Msg("Exported graph to Neo4j")

					return nil
				},
			},
		},
	}
}

func printGraph(w io.Writer, g *journeygraph.Graph) error {
	n := g.Network()

	table := newTable(w)
	fmt.Fprintln(table, "ID\tSTATION\tNEIGHBOURS")
	for _, stationID := range g.Stations() {
		var neighbours []string
		for _, edge := range g.Edges(stationID) {
			neighbours = append(neighbours, fmt.Sprintf("%s (%s)", n.StationName(edge.To), n.LineName(edge.Line)))
		}

		fmt.Fprintf(table, "%d\t%s\t%s\n", stationID, n.StationName(stationID), strings.Join(neighbours, ", "))
	}

	if err := table.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d stations, %d directed edges\n", len(g.Stations()), g.EdgeCount())
	return err
}
