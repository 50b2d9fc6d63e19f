package journeygraph

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/sourcegraph/conc/pool"
)

type Neo4jConfig struct {
	URI      string
	Username string
	Password string
	Database string
}

func ConnectNeo4j(ctx context.Context, config Neo4jConfig) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(config.URI, neo4j.BasicAuth(config.Username, config.Password, ""))
	if err != nil {
		return nil, err
	}

	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.MaxElapsedTime = 30 * time.Second

	err = backoff.Retry(func() error {
		return driver.VerifyConnectivity(ctx)
	}, backoff.WithContext(retryBackoff, ctx))
	if err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("neo4j connectivity: %w", err)
	}

	return driver, nil
}

// ExportNeo4j replaces the contents of the database with the graph, stations
// as nodes and each edge as a CONNECTS relationship tagged with its line
func ExportNeo4j(ctx context.Context, driver neo4j.DriverWithContext, database string, g *Graph) error {
	session := driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: database})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if _, err := tx.Run(ctx, "MATCH (s:Station) DETACH DELETE s", map[string]any{}); err != nil {
			return nil, err
		}

		for _, station := range g.Network().Stations() {
			_, err := tx.Run(ctx,
				"CREATE (s:Station {id: $id, name: $name, transfer: $transfer})",
				map[string]any{
					"id":       station.ID,
					"name":     station.Name,
					"transfer": station.IsTransferStation(),
				})
			if err != nil {
				return nil, err
			}
		}

		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("export stations: %w", err)
	}

	p := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(4)

	for _, line := range g.Network().Lines() {
		line := line
		p.Go(func(ctx context.Context) error {
			lineSession := driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: database})
			defer lineSession.Close(ctx)

			_, err := lineSession.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
				for _, station := range line.Stations {
					for _, edge := range g.Edges(station) {
						if edge.Line != line.ID {
							continue
						}

						_, err := tx.Run(ctx, `
							MATCH (a:Station {id: $from})
							MATCH (b:Station {id: $to})
							MERGE (a)-[:CONNECTS {line: $line, name: $name, colour: $colour}]->(b)
							`, map[string]any{
							"from":   edge.From,
							"to":     edge.To,
							"line":   line.ID,
							"name":   line.Name,
							"colour": line.Colour,
						})
						if err != nil {
							return nil, err
						}
					}
				}

				return nil, nil
			})
			if err != nil {
				return fmt.Errorf("export line %d: %w", line.ID, err)
			}

			return nil
		})
	}

	return p.Wait()
}
