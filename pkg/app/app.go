package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/metro/pkg/config"
	"github.com/travigo/metro/pkg/dataimporter/metrocsv"
	"github.com/travigo/metro/pkg/fares"
	"github.com/travigo/metro/pkg/journeygraph"
	"github.com/travigo/metro/pkg/journeyplanner"
	"github.com/travigo/metro/pkg/network"
	"github.com/travigo/metro/pkg/tickets"
)

// App is everything a command needs, built once from the configuration
type App struct {
	Config   *config.Config
	Network  *network.Network
	Graph    *journeygraph.Graph
	Resolver *journeyplanner.Resolver
	Fares    *fares.Calculator
	Issuer   *tickets.Issuer
}

func New(cfg *config.Config) (*App, error) {
	n, err := metrocsv.LoadNetwork(cfg.StationsFile, cfg.LinesFile)
	if err != nil {
		return nil, err
	}

	fareConfig := fares.DefaultConfig()
	if cfg.FaresFile != "" {
		fareConfig, err = fares.LoadConfigFile(cfg.FaresFile)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.FaresFile, err)
		}
	}

	calculator, err := fares.NewCalculator(fareConfig)
	if err != nil {
		return nil, err
	}

	graph := journeygraph.Build(n)
	resolver := journeyplanner.NewResolver(graph)

	log.Debug().
		Int("stations", len(n.Stations())).
		Int("lines", len(n.Lines())).
		Int("edges", graph.EdgeCount()).
		Str("fares", cfg.FaresFile).
		Msg("Loaded metro network")

	return &App{
		Config:   cfg,
		Network:  n,
		Graph:    graph,
		Resolver: resolver,
		Fares:    calculator,
		Issuer:   tickets.NewIssuer(tickets.NewStore(cfg.TicketsFile), resolver, calculator),
	}, nil
}

// FindStation accepts either a station id or a station name
func (a *App) FindStation(argument string) (*network.Station, error) {
	argument = strings.TrimSpace(argument)

	if id, err := strconv.Atoi(argument); err == nil {
		if station, exists := a.Network.Station(id); exists {
			return station, nil
		}

		return nil, &journeyplanner.InvalidStationError{StationID: id}
	}

	if station, exists := a.Network.StationByName(argument); exists {
		return station, nil
	}

	return nil, fmt.Errorf("no station named %q", argument)
}
