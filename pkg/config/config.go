package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/travigo/metro/pkg/util"
)

// Config holds the locations of the data files and optional integrations
type Config struct {
	DataDir      string
	StationsFile string
	LinesFile    string
	TicketsFile  string

	// Empty when no fare table is configured, the built in defaults apply
	FaresFile string

	LogFormat string
	Debug     bool

	Neo4jURI      string
	Neo4jUsername string
	Neo4jPassword string
	Neo4jDatabase string
}

// Load reads an optional .env file then the METRO_ environment variables
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, envFile := range envFiles {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return FromEnvironment(util.GetEnvironmentVariables()), nil
}

func FromEnvironment(env map[string]string) *Config {
	dataDir := util.GetEnvironmentVariable(env, "METRO_DATA_DIR", "data")

	cfg := &Config{
		DataDir:      dataDir,
		StationsFile: util.GetEnvironmentVariable(env, "METRO_STATIONS_FILE", filepath.Join(dataDir, "stations.csv")),
		LinesFile:    util.GetEnvironmentVariable(env, "METRO_LINES_FILE", filepath.Join(dataDir, "lines.csv")),
		TicketsFile:  util.GetEnvironmentVariable(env, "METRO_TICKETS_FILE", filepath.Join(dataDir, "tickets.csv")),
		FaresFile:    env["METRO_FARES_FILE"],

		LogFormat: env["METRO_LOG_FORMAT"],
		Debug:     env["METRO_DEBUG"] == "YES",

		Neo4jURI:      util.GetEnvironmentVariable(env, "METRO_NEO4J_URI", "neo4j://localhost"),
		Neo4jUsername: util.GetEnvironmentVariable(env, "METRO_NEO4J_USERNAME", "neo4j"),
		Neo4jPassword: env["METRO_NEO4J_PASSWORD"],
		Neo4jDatabase: util.GetEnvironmentVariable(env, "METRO_NEO4J_DATABASE", "neo4j"),
	}

	if cfg.FaresFile == "" {
		defaultFares := filepath.Join(dataDir, "fares.yaml")
		if fileExists(defaultFares) {
			cfg.FaresFile = defaultFares
		}
	}

	return cfg
}

// WithDataDir points every data file that was not set explicitly at dir
func (c *Config) WithDataDir(dir string) *Config {
	updated := *c
	updated.DataDir = dir

	if c.StationsFile == filepath.Join(c.DataDir, "stations.csv") {
		updated.StationsFile = filepath.Join(dir, "stations.csv")
	}
	if c.LinesFile == filepath.Join(c.DataDir, "lines.csv") {
		updated.LinesFile = filepath.Join(dir, "lines.csv")
	}
	if c.TicketsFile == filepath.Join(c.DataDir, "tickets.csv") {
		updated.TicketsFile = filepath.Join(dir, "tickets.csv")
	}
	if c.FaresFile == "" || c.FaresFile == filepath.Join(c.DataDir, "fares.yaml") {
		updated.FaresFile = ""
		if defaultFares := filepath.Join(dir, "fares.yaml"); fileExists(defaultFares) {
			updated.FaresFile = defaultFares
		}
	}

	return &updated
}
