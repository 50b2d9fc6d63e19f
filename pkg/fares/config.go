package fares

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Currency    string `yaml:"currency"`
	Base        Amount `yaml:"base"`
	PerHop      Amount `yaml:"perHop"`
	PerTransfer Amount `yaml:"perTransfer"`

	// Optional expr-lang expression replacing the linear formula. It can use
	// base, perHop, perTransfer, hops and transfers.
	Rule string `yaml:"rule"`
}

func DefaultConfig() Config {
	return Config{
		Currency:    "£",
		Base:        150,
		PerHop:      30,
		PerTransfer: 50,
	}
}

// LoadConfig decodes a fare table, any field left out keeps its default
func LoadConfig(reader io.Reader) (Config, error) {
	config := DefaultConfig()

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode fare config: %w", err)
	}

	return config, nil
}

func LoadConfigFile(path string) (Config, error) {
	fareYaml, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	return LoadConfig(bytes.NewReader(fareYaml))
}
