package metrocsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/travigo/metro/pkg/network"
)

type Dataset struct {
	Stations []Station
	Lines    []Line
}

func setupReader() {
	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		r.TrimLeadingSpace = true
		return r
	})
}

func (d *Dataset) ParseStations(reader io.Reader) error {
	setupReader()

	if err := gocsv.Unmarshal(reader, &d.Stations); err != nil {
		return fmt.Errorf("parse stations: %w", err)
	}

	return nil
}

func (d *Dataset) ParseLines(reader io.Reader) error {
	setupReader()

	if err := gocsv.Unmarshal(reader, &d.Lines); err != nil {
		return fmt.Errorf("parse lines: %w", err)
	}

	return nil
}

// ParseFiles reads both the stations and lines files into a dataset
func ParseFiles(stationsPath string, linesPath string) (*Dataset, error) {
	dataset := &Dataset{}

	stationsFile, err := os.Open(stationsPath)
	if err != nil {
		return nil, err
	}
	defer stationsFile.Close()

	if err := dataset.ParseStations(stationsFile); err != nil {
		return nil, fmt.Errorf("%s: %w", stationsPath, err)
	}

	linesFile, err := os.Open(linesPath)
	if err != nil {
		return nil, err
	}
	defer linesFile.Close()

	if err := dataset.ParseLines(linesFile); err != nil {
		return nil, fmt.Errorf("%s: %w", linesPath, err)
	}

	return dataset, nil
}

// Network converts the parsed records into a validated network model
func (d *Dataset) Network() (*network.Network, error) {
	stations := make([]network.StationRecord, 0, len(d.Stations))
	for _, station := range d.Stations {
		stations = append(stations, network.StationRecord{
			ID:    station.ID,
			Name:  station.Name,
			Lines: station.Lines,
		})
	}

	lines := make([]network.LineRecord, 0, len(d.Lines))
	for _, line := range d.Lines {
		lines = append(lines, network.LineRecord{
			ID:       line.ID,
			Name:     line.Name,
			Colour:   line.Colour,
			Stations: line.Stations,
		})
	}

	return network.Load(stations, lines)
}

// LoadNetwork parses both files and validates them in one step
func LoadNetwork(stationsPath string, linesPath string) (*network.Network, error) {
	dataset, err := ParseFiles(stationsPath, linesPath)
	if err != nil {
		return nil, err
	}

	return dataset.Network()
}
