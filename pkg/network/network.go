package network

import (
	"strings"

	"github.com/travigo/metro/pkg/util"
	"golang.org/x/exp/slices"
)

type StationRecord struct {
	ID    int
	Name  string
	Lines []int
}

type LineRecord struct {
	ID       int
	Name     string
	Colour   string
	Stations []int
}

// Network is the validated, read-only set of stations and lines
type Network struct {
	stations map[int]*Station
	lines    map[int]*Line

	stationIDs []int
	lineIDs    []int
}

func Load(stationRecords []StationRecord, lineRecords []LineRecord) (*Network, error) {
	n := &Network{
		stations: map[int]*Station{},
		lines:    map[int]*Line{},
	}

	for _, record := range stationRecords {
		if _, exists := n.stations[record.ID]; exists {
			return nil, inconsistent("duplicate station id %d", record.ID)
		}
		if strings.TrimSpace(record.Name) == "" {
			return nil, inconsistent("station %d has no name", record.ID)
		}

		n.stations[record.ID] = &Station{
			ID:    record.ID,
			Name:  strings.TrimSpace(record.Name),
			Lines: slices.Clone(record.Lines),
		}
		n.stationIDs = append(n.stationIDs, record.ID)
	}

	for _, record := range lineRecords {
		if _, exists := n.lines[record.ID]; exists {
			return nil, inconsistent("duplicate line id %d", record.ID)
		}
		if strings.TrimSpace(record.Name) == "" {
			return nil, inconsistent("line %d has no name", record.ID)
		}
		if len(record.Stations) == 0 {
			return nil, inconsistent("line %d has no stations", record.ID)
		}

		for i, stationID := range record.Stations {
			if _, exists := n.stations[stationID]; !exists {
				return nil, inconsistent("line %d references unknown station %d", record.ID, stationID)
			}
			if i > 0 && record.Stations[i-1] == stationID {
				return nil, inconsistent("line %d lists station %d twice in a row", record.ID, stationID)
			}
		}

		n.lines[record.ID] = &Line{
			ID:       record.ID,
			Name:     strings.TrimSpace(record.Name),
			Colour:   strings.TrimSpace(record.Colour),
			Stations: slices.Clone(record.Stations),
		}
		n.lineIDs = append(n.lineIDs, record.ID)
	}

	// Declared memberships must be real, then every serving line is merged in
	for _, station := range n.stations {
		for _, lineID := range station.Lines {
			line, exists := n.lines[lineID]
			if !exists {
				return nil, inconsistent("station %d references unknown line %d", station.ID, lineID)
			}
			if _, served := line.StationPosition(station.ID); !served {
				return nil, inconsistent("station %d claims line %d which does not serve it", station.ID, lineID)
			}
		}
	}
	for _, line := range n.lines {
		for _, stationID := range line.Stations {
			station := n.stations[stationID]
			station.Lines = append(station.Lines, line.ID)
		}
	}
	for _, station := range n.stations {
		station.Lines = util.SortedUnique(station.Lines)
	}

	slices.Sort(n.stationIDs)
	slices.Sort(n.lineIDs)

	return n, nil
}

func (n *Network) Station(id int) (*Station, bool) {
	station, exists := n.stations[id]
	return station, exists
}

func (n *Network) Line(id int) (*Line, bool) {
	line, exists := n.lines[id]
	return line, exists
}

// StationByName does a case insensitive match on the station name
func (n *Network) StationByName(name string) (*Station, bool) {
	name = strings.TrimSpace(name)

	for _, id := range n.stationIDs {
		if strings.EqualFold(n.stations[id].Name, name) {
			return n.stations[id], true
		}
	}

	return nil, false
}

// Stations returns every station ordered by id
func (n *Network) Stations() []*Station {
	stations := make([]*Station, 0, len(n.stationIDs))
	for _, id := range n.stationIDs {
		stations = append(stations, n.stations[id])
	}

	return stations
}

// Lines returns every line ordered by id
func (n *Network) Lines() []*Line {
	lines := make([]*Line, 0, len(n.lineIDs))
	for _, id := range n.lineIDs {
		lines = append(lines, n.lines[id])
	}

	return lines
}

func (n *Network) StationName(id int) string {
	if station, exists := n.stations[id]; exists {
		return station.Name
	}

	return ""
}

func (n *Network) LineName(id int) string {
	if line, exists := n.lines[id]; exists {
		return line.Name
	}

	return ""
}
