package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() ([]StationRecord, []LineRecord) {
	stations := []StationRecord{
		{ID: 3, Name: "Charlie", Lines: []int{1, 2}},
		{ID: 1, Name: "Alpha", Lines: []int{1}},
		{ID: 2, Name: "Bravo"},
		{ID: 4, Name: "Delta", Lines: []int{2}},
	}
	lines := []LineRecord{
		{ID: 2, Name: "Blue Line", Colour: "#0000FF", Stations: []int{3, 4}},
		{ID: 1, Name: "Red Line", Colour: "#FF0000", Stations: []int{1, 2, 3}},
	}

	return stations, lines
}

func TestLoad(t *testing.T) {
	n, err := Load(sampleRecords())
	require.NoError(t, err)

	var stationIDs []int
	for _, station := range n.Stations() {
		stationIDs = append(stationIDs, station.ID)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, stationIDs)

	var lineIDs []int
	for _, line := range n.Lines() {
		lineIDs = append(lineIDs, line.ID)
	}
	assert.Equal(t, []int{1, 2}, lineIDs)

	bravo, exists := n.Station(2)
	require.True(t, exists)
	assert.Equal(t, []int{1}, bravo.Lines, "lines serving a station are merged into its membership")

	charlie, _ := n.Station(3)
	assert.True(t, charlie.IsTransferStation())
	assert.Equal(t, []string{"Red Line", "Blue Line"}, charlie.LineNames(n))
	assert.False(t, bravo.IsTransferStation())

	_, exists = n.Station(99)
	assert.False(t, exists)
}

func TestLoadInconsistentData(t *testing.T) {
	tests := []struct {
		name     string
		stations []StationRecord
		lines    []LineRecord
	}{
		{
			name:     "line references unknown station",
			stations: []StationRecord{{ID: 1, Name: "Alpha"}},
			lines:    []LineRecord{{ID: 1, Name: "Red", Stations: []int{1, 7}}},
		},
		{
			name:     "station references unknown line",
			stations: []StationRecord{{ID: 1, Name: "Alpha", Lines: []int{5}}},
			lines:    []LineRecord{{ID: 1, Name: "Red", Stations: []int{1}}},
		},
		{
			name:     "station claims line that does not serve it",
			stations: []StationRecord{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Bravo", Lines: []int{1}}},
			lines:    []LineRecord{{ID: 1, Name: "Red", Stations: []int{1}}},
		},
		{
			name:     "duplicate adjacent stations",
			stations: []StationRecord{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Bravo"}},
			lines:    []LineRecord{{ID: 1, Name: "Red", Stations: []int{1, 2, 2}}},
		},
		{
			name:     "duplicate station id",
			stations: []StationRecord{{ID: 1, Name: "Alpha"}, {ID: 1, Name: "Bravo"}},
		},
		{
			name:     "duplicate line id",
			stations: []StationRecord{{ID: 1, Name: "Alpha"}},
			lines: []LineRecord{
				{ID: 1, Name: "Red", Stations: []int{1}},
				{ID: 1, Name: "Blue", Stations: []int{1}},
			},
		},
		{
			name:     "empty line",
			stations: []StationRecord{{ID: 1, Name: "Alpha"}},
			lines:    []LineRecord{{ID: 1, Name: "Red"}},
		},
		{
			name:     "unnamed station",
			stations: []StationRecord{{ID: 1, Name: "  "}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(test.stations, test.lines)

			var inconsistentErr *InconsistentDataError
			assert.ErrorAs(t, err, &inconsistentErr)
		})
	}
}

func TestLoadAllowsLoopingLines(t *testing.T) {
	stations := []StationRecord{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Bravo"}, {ID: 3, Name: "Charlie"}}
	lines := []LineRecord{{ID: 1, Name: "Circle", Stations: []int{1, 2, 3, 1}}}

	_, err := Load(stations, lines)
	assert.NoError(t, err)
}

func TestStationByName(t *testing.T) {
	n, err := Load(sampleRecords())
	require.NoError(t, err)

	station, exists := n.StationByName("  delta ")
	require.True(t, exists)
	assert.Equal(t, 4, station.ID)

	_, exists = n.StationByName("Echo")
	assert.False(t, exists)
}

func TestLineDistance(t *testing.T) {
	n, err := Load(sampleRecords())
	require.NoError(t, err)

	red, _ := n.Line(1)

	position, found := red.StationPosition(3)
	assert.True(t, found)
	assert.Equal(t, 2, position)

	distance, found := red.Distance(3, 1)
	assert.True(t, found)
	assert.Equal(t, 2, distance)

	_, found = red.Distance(1, 4)
	assert.False(t, found)
}
