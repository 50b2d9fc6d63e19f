package metrocsv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/metro/pkg/network"
)

const stationsCSV = `station_id,station_name,line_ids
1,Alpha,1
2,Bravo,1
3,Charlie,1;2
4,Delta,
`

const linesCSV = `line_id,line_name,line_colour,station_ids
1,Red Line,#FF0000,1;2;3
2,Blue Line,#0000FF,3;4
`

func TestParse(t *testing.T) {
	dataset := &Dataset{}
	require.NoError(t, dataset.ParseStations(strings.NewReader(stationsCSV)))
	require.NoError(t, dataset.ParseLines(strings.NewReader(linesCSV)))

	require.Len(t, dataset.Stations, 4)
	assert.Equal(t, "Charlie", dataset.Stations[2].Name)
	assert.Equal(t, IDList{1, 2}, dataset.Stations[2].Lines)
	assert.Empty(t, dataset.Stations[3].Lines)

	require.Len(t, dataset.Lines, 2)
	assert.Equal(t, "#FF0000", dataset.Lines[0].Colour)
	assert.Equal(t, IDList{1, 2, 3}, dataset.Lines[0].Stations)

	n, err := dataset.Network()
	require.NoError(t, err)

	delta, exists := n.Station(4)
	require.True(t, exists)
	assert.Equal(t, []int{2}, delta.Lines)
}

func TestParseBadList(t *testing.T) {
	dataset := &Dataset{}
	err := dataset.ParseLines(strings.NewReader("line_id,line_name,line_colour,station_ids\n1,Red,#F00,1;x\n"))

	assert.Error(t, err)
}

func TestLoadNetworkInconsistent(t *testing.T) {
	dir := t.TempDir()
	stationsPath := filepath.Join(dir, "stations.csv")
	linesPath := filepath.Join(dir, "lines.csv")

	require.NoError(t, os.WriteFile(stationsPath, []byte(stationsCSV), 0o644))
	require.NoError(t, os.WriteFile(linesPath, []byte(linesCSV+"3,Green Line,#00FF00,4;42\n"), 0o644))

	_, err := LoadNetwork(stationsPath, linesPath)

	var inconsistentErr *network.InconsistentDataError
	assert.ErrorAs(t, err, &inconsistentErr)
}

func TestLoadNetworkMissingFile(t *testing.T) {
	_, err := LoadNetwork(filepath.Join(t.TempDir(), "nope.csv"), "lines.csv")

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIDListMarshal(t *testing.T) {
	value, err := IDList{7, 8}.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "7;8", value)
}
