package metrocsv

import (
	"github.com/travigo/metro/pkg/util"
)

const listSeparator = ";"

// IDList is a ; separated list of numeric ids inside a single CSV column
type IDList []int

func (l *IDList) UnmarshalCSV(value string) error {
	ids, err := util.SplitInts(value, listSeparator)
	if err != nil {
		return err
	}

	*l = ids
	return nil
}

func (l IDList) MarshalCSV() (string, error) {
	return util.JoinInts(l, listSeparator), nil
}

type Station struct {
	ID    int    `csv:"station_id"`
	Name  string `csv:"station_name"`
	Lines IDList `csv:"line_ids"`
}

type Line struct {
	ID       int    `csv:"line_id"`
	Name     string `csv:"line_name"`
	Colour   string `csv:"line_colour"`
	Stations IDList `csv:"station_ids"`
}
