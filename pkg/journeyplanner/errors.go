package journeyplanner

import "fmt"

type InvalidStationError struct {
	StationID int
}

func (e *InvalidStationError) Error() string {
	return fmt.Sprintf("unknown station %d", e.StationID)
}

type NoRouteError struct {
	Origin      int
	Destination int
}

func (e *NoRouteError) Error() string {
	return fmt.Sprintf("no route from station %d to station %d", e.Origin, e.Destination)
}
