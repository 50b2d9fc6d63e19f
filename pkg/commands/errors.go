package commands

import (
	"errors"

	"github.com/travigo/metro/pkg/fares"
	"github.com/travigo/metro/pkg/journeyplanner"
	"github.com/travigo/metro/pkg/network"
	"github.com/travigo/metro/pkg/tickets"
)

// Explain turns an error into the message shown to the user
func Explain(err error) string {
	var invalidStation *journeyplanner.InvalidStationError
	var noRoute *journeyplanner.NoRouteError
	var inconsistent *network.InconsistentDataError

	switch {
	case errors.As(err, &invalidStation):
		return "That station does not exist, use the stations command to list them"
	case errors.As(err, &noRoute):
		return "There is no route between those stations"
	case errors.As(err, &inconsistent):
		return "The stations and lines files do not agree with each other"
	case errors.Is(err, tickets.ErrSameStation):
		return "Origin and destination must be different stations"
	case errors.Is(err, tickets.ErrTicketNotFound):
		return "No ticket with that id has been purchased"
	case errors.Is(err, fares.ErrInvalidFare):
		return "The fare table is not valid"
	default:
		return err.Error()
	}
}
