package journeyplanner

import (
	"container/heap"
	"fmt"
	"strings"

	"github.com/travigo/metro/pkg/journeygraph"
	"github.com/travigo/metro/pkg/network"
	"golang.org/x/exp/slices"
)

// Resolver plans journeys over a prebuilt graph. It holds no mutable state so
// a single instance can serve any number of lookups.
type Resolver struct {
	graph *journeygraph.Graph
}

func NewResolver(graph *journeygraph.Graph) *Resolver {
	return &Resolver{graph: graph}
}

func (r *Resolver) Network() *network.Network {
	return r.graph.Network()
}

// Resolve finds the itinerary with the fewest hops between two stations,
// preferring fewer line changes when several paths have the same length.
func (r *Resolver) Resolve(origin int, destination int) (*Itinerary, error) {
	if !r.graph.HasStation(origin) {
		return nil, &InvalidStationError{StationID: origin}
	}
	if !r.graph.HasStation(destination) {
		return nil, &InvalidStationError{StationID: destination}
	}

	itinerary := &Itinerary{
		Origin:      origin,
		Destination: destination,
	}
	if origin == destination {
		return itinerary, nil
	}

	start := state{station: origin}
	best := map[state]cost{start: {}}
	previous := map[state]state{}

	queue := &searchQueue{{state: start}}

	for queue.Len() > 0 {
		item := heap.Pop(queue).(queueItem)
		current := item.state

		if known := best[current]; known.less(item.cost) {
			continue
		}

		if current.station == destination {
			path := r.bestArrival(best, previous, destination, item.cost)
			itinerary.Segments = buildSegments(path)
			return itinerary, nil
		}

		for _, edge := range r.graph.Edges(current.station) {
			next := state{station: edge.To, line: edge.Line, onLine: true}
			nextCost := cost{hops: item.cost.hops + 1, transfers: item.cost.transfers}
			if current.onLine && current.line != edge.Line {
				nextCost.transfers++
			}

			known, seen := best[next]
			switch {
			case !seen || nextCost.less(known):
				best[next] = nextCost
				previous[next] = current
				heap.Push(queue, queueItem{state: next, cost: nextCost})
			case nextCost == known:
				// Equal cost: prefer the predecessor path with the lower station ids
				if comparePaths(walkBack(previous, current), walkBack(previous, previous[next])) < 0 {
					previous[next] = current
				}
			}
		}
	}

	return nil, &NoRouteError{Origin: origin, Destination: destination}
}

// bestArrival picks, among the arrivals at the destination with the winning
// cost, the path with the lowest station ids and then the lowest line ids
func (r *Resolver) bestArrival(best map[state]cost, previous map[state]state, destination int, winning cost) []state {
	var path []state

	for _, edge := range r.graph.Edges(destination) {
		arrival := state{station: destination, line: edge.Line, onLine: true}
		if known, seen := best[arrival]; !seen || known != winning {
			continue
		}

		candidate := walkBack(previous, arrival)
		if path == nil || comparePaths(candidate, path) < 0 {
			path = candidate
		}
	}

	return path
}

// walkBack returns the states from the origin to the given state
func walkBack(previous map[state]state, last state) []state {
	path := []state{last}

	for current := last; current.onLine; {
		current = previous[current]
		path = append(path, current)
	}
	slices.Reverse(path)

	return path
}

// comparePaths orders two paths of the same length by their station ids,
// falling back to the line ids
func comparePaths(a []state, b []state) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].station != b[i].station {
			return a[i].station - b[i].station
		}
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].line != b[i].line {
			return a[i].line - b[i].line
		}
	}

	return len(a) - len(b)
}

func buildSegments(path []state) []Segment {
	var segments []Segment

	for i := 1; i < len(path); i++ {
		step := path[i]

		if len(segments) == 0 || segments[len(segments)-1].Line != step.line {
			segments = append(segments, Segment{
				Line:     step.line,
				Entry:    path[i-1].station,
				Stations: []int{path[i-1].station},
			})
		}

		segment := &segments[len(segments)-1]
		segment.Exit = step.station
		segment.Stations = append(segment.Stations, step.station)
	}

	return segments
}

// Describe renders the itinerary as the route text stored against tickets
func (r *Resolver) Describe(itinerary *Itinerary) string {
	n := r.Network()

	if itinerary.IsEmpty() {
		return fmt.Sprintf("%s (no travel)", n.StationName(itinerary.Origin))
	}

	var parts []string
	for i, segment := range itinerary.Segments {
		if i > 0 {
			parts = append(parts, fmt.Sprintf("change at %s", n.StationName(segment.Entry)))
		}

		stops := "stops"
		if segment.Hops() == 1 {
			stops = "stop"
		}

		parts = append(parts, fmt.Sprintf("%s: %s -> %s (%d %s)",
			n.LineName(segment.Line),
			n.StationName(segment.Entry),
			n.StationName(segment.Exit),
			segment.Hops(),
			stops,
		))
	}

	return strings.Join(parts, " | ")
}
