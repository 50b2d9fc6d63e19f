package journeygraph

import (
	"github.com/travigo/metro/pkg/network"
	"golang.org/x/exp/slices"
)

// Edge connects two stations that are adjacent on a line. Every edge is one
// hop; the reverse direction is stored as its own edge.
type Edge struct {
	From int
	To   int
	Line int
}

type Graph struct {
	network   *network.Network
	adjacency map[int][]Edge
	edgeCount int
}

func Build(n *network.Network) *Graph {
	g := &Graph{
		network:   n,
		adjacency: map[int][]Edge{},
	}

	for _, station := range n.Stations() {
		g.adjacency[station.ID] = nil
	}

	for _, line := range n.Lines() {
		for i := 1; i < len(line.Stations); i++ {
			from := line.Stations[i-1]
			to := line.Stations[i]

			g.addEdge(Edge{From: from, To: to, Line: line.ID})
			g.addEdge(Edge{From: to, To: from, Line: line.ID})
		}
	}

	for station := range g.adjacency {
		slices.SortFunc(g.adjacency[station], compareEdges)
	}

	return g
}

// addEdge keeps parallel edges from different lines but ignores an exact
// repeat, which a line can produce when it passes the same pair twice
func (g *Graph) addEdge(edge Edge) {
	if slices.Contains(g.adjacency[edge.From], edge) {
		return
	}

	g.adjacency[edge.From] = append(g.adjacency[edge.From], edge)
	g.edgeCount++
}

func compareEdges(a Edge, b Edge) int {
	if a.To != b.To {
		return a.To - b.To
	}

	return a.Line - b.Line
}

func (g *Graph) Network() *network.Network {
	return g.network
}

func (g *Graph) HasStation(id int) bool {
	_, exists := g.adjacency[id]
	return exists
}

// Edges leaving the station, ordered by neighbouring station id then line id
func (g *Graph) Edges(station int) []Edge {
	return g.adjacency[station]
}

func (g *Graph) Stations() []int {
	stations := make([]int, 0, len(g.adjacency))
	for station := range g.adjacency {
		stations = append(stations, station)
	}
	slices.Sort(stations)

	return stations
}

// EdgeCount is the number of directed edges
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// EdgesBetween returns every edge from one station to another, one per line
func (g *Graph) EdgesBetween(from int, to int) []Edge {
	var edges []Edge
	for _, edge := range g.adjacency[from] {
		if edge.To == to {
			edges = append(edges, edge)
		}
	}

	return edges
}
