package journeyplanner

// state is a station together with the line used to arrive there. The origin
// has no arriving line.
type state struct {
	station int
	line    int
	onLine  bool
}

type cost struct {
	hops      int
	transfers int
}

func (c cost) less(other cost) bool {
	if c.hops != other.hops {
		return c.hops < other.hops
	}

	return c.transfers < other.transfers
}

type queueItem struct {
	state state
	cost  cost
}

// searchQueue implements heap.Interface. Items are ordered by cost, then by
// station id and line id so that equal cost paths always resolve the same way.
type searchQueue []queueItem

func (q searchQueue) Len() int { return len(q) }

func (q searchQueue) Less(i, j int) bool {
	a, b := q[i], q[j]

	if a.cost != b.cost {
		return a.cost.less(b.cost)
	}
	if a.state.station != b.state.station {
		return a.state.station < b.state.station
	}
	if a.state.onLine != b.state.onLine {
		return !a.state.onLine
	}

	return a.state.line < b.state.line
}

func (q searchQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *searchQueue) Push(x any) {
	*q = append(*q, x.(queueItem))
}

func (q *searchQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
