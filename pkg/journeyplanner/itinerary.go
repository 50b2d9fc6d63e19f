package journeyplanner

// Segment is a contiguous stretch of an itinerary travelled on one line
type Segment struct {
	Line     int   `json:"line" groups:"basic"`
	Entry    int   `json:"entry" groups:"basic"`
	Exit     int   `json:"exit" groups:"basic"`
	Stations []int `json:"stations" groups:"detailed"`
}

func (s Segment) Hops() int {
	return len(s.Stations) - 1
}

// Itinerary is the full path between two stations. The exit of each segment
// is the entry of the next one, which is where the transfer happens.
type Itinerary struct {
	Origin      int       `json:"origin" groups:"basic"`
	Destination int       `json:"destination" groups:"basic"`
	Segments    []Segment `json:"segments" groups:"basic"`
}

func (i *Itinerary) IsEmpty() bool {
	return len(i.Segments) == 0
}

func (i *Itinerary) Hops() int {
	hops := 0
	for _, segment := range i.Segments {
		hops += segment.Hops()
	}

	return hops
}

func (i *Itinerary) Transfers() int {
	if i.IsEmpty() {
		return 0
	}

	return len(i.Segments) - 1
}

// Stations visited in order, transfer stations listed once
func (i *Itinerary) Stations() []int {
	if i.IsEmpty() {
		return []int{i.Origin}
	}

	stations := []int{i.Origin}
	for _, segment := range i.Segments {
		stations = append(stations, segment.Stations[1:]...)
	}

	return stations
}

// TransferStations are the boundary stations between consecutive segments
func (i *Itinerary) TransferStations() []int {
	var stations []int
	for index := 1; index < len(i.Segments); index++ {
		stations = append(stations, i.Segments[index].Entry)
	}

	return stations
}
