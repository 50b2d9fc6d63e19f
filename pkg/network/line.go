package network

type Line struct {
	ID       int    `json:"id" groups:"basic"`
	Name     string `json:"name" groups:"basic"`
	Colour   string `json:"colour" groups:"basic"`
	Stations []int  `json:"stations" groups:"detailed"`
}

// StationPosition returns the index of the station along the line
func (l *Line) StationPosition(stationID int) (int, bool) {
	for i, id := range l.Stations {
		if id == stationID {
			return i, true
		}
	}

	return -1, false
}

// Distance is the number of stops between two stations along this line only
func (l *Line) Distance(origin int, destination int) (int, bool) {
	originPosition, originFound := l.StationPosition(origin)
	destinationPosition, destinationFound := l.StationPosition(destination)

	if !originFound || !destinationFound {
		return 0, false
	}

	distance := originPosition - destinationPosition
	if distance < 0 {
		distance = -distance
	}

	return distance, true
}

func (l *Line) String() string {
	return l.Name
}
