package network

type Station struct {
	ID    int    `json:"id" groups:"basic"`
	Name  string `json:"name" groups:"basic"`
	Lines []int  `json:"lines" groups:"detailed"`
}

// IsTransferStation reports whether more than one line serves the station
func (s *Station) IsTransferStation() bool {
	return len(s.Lines) > 1
}

func (s *Station) ServedBy(lineID int) bool {
	for _, id := range s.Lines {
		if id == lineID {
			return true
		}
	}

	return false
}

func (s *Station) LineNames(n *Network) []string {
	var names []string

	for _, lineID := range s.Lines {
		if line, exists := n.Line(lineID); exists {
			names = append(names, line.Name)
		}
	}

	return names
}

func (s *Station) String() string {
	return s.Name
}
