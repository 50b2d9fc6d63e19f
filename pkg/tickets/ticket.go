package tickets

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/travigo/metro/pkg/fares"
)

const idPrefix = "MET-TKT"

var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrSameStation    = errors.New("origin and destination are the same station")
)

type Ticket struct {
	ID                   string       `json:"id" groups:"basic"`
	OriginStationID      int          `json:"originStationId" groups:"basic"`
	DestinationStationID int          `json:"destinationStationId" groups:"basic"`
	Price                fares.Amount `json:"price" groups:"basic"`
	Route                string       `json:"route" groups:"detailed"`
	Hops                 int          `json:"hops" groups:"detailed"`
	Transfers            int          `json:"transfers" groups:"detailed"`
	PurchasedAt          time.Time    `json:"purchasedAt" groups:"basic"`
}

// FormatID builds ids like MET-TKT-20240131-000042 from the purchase date and
// the issuer's sequence number
func FormatID(purchasedAt time.Time, sequence int) string {
	return fmt.Sprintf("%s-%s-%06d", idPrefix, purchasedAt.Format("20060102"), sequence)
}

// ParseSequence extracts the sequence number from a ticket id, -1 if the id
// is not one of ours
func ParseSequence(id string) int {
	if !strings.HasPrefix(id, idPrefix+"-") {
		return -1
	}

	separator := strings.LastIndex(id, "-")
	sequence, err := strconv.Atoi(id[separator+1:])
	if err != nil || sequence < 0 {
		return -1
	}

	return sequence
}
