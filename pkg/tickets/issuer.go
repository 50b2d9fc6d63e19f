package tickets

import (
	"fmt"
	"time"

	"github.com/travigo/metro/pkg/fares"
	"github.com/travigo/metro/pkg/journeyplanner"
)

type Planner interface {
	Resolve(origin int, destination int) (*journeyplanner.Itinerary, error)
	Describe(itinerary *journeyplanner.Itinerary) string
}

type Pricer interface {
	Price(journey fares.Journey) (fares.Amount, error)
}

// Quote is a priced journey that has not been bought yet
type Quote struct {
	Itinerary *journeyplanner.Itinerary `json:"itinerary" groups:"detailed"`
	Price     fares.Amount              `json:"price" groups:"basic"`
	Route     string                    `json:"route" groups:"basic"`
}

type Issuer struct {
	store   *Store
	planner Planner
	pricer  Pricer

	Clock func() time.Time
}

func NewIssuer(store *Store, planner Planner, pricer Pricer) *Issuer {
	return &Issuer{
		store:   store,
		planner: planner,
		pricer:  pricer,
		Clock:   time.Now,
	}
}

func (i *Issuer) Store() *Store {
	return i.store
}

func (i *Issuer) Quote(origin int, destination int) (*Quote, error) {
	itinerary, err := i.planner.Resolve(origin, destination)
	if err != nil {
		return nil, err
	}

	price, err := i.pricer.Price(itinerary)
	if err != nil {
		return nil, err
	}

	return &Quote{
		Itinerary: itinerary,
		Price:     price,
		Route:     i.planner.Describe(itinerary),
	}, nil
}

// Issue prices the journey and records a new ticket for it
func (i *Issuer) Issue(origin int, destination int) (*Ticket, error) {
	quote, err := i.Quote(origin, destination)
	if err != nil {
		return nil, err
	}
	if quote.Itinerary.IsEmpty() {
		return nil, ErrSameStation
	}

	sequence, err := i.store.NextSequence()
	if err != nil {
		return nil, err
	}

	purchasedAt := i.Clock().UTC().Truncate(time.Second)

	ticket := &Ticket{
		ID:                   FormatID(purchasedAt, sequence),
		OriginStationID:      origin,
		DestinationStationID: destination,
		Price:                quote.Price,
		Route:                quote.Route,
		Hops:                 quote.Itinerary.Hops(),
		Transfers:            quote.Itinerary.Transfers(),
		PurchasedAt:          purchasedAt,
	}

	if err := i.store.Append(ticket); err != nil {
		return nil, fmt.Errorf("save ticket %s: %w", ticket.ID, err)
	}

	return ticket, nil
}
