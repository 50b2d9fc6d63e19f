package tickets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/metro/pkg/fares"
	"github.com/travigo/metro/pkg/journeygraph"
	"github.com/travigo/metro/pkg/journeyplanner"
	"github.com/travigo/metro/pkg/network"
)

var purchaseTime = time.Date(2024, time.March, 9, 14, 30, 5, 0, time.UTC)

func newIssuer(t *testing.T, path string) *Issuer {
	t.Helper()

	n, err := network.Load(
		[]network.StationRecord{
			{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}, {ID: 4, Name: "D"}, {ID: 5, Name: "E"},
		},
		[]network.LineRecord{
			{ID: 1, Name: "Line 1", Stations: []int{1, 2, 3}},
			{ID: 2, Name: "Line 2", Stations: []int{3, 4}},
		},
	)
	require.NoError(t, err)

	calculator, err := fares.NewCalculator(fares.Config{Currency: "£", Base: 100, PerHop: 20, PerTransfer: 50})
	require.NoError(t, err)

	issuer := NewIssuer(NewStore(path), journeyplanner.NewResolver(journeygraph.Build(n)), calculator)
	issuer.Clock = func() time.Time { return purchaseTime }

	return issuer
}

func TestIssue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.csv")
	issuer := newIssuer(t, path)

	ticket, err := issuer.Issue(1, 4)
	require.NoError(t, err)

	assert.Equal(t, "MET-TKT-20240309-000001", ticket.ID)
	assert.Equal(t, 1, ticket.OriginStationID)
	assert.Equal(t, 4, ticket.DestinationStationID)
	assert.Equal(t, fares.Amount(100+3*20+50), ticket.Price)
	assert.Equal(t, "Line 1: A -> C (2 stops) | change at C | Line 2: C -> D (1 stop)", ticket.Route)
	assert.Equal(t, 3, ticket.Hops)
	assert.Equal(t, 1, ticket.Transfers)

	second, err := issuer.Issue(2, 3)
	require.NoError(t, err)
	assert.Equal(t, "MET-TKT-20240309-000002", second.ID)

	stored, err := issuer.Store().All()
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, ticket, stored[0])
	assert.Equal(t, second, stored[1])
	assert.True(t, stored[0].PurchasedAt.Equal(purchaseTime))
}

func TestIssueErrors(t *testing.T) {
	issuer := newIssuer(t, filepath.Join(t.TempDir(), "tickets.csv"))

	_, err := issuer.Issue(2, 2)
	assert.ErrorIs(t, err, ErrSameStation)

	_, err = issuer.Issue(1, 99)
	var invalidErr *journeyplanner.InvalidStationError
	assert.ErrorAs(t, err, &invalidErr)

	_, err = issuer.Issue(1, 5)
	var noRouteErr *journeyplanner.NoRouteError
	assert.ErrorAs(t, err, &noRouteErr)

	tickets, err := issuer.Store().All()
	require.NoError(t, err)
	assert.Empty(t, tickets, "failed purchases never reach the store")

	last, err := issuer.Store().LastSequence()
	require.NoError(t, err)
	assert.Equal(t, 0, last)
}

func TestQuote(t *testing.T) {
	issuer := newIssuer(t, filepath.Join(t.TempDir(), "tickets.csv"))

	quote, err := issuer.Quote(3, 3)
	require.NoError(t, err)
	assert.Equal(t, fares.Amount(0), quote.Price)
	assert.Equal(t, "C (no travel)", quote.Route)

	quote, err = issuer.Quote(1, 2)
	require.NoError(t, err)
	assert.Equal(t, fares.Amount(120), quote.Price)
}

func TestSequenceSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.csv")

	_, err := newIssuer(t, path).Issue(1, 2)
	require.NoError(t, err)

	ticket, err := newIssuer(t, path).Issue(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, ParseSequence(ticket.ID))
}

func TestSequenceRecoveredFromTickets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.csv")
	issuer := newIssuer(t, path)

	for i := 0; i < 3; i++ {
		_, err := issuer.Issue(1, 4)
		require.NoError(t, err)
	}

	require.NoError(t, os.Remove(path+".seq"))

	ticket, err := issuer.Issue(4, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, ParseSequence(ticket.ID))
}

func TestCorruptCounter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.csv")
	require.NoError(t, os.WriteFile(path+".seq", []byte("twelve"), 0o644))

	_, err := NewStore(path).NextSequence()
	assert.Error(t, err)
}

func TestStoreGet(t *testing.T) {
	issuer := newIssuer(t, filepath.Join(t.TempDir(), "tickets.csv"))

	issued, err := issuer.Issue(1, 3)
	require.NoError(t, err)

	ticket, err := issuer.Store().Get("met-tkt-20240309-000001")
	require.NoError(t, err)
	assert.Equal(t, issued, ticket)

	_, err = issuer.Store().Get("MET-TKT-20240309-000099")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestStoreEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.csv")

	tickets, err := NewStore(path).All()
	require.NoError(t, err)
	assert.Empty(t, tickets)

	require.NoError(t, os.WriteFile(path, nil, 0o644))

	tickets, err = NewStore(path).All()
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestStoreCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tickets.csv")
	issuer := newIssuer(t, path)

	_, err := issuer.Issue(1, 2)
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.FileExists(t, path+".seq")
}

func TestParseSequence(t *testing.T) {
	assert.Equal(t, 42, ParseSequence(FormatID(purchaseTime, 42)))
	assert.Equal(t, 1234567, ParseSequence("MET-TKT-20240309-1234567"))
	assert.Equal(t, -1, ParseSequence("OTHER-000001"))
	assert.Equal(t, -1, ParseSequence("MET-TKT-20240309-abc"))
}
