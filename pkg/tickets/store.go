package tickets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/jinzhu/copier"
)

type record struct {
	ID                   string `csv:"ticket_id"`
	OriginStationID      int    `csv:"origin_station_id"`
	DestinationStationID int    `csv:"destination_station_id"`
	Price                int64  `csv:"price"`
	Route                string `csv:"route"`
	Hops                 int    `csv:"hops"`
	Transfers            int    `csv:"transfers"`
	Purchased            string `csv:"purchased_at"`
}

// Store keeps tickets in an append-only CSV file. The last issued sequence
// number lives next to it in <path>.seq. It assumes a single writer.
type Store struct {
	path        string
	counterPath string
}

func NewStore(path string) *Store {
	return &Store{
		path:        path,
		counterPath: path + ".seq",
	}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) All() ([]*Ticket, error) {
	file, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []*Ticket{}, nil
	} else if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return []*Ticket{}, nil
	}

	var records []record
	if err := gocsv.Unmarshal(file, &records); err != nil {
		return nil, fmt.Errorf("read tickets %s: %w", s.path, err)
	}

	tickets := make([]*Ticket, 0, len(records))
	for _, rec := range records {
		ticket, err := rec.ticket()
		if err != nil {
			return nil, fmt.Errorf("ticket %s: %w", rec.ID, err)
		}

		tickets = append(tickets, ticket)
	}

	return tickets, nil
}

func (s *Store) Get(id string) (*Ticket, error) {
	tickets, err := s.All()
	if err != nil {
		return nil, err
	}

	for _, ticket := range tickets {
		if strings.EqualFold(ticket.ID, strings.TrimSpace(id)) {
			return ticket, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrTicketNotFound, id)
}

func (s *Store) Append(ticket *Ticket) error {
	rec, err := newRecord(ticket)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}

	records := []record{rec}
	if info.Size() == 0 {
		err = gocsv.Marshal(records, file)
	} else {
		err = gocsv.MarshalWithoutHeaders(records, file)
	}
	if err != nil {
		return fmt.Errorf("write ticket %s: %w", ticket.ID, err)
	}

	return file.Close()
}

// LastSequence is the last sequence handed out. A missing counter file is
// recovered from the highest sequence in the tickets file.
func (s *Store) LastSequence() (int, error) {
	contents, err := os.ReadFile(s.counterPath)
	if errors.Is(err, fs.ErrNotExist) {
		return s.recoverSequence()
	} else if err != nil {
		return 0, err
	}

	sequence, err := strconv.Atoi(strings.TrimSpace(string(contents)))
	if err != nil {
		return 0, fmt.Errorf("corrupt ticket counter %s: %w", s.counterPath, err)
	}

	return sequence, nil
}

// NextSequence allocates and persists the next sequence number
func (s *Store) NextSequence() (int, error) {
	last, err := s.LastSequence()
	if err != nil {
		return 0, err
	}

	next := last + 1
	if err := s.writeCounter(next); err != nil {
		return 0, err
	}

	return next, nil
}

func (s *Store) recoverSequence() (int, error) {
	tickets, err := s.All()
	if err != nil {
		return 0, err
	}

	highest := 0
	for _, ticket := range tickets {
		if sequence := ParseSequence(ticket.ID); sequence > highest {
			highest = sequence
		}
	}

	return highest, nil
}

// writeCounter replaces the counter file through a rename so a crash never
// leaves it half written
func (s *Store) writeCounter(sequence int) error {
	if err := os.MkdirAll(filepath.Dir(s.counterPath), 0o755); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(s.counterPath), filepath.Base(s.counterPath)+".tmp-")
	if err != nil {
		return err
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString(strconv.Itoa(sequence) + "\n"); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	return os.Rename(tmpFile.Name(), s.counterPath)
}

func newRecord(ticket *Ticket) (record, error) {
	var rec record
	if err := copier.Copy(&rec, ticket); err != nil {
		return record{}, err
	}
	rec.Purchased = ticket.PurchasedAt.Format(time.RFC3339)

	return rec, nil
}

func (r record) ticket() (*Ticket, error) {
	ticket := &Ticket{}
	if err := copier.Copy(ticket, &r); err != nil {
		return nil, err
	}

	purchasedAt, err := time.Parse(time.RFC3339, r.Purchased)
	if err != nil {
		return nil, err
	}
	ticket.PurchasedAt = purchasedAt

	return ticket, nil
}
