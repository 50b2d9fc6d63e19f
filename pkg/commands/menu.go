package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/travigo/metro/pkg/app"
	"github.com/urfave/cli/v2"
)

var errMenuClosed = errors.New("menu closed")

func RegisterMenuCLI() *cli.Command {
	return &cli.Command{
		Name:  "menu",
		Usage: "Interactive menu for browsing the network and buying tickets",
		Action: func(c *cli.Context) error {
			metro, err := loadApp(c)
			if err != nil {
				return err
			}

			return runMenu(c.App.Reader, c.App.Writer, metro)
		},
	}
}

type menu struct {
	scanner *bufio.Scanner
	out     io.Writer
	metro   *app.App
}

func runMenu(in io.Reader, out io.Writer, metro *app.App) error {
	m := &menu{
		scanner: bufio.NewScanner(in),
		out:     out,
		metro:   metro,
	}

	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "1) List stations")
		fmt.Fprintln(out, "2) List lines")
		fmt.Fprintln(out, "3) Plan a route")
		fmt.Fprintln(out, "4) Purchase a ticket")
		fmt.Fprintln(out, "5) View purchased tickets")
		fmt.Fprintln(out, "6) Show a ticket")
		fmt.Fprintln(out, "0) Exit")

		choice, err := m.prompt("Choose an option: ")
		if errors.Is(err, errMenuClosed) {
			return nil
		} else if err != nil {
			return err
		}

		if choice == "0" || strings.EqualFold(choice, "q") {
			return nil
		}

		err = m.handle(choice)
		if errors.Is(err, errMenuClosed) {
			return nil
		} else if err != nil {
			fmt.Fprintf(out, "Error: %s\n", Explain(err))
		}
	}
}

func (m *menu) handle(choice string) error {
	switch choice {
	case "1":
		return printStations(m.out, m.metro.Network, m.metro.Network.Stations())
	case "2":
		return printLines(m.out, m.metro.Network)
	case "3":
		from, to, err := m.promptJourney()
		if err != nil {
			return err
		}

		quote, err := quoteJourney(m.metro, from, to)
		if err != nil {
			return err
		}

		return printQuote(m.out, m.metro, quote)
	case "4":
		from, to, err := m.promptJourney()
		if err != nil {
			return err
		}

		quote, err := quoteJourney(m.metro, from, to)
		if err != nil {
			return err
		}
		if err := printQuote(m.out, m.metro, quote); err != nil {
			return err
		}

		confirm, err := m.prompt("Buy this ticket? [y/N]: ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(confirm, "y") && !strings.EqualFold(confirm, "yes") {
			fmt.Fprintln(m.out, "Purchase cancelled")
			return nil
		}

		ticket, err := purchaseTicket(m.metro, from, to)
		if err != nil {
			return err
		}

		return printTicket(m.out, m.metro, ticket)
	case "5":
		purchased, err := m.metro.Issuer.Store().All()
		if err != nil {
			return err
		}

		return printTickets(m.out, m.metro, purchased)
	case "6":
		id, err := m.prompt("Ticket id: ")
		if err != nil {
			return err
		}

		ticket, err := m.metro.Issuer.Store().Get(id)
		if err != nil {
			return err
		}

		return printTicket(m.out, m.metro, ticket)
	default:
		fmt.Fprintf(m.out, "Unknown option %q\n", choice)
		return nil
	}
}

func (m *menu) promptJourney() (string, string, error) {
	from, err := m.prompt("From station (id or name): ")
	if err != nil {
		return "", "", err
	}

	to, err := m.prompt("To station (id or name): ")
	if err != nil {
		return "", "", err
	}

	return from, to, nil
}

func (m *menu) prompt(question string) (string, error) {
	fmt.Fprint(m.out, question)

	if !m.scanner.Scan() {
		if err := m.scanner.Err(); err != nil {
			return "", err
		}

		return "", errMenuClosed
	}

	return strings.TrimSpace(m.scanner.Text()), nil
}
