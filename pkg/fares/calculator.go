package fares

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrInvalidFare = errors.New("invalid fare")

// Journey is the shape of an itinerary that a fare depends on
type Journey interface {
	IsEmpty() bool
	Hops() int
	Transfers() int
}

type Calculator struct {
	config Config
	rule   *vm.Program
}

func NewCalculator(config Config) (*Calculator, error) {
	if config.Base < 0 || config.PerHop < 0 || config.PerTransfer < 0 {
		return nil, fmt.Errorf("%w: fare components must not be negative", ErrInvalidFare)
	}
	if config.Base+config.PerHop <= 0 {
		return nil, fmt.Errorf("%w: a one stop journey would be free", ErrInvalidFare)
	}

	c := &Calculator{config: config}

	if config.Rule != "" {
		program, err := expr.Compile(config.Rule, expr.Env(c.ruleEnvironment(0, 0)), expr.AsInt())
		if err != nil {
			return nil, fmt.Errorf("%w: compile rule: %w", ErrInvalidFare, err)
		}
		c.rule = program

		// The simplest possible journey has to cost something
		if _, err := c.evaluate(1, 0); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Calculator) Config() Config {
	return c.config
}

// Price is zero for an empty journey and positive for anything else
func (c *Calculator) Price(journey Journey) (Amount, error) {
	if journey.IsEmpty() {
		return 0, nil
	}

	return c.evaluate(journey.Hops(), journey.Transfers())
}

func (c *Calculator) Format(amount Amount) string {
	return amount.Format(c.config.Currency)
}

func (c *Calculator) evaluate(hops int, transfers int) (Amount, error) {
	if c.rule == nil {
		return c.config.Base + Amount(hops)*c.config.PerHop + Amount(transfers)*c.config.PerTransfer, nil
	}

	result, err := expr.Run(c.rule, c.ruleEnvironment(hops, transfers))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidFare, err)
	}

	price := Amount(result.(int))
	if price <= 0 {
		return 0, fmt.Errorf("%w: rule priced %d hops and %d transfers at %d", ErrInvalidFare, hops, transfers, price)
	}

	return price, nil
}

func (c *Calculator) ruleEnvironment(hops int, transfers int) map[string]any {
	return map[string]any{
		"base":        int(c.config.Base),
		"perHop":      int(c.config.PerHop),
		"perTransfer": int(c.config.PerTransfer),
		"hops":        hops,
		"transfers":   transfers,
	}
}
