package fares

import "fmt"

// Amount is a price in minor currency units (pence, cents)
type Amount int64

func (a Amount) Format(currency string) string {
	sign := ""
	if a < 0 {
		sign = "-"
		a = -a
	}

	return fmt.Sprintf("%s%s%d.%02d", sign, currency, a/100, a%100)
}

func (a Amount) String() string {
	return a.Format("")
}
