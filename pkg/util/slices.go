package util

import (
	"cmp"

	"golang.org/x/exp/slices"
)

func InPlaceFilter[T any](s *[]T, p func(T) bool) {
	i := 0
	for _, e := range *s {
		if p(e) {
			(*s)[i] = e
			i++
		}
	}
	*s = (*s)[:i]
}

// SortedUnique returns a sorted copy of values with duplicates removed
func SortedUnique[T cmp.Ordered](values []T) []T {
	list := slices.Clone(values)
	slices.Sort(list)

	return slices.Compact(list)
}
