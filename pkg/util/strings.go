package util

import (
	"strconv"
	"strings"
)

func TrimString(s string, length int) string {
	if len(s) <= length {
		return s
	}

	if length <= 3 {
		return s[:length]
	}

	return s[:length-3] + "..."
}

func JoinInts(values []int, separator string) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = strconv.Itoa(value)
	}

	return strings.Join(parts, separator)
}

// SplitInts parses a separated list of integers, ignoring blank entries
func SplitInts(s string, separator string) ([]int, error) {
	var values []int

	for _, part := range strings.Split(s, separator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		value, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	return values, nil
}
