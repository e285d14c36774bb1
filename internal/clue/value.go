package clue

import (
	"strconv"
	"strings"
)

var valueNoise = strings.NewReplacer("$", "", ",", "")

// ParseValue converts a currency-like string such as "$1,000" into an integer.
// It returns nil when nothing remains after stripping "$" and "," or when the
// remainder is not a base-10 integer.
func ParseValue(raw string) *int {
	cleaned := strings.TrimSpace(valueNoise.Replace(raw))
	if cleaned == "" {
		return nil
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return nil
	}
	return &n
}
