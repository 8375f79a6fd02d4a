// Package parser converts raw boundary input lines into typed decision
// values. Numbers are strict; yes/no answers are tolerant of close typos.
package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrNotANumber marks input that failed integer parsing.
var ErrNotANumber = errors.New("not a number")

// Int parses a whole number from a raw line.
func Int(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrNotANumber
	}
	return n, nil
}

// YesNo recognizes a yes/no answer. Bare initials are accepted, and typos
// within edit distance 1 of "yes" or "no" are forgiven. The second return
// is false when the answer is unrecognizable and should be re-asked.
func YesNo(raw string) (value, ok bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "":
		return false, false
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	if levenshtein.ComputeDistance(s, "yes") <= 1 {
		return true, true
	}
	if levenshtein.ComputeDistance(s, "no") <= 1 {
		return false, true
	}
	return false, false
}
