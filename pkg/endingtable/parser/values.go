package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TextDelimiter separates display steps in a body text cell.
const TextDelimiter = "/"

// ErrNotInteger indicates a cell that cannot be read as an integer.
var ErrNotInteger = errors.New("not an integer")

// ParseInt reads an integer cell. Integral text parses directly; decimal
// text, which is how a numeric cell with a number format renders, is
// truncated toward zero.
func ParseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrNotInteger)
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, s)
	}
	t := math.Trunc(f)
	if t >= math.MaxInt || t < math.MinInt {
		return 0, fmt.Errorf("%w: %q out of range", ErrNotInteger, s)
	}
	return int(t), nil
}

// ParseBool normalizes a TRUE/FALSE cell, ignoring case and surrounding
// space. ok is false for any other text.
func ParseBool(s string) (value bool, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRUE":
		return true, true
	case "FALSE":
		return false, true
	}
	return false, false
}

// SplitText splits a body text cell into trimmed display steps.
// A null cell yields an empty, non-nil slice; a whitespace-only cell yields
// a single empty step.
func SplitText(s string, present bool) []string {
	if !present {
		return []string{}
	}
	parts := strings.Split(s, TextDelimiter)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
