package random

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvertedRange = errors.New("random: min is greater than max")

// Range is a closed integer interval [Min, Max].
type Range struct {
	Min int
	Max int
}

// NewRange validates the bounds. Inverted bounds are rejected rather than
// swapped so the caller sees exactly what was asked for.
func NewRange(min, max int) (Range, error) {
	if min > max {
		return Range{}, ErrInvertedRange
	}
	return Range{Min: min, Max: max}, nil
}

// ParseRange builds a Range from user-supplied text bounds.
func ParseRange(minText, maxText string) (Range, error) {
	min, err := strconv.Atoi(strings.TrimSpace(minText))
	if err != nil {
		return Range{}, fmt.Errorf("random: min %q is not a number", minText)
	}
	max, err := strconv.Atoi(strings.TrimSpace(maxText))
	if err != nil {
		return Range{}, fmt.Errorf("random: max %q is not a number", maxText)
	}
	return NewRange(min, max)
}

// Draw yields a uniform integer in [Min, Max] inclusive.
func (r Range) Draw(src Source) int {
	return r.Min + src.Intn(r.Max-r.Min+1)
}
