package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSkip is returned for a malformed --skip value
var ErrInvalidSkip = errors.New("invalid --skip value")

// ParseSkip parses "1,3,5-7" into zero-based indexes below n. Duplicates are
// collapsed; order follows the input.
func ParseSkip(expr string, n int) ([]int, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	seen := make(map[int]bool)
	var out []int
	add := func(num int) error {
		if num < 1 || num > n {
			return fmt.Errorf("%w: %d is outside 1..%d", ErrInvalidSkip, num, n)
		}
		if !seen[num] {
			seen[num] = true
			out = append(out, num-1)
		}
		return nil
	}

	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi, isRange := strings.Cut(part, "-")
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSkip, part)
		}
		end := start
		if isRange {
			if end, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil || end < start {
				return nil, fmt.Errorf("%w: %q", ErrInvalidSkip, part)
			}
		}

		for num := start; num <= end; num++ {
			if err := add(num); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
