package frequency

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	f "github.com/multimediallc/advent-2018/pkg/functional"
)

var ErrNoRepeat = errors.New("no repeated frequency")

// Parse reads one signed change per non-blank line, e.g. "+7" or "-3".
func Parse(lines []string) ([]int, error) {
	changes := make([]int, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid frequency change %q: %w", i+1, line, err)
		}
		changes = append(changes, n)
	}
	return changes, nil
}

func Sum(changes []int) int {
	total := 0
	for _, c := range changes {
		total += c
	}
	return total
}

// FirstRepeat applies changes cyclically from zero and returns the first
// running frequency reached twice. It gives up after maxPasses passes over
// the list.
func FirstRepeat(changes []int, maxPasses int) (int, error) {
	if len(changes) == 0 {
		return 0, fmt.Errorf("%w: no changes", ErrNoRepeat)
	}
	current := 0
	seen := f.SetOf(current)
	for range maxPasses {
		for _, c := range changes {
			current += c
			if seen.Contains(current) {
				return current, nil
			}
			seen.Add(current)
		}
	}
	return 0, fmt.Errorf("%w after %d passes", ErrNoRepeat, maxPasses)
}
