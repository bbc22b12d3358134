package boxid

import (
	"errors"

	f "github.com/multimediallc/advent-2018/pkg/functional"
)

var ErrNoMatch = errors.New("no pair of ids differs by exactly one letter")

// CountRepeats returns the distinct occurrence counts of the letters in id.
// "abcdafffvf" has letters seen once, twice and four times, so {1, 2, 4}.
func CountRepeats(id string) f.Set[int] {
	counts := make(map[rune]int)
	for _, r := range id {
		counts[r]++
	}
	repeats := f.NewSet[int]()
	for _, n := range counts {
		repeats.Add(n)
	}
	return repeats
}

// Checksum multiplies the number of ids containing some letter exactly twice
// by the number containing some letter exactly three times.
func Checksum(ids []string) int {
	twos, threes := 0, 0
	for _, id := range ids {
		repeats := CountRepeats(id)
		if repeats.Contains(2) {
			twos++
		}
		if repeats.Contains(3) {
			threes++
		}
	}
	return twos * threes
}

// CommonLetters finds two ids that differ at exactly one position and returns
// the letters they share. Positions are tried left to right and ids in input
// order, so the result is deterministic if the input holds several such pairs.
func CommonLetters(ids []string) (string, error) {
	ids = f.RemoveDuplicates(f.Filtered(ids, func(id string) bool { return id != "" }))
	longest := 0
	for _, id := range ids {
		longest = max(longest, len(id))
	}
	for i := range longest {
		// ids are distinct, so two that agree once position i is removed
		// differ exactly there
		seen := f.NewSet[string]()
		for _, id := range ids {
			if i >= len(id) {
				continue
			}
			key := id[:i] + id[i+1:]
			if seen.Contains(key) {
				return key, nil
			}
			seen.Add(key)
		}
	}
	return "", ErrNoMatch
}
