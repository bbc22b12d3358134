package fabric

import (
	"fmt"

	f "github.com/multimediallc/advent-2018/pkg/functional"
)

// FindExclusive returns the first claim, in input order, whose every cell has a
// count of exactly one on fab. fab must have been rasterized from claims.
// Uniqueness is not checked. A KindNotFound error is returned when no claim
// qualifies.
func FindExclusive(claims []Claim, fab *Fabric) (Claim, error) {
	c, ok := f.Find(claims, func(c Claim) bool {
		return isExclusive(fab, c)
	})
	if !ok {
		return Claim{}, &Error{Kind: KindNotFound, Detail: fmt.Sprintf("none of %d claims is free of overlap", len(claims))}
	}
	return c, nil
}

func isExclusive(fab *Fabric, c Claim) bool {
	for n := range fab.CellsIn(c) {
		if n != 1 {
			return false
		}
	}
	return true
}
