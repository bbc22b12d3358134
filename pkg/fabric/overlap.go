package fabric

// CountOverlaps returns how many cells are covered by two or more claims.
func CountOverlaps(f *Fabric) int {
	overlaps := 0
	for n := range f.Cells() {
		if n > 1 {
			overlaps++
		}
	}
	return overlaps
}
