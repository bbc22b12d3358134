package fabric

// Bounds returns the smallest fabric size that contains every claim.
// An empty claim set yields (0, 0).
func Bounds(claims []Claim) (width, height int) {
	for _, c := range claims {
		width = max(width, c.Right())
		height = max(height, c.Bottom())
	}
	return width, height
}
