package fabric

import "fmt"

// Claim is an axis-aligned rectangle on the fabric. The origin is the top-left
// corner; X grows to the right and Y grows downwards.
type Claim struct {
	ID     int
	X      int
	Y      int
	Width  int
	Height int
}

// Right is the first column past the claim.
func (c Claim) Right() int {
	return c.X + c.Width
}

// Bottom is the first row past the claim.
func (c Claim) Bottom() int {
	return c.Y + c.Height
}

// Area is the number of cells the claim covers.
func (c Claim) Area() int {
	return c.Width * c.Height
}

// Overlap returns the number of cells covered by both c and o.
func (c Claim) Overlap(o Claim) int {
	w := min(c.Right(), o.Right()) - max(c.X, o.X)
	h := min(c.Bottom(), o.Bottom()) - max(c.Y, o.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

func (c Claim) String() string {
	return fmt.Sprintf("#%d @ %d,%d: %dx%d", c.ID, c.X, c.Y, c.Width, c.Height)
}
