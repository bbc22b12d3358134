package fabric

import (
	"fmt"
	"iter"
	"math"
)

const maxInt = math.MaxInt

// DefaultMaxCells caps the grid allocated by New.
const DefaultMaxCells = 1 << 28

// Fabric is a dense occupancy grid. Cell (col, row) lives at
// counts[row*width+col] and holds the number of claims covering it.
//
// A Fabric is written by Claim during rasterization and only read afterwards;
// it is not safe for concurrent writers.
type Fabric struct {
	width  int
	height int
	counts []uint32
}

// New allocates a zeroed width x height fabric, limited to DefaultMaxCells.
func New(width, height int) (*Fabric, error) {
	return NewLimited(width, height, DefaultMaxCells)
}

// NewLimited allocates a zeroed width x height fabric, failing with a
// KindResourceLimit error if the cell count overflows or exceeds maxCells.
func NewLimited(width, height, maxCells int) (*Fabric, error) {
	if width < 0 || height < 0 {
		return nil, &Error{Kind: KindResourceLimit, Detail: fmt.Sprintf("negative dimensions %dx%d", width, height)}
	}
	if width > 0 && height > maxInt/width {
		return nil, &Error{Kind: KindResourceLimit, Detail: fmt.Sprintf("%dx%d overflows the addressable size", width, height)}
	}
	if cells := width * height; cells > maxCells {
		return nil, &Error{Kind: KindResourceLimit, Detail: fmt.Sprintf("%dx%d needs %d cells, limit is %d", width, height, cells, maxCells)}
	}
	return &Fabric{
		width:  width,
		height: height,
		counts: make([]uint32, width*height),
	}, nil
}

func (f *Fabric) Width() int {
	return f.width
}

func (f *Fabric) Height() int {
	return f.height
}

// At returns the count at (col, row). It panics outside the grid.
func (f *Fabric) At(col, row int) int {
	if col < 0 || col >= f.width || row < 0 || row >= f.height {
		panic(fmt.Sprintf("fabric: cell (%d,%d) outside %dx%d", col, row, f.width, f.height))
	}
	return int(f.counts[row*f.width+col])
}

// Claim rasterizes c, incrementing every cell under it by one.
// The claim must lie inside the fabric; Bounds guarantees this for the claim
// set the fabric was sized from, so anything else is a programming error.
func (f *Fabric) Claim(c Claim) {
	f.mustContain(c)
	f.increment(c)
}

// fill applies claims in order, stopping at the first one outside the fabric.
func (f *Fabric) fill(claims []Claim) error {
	for _, c := range claims {
		if !f.contains(c) {
			return f.outside(c)
		}
		f.increment(c)
	}
	return nil
}

func (f *Fabric) increment(c Claim) {
	for row := c.Y; row < c.Bottom(); row++ {
		line := f.counts[row*f.width+c.X : row*f.width+c.Right()]
		for i := range line {
			line[i]++
		}
	}
}

// Cells yields every count in row-major order.
func (f *Fabric) Cells() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, n := range f.counts {
			if !yield(int(n)) {
				return
			}
		}
	}
}

// CellsIn yields the counts under c in row-major order without modifying the
// fabric. It panics if c does not lie inside the fabric.
func (f *Fabric) CellsIn(c Claim) iter.Seq[int] {
	f.mustContain(c)
	return func(yield func(int) bool) {
		for row := c.Y; row < c.Bottom(); row++ {
			for _, n := range f.counts[row*f.width+c.X : row*f.width+c.Right()] {
				if !yield(int(n)) {
					return
				}
			}
		}
	}
}

// add sums o into f cell by cell. Both fabrics must share dimensions.
func (f *Fabric) add(o *Fabric) {
	for i, n := range o.counts {
		f.counts[i] += n
	}
}

func (f *Fabric) contains(c Claim) bool {
	return c.X >= 0 && c.Y >= 0 && c.Width > 0 && c.Height > 0 && c.Right() <= f.width && c.Bottom() <= f.height
}

func (f *Fabric) outside(c Claim) error {
	return fmt.Errorf("fabric: claim %s outside %dx%d", c, f.width, f.height)
}

func (f *Fabric) mustContain(c Claim) {
	if !f.contains(c) {
		panic(f.outside(c).Error())
	}
}
