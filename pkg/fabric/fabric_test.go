package fabric

import (
	"iter"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioA() []Claim {
	return []Claim{
		{ID: 1, X: 1, Y: 3, Width: 4, Height: 4},
		{ID: 2, X: 3, Y: 1, Width: 4, Height: 4},
		{ID: 3, X: 5, Y: 5, Width: 2, Height: 2},
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name       string
		claims     []Claim
		wantWidth  int
		wantHeight int
	}{
		{name: "empty", claims: nil},
		{name: "single", claims: []Claim{{ID: 9, Width: 1, Height: 1}}, wantWidth: 1, wantHeight: 1},
		{name: "scenario A", claims: scenarioA(), wantWidth: 7, wantHeight: 7},
		{
			name: "extent from different claims",
			claims: []Claim{
				{ID: 1, X: 10, Y: 0, Width: 5, Height: 1},
				{ID: 2, X: 0, Y: 20, Width: 1, Height: 3},
			},
			wantWidth:  15,
			wantHeight: 23,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := Bounds(tt.claims)
			assert.Equal(t, tt.wantWidth, w)
			assert.Equal(t, tt.wantHeight, h)
			for _, c := range tt.claims {
				assert.LessOrEqual(t, c.Right(), w)
				assert.LessOrEqual(t, c.Bottom(), h)
			}
		})
	}
}

func TestNewLimited(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		maxCells int
		wantErr  bool
	}{
		{name: "empty", width: 0, height: 0, maxCells: 10},
		{name: "exact limit", width: 2, height: 5, maxCells: 10},
		{name: "over limit", width: 3, height: 4, maxCells: 10, wantErr: true},
		{name: "negative", width: -1, height: 4, maxCells: 10, wantErr: true},
		{name: "overflow", width: math.MaxInt / 2, height: 3, maxCells: math.MaxInt, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fab, err := NewLimited(tt.width, tt.height, tt.maxCells)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrResourceLimit)
				assert.Equal(t, KindResourceLimit, KindOf(err))
				assert.Nil(t, fab)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.width, fab.Width())
			assert.Equal(t, tt.height, fab.Height())
			for n := range fab.Cells() {
				assert.Zero(t, n)
			}
		})
	}
}

func TestFabricClaim(t *testing.T) {
	fab, err := New(4, 3)
	require.NoError(t, err)

	fab.Claim(Claim{ID: 1, X: 1, Y: 0, Width: 2, Height: 2})
	fab.Claim(Claim{ID: 2, X: 2, Y: 1, Width: 2, Height: 2})

	assert.Equal(t, []int{
		0, 1, 1, 0,
		0, 1, 2, 1,
		0, 0, 1, 1,
	}, slices.Collect(fab.Cells()))
	assert.Equal(t, 2, fab.At(2, 1))
	assert.Equal(t, 0, fab.At(0, 2))
}

func TestFabricClaimOutsidePanics(t *testing.T) {
	fab, err := New(4, 4)
	require.NoError(t, err)

	assert.Panics(t, func() { fab.Claim(Claim{ID: 1, X: 3, Y: 0, Width: 2, Height: 1}) })
	assert.Panics(t, func() { fab.Claim(Claim{ID: 1, X: 0, Y: 3, Width: 1, Height: 2}) })
	assert.Panics(t, func() { fab.Claim(Claim{ID: 1, X: -1, Y: 0, Width: 1, Height: 1}) })
	assert.Panics(t, func() { fab.At(4, 0) })
}

func TestFabricCellsIn(t *testing.T) {
	fab, err := New(4, 3)
	require.NoError(t, err)
	fab.Claim(Claim{ID: 1, X: 0, Y: 0, Width: 4, Height: 3})
	fab.Claim(Claim{ID: 2, X: 1, Y: 1, Width: 2, Height: 2})

	region := Claim{ID: 3, X: 1, Y: 0, Width: 3, Height: 2}
	want := []int{1, 1, 1, 2, 2, 1}
	assert.Equal(t, want, slices.Collect(fab.CellsIn(region)))
	// restartable and read-only
	assert.Equal(t, want, slices.Collect(fab.CellsIn(region)))
	assert.Equal(t, 16, sum(fab.Cells()))
}

func TestFabricCellsStopEarly(t *testing.T) {
	fab, err := New(3, 3)
	require.NoError(t, err)

	seen := 0
	for range fab.Cells() {
		seen++
		if seen == 4 {
			break
		}
	}
	assert.Equal(t, 4, seen)

	seen = 0
	for range fab.CellsIn(Claim{ID: 1, Width: 3, Height: 3}) {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestFabricFillStopsOutside(t *testing.T) {
	fab, err := New(3, 3)
	require.NoError(t, err)

	err = fab.fill([]Claim{
		{ID: 1, X: 0, Y: 0, Width: 2, Height: 2},
		{ID: 2, X: 2, Y: 2, Width: 2, Height: 1},
		{ID: 3, X: 0, Y: 0, Width: 1, Height: 1},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "#2 @ 2,2: 2x1")
	assert.Equal(t, 4, sum(fab.Cells()), "claims after the bad one are not applied")
}

func sum(seq iter.Seq[int]) int {
	total := 0
	for n := range seq {
		total += n
	}
	return total
}
