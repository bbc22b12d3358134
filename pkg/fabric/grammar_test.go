package fabric

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammarParse(t *testing.T) {
	g := NewGrammar()

	tests := []struct {
		name    string
		line    string
		want    Claim
		wantErr bool
	}{
		{
			name: "puzzle example",
			line: "#2 @ 32,10: 14x7",
			want: Claim{ID: 2, X: 32, Y: 10, Width: 14, Height: 7},
		},
		{
			name: "origin",
			line: "#9 @ 0,0: 1x1",
			want: Claim{ID: 9, X: 0, Y: 0, Width: 1, Height: 1},
		},
		{name: "empty line", line: "", wantErr: true},
		{name: "missing id marker", line: "2 @ 32,10: 14x7", wantErr: true},
		{name: "missing height", line: "#2 @ 32,10: 14x", wantErr: true},
		{name: "missing y", line: "#2 @ 32: 14x7", wantErr: true},
		{name: "wrong separator", line: "#2 @ 32;10: 14x7", wantErr: true},
		{name: "non-numeric field", line: "#2 @ a,10: 14x7", wantErr: true},
		{name: "negative coordinate", line: "#2 @ -3,10: 14x7", wantErr: true},
		{name: "leading whitespace", line: " #2 @ 32,10: 14x7", wantErr: true},
		{name: "trailing whitespace", line: "#2 @ 32,10: 14x7 ", wantErr: true},
		{name: "compact spacing", line: "#2 @32,10:14x7", wantErr: true},
		{name: "zero width", line: "#2 @ 32,10: 0x7", wantErr: true},
		{name: "zero height", line: "#2 @ 32,10: 14x0", wantErr: true},
		{name: "id overflow", line: "#99999999999999999999999 @ 1,1: 1x1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Parse(tt.line)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrParse))
				assert.Equal(t, KindParse, KindOf(err))
				assert.Equal(t, Claim{}, got, "failed parse must not return a partial claim")

				var fe *Error
				require.True(t, errors.As(err, &fe))
				assert.Equal(t, tt.line, fe.Line)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGrammarParseOverflowWrapsRangeError(t *testing.T) {
	_, err := NewGrammar().Parse("#1 @ 1,99999999999999999999999: 1x1")
	require.Error(t, err)
	assert.ErrorIs(t, err, strconv.ErrRange)
	assert.ErrorIs(t, err, ErrParse)
}

func TestGrammarParseAll(t *testing.T) {
	g := NewGrammar()

	claims, err := g.ParseAll([]string{
		"#1 @ 1,3: 4x4",
		"",
		"#2 @ 3,1: 4x4",
		"#3 @ 5,5: 2x2",
	})
	require.NoError(t, err)
	assert.Equal(t, []Claim{
		{ID: 1, X: 1, Y: 3, Width: 4, Height: 4},
		{ID: 2, X: 3, Y: 1, Width: 4, Height: 4},
		{ID: 3, X: 5, Y: 5, Width: 2, Height: 2},
	}, claims)

	claims, err = g.ParseAll([]string{"#1 @ 1,3: 4x4", "#2 @ 3,1 4x4", "#3 @ 5,5: 2x2"})
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.Equal(t, KindParse, KindOf(err))
	assert.Contains(t, err.Error(), "#2 @ 3,1 4x4")
}

func TestGrammarValidate(t *testing.T) {
	g := NewGrammar()

	assert.NoError(t, g.Validate([]string{"#1 @ 1,3: 4x4", "", "#2 @ 3,1: 4x4"}, 1))

	err := g.Validate([]string{"#1 @ 1,3: 4x4", "bogus", "#3 @ 5,5: 2x2", "#4 @ 5,5: 0x2"}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2:")
	assert.Contains(t, err.Error(), "line 4:")
	assert.NotContains(t, err.Error(), "line 3:")
	assert.ErrorIs(t, err, ErrParse)
}
