package boxid

import (
	"errors"
	"reflect"
	"testing"

	f "github.com/multimediallc/advent-2018/pkg/functional"
)

func TestCountRepeats(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want f.Set[int]
	}{
		{"mixed", "abcdafffvf", f.SetOf(1, 2, 4)},
		{"all distinct", "abcdef", f.SetOf(1)},
		{"two and three", "bababc", f.SetOf(1, 2, 3)},
		{"empty", "", f.SetOf[int]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountRepeats(tt.id); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CountRepeats(%q) = %v, want %v", tt.id, got.Items(), tt.want.Items())
			}
		})
	}
}

func TestChecksum(t *testing.T) {
	ids := []string{"abcdef", "bababc", "abbcde", "abcccd", "aabcdd", "abcdee", "ababab"}
	if got := Checksum(ids); got != 12 {
		t.Errorf("Checksum() = %d, want 12", got)
	}
}

func TestCommonLetters(t *testing.T) {
	tests := []struct {
		name    string
		ids     []string
		want    string
		wantErr bool
	}{
		{
			name: "puzzle example",
			ids:  []string{"abcde", "fghij", "klmno", "pqrst", "fguij", "axcye", "wvxyz"},
			want: "fgij",
		},
		{
			name: "first letter differs",
			ids:  []string{"xbc", "ybc"},
			want: "bc",
		},
		{
			name: "repeated ids are ignored",
			ids:  []string{"abc", "abc", "abd"},
			want: "ab",
		},
		{
			name:    "identical ids are not a match",
			ids:     []string{"abc", "abc"},
			wantErr: true,
		},
		{
			name:    "two letters differ",
			ids:     []string{"abcd", "abxy"},
			wantErr: true,
		},
		{
			name:    "empty",
			ids:     nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CommonLetters(tt.ids)
			if tt.wantErr {
				if !errors.Is(err, ErrNoMatch) {
					t.Errorf("CommonLetters() error = %v, want ErrNoMatch", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CommonLetters() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CommonLetters() = %q, want %q", got, tt.want)
			}
		})
	}
}
